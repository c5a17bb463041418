package transfer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soapui2postman/internal/issue"
	"soapui2postman/internal/model"
)

func jsonTransfer(targetStep, targetProp, targetPath string) model.PropertyTransferSpec {
	return model.PropertyTransferSpec{
		Name:       "t1",
		Source:     model.StepRef{Step: "Login", Property: "Response"},
		SourcePath: model.PathExpression{Raw: "$.data.id", Language: model.PathJSONPath},
		Target:     model.StepRef{Step: targetStep, Property: targetProp},
		TargetPath: model.PathExpression{Raw: targetPath, Language: model.PathProperty},
	}
}

func TestResolveResponseSourceJSONPath(t *testing.T) {
	log := &issue.Log{}

	got := Resolve(jsonTransfer("Props", "userId", ""), log)

	assert.Contains(t, got, "const sourceData = pm.response.json();")
	assert.Contains(t, got, "let value = sourceData?.data?.id;")
	assert.Contains(t, got, `pm.collectionVariables.set("Props_userId", typeof value === "string" ? value : JSON.stringify(value));`)
	assert.Contains(t, got, `console.log("Transferred t1: Login#Response -> Props#userId");`)
	assert.Equal(t, 0, log.Len())
}

func TestResolveResponseSourceXPath(t *testing.T) {
	log := &issue.Log{}
	spec := jsonTransfer("Props", "userId", "")
	spec.SourcePath = model.PathExpression{Raw: "//ns1:Id", Language: model.PathXPath}

	got := Resolve(spec, log)

	// XPath extracts from the response text, not the parsed structure.
	assert.Contains(t, got, "parseFromString(pm.response.text()")
	assert.NotContains(t, got, "const sourceData = pm.response.json();")
}

func TestResolveStoredStepSource(t *testing.T) {
	log := &issue.Log{}
	spec := jsonTransfer("Props", "userId", "")
	spec.Source = model.StepRef{Step: "Create User", Property: "id"}

	got := Resolve(spec, log)

	assert.Contains(t, got, `let sourceRaw = pm.collectionVariables.get("Create User_id");`)
	assert.Contains(t, got, "sourceData = JSON.parse(sourceRaw);")
}

func TestResolveHeaderTarget(t *testing.T) {
	log := &issue.Log{}

	got := Resolve(jsonTransfer("REST Request", "Request", "headers.Authorization"), log)

	assert.Contains(t, got, `pm.request.headers.upsert({ key: "Authorization", value: String(value) });`)
	assert.Equal(t, 0, log.Len())
}

func TestResolveQueryTarget(t *testing.T) {
	log := &issue.Log{}

	got := Resolve(jsonTransfer("REST Request", "Request", "query.page"), log)

	assert.Contains(t, got, "const parsedUrl = new URL(pm.request.url.toString());")
	assert.Contains(t, got, `parsedUrl.searchParams.set("page", String(value));`)
	assert.Contains(t, got, "pm.request.url.update(parsedUrl.toString());")
}

func TestResolveEndpointTargetFallsBack(t *testing.T) {
	log := &issue.Log{}

	got := Resolve(jsonTransfer("REST Request", "Endpoint", ""), log)

	assert.Contains(t, got, "pm.collectionVariables.set(")
	require.Equal(t, 1, log.Len())
	assert.Equal(t, issue.SeverityWarning, log.Entries()[0].Severity)
}

func TestResolveDeepSetWithFlattenedFallback(t *testing.T) {
	log := &issue.Log{}

	got := Resolve(jsonTransfer("Data", "payload", "user.id"), log)

	assert.Contains(t, got, `stored = JSON.parse(pm.collectionVariables.get("Data_payload") || "{}");`)
	assert.Contains(t, got, "stored.user = stored.user || {};")
	assert.Contains(t, got, "stored.user.id = value;")
	assert.Contains(t, got, `pm.collectionVariables.set("Data_payload", JSON.stringify(stored));`)
	// Unstructured stored values fall back to a flattened key.
	assert.Contains(t, got, `pm.collectionVariables.set("Data_payload_user_id", typeof value === "string" ? value : JSON.stringify(value));`)
}

func TestResolveUnspecifiedLanguageGuessed(t *testing.T) {
	log := &issue.Log{}
	spec := jsonTransfer("Props", "userId", "")
	spec.SourcePath = model.PathExpression{Raw: "$.data.id", Language: model.PathUnspecified}

	got := Resolve(spec, log)

	assert.Contains(t, got, "let value = sourceData?.data?.id;")
	require.Equal(t, 1, log.Len())
	assert.Equal(t, issue.SeverityInfo, log.Entries()[0].Severity)
	assert.Contains(t, log.Entries()[0].Message, "guessed jsonpath")
}

func TestClassifyTarget(t *testing.T) {
	tests := []struct {
		name     string
		spec     model.PropertyTransferSpec
		expected TargetKind
	}{
		{"header path", jsonTransfer("REST Request", "Request", "headers.Authorization"), TargetHeader},
		{"query path", jsonTransfer("REST Request", "Request", "query.page"), TargetQuery},
		{"endpoint property", jsonTransfer("REST Request", "Endpoint", ""), TargetUnsupported},
		{"plain variable", jsonTransfer("Props", "userId", ""), TargetVariable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyTarget(tt.spec); got != tt.expected {
				t.Errorf("ClassifyTarget() = %v, want %v", got, tt.expected)
			}
		})
	}
}
