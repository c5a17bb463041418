package compose

import (
	"testing"

	"soapui2postman/internal/model"
)

func TestClassifyStep(t *testing.T) {
	tests := []struct {
		name     string
		step     model.TestStep
		expected Category
	}{
		{"rest request", model.TestStep{Type: model.StepRestRequest}, CategoryRestRequest},
		{"transfer", model.TestStep{Type: model.StepPropertyTransfer}, CategoryPropertyTransfer},
		{"data source", model.TestStep{Type: model.StepDataSource}, CategoryDataSource},
		{"data source loop", model.TestStep{Type: model.StepDataSourceLoop}, CategoryDataSourceLoop},
		{"data sink", model.TestStep{Type: model.StepDataSink}, CategoryDataSink},
		{"properties", model.TestStep{Type: model.StepProperties}, CategoryProperties},
		{"other", model.TestStep{Type: model.StepOther}, CategoryUnsupported},

		// Script steps split on name keywords, case-insensitively.
		{"setup script", model.TestStep{Type: model.StepScript, Name: "Setup fixtures"}, CategoryPreRequestScript},
		{"prerequest script", model.TestStep{Type: model.StepScript, Name: "PreRequest auth"}, CategoryPreRequestScript},
		{"pre-request script", model.TestStep{Type: model.StepScript, Name: "my Pre-Request"}, CategoryPreRequestScript},
		{"test script", model.TestStep{Type: model.StepScript, Name: "Test response shape"}, CategoryTestScript},
		{"assertion script", model.TestStep{Type: model.StepScript, Name: "Extra Assertions"}, CategoryTestScript},
		{"validate script", model.TestStep{Type: model.StepScript, Name: "Validate Response"}, CategoryTestScript},
		{"uncategorized script", model.TestStep{Type: model.StepScript, Name: "Miscellaneous"}, CategoryUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyStep(tt.step); got != tt.expected {
				t.Errorf("ClassifyStep(%q) = %s, want %s", tt.step.Name, got, tt.expected)
			}
		})
	}
}

func TestIsPreRequestTransfer(t *testing.T) {
	headerTransfer := model.TestStep{
		Type: model.StepPropertyTransfer,
		Transfers: []model.PropertyTransferSpec{{
			Target:     model.StepRef{Step: "REST Request", Property: "token"},
			TargetPath: model.PathExpression{Raw: "headers.Authorization"},
		}},
	}
	if !IsPreRequestTransfer(headerTransfer) {
		t.Error("transfer targeting a header must be pre-request-flagged")
	}

	variableTransfer := model.TestStep{
		Type: model.StepPropertyTransfer,
		Transfers: []model.PropertyTransferSpec{{
			Target:     model.StepRef{Step: "Props", Property: "userId"},
			TargetPath: model.PathExpression{},
		}},
	}
	if IsPreRequestTransfer(variableTransfer) {
		t.Error("transfer targeting a plain variable must be post-response")
	}
}
