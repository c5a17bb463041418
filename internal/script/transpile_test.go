package script

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranspileRules(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		contains string
	}{
		{
			name:     "declaration",
			in:       `def count = 5`,
			contains: "let count = 5",
		},
		{
			name:     "interpolated string",
			in:       `def msg = "Hello ${name}, you have $count items"`,
			contains: "let msg = `Hello ${name}, you have ${count} items`",
		},
		{
			name:     "map literal",
			in:       `def headers = [accept: "application/json", retries: 3]`,
			contains: `let headers = {accept: "application/json", retries: 3}`,
		},
		{
			name:     "empty map literal",
			in:       `def cache = [:]`,
			contains: "let cache = {}",
		},
		{
			name:     "each closure one-liner",
			in:       `items.each { x -> log.info(x) }`,
			contains: "items.forEach((x) => { console.log(x) })",
		},
		{
			name:     "implicit closure parameter",
			in:       `items.each { log.info(it) }`,
			contains: "items.forEach((it) => { console.log(it) })",
		},
		{
			name:     "collect becomes map",
			in:       `def ids = items.collect { it -> it.id }`,
			contains: "let ids = items.map((it) => { it.id })",
		},
		{
			name:     "find stays find",
			in:       `def hit = items.find { it -> it.ok }`,
			contains: "let hit = items.find((it) => { it.ok })",
		},
		{
			name:     "any becomes some",
			in:       `def ok = items.any { it -> it.ok }`,
			contains: "items.some((it) => {",
		},
		{
			name:     "logging",
			in:       `log.error("boom")`,
			contains: `console.error("boom")`,
		},
		{
			name:     "println",
			in:       `println "done"`,
			contains: `console.log("done");`,
		},
		{
			name:     "cross-step lookup",
			in:       `def token = testRunner.testCase.testSteps["Login"].getPropertyValue("token")`,
			contains: `let token = pm.collectionVariables.get("Login_token")`,
		},
		{
			name:     "cross-step lookup by name",
			in:       `def id = testRunner.testCase.getTestStepByName("Create User").getPropertyValue("id")`,
			contains: `let id = pm.collectionVariables.get("Create User_id")`,
		},
		{
			name:     "response parse elided",
			in:       `def json = new JsonSlurper().parseText(messageExchange.response.responseContent)`,
			contains: "let json = pm.response.json()",
		},
		{
			name:     "non-response parse kept",
			in:       `def json = new JsonSlurper().parseText(payload)`,
			contains: "let json = JSON.parse(payload)",
		},
		{
			name:     "integer coercion method",
			in:       `def n = value.toInteger()`,
			contains: "let n = parseInt(value, 10)",
		},
		{
			name:     "integer coercion static",
			in:       `def n = Integer.parseInt(value)`,
			contains: "let n = parseInt(value, 10)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Transpile(tt.in, RoleFreeForm)
			assert.Contains(t, got, tt.contains)
		})
	}
}

func TestTranspileAssertEquality(t *testing.T) {
	got := Transpile(`assert json.id == 42`, RoleFreeForm)

	assert.Contains(t, got, `pm.test("json.id == 42", function () {`)
	assert.Contains(t, got, "pm.expect(json.id).to.eql(42);")
}

func TestTranspileMultiLineClosure(t *testing.T) {
	in := strings.Join([]string{
		"items.each { item ->",
		`    log.info(item)`,
		"}",
	}, "\n")

	got := Transpile(in, RoleFreeForm)

	assert.Contains(t, got, "items.forEach((item) => {")
	assert.Contains(t, got, "console.log(item)")
	assert.Contains(t, got, "})")
}

func TestTranspileFallbackComment(t *testing.T) {
	got := Transpile("holder.doSomethingOdd()", RoleFreeForm)

	// Unmatched lines are commented out, never silently dropped.
	assert.Contains(t, got, "// holder.doSomethingOdd()")
}

func TestTranspileFallbackLiteral(t *testing.T) {
	got := TranspileWithFallback("holder.doSomethingOdd()", RoleFreeForm, FallbackLiteral)

	assert.Equal(t, "holder.doSomethingOdd()", got)
}

func TestTranspilePassthrough(t *testing.T) {
	in := strings.Join([]string{
		"// a comment",
		"",
		"def x = 1",
	}, "\n")

	got := Transpile(in, RoleFreeForm)
	lines := strings.Split(got, "\n")

	assert.Equal(t, "// a comment", lines[0])
	assert.Equal(t, "", lines[1])
	assert.Equal(t, "let x = 1", lines[2])
}

func TestDefaultFallback(t *testing.T) {
	assert.Equal(t, FallbackComment, DefaultFallback(RoleFreeForm))
	assert.Equal(t, FallbackLiteral, DefaultFallback(RoleMethodBody))
}

func TestTranspileLineMatchesSeveralRules(t *testing.T) {
	got := Transpile(`def total = "${count}".toInteger()`, RoleFreeForm)

	// Declaration, interpolation, and coercion rules all fire on one line.
	assert.Contains(t, got, "let total =")
	assert.Contains(t, got, "parseInt(`${count}`, 10)")
}
