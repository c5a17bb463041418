package model

import (
	"testing"
)

func TestGuessPathLanguage(t *testing.T) {
	tests := []struct {
		raw      string
		expected PathLanguage
	}{
		// XPath indicators win first
		{"//ns1:Response/ns1:Id", PathXPath},
		{"/bookstore/book[1]/title", PathXPath},
		{"descendant::node", PathXPath},
		{"count(//item)", PathXPath},
		{"//item/text()", PathXPath},

		// JSONPath indicators next
		{"$.store.book[0].title", PathJSONPath},
		{"$..author", PathJSONPath},
		{"store.book[?(@.price < 10)]", PathJSONPath},
		{"items[*].id", PathJSONPath},

		// Plain property fallback
		{"token", PathProperty},
		{"user.id", PathProperty},
		{"", PathProperty},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			result := GuessPathLanguage(tt.raw)
			if result != tt.expected {
				t.Errorf("GuessPathLanguage(%q) = %s, want %s", tt.raw, result, tt.expected)
			}
		})
	}
}

func TestPathExpressionResolve(t *testing.T) {
	tagged := PathExpression{Raw: "//a/b", Language: PathJSONPath}
	if got := tagged.Resolve(); got.Language != PathJSONPath {
		t.Errorf("Resolve must not override an explicit tag, got %s", got.Language)
	}

	untagged := PathExpression{Raw: "//a/b", Language: PathUnspecified}
	if got := untagged.Resolve(); got.Language != PathXPath {
		t.Errorf("Resolve(//a/b) = %s, want xpath", got.Language)
	}
}

func TestStepRefIsResponse(t *testing.T) {
	tests := []struct {
		ref      StepRef
		expected bool
	}{
		{StepRef{}, true},
		{StepRef{Step: "Login", Property: "Response"}, true},
		{StepRef{Step: "Login", Property: "ResponseAsXml"}, true},
		{StepRef{Step: "Login", Property: "token"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.ref.String(), func(t *testing.T) {
			if got := tt.ref.IsResponse(); got != tt.expected {
				t.Errorf("IsResponse(%v) = %v, want %v", tt.ref, got, tt.expected)
			}
		})
	}
}
