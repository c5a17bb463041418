package pathexpr

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"soapui2postman/internal/model"
)

func TestTranslateSimpleDotted(t *testing.T) {
	got := Translate("$.token_type", model.PathJSONPath, "jsonData", "actual")

	assert.Contains(t, got, "let actual = jsonData?.token_type;")
	assert.Contains(t, got, `console.log("Extracted actual:", actual);`)
}

func TestTranslateChainedSegments(t *testing.T) {
	got := Translate("$.data.user.id", model.PathJSONPath, "jsonData", "actual")

	assert.Contains(t, got, "let actual = jsonData?.data?.user?.id;")
}

func TestTranslateBracketPassthrough(t *testing.T) {
	got := Translate("$.store.book[0].title", model.PathJSONPath, "jsonData", "actual")

	// Bracket segments pass through literally, dot segments stay chained.
	assert.Contains(t, got, "let actual = jsonData.store.book[0].title;")
}

func TestTranslateWildcard(t *testing.T) {
	got := Translate("$.store.book[*].title", model.PathJSONPath, "jsonData", "titles")

	assert.Contains(t, got, "let titles = [];")
	assert.Contains(t, got, "(jsonData?.store?.book || []).forEach((item) => {")
	assert.Contains(t, got, "titles.push(item?.title);")
}

func TestTranslateWildcardWholeElements(t *testing.T) {
	got := Translate("items[*]", model.PathJSONPath, "jsonData", "all")

	assert.Contains(t, got, "all.push(item);")
}

func TestTranslateEmptyPathWholeValue(t *testing.T) {
	got := Translate("", model.PathProperty, "pm.response.json()", "value")

	assert.Contains(t, got, "let value = pm.response.json();")
}

func TestTranslateXPathBlock(t *testing.T) {
	got := Translate("//ns1:Id", model.PathXPath, "pm.response.text()", "value")

	// Self-contained block: parse, evaluate, branch on result type, never throw.
	assert.Contains(t, got, "let value = null;")
	assert.Contains(t, got, `new DOMParser().parseFromString(pm.response.text(), "text/xml")`)
	assert.Contains(t, got, `valueDoc.evaluate("//ns1:Id", valueDoc, null, XPathResult.ANY_TYPE, null)`)
	assert.Contains(t, got, "case XPathResult.STRING_TYPE:")
	assert.Contains(t, got, "case XPathResult.NUMBER_TYPE:")
	assert.Contains(t, got, "case XPathResult.BOOLEAN_TYPE:")
	assert.Contains(t, got, "case XPathResult.ORDERED_NODE_ITERATOR_TYPE:")
	assert.Contains(t, got, "} catch (err) {")
	assert.Contains(t, got, "console.warn")
	assert.Contains(t, got, `console.log("Extracted value:", value);`)
}

func TestTranslateReferentialTransparency(t *testing.T) {
	args := []struct {
		path string
		lang model.PathLanguage
	}{
		{"$.a.b", model.PathJSONPath},
		{"items[*].id", model.PathJSONPath},
		{"//x/y", model.PathXPath},
		{"plain.prop", model.PathProperty},
	}

	for _, a := range args {
		first := Translate(a.path, a.lang, "src", "dst")
		second := Translate(a.path, a.lang, "src", "dst")
		if first != second {
			t.Errorf("Translate(%q, %s) is not referentially transparent", a.path, a.lang)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"$.a.b", "a.b"},
		{"$a", "a"},
		{"/a/b", "a/b"},
		{".a", "a"},
		{"  $.a ", "a"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.expected {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.expected)
		}
	}
}

func TestTranslateLogsExtractedValue(t *testing.T) {
	for _, lang := range []model.PathLanguage{model.PathJSONPath, model.PathProperty, model.PathXPath} {
		got := Translate("a.b", lang, "src", "out")
		if !strings.Contains(got, "console.log(") {
			t.Errorf("%s translation does not log the extracted value:\n%s", lang, got)
		}
	}
}
