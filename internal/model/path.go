package model

import (
	"strings"

	"soapui2postman/internal/common"
)

// PathLanguage tags a path expression with its query language.
type PathLanguage int

const (
	PathUnspecified PathLanguage = iota
	PathXPath
	PathJSONPath
	PathProperty

	// PathLanguageTotal is a constant that represents the total number of path languages defined
	PathLanguageTotal = int(iota)
)

// String returns a human-readable language name.
func (l PathLanguage) String() string {
	switch l {
	case PathUnspecified:
		return "unspecified"
	case PathXPath:
		return "xpath"
	case PathJSONPath:
		return "jsonpath"
	case PathProperty:
		return "property"
	default:
		return common.UnknownStr
	}
}

// PathExpression is a raw path string plus its language tag.
type PathExpression struct {
	Raw      string
	Language PathLanguage
}

// Resolve returns the expression with any unspecified language replaced by
// the best-effort guess from GuessPathLanguage.
func (p PathExpression) Resolve() PathExpression {
	if p.Language != PathUnspecified {
		return p
	}

	return PathExpression{Raw: p.Raw, Language: GuessPathLanguage(p.Raw)}
}

// GuessPathLanguage infers the language of an untagged path. The check order
// is fixed: an XPath indicator wins over a JSONPath indicator, which wins
// over the plain-property fallback. The guess is best-effort and callers
// should surface it as a low-confidence conversion note.
func GuessPathLanguage(raw string) PathLanguage {
	trimmed := strings.TrimSpace(raw)

	// XPath indicators: slash-separated segments, axes, node functions.
	if strings.HasPrefix(trimmed, "/") ||
		strings.Contains(trimmed, "::") ||
		strings.Contains(trimmed, "text()") ||
		strings.Contains(trimmed, "count(") {
		return PathXPath
	}

	// JSONPath indicators: root marker, recursive descent, bracket filters.
	if strings.HasPrefix(trimmed, "$") ||
		strings.Contains(trimmed, "..") ||
		strings.Contains(trimmed, "[?") ||
		strings.Contains(trimmed, "[*]") {
		return PathJSONPath
	}

	return PathProperty
}
