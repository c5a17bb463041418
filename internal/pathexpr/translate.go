package pathexpr

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"soapui2postman/internal/model"
)

// simpleDotted matches paths made of plain dot-separated identifier segments.
var simpleDotted = regexp.MustCompile(`^[A-Za-z_$][\w$]*(\.[A-Za-z_$][\w$]*)*$`)

// Translate converts a path expression into JavaScript that extracts the
// addressed value from sourceVar into a new binding named targetVar.
//
// The language tag must already be resolved; an unspecified tag is treated
// as a property path (the caller is expected to run the guess heuristic and
// record it before calling).
func Translate(path string, lang model.PathLanguage, sourceVar, targetVar string) string {
	switch lang {
	case model.PathXPath:
		return translateXPath(path, sourceVar, targetVar)
	default:
		return translateDotted(path, sourceVar, targetVar)
	}
}

// translateDotted handles jsonpath and property paths.
func translateDotted(path, sourceVar, targetVar string) string {
	p := Normalize(path)

	if p == "" {
		// Whole-value semantics: the source reference itself.
		return fmt.Sprintf("let %s = %s;\n%s", targetVar, sourceVar, logLine(targetVar))
	}

	if idx := strings.Index(p, "[*]"); idx >= 0 {
		return translateWildcard(p, idx, sourceVar, targetVar)
	}

	if simpleDotted.MatchString(p) {
		return fmt.Sprintf("let %s = %s?.%s;\n%s",
			targetVar, sourceVar, strings.ReplaceAll(p, ".", "?."), logLine(targetVar))
	}

	// Bracket-indexed or otherwise irregular segments pass through literally.
	return fmt.Sprintf("let %s = %s.%s;\n%s", targetVar, sourceVar, p, logLine(targetVar))
}

// translateWildcard expands a [*] segment into a loop that accumulates the
// per-element sub-path matches into a list.
func translateWildcard(p string, idx int, sourceVar, targetVar string) string {
	prefix := strings.TrimSuffix(p[:idx], ".")
	suffix := strings.TrimPrefix(p[idx+len("[*]"):], ".")

	listExpr := sourceVar
	if prefix != "" {
		listExpr = sourceVar + "?." + strings.ReplaceAll(prefix, ".", "?.")
	}

	elemExpr := "item"
	if suffix != "" {
		elemExpr = "item?." + strings.ReplaceAll(suffix, ".", "?.")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "let %s = [];\n", targetVar)
	fmt.Fprintf(&b, "(%s || []).forEach((item) => {\n", listExpr)
	fmt.Fprintf(&b, "    %s.push(%s);\n", targetVar, elemExpr)
	b.WriteString("});\n")
	b.WriteString(logLine(targetVar))

	return b.String()
}

// translateXPath emits the self-contained DOM evaluation block.
func translateXPath(path, sourceVar, targetVar string) string {
	var b strings.Builder

	err := xpathTemplate.Execute(&b, xpathData{
		Source: sourceVar,
		Target: targetVar,
		Path:   strconv.Quote(path),
	})
	if err != nil {
		// Template fields are plain strings; execution cannot fail.
		panic(err)
	}

	return b.String()
}

// Normalize strips the root marker and any leading separator from a dotted
// or jsonpath expression.
func Normalize(path string) string {
	p := strings.TrimSpace(path)
	p = strings.TrimPrefix(p, "$")
	p = strings.TrimPrefix(p, ".")
	p = strings.TrimPrefix(p, "/")

	return p
}

func logLine(targetVar string) string {
	return fmt.Sprintf("console.log(%q, %s);", "Extracted "+targetVar+":", targetVar)
}
