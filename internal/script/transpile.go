package script

import (
	"strings"

	"soapui2postman/internal/common"
)

// Role selects the transpilation mode.
type Role int

const (
	// RoleFreeForm is used for standalone script steps; unmatched lines are
	// commented out so nothing is silently dropped.
	RoleFreeForm Role = iota
	// RoleMethodBody is used for inline-assertion scripts and recognized
	// method bodies; unmatched lines pass through literally.
	RoleMethodBody

	// RoleTotal is a constant that represents the total number of roles defined
	RoleTotal = int(iota)
)

// String returns a human-readable role name.
func (r Role) String() string {
	switch r {
	case RoleFreeForm:
		return "free-form"
	case RoleMethodBody:
		return "method-body"
	default:
		return common.UnknownStr
	}
}

// Fallback is the policy for lines matching no rewrite rule. The two observed
// behaviors are kept explicit and selectable instead of hard-coded.
type Fallback int

const (
	// FallbackComment preserves an unmatched line as a commented-out line.
	FallbackComment Fallback = iota
	// FallbackLiteral keeps an unmatched line as a best-effort literal line.
	FallbackLiteral
)

// DefaultFallback returns the fallback policy observed for each role.
func DefaultFallback(role Role) Fallback {
	if role == RoleMethodBody {
		return FallbackLiteral
	}

	return FallbackComment
}

// Transpile converts raw Groovy-flavored script text into Postman sandbox
// JavaScript. For RoleMethodBody, recognized method and class definitions
// become functions and classes first; the remaining text is transpiled
// line by line.
func Transpile(raw string, role Role) string {
	return TranspileWithFallback(raw, role, DefaultFallback(role))
}

// TranspileWithFallback is Transpile with an explicit unmatched-line policy.
func TranspileWithFallback(raw string, role Role, fb Fallback) string {
	if role == RoleMethodBody {
		structured, rest := extractStructures(raw)
		body := transpileLines(rest, fb)

		parts := make([]string, 0, 2)
		if structured != "" {
			parts = append(parts, structured)
		}
		if strings.TrimSpace(body) != "" {
			parts = append(parts, body)
		}

		return strings.Join(parts, "\n\n")
	}

	return transpileLines(raw, fb)
}

// transpileLines runs every line through the ordered rule list.
func transpileLines(raw string, fb Fallback) string {
	lines := strings.Split(raw, "\n")
	out := make([]string, 0, len(lines))

	// Open closure calls from earlier lines; their closing braces get a call
	// terminator when they arrive.
	openClosures := 0

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || isComment(trimmed) {
			out = append(out, line)
			continue
		}

		if openClosures > 0 && (trimmed == "}" || trimmed == "};") {
			out = append(out, strings.Replace(line, "}", "})", 1))
			openClosures--
			continue
		}

		res := rewriteLine(line)
		if res.openedClosure {
			openClosures++
		}

		if res.matched {
			out = append(out, res.text)
			continue
		}

		if fb == FallbackComment {
			out = append(out, "// "+line)
			continue
		}

		out = append(out, line)
	}

	return strings.Join(out, "\n")
}

func isComment(trimmed string) bool {
	return strings.HasPrefix(trimmed, "//") ||
		strings.HasPrefix(trimmed, "/*") ||
		strings.HasPrefix(trimmed, "*")
}
