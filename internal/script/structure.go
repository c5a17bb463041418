package script

import (
	"fmt"
	"regexp"
	"strings"
)

// Structure recognition is regex-based and tolerates exactly one level of
// nested braces inside a body. Deeper nesting is not recognized; such text
// falls through to plain line transpilation.
var (
	reMethod = regexp.MustCompile(`(?m)^[ \t]*(?:def|void|String|int|long|boolean|double|Object)\s+(\w+)\s*\(([^)]*)\)\s*\{((?:[^{}]|\{[^{}]*\})*)\}`)
	reClass  = regexp.MustCompile(`(?ms)^[ \t]*class\s+(\w+)(?:\s+extends\s+(\w+))?\s*\{((?:[^{}]|\{[^{}]*\})*)\}`)

	// reInnerMethod matches methods inside an already-extracted class body;
	// those bodies cannot nest further within the tolerance above.
	reInnerMethod = regexp.MustCompile(`(?m)^[ \t]*(?:def|void|String|int|long|boolean|double|Object)\s+(\w+)\s*\(([^)]*)\)\s*\{([^{}]*)\}`)

	reField = regexp.MustCompile(`(?m)^[ \t]*(?:def|String|int|long|boolean|double|Object)\s+(\w+)(?:\s*=\s*(.+?))?;?[ \t]*$`)

	reParamType = regexp.MustCompile(`(?:\w+\s+)?(\w+)\s*$`)
)

// blockingTokens forces an async qualifier on any generated function whose
// body textually contains one of them.
var blockingTokens = []string{
	"sleep",
	"Thread",
	"sendRequest",
	"http",
	"fetch",
	"await",
	"socket",
}

// extractStructures converts recognized class and method definitions into
// JavaScript classes and functions, returning the generated text and the raw
// script with the recognized regions removed.
func extractStructures(raw string) (structured, rest string) {
	var blocks []string

	rest = reClass.ReplaceAllStringFunc(raw, func(m string) string {
		sub := reClass.FindStringSubmatch(m)
		blocks = append(blocks, generateClass(sub[1], sub[2], sub[3]))
		return ""
	})

	rest = reMethod.ReplaceAllStringFunc(rest, func(m string) string {
		sub := reMethod.FindStringSubmatch(m)
		blocks = append(blocks, generateFunction(sub[1], sub[2], sub[3]))
		return ""
	})

	return strings.Join(blocks, "\n\n"), rest
}

// generateFunction emits one function with the transpiled body wrapped in a
// log-and-rethrow handler, preserving the original failure boundary.
func generateFunction(name, params, body string) string {
	var b strings.Builder

	qualifier := ""
	if needsAsync(body) {
		qualifier = "async "
	}

	fmt.Fprintf(&b, "%sfunction %s(%s) {\n", qualifier, name, jsParams(params))
	b.WriteString("    try {\n")
	writeIndented(&b, transpileLines(body, FallbackLiteral), "        ")
	b.WriteString("    } catch (err) {\n")
	fmt.Fprintf(&b, "        console.error(%q, err);\n", name+" failed:")
	b.WriteString("        throw err;\n")
	b.WriteString("    }\n")
	b.WriteString("}")

	return b.String()
}

// generateClass emits one class with a constructor taking the three fixed
// collaborator references, a parent forwarding call when a superclass was
// detected, and one assignment per detected field.
func generateClass(name, parent, body string) string {
	var b strings.Builder

	// Inner methods come out first so field detection does not see their
	// local declarations.
	var methods []string
	fieldsOnly := reInnerMethod.ReplaceAllStringFunc(body, func(m string) string {
		sub := reInnerMethod.FindStringSubmatch(m)
		methods = append(methods, generateClassMethod(sub[1], sub[2], sub[3]))
		return ""
	})

	if parent != "" {
		fmt.Fprintf(&b, "class %s extends %s {\n", name, parent)
	} else {
		fmt.Fprintf(&b, "class %s {\n", name)
	}

	b.WriteString("    constructor(log, context, testRunner) {\n")
	if parent != "" {
		b.WriteString("        super(log, context, testRunner);\n")
	}

	for _, f := range reField.FindAllStringSubmatch(fieldsOnly, -1) {
		init := strings.TrimSpace(f[2])
		if init == "" {
			init = "null"
		}
		fmt.Fprintf(&b, "        this.%s = %s;\n", f[1], init)
	}
	b.WriteString("    }\n")

	for _, m := range methods {
		b.WriteString("\n")
		writeIndented(&b, m, "    ")
	}

	b.WriteString("}")

	return b.String()
}

func generateClassMethod(name, params, body string) string {
	var b strings.Builder

	qualifier := ""
	if needsAsync(body) {
		qualifier = "async "
	}

	fmt.Fprintf(&b, "%s%s(%s) {\n", qualifier, name, jsParams(params))
	b.WriteString("    try {\n")
	writeIndented(&b, transpileLines(body, FallbackLiteral), "        ")
	b.WriteString("    } catch (err) {\n")
	fmt.Fprintf(&b, "        console.error(%q, err);\n", name+" failed:")
	b.WriteString("        throw err;\n")
	b.WriteString("    }\n")
	b.WriteString("}")

	return b.String()
}

// jsParams strips Groovy type annotations, keeping parameter names only.
func jsParams(params string) string {
	params = strings.TrimSpace(params)
	if params == "" {
		return ""
	}

	var names []string
	for _, p := range strings.Split(params, ",") {
		if m := reParamType.FindStringSubmatch(strings.TrimSpace(p)); m != nil {
			names = append(names, m[1])
		}
	}

	return strings.Join(names, ", ")
}

func needsAsync(body string) bool {
	lower := strings.ToLower(body)
	for _, tok := range blockingTokens {
		if strings.Contains(lower, strings.ToLower(tok)) {
			return true
		}
	}

	return false
}

// writeIndented writes every non-blank line of text prefixed with indent.
func writeIndented(b *strings.Builder, text, indent string) {
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			b.WriteString("\n")
			continue
		}

		b.WriteString(indent + strings.TrimLeft(line, " \t") + "\n")
	}
}
