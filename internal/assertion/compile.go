package assertion

import (
	"fmt"
	"strconv"
	"strings"

	"soapui2postman/internal/issue"
	"soapui2postman/internal/model"
	"soapui2postman/internal/pathexpr"
	"soapui2postman/internal/script"
)

const component = "assertion"

// Compile converts one assertion into a test block. A missing required
// config key suppresses emission for that instance only (empty result) and
// records an issue; compilation never aborts.
func Compile(spec model.AssertionSpec, log *issue.Log) string {
	switch spec.Kind {
	case model.AssertionStatusCodes:
		return compileStatusCodes(spec)
	case model.AssertionJSONPathMatch:
		return compileJSONPath(spec, log)
	case model.AssertionXPathMatch:
		return compileXPath(spec, log)
	case model.AssertionContains:
		return compileContains(spec, log)
	case model.AssertionSLA:
		return compileSLA(spec, log)
	case model.AssertionInlineScript:
		return compileInlineScript(spec, log)
	default:
		log.Warn(component, spec.Name, "unrecognized assertion kind %q; emitted placeholder", spec.RawType)
		return fmt.Sprintf("// Unsupported assertion kind %q (%q); convert manually.", spec.RawType, spec.Name)
	}
}

func compileStatusCodes(spec model.AssertionSpec) string {
	raw := spec.Config["codes"]
	if strings.TrimSpace(raw) == "" {
		raw = "200"
	}

	var codes []string
	for _, tok := range strings.Split(raw, ",") {
		if t := strings.TrimSpace(tok); t != "" {
			codes = append(codes, t)
		}
	}

	if len(codes) == 1 {
		return testBlock(spec.Name, fmt.Sprintf("pm.response.to.have.status(%s);", codes[0]))
	}

	return testBlock(spec.Name,
		fmt.Sprintf("pm.expect([%s]).to.include(pm.response.code);", strings.Join(codes, ", ")))
}

func compileJSONPath(spec model.AssertionSpec, log *issue.Log) string {
	path, ok := spec.Config["path"]
	if !ok || strings.TrimSpace(path) == "" {
		log.Warn(component, spec.Name, "jsonpath assertion is missing its path; skipped")
		return ""
	}

	var b strings.Builder
	b.WriteString("const jsonData = pm.response.json();\n")
	b.WriteString(pathexpr.Translate(path, model.PathJSONPath, "jsonData", "actual"))
	b.WriteString("\n")

	if expected, ok := spec.Config["expectedContent"]; ok {
		fmt.Fprintf(&b, "pm.expect(actual).to.eql(%s);", jsLiteral(expected))
	} else {
		b.WriteString("pm.expect(actual).to.exist;")
	}

	return testBlock(spec.Name, b.String())
}

func compileXPath(spec model.AssertionSpec, log *issue.Log) string {
	xpath, ok := spec.Config["xpath"]
	if !ok || strings.TrimSpace(xpath) == "" {
		log.Warn(component, spec.Name, "xpath assertion is missing its expression; skipped")
		return ""
	}

	log.Warn(component, spec.Name, "xpath assertions have no native Postman equivalent; emitted placeholder")

	var b strings.Builder
	fmt.Fprintf(&b, "// XPath assertion %q could not be converted: the Postman test DSL has no native XPath support.\n", spec.Name)
	fmt.Fprintf(&b, "// Expression: %s", xpath)
	if expected, ok := spec.Config["expectedContent"]; ok {
		fmt.Fprintf(&b, "\n// Expected: %s", expected)
	}

	return b.String()
}

func compileContains(spec model.AssertionSpec, log *issue.Log) string {
	token, ok := spec.Config["token"]
	if !ok {
		log.Warn(component, spec.Name, "contains assertion is missing its token; skipped")
		return ""
	}

	if strings.EqualFold(spec.Config["ignoreCase"], "true") {
		return testBlock(spec.Name,
			fmt.Sprintf("pm.expect(pm.response.text().toLowerCase()).to.include(%s);",
				jsString(strings.ToLower(token))))
	}

	return testBlock(spec.Name,
		fmt.Sprintf("pm.expect(pm.response.text()).to.include(%s);", jsString(token)))
}

func compileSLA(spec model.AssertionSpec, log *issue.Log) string {
	maxTime, ok := spec.Config["maxTime"]
	if !ok || strings.TrimSpace(maxTime) == "" {
		log.Warn(component, spec.Name, "sla assertion is missing maxTime; skipped")
		return ""
	}

	return testBlock(spec.Name,
		fmt.Sprintf("pm.expect(pm.response.responseTime).to.be.below(%s);", strings.TrimSpace(maxTime)))
}

func compileInlineScript(spec model.AssertionSpec, log *issue.Log) string {
	text, ok := spec.Config["scriptText"]
	if !ok || strings.TrimSpace(text) == "" {
		log.Warn(component, spec.Name, "script assertion has no script text; skipped")
		return ""
	}

	return testBlock(spec.Name, script.Transpile(text, script.RoleMethodBody))
}

// testBlock wraps body in one pm.test block named verbatim after the assertion.
func testBlock(name, body string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "pm.test(%s, function () {\n", jsString(name))
	for _, line := range strings.Split(body, "\n") {
		if strings.TrimSpace(line) == "" {
			b.WriteString("\n")
			continue
		}
		b.WriteString("    " + line + "\n")
	}
	b.WriteString("});")

	return b.String()
}

// jsString renders a Go string as a JS double-quoted literal.
func jsString(s string) string {
	return strconv.Quote(s)
}

// jsLiteral renders expected content as a number, boolean, or null when it
// parses as one, and as a quoted string otherwise.
func jsLiteral(s string) string {
	t := strings.TrimSpace(s)

	if t == "true" || t == "false" || t == "null" {
		return t
	}

	if _, err := strconv.ParseFloat(t, 64); err == nil {
		return t
	}

	return jsString(s)
}
