package script

import (
	"fmt"
	"regexp"
	"strings"
)

// rewriteResult carries a rewritten line plus bookkeeping the driver needs.
type rewriteResult struct {
	text string
	// matched is true if at least one rule fired on the line.
	matched bool
	// openedClosure is true if a closure opener was rewritten without its
	// closing brace on the same line.
	openedClosure bool
}

var (
	reDeclaration = regexp.MustCompile(`^(\s*)def\s+(\w+)`)
	reQuoted      = regexp.MustCompile(`"((?:[^"\\]|\\.)*)"`)
	reInterp      = regexp.MustCompile(`\$(\{[^}]*\}|[A-Za-z_]\w*)`)
	reMapLiteral  = regexp.MustCompile(`=\s*\[(\s*\w+\s*:[^\]]*)\]`)
	reEmptyMap    = regexp.MustCompile(`=\s*\[\s*:\s*\]`)

	reClosureNamed    = regexp.MustCompile(`\.(each|collect|find|findAll|any|every|all)\s*\{\s*(\w+)\s*->`)
	reClosureImplicit = regexp.MustCompile(`\.(each|collect|find|findAll|any|every|all)\s*\{`)

	reLogCall = regexp.MustCompile(`\blog\.(info|warn|error|debug)\b`)
	rePrintln = regexp.MustCompile(`^(\s*)println\s*\(?\s*(.*?)\)?\s*$`)

	reStepLookup   = regexp.MustCompile(`[\w.]*testSteps\[["']([^"'\]]+)["']\]\.getPropertyValue\(["']([^"')]+)["']\)`)
	reStepByName   = regexp.MustCompile(`[\w.]*getTestStepByName\(["']([^"')]+)["']\)\.getPropertyValue\(["']([^"')]+)["']\)`)
	reJSONSlurper  = regexp.MustCompile(`new\s+JsonSlurper\(\)\s*\.\s*parseText\(\s*([^)]*)\)`)
	reAssertEquals = regexp.MustCompile(`^\s*assert\s+(.+?)\s*==\s*(.+?)\s*;?\s*$`)
	reToInteger    = regexp.MustCompile("([\\w.$\"'`{}\\[\\]()]+)\\.toInteger\\(\\)")
	reParseInt     = regexp.MustCompile(`Integer\.parseInt\(([^)]*)\)`)
)

// closureMethods maps Groovy collection methods to their JS counterparts.
var closureMethods = map[string]string{
	"each":    "forEach",
	"collect": "map",
	"find":    "find",
	"findAll": "filter",
	"any":     "some",
	"every":   "every",
	"all":     "every",
}

// rewriteLine runs every rule, in the fixed order, over one line.
func rewriteLine(line string) rewriteResult {
	res := rewriteResult{text: line}

	res.apply(rewriteDeclaration)
	res.apply(rewriteInterpolation)
	res.apply(rewriteMapLiteral)
	res.applyClosure()
	res.apply(rewriteLogging)
	res.apply(rewriteStepLookup)
	res.apply(rewriteJSONParse)
	res.apply(rewriteAssert)
	res.apply(rewriteIntCoercion)

	return res
}

func (r *rewriteResult) apply(rule func(string) (string, bool)) {
	out, ok := rule(r.text)
	if ok {
		r.text = out
		r.matched = true
	}
}

// rewriteDeclaration turns a def declaration into a block-scoped let.
func rewriteDeclaration(line string) (string, bool) {
	if !reDeclaration.MatchString(line) {
		return line, false
	}

	return reDeclaration.ReplaceAllString(line, "${1}let ${2}"), true
}

// rewriteInterpolation converts double-quoted strings carrying ${...} or
// $ident markers into template literals.
func rewriteInterpolation(line string) (string, bool) {
	matched := false

	out := reQuoted.ReplaceAllStringFunc(line, func(lit string) string {
		body := lit[1 : len(lit)-1]
		if !reInterp.MatchString(body) {
			return lit
		}

		matched = true
		body = reInterp.ReplaceAllStringFunc(body, func(m string) string {
			inner := m[1:]
			if !strings.HasPrefix(inner, "{") {
				inner = "{" + inner + "}"
			}
			return "$" + inner
		})

		return "`" + body + "`"
	})

	return out, matched
}

// rewriteMapLiteral converts Groovy bracketed map literals to object literals.
// Plain list literals already read as JS arrays and pass untouched.
func rewriteMapLiteral(line string) (string, bool) {
	if reEmptyMap.MatchString(line) {
		return reEmptyMap.ReplaceAllString(line, "= {}"), true
	}

	if !reMapLiteral.MatchString(line) {
		return line, false
	}

	return reMapLiteral.ReplaceAllString(line, "= {${1}}"), true
}

// applyClosure rewrites iteration idioms and tracks unbalanced closure braces
// so the driver can close the call on a later line.
func (r *rewriteResult) applyClosure() {
	line := r.text
	matched := false

	rewrite := func(method, param string) string {
		matched = true
		return fmt.Sprintf(".%s((%s) => {", closureMethods[method], param)
	}

	line = reClosureNamed.ReplaceAllStringFunc(line, func(m string) string {
		sub := reClosureNamed.FindStringSubmatch(m)
		return rewrite(sub[1], sub[2])
	})
	line = reClosureImplicit.ReplaceAllStringFunc(line, func(m string) string {
		sub := reClosureImplicit.FindStringSubmatch(m)
		return rewrite(sub[1], "it")
	})

	if !matched {
		return
	}

	r.matched = true

	// One-liner closures close on the same line; rewrite the trailing brace
	// into a call terminator. Multi-line closures leave the call open.
	if strings.Count(line, "{") == strings.Count(line, "}") {
		if idx := strings.LastIndex(line, "}"); idx >= 0 {
			line = line[:idx] + "})" + line[idx+1:]
		}
	} else {
		r.openedClosure = true
	}

	r.text = line
}

// rewriteLogging converts log calls and println to console calls.
func rewriteLogging(line string) (string, bool) {
	if m := rePrintln.FindStringSubmatch(line); m != nil {
		return fmt.Sprintf("%sconsole.log(%s);", m[1], m[2]), true
	}

	if !reLogCall.MatchString(line) {
		return line, false
	}

	out := reLogCall.ReplaceAllStringFunc(line, func(m string) string {
		switch {
		case strings.HasSuffix(m, "error"):
			return "console.error"
		case strings.HasSuffix(m, "warn"):
			return "console.warn"
		default:
			return "console.log"
		}
	})

	return out, true
}

// rewriteStepLookup converts cross-step property reads into namespaced
// variable-store reads keyed by "<stepName>_<propertyName>".
func rewriteStepLookup(line string) (string, bool) {
	matched := false

	replace := func(re *regexp.Regexp, in string) string {
		return re.ReplaceAllStringFunc(in, func(m string) string {
			sub := re.FindStringSubmatch(m)
			matched = true
			return fmt.Sprintf("pm.collectionVariables.get(%q)", sub[1]+"_"+sub[2])
		})
	}

	out := replace(reStepLookup, line)
	out = replace(reStepByName, out)

	return out, matched
}

// rewriteJSONParse elides JsonSlurper calls against the response, which is
// already parsed in the target runtime, and converts the rest to JSON.parse.
func rewriteJSONParse(line string) (string, bool) {
	if !reJSONSlurper.MatchString(line) {
		return line, false
	}

	out := reJSONSlurper.ReplaceAllStringFunc(line, func(m string) string {
		arg := reJSONSlurper.FindStringSubmatch(m)[1]
		lower := strings.ToLower(arg)
		if strings.Contains(lower, "response") || strings.Contains(lower, "messageexchange") {
			return "pm.response.json()"
		}

		return "JSON.parse(" + arg + ")"
	})

	return out, true
}

// rewriteAssert turns an equality assert into a named test block performing a
// deep-equality check. The test name is the literal textual form of both sides.
func rewriteAssert(line string) (string, bool) {
	m := reAssertEquals.FindStringSubmatch(line)
	if m == nil {
		return line, false
	}

	name := m[1] + " == " + m[2]
	out := fmt.Sprintf("pm.test(%q, function () {\n    pm.expect(%s).to.eql(%s);\n});", name, m[1], m[2])

	return out, true
}

// rewriteIntCoercion converts explicit integer coercions to parseInt.
func rewriteIntCoercion(line string) (string, bool) {
	matched := false

	out := reToInteger.ReplaceAllStringFunc(line, func(m string) string {
		matched = true
		sub := reToInteger.FindStringSubmatch(m)
		return fmt.Sprintf("parseInt(%s, 10)", sub[1])
	})

	out = reParseInt.ReplaceAllStringFunc(out, func(m string) string {
		matched = true
		sub := reParseInt.FindStringSubmatch(m)
		return fmt.Sprintf("parseInt(%s, 10)", sub[1])
	})

	return out, matched
}
