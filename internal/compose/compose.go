package compose

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"soapui2postman/internal/assertion"
	"soapui2postman/internal/common"
	"soapui2postman/internal/issue"
	"soapui2postman/internal/model"
	"soapui2postman/internal/script"
	"soapui2postman/internal/transfer"
)

const component = "compose"

// ScriptBody is an ordered list of generated script lines.
type ScriptBody []string

// EventRole distinguishes the two lifecycle hooks of a request item.
type EventRole int

const (
	EventPreRequest EventRole = iota
	EventTest
)

// String returns the Postman listen name for the role.
func (r EventRole) String() string {
	switch r {
	case EventPreRequest:
		return "prerequest"
	case EventTest:
		return "test"
	default:
		return common.UnknownStr
	}
}

// TestEvent pairs a role with its generated body.
type TestEvent struct {
	Role EventRole
	Body ScriptBody
}

// Result is the composed output for one test case: the request that carries
// the two bodies, and the bodies themselves. Either body may be empty, never
// nil semantics are relied on (range over nil is fine downstream).
type Result struct {
	// Request carries the generated events. Synthetic when Placeholder is true.
	Request *model.RestRequestSpec
	// Placeholder is true when the case had no REST request step.
	Placeholder bool
	PreRequest  ScriptBody
	Test        ScriptBody
}

// Events returns the two generated events in fixed order.
func (r Result) Events() []TestEvent {
	return []TestEvent{
		{Role: EventPreRequest, Body: r.PreRequest},
		{Role: EventTest, Body: r.Test},
	}
}

// Composer carries the configurable policies of a conversion run. The zero
// value uses the comment-out fallback for free-form scripts.
type Composer struct {
	// ScriptFallback is the unmatched-line policy for free-form script steps.
	ScriptFallback script.Fallback
}

// Compose converts one test case with default policies.
func Compose(tc model.TestCase, log *issue.Log) Result {
	return Composer{}.Compose(tc, log)
}

// Compose converts one test case into exactly one pre-request body and one
// test body, preserving step order within each category and combining
// categories in the fixed composition order.
func (c Composer) Compose(tc model.TestCase, log *issue.Log) Result {
	res := Result{}

	// Classification pass; unsupported steps are reported and skipped
	// without affecting their siblings.
	categories := make([]Category, len(tc.Steps))
	for i, step := range tc.Steps {
		categories[i] = ClassifyStep(step)
		if categories[i] == CategoryUnsupported {
			log.Warn(component, step.Name, "unsupported step type %s; step skipped", step.Type)
		}
	}

	res.PreRequest = append(res.PreRequest, preamble(tc)...)

	// Pre-request body.
	res.PreRequest = appendCategory(res.PreRequest, tc, categories, CategoryProperties, log, convertProperties)
	res.PreRequest = appendCategory(res.PreRequest, tc, categories, CategoryPreRequestScript, log, c.convertScript)
	res.PreRequest = appendTransfers(res.PreRequest, tc, categories, true, log)
	res.PreRequest = appendCategory(res.PreRequest, tc, categories, CategoryDataSourceLoop, log, convertDataSourceLoop)

	// Test body.
	res.Test = appendAssertions(res.Test, tc, categories, log)
	res.Test = appendCategory(res.Test, tc, categories, CategoryTestScript, log, c.convertScript)
	res.Test = appendTransfers(res.Test, tc, categories, false, log)
	res.Test = appendCategory(res.Test, tc, categories, CategoryDataSink, log, convertDataSink)

	// Data sources are exported externally; note them so nothing vanishes.
	for i, step := range tc.Steps {
		if categories[i] == CategoryDataSource {
			log.Info(component, step.Name, "data source content is exported to an external data file")
		}
	}

	res.Request, res.Placeholder = pickRequest(tc, categories, log)

	return res
}

// appendCategory converts every step of one category, in original step order,
// isolating failures per step.
func appendCategory(body ScriptBody, tc model.TestCase, categories []Category, cat Category,
	log *issue.Log, convert func(model.TestStep, *issue.Log) string) ScriptBody {
	for i, step := range tc.Steps {
		if categories[i] != cat {
			continue
		}

		body = appendFragment(body, guarded(step, log, convert))
	}

	return body
}

// guarded runs one step conversion, converting a panic into an error issue
// so one broken step never aborts its siblings.
func guarded(step model.TestStep, log *issue.Log, convert func(model.TestStep, *issue.Log) string) (out string) {
	defer func() {
		if r := recover(); r != nil {
			log.Error(component, step.Name, "step conversion failed: %v", r)
			out = fmt.Sprintf("// Conversion of step %q failed; convert manually.", step.Name)
		}
	}()

	return convert(step, log)
}

// appendTransfers converts property-transfer steps whose request flag matches
// preRequest, in original step and transfer order.
func appendTransfers(body ScriptBody, tc model.TestCase, categories []Category, preRequest bool, log *issue.Log) ScriptBody {
	for i, step := range tc.Steps {
		if categories[i] != CategoryPropertyTransfer {
			continue
		}

		if IsPreRequestTransfer(step) != preRequest {
			continue
		}

		for _, spec := range step.Transfers {
			body = appendFragment(body, transfer.Resolve(spec, log))
		}
	}

	return body
}

// appendAssertions compiles the static assertions attached to every REST
// request step, in step order.
func appendAssertions(body ScriptBody, tc model.TestCase, categories []Category, log *issue.Log) ScriptBody {
	for i, step := range tc.Steps {
		if categories[i] != CategoryRestRequest || step.Request == nil {
			continue
		}

		for _, spec := range step.Request.Assertions {
			body = appendFragment(body, assertion.Compile(spec, log))
		}
	}

	return body
}

func (c Composer) convertScript(step model.TestStep, log *issue.Log) string {
	text := step.Properties["script"]
	if strings.TrimSpace(text) == "" {
		log.Info(component, step.Name, "script step has no script text")
		return ""
	}

	return script.TranspileWithFallback(text, script.RoleFreeForm, c.ScriptFallback)
}

// convertProperties seeds the variable store with the step's property bag.
func convertProperties(step model.TestStep, _ *issue.Log) string {
	var b strings.Builder

	for _, k := range sortedKeys(step.Properties) {
		fmt.Fprintf(&b, "pm.collectionVariables.set(%s, %s);\n",
			strconv.Quote(step.Name+"_"+k), strconv.Quote(step.Properties[k]))
	}

	return strings.TrimRight(b.String(), "\n")
}

func convertDataSourceLoop(step model.TestStep, log *issue.Log) string {
	log.Info(component, step.Name, "data source loop converted to a collection-runner note")

	target := step.Properties["targetStep"]
	if target == "" {
		return fmt.Sprintf("// Data source loop %q: iterate with a collection runner data file.", step.Name)
	}

	return fmt.Sprintf("// Data source loop %q repeats from step %q: iterate with a collection runner data file.",
		step.Name, target)
}

func convertDataSink(step model.TestStep, _ *issue.Log) string {
	var b strings.Builder

	fmt.Fprintf(&b, "// Data sink %q: sunk values are kept in collection variables.\n", step.Name)
	for _, k := range sortedKeys(step.Properties) {
		fmt.Fprintf(&b, "pm.collectionVariables.set(%s, %s);\n",
			strconv.Quote(step.Name+"_"+k), strconv.Quote(step.Properties[k]))
	}

	return strings.TrimRight(b.String(), "\n")
}

// pickRequest selects the first REST request step, or fabricates a
// placeholder request to carry the two bodies when the case has none.
func pickRequest(tc model.TestCase, categories []Category, log *issue.Log) (*model.RestRequestSpec, bool) {
	requests := make([]model.TestStep, 0, 1)
	for i, step := range tc.Steps {
		if categories[i] == CategoryRestRequest && step.Request != nil {
			requests = append(requests, step)
		}
	}

	if first, ok := common.First(requests); ok {
		return first.Request, false
	}

	log.Warn(component, tc.Name,
		"test case has no REST request step; emitted a synthetic placeholder request to carry the generated scripts")

	return &model.RestRequestSpec{
		Name:     tc.Name + " (placeholder)",
		Method:   "GET",
		Endpoint: "https://example.invalid/placeholder",
	}, true
}

func preamble(tc model.TestCase) ScriptBody {
	return ScriptBody{
		fmt.Sprintf("/* Converted from SoapUI test case %q. Review commented-out lines before use. */", tc.Name),
	}
}

// appendFragment splits a multi-line fragment into body lines, separating
// fragments with one blank line. Empty fragments add nothing.
func appendFragment(body ScriptBody, fragment string) ScriptBody {
	if strings.TrimSpace(fragment) == "" {
		return body
	}

	if len(body) > 0 {
		body = append(body, "")
	}

	return append(body, strings.Split(fragment, "\n")...)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
