package compose

import (
	"strings"

	"soapui2postman/internal/common"
	"soapui2postman/internal/model"
)

// Category is the composition role of a classified step.
type Category int

const (
	CategoryUnsupported Category = iota
	CategoryRestRequest
	CategoryPreRequestScript
	CategoryTestScript
	CategoryPropertyTransfer
	CategoryDataSource
	CategoryDataSourceLoop
	CategoryDataSink
	CategoryProperties

	// CategoryTotal is a constant that represents the total number of categories defined
	CategoryTotal = int(iota)
)

// String returns a human-readable category name.
func (c Category) String() string {
	switch c {
	case CategoryUnsupported:
		return "unsupported"
	case CategoryRestRequest:
		return "rest-request"
	case CategoryPreRequestScript:
		return "pre-request-script"
	case CategoryTestScript:
		return "test-script"
	case CategoryPropertyTransfer:
		return "property-transfer"
	case CategoryDataSource:
		return "data-source"
	case CategoryDataSourceLoop:
		return "data-source-loop"
	case CategoryDataSink:
		return "data-sink"
	case CategoryProperties:
		return "properties"
	default:
		return common.UnknownStr
	}
}

// Script steps are split between the two bodies by name keywords.
var (
	preRequestKeywords = []string{"setup", "prerequest", "pre-request"}
	testKeywords       = []string{"test", "assertion", "validate"}
)

// ClassifyStep maps a step to its composition category. The function is
// total: every step type lands somewhere, and a script step whose name
// matches neither keyword set is classified unsupported.
func ClassifyStep(step model.TestStep) Category {
	switch step.Type {
	case model.StepRestRequest:
		return CategoryRestRequest
	case model.StepPropertyTransfer:
		return CategoryPropertyTransfer
	case model.StepDataSource:
		return CategoryDataSource
	case model.StepDataSourceLoop:
		return CategoryDataSourceLoop
	case model.StepDataSink:
		return CategoryDataSink
	case model.StepProperties:
		return CategoryProperties
	case model.StepScript:
		return classifyScript(step.Name)
	default:
		return CategoryUnsupported
	}
}

// classifyScript matches the step name case-insensitively against the two
// fixed keyword sets, pre-request first.
func classifyScript(name string) Category {
	lower := strings.ToLower(name)

	for _, kw := range preRequestKeywords {
		if strings.Contains(lower, kw) {
			return CategoryPreRequestScript
		}
	}

	for _, kw := range testKeywords {
		if strings.Contains(lower, kw) {
			return CategoryTestScript
		}
	}

	return CategoryUnsupported
}

// transferRequestKeywords flag a transfer step as pre-request when any of
// its targets mention them.
var transferRequestKeywords = []string{"header", "endpoint", "request"}

// IsPreRequestTransfer reports whether a property-transfer step belongs in
// the pre-request body. A step is pre-request-flagged iff any of its
// transfers' target references contains a request-related keyword; otherwise
// it runs post-response.
func IsPreRequestTransfer(step model.TestStep) bool {
	for _, t := range step.Transfers {
		subject := strings.ToLower(t.Target.Step + " " + t.Target.Property + " " + t.TargetPath.Raw)
		for _, kw := range transferRequestKeywords {
			if strings.Contains(subject, kw) {
				return true
			}
		}
	}

	return false
}
