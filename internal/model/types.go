package model

import "soapui2postman/internal/common"

// StepType classifies a SoapUI test step.
type StepType int

const (
	StepOther StepType = iota
	StepScript
	StepRestRequest
	StepPropertyTransfer
	StepDataSource
	StepDataSourceLoop
	StepDataSink
	StepProperties

	// StepTypeTotal is a constant that represents the total number of step types defined
	StepTypeTotal = int(iota)
)

// String returns a human-readable step type name.
func (t StepType) String() string {
	switch t {
	case StepOther:
		return "other"
	case StepScript:
		return "script"
	case StepRestRequest:
		return "rest-request"
	case StepPropertyTransfer:
		return "property-transfer"
	case StepDataSource:
		return "data-source"
	case StepDataSourceLoop:
		return "data-source-loop"
	case StepDataSink:
		return "data-sink"
	case StepProperties:
		return "properties"
	default:
		return common.UnknownStr
	}
}

// TestStep is one unit of work in a test case. Immutable once classified.
type TestStep struct {
	// ID is the step identifier from the source project.
	ID string
	// Name is the step's display name.
	Name string
	// Type is the classified step type.
	Type StepType
	// Properties is the free-form key/value property bag.
	Properties map[string]string
	// Request is the attached REST request, if Type is StepRestRequest.
	Request *RestRequestSpec
	// Transfers are the ordered property transfers, if Type is StepPropertyTransfer.
	Transfers []PropertyTransferSpec
}

// RestRequestSpec describes a REST request carried by a test step.
type RestRequestSpec struct {
	Name       string
	Method     string
	Endpoint   string
	Path       string
	Body       string
	Headers    map[string]string
	Params     map[string]string
	Assertions []AssertionSpec
}

// AssertionKind identifies one entry of the closed assertion taxonomy.
type AssertionKind int

const (
	AssertionUnknown AssertionKind = iota
	AssertionStatusCodes
	AssertionJSONPathMatch
	AssertionXPathMatch
	AssertionContains
	AssertionSLA
	AssertionInlineScript

	// AssertionKindTotal is a constant that represents the total number of assertion kinds defined
	AssertionKindTotal = int(iota)
)

// String returns a human-readable assertion kind name.
func (k AssertionKind) String() string {
	switch k {
	case AssertionUnknown:
		return "unknown-assertion"
	case AssertionStatusCodes:
		return "status-codes"
	case AssertionJSONPathMatch:
		return "jsonpath-match"
	case AssertionXPathMatch:
		return "xpath-match"
	case AssertionContains:
		return "contains"
	case AssertionSLA:
		return "sla"
	case AssertionInlineScript:
		return "inline-script"
	default:
		return common.UnknownStr
	}
}

// AssertionSpec is one assertion attached to a request step.
// Config keys are kind-specific; a missing required key suppresses emission
// for that instance only.
type AssertionSpec struct {
	Name string
	Kind AssertionKind
	// RawType is the source tool's assertion type string, kept for
	// placeholder comments on unrecognized kinds.
	RawType string
	Config  map[string]string
}

// StepRef names the owner of a transferred value: a prior step's stored
// property, or the current response.
type StepRef struct {
	// Step is the referenced step name. Empty means the current request/response.
	Step string
	// Property is the referenced property name on that step.
	Property string
}

// IsResponse reports whether the reference denotes the current response
// rather than a named prior step.
func (r StepRef) IsResponse() bool {
	if r.Step == "" {
		return true
	}

	switch r.Property {
	case "Response", "ResponseAsXml", "response":
		return true
	}

	return false
}

// String renders the reference for diagnostics.
func (r StepRef) String() string {
	if r.Step == "" {
		return "<response>"
	}

	if r.Property == "" {
		return r.Step
	}

	return r.Step + "#" + r.Property
}

// PropertyTransferSpec copies a value addressed by a source path into a
// target addressed by a target path.
type PropertyTransferSpec struct {
	Name       string
	Source     StepRef
	SourcePath PathExpression
	Target     StepRef
	TargetPath PathExpression
}

// TestCase is an ordered list of test steps. Step order must be preserved in
// every generated body.
type TestCase struct {
	Name  string
	Steps []TestStep
}
