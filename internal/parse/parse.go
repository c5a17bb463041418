package parse

import (
	"encoding/xml"
	"fmt"
	"os"
	"strings"

	"soapui2postman/internal/model"
)

// Project is a parsed SoapUI project.
type Project struct {
	Name       string
	Properties map[string]string
	Suites     []Suite
}

// Suite groups the test cases of one SoapUI test suite.
type Suite struct {
	Name  string
	Cases []model.TestCase
}

// LoadFile loads and parses a SoapUI project XML file from the given path.
func LoadFile(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read project file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses project XML data into a Project.
func Parse(data []byte) (*Project, error) {
	var xp xmlProject

	if err := xml.Unmarshal(data, &xp); err != nil {
		return nil, fmt.Errorf("failed to parse project XML: %w", err)
	}

	if xp.Name == "" && len(xp.TestSuites) == 0 {
		return nil, fmt.Errorf("not a SoapUI project: no name and no test suites found")
	}

	p := &Project{
		Name:       xp.Name,
		Properties: propertyMap(xp.Properties),
	}

	for _, xs := range xp.TestSuites {
		suite := Suite{Name: xs.Name}
		for _, xc := range xs.TestCases {
			suite.Cases = append(suite.Cases, buildTestCase(xc))
		}
		p.Suites = append(p.Suites, suite)
	}

	return p, nil
}

func buildTestCase(xc xmlTestCase) model.TestCase {
	tc := model.TestCase{Name: xc.Name}

	for _, xs := range xc.TestSteps {
		tc.Steps = append(tc.Steps, buildTestStep(xs))
	}

	return tc
}

func buildTestStep(xs xmlTestStep) model.TestStep {
	step := model.TestStep{
		ID:         xs.ID,
		Name:       xs.Name,
		Type:       StepTypeOf(xs.Type),
		Properties: map[string]string{},
	}

	if xs.Config.Script != "" {
		step.Properties["script"] = xs.Config.Script
	}
	if xs.Config.TargetStep != "" {
		step.Properties["targetStep"] = xs.Config.TargetStep
	}
	for k, v := range propertyMap(xs.Config.Properties) {
		step.Properties[k] = v
	}
	for _, extra := range xs.Config.Extra {
		if extra.Value != "" {
			step.Properties[extra.XMLName.Local] = strings.TrimSpace(extra.Value)
		}
	}

	if step.Type == model.StepRestRequest && xs.Config.RestRequest != nil {
		step.Request = buildRequest(xs.Config.RestRequest)
	}

	for _, xt := range xs.Config.Transfers {
		step.Transfers = append(step.Transfers, buildTransfer(xt))
	}

	return step
}

func buildRequest(xr *xmlRestStep) *model.RestRequestSpec {
	req := &model.RestRequestSpec{
		Name:     xr.Name,
		Method:   xr.Method,
		Endpoint: strings.TrimSpace(xr.Endpoint),
		Path:     xr.Path,
		Body:     xr.Body,
		Headers:  entryMap(xr.Headers),
		Params:   entryMap(xr.Params),
	}

	if req.Method == "" {
		req.Method = "GET"
	}

	for _, xa := range xr.Assertions {
		req.Assertions = append(req.Assertions, buildAssertion(xa))
	}

	return req
}

func buildAssertion(xa xmlAssertion) model.AssertionSpec {
	kind := AssertionKindOf(xa.Type)

	config := map[string]string{}
	for _, e := range xa.Configuration.Entries {
		config[normalizeConfigKey(kind, e.XMLName.Local)] = strings.TrimSpace(e.Value)
	}

	name := xa.Name
	if name == "" {
		name = xa.Type
	}

	return model.AssertionSpec{
		Name:    name,
		Kind:    kind,
		RawType: xa.Type,
		Config:  config,
	}
}

func buildTransfer(xt xmlTransfer) model.PropertyTransferSpec {
	lang := PathLanguageOf(xt.Language)

	return model.PropertyTransferSpec{
		Name:       xt.Name,
		Source:     model.StepRef{Step: xt.SourceStep, Property: xt.SourceType},
		SourcePath: model.PathExpression{Raw: xt.SourcePath, Language: lang},
		Target:     model.StepRef{Step: xt.TargetStep, Property: xt.TargetType},
		TargetPath: model.PathExpression{Raw: xt.TargetPath, Language: lang},
	}
}

// StepTypeOf maps a SoapUI step type string onto the closed step type set.
func StepTypeOf(raw string) model.StepType {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "restrequest", "httprequest", "request":
		return model.StepRestRequest
	case "groovy", "script":
		return model.StepScript
	case "transfer", "propertytransfer", "property-transfer":
		return model.StepPropertyTransfer
	case "datasource":
		return model.StepDataSource
	case "datasourceloop":
		return model.StepDataSourceLoop
	case "datasink":
		return model.StepDataSink
	case "properties":
		return model.StepProperties
	default:
		return model.StepOther
	}
}

// AssertionKindOf maps a SoapUI assertion type string onto the closed
// assertion taxonomy. Unknown strings map to AssertionUnknown; the compiler
// emits a placeholder for those instead of dropping them.
func AssertionKindOf(raw string) model.AssertionKind {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "valid http status codes":
		return model.AssertionStatusCodes
	case "jsonpath match", "jsonpath existence match":
		return model.AssertionJSONPathMatch
	case "xpath match":
		return model.AssertionXPathMatch
	case "simple contains":
		return model.AssertionContains
	case "response sla":
		return model.AssertionSLA
	case "groovyscriptassertion", "script assertion":
		return model.AssertionInlineScript
	default:
		return model.AssertionUnknown
	}
}

// PathLanguageOf maps a SoapUI transfer language string onto the path
// language set. Empty or unknown strings stay unspecified so the resolver's
// heuristic can run.
func PathLanguageOf(raw string) model.PathLanguage {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "XPATH":
		return model.PathXPath
	case "JSONPATH":
		return model.PathJSONPath
	case "PROPERTY":
		return model.PathProperty
	default:
		return model.PathUnspecified
	}
}

// normalizeConfigKey maps SoapUI configuration element names onto the config
// keys the assertion compiler expects.
func normalizeConfigKey(kind model.AssertionKind, local string) string {
	switch {
	case kind == model.AssertionXPathMatch && local == "path":
		return "xpath"
	case local == "content":
		return "expectedContent"
	default:
		return local
	}
}

func propertyMap(props []xmlProperty) map[string]string {
	m := make(map[string]string, len(props))
	for _, p := range props {
		if p.Name != "" {
			m[p.Name] = p.Value
		}
	}

	return m
}

func entryMap(entries []xmlEntry) map[string]string {
	m := make(map[string]string, len(entries))
	for _, e := range entries {
		if e.Key != "" {
			m[e.Key] = e.Value
		}
	}

	return m
}
