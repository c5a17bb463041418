package parse

import "encoding/xml"

// Raw XML shapes. Element names match SoapUI local names; the con: namespace
// prefix is irrelevant to matching.
type xmlProject struct {
	Name       string         `xml:"name,attr"`
	Properties []xmlProperty  `xml:"properties>property"`
	TestSuites []xmlTestSuite `xml:"testSuite"`
}

type xmlTestSuite struct {
	Name      string        `xml:"name,attr"`
	TestCases []xmlTestCase `xml:"testCase"`
}

type xmlTestCase struct {
	Name      string        `xml:"name,attr"`
	TestSteps []xmlTestStep `xml:"testStep"`
}

type xmlTestStep struct {
	ID     string        `xml:"id,attr"`
	Type   string        `xml:"type,attr"`
	Name   string        `xml:"name,attr"`
	Config xmlStepConfig `xml:"config"`
}

type xmlStepConfig struct {
	Script      string        `xml:"script"`
	RestRequest *xmlRestStep  `xml:"restRequest"`
	Transfers   []xmlTransfer `xml:"transfers"`
	Properties  []xmlProperty `xml:"properties>property"`
	TargetStep  string        `xml:"targetStep"`
	Extra       []xmlAnyElem  `xml:",any"`
}

type xmlRestStep struct {
	Name       string         `xml:"name,attr"`
	Method     string         `xml:"method,attr"`
	Endpoint   string         `xml:"endpoint"`
	Path       string         `xml:"path,attr"`
	Body       string         `xml:"request"`
	Headers    []xmlEntry     `xml:"headers>entry"`
	Params     []xmlEntry     `xml:"parameters>entry"`
	Assertions []xmlAssertion `xml:"assertion"`
}

type xmlAssertion struct {
	Type          string             `xml:"type,attr"`
	Name          string             `xml:"name,attr"`
	Configuration xmlAssertionConfig `xml:"configuration"`
}

type xmlAssertionConfig struct {
	Entries []xmlAnyElem `xml:",any"`
}

type xmlTransfer struct {
	Name       string `xml:"name"`
	SourceStep string `xml:"sourceStep"`
	SourceType string `xml:"sourceType"`
	SourcePath string `xml:"sourcePath"`
	TargetStep string `xml:"targetStep"`
	TargetType string `xml:"targetType"`
	TargetPath string `xml:"targetPath"`
	Language   string `xml:"type"`
}

type xmlProperty struct {
	Name  string `xml:"name"`
	Value string `xml:"value"`
}

type xmlEntry struct {
	Key   string `xml:"key,attr"`
	Value string `xml:"value,attr"`
}

// xmlAnyElem captures arbitrary key/value children by local element name.
type xmlAnyElem struct {
	XMLName xml.Name
	Value   string `xml:",chardata"`
}
