// Package parse reads a SoapUI project XML file into the conversion model.
//
// Parsing is deliberately shallow: it extracts test suites, test cases,
// steps, assertions, and transfers, and leaves everything it does not
// understand in each step's property bag. Step type and assertion type
// strings are mapped onto the closed enums of the model package; unknown
// strings map to the unknown members rather than failing the parse.
package parse
