// Package model defines the parsed SoapUI project entities consumed by the
// conversion engine.
//
// Entities are created once by the parser and are read-only afterwards:
//   - TestCase: ordered list of TestStep (order is semantically meaningful)
//   - TestStep: typed step with a property bag, optional REST request and
//     optional property transfers
//   - AssertionSpec: one assertion with a kind-specific configuration map
//   - PropertyTransferSpec: a source/target pair of step references and paths
//   - PathExpression: raw path plus its query-language tag
package model
