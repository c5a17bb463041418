// Package pathexpr translates SoapUI path expressions into Postman sandbox
// JavaScript extraction code.
//
// Translation approach mirrors the query language:
//   - property / jsonpath: chained optional access, literal bracket indexing,
//     wildcard segments expanded into an accumulating loop
//   - xpath: a self-contained DOM evaluation block that branches on the
//     XPath result type and degrades to null on failure
//
// Translation is referentially transparent: identical arguments always yield
// byte-identical code text.
package pathexpr
