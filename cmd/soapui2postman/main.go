// Package main provides the CLI entrypoint for soapui2postman.
//
// soapui2postman converts a SoapUI/ReadyAPI project into a Postman
// collection:
//   - Parses the project XML into test suites, cases, and steps
//   - Transpiles inline Groovy scripts, assertions, and property transfers
//     into Postman pre-request and test scripts
//   - Writes the collection, an optional environment, and an issue report
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
