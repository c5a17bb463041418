// Package assertion compiles SoapUI assertions into Postman test blocks.
//
// Dispatch is total over the closed assertion taxonomy; every kind maps to
// exactly one generation rule and unrecognized kinds emit a commented
// placeholder plus a warning issue instead of disappearing. Generated test
// block names always equal the assertion's original name so they can be
// cross-referenced with the issue log.
package assertion
