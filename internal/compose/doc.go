// Package compose orders a test case's steps and concatenates the other
// components' output into exactly two script bodies.
//
// The composer is the only component aware of test-case-level ordering. For
// every test case it produces one pre-request body and one test body (either
// may be empty, never nil), in a fixed composition order:
//
//	pre-request = preamble ++ properties ++ setup scripts ++
//	              request-flagged transfers ++ data-source-loop setup
//	test        = request assertions ++ test scripts ++
//	              post-response transfers ++ data sinks
//
// Fault isolation is per-step: a failing step conversion is recorded as an
// error issue and never prevents processing of sibling steps.
package compose
