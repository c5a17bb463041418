// Package postman builds and serializes the destination object graphs: a
// collection (v2.1 schema) whose items carry the generated pre-request and
// test events, and an environment seeded from project-level properties.
package postman
