// Package ingest loads the employee records that seed a roster.
//
// Records come either from the embedded sample directory or from JSON and
// YAML files. A file holds a bare list of records or an object with an
// "employees" key. Loaded records are normalized before use: ids are checked
// for uniqueness, missing ids are assigned, and gender and salary are
// validated the same way roster edits are.
package ingest
