// Package roster holds the authoritative in-memory employee collection.
//
// Records are supplied once by a record source and are then only changed through
// the closed set of typed updates in this package (UpdateFirstName, UpdateLastName,
// UpdateEmail, UpdateGender, UpdateSalary) or removed with Delete. Record IDs never
// change after load.
package roster
