// Package engine implements the employee view derivation pipeline.
//
// Every render recomputes the visible page from the full collection:
//
//	Search -> gender filter -> salary sort -> paginate
//
// The pipeline is pure. ViewState holds the caller's knobs and every transition
// on it returns a new value; changing the query or the gender filter resets the
// page to 1 as part of the same transition.
package engine
