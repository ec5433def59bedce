// Package order models the order entity referenced by the dispatch workflows.
//
// Orders are owned by the external order store and keyed by an application
// level invoice number. This core only transitions their status
// (Pending -> Processing -> Delivered|Cancelled) and writes the denormalized
// rider name during assignment. Delivered and Cancelled are terminal states.
package order
