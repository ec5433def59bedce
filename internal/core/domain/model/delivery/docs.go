// Package delivery provides the delivery ledger Record aggregate: one entry
// per (order, rider) assignment tracking assignment and completion times, the
// delivered amount, and the binary delivered flag.
//
// A record is created by the assignment workflow and mutated exactly once by
// the resolution workflow, reaching Delivered or Cancelled; any attempt to
// resolve it again is rejected.
package delivery
