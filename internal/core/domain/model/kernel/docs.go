// Package kernel contains the shared value objects of the dispatch domain:
// entity identifiers and the validated string types (phone numbers, zip codes)
// that several aggregates rely on.
//
// All value objects are immutable and constructor-validated. The zero value of
// each type is invalid; construct them through the provided factory functions.
package kernel
