// Package rider provides the Rider aggregate root for the dispatch domain.
//
// A rider is registered by a store partner, carries a set of globally unique
// identity fields (username, email, phone, national IDs, licence number), and
// tracks an availability flag that is true while the rider is mid-delivery.
//
// Key business rules:
//   - All identity fields are validated at construction and unique across riders
//   - Availability transitions are explicit; repeating the current state is a conflict
//   - Credential comparison is delegated to a pluggable verifier, never done here
package rider
