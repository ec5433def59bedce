// Package services contains stateless domain services that sit outside any
// single aggregate: credential verification for rider logins and the
// assignment policy applied before a rider is attached to an order.
package services
