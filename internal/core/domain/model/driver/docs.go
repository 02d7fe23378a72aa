// Package driver contains the Driver aggregate: identity, contact fields,
// and the binary availability flag the registry couples to order assignment.
package driver
