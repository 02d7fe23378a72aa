// Package order contains the Order aggregate and its lifecycle state machine.
//
// An order moves Pending -> Borrowed -> Assigned -> Delivered; Return diverts
// a Borrowed or Assigned order back to Pending, detaching its driver. The
// aggregate owns every transition rule; callers coordinate the driver side of
// a transition (availability flips) within the same transaction.
package order
