// Package order holds the Order aggregate and its lifecycle.
//
// Every status change goes through Transition, a single table of legal
// (status, event) pairs. An illegal pair yields *errs.PreconditionFailedError
// and leaves the order untouched.
//
// Delivery needs two confirmations, one from the driver of the assigned
// vehicle and one from the requester. Each side confirms independently and a
// repeated confirmation is a no-op; the order becomes DELIVERED exactly once.
package order
