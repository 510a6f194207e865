// Package errs holds the typed errors shared by the dispatch domain, its use
// cases and adapters.
//
// Every type pairs a sentinel (ErrObjectNotFound, ErrPreconditionFailed, ...)
// with a struct carrying the details. Constructors come in two flavours, with
// and without a cause, and Unwrap always yields the sentinel so callers can
// classify failures with errors.Is and read details with errors.As.
//
// The HTTP adapter maps the sentinels onto status codes:
//   - ErrValueIsRequired, ErrValueIsInvalid, ErrValueIsOutOfRange: 400
//   - ErrForbidden: 403
//   - ErrObjectNotFound: 404
//   - ErrPreconditionFailed, ErrDependentsExist, ErrAlreadyExists: 409
package errs
