// Package errs provides the typed validation and lookup errors shared by the
// domain model, the application handlers and the adapters.
//
// Every error type follows the same pattern:
//   - a sentinel (ErrValueIsRequired, ErrObjectNotFound, ...) that callers match with errors.Is
//   - a struct carrying the details (parameter name, offending value, bounds)
//   - a constructor with and without an underlying cause
//   - Unwrap returning the sentinel, so the category survives wrapping
//
// The HTTP adapter maps the value errors to 400 responses and ObjectNotFoundError
// to an absent result.
package errs
