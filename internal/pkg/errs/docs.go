// Package errs provides the typed error taxonomy of the waste collection service.
//
// Every error type pairs a sentinel with a struct carrying details:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: malformed or missing input
//   - ObjectNotFoundError: a referenced request, site or collector does not exist
//   - InvalidTransitionError: a lifecycle operation was attempted from the wrong status
//   - AlreadyExistsError: a uniqueness constraint was violated (duplicate certificate, tax id)
//   - StorageError: an unexpected persistence failure
//
// Boundaries never inspect messages. They call KindOf, which walks the wrap
// chain with errors.Is and returns a Kind discriminant.
package errs
