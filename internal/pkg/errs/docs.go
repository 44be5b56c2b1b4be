// Package errs provides standardized error types for the storefront order
// service. It implements a consistent pattern for error creation, formatting,
// and unwrapping that is used throughout the application.
//
// The package includes several error types for common failure scenarios:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value failed validation
//   - ValueIsOutOfRangeError: a value lies outside its allowed interval
//   - ObjectNotFoundError: an object cannot be found
//   - VersionIsInvalidError: an aggregate version check failed
//
// Each error type follows the same pattern:
//   - a sentinel error variable (e.g. ErrValueIsRequired)
//   - a struct type carrying the error details
//   - constructor functions with and without a cause
//   - Error() for formatting and Unwrap() for errors.Is support
//
// The HTTP layer relies on these sentinels to map domain failures onto the
// externally visible error taxonomy (VALIDATION_ERROR, NOT_FOUND, FORBIDDEN,
// PREPARATION_TIME_ALREADY_CHANGED).
package errs
