package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrLocked indicates that a record is audit-verified and cannot be deleted
// until it is un-verified.
var ErrLocked = errors.New("record is audit locked")

// ErrAuthRequired indicates that the external audit service rejected the call
// for lack of authorization.
var ErrAuthRequired = errors.New("authorization required")
