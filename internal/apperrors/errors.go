package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates the caller is authenticated but not permitted to act on the resource.
var ErrForbidden = errors.New("forbidden")

// ErrUnauthorized indicates missing, malformed or expired credentials.
var ErrUnauthorized = errors.New("unauthorized")
