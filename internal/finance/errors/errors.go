package errors

import (
	"errors"
	"fmt"
)

type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

func NewNotFoundError(resource string) error {
	return &NotFoundError{Resource: resource}
}

func IsNotFoundError(err error) bool {
	var notFoundError *NotFoundError
	return errors.As(err, &notFoundError)
}

type AccessDeniedError struct {
	Msg string
}

func (e *AccessDeniedError) Error() string {
	return e.Msg
}

func NewAccessDeniedError(msg string) error {
	return &AccessDeniedError{Msg: msg}
}

func IsAccessDeniedError(err error) bool {
	var accessDeniedError *AccessDeniedError
	return errors.As(err, &accessDeniedError)
}

type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string {
	return e.Msg
}

func NewConflictError(msg string) error {
	return &ConflictError{Msg: msg}
}

func IsConflictError(err error) bool {
	var conflictError *ConflictError
	return errors.As(err, &conflictError)
}

type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func NewValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}

func IsValidationError(err error) bool {
	var validationError *ValidationError
	return errors.As(err, &validationError)
}

var (
	ErrWalletAccessDenied = NewAccessDeniedError("you do not have access to this wallet")
	ErrOwnerRequired      = NewAccessDeniedError("you must be an owner to perform this action")

	ErrWalletNotFound      = NewNotFoundError("Wallet")
	ErrCategoryNotFound    = NewNotFoundError("Category")
	ErrSubcategoryNotFound = NewNotFoundError("Subcategory")
	ErrTransactionNotFound = NewNotFoundError("Transaction")

	ErrSubcategoryWalletMismatch = NewAccessDeniedError("subcategory does not belong to this wallet")
)
