package errs

import (
	"errors"
	"net/http"
)

const (
	ErrStatusInternalServer = http.StatusInternalServerError
	ErrStatusClient         = http.StatusUnprocessableEntity
	ErrStatusNotLoggedIn    = http.StatusUnauthorized
	ErrStatusNoPermission   = http.StatusForbidden
	ErrStatusNotFound       = http.StatusNotFound
)

var (
	ErrInternalServer     = errors.New("Internal server error")
	ErrFillAllFields      = errors.New("Fill in all fields")
	ErrPasswordMismatch   = errors.New("Passwords do not match")
	ErrEmailAlreadyUsed   = errors.New("Email already exists")
	ErrInvalidCredentials = errors.New("Invalid Credentials")
	ErrWrongPassword      = errors.New("Wrong password")
	ErrInvalidCategory    = errors.New("Category is not supported")
	ErrNoFileUploaded     = errors.New("Please choose an image")
	ErrFileTooLarge       = errors.New("File size exceeds the allowed limit")
	ErrNotLoggedIn        = errors.New("Invalid or expired JWT")
	ErrNoPermission       = errors.New("Unauthorized to modify this resource")
	ErrUserNotFound       = errors.New("User not found")
	ErrProductNotFound    = errors.New("Product not found")
	ErrNotFound           = errors.New("Resource not found")
)

var errorMap = map[error]int{
	ErrInternalServer:     ErrStatusInternalServer,
	ErrFillAllFields:      ErrStatusClient,
	ErrPasswordMismatch:   ErrStatusClient,
	ErrEmailAlreadyUsed:   ErrStatusClient,
	ErrInvalidCredentials: ErrStatusClient,
	ErrWrongPassword:      ErrStatusClient,
	ErrInvalidCategory:    ErrStatusClient,
	ErrNoFileUploaded:     ErrStatusClient,
	ErrFileTooLarge:       ErrStatusClient,
	ErrNotLoggedIn:        ErrStatusNotLoggedIn,
	ErrNoPermission:       ErrStatusNoPermission,
	ErrUserNotFound:       ErrStatusNotFound,
	ErrProductNotFound:    ErrStatusNotFound,
	ErrNotFound:           ErrStatusNotFound,
}

func GetErrorStatusCode(err error) int {
	errStatusCode, ok := errorMap[err]
	if !ok {
		errStatusCode = errorMap[ErrInternalServer]
	}
	return errStatusCode
}
