package domain

import "errors"

var (
	ErrUploadNotFound      = errors.New("upload not found")
	ErrSessionNotFound     = errors.New("session not found")
	ErrSessionClosed       = errors.New("session closed")
	ErrFileTooLarge        = errors.New("file exceeds maximum size")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrEmptyFile           = errors.New("file is empty")
	ErrVopGateClosed       = errors.New("verification of payee still pending")
	ErrConfirmationNeeded  = errors.New("action requires confirmation")
	ErrNotAuthenticated    = errors.New("no active session token")
	ErrValidationFailed    = errors.New("validation run failed")
)
