package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrUnknownCredentialType = errors.New("unknown credential type")
	ErrUnknownNoteType       = errors.New("unknown note type")

	ErrVersionIsNotSpecified = errors.New("application version is not specified")
)
