package domain

import "errors"

var (
	ErrDeviceNotFound  = errors.New("device not found")
	ErrOptionsNotFound = errors.New("device options not found")
	ErrUploadNotFound  = errors.New("upload not found")
	ErrNoFilePart      = errors.New("multipart request has no file part")
	ErrTokenInvalid    = errors.New("token invalid")
	ErrTokenExpired    = errors.New("token expired")
	ErrTokenRevoked    = errors.New("token revoked")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrForbidden       = errors.New("forbidden")
)
