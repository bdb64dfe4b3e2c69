package domain

import "errors"

var (
	ErrNotFound            = errors.New("resource not found")
	ErrSessionNotFound     = errors.New("session not found")
	ErrPrerequisiteMissing = errors.New("extraction has not been performed for this session")
	ErrSessionBusy         = errors.New("a conversation exchange is already in flight for this session")
	ErrUnsupportedFormat   = errors.New("unsupported document format")
	ErrCapabilityTimeout   = errors.New("extraction capability timed out")
	ErrCapabilityFailure   = errors.New("extraction capability failed")
	ErrUnknownTool         = errors.New("unknown verification tool")
	ErrCustomerNotFound    = errors.New("customer record not found")
	ErrInvalidRequest      = errors.New("invalid request payload")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrArchiveFailed       = errors.New("document archive to storage failed")
)
