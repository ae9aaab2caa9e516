package domain

import "errors"

var (
	ErrEmptyBatch          = errors.New("no documents supplied")
	ErrBatchTooLarge       = errors.New("too many documents in one batch")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
)
