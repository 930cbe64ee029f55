package domain

import "errors"

var (
	ErrNotFound          = errors.New("resource not found")
	ErrEmptyText         = errors.New("no extracted text provided")
	ErrTextTooLarge      = errors.New("extracted text exceeds maximum allowed size")
	ErrInvalidThresholds = errors.New("invalid classifier thresholds")
	ErrHistoryDisabled   = errors.New("classification history is disabled")
	ErrExportFailed      = errors.New("classification export failed")
	ErrCacheMiss         = errors.New("cache miss")
)
