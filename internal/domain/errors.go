package domain

import "errors"

var (
	// ErrInvalidRecord marks a row that failed schema validation.
	// The row is skipped; the run continues.
	ErrInvalidRecord = errors.New("invalid feedback record")

	// ErrEmptyDataset means zero valid records survived normalization
	// (or filtering). The run aborts.
	ErrEmptyDataset = errors.New("dataset contains no valid records")

	// ErrDatasetNotFound means the requested dataset is unknown or expired.
	ErrDatasetNotFound = errors.New("dataset not found")

	// ErrMissingCommentColumn means the input has no comment column at all.
	ErrMissingCommentColumn = errors.New("input is missing required comment column")
)
