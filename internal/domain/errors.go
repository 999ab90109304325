package domain

import "errors"

var (
	// ErrAuth means the credential could not be acquired or refreshed. Nothing
	// after it can succeed, so it aborts the whole run.
	ErrAuth = errors.New("feed authentication failed")

	// ErrMissingKey means a record carries no natural key on either the primary
	// or the fallback field. The record is skipped; the batch continues.
	ErrMissingKey = errors.New("missing natural key")

	// ErrParse means an upstream payload is malformed XML. The entity is marked
	// processed so it cannot become a poison pill.
	ErrParse = errors.New("malformed feed payload")
)
