package config

import "errors"

var (
	// ErrMissingKey means the key is unset and no default was supplied.
	ErrMissingKey = errors.New("config key not set")
	// ErrTemplateResolution means a placeholder index had no replacement.
	ErrTemplateResolution = errors.New("template placeholder has no replacement")
	// ErrInvalidNumber means the value is not a finite base-10 number.
	ErrInvalidNumber = errors.New("value is not a valid number")
)
