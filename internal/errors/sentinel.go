package errors

import "errors"

// Sentinel errors for the failure kinds of a generation run.
var (
	// ErrArgument indicates missing or invalid command-line input.
	ErrArgument = errors.New("invalid argument")

	// ErrTemplateLoad indicates a template could not be resolved, read or parsed.
	ErrTemplateLoad = errors.New("template load error")

	// ErrRender indicates a template referenced an undefined symbol or failed to execute.
	ErrRender = errors.New("render error")

	// ErrIO indicates a directory or file could not be created or written.
	ErrIO = errors.New("i/o error")
)
