package graphio

import "errors"

var (
	// ErrMalformedHCP indicates HCP text that cannot be parsed.
	ErrMalformedHCP = errors.New("graphio: malformed HCP input")

	// ErrMalformedDocument indicates a YAML/JSON graph document that cannot
	// be decoded.
	ErrMalformedDocument = errors.New("graphio: malformed graph document")

	// ErrUnknownFormat is returned for an unsupported output format.
	ErrUnknownFormat = errors.New("graphio: unknown format")

	// ErrUnsupportedFile is returned by LoadFile for an unknown extension.
	ErrUnsupportedFile = errors.New("graphio: unsupported file type")
)

// Output formats accepted by WriteReport and the CLI.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
	FormatHCP  = "hcp"
)
