package decoder

import "errors"

// Common decoding errors
var (
	ErrFailedToParseJSON = errors.New("failed to parse JSON submission")
	ErrFailedToParseYAML = errors.New("failed to parse YAML submission")
	ErrNotObject         = errors.New("submission must be a single object")
	ErrTooLarge          = errors.New("submission too large")
	ErrUnsupportedFormat = errors.New("unsupported submission format")
)
