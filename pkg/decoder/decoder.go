package decoder

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/dusksociety/dsm/pkg/records"
)

// DefaultMaxSize is the maximum size of a single submission document (1MB).
const DefaultMaxSize = 1 << 20

// Format is the encoding of a submission document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat resolves a format name; "yml" is accepted as YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// Detect picks the format from a file extension, defaulting to JSON.
func Detect(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Decode reads one submission document in the given format.
func Decode(format Format, r io.Reader) (records.Input, error) {
	switch format {
	case FormatJSON:
		return JSON(r)
	case FormatYAML:
		return YAML(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// readLimited reads r up to DefaultMaxSize bytes.
func readLimited(r io.Reader) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(r, DefaultMaxSize+1))
	if err != nil {
		return nil, err
	}
	if len(body) > DefaultMaxSize {
		return nil, fmt.Errorf("%w: max %d bytes", ErrTooLarge, DefaultMaxSize)
	}
	return body, nil
}
