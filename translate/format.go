package translate

import (
	"path/filepath"
	"strings"
)

//go:generate go tool stringer --linecomment --type Format --output format_string.go

// Format identifies an output serialization.
type Format int

const (
	FormatTOML Format = iota // toml
	FormatYAML               // yaml
	FormatJSON               // json
)

// Formats lists the supported formats by name.
var Formats = []string{FormatTOML.String(), FormatYAML.String(), FormatJSON.String()}

// ParseFormat returns the format with the given case-insensitive name.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return 0, ErrUnknownFormat.Msgf("unknown output format %q", name)
	}
}

// FormatFromPath infers the format from the extension of path.
// Unknown or missing extensions select [FormatTOML].
func FormatFromPath(path string) Format {
	f, err := ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return FormatTOML
	}

	return f
}

// Extension returns the conventional file extension of f, with its dot.
func (f Format) Extension() string {
	return "." + f.String()
}
