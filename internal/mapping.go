package internal

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// FieldSeparator separates the entries of a mapping flag.
	FieldSeparator = ","

	// EnvSeparator splits an --env entry into name and value.
	EnvSeparator = "="

	// PairSeparator splits a --volume or --ports entry into host and container sides.
	PairSeparator = ":"
)

var (
	// ErrMalformedField is returned when a mapping entry has no separator or an empty key.
	ErrMalformedField = errors.New("malformed mapping field")

	// ErrDuplicateKey is returned when a mapping flag names the same key twice.
	ErrDuplicateKey = errors.New("duplicate mapping key")
)

// MappingError describes the entry of a mapping flag that could not be parsed.
type MappingError struct {
	Field     string
	Separator string
	Err       error
}

func (e *MappingError) Error() string {
	if errors.Is(e.Err, ErrDuplicateKey) {
		return fmt.Sprintf("%v: %q", e.Err, e.Field)
	}
	return fmt.Sprintf("%v: %q (expected KEY%sVALUE)", e.Err, e.Field, e.Separator)
}

func (e *MappingError) Unwrap() error {
	return e.Err
}

// ParseMapping parses a comma-separated list of key/value entries. Each entry is
// split on the first occurrence of separator, so the value may itself contain
// the separator. An empty input yields a nil map rather than an empty one.
func ParseMapping(value, separator string) (map[string]string, error) {
	if value == "" {
		return nil, nil
	}

	mapping := make(map[string]string)
	for _, field := range strings.Split(value, FieldSeparator) {
		key, val, ok := strings.Cut(field, separator)
		if !ok || key == "" {
			return nil, &MappingError{Field: field, Separator: separator, Err: ErrMalformedField}
		}

		if _, exists := mapping[key]; exists {
			return nil, &MappingError{Field: key, Separator: separator, Err: ErrDuplicateKey}
		}
		mapping[key] = val
	}

	return mapping, nil
}

// ParseEnvironment parses an --env value such as "A=1,B=2".
func ParseEnvironment(value string) (Environment, error) {
	mapping, err := ParseMapping(value, EnvSeparator)
	if err != nil {
		return nil, fmt.Errorf("failed to parse environment %q: %w", value, err)
	}
	return Environment(mapping), nil
}

// ParseVolumes parses a --volume value such as "/host/data:/data".
func ParseVolumes(value string) (Volumes, error) {
	mapping, err := ParseMapping(value, PairSeparator)
	if err != nil {
		return nil, fmt.Errorf("failed to parse volumes %q: %w", value, err)
	}
	return Volumes(mapping), nil
}

// ParsePortBindings parses a --ports value such as "80:8080,443:8443".
func ParsePortBindings(value string) (PortBindings, error) {
	mapping, err := ParseMapping(value, PairSeparator)
	if err != nil {
		return nil, fmt.Errorf("failed to parse port bindings %q: %w", value, err)
	}
	return PortBindings(mapping), nil
}
