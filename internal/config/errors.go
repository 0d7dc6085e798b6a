package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnsupportedFormat is returned when no format matches a file extension
	// or a requested format name.
	ErrUnsupportedFormat = errors.New("unsupported configuration format")

	// ErrDuplicateKey classifies load failures caused by a key declared twice
	// in the same mapping. Use errors.Is instead of matching messages.
	ErrDuplicateKey = errors.New("duplicate key")
)

// DuplicateKeyError reports a key declared more than once in one mapping.
type DuplicateKeyError struct {
	Mapping string // e.g. "theme.extend.colors"
	Key     string
	First   string // location of the first declaration
	Second  string // location of the repeated declaration
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("%s: key %q declared at %s is declared again at %s", e.Mapping, e.Key, e.First, e.Second)
}

// Is lets errors.Is(err, ErrDuplicateKey) match.
func (e *DuplicateKeyError) Is(target error) bool {
	return target == ErrDuplicateKey
}

// ValidationError collects every problem found in a record so they can be
// reported together.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("configuration is invalid:\n- %s", strings.Join(e.Problems, "\n- "))
}
