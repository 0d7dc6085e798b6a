package config

import "context"

// Loader reads a configuration record from a file and returns it in normal
// form. Implementations reject duplicate map keys instead of letting the
// last one win.
type Loader interface {
	Load(ctx context.Context, path string) (*Model, error)
}

// Encoder renders a record into its textual form. Decoding the output with
// the matching Loader yields an equal record.
type Encoder interface {
	Encode(m *Model) ([]byte, error)
}

// Format couples a Loader and Encoder for one file syntax.
type Format interface {
	Loader
	Encoder
	// Name is the short identifier used on the command line ("hcl", "yaml").
	Name() string
}
