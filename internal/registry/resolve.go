package registry

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnresolvedPlugin is returned when a configuration references a plugin
// that is not installed.
var ErrUnresolvedPlugin = errors.New("unresolved plugin reference")

// Resolve maps references to installed plugins, preserving order. Every
// unresolvable reference is reported in a single error.
func (r *Registry) Resolve(refs []string) ([]Plugin, error) {
	var errs []string
	plugins := make([]Plugin, 0, len(refs))

	for i, ref := range refs {
		p, ok := r.plugins[ref]
		if !ok {
			errs = append(errs, fmt.Sprintf("plugins[%d]: %q is not installed", i, ref))
			continue
		}
		plugins = append(plugins, p)
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("%w (installed: %s):\n- %s",
			ErrUnresolvedPlugin, strings.Join(r.Names(), ", "), strings.Join(errs, "\n- "))
	}
	return plugins, nil
}
