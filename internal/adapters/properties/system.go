package properties

import (
	"strings"

	"go.trai.ch/mvnrepo/internal/core/domain"
	"go.trai.ch/zerr"
)

// System is an immutable system-property store.
type System struct {
	entries map[string]string
}

// NewSystem creates a store holding a copy of entries.
func NewSystem(entries map[string]string) *System {
	m := make(map[string]string, len(entries))
	for k, v := range entries {
		m[k] = v
	}
	return &System{entries: m}
}

// Lookup returns the value of the system property key, if set.
func (s *System) Lookup(key string) (string, bool) {
	v, ok := s.entries[key]
	return v, ok
}

// Len returns the number of properties in the store.
func (s *System) Len() int {
	return len(s.entries)
}

// LoadSystem builds the store from the contents of the MVNREPO_OPTS variable
// and from key=value assignments given on the command line. Assignments win
// over the environment.
func LoadSystem(opts string, assignments []string) (*System, error) {
	entries := make(map[string]string)

	for _, field := range strings.Fields(opts) {
		def, ok := strings.CutPrefix(field, "-D")
		if !ok {
			continue
		}
		key, value, err := parseAssignment(def)
		if err != nil {
			return nil, zerr.With(err, "source", domain.OptsEnvVar)
		}
		entries[key] = value
	}

	for _, a := range assignments {
		key, value, err := parseAssignment(a)
		if err != nil {
			return nil, err
		}
		entries[key] = value
	}

	return &System{entries: entries}, nil
}

// parseAssignment splits key=value. A bare key is set to the empty string,
// matching -Dkey on a JVM command line.
func parseAssignment(s string) (string, string, error) {
	key, value, found := strings.Cut(s, "=")
	key = strings.TrimSpace(key)
	if key == "" {
		return "", "", zerr.With(zerr.Wrap(domain.ErrInvalidSystemProperty, "empty system property key"), "property", s)
	}
	if !found {
		return key, "", nil
	}
	return key, value, nil
}
