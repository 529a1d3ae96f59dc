package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"strings"

	"github.com/joho/godotenv"

	"github.com/preston-bernstein/site-server/internal/option"
)

// Store resolves raw configuration values.
type Store interface {
	Lookup(key string) option.Option[string]
}

// Snapshot is a read-only view of the environment taken at startup.
type Snapshot struct {
	values map[string]string
}

// NewSnapshot copies values into a new snapshot.
func NewSnapshot(values map[string]string) *Snapshot {
	copied := make(map[string]string, len(values))
	for k, v := range values {
		copied[k] = v
	}
	return &Snapshot{values: copied}
}

// FromEnviron builds a snapshot from KEY=VALUE pairs as returned by os.Environ.
func FromEnviron(environ []string) *Snapshot {
	values := make(map[string]string, len(environ))
	for _, kv := range environ {
		key, val, found := strings.Cut(kv, "=")
		if !found || key == "" {
			continue
		}
		values[key] = val
	}
	return &Snapshot{values: values}
}

// LoadSnapshot reads the given dotenv files and overlays the process
// environment on top. Variables already set in the process win, and earlier
// files win over later ones. Files that do not exist are skipped.
func LoadSnapshot(files ...string) (*Snapshot, error) {
	values := make(map[string]string)
	for _, file := range files {
		src, err := os.ReadFile(file)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("read env file %s: %w", file, err)
		}
		fileValues, err := parseEnvFile(src)
		if err != nil {
			return nil, fmt.Errorf("parse env file %s: %w", file, err)
		}
		for k, v := range fileValues {
			if _, seen := values[k]; !seen {
				values[k] = v
			}
		}
	}

	for k, v := range FromEnviron(os.Environ()).values {
		values[k] = v
	}
	return &Snapshot{values: values}, nil
}

// positionalRef matches "$N" the way godotenv reads a variable name, so "$1_A"
// names "1_A".
var positionalRef = regexp.MustCompile(`\$\{?([0-9][A-Z0-9_]*)`)

// parseEnvFile parses dotenv source with godotenv, keeping positional
// placeholders intact. godotenv expands "$NAME" from keys defined earlier in
// the same file, so each positional name is seeded to itself first.
func parseEnvFile(src []byte) (map[string]string, error) {
	seeded := make(map[string]struct{})
	var prelude bytes.Buffer
	for _, m := range positionalRef.FindAllSubmatch(src, -1) {
		name := string(m[1])
		if _, ok := seeded[name]; ok {
			continue
		}
		seeded[name] = struct{}{}
		fmt.Fprintf(&prelude, "%s='$%s'\n", name, name)
	}
	if len(seeded) == 0 {
		return godotenv.UnmarshalBytes(src)
	}

	values, err := godotenv.UnmarshalBytes(append(prelude.Bytes(), src...))
	if err != nil {
		return nil, err
	}
	for name := range seeded {
		delete(values, name)
	}
	return values, nil
}

// Lookup returns the stored value. An empty value is still present.
func (s *Snapshot) Lookup(key string) option.Option[string] {
	if s == nil {
		return option.None[string]()
	}
	v, ok := s.values[key]
	return option.FromLookup(v, ok)
}

// Has reports whether key is set, regardless of its value.
func (s *Snapshot) Has(key string) bool {
	return s.Lookup(key).IsSome()
}

// Len returns the number of stored entries.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.values)
}
