package config

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/preston-bernstein/site-server/internal/option"
)

const defaultSeparator = ","

var numberPattern = regexp.MustCompile(`^[+-]?([0-9]+\.?[0-9]*|\.[0-9]+)([eE][+-]?[0-9]+)?$`)

// BuildConfig reads typed values from a Store.
type BuildConfig struct {
	store Store
}

// NewBuildConfig wraps store. A nil store behaves as an empty one.
func NewBuildConfig(store Store) *BuildConfig {
	if store == nil {
		store = NewSnapshot(nil)
	}
	return &BuildConfig{store: store}
}

func (b *BuildConfig) lookup(key Key) option.Option[string] {
	return b.store.Lookup(string(key))
}

// rawValue returns the stored string, the default when unset, or ErrMissingKey.
func (b *BuildConfig) rawValue(key Key, def option.Option[string]) (string, error) {
	stored := b.lookup(key)
	if def.IsSome() {
		return stored.Value(def.Value("")), nil
	}
	val, err := stored.ValOf()
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrMissingKey, key)
	}
	return val, nil
}

// Has reports whether key is set, even to an empty string.
func (b *BuildConfig) Has(key Key) bool {
	return b.lookup(key).IsSome()
}

// GetValue returns the value of key with replacements substituted into it.
func (b *BuildConfig) GetValue(key Key, def option.Option[string], replacements ...string) (string, error) {
	raw, err := b.rawValue(key, def)
	if err != nil {
		return "", err
	}
	resolved, err := ResolveTemplate(raw, replacements).ValOf()
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrTemplateResolution, key)
	}
	return resolved, nil
}

// GetFeatureFlag reports whether flag is set to "true", ignoring case.
func (b *BuildConfig) GetFeatureFlag(flag FeatureFlag) bool {
	return isTrue(b.lookup(flag.Key()).Value(""))
}

// GetBoolean reports whether key is set to "true", ignoring case.
func (b *BuildConfig) GetBoolean(key Key, def option.Option[bool]) (bool, error) {
	raw, err := b.rawValue(key, option.Map(def, strconv.FormatBool))
	if err != nil {
		return false, err
	}
	return isTrue(raw), nil
}

// GetNumber parses key as a base-10 integer or decimal.
func (b *BuildConfig) GetNumber(key Key, def option.Option[float64]) (float64, error) {
	raw, err := b.rawValue(key, option.Map(def, formatNumber))
	if err != nil {
		return 0, err
	}
	return parseNumber(key, raw)
}

// GetArray splits key on separator (comma when empty). Unset and empty
// values both yield an empty slice. A default is always joined with a comma
// before splitting.
func (b *BuildConfig) GetArray(key Key, def option.Option[[]string], separator string) []string {
	if separator == "" {
		separator = defaultSeparator
	}
	joined := option.Map(def, func(items []string) string {
		return strings.Join(items, defaultSeparator)
	})

	raw := b.lookup(key).Value(joined.Value(""))
	if option.Truthy(raw).IsNone() {
		return []string{}
	}
	return strings.Split(raw, separator)
}

func isTrue(raw string) bool {
	return strings.ToLower(raw) == "true"
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func parseNumber(key Key, raw string) (float64, error) {
	trimmed := strings.TrimSpace(raw)
	if !numberPattern.MatchString(trimmed) {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidNumber, key, raw)
	}
	n, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidNumber, key, raw)
	}
	return n, nil
}
