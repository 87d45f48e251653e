// Package config loads merge settings from YAML files and the
// environment. Flags stay in the command layer; this package only owns
// the file format and the env fallbacks shared across commands.
package config

import (
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/viper"

	"github.com/riftworks/skinforge/internal/tabular"
	"github.com/riftworks/skinforge/pkg/catalog"
	"github.com/riftworks/skinforge/pkg/errors"
	"github.com/riftworks/skinforge/pkg/reconcile"
)

// Merge is the on-disk configuration for a catalog merge. Every field is
// optional; zero values fall back to the built-in defaults.
type Merge struct {
	// Exclusions are case-insensitive substring patterns matched against
	// skin names in the authoritative catalog.
	Exclusions []string `yaml:"exclusions,omitempty"`
	// Policy decides what happens to skins the pricing source never
	// mentions: "drop" or "fallback".
	Policy reconcile.Policy `yaml:"policy,omitempty"`
	// Prices overrides the tier classification price points.
	Prices *catalog.PriceTable `yaml:"prices,omitempty"`
	// OfficialColumns and PricingColumns rename the CSV headers of the
	// two input snapshots.
	OfficialColumns tabular.ColumnMap `yaml:"official_columns,omitempty"`
	PricingColumns  tabular.ColumnMap `yaml:"pricing_columns,omitempty"`
}

// LoadMerge reads a merge configuration file. An empty path returns the
// zero config so callers can treat the file as optional.
func LoadMerge(path string) (*Merge, error) {
	var m Merge
	if path == "" {
		return &m, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError("merge config", path)
		}
		return nil, &errors.IOError{Op: "read", Path: path, Err: err}
	}
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, &errors.ParseError{Source: path, Message: "invalid merge config", Err: err}
	}

	if m.Policy != "" && !m.Policy.Valid() {
		return nil, &errors.ValidationError{Field: "policy", Value: string(m.Policy), Message: "must be drop or fallback"}
	}
	if m.Prices != nil {
		if err := m.Prices.Validate(); err != nil {
			return nil, err
		}
	}
	return &m, nil
}

// Options translates the loaded config into reconciler options. Values
// passed on the command line are applied on top by the caller.
func (m *Merge) Options() []reconcile.Option {
	var opts []reconcile.Option
	if len(m.Exclusions) > 0 {
		opts = append(opts, reconcile.WithExclusions(m.Exclusions))
	}
	if m.Policy != "" {
		opts = append(opts, reconcile.WithPolicy(m.Policy))
	}
	if m.Prices != nil {
		opts = append(opts, reconcile.WithPriceTable(*m.Prices))
	}
	return opts
}

// GetString reads a string setting, preferring the process environment
// over values bound into Viper.
func GetString(key string) string {
	osValue := os.Getenv(key)
	viperValue := viper.GetString(key)

	if viperValue == "" && osValue != "" {
		return osValue
	}
	return viperValue
}
