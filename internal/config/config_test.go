package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riftworks/skinforge/pkg/errors"
	"github.com/riftworks/skinforge/pkg/reconcile"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "merge.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMerge(t *testing.T) {
	path := writeConfig(t, `
exclusions:
  - prestige
  - chroma
policy: fallback
prices:
  legacy_prices: [390, 520, 750, 790, 880, 975]
  legacy_price: 750
  epic_price: 1350
  legendary_price: 1820
  ultimate_price: 3250
pricing_columns:
  skin_name: skin
  price: cost
`)

	m, err := LoadMerge(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"prestige", "chroma"}, m.Exclusions)
	assert.Equal(t, reconcile.PolicyFallback, m.Policy)
	require.NotNil(t, m.Prices)
	assert.Equal(t, 1350, m.Prices.EpicPrice)
	assert.Equal(t, "skin", m.PricingColumns.SkinName)
	assert.Equal(t, "cost", m.PricingColumns.Price)

	assert.Len(t, m.Options(), 3)
}

func TestLoadMergeEmptyPath(t *testing.T) {
	m, err := LoadMerge("")
	require.NoError(t, err)
	assert.Empty(t, m.Exclusions)
	assert.Empty(t, m.Options())
}

func TestLoadMergeMissingFile(t *testing.T) {
	_, err := LoadMerge(filepath.Join(t.TempDir(), "no-such.yaml"))
	assert.True(t, errors.IsNotFound(err))
}

func TestLoadMergeBadPolicy(t *testing.T) {
	_, err := LoadMerge(writeConfig(t, "policy: keep\n"))
	assert.True(t, errors.IsValidationError(err))
}

func TestGetString(t *testing.T) {
	t.Setenv("SKINFORGE_TEST_SETTING", "from-env")
	assert.Equal(t, "from-env", GetString("SKINFORGE_TEST_SETTING"))

	viper.Set("skinforge_viper_setting", "from-viper")
	t.Cleanup(func() { viper.Reset() })
	assert.Equal(t, "from-viper", GetString("skinforge_viper_setting"))

	assert.Empty(t, GetString("SKINFORGE_UNSET_SETTING"))
}

func TestLoadMergeBadYAML(t *testing.T) {
	_, err := LoadMerge(writeConfig(t, "policy: [\n"))
	var parseErr *errors.ParseError
	assert.ErrorAs(t, err, &parseErr)
}
