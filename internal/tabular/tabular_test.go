package tabular_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riftworks/skinforge/internal/tabular"
	"github.com/riftworks/skinforge/pkg/catalog"
	"github.com/riftworks/skinforge/pkg/errors"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadSkinsCanonicalHeaders(t *testing.T) {
	path := writeFile(t, t.TempDir(), "skins.csv",
		"champion_id,champion_name,skin_num,skin_name,price_rp,rarity\n"+
			"Ahri,Ahri,0,default,0,Default\n"+
			"Ahri,Ahri,61,K/DA Ahri,1350,Epic\n")

	skins, err := tabular.ReadSkins(path, tabular.ColumnMap{})
	require.NoError(t, err)
	require.Len(t, skins, 2)

	assert.True(t, skins[0].IsBase, "skin_num 0 marks the base skin")
	assert.Equal(t, "K/DA Ahri", skins[1].SkinName)
	assert.Equal(t, 1350, skins[1].PriceRP)
	assert.Equal(t, catalog.TierEpic, skins[1].Tier)
	assert.False(t, skins[1].IsBase)
}

func TestReadSkinsAliasedHeaders(t *testing.T) {
	// Column naming drift seen across source exports.
	path := writeFile(t, t.TempDir(), "wiki.csv",
		"champion,skin,cost,tier\n"+
			"Ahri,K/DA Ahri,1350,Epic\n")

	skins, err := tabular.ReadSkins(path, tabular.ColumnMap{})
	require.NoError(t, err)
	require.Len(t, skins, 1)
	assert.Equal(t, "Ahri", skins[0].ChampionName)
	assert.Equal(t, 1350, skins[0].PriceRP)
}

func TestReadSkinsConfiguredColumn(t *testing.T) {
	path := writeFile(t, t.TempDir(), "odd.csv",
		"c,n,p\n"+
			"Ahri,K/DA Ahri,1350\n")

	skins, err := tabular.ReadSkins(path, tabular.ColumnMap{
		ChampionName: "c",
		SkinName:     "n",
		Price:        "p",
	})
	require.NoError(t, err)
	require.Len(t, skins, 1)
	assert.Equal(t, "K/DA Ahri", skins[0].SkinName)
}

func TestReadSkinsFloatPrices(t *testing.T) {
	// pandas exports nullable ints as floats.
	path := writeFile(t, t.TempDir(), "pandas.csv",
		"skin_name,price_rp\nK/DA Ahri,1350.0\n")

	skins, err := tabular.ReadSkins(path, tabular.ColumnMap{})
	require.NoError(t, err)
	assert.Equal(t, 1350, skins[0].PriceRP)
}

func TestReadSkinsMissingFile(t *testing.T) {
	_, err := tabular.ReadSkins(filepath.Join(t.TempDir(), "absent.csv"), tabular.ColumnMap{})
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestReadSkinsNoNameColumn(t *testing.T) {
	path := writeFile(t, t.TempDir(), "broken.csv", "a,b\n1,2\n")
	_, err := tabular.ReadSkins(path, tabular.ColumnMap{})
	assert.Error(t, err)
}

func TestWriteReconciledRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dim_skins_final.csv")

	in := []catalog.ReconciledSkin{
		{SkinID: 1, SkinRecord: catalog.SkinRecord{ChampionID: "Ahri", ChampionName: "Ahri", SkinName: "default", SkinNum: 0, PriceRP: 0, Tier: catalog.TierDefault, IsBase: true}},
		{SkinID: 2, SkinRecord: catalog.SkinRecord{ChampionID: "Ahri", ChampionName: "Ahri", SkinName: "K/DA Ahri", SkinNum: 61, PriceRP: 1350, Tier: catalog.TierEpic}},
	}
	require.NoError(t, tabular.WriteReconciled(path, in, false))

	out, err := tabular.ReadReconciled(path)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, 1, out[0].SkinID)
	assert.True(t, out[0].IsBase)
	assert.Equal(t, "K/DA Ahri", out[1].SkinName)
	assert.Equal(t, catalog.TierEpic, out[1].Tier)
}

func TestWriteSkinsEmitsNormalizedKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.csv")
	in := []catalog.SkinRecord{
		{ChampionID: "Ahri", ChampionName: "Ahri", SkinNum: 61, SkinName: "K/DA Ahri", PriceRP: 1350, Tier: catalog.TierEpic},
	}
	require.NoError(t, tabular.WriteSkins(path, in, false))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "kdaahri")
	assert.Contains(t, string(data), "skin_name_norm")
}

func TestCreateOverwriteGuard(t *testing.T) {
	path := writeFile(t, t.TempDir(), "existing.csv", "x\n")

	_, err := tabular.Create(path, false)
	require.Error(t, err)
	assert.True(t, errors.IsAlreadyExists(err))

	f, err := tabular.Create(path, true)
	require.NoError(t, err)
	require.NoError(t, f.Close())
}
