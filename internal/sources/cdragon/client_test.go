package cdragon_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riftworks/skinforge/internal/sources/cdragon"
	"github.com/riftworks/skinforge/pkg/catalog"
)

const dump = `{
	"103000": {"id":103000,"name":"Ahri","isBase":true,"skinType":"","rarityGemPath":"","loadScreenPath":"/lol-game-data/assets/Characters/Ahri/Skins/Base/AhriLoadScreen.jpg"},
	"103061": {"id":103061,"name":"K/DA Ahri","isBase":false,"skinType":"","rarityGemPath":"/rarity/epic.png","loadScreenPath":"/lol-game-data/assets/Characters/Ahri/Skins/Skin61/load.jpg"},
	"99007": {"id":99007,"name":"Elementalist Lux","isBase":false,"skinType":"ultimate","rarityGemPath":"","loadScreenPath":"/lol-game-data/assets/Characters/Lux/Skins/Skin07/load.jpg"},
	"555001": {"id":555001,"name":"Sand Wraith Pyke","isBase":false,"skinType":"","rarityGemPath":"/rarity/legendary.png","loadScreenPath":"/lol-game-data/assets/Characters/Pyke/Skins/Skin01/load.jpg"},
	"1": {"id":1,"name":"Orphan","isBase":false,"skinType":"","rarityGemPath":"","loadScreenPath":"/weird/path.jpg"}
}`

func TestSkins(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(dump))
	}))
	t.Cleanup(srv.Close)

	c := cdragon.NewClient(cdragon.WithURL(srv.URL))
	skins, err := c.Skins(context.Background())
	require.NoError(t, err)
	require.Len(t, skins, 4, "entry without a champion path is skipped")

	// Ordered by numeric skin id: 99007, 103000, 103061, 555001.
	assert.Equal(t, "Elementalist Lux", skins[0].SkinName)
	assert.Equal(t, catalog.TierUltimate, skins[0].Tier)
	assert.Equal(t, 3250, skins[0].PriceRP)

	base := skins[1]
	assert.True(t, base.IsBase)
	assert.Equal(t, catalog.TierDefault, base.Tier)
	assert.Equal(t, 0, base.PriceRP)
	assert.Equal(t, "Ahri", base.ChampionID)

	kda := skins[2]
	assert.Equal(t, catalog.TierEpic, kda.Tier)
	assert.Equal(t, 1350, kda.PriceRP)

	assert.Equal(t, catalog.TierLegendary, skins[3].Tier)
	assert.Equal(t, 1820, skins[3].PriceRP)
}

func TestSkinsServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)

	c := cdragon.NewClient(cdragon.WithURL(srv.URL))
	_, err := c.Skins(context.Background())
	assert.Error(t, err)
}
