package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/riftworks/skinforge/pkg/catalog"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain", "Ahri", "ahri"},
		{"spaces and case", "Star Guardian Ahri", "starguardianahri"},
		{"punctuation", "K/DA Ahri", "kdaahri"},
		{"already normalized", "kdaahri", "kdaahri"},
		{"apostrophe", "Kai'Sa", "kaisa"},
		{"ampersand", "Heartache & Heartbreak", "heartacheheartbreak"},
		{"diacritics", "Café Cuties Soraka", "cafecutiessoraka"},
		{"digits survive", "PROJECT: Zed 2", "projectzed2"},
		{"only punctuation", "!!!", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, catalog.Normalize(tc.in))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"K/DA Ahri", "Kai'Sa", "Elementalist Lux", "Café Cuties Soraka"}
	for _, in := range inputs {
		once := catalog.Normalize(in)
		assert.Equal(t, once, catalog.Normalize(once), "normalizing %q twice", in)
	}
}

func TestNormalizePunctuationCollision(t *testing.T) {
	// Names differing only in punctuation merge on the same key. Known
	// limitation of the key scheme.
	assert.Equal(t, catalog.Normalize("K/DA Ahri"), catalog.Normalize("kda ahri"))
}

func TestJoinKeyBaseSkins(t *testing.T) {
	ahri := catalog.SkinRecord{ChampionName: "Ahri", SkinName: "default", IsBase: true}
	lux := catalog.SkinRecord{ChampionName: "Lux", SkinName: "default", IsBase: true}

	assert.Equal(t, "ahri", ahri.JoinKey())
	assert.Equal(t, "lux", lux.JoinKey())
	assert.NotEqual(t, ahri.JoinKey(), lux.JoinKey(),
		"base skins of different champions must not collide")
}

func TestJoinKeyRegularSkin(t *testing.T) {
	rec := catalog.SkinRecord{ChampionName: "Ahri", SkinName: "K/DA Ahri", SkinNum: 61}
	assert.Equal(t, "kdaahri", rec.JoinKey())
}

func TestBaseRecognition(t *testing.T) {
	assert.True(t, catalog.SkinRecord{SkinName: "default"}.Base())
	assert.True(t, catalog.SkinRecord{SkinName: "Ahri", IsBase: true}.Base())
	assert.False(t, catalog.SkinRecord{SkinName: "K/DA Ahri", SkinNum: 61}.Base())
}
