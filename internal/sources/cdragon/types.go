package cdragon

// skinEntry is one record of the skins.json dump. Only the fields the
// classifier needs are decoded.
type skinEntry struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	IsBase         bool   `json:"isBase"`
	SkinType       string `json:"skinType"`
	RarityGemPath  string `json:"rarityGemPath"`
	LoadScreenPath string `json:"loadScreenPath"`
}
