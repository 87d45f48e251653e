package ddragon

// championListResponse is the shape of champion.json.
type championListResponse struct {
	Data map[string]struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"data"`
}

// championDetailResponse is the shape of champion/<id>.json.
type championDetailResponse struct {
	Data map[string]championDetail `json:"data"`
}

type championDetail struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Skins []skin `json:"skins"`
}

type skin struct {
	ID   string `json:"id"`
	Num  int    `json:"num"`
	Name string `json:"name"`
}
