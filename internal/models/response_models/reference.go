package response_models

type City struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Country    string `json:"country"`
	CostIndex  string `json:"costIndex"`
	Popularity int    `json:"popularity"`
}

type Region struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Img  string `json:"img"`
}
