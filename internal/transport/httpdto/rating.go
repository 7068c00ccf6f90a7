package httpdto

// ModeHistoryResponse is one game mode of GET /:username/ratinghistory/.
// Points keep the upstream [year, month, day, rating] quadruples.
type ModeHistoryResponse struct {
	Name   string  `json:"name"`
	Points [][]int `json:"points"`
}
