package entity

// Score - cumulative counters across rounds.
type Score struct {
	PlayerOne    int `json:"player_one"`
	PlayerTwo    int `json:"player_two"`
	DrawsInARow  int `json:"draws_in_a_row"`
	StrangeGames int `json:"strange_games"`
}
