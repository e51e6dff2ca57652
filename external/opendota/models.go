package opendota

// matchupRow is one element of the matchups array. Pointers distinguish a
// zero value from a missing field.
type matchupRow struct {
	HeroID      *int `json:"hero_id"`
	GamesPlayed *int `json:"games_played"`
	Wins        *int `json:"wins"`
}
