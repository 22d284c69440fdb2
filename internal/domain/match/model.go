package match

// Side is one participant of an upcoming match as scraped from the club
// website.
type Side struct {
	Name         string `json:"name"`
	Logo         string `json:"logo"`
	Abbreviation string `json:"abbreviation"`
}

// NextMatch is the club's next scheduled game. MatchInfo is a trusted HTML
// fragment (the competition name is wrapped in <strong>) consumed raw by the
// frontend.
type NextMatch struct {
	HomeTeam  Side   `json:"homeTeam"`
	AwayTeam  Side   `json:"awayTeam"`
	MatchInfo string `json:"matchInfo"`
}
