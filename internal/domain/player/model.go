package player

const (
	// AgeUnknown is shown when the provider has no age on record.
	AgeUnknown = "N/A"
	// DefaultPhoto is the placeholder asset used when the provider has no
	// portrait on record.
	DefaultPhoto = "/assets/images/default-player.png"
	// RatingUnavailable is shown when no competition reported a rating.
	RatingUnavailable = "N/A"
)

// Summary is the roster-card view of a player.
type Summary struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Age      string `json:"age"`
	Photo    string `json:"photo"`
	Position string `json:"position"`
}

// Detail extends Summary with biographical fields and stats aggregated
// across every competition of the fetched season batch.
type Detail struct {
	Summary
	Nationality string `json:"nationality"`
	Height      string `json:"height"`
	Weight      string `json:"weight"`
	Appearances int    `json:"appearances"`
	Goals       int    `json:"goals"`
	Assists     int    `json:"assists"`
	AvgRating   string `json:"avgRating"`
	Stats       []Stat `json:"stats"`
}

// Stat holds one competition's numbers for a player. Rating is nil when the
// competition does not report one.
type Stat struct {
	League      string   `json:"league"`
	Season      int      `json:"season"`
	Position    string   `json:"position"`
	Appearances int      `json:"appearances"`
	Goals       int      `json:"goals"`
	Assists     int      `json:"assists"`
	Rating      *float64 `json:"rating"`
}
