package team

// Team is the club snapshot shown on the general info page. It is fetched
// fresh from the sports-data provider on every request and never stored.
type Team struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Logo         string `json:"logo"`
	Abbreviation string `json:"abbreviation"`
	Country      string `json:"country"`
	Founded      int    `json:"founded"`
	Venue        Venue  `json:"venue"`
}

// Venue is the club's home stadium.
type Venue struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	City     string `json:"city"`
	Capacity int    `json:"capacity"`
	Image    string `json:"image"`
}
