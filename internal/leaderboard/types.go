package leaderboard

// Row is one ranked line of a leaderboard.
type Row struct {
	Rank  int     `json:"rank"`
	User  string  `json:"user"`
	Score float64 `json:"score"`
	// TotalDays and WindowDays are only set on the global board.
	TotalDays  int `json:"total_days,omitempty"`
	WindowDays int `json:"window_days,omitempty"`
	// Marker is display decoration, set by Decorate after ranking.
	Marker string `json:"marker,omitempty"`
}

// Annotation decorates a specific user's rows.
type Annotation struct {
	Marker string `yaml:"marker" json:"marker"`
	// Replace drops the medal instead of appending the marker to it.
	Replace bool `yaml:"replace" json:"replace"`
}

// Annotations maps a user handle to its decoration.
type Annotations map[string]Annotation

var medals = map[int]string{
	1: "🥇",
	2: "🥈",
	3: "🥉",
}
