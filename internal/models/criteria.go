package models

// All is the sentinel meaning "no constraint" for technology, difficulty and category
const All = "all"

// FilterCriteria holds the user-chosen filter constraints
type FilterCriteria struct {
	Technology string `json:"technology"`
	Difficulty string `json:"difficulty"`
	Category   string `json:"category"`
	Search     string `json:"search"`
}

// DefaultCriteria returns criteria that match every record
func DefaultCriteria() FilterCriteria {
	return FilterCriteria{
		Technology: All,
		Difficulty: All,
		Category:   All,
		Search:     "",
	}
}

// IsActive reports whether any constraint other than technology is set
func (c FilterCriteria) IsActive() bool {
	return c.Difficulty != All || c.Category != All || c.Search != ""
}

// SortKey selects the display ordering
type SortKey string

const (
	SortNewest         SortKey = "newest"
	SortOldest         SortKey = "oldest"
	SortDifficultyAsc  SortKey = "difficulty-asc"
	SortDifficultyDesc SortKey = "difficulty-desc"
	SortAlphabetical   SortKey = "alphabetical"
)

// SortKeys lists the recognized keys with their display labels
var SortKeys = map[SortKey]string{
	SortNewest:         "Newest First",
	SortOldest:         "Oldest First",
	SortDifficultyAsc:  "Easy to Hard",
	SortDifficultyDesc: "Hard to Easy",
	SortAlphabetical:   "Alphabetical",
}
