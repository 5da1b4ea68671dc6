package catalog

import (
	"slices"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/devinterview/question-catalog/internal/models"
)

// Two separate rank tables: reversing one stable sort would flip tie order.
var (
	difficultyAscRank = map[models.Difficulty]int{
		models.DifficultyEasy:   1,
		models.DifficultyMedium: 2,
		models.DifficultyHard:   3,
	}
	difficultyDescRank = map[models.Difficulty]int{
		models.DifficultyEasy:   3,
		models.DifficultyMedium: 2,
		models.DifficultyHard:   1,
	}
)

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// Sort returns a stably ordered copy of records. Unknown keys keep input order.
func Sort(records []models.Question, key models.SortKey) []models.Question {
	sorted := slices.Clone(records)
	if sorted == nil {
		sorted = []models.Question{}
	}

	switch key {
	case models.SortNewest:
		sortByDate(sorted, true)
	case models.SortOldest:
		sortByDate(sorted, false)
	case models.SortDifficultyAsc:
		sortByRank(sorted, difficultyAscRank)
	case models.SortDifficultyDesc:
		sortByRank(sorted, difficultyDescRank)
	case models.SortAlphabetical:
		// Collators keep internal buffers and are not safe for concurrent use
		col := collate.New(language.English)
		slices.SortStableFunc(sorted, func(a, b models.Question) int {
			return col.CompareString(a.Title, b.Title)
		})
	}
	return sorted
}

func sortByDate(records []models.Question, descending bool) {
	times := make(map[string]time.Time, len(records))
	for _, q := range records {
		if _, ok := times[q.CreatedAt]; !ok {
			times[q.CreatedAt] = parseDate(q.CreatedAt)
		}
	}

	slices.SortStableFunc(records, func(a, b models.Question) int {
		c := times[a.CreatedAt].Compare(times[b.CreatedAt])
		if descending {
			return -c
		}
		return c
	})
}

// sortByRank places unknown difficulties after every known one
func sortByRank(records []models.Question, rank map[models.Difficulty]int) {
	rankOf := func(d models.Difficulty) int {
		if r, ok := rank[d]; ok {
			return r
		}
		return len(rank) + 1
	}
	slices.SortStableFunc(records, func(a, b models.Question) int {
		return rankOf(a.Difficulty) - rankOf(b.Difficulty)
	})
}

// parseDate returns the zero time for empty or unrecognized values
func parseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// ParseSortKey maps a query value to a SortKey, defaulting to newest when empty
func ParseSortKey(s string) models.SortKey {
	if s == "" {
		return models.SortNewest
	}
	return models.SortKey(s)
}
