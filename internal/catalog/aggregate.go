package catalog

import "github.com/devinterview/question-catalog/internal/models"

// Aggregate counts the filtered collection by difficulty and category
func Aggregate(records []models.Question) models.Counts {
	counts := models.Counts{
		Total:        len(records),
		ByDifficulty: make(map[models.Difficulty]int),
		ByCategory:   make(map[string]int),
	}
	for _, q := range records {
		counts.ByDifficulty[q.Difficulty]++
		counts.ByCategory[q.Category]++
	}
	return counts
}

// View is one evaluation of the pipeline for a criteria/sort pair
type View struct {
	Questions []models.Question `json:"questions"`
	Counts    models.Counts     `json:"counts"`
}

// Query filters once, then sorts for display and counts the unsorted result
func Query(records []models.Question, criteria models.FilterCriteria, key models.SortKey) View {
	filtered := Filter(records, criteria)
	return View{
		Questions: Sort(filtered, key),
		Counts:    Aggregate(filtered),
	}
}
