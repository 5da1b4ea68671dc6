package catalog

import (
	"strings"

	"github.com/devinterview/question-catalog/internal/models"
)

// Filter returns the questions matching every constraint in criteria, in input order.
// The result is never nil, so an empty match is distinguishable from "not computed".
func Filter(records []models.Question, criteria models.FilterCriteria) []models.Question {
	search := strings.ToLower(criteria.Search)

	result := make([]models.Question, 0, len(records))
	for _, q := range records {
		if matches(q, criteria, search) {
			result = append(result, q)
		}
	}
	return result
}

// matches expects search to be lowercased already
func matches(q models.Question, c models.FilterCriteria, search string) bool {
	if c.Technology != models.All && !strings.EqualFold(q.Technology, c.Technology) {
		return false
	}
	if c.Difficulty != models.All && string(q.Difficulty) != c.Difficulty {
		return false
	}
	if c.Category != models.All && q.Category != c.Category {
		return false
	}
	if search == "" {
		return true
	}
	return matchesSearch(q, search)
}

func matchesSearch(q models.Question, search string) bool {
	if strings.Contains(strings.ToLower(q.Title), search) {
		return true
	}
	if strings.Contains(strings.ToLower(q.Content), search) {
		return true
	}
	for _, tag := range q.Tags {
		if strings.Contains(strings.ToLower(tag), search) {
			return true
		}
	}
	return false
}
