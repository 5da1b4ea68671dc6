package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devinterview/question-catalog/internal/catalog"
	"github.com/devinterview/question-catalog/internal/models"
)

func TestNormalize_MapsFields(t *testing.T) {
	remote := []models.RemoteQuestion{
		{
			ID:         42,
			Title:      "What is a closure?",
			Content:    "Explain closures.",
			Answer:     "A function bundled with its lexical scope.",
			Difficulty: "Medium",
			Technology: "JavaScript",
			Category:   "Fundamentals",
			GithubURL:  "https://github.com/sudheerj/javascript-interview-questions",
			CreatedAt:  "2024-02-01T10:00:00Z",
			Owner:      "sudheerj",
			Repo:       "javascript-interview-questions",
		},
	}

	got := catalog.Normalize(remote)
	require.Len(t, got, 1)

	q := got[0]
	assert.Equal(t, "42", q.ID)
	assert.Equal(t, "What is a closure?", q.Title)
	assert.Equal(t, models.DifficultyMedium, q.Difficulty)
	assert.Equal(t, "JavaScript", q.Technology)
	assert.Equal(t, "https://github.com/sudheerj/javascript-interview-questions", q.GithubURL)
	assert.Equal(t, "sudheerj/javascript-interview-questions", q.Repository)
	assert.Equal(t, "2024-02-01T10:00:00Z", q.CreatedAt)
	assert.NotNil(t, q.Tags)
	assert.Empty(t, q.Tags)
}

func TestNormalize_PreservesOrderAndLength(t *testing.T) {
	remote := []models.RemoteQuestion{{ID: 3}, {ID: 1}, {ID: 2}}

	got := catalog.Normalize(remote)

	assert.Equal(t, []string{"3", "1", "2"}, ids(got))
}

func TestNormalize_PartialRecords(t *testing.T) {
	got := catalog.Normalize([]models.RemoteQuestion{{}})
	require.Len(t, got, 1)

	q := got[0]
	assert.Equal(t, "0", q.ID)
	assert.Empty(t, q.Title)
	assert.Empty(t, q.Repository)
	assert.Empty(t, q.CreatedAt)

	// Partial records still flow through the pipeline
	assert.Len(t, catalog.Filter(got, models.DefaultCriteria()), 1)
	assert.Len(t, catalog.Sort(got, models.SortNewest), 1)
}

func TestNormalize_TechnologyFilterIsCaseInsensitive(t *testing.T) {
	got := catalog.Normalize([]models.RemoteQuestion{{ID: 7, Technology: "GraphQL"}})

	criteria := models.DefaultCriteria()
	criteria.Technology = "gRAPHql"

	assert.Equal(t, []string{"7"}, ids(catalog.Filter(got, criteria)))
}

func TestMerge_RemoteFirstWithoutDedup(t *testing.T) {
	seed := seedQuestions(t)
	remote := catalog.Normalize([]models.RemoteQuestion{{ID: 1}, {ID: 99}})

	merged := catalog.Merge(remote, seed)

	assert.Len(t, merged, 10)
	assert.Equal(t, []string{"1", "99", "1", "2"}, ids(merged)[:4])
}
