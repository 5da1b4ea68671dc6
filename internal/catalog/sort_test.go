package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/devinterview/question-catalog/internal/catalog"
	"github.com/devinterview/question-catalog/internal/models"
)

func TestSort_SeedOrderings(t *testing.T) {
	questions := seedQuestions(t)

	tests := []struct {
		key  models.SortKey
		want []string
	}{
		{models.SortNewest, []string{"1", "2", "3", "4", "5", "6", "7", "8"}},
		{models.SortOldest, []string{"8", "7", "6", "5", "4", "3", "2", "1"}},
		{models.SortDifficultyAsc, []string{"3", "1", "4", "6", "8", "2", "5", "7"}},
		{models.SortDifficultyDesc, []string{"2", "5", "7", "1", "4", "6", "8", "3"}},
		{models.SortAlphabetical, []string{"8", "2", "5", "7", "4", "6", "3", "1"}},
		{models.SortKey("popularity"), []string{"1", "2", "3", "4", "5", "6", "7", "8"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			got := catalog.Sort(questions, tt.key)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestSort_StableForTies(t *testing.T) {
	questions := []models.Question{
		{ID: "a", Title: "Same", Difficulty: models.DifficultyMedium, CreatedAt: "2024-01-10"},
		{ID: "b", Title: "Same", Difficulty: models.DifficultyHard, CreatedAt: "2024-01-10"},
		{ID: "c", Title: "Same", Difficulty: models.DifficultyMedium, CreatedAt: "2024-01-10"},
		{ID: "d", Title: "Same", Difficulty: models.DifficultyHard, CreatedAt: "2024-01-10"},
	}

	tests := []struct {
		key  models.SortKey
		want []string
	}{
		{models.SortNewest, []string{"a", "b", "c", "d"}},
		{models.SortOldest, []string{"a", "b", "c", "d"}},
		{models.SortAlphabetical, []string{"a", "b", "c", "d"}},
		{models.SortDifficultyAsc, []string{"a", "c", "b", "d"}},
		// Ties keep input order in both directions
		{models.SortDifficultyDesc, []string{"b", "d", "a", "c"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			assert.Equal(t, tt.want, ids(catalog.Sort(questions, tt.key)))
		})
	}
}

func TestSort_Idempotent(t *testing.T) {
	questions := seedQuestions(t)

	for key := range models.SortKeys {
		once := catalog.Sort(questions, key)
		twice := catalog.Sort(once, key)
		assert.Equal(t, ids(once), ids(twice), "key %s", key)
	}
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	questions := seedQuestions(t)
	before := ids(questions)

	catalog.Sort(questions, models.SortOldest)

	assert.Equal(t, before, ids(questions))
}

func TestSort_MixedDateFormats(t *testing.T) {
	questions := []models.Question{
		{ID: "date-only", CreatedAt: "2024-01-15"},
		{ID: "timestamp", CreatedAt: "2024-03-01T09:30:00.000Z"},
		{ID: "missing"},
		{ID: "garbage", CreatedAt: "yesterday"},
	}

	got := catalog.Sort(questions, models.SortNewest)
	assert.Equal(t, []string{"timestamp", "date-only", "missing", "garbage"}, ids(got))
}

func TestSort_EmptyInput(t *testing.T) {
	got := catalog.Sort(nil, models.SortNewest)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestParseSortKey(t *testing.T) {
	assert.Equal(t, models.SortNewest, catalog.ParseSortKey(""))
	assert.Equal(t, models.SortAlphabetical, catalog.ParseSortKey("alphabetical"))
	assert.Equal(t, models.SortKey("bogus"), catalog.ParseSortKey("bogus"))
}
