package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/devinterview/question-catalog/internal/models"
	"github.com/devinterview/question-catalog/internal/seed"
)

// seedQuestions loads the embedded 8-question seed
func seedQuestions(t *testing.T) []models.Question {
	t.Helper()
	loader := seed.NewLoader()
	require.NoError(t, loader.LoadDefault())
	questions := loader.Questions()
	require.Len(t, questions, 8)
	return questions
}

func ids(questions []models.Question) []string {
	out := make([]string, 0, len(questions))
	for _, q := range questions {
		out = append(out, q.ID)
	}
	return out
}

// isSubsequence reports whether every element of sub appears in full in the same relative order
func isSubsequence(sub, full []models.Question) bool {
	i := 0
	for _, q := range full {
		if i < len(sub) && sub[i].ID == q.ID {
			i++
		}
	}
	return i == len(sub)
}
