package catalog

import (
	"strconv"

	"github.com/devinterview/question-catalog/internal/models"
)

// Normalize converts import-service records into canonical questions.
// Output has the same length and order as the input; missing fields stay empty.
func Normalize(remote []models.RemoteQuestion) []models.Question {
	result := make([]models.Question, 0, len(remote))
	for _, rq := range remote {
		result = append(result, normalizeOne(rq))
	}
	return result
}

func normalizeOne(rq models.RemoteQuestion) models.Question {
	tags := rq.Tags
	if tags == nil {
		tags = []string{}
	}

	repository := ""
	if rq.Owner != "" || rq.Repo != "" {
		repository = rq.Owner + "/" + rq.Repo
	}

	return models.Question{
		ID:         strconv.FormatInt(rq.ID, 10),
		Title:      rq.Title,
		Content:    rq.Content,
		Answer:     rq.Answer,
		Difficulty: models.Difficulty(rq.Difficulty),
		Technology: rq.Technology,
		Category:   rq.Category,
		Tags:       tags,
		GithubURL:  rq.GithubURL,
		Repository: repository,
		CreatedAt:  rq.CreatedAt,
	}
}

// Merge places remote questions ahead of seed questions.
// Overlapping ids are kept as-is.
func Merge(remote, seed []models.Question) []models.Question {
	merged := make([]models.Question, 0, len(remote)+len(seed))
	merged = append(merged, remote...)
	merged = append(merged, seed...)
	return merged
}
