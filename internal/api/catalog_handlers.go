package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/devinterview/question-catalog/internal/catalog"
	"github.com/devinterview/question-catalog/internal/models"
)

// Catalog handlers run the filter/sort/count pipeline over the current snapshot

func criteriaFromRequest(r *http.Request) models.FilterCriteria {
	q := r.URL.Query()
	c := models.DefaultCriteria()
	if v := q.Get("technology"); v != "" {
		c.Technology = v
	}
	if v := q.Get("difficulty"); v != "" {
		c.Difficulty = v
	}
	if v := q.Get("category"); v != "" {
		c.Category = v
	}
	c.Search = q.Get("search")
	return c
}

type questionsResponse struct {
	Questions []models.Question     `json:"questions"`
	Counts    models.Counts         `json:"counts"`
	Total     int                   `json:"total"`
	Online    bool                  `json:"online"`
	Filters   models.FilterCriteria `json:"filters"`
	Active    bool                  `json:"filtersActive"`
	Sort      models.SortKey        `json:"sort"`
}

func (s *Server) handleListQuestions(w http.ResponseWriter, r *http.Request) {
	criteria := criteriaFromRequest(r)
	key := catalog.ParseSortKey(r.URL.Query().Get("sort"))

	snap := s.store.Snapshot()
	view := catalog.Query(snap.Questions, criteria, key)

	respondJSON(w, http.StatusOK, questionsResponse{
		Questions: view.Questions,
		Counts:    view.Counts,
		Total:     len(view.Questions),
		Online:    snap.Online,
		Filters:   criteria,
		Active:    criteria.IsActive(),
		Sort:      key,
	})
}

func (s *Server) handleGetQuestion(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	for _, q := range s.store.Snapshot().Questions {
		if q.ID == id {
			respondJSON(w, http.StatusOK, q)
			return
		}
	}
	respondError(w, http.StatusNotFound, "not_found", "question not found")
}

func (s *Server) handleListTechnologies(w http.ResponseWriter, r *http.Request) {
	technologies := s.seedLoader.Technologies()
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"technologies": technologies,
		"total":        s.seedLoader.TotalBadge(),
	})
}

func (s *Server) handleGetTechnology(w http.ResponseWriter, r *http.Request) {
	tech := s.seedLoader.GetTechnology(chi.URLParam(r, "id"))
	if tech == nil {
		respondError(w, http.StatusNotFound, "not_found", "technology not found")
		return
	}
	respondJSON(w, http.StatusOK, tech)
}

type sortOption struct {
	Key   models.SortKey `json:"key"`
	Label string         `json:"label"`
}

// display order of the sort dropdown
var sortOrder = []models.SortKey{
	models.SortNewest,
	models.SortOldest,
	models.SortDifficultyAsc,
	models.SortDifficultyDesc,
	models.SortAlphabetical,
}

func (s *Server) handleListSortOptions(w http.ResponseWriter, r *http.Request) {
	options := make([]sortOption, 0, len(sortOrder))
	for _, key := range sortOrder {
		options = append(options, sortOption{Key: key, Label: models.SortKeys[key]})
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"options": options,
		"default": models.SortNewest,
	})
}

type facetCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// handleListCategories returns the sidebar vocabularies with counts over the
// collection filtered by the request's criteria
func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	filtered := catalog.Filter(s.store.Snapshot().Questions, criteriaFromRequest(r))
	counts := catalog.Aggregate(filtered)

	categories := make([]facetCount, 0, len(s.seedLoader.Categories()))
	for _, name := range s.seedLoader.Categories() {
		categories = append(categories, facetCount{Name: name, Count: counts.ByCategory[name]})
	}

	difficulties := make([]facetCount, 0, len(models.Difficulties))
	for _, d := range models.Difficulties {
		difficulties = append(difficulties, facetCount{Name: string(d), Count: counts.ByDifficulty[d]})
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"categories":   categories,
		"difficulties": difficulties,
		"total":        counts.Total,
	})
}
