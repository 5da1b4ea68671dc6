package seed

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/devinterview/question-catalog/internal/models"
)

//go:embed default.yaml
var defaultSeed []byte

// Loader holds the static seed collection and catalog metadata
type Loader struct {
	mu           sync.RWMutex
	questions    []models.Question
	technologies []models.Technology
	categories   []string
}

// NewLoader creates an empty seed loader
func NewLoader() *Loader {
	return &Loader{
		questions:    []models.Question{},
		technologies: []models.Technology{},
		categories:   []string{},
	}
}

// LoadDefault loads the seed bundled with the binary
func (l *Loader) LoadDefault() error {
	return l.load(defaultSeed, "embedded")
}

// LoadFromFile loads a seed YAML file, replacing anything loaded before
func (l *Loader) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}
	return l.load(data, path)
}

func (l *Loader) load(data []byte, origin string) error {
	var sf seedFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	questions := make([]models.Question, 0, len(sf.Questions))
	for i, q := range sf.Questions {
		if q.Title == "" {
			slog.Warn("skipping seed question without title", "origin", origin, "index", i)
			continue
		}
		if q.ID == "" {
			q.ID = uuid.NewString()
		}
		if q.Tags == nil {
			q.Tags = []string{}
		}
		questions = append(questions, q)
	}

	technologies := make([]models.Technology, 0, len(sf.Technologies))
	for _, t := range sf.Technologies {
		if t.ID == "" || t.Name == "" {
			slog.Warn("skipping technology without id or name", "origin", origin)
			continue
		}
		technologies = append(technologies, t)
	}

	categories := sf.Categories
	if categories == nil {
		categories = []string{}
	}

	l.mu.Lock()
	l.questions = questions
	l.technologies = technologies
	l.categories = categories
	l.mu.Unlock()

	slog.Info("seed loaded",
		"origin", origin,
		"questions", len(questions),
		"technologies", len(technologies),
		"categories", len(categories),
	)
	return nil
}

// Questions returns the seed questions in file order
func (l *Loader) Questions() []models.Question {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.questions
}

// Technologies returns the technology tabs in file order
func (l *Loader) Technologies() []models.Technology {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.technologies
}

// GetTechnology returns a technology by ID
func (l *Loader) GetTechnology(id string) *models.Technology {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for i := range l.technologies {
		if l.technologies[i].ID == id {
			t := l.technologies[i]
			return &t
		}
	}
	return nil
}

// TotalBadge sums the static per-technology badges for the "all" tab
func (l *Loader) TotalBadge() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	total := 0
	for _, t := range l.technologies {
		total += t.QuestionCount
	}
	return total
}

// Categories returns the category vocabulary shown in the filter sidebar
func (l *Loader) Categories() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.categories
}

// --- YAML file structs ---

// seedFile represents the YAML structure of a seed file
type seedFile struct {
	Categories   []string            `yaml:"categories"`
	Technologies []models.Technology `yaml:"technologies"`
	Questions    []models.Question   `yaml:"questions"`
}
