package models

// Difficulty is the closed difficulty vocabulary of a question
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Difficulties lists the difficulty values in display order
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// Question is the canonical record every source is normalized into
type Question struct {
	ID         string     `json:"id" yaml:"id"`
	Title      string     `json:"title" yaml:"title"`
	Content    string     `json:"content" yaml:"content"`
	Answer     string     `json:"answer" yaml:"answer"`
	Difficulty Difficulty `json:"difficulty" yaml:"difficulty"`
	Technology string     `json:"technology" yaml:"technology"`
	Category   string     `json:"category" yaml:"category"`
	Tags       []string   `json:"tags" yaml:"tags"`
	GithubURL  string     `json:"githubUrl,omitempty" yaml:"github_url"`
	Repository string     `json:"repository,omitempty" yaml:"-"` // "owner/repo", display only
	CreatedAt  string     `json:"createdAt" yaml:"created_at"`   // ISO date or timestamp
}

// Technology is catalog metadata shown as a tab; QuestionCount is a static badge
type Technology struct {
	ID            string `json:"id" yaml:"id"`
	Name          string `json:"name" yaml:"name"`
	Icon          string `json:"icon" yaml:"icon"`
	Color         string `json:"color" yaml:"color"`
	QuestionCount int    `json:"questionCount" yaml:"question_count"`
}

// Counts summarizes a filtered collection. Absent keys mean zero.
type Counts struct {
	Total        int                `json:"total"`
	ByDifficulty map[Difficulty]int `json:"byDifficulty"`
	ByCategory   map[string]int     `json:"byCategory"`
}
