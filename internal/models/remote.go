package models

// RemoteQuestion is a question as returned by the import service
type RemoteQuestion struct {
	ID         int64    `json:"id"`
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Answer     string   `json:"answer"`
	Difficulty string   `json:"difficulty"`
	Technology string   `json:"technology"`
	Category   string   `json:"category"`
	Tags       []string `json:"tags,omitempty"`
	GithubURL  string   `json:"github_url"`
	CreatedAt  string   `json:"created_at"`
	UpdatedAt  string   `json:"updated_at"`
	Owner      string   `json:"owner"`
	Repo       string   `json:"repo"`
}

// Repository is a GitHub repository tracked by the import service
type Repository struct {
	ID            int64  `json:"id"`
	Owner         string `json:"owner"`
	Repo          string `json:"repo"`
	URL           string `json:"url"`
	LastSynced    string `json:"last_synced"`
	QuestionCount int    `json:"question_count"`
}

// AddRepositoryRequest registers a repository and triggers an initial import
type AddRepositoryRequest struct {
	Owner      string `json:"owner"`
	Repo       string `json:"repo"`
	Technology string `json:"technology,omitempty"`
	Category   string `json:"category,omitempty"`
}

// AddRepositoryResult is the import service's reply to a registration
type AddRepositoryResult struct {
	Message        string `json:"message"`
	QuestionsCount int    `json:"questionsCount"`
	RepositoryID   int64  `json:"repositoryId"`
}

// SyncResult is the import service's reply to a re-import
type SyncResult struct {
	Message        string `json:"message"`
	QuestionsCount int    `json:"questionsCount"`
}

// HealthStatus is the import service's liveness reply
type HealthStatus struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}
