package models

import (
	"time"
)

// Ticket is the snapshot of a Zendesk ticket returned to tool callers.
// It is fetched fresh on every request and never persisted locally.
type Ticket struct {
	ID             int64     `json:"id"`
	Subject        string    `json:"subject"`
	Description    string    `json:"description"`
	Status         string    `json:"status"`
	Priority       string    `json:"priority"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	RequesterID    int64     `json:"requester_id"`
	AssigneeID     int64     `json:"assignee_id"`
	OrganizationID int64     `json:"organization_id"`
	Tags           []string  `json:"tags,omitempty"`
}

// Comment is a single comment on a ticket. Ordering by CreatedAt matters
// for latest-comment computations.
type Comment struct {
	ID        int64     `json:"id"`
	AuthorID  int64     `json:"author_id"`
	Body      string    `json:"body"`
	HTMLBody  string    `json:"html_body"`
	Public    bool      `json:"public"`
	CreatedAt time.Time `json:"created_at"`
}

// Article is a single help center article.
type Article struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	UpdatedAt time.Time `json:"updated_at"`
	URL       string    `json:"url"`
}

// Section groups the articles of one help center section.
type Section struct {
	SectionID   int64     `json:"section_id"`
	Description string    `json:"description"`
	Articles    []Article `json:"articles"`
}

// KnowledgeBase is the full help center export, keyed by section name.
type KnowledgeBase map[string]Section

// Priority is the result of scoring a ticket's urgency. Score is a derived
// integer ranking, distinct from the vendor-assigned priority label.
type Priority struct {
	TicketID int64              `json:"ticket_id"`
	Score    int                `json:"score"`
	Factors  map[string]float64 `json:"factors,omitempty"`
}
