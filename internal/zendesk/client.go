// Package zendesk wraps the Zendesk Support and Help Center APIs behind the
// narrow surface the tool handlers need.
package zendesk

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hellausefulsoftware/zendesk-mcp/internal/logging"
	"github.com/hellausefulsoftware/zendesk-mcp/internal/models"
	"github.com/nukosuke/go-zendesk/zendesk"
)

// Client handles Zendesk API interactions
type Client struct {
	api *zendesk.Client
}

// NewClient creates a new Zendesk client authenticated with an API token
func NewClient(subdomain, email, token string) (*Client, error) {
	api, err := zendesk.NewClient(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create zendesk client: %w", err)
	}

	if err := api.SetSubdomain(subdomain); err != nil {
		return nil, fmt.Errorf("invalid zendesk subdomain %q: %w", subdomain, err)
	}
	api.SetCredential(zendesk.NewAPITokenCredential(email, token))

	return &Client{api: api}, nil
}

// SetEndpointURL points the client at an alternate API endpoint. Used by
// tests to target a mock server.
func (c *Client) SetEndpointURL(endpoint string) error {
	return c.api.SetEndpointURL(endpoint)
}

// GetTicket fetches a single ticket by ID
func (c *Client) GetTicket(ctx context.Context, ticketID int64) (models.Ticket, error) {
	ticket, err := c.api.GetTicket(ctx, ticketID)
	if err != nil {
		return models.Ticket{}, fmt.Errorf("failed to get ticket %d: %w", ticketID, err)
	}

	return convertTicket(ticket), nil
}

// commentPage is one page of the ticket comments listing.
type commentPage struct {
	Comments []struct {
		ID        int64     `json:"id"`
		AuthorID  int64     `json:"author_id"`
		Body      string    `json:"body"`
		HTMLBody  string    `json:"html_body"`
		Public    bool      `json:"public"`
		CreatedAt time.Time `json:"created_at"`
	} `json:"comments"`
	NextPage *string `json:"next_page"`
}

// ListComments fetches all comments on a ticket in creation order
func (c *Client) ListComments(ctx context.Context, ticketID int64) ([]models.Comment, error) {
	var allComments []models.Comment

	for page := 1; ; page++ {
		body, err := c.api.Get(ctx, fmt.Sprintf("/tickets/%d/comments.json?page=%d&per_page=100", ticketID, page))
		if err != nil {
			return nil, fmt.Errorf("failed to get comments for ticket %d: %w", ticketID, err)
		}

		var result commentPage
		if err := json.Unmarshal(body, &result); err != nil {
			return nil, fmt.Errorf("failed to decode comments for ticket %d: %w", ticketID, err)
		}

		for _, comment := range result.Comments {
			allComments = append(allComments, models.Comment{
				ID:        comment.ID,
				AuthorID:  comment.AuthorID,
				Body:      comment.Body,
				HTMLBody:  comment.HTMLBody,
				Public:    comment.Public,
				CreatedAt: comment.CreatedAt,
			})
		}

		if result.NextPage == nil {
			break
		}
	}

	return allComments, nil
}

// AddComment attaches a comment to an existing ticket. Zendesk has no
// standalone comment endpoint; comments ride a ticket update.
func (c *Client) AddComment(ctx context.Context, ticketID int64, body string, public bool) error {
	payload := map[string]any{
		"ticket": map[string]any{
			"comment": map[string]any{
				"html_body": body,
				"public":    public,
			},
		},
	}

	if _, err := c.api.Put(ctx, fmt.Sprintf("/tickets/%d.json", ticketID), payload); err != nil {
		return fmt.Errorf("failed to post comment on ticket %d: %w", ticketID, err)
	}

	return nil
}

// SearchTickets runs a Zendesk search query and returns the matching
// tickets. Non-ticket results are skipped.
func (c *Client) SearchTickets(ctx context.Context, query string) ([]models.Ticket, error) {
	var allTickets []models.Ticket

	opts := &zendesk.SearchOptions{
		PageOptions: zendesk.PageOptions{PerPage: 100, Page: 1},
		Query:       query,
	}

	for {
		results, page, err := c.api.Search(ctx, opts)
		if err != nil {
			return nil, fmt.Errorf("search %q failed: %w", query, err)
		}

		for _, result := range results.List() {
			ticket, ok := result.(zendesk.Ticket)
			if !ok {
				logging.Debug("skipping non-ticket search result", "query", query)
				continue
			}
			allTickets = append(allTickets, convertTicket(ticket))
		}

		if !page.HasNext() {
			break
		}
		opts.Page++
	}

	return allTickets, nil
}

// convertTicket maps the vendor ticket type onto the wire snapshot.
func convertTicket(t zendesk.Ticket) models.Ticket {
	ticket := models.Ticket{
		ID:             t.ID,
		Subject:        t.Subject,
		Description:    t.Description,
		Status:         t.Status,
		Priority:       t.Priority,
		RequesterID:    t.RequesterID,
		AssigneeID:     t.AssigneeID,
		OrganizationID: t.OrganizationID,
		Tags:           t.Tags,
	}
	if t.CreatedAt != nil {
		ticket.CreatedAt = *t.CreatedAt
	}
	if t.UpdatedAt != nil {
		ticket.UpdatedAt = *t.UpdatedAt
	}
	return ticket
}
