// Package support composes the agent directory, the priority engine, and
// the external ticket store into the operations exposed at the tool
// boundary. Each operation is stateless and synchronous: one call, one or
// more blocking store round-trips, one result or one terminal error.
package support

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hellausefulsoftware/zendesk-mcp/internal/directory"
	"github.com/hellausefulsoftware/zendesk-mcp/internal/logging"
	"github.com/hellausefulsoftware/zendesk-mcp/internal/models"
	"github.com/hellausefulsoftware/zendesk-mcp/internal/priority"
)

// TicketStore is the external helpdesk collaborator. Transport,
// authentication, pagination, and rate limiting all live behind it.
type TicketStore interface {
	GetTicket(ctx context.Context, ticketID int64) (models.Ticket, error)
	ListComments(ctx context.Context, ticketID int64) ([]models.Comment, error)
	AddComment(ctx context.Context, ticketID int64, body string, public bool) error
	SearchTickets(ctx context.Context, query string) ([]models.Ticket, error)
	KnowledgeBase(ctx context.Context) (models.KnowledgeBase, error)
}

// agentTicketStatuses is the status filter for the agent ticket lookup.
// "new" is deliberately absent even though the priority engine weights it:
// the sets serve different queries and are not to be unified without
// product sign-off.
var agentTicketStatuses = []string{
	"open",
	"pending",
	`"Feature Request Review Pending"`,
	`"ENG Confirmed Bug"`,
}

// Service implements the exposed helpdesk operations.
type Service struct {
	store TicketStore
	dir   *directory.Directory
	now   func() time.Time
}

// NewService creates a Service over the given store and agent directory.
func NewService(store TicketStore, dir *directory.Directory) *Service {
	return &Service{
		store: store,
		dir:   dir,
		now:   time.Now,
	}
}

// Ticket fetches a single ticket snapshot.
func (s *Service) Ticket(ctx context.Context, ticketID int64) (models.Ticket, error) {
	ticket, err := s.store.GetTicket(ctx, ticketID)
	if err != nil {
		return models.Ticket{}, &TransportError{Op: "get ticket", TicketID: ticketID, Err: err}
	}
	return ticket, nil
}

// TicketComments fetches all comments on a ticket in creation order.
func (s *Service) TicketComments(ctx context.Context, ticketID int64) ([]models.Comment, error) {
	comments, err := s.store.ListComments(ctx, ticketID)
	if err != nil {
		return nil, &TransportError{Op: "get ticket comments", TicketID: ticketID, Err: err}
	}
	return comments, nil
}

// PostComment attaches a comment to a ticket. The confirm flag is an
// explicit two-step gate against accidental writes: without it the store
// is never contacted. On success the body text that was sent is returned;
// the store's own confirmation is not surfaced.
func (s *Service) PostComment(ctx context.Context, ticketID int64, body string, public, confirm bool) (string, error) {
	if !confirm {
		return "", &PermissionDeniedError{Op: "post comment"}
	}

	if err := s.store.AddComment(ctx, ticketID, body, public); err != nil {
		return "", &TransportError{Op: "post comment", TicketID: ticketID, Err: err}
	}

	logging.Info("posted comment", "ticket", ticketID, "public", public)
	return body, nil
}

// TicketsForAgent returns the unsolved tickets assigned to the agents an
// identifier resolves to. A first-name identifier may resolve to several
// agents; their result lists are concatenated without deduplication, since
// a ticket has at most one assignee.
func (s *Service) TicketsForAgent(ctx context.Context, identifier string) ([]models.Ticket, error) {
	ref := directory.ParseAgentRef(identifier)
	agentIDs, err := s.dir.Resolve(ref)
	if err != nil {
		return nil, err
	}

	var allTickets []models.Ticket
	for _, agentID := range agentIDs {
		tickets, err := s.store.SearchTickets(ctx, AgentTicketQuery(agentID))
		if err != nil {
			return nil, &TransportError{Op: fmt.Sprintf("get tickets for agent %s", identifier), Err: err}
		}
		allTickets = append(allTickets, tickets...)
	}

	logging.Debug("agent ticket lookup", "identifier", identifier, "agents", len(agentIDs), "tickets", len(allTickets))
	return allTickets, nil
}

// AgentTicketQuery builds the search query for one agent's unsolved
// tickets: AND on the assignee, OR across the repeated status clauses.
func AgentTicketQuery(agentID int64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "assignee:%d", agentID)
	for _, status := range agentTicketStatuses {
		fmt.Fprintf(&b, " status:%s", status)
	}
	return b.String()
}

// TicketPriority fetches a ticket with its comments and computes its
// urgency score. Any fetch failure aborts the computation; no partial
// score is returned.
func (s *Service) TicketPriority(ctx context.Context, ticketID int64) (models.Priority, error) {
	ticket, err := s.store.GetTicket(ctx, ticketID)
	if err != nil {
		return models.Priority{}, &ScoringError{TicketID: ticketID, Err: err}
	}

	comments, err := s.store.ListComments(ctx, ticketID)
	if err != nil {
		return models.Priority{}, &ScoringError{TicketID: ticketID, Err: err}
	}

	score, factors := priority.Breakdown(ticket, comments, s.now().UTC())
	return models.Priority{
		TicketID: ticketID,
		Score:    score,
		Factors:  factors,
	}, nil
}

// Articles exports the full help center knowledge base.
func (s *Service) Articles(ctx context.Context) (models.KnowledgeBase, error) {
	kb, err := s.store.KnowledgeBase(ctx)
	if err != nil {
		return nil, &TransportError{Op: "get all articles", Err: err}
	}
	return kb, nil
}
