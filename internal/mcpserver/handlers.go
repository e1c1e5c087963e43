package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/hellausefulsoftware/zendesk-mcp/internal/logging"
)

const knowledgeBaseURI = "zendesk://knowledge-base"

// jsonResult marshals v into a text tool result.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

// ticketIDArg extracts the required ticket_id argument.
func ticketIDArg(req mcp.CallToolRequest) (int64, error) {
	id, err := req.RequireInt("ticket_id")
	if err != nil {
		return 0, err
	}
	return int64(id), nil
}

func (s *Server) handleGetTicket(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ticketID, err := ticketIDArg(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	ticket, err := s.svc.Ticket(ctx, ticketID)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(ticket)
}

func (s *Server) handleGetTicketComments(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ticketID, err := ticketIDArg(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	comments, err := s.svc.TicketComments(ctx, ticketID)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(comments)
}

func (s *Server) handlePostComment(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ticketID, err := ticketIDArg(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	comment, err := req.RequireString("comment")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	public := req.GetBool("public", true)
	confirm := req.GetBool("confirm_post", false)

	posted, err := s.svc.PostComment(ctx, ticketID, comment, public, confirm)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(posted), nil
}

func (s *Server) handleGetTicketsByAgent(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	identifier, err := req.RequireString("agent_identifier")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	tickets, err := s.svc.TicketsForAgent(ctx, identifier)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(tickets)
}

func (s *Server) handleGetTicketPriority(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ticketID, err := ticketIDArg(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.svc.TicketPriority(ctx, ticketID)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(result)
}

func (s *Server) handleGetAllArticles(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	kb, err := s.svc.Articles(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(kb)
}

func (s *Server) handleKnowledgeBaseResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	kb, err := s.svc.Articles(ctx)
	if err != nil {
		logging.Error("knowledge base resource read failed", "error", err)
		return nil, err
	}

	data, err := json.MarshalIndent(kb, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode knowledge base: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      knowledgeBaseURI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
