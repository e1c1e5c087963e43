// Package mcpserver exposes the helpdesk operations over the Model Context
// Protocol. One tool call maps to one service operation; operation failures
// are reported as tool errors, not protocol failures.
package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/hellausefulsoftware/zendesk-mcp/internal/logging"
	"github.com/hellausefulsoftware/zendesk-mcp/internal/support"
)

const serverName = "Zendesk"

// Server wires the support service into an MCP server.
type Server struct {
	svc *support.Service
	mcp *server.MCPServer
}

// New builds the MCP server and registers all tools and resources.
func New(svc *support.Service, version string) *Server {
	s := &Server{
		svc: svc,
		mcp: server.NewMCPServer(serverName, version,
			server.WithToolCapabilities(true),
			server.WithResourceCapabilities(true, true),
			server.WithRecovery(),
		),
	}

	s.registerTools()
	s.registerResources()
	return s
}

func (s *Server) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("get_ticket",
			mcp.WithDescription("Retrieve a Zendesk ticket by its ID"),
			mcp.WithNumber("ticket_id", mcp.Required(), mcp.Description("The ID of the ticket to retrieve")),
		),
		s.handleGetTicket,
	)

	s.mcp.AddTool(
		mcp.NewTool("get_ticket_comments",
			mcp.WithDescription("Retrieve all comments for a Zendesk ticket by its ID"),
			mcp.WithNumber("ticket_id", mcp.Required(), mcp.Description("The ID of the ticket to get comments for")),
		),
		s.handleGetTicketComments,
	)

	s.mcp.AddTool(
		mcp.NewTool("post_comment",
			mcp.WithDescription("Post a comment to an existing Zendesk ticket. Requires confirm_post=true as an explicit confirmation against accidental writes."),
			mcp.WithNumber("ticket_id", mcp.Required(), mcp.Description("The ID of the ticket to comment on")),
			mcp.WithString("comment", mcp.Required(), mcp.Description("The comment text to post")),
			mcp.WithBoolean("public", mcp.Description("Whether the comment is visible to the requester (default true)")),
			mcp.WithBoolean("confirm_post", mcp.Description("Must be true to actually post the comment")),
		),
		s.handlePostComment,
	)

	s.mcp.AddTool(
		mcp.NewTool("get_tickets_by_agent",
			mcp.WithDescription("Get all unsolved tickets assigned to an agent, identified by numeric ID, full name, or first name. A first name may match several agents."),
			mcp.WithString("agent_identifier", mcp.Required(), mcp.Description("Agent user ID, full name, or first name")),
		),
		s.handleGetTicketsByAgent,
	)

	s.mcp.AddTool(
		mcp.NewTool("get_ticket_priority",
			mcp.WithDescription("Compute the urgency score for a ticket from its SLA tags, age, time since last comment, and status. Higher scores are more urgent."),
			mcp.WithNumber("ticket_id", mcp.Required(), mcp.Description("The ID of the ticket to score")),
		),
		s.handleGetTicketPriority,
	)

	s.mcp.AddTool(
		mcp.NewTool("get_all_articles",
			mcp.WithDescription("Export the entire help center knowledge base, grouped by section"),
		),
		s.handleGetAllArticles,
	)
}

func (s *Server) registerResources() {
	s.mcp.AddResource(
		mcp.NewResource(
			knowledgeBaseURI,
			"Zendesk Knowledge Base",
			mcp.WithResourceDescription("All help center articles grouped by section"),
			mcp.WithMIMEType("application/json"),
		),
		s.handleKnowledgeBaseResource,
	)
}

// ServeStdio runs the server on stdin/stdout until the stream closes.
func (s *Server) ServeStdio() error {
	logging.Info("serving MCP over stdio", "server", serverName)
	return server.ServeStdio(s.mcp)
}

// ServeHTTP runs the streamable HTTP server on addr.
func (s *Server) ServeHTTP(addr string) error {
	logging.Info("serving MCP over HTTP", "server", serverName, "addr", addr)
	return server.NewStreamableHTTPServer(s.mcp).Start(addr)
}
