package mcp

import (
	"log/slog"

	"github.com/dataminder/dataminder/internal/domain/activity"
	"github.com/dataminder/dataminder/internal/domain/project"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `dataminder guides a data-analysis workflow as Projects → Notebooks → Progress.

Create a project, add notebooks to work in, and record workflow progress as the
six stages complete (upload, profiling, description, hypotheses, analysis,
report). Every user-visible action can be logged to the per-project activity
feed; read it back with get_recent_activity. Progress percentage is derived
from the six completion flags.`

// Services contains the domain stores exposed over MCP.
type Services struct {
	Projects *project.Store
	Activity *activity.Log
}

// Config contains server configuration.
type Config struct {
	Services Services
	Logger   *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "dataminder",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	registerTools(server, cfg.Services)

	return server
}
