// Package mcpserver exposes one game session as an MCP tool so that
// tool-calling agents can play.
package mcpserver

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/tatianab/island/internal/config"
	"github.com/tatianab/island/internal/engine"
	"github.com/tatianab/island/internal/models"
)

type CommandInput struct {
	Command string `json:"command" jsonschema:"Game command to execute, e.g. 'go north'"`
	Reset   bool   `json:"reset,omitempty" jsonschema:"Start a new game before executing the command"`
}

type CommandOutput struct {
	Output string          `json:"output" jsonschema:"Raw game output"`
	Error  string          `json:"error,omitempty" jsonschema:"Failure kind when the command was rejected"`
	State  models.Snapshot `json:"state" jsonschema:"Summary of the current game state"`
}

// Server serialises tool calls onto a single game, which is not safe for
// concurrent use.
type Server struct {
	mu      sync.Mutex
	game    *engine.Game
	newGame func() *engine.Game
	logger  *zap.Logger
}

func New(newGame func() *engine.Game, logger *zap.Logger) *Server {
	return &Server{
		game:    newGame(),
		newGame: newGame,
		logger:  logger,
	}
}

func failureKind(err error) string {
	var ce *engine.CommandError
	if errors.As(err, &ce) {
		return ce.Kind.Error()
	}
	return ""
}

func (s *Server) HandleCommand(_ context.Context, _ *mcp.CallToolRequest, input *CommandInput) (*mcp.CallToolResult, *CommandOutput, error) {
	if input == nil {
		input = &CommandInput{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var out strings.Builder
	if input.Reset {
		s.game = s.newGame()
		s.logger.Info("mcp reset", zap.String("session", s.game.ID()))
		out.WriteString(s.game.Welcome())
		out.WriteString("\n")
	}

	command := strings.TrimSpace(input.Command)
	switch {
	case command != "":
		res := s.game.Execute(command)
		out.WriteString(res.Output)
		return nil, &CommandOutput{
			Output: out.String(),
			Error:  failureKind(res.Err),
			State:  s.game.Snapshot(),
		}, nil
	case !input.Reset:
		out.WriteString(s.game.CurrentRoom().FullDescription())
	}

	return nil, &CommandOutput{
		Output: out.String(),
		State:  s.game.Snapshot(),
	}, nil
}

// Handler returns the HTTP handler serving the MCP endpoint, guarded by the
// origin allow-list and the optional bearer token.
func (s *Server) Handler(cfg config.MCPConfig) http.Handler {
	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    "lost-on-the-island",
		Version: "v1.0.0",
	}, nil)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "command",
		Description: "Send a command to Lost on the Island and return the output plus a state summary. Type 'help' for the verbs.",
	}, s.HandleCommand)

	handler := mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return mcpServer
	}, &mcp.StreamableHTTPOptions{
		Stateless:    cfg.Stateless,
		JSONResponse: cfg.JSONResponse,
		Logger:       slog.Default(),
	})

	originSet := map[string]struct{}{}
	for _, origin := range cfg.Origins {
		originSet[origin] = struct{}{}
	}

	path := cfg.Path
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	guarded := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !isAllowedOrigin(r, originSet) {
			http.Error(w, "Forbidden origin", http.StatusForbidden)
			return
		}
		if cfg.Token != "" && r.Header.Get("Authorization") != "Bearer "+cfg.Token {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		handler.ServeHTTP(w, r)
	})

	mux := http.NewServeMux()
	mux.Handle(path, guarded)
	return mux
}

// ListenAndServe serves until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, cfg config.MCPConfig) error {
	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: s.Handler(cfg),
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("mcp listening", zap.String("addr", cfg.Addr), zap.String("path", cfg.Path))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return srv.Shutdown(context.Background())
	}
}

func isAllowedOrigin(r *http.Request, allowed map[string]struct{}) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	_, ok := allowed[origin]
	return ok
}
