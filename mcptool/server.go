// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package mcptool

import (
	"context"
	"errors"
	"fmt"

	"github.com/jongio/findpath/locate"
	"github.com/jongio/findpath/logutil"
	"github.com/jongio/findpath/pathutil"
	"github.com/jongio/findpath/security"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"golang.org/x/time/rate"
)

// ToolName is the name of the resolver tool.
const ToolName = "find_path"

// Tool argument names.
const (
	ArgFileName   = "file_name"
	ArgExtensions = "extensions"
)

// Default rate limit: a burst of DefaultBurst calls, refilled at
// DefaultRate calls per second.
const (
	DefaultRate  = 5
	DefaultBurst = 10
)

// Result is the JSON body of a successful find_path call.
type Result struct {
	Path   string `json:"path"`
	Quoted string `json:"quoted"`
	Probes int    `json:"probes"`
}

// SearcherFactory returns the Searcher for one call.
type SearcherFactory func(env pathutil.Environment) locate.Searcher

// Options configures a Server. Zero values select the running process's
// environment, the platform searcher and the default rate limit.
type Options struct {
	Env         pathutil.Environment
	NewSearcher SearcherFactory
	Limiter     *rate.Limiter
}

// Server handles find_path calls.
type Server struct {
	env         pathutil.Environment
	newSearcher SearcherFactory
	limiter     *rate.Limiter
	log         *logutil.ComponentLogger
}

// New creates a Server from opts.
func New(opts Options) *Server {
	s := &Server{
		env:         opts.Env,
		newSearcher: opts.NewSearcher,
		limiter:     opts.Limiter,
		log:         logutil.NewLogger("mcptool"),
	}
	if s.env == nil {
		s.env = pathutil.DefaultEnvironment()
	}
	if s.newSearcher == nil {
		s.newSearcher = func(env pathutil.Environment) locate.Searcher { return pathutil.NewSearcher(env) }
	}
	if s.limiter == nil {
		s.limiter = rate.NewLimiter(rate.Limit(DefaultRate), DefaultBurst)
	}
	return s
}

// Tool describes find_path.
func (s *Server) Tool() mcp.Tool {
	return mcp.NewTool(ToolName,
		mcp.WithDescription("Locate a file by searching the application directory, the current directory, "+
			"the system directories and PATH, in that order. When the name has no extension, each "+
			"extension from PATHEXT is tried in turn."),
		mcp.WithString(ArgFileName,
			mcp.Required(),
			mcp.Description("File name to locate, without a directory, e.g. notepad or git.exe"),
		),
		mcp.WithString(ArgExtensions,
			mcp.Description("Semicolon-delimited fallback extensions, e.g. .exe;.cmd. Defaults to PATHEXT."),
		),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
	)
}

// MCPServer returns an MCP server with find_path registered.
func (s *Server) MCPServer(name, version string) *server.MCPServer {
	srv := server.NewMCPServer(name, version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)
	srv.AddTool(s.Tool(), s.Handle)
	return srv
}

// Serve runs the MCP server over standard input and output until it is
// interrupted.
func (s *Server) Serve(name, version string) error {
	return server.ServeStdio(s.MCPServer(name, version))
}

// Handle implements the find_path tool. Resolution failures are reported as
// tool errors, never as protocol errors.
func (s *Server) Handle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := checkRateLimit(s.limiter, ToolName); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := ctx.Err(); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	fileName, err := request.RequireString(ArgFileName)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := security.ValidateFileName(fileName); err != nil {
		return mcp.NewToolResultErrorf("invalid %s: %v", ArgFileName, err), nil
	}

	exts, err := s.extensions(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	log := s.log.WithOperation("find-path").WithFields("file", fileName)
	resolver := locate.NewResolver(s.newSearcher(s.env), nil)
	path, err := resolver.Resolve(locate.Request{FileName: fileName, Extensions: exts})
	if err != nil {
		log.Debug("not found", "probes", resolver.Probes(), "error", err)
		return mcp.NewToolResultError(errorText(err)), nil
	}

	log.Debug("found", "path", path, "probes", resolver.Probes())
	return foundResult(path, resolver.Probes()), nil
}

// extensions returns the fallback list for a call: the extensions argument
// when present, even if empty, otherwise PATHEXT.
func (s *Server) extensions(request mcp.CallToolRequest) ([]string, error) {
	if _, present := request.GetArguments()[ArgExtensions]; !present {
		return pathutil.FallbackExtensions(s.env), nil
	}
	raw, err := request.RequireString(ArgExtensions)
	if err != nil {
		return nil, err
	}
	return locate.LimitExtensions(locate.ParseList(raw, locate.ExtensionDelimiter)), nil
}

// foundResult carries the Result both as structured content and as its
// JSON text.
func foundResult(path string, probes int) *mcp.CallToolResult {
	return mcp.NewToolResultStructuredOnly(Result{
		Path:   path,
		Quoted: locate.QuotePath(path),
		Probes: probes,
	})
}

func errorText(err error) string {
	var appErr *locate.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	sysErr := locate.Classify(err)
	return fmt.Sprintf("%d: %s", uint32(sysErr.Code), sysErr.Description())
}

// checkRateLimit returns an error if the limiter has no token for a call.
func checkRateLimit(limiter *rate.Limiter, toolName string) error {
	if !limiter.Allow() {
		return fmt.Errorf("rate limit exceeded for tool %q, please wait before retrying", toolName)
	}
	return nil
}
