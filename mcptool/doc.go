// Package mcptool exposes the findpath resolver as a Model Context Protocol
// tool, so agents can locate executables the same way the findpath command
// does.
//
// The server registers a single tool, find_path, and serves it over stdio
// with github.com/mark3labs/mcp-go. Calls are rate limited with
// golang.org/x/time/rate and every call resolves with its own Resolver.
package mcptool
