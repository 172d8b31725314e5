package mcp

import (
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// HTTPHandler returns an http.Handler serving the MCP Streamable HTTP
// transport, suitable for mounting on a mux path such as "/mcp".
//
// The server runs stateless: every tool here is a single request/response
// exchange over the paper cache, so there is no session state to keep
// between calls.
func (s *Server) HTTPHandler() http.Handler {
	return mcp.NewStreamableHTTPHandler(func(r *http.Request) *mcp.Server {
		return s.server
	}, &mcp.StreamableHTTPOptions{Stateless: true})
}
