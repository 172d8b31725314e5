package mcp

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/bull/research-mcp/internal/papers"
)

const (
	// foldersURI is the fixed URI of the topic list resource.
	foldersURI = "papers://folders"
	// topicURIPrefix addresses one topic's papers: papers://{topic}.
	topicURIPrefix = "papers://"
)

// makeFoldersHandler serves papers://folders as a markdown topic list.
func makeFoldersHandler(store *papers.Store) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{
				{
					URI:      foldersURI,
					MIMEType: "text/markdown",
					Text:     store.RenderTopicList(),
				},
			},
		}, nil
	}
}

// makeTopicHandler serves papers://{topic} as a rendered markdown
// document. Missing and corrupt caches render explanatory documents
// rather than failing the read.
func makeTopicHandler(store *papers.Store) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		topic := strings.TrimPrefix(req.Params.URI, topicURIPrefix)
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{
				{
					URI:      req.Params.URI,
					MIMEType: "text/markdown",
					Text:     store.RenderTopic(topic),
				},
			},
		}, nil
	}
}
