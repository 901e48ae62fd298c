package toolserver

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/batonworks/baton/pkg/version"
)

// mcpProtocolVersion pins the MCP revision this client negotiates
const mcpProtocolVersion = "2024-11-05"

// MCPClient talks to a tool server over the Model Context Protocol. The
// session is established lazily on the first call. Safe for concurrent use;
// the underlying client multiplexes requests over one session.
type MCPClient struct {
	cfg Config

	mu        sync.Mutex
	client    *client.Client
	connected bool
}

// NewMCPClient creates an MCP tool-server client. A command launches a stdio
// subprocess server; otherwise the URL is used as a streamable-HTTP endpoint
func NewMCPClient(cfg Config) (*MCPClient, error) {
	if cfg.Command == "" && cfg.URL == "" {
		return nil, fmt.Errorf("mcp transport requires command or url")
	}
	return &MCPClient{cfg: cfg}, nil
}

// connect establishes and initializes the MCP session. Caller holds mu
func (c *MCPClient) connect(ctx context.Context) error {
	if c.connected {
		return nil
	}

	var (
		mcpClient *client.Client
		err       error
	)
	if c.cfg.Command != "" {
		mcpClient, err = client.NewStdioMCPClient(c.cfg.Command, envSlice(c.cfg.Env), c.cfg.Args...)
	} else {
		mcpClient, err = client.NewStreamableHttpClient(c.cfg.URL)
	}
	if err != nil {
		return fmt.Errorf("failed to create MCP client: %w", err)
	}

	if err := mcpClient.Start(ctx); err != nil {
		return fmt.Errorf("failed to start MCP client: %w", err)
	}

	initReq := mcp.InitializeRequest{}
	initReq.Params.ClientInfo = mcp.Implementation{
		Name:    version.AppName,
		Version: version.GitCommit,
	}
	initReq.Params.ProtocolVersion = mcpProtocolVersion

	if _, err := mcpClient.Initialize(ctx, initReq); err != nil {
		mcpClient.Close()
		return fmt.Errorf("failed to initialize MCP session: %w", err)
	}

	c.client = mcpClient
	c.connected = true
	return nil
}

// CallTool executes the named tool and returns its concatenated text
// content. A tool-level failure (IsError) comes back as an error carrying
// the server's failure text
func (c *MCPClient) CallTool(ctx context.Context, name string, args map[string]interface{}) (string, error) {
	c.mu.Lock()
	if err := c.connect(ctx); err != nil {
		c.mu.Unlock()
		return "", err
	}
	mcpClient := c.client
	c.mu.Unlock()

	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args

	resp, err := mcpClient.CallTool(ctx, req)
	if err != nil {
		return "", fmt.Errorf("MCP call failed: %w", err)
	}

	text := extractTextContent(resp)
	if resp.IsError {
		if text == "" {
			text = "unknown error"
		}
		return "", fmt.Errorf("tool %s failed: %s", name, text)
	}
	return text, nil
}

// Close shuts down the MCP session
func (c *MCPClient) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client == nil {
		return nil
	}
	err := c.client.Close()
	c.client = nil
	c.connected = false
	return err
}

// extractTextContent concatenates all text content items from a tool result.
// Non-text content (images, embedded resources) is skipped
func extractTextContent(resp *mcp.CallToolResult) string {
	var texts []string
	for _, content := range resp.Content {
		if tc, ok := content.(mcp.TextContent); ok {
			texts = append(texts, tc.Text)
		}
	}
	return strings.Join(texts, "\n")
}

// envSlice converts env overrides to "KEY=VALUE" form for the subprocess
func envSlice(env map[string]string) []string {
	if env == nil {
		return nil
	}
	result := make([]string, 0, len(env))
	for k, v := range env {
		result = append(result, fmt.Sprintf("%s=%s", k, v))
	}
	return result
}
