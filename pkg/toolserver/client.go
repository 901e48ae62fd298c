// Package toolserver connects the engine to external tool servers.
//
// Two transports are supported: MCP for servers speaking the Model Context
// Protocol (stdio subprocess or streamable HTTP), and a single-RPC gRPC
// gateway for deployments that do not speak MCP. Both present the same
// Client interface; tool-level failures surface as errors carrying the
// server's failure text.
package toolserver

import (
	"context"
	"fmt"
	"time"
)

// Transport selects how the engine reaches the tool server.
const (
	TransportMCP  = "mcp"
	TransportGRPC = "grpc"
)

// Client executes tools on an external tool server
type Client interface {
	// CallTool invokes the named tool and returns its result payload
	CallTool(ctx context.Context, name string, args map[string]interface{}) (string, error)

	// Close releases the underlying connection
	Close() error
}

// Config configures the tool-server connection
type Config struct {
	// Transport is "mcp" or "grpc"
	Transport string

	// Addr is the gRPC gateway target
	Addr string

	// URL is the MCP streamable-HTTP endpoint
	URL string

	// Command launches an MCP stdio server as a subprocess
	Command string

	// Args for the stdio command
	Args []string

	// Env overrides for the stdio subprocess
	Env map[string]string

	// Timeout bounds each tool call; zero means no per-call bound
	Timeout time.Duration
}

// NewClient creates a tool-server client for the configured transport
func NewClient(cfg Config) (Client, error) {
	var (
		client Client
		err    error
	)
	switch cfg.Transport {
	case TransportMCP:
		client, err = NewMCPClient(cfg)
	case TransportGRPC:
		client, err = NewGRPCClient(cfg.Addr)
	default:
		return nil, fmt.Errorf("unsupported tool-server transport: %s", cfg.Transport)
	}
	if err != nil {
		return nil, err
	}
	if cfg.Timeout > 0 {
		client = &timeoutClient{Client: client, timeout: cfg.Timeout}
	}
	return client, nil
}

// timeoutClient bounds every call with the configured per-call budget
type timeoutClient struct {
	Client
	timeout time.Duration
}

func (t *timeoutClient) CallTool(ctx context.Context, name string, args map[string]interface{}) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.Client.CallTool(ctx, name, args)
}
