package toolserver

import (
	"context"
	"encoding/json"
	"fmt"

	toolv1 "github.com/batonworks/baton/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// GRPCClient implements Client against the tool-server gateway RPC.
type GRPCClient struct {
	conn   *grpc.ClientConn
	client toolv1.ToolServerClient
}

// NewGRPCClient creates a new gRPC tool-server client. The connection is
// lazy; dial failures surface on the first call
func NewGRPCClient(addr string) (*GRPCClient, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to tool server at %s: %w", addr, err)
	}
	return &GRPCClient{
		conn:   conn,
		client: toolv1.NewToolServerClient(conn),
	}, nil
}

// CallTool invokes the named tool with JSON-encoded arguments
func (c *GRPCClient) CallTool(ctx context.Context, name string, args map[string]interface{}) (string, error) {
	encoded, err := json.Marshal(args)
	if err != nil {
		return "", fmt.Errorf("failed to encode tool arguments: %w", err)
	}

	resp, err := c.client.CallTool(ctx, &toolv1.CallToolRequest{
		Name:      name,
		Arguments: string(encoded),
	})
	if err != nil {
		return "", fmt.Errorf("gRPC CallTool failed: %w", err)
	}
	if resp.IsError {
		result := resp.Result
		if result == "" {
			result = "unknown error"
		}
		return "", fmt.Errorf("tool %s failed: %s", name, result)
	}
	return resp.Result, nil
}

// Close releases the gRPC connection.
func (c *GRPCClient) Close() error {
	return c.conn.Close()
}
