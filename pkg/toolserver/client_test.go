package toolserver

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("rejects unknown transport", func(t *testing.T) {
		_, err := NewClient(Config{Transport: "carrier-pigeon"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported tool-server transport")
	})

	t.Run("mcp requires command or url", func(t *testing.T) {
		_, err := NewClient(Config{Transport: TransportMCP})
		assert.Error(t, err)
	})

	t.Run("mcp with command", func(t *testing.T) {
		client, err := NewClient(Config{Transport: TransportMCP, Command: "tool-server"})
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("grpc dials lazily", func(t *testing.T) {
		client, err := NewClient(Config{Transport: TransportGRPC, Addr: "localhost:50099"})
		require.NoError(t, err)
		require.NoError(t, client.Close())
	})

	t.Run("timeout wraps the client", func(t *testing.T) {
		client, err := NewClient(Config{
			Transport: TransportGRPC,
			Addr:      "localhost:50099",
			Timeout:   5 * time.Second,
		})
		require.NoError(t, err)
		_, ok := client.(*timeoutClient)
		assert.True(t, ok)
		require.NoError(t, client.Close())
	})
}

// deadlineProbe records whether the incoming context carried a deadline
type deadlineProbe struct {
	hadDeadline bool
}

func (p *deadlineProbe) CallTool(ctx context.Context, _ string, _ map[string]interface{}) (string, error) {
	_, p.hadDeadline = ctx.Deadline()
	return "ok", nil
}

func (p *deadlineProbe) Close() error { return nil }

func TestTimeoutClient(t *testing.T) {
	probe := &deadlineProbe{}
	client := &timeoutClient{Client: probe, timeout: time.Second}

	result, err := client.CallTool(context.Background(), "probe", nil)
	require.NoError(t, err)
	assert.Equal(t, "ok", result)
	assert.True(t, probe.hadDeadline)
}

func TestExtractTextContent(t *testing.T) {
	t.Run("concatenates text items", func(t *testing.T) {
		resp := &mcp.CallToolResult{
			Content: []mcp.Content{
				mcp.TextContent{Type: "text", Text: "first"},
				mcp.TextContent{Type: "text", Text: "second"},
			},
		}
		assert.Equal(t, "first\nsecond", extractTextContent(resp))
	})

	t.Run("empty result", func(t *testing.T) {
		assert.Equal(t, "", extractTextContent(&mcp.CallToolResult{}))
	})
}

func TestEnvSlice(t *testing.T) {
	assert.Nil(t, envSlice(nil))

	result := envSlice(map[string]string{"API_TOKEN": "abc"})
	assert.Equal(t, []string{"API_TOKEN=abc"}, result)
}

func TestScriptedClient(t *testing.T) {
	client := NewScriptedClient().
		Script("lookup", `{"found": true}`).
		ScriptError("broken", errors.New("backend unavailable"))

	result, err := client.CallTool(context.Background(), "lookup", map[string]interface{}{"id": "42"})
	require.NoError(t, err)
	assert.Equal(t, `{"found": true}`, result)

	_, err = client.CallTool(context.Background(), "broken", nil)
	assert.ErrorContains(t, err, "backend unavailable")

	_, err = client.CallTool(context.Background(), "mystery", nil)
	assert.ErrorContains(t, err, "not scripted")

	calls := client.Calls()
	require.Len(t, calls, 3)
	assert.Equal(t, "lookup", calls[0].Name)
	assert.Equal(t, "42", calls[0].Args["id"])
}
