package services

import (
	"context"
	"fmt"
	"time"

	"github.com/batonworks/baton/ent"
	"github.com/batonworks/baton/ent/agent"
	"github.com/batonworks/baton/ent/agenttool"
	"github.com/batonworks/baton/ent/tool"
	"github.com/batonworks/baton/pkg/models"
)

// AgentService manages agent definitions and their tool assignments
type AgentService struct {
	client *ent.Client
}

// NewAgentService creates a new AgentService
func NewAgentService(client *ent.Client) *AgentService {
	return &AgentService{client: client}
}

// CreateAgent creates a new agent definition
func (s *AgentService) CreateAgent(httpCtx context.Context, req models.CreateAgentRequest) (*ent.Agent, error) {
	// Validate input
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if req.Provider == "" {
		return nil, NewValidationError("provider", "required")
	}
	if req.Model == "" {
		return nil, NewValidationError("model", "required")
	}
	if req.Temperature != nil && (*req.Temperature < 0 || *req.Temperature > 1) {
		return nil, NewValidationError("temperature", "must be between 0 and 1")
	}
	if req.MaxTokens != nil && *req.MaxTokens <= 0 {
		return nil, NewValidationError("max_tokens", "must be positive")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	create := s.client.Agent.Create().
		SetName(req.Name).
		SetProvider(req.Provider).
		SetModel(req.Model).
		SetNillableTemperature(req.Temperature).
		SetNillableMaxTokens(req.MaxTokens)
	if req.SystemPrompt != "" {
		create = create.SetSystemPrompt(req.SystemPrompt)
	}
	if req.Config != nil {
		create = create.SetConfig(req.Config)
	}

	created, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("agent %q: %w", req.Name, ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to create agent: %w", err)
	}

	return created, nil
}

// GetAgent retrieves an agent by ID with optional tool edge loading
func (s *AgentService) GetAgent(ctx context.Context, agentID int, withTools bool) (*ent.Agent, error) {
	query := s.client.Agent.Query().Where(agent.IDEQ(agentID))

	if withTools {
		query = query.WithAgentTools(func(q *ent.AgentToolQuery) {
			q.WithTool()
		})
	}

	found, err := query.Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}

	return found, nil
}

// GetAgentByName retrieves an agent by its unique name
func (s *AgentService) GetAgentByName(ctx context.Context, name string) (*ent.Agent, error) {
	found, err := s.client.Agent.Query().
		Where(agent.NameEQ(name)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get agent by name: %w", err)
	}

	return found, nil
}

// ListAgents lists agents, optionally restricted to active ones
func (s *AgentService) ListAgents(ctx context.Context, activeOnly bool) ([]*ent.Agent, error) {
	query := s.client.Agent.Query()
	if activeOnly {
		query = query.Where(agent.ActiveEQ(true))
	}

	agents, err := query.
		Order(ent.Asc(agent.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}

	return agents, nil
}

// UpdateAgent applies a partial update to an agent
func (s *AgentService) UpdateAgent(httpCtx context.Context, agentID int, req models.UpdateAgentRequest) (*ent.Agent, error) {
	// Validate input
	if req.Name != nil && *req.Name == "" {
		return nil, NewValidationError("name", "must not be empty")
	}
	if req.Provider != nil && *req.Provider == "" {
		return nil, NewValidationError("provider", "must not be empty")
	}
	if req.Model != nil && *req.Model == "" {
		return nil, NewValidationError("model", "must not be empty")
	}
	if req.Temperature != nil && (*req.Temperature < 0 || *req.Temperature > 1) {
		return nil, NewValidationError("temperature", "must be between 0 and 1")
	}
	if req.MaxTokens != nil && *req.MaxTokens <= 0 {
		return nil, NewValidationError("max_tokens", "must be positive")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	update := s.client.Agent.UpdateOneID(agentID).
		SetNillableName(req.Name).
		SetNillableProvider(req.Provider).
		SetNillableModel(req.Model).
		SetNillableSystemPrompt(req.SystemPrompt).
		SetNillableTemperature(req.Temperature).
		SetNillableMaxTokens(req.MaxTokens)
	if req.Config != nil {
		update = update.SetConfig(req.Config)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("agent name: %w", ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to update agent: %w", err)
	}

	return updated, nil
}

// SetAgentActive toggles an agent's active flag
func (s *AgentService) SetAgentActive(httpCtx context.Context, agentID int, active bool) (*ent.Agent, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	updated, err := s.client.Agent.UpdateOneID(agentID).
		SetActive(active).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to set agent active: %w", err)
	}

	return updated, nil
}

// DeleteAgent removes an agent. Fails with ErrInvalidState while any
// workflow step still references the agent
func (s *AgentService) DeleteAgent(httpCtx context.Context, agentID int) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.client.Agent.DeleteOneID(agentID).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		if ent.IsConstraintError(err) {
			return fmt.Errorf("agent is referenced by workflow steps: %w", ErrInvalidState)
		}
		return fmt.Errorf("failed to delete agent: %w", err)
	}

	return nil
}

// AssignTool attaches a tool to an agent with an optional config override
func (s *AgentService) AssignTool(httpCtx context.Context, agentID int, req models.AssignToolRequest) (*ent.AgentTool, error) {
	if req.ToolID <= 0 {
		return nil, NewValidationError("tool_id", "required")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Verify both sides exist so the caller gets ErrNotFound instead of a
	// bare FK violation
	exists, err := s.client.Agent.Query().Where(agent.IDEQ(agentID)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check agent: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("agent %d: %w", agentID, ErrNotFound)
	}
	exists, err = s.client.Tool.Query().Where(tool.IDEQ(req.ToolID)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check tool: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("tool %d: %w", req.ToolID, ErrNotFound)
	}

	create := s.client.AgentTool.Create().
		SetAgentID(agentID).
		SetToolID(req.ToolID)
	if req.Config != nil {
		create = create.SetConfig(req.Config)
	}

	created, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("tool already assigned: %w", ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to assign tool: %w", err)
	}

	return created, nil
}

// RemoveTool detaches a tool from an agent
func (s *AgentService) RemoveTool(httpCtx context.Context, agentID, toolID int) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := s.client.AgentTool.Delete().
		Where(
			agenttool.AgentIDEQ(agentID),
			agenttool.ToolIDEQ(toolID),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to remove tool: %w", err)
	}
	if count == 0 {
		return ErrNotFound
	}

	return nil
}

// ListAgentTools lists an agent's tool assignments with the tool edge loaded
func (s *AgentService) ListAgentTools(ctx context.Context, agentID int) ([]*ent.AgentTool, error) {
	exists, err := s.client.Agent.Query().Where(agent.IDEQ(agentID)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check agent: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("agent %d: %w", agentID, ErrNotFound)
	}

	assignments, err := s.client.AgentTool.Query().
		Where(agenttool.AgentIDEQ(agentID)).
		WithTool().
		Order(ent.Asc(agenttool.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list agent tools: %w", err)
	}

	return assignments, nil
}
