package services

import (
	"context"
	"fmt"
	"time"

	"github.com/batonworks/baton/ent"
	"github.com/batonworks/baton/ent/tool"
	"github.com/batonworks/baton/pkg/models"
)

// ToolService manages the tool catalog
type ToolService struct {
	client *ent.Client
}

// NewToolService creates a new ToolService
func NewToolService(client *ent.Client) *ToolService {
	return &ToolService{client: client}
}

// CreateTool registers a new tool
func (s *ToolService) CreateTool(httpCtx context.Context, req models.CreateToolRequest) (*ent.Tool, error) {
	// Validate input
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if req.ToolType != "" {
		if err := tool.ToolTypeValidator(tool.ToolType(req.ToolType)); err != nil {
			return nil, NewValidationError("tool_type", "must be 'in_process' or 'external'")
		}
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	create := s.client.Tool.Create().
		SetName(req.Name)
	if req.ToolType != "" {
		create = create.SetToolType(tool.ToolType(req.ToolType))
	}
	if req.Description != "" {
		create = create.SetDescription(req.Description)
	}
	if req.InputSchema != nil {
		create = create.SetInputSchema(req.InputSchema)
	}
	if req.Handler != "" {
		create = create.SetHandler(req.Handler)
	}

	created, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("tool %q: %w", req.Name, ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to create tool: %w", err)
	}

	return created, nil
}

// GetTool retrieves a tool by ID
func (s *ToolService) GetTool(ctx context.Context, toolID int) (*ent.Tool, error) {
	found, err := s.client.Tool.Get(ctx, toolID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tool: %w", err)
	}

	return found, nil
}

// GetToolByName retrieves a tool by its unique name
func (s *ToolService) GetToolByName(ctx context.Context, name string) (*ent.Tool, error) {
	found, err := s.client.Tool.Query().
		Where(tool.NameEQ(name)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tool by name: %w", err)
	}

	return found, nil
}

// ResolveHandler returns the handler reference for the named active tool.
// An empty reference means the tool is unknown, inactive, or carries no
// handler
func (s *ToolService) ResolveHandler(ctx context.Context, name string) (string, error) {
	found, err := s.client.Tool.Query().
		Where(tool.NameEQ(name), tool.ActiveEQ(true)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to resolve tool handler: %w", err)
	}

	return found.Handler, nil
}

// ListTools lists tools with filtering
func (s *ToolService) ListTools(ctx context.Context, filters models.ToolFilters) ([]*ent.Tool, error) {
	query := s.client.Tool.Query()

	// Apply filters
	if filters.ToolType != "" {
		query = query.Where(tool.ToolTypeEQ(tool.ToolType(filters.ToolType)))
	}
	if filters.ActiveOnly {
		query = query.Where(tool.ActiveEQ(true))
	}

	tools, err := query.
		Order(ent.Asc(tool.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tools: %w", err)
	}

	return tools, nil
}

// UpdateTool applies a partial update to a tool
func (s *ToolService) UpdateTool(httpCtx context.Context, toolID int, req models.UpdateToolRequest) (*ent.Tool, error) {
	// Validate input
	if req.Name != nil && *req.Name == "" {
		return nil, NewValidationError("name", "must not be empty")
	}
	if req.ToolType != nil {
		if err := tool.ToolTypeValidator(tool.ToolType(*req.ToolType)); err != nil {
			return nil, NewValidationError("tool_type", "must be 'in_process' or 'external'")
		}
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	update := s.client.Tool.UpdateOneID(toolID).
		SetNillableName(req.Name).
		SetNillableDescription(req.Description).
		SetNillableHandler(req.Handler)
	if req.ToolType != nil {
		update = update.SetToolType(tool.ToolType(*req.ToolType))
	}
	if req.InputSchema != nil {
		update = update.SetInputSchema(req.InputSchema)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("tool name: %w", ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to update tool: %w", err)
	}

	return updated, nil
}

// SetToolActive toggles a tool's active flag
func (s *ToolService) SetToolActive(httpCtx context.Context, toolID int, active bool) (*ent.Tool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	updated, err := s.client.Tool.UpdateOneID(toolID).
		SetActive(active).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to set tool active: %w", err)
	}

	return updated, nil
}

// DeleteTool removes a tool and cascades its agent assignments
func (s *ToolService) DeleteTool(httpCtx context.Context, toolID int) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.client.Tool.DeleteOneID(toolID).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete tool: %w", err)
	}

	return nil
}
