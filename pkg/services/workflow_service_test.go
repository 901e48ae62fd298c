package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/batonworks/baton/ent"
	"github.com/batonworks/baton/ent/workflowstep"
	"github.com/batonworks/baton/pkg/models"
	testdb "github.com/batonworks/baton/test/database"
)

func TestWorkflowService_CreateWorkflow(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewWorkflowService(client.Client)
	ctx := context.Background()

	t.Run("creates workflow with defaults", func(t *testing.T) {
		created, err := service.CreateWorkflow(ctx, models.CreateWorkflowRequest{
			Name:        "incident-triage",
			Description: "Summarize and route incidents",
		})
		require.NoError(t, err)
		assert.Equal(t, "incident-triage", created.Name)
		assert.Equal(t, "manual", string(created.TriggerType))
		assert.Equal(t, "sync", string(created.ExecutionMode))
		assert.True(t, created.Active)
	})

	t.Run("rejects unknown enums", func(t *testing.T) {
		_, err := service.CreateWorkflow(ctx, models.CreateWorkflowRequest{
			Name:        "bad-trigger",
			TriggerType: "telepathy",
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))

		_, err = service.CreateWorkflow(ctx, models.CreateWorkflowRequest{
			Name:          "bad-mode",
			ExecutionMode: "eventually",
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects duplicate name", func(t *testing.T) {
		_, err := service.CreateWorkflow(ctx, models.CreateWorkflowRequest{Name: "dup-wf"})
		require.NoError(t, err)

		_, err = service.CreateWorkflow(ctx, models.CreateWorkflowRequest{Name: "dup-wf"})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})
}

func TestWorkflowService_AddStep(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewWorkflowService(client.Client)
	ctx := context.Background()

	wf := createTestWorkflow(t, client.Client, "step-host")
	agent := createTestAgent(t, client.Client, "step-agent")

	t.Run("adds agent step", func(t *testing.T) {
		created, err := service.AddStep(ctx, wf.ID, models.StepRequest{
			StepOrder:      0,
			StepType:       "agent",
			AgentID:        intPtr(agent.ID),
			Name:           "summarize",
			OutputVariable: "summary",
			InputMapping:   map[string]interface{}{"text": "${trigger.text}"},
		})
		require.NoError(t, err)
		assert.Equal(t, wf.ID, created.WorkflowID)
		require.NotNil(t, created.AgentID)
		assert.Equal(t, agent.ID, *created.AgentID)
	})

	t.Run("rejects agent step without agent", func(t *testing.T) {
		_, err := service.AddStep(ctx, wf.ID, models.StepRequest{
			StepOrder: 1,
			StepType:  "agent",
			Name:      "orphan",
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects non-agent step with agent", func(t *testing.T) {
		_, err := service.AddStep(ctx, wf.ID, models.StepRequest{
			StepOrder: 1,
			StepType:  "condition",
			AgentID:   intPtr(agent.ID),
			Name:      "misbound",
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects taken step_order", func(t *testing.T) {
		_, err := service.AddStep(ctx, wf.ID, models.StepRequest{
			StepOrder: 0,
			StepType:  "condition",
			Name:      "collides",
		})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("rejects unknown dependency", func(t *testing.T) {
		_, err := service.AddStep(ctx, wf.ID, models.StepRequest{
			StepOrder: 5,
			StepType:  "condition",
			Name:      "dangling",
			DependsOn: []int{42},
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("returns ErrNotFound for missing workflow or agent", func(t *testing.T) {
		_, err := service.AddStep(ctx, 999999, models.StepRequest{
			StepOrder: 0, StepType: "condition", Name: "nowhere",
		})
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = service.AddStep(ctx, wf.ID, models.StepRequest{
			StepOrder: 6, StepType: "agent", AgentID: intPtr(999999), Name: "no-agent",
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestWorkflowService_UpdateStep(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewWorkflowService(client.Client)
	ctx := context.Background()

	wf := createTestWorkflow(t, client.Client, "editable-wf")
	agent := createTestAgent(t, client.Client, "editable-agent")
	first := createTestStep(t, client.Client, wf.ID, 0, workflowstep.StepTypeAgent, intPtr(agent.ID))
	second := createTestStep(t, client.Client, wf.ID, 1, workflowstep.StepTypeCondition, nil)

	t.Run("updates fields", func(t *testing.T) {
		updated, err := service.UpdateStep(ctx, second.ID, models.UpdateStepRequest{
			Name:                strPtr("gate"),
			ConditionExpression: strPtr("${summary.urgent} == false"),
			DependsOn:           []int{0},
		})
		require.NoError(t, err)
		assert.Equal(t, "gate", updated.Name)
		assert.Equal(t, []int{0}, updated.DependsOn)
	})

	t.Run("retyping away from agent clears the binding", func(t *testing.T) {
		updated, err := service.UpdateStep(ctx, first.ID, models.UpdateStepRequest{
			StepType: strPtr("condition"),
		})
		require.NoError(t, err)
		assert.Nil(t, updated.AgentID)
	})

	t.Run("rejects an update that forms a cycle", func(t *testing.T) {
		// second now depends on first; pointing first at second closes a loop
		_, err := service.UpdateStep(ctx, first.ID, models.UpdateStepRequest{
			DependsOn: []int{1},
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("returns ErrNotFound for missing step", func(t *testing.T) {
		_, err := service.UpdateStep(ctx, 999999, models.UpdateStepRequest{Name: strPtr("x")})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestWorkflowService_DeleteStep(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewWorkflowService(client.Client)
	ctx := context.Background()

	wf := createTestWorkflow(t, client.Client, "shrinking-wf")
	anchor := createTestStep(t, client.Client, wf.ID, 0, workflowstep.StepTypeCondition, nil)
	dependent := createTestStep(t, client.Client, wf.ID, 1, workflowstep.StepTypeCondition, nil)
	_, err := client.WorkflowStep.UpdateOneID(dependent.ID).SetDependsOn([]int{0}).Save(ctx)
	require.NoError(t, err)

	t.Run("refuses to orphan a dependent step", func(t *testing.T) {
		err := service.DeleteStep(ctx, anchor.ID)
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("deletes a leaf step", func(t *testing.T) {
		err := service.DeleteStep(ctx, dependent.ID)
		require.NoError(t, err)

		steps, err := service.ListSteps(ctx, wf.ID)
		require.NoError(t, err)
		assert.Len(t, steps, 1)
	})
}

func TestWorkflowService_ReorderSteps(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewWorkflowService(client.Client)
	ctx := context.Background()

	wf := createTestWorkflow(t, client.Client, "reorder-wf")
	a := createTestStep(t, client.Client, wf.ID, 0, workflowstep.StepTypeCondition, nil)
	b := createTestStep(t, client.Client, wf.ID, 1, workflowstep.StepTypeCondition, nil)

	t.Run("swaps two steps", func(t *testing.T) {
		steps, err := service.ReorderSteps(ctx, wf.ID, []models.StepReorder{
			{StepID: a.ID, StepOrder: 1},
			{StepID: b.ID, StepOrder: 0},
		})
		require.NoError(t, err)
		require.Len(t, steps, 2)
		assert.Equal(t, b.ID, steps[0].ID)
		assert.Equal(t, a.ID, steps[1].ID)
	})

	t.Run("rejects steps outside the workflow", func(t *testing.T) {
		other := createTestWorkflow(t, client.Client, "other-wf")
		foreign := createTestStep(t, client.Client, other.ID, 0, workflowstep.StepTypeCondition, nil)

		_, err := service.ReorderSteps(ctx, wf.ID, []models.StepReorder{
			{StepID: foreign.ID, StepOrder: 5},
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("rejects duplicate target orders", func(t *testing.T) {
		_, err := service.ReorderSteps(ctx, wf.ID, []models.StepReorder{
			{StepID: a.ID, StepOrder: 0},
			{StepID: b.ID, StepOrder: 0},
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestWorkflowService_GetWorkflow(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewWorkflowService(client.Client)
	ctx := context.Background()

	wf := createTestWorkflow(t, client.Client, "loaded-wf")
	createTestStep(t, client.Client, wf.ID, 1, workflowstep.StepTypeCondition, nil)
	createTestStep(t, client.Client, wf.ID, 0, workflowstep.StepTypeCondition, nil)

	found, err := service.GetWorkflow(ctx, wf.ID, true)
	require.NoError(t, err)
	require.Len(t, found.Edges.Steps, 2)
	// Steps arrive in execution order
	assert.Equal(t, 0, found.Edges.Steps[0].StepOrder)
	assert.Equal(t, 1, found.Edges.Steps[1].StepOrder)

	_, err = service.GetWorkflow(ctx, 999999, false)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestValidateStepGraph(t *testing.T) {
	agentID := 7

	tests := []struct {
		name    string
		steps   []*ent.WorkflowStep
		wantErr bool
	}{
		{
			name:    "empty graph is valid",
			steps:   nil,
			wantErr: false,
		},
		{
			name: "linear chain is valid",
			steps: []*ent.WorkflowStep{
				{StepOrder: 0, StepType: workflowstep.StepTypeAgent, AgentID: &agentID},
				{StepOrder: 1, StepType: workflowstep.StepTypeCondition, DependsOn: []int{0}},
			},
			wantErr: false,
		},
		{
			name: "diamond is valid",
			steps: []*ent.WorkflowStep{
				{StepOrder: 0, StepType: workflowstep.StepTypeCondition},
				{StepOrder: 1, StepType: workflowstep.StepTypeCondition, DependsOn: []int{0}},
				{StepOrder: 2, StepType: workflowstep.StepTypeCondition, DependsOn: []int{0}},
				{StepOrder: 3, StepType: workflowstep.StepTypeCondition, DependsOn: []int{1, 2}},
			},
			wantErr: false,
		},
		{
			name: "duplicate orders",
			steps: []*ent.WorkflowStep{
				{StepOrder: 0, StepType: workflowstep.StepTypeCondition},
				{StepOrder: 0, StepType: workflowstep.StepTypeCondition},
			},
			wantErr: true,
		},
		{
			name: "agent step without agent",
			steps: []*ent.WorkflowStep{
				{StepOrder: 0, StepType: workflowstep.StepTypeAgent},
			},
			wantErr: true,
		},
		{
			name: "approval step with agent",
			steps: []*ent.WorkflowStep{
				{StepOrder: 0, StepType: workflowstep.StepTypeApproval, AgentID: &agentID},
			},
			wantErr: true,
		},
		{
			name: "self dependency",
			steps: []*ent.WorkflowStep{
				{StepOrder: 0, StepType: workflowstep.StepTypeCondition, DependsOn: []int{0}},
			},
			wantErr: true,
		},
		{
			name: "unknown dependency",
			steps: []*ent.WorkflowStep{
				{StepOrder: 0, StepType: workflowstep.StepTypeCondition, DependsOn: []int{3}},
			},
			wantErr: true,
		},
		{
			name: "two-step cycle",
			steps: []*ent.WorkflowStep{
				{StepOrder: 0, StepType: workflowstep.StepTypeCondition, DependsOn: []int{1}},
				{StepOrder: 1, StepType: workflowstep.StepTypeCondition, DependsOn: []int{0}},
			},
			wantErr: true,
		},
		{
			name: "three-step cycle",
			steps: []*ent.WorkflowStep{
				{StepOrder: 0, StepType: workflowstep.StepTypeCondition, DependsOn: []int{2}},
				{StepOrder: 1, StepType: workflowstep.StepTypeCondition, DependsOn: []int{0}},
				{StepOrder: 2, StepType: workflowstep.StepTypeCondition, DependsOn: []int{1}},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateStepGraph(tt.steps)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
