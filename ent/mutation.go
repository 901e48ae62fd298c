// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/batonworks/baton/ent/agent"
	"github.com/batonworks/baton/ent/agentexecution"
	"github.com/batonworks/baton/ent/agenttool"
	"github.com/batonworks/baton/ent/approvalrequest"
	"github.com/batonworks/baton/ent/knowledgeentry"
	"github.com/batonworks/baton/ent/predicate"
	"github.com/batonworks/baton/ent/tool"
	"github.com/batonworks/baton/ent/workflow"
	"github.com/batonworks/baton/ent/workflowexecution"
	"github.com/batonworks/baton/ent/workflowschedule"
	"github.com/batonworks/baton/ent/workflowstep"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgent             = "Agent"
	TypeAgentExecution    = "AgentExecution"
	TypeAgentTool         = "AgentTool"
	TypeApprovalRequest   = "ApprovalRequest"
	TypeKnowledgeEntry    = "KnowledgeEntry"
	TypeTool              = "Tool"
	TypeWorkflow          = "Workflow"
	TypeWorkflowExecution = "WorkflowExecution"
	TypeWorkflowSchedule  = "WorkflowSchedule"
	TypeWorkflowStep      = "WorkflowStep"
)

// AgentMutation represents an operation that mutates the Agent nodes in the graph.
type AgentMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	name               *string
	provider           *string
	model              *string
	system_prompt      *string
	temperature        *float64
	addtemperature     *float64
	max_tokens         *int
	addmax_tokens      *int
	_config            *map[string]interface{}
	active             *bool
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	agent_tools        map[int]struct{}
	removedagent_tools map[int]struct{}
	clearedagent_tools bool
	executions         map[int]struct{}
	removedexecutions  map[int]struct{}
	clearedexecutions  bool
	steps              map[int]struct{}
	removedsteps       map[int]struct{}
	clearedsteps       bool
	done               bool
	oldValue           func(context.Context) (*Agent, error)
	predicates         []predicate.Agent
}

var _ ent.Mutation = (*AgentMutation)(nil)

// agentOption allows management of the mutation configuration using functional options.
type agentOption func(*AgentMutation)

// newAgentMutation creates new mutation for the Agent entity.
func newAgentMutation(c config, op Op, opts ...agentOption) *AgentMutation {
	m := &AgentMutation{
		config:        c,
		op:            op,
		typ:           TypeAgent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentID sets the ID field of the mutation.
func withAgentID(id int) agentOption {
	return func(m *AgentMutation) {
		var (
			err   error
			once  sync.Once
			value *Agent
		)
		m.oldValue = func(ctx context.Context) (*Agent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Agent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgent sets the old Agent of the mutation.
func withAgent(node *Agent) agentOption {
	return func(m *AgentMutation) {
		m.oldValue = func(context.Context) (*Agent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Agent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *AgentMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *AgentMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *AgentMutation) ResetName() {
	m.name = nil
}

// SetProvider sets the "provider" field.
func (m *AgentMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *AgentMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *AgentMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *AgentMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *AgentMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *AgentMutation) ResetModel() {
	m.model = nil
}

// SetSystemPrompt sets the "system_prompt" field.
func (m *AgentMutation) SetSystemPrompt(s string) {
	m.system_prompt = &s
}

// SystemPrompt returns the value of the "system_prompt" field in the mutation.
func (m *AgentMutation) SystemPrompt() (r string, exists bool) {
	v := m.system_prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldSystemPrompt returns the old "system_prompt" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldSystemPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSystemPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSystemPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSystemPrompt: %w", err)
	}
	return oldValue.SystemPrompt, nil
}

// ClearSystemPrompt clears the value of the "system_prompt" field.
func (m *AgentMutation) ClearSystemPrompt() {
	m.system_prompt = nil
	m.clearedFields[agent.FieldSystemPrompt] = struct{}{}
}

// SystemPromptCleared returns if the "system_prompt" field was cleared in this mutation.
func (m *AgentMutation) SystemPromptCleared() bool {
	_, ok := m.clearedFields[agent.FieldSystemPrompt]
	return ok
}

// ResetSystemPrompt resets all changes to the "system_prompt" field.
func (m *AgentMutation) ResetSystemPrompt() {
	m.system_prompt = nil
	delete(m.clearedFields, agent.FieldSystemPrompt)
}

// SetTemperature sets the "temperature" field.
func (m *AgentMutation) SetTemperature(f float64) {
	m.temperature = &f
	m.addtemperature = nil
}

// Temperature returns the value of the "temperature" field in the mutation.
func (m *AgentMutation) Temperature() (r float64, exists bool) {
	v := m.temperature
	if v == nil {
		return
	}
	return *v, true
}

// OldTemperature returns the old "temperature" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldTemperature(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemperature is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemperature requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemperature: %w", err)
	}
	return oldValue.Temperature, nil
}

// AddTemperature adds f to the "temperature" field.
func (m *AgentMutation) AddTemperature(f float64) {
	if m.addtemperature != nil {
		*m.addtemperature += f
	} else {
		m.addtemperature = &f
	}
}

// AddedTemperature returns the value that was added to the "temperature" field in this mutation.
func (m *AgentMutation) AddedTemperature() (r float64, exists bool) {
	v := m.addtemperature
	if v == nil {
		return
	}
	return *v, true
}

// ResetTemperature resets all changes to the "temperature" field.
func (m *AgentMutation) ResetTemperature() {
	m.temperature = nil
	m.addtemperature = nil
}

// SetMaxTokens sets the "max_tokens" field.
func (m *AgentMutation) SetMaxTokens(i int) {
	m.max_tokens = &i
	m.addmax_tokens = nil
}

// MaxTokens returns the value of the "max_tokens" field in the mutation.
func (m *AgentMutation) MaxTokens() (r int, exists bool) {
	v := m.max_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxTokens returns the old "max_tokens" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldMaxTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxTokens: %w", err)
	}
	return oldValue.MaxTokens, nil
}

// AddMaxTokens adds i to the "max_tokens" field.
func (m *AgentMutation) AddMaxTokens(i int) {
	if m.addmax_tokens != nil {
		*m.addmax_tokens += i
	} else {
		m.addmax_tokens = &i
	}
}

// AddedMaxTokens returns the value that was added to the "max_tokens" field in this mutation.
func (m *AgentMutation) AddedMaxTokens() (r int, exists bool) {
	v := m.addmax_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxTokens resets all changes to the "max_tokens" field.
func (m *AgentMutation) ResetMaxTokens() {
	m.max_tokens = nil
	m.addmax_tokens = nil
}

// SetConfig sets the "config" field.
func (m *AgentMutation) SetConfig(value map[string]interface{}) {
	m._config = &value
}

// Config returns the value of the "config" field in the mutation.
func (m *AgentMutation) Config() (r map[string]interface{}, exists bool) {
	v := m._config
	if v == nil {
		return
	}
	return *v, true
}

// OldConfig returns the old "config" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldConfig(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfig: %w", err)
	}
	return oldValue.Config, nil
}

// ClearConfig clears the value of the "config" field.
func (m *AgentMutation) ClearConfig() {
	m._config = nil
	m.clearedFields[agent.FieldConfig] = struct{}{}
}

// ConfigCleared returns if the "config" field was cleared in this mutation.
func (m *AgentMutation) ConfigCleared() bool {
	_, ok := m.clearedFields[agent.FieldConfig]
	return ok
}

// ResetConfig resets all changes to the "config" field.
func (m *AgentMutation) ResetConfig() {
	m._config = nil
	delete(m.clearedFields, agent.FieldConfig)
}

// SetActive sets the "active" field.
func (m *AgentMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *AgentMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *AgentMutation) ResetActive() {
	m.active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AgentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AgentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AgentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddAgentToolIDs adds the "agent_tools" edge to the AgentTool entity by ids.
func (m *AgentMutation) AddAgentToolIDs(ids ...int) {
	if m.agent_tools == nil {
		m.agent_tools = make(map[int]struct{})
	}
	for i := range ids {
		m.agent_tools[ids[i]] = struct{}{}
	}
}

// ClearAgentTools clears the "agent_tools" edge to the AgentTool entity.
func (m *AgentMutation) ClearAgentTools() {
	m.clearedagent_tools = true
}

// AgentToolsCleared reports if the "agent_tools" edge to the AgentTool entity was cleared.
func (m *AgentMutation) AgentToolsCleared() bool {
	return m.clearedagent_tools
}

// RemoveAgentToolIDs removes the "agent_tools" edge to the AgentTool entity by IDs.
func (m *AgentMutation) RemoveAgentToolIDs(ids ...int) {
	if m.removedagent_tools == nil {
		m.removedagent_tools = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.agent_tools, ids[i])
		m.removedagent_tools[ids[i]] = struct{}{}
	}
}

// RemovedAgentTools returns the removed IDs of the "agent_tools" edge to the AgentTool entity.
func (m *AgentMutation) RemovedAgentToolsIDs() (ids []int) {
	for id := range m.removedagent_tools {
		ids = append(ids, id)
	}
	return
}

// AgentToolsIDs returns the "agent_tools" edge IDs in the mutation.
func (m *AgentMutation) AgentToolsIDs() (ids []int) {
	for id := range m.agent_tools {
		ids = append(ids, id)
	}
	return
}

// ResetAgentTools resets all changes to the "agent_tools" edge.
func (m *AgentMutation) ResetAgentTools() {
	m.agent_tools = nil
	m.clearedagent_tools = false
	m.removedagent_tools = nil
}

// AddExecutionIDs adds the "executions" edge to the AgentExecution entity by ids.
func (m *AgentMutation) AddExecutionIDs(ids ...int) {
	if m.executions == nil {
		m.executions = make(map[int]struct{})
	}
	for i := range ids {
		m.executions[ids[i]] = struct{}{}
	}
}

// ClearExecutions clears the "executions" edge to the AgentExecution entity.
func (m *AgentMutation) ClearExecutions() {
	m.clearedexecutions = true
}

// ExecutionsCleared reports if the "executions" edge to the AgentExecution entity was cleared.
func (m *AgentMutation) ExecutionsCleared() bool {
	return m.clearedexecutions
}

// RemoveExecutionIDs removes the "executions" edge to the AgentExecution entity by IDs.
func (m *AgentMutation) RemoveExecutionIDs(ids ...int) {
	if m.removedexecutions == nil {
		m.removedexecutions = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.executions, ids[i])
		m.removedexecutions[ids[i]] = struct{}{}
	}
}

// RemovedExecutions returns the removed IDs of the "executions" edge to the AgentExecution entity.
func (m *AgentMutation) RemovedExecutionsIDs() (ids []int) {
	for id := range m.removedexecutions {
		ids = append(ids, id)
	}
	return
}

// ExecutionsIDs returns the "executions" edge IDs in the mutation.
func (m *AgentMutation) ExecutionsIDs() (ids []int) {
	for id := range m.executions {
		ids = append(ids, id)
	}
	return
}

// ResetExecutions resets all changes to the "executions" edge.
func (m *AgentMutation) ResetExecutions() {
	m.executions = nil
	m.clearedexecutions = false
	m.removedexecutions = nil
}

// AddStepIDs adds the "steps" edge to the WorkflowStep entity by ids.
func (m *AgentMutation) AddStepIDs(ids ...int) {
	if m.steps == nil {
		m.steps = make(map[int]struct{})
	}
	for i := range ids {
		m.steps[ids[i]] = struct{}{}
	}
}

// ClearSteps clears the "steps" edge to the WorkflowStep entity.
func (m *AgentMutation) ClearSteps() {
	m.clearedsteps = true
}

// StepsCleared reports if the "steps" edge to the WorkflowStep entity was cleared.
func (m *AgentMutation) StepsCleared() bool {
	return m.clearedsteps
}

// RemoveStepIDs removes the "steps" edge to the WorkflowStep entity by IDs.
func (m *AgentMutation) RemoveStepIDs(ids ...int) {
	if m.removedsteps == nil {
		m.removedsteps = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.steps, ids[i])
		m.removedsteps[ids[i]] = struct{}{}
	}
}

// RemovedSteps returns the removed IDs of the "steps" edge to the WorkflowStep entity.
func (m *AgentMutation) RemovedStepsIDs() (ids []int) {
	for id := range m.removedsteps {
		ids = append(ids, id)
	}
	return
}

// StepsIDs returns the "steps" edge IDs in the mutation.
func (m *AgentMutation) StepsIDs() (ids []int) {
	for id := range m.steps {
		ids = append(ids, id)
	}
	return
}

// ResetSteps resets all changes to the "steps" edge.
func (m *AgentMutation) ResetSteps() {
	m.steps = nil
	m.clearedsteps = false
	m.removedsteps = nil
}

// Where appends a list predicates to the AgentMutation builder.
func (m *AgentMutation) Where(ps ...predicate.Agent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Agent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Agent).
func (m *AgentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.name != nil {
		fields = append(fields, agent.FieldName)
	}
	if m.provider != nil {
		fields = append(fields, agent.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, agent.FieldModel)
	}
	if m.system_prompt != nil {
		fields = append(fields, agent.FieldSystemPrompt)
	}
	if m.temperature != nil {
		fields = append(fields, agent.FieldTemperature)
	}
	if m.max_tokens != nil {
		fields = append(fields, agent.FieldMaxTokens)
	}
	if m._config != nil {
		fields = append(fields, agent.FieldConfig)
	}
	if m.active != nil {
		fields = append(fields, agent.FieldActive)
	}
	if m.created_at != nil {
		fields = append(fields, agent.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, agent.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agent.FieldName:
		return m.Name()
	case agent.FieldProvider:
		return m.Provider()
	case agent.FieldModel:
		return m.Model()
	case agent.FieldSystemPrompt:
		return m.SystemPrompt()
	case agent.FieldTemperature:
		return m.Temperature()
	case agent.FieldMaxTokens:
		return m.MaxTokens()
	case agent.FieldConfig:
		return m.Config()
	case agent.FieldActive:
		return m.Active()
	case agent.FieldCreatedAt:
		return m.CreatedAt()
	case agent.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agent.FieldName:
		return m.OldName(ctx)
	case agent.FieldProvider:
		return m.OldProvider(ctx)
	case agent.FieldModel:
		return m.OldModel(ctx)
	case agent.FieldSystemPrompt:
		return m.OldSystemPrompt(ctx)
	case agent.FieldTemperature:
		return m.OldTemperature(ctx)
	case agent.FieldMaxTokens:
		return m.OldMaxTokens(ctx)
	case agent.FieldConfig:
		return m.OldConfig(ctx)
	case agent.FieldActive:
		return m.OldActive(ctx)
	case agent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case agent.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Agent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agent.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case agent.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case agent.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case agent.FieldSystemPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSystemPrompt(v)
		return nil
	case agent.FieldTemperature:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemperature(v)
		return nil
	case agent.FieldMaxTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxTokens(v)
		return nil
	case agent.FieldConfig:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfig(v)
		return nil
	case agent.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	case agent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case agent.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Agent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentMutation) AddedFields() []string {
	var fields []string
	if m.addtemperature != nil {
		fields = append(fields, agent.FieldTemperature)
	}
	if m.addmax_tokens != nil {
		fields = append(fields, agent.FieldMaxTokens)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agent.FieldTemperature:
		return m.AddedTemperature()
	case agent.FieldMaxTokens:
		return m.AddedMaxTokens()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agent.FieldTemperature:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTemperature(v)
		return nil
	case agent.FieldMaxTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxTokens(v)
		return nil
	}
	return fmt.Errorf("unknown Agent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agent.FieldSystemPrompt) {
		fields = append(fields, agent.FieldSystemPrompt)
	}
	if m.FieldCleared(agent.FieldConfig) {
		fields = append(fields, agent.FieldConfig)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentMutation) ClearField(name string) error {
	switch name {
	case agent.FieldSystemPrompt:
		m.ClearSystemPrompt()
		return nil
	case agent.FieldConfig:
		m.ClearConfig()
		return nil
	}
	return fmt.Errorf("unknown Agent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentMutation) ResetField(name string) error {
	switch name {
	case agent.FieldName:
		m.ResetName()
		return nil
	case agent.FieldProvider:
		m.ResetProvider()
		return nil
	case agent.FieldModel:
		m.ResetModel()
		return nil
	case agent.FieldSystemPrompt:
		m.ResetSystemPrompt()
		return nil
	case agent.FieldTemperature:
		m.ResetTemperature()
		return nil
	case agent.FieldMaxTokens:
		m.ResetMaxTokens()
		return nil
	case agent.FieldConfig:
		m.ResetConfig()
		return nil
	case agent.FieldActive:
		m.ResetActive()
		return nil
	case agent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case agent.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Agent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.agent_tools != nil {
		edges = append(edges, agent.EdgeAgentTools)
	}
	if m.executions != nil {
		edges = append(edges, agent.EdgeExecutions)
	}
	if m.steps != nil {
		edges = append(edges, agent.EdgeSteps)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agent.EdgeAgentTools:
		ids := make([]ent.Value, 0, len(m.agent_tools))
		for id := range m.agent_tools {
			ids = append(ids, id)
		}
		return ids
	case agent.EdgeExecutions:
		ids := make([]ent.Value, 0, len(m.executions))
		for id := range m.executions {
			ids = append(ids, id)
		}
		return ids
	case agent.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.steps))
		for id := range m.steps {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedagent_tools != nil {
		edges = append(edges, agent.EdgeAgentTools)
	}
	if m.removedexecutions != nil {
		edges = append(edges, agent.EdgeExecutions)
	}
	if m.removedsteps != nil {
		edges = append(edges, agent.EdgeSteps)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case agent.EdgeAgentTools:
		ids := make([]ent.Value, 0, len(m.removedagent_tools))
		for id := range m.removedagent_tools {
			ids = append(ids, id)
		}
		return ids
	case agent.EdgeExecutions:
		ids := make([]ent.Value, 0, len(m.removedexecutions))
		for id := range m.removedexecutions {
			ids = append(ids, id)
		}
		return ids
	case agent.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.removedsteps))
		for id := range m.removedsteps {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedagent_tools {
		edges = append(edges, agent.EdgeAgentTools)
	}
	if m.clearedexecutions {
		edges = append(edges, agent.EdgeExecutions)
	}
	if m.clearedsteps {
		edges = append(edges, agent.EdgeSteps)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentMutation) EdgeCleared(name string) bool {
	switch name {
	case agent.EdgeAgentTools:
		return m.clearedagent_tools
	case agent.EdgeExecutions:
		return m.clearedexecutions
	case agent.EdgeSteps:
		return m.clearedsteps
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Agent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentMutation) ResetEdge(name string) error {
	switch name {
	case agent.EdgeAgentTools:
		m.ResetAgentTools()
		return nil
	case agent.EdgeExecutions:
		m.ResetExecutions()
		return nil
	case agent.EdgeSteps:
		m.ResetSteps()
		return nil
	}
	return fmt.Errorf("unknown Agent edge %s", name)
}

// AgentExecutionMutation represents an operation that mutates the AgentExecution nodes in the graph.
type AgentExecutionMutation struct {
	config
	op                        Op
	typ                       string
	id                        *int
	status                    *agentexecution.Status
	input                     *map[string]interface{}
	output                    *map[string]interface{}
	input_tokens              *int
	addinput_tokens           *int
	output_tokens             *int
	addoutput_tokens          *int
	tokens_used               *int
	addtokens_used            *int
	duration_ms               *int
	addduration_ms            *int
	error_message             *string
	started_at                *time.Time
	completed_at              *time.Time
	created_at                *time.Time
	clearedFields             map[string]struct{}
	workflow_execution        *int
	clearedworkflow_execution bool
	step                      *int
	clearedstep               bool
	agent                     *int
	clearedagent              bool
	done                      bool
	oldValue                  func(context.Context) (*AgentExecution, error)
	predicates                []predicate.AgentExecution
}

var _ ent.Mutation = (*AgentExecutionMutation)(nil)

// agentexecutionOption allows management of the mutation configuration using functional options.
type agentexecutionOption func(*AgentExecutionMutation)

// newAgentExecutionMutation creates new mutation for the AgentExecution entity.
func newAgentExecutionMutation(c config, op Op, opts ...agentexecutionOption) *AgentExecutionMutation {
	m := &AgentExecutionMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentExecution,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentExecutionID sets the ID field of the mutation.
func withAgentExecutionID(id int) agentexecutionOption {
	return func(m *AgentExecutionMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentExecution
		)
		m.oldValue = func(ctx context.Context) (*AgentExecution, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentExecution.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentExecution sets the old AgentExecution of the mutation.
func withAgentExecution(node *AgentExecution) agentexecutionOption {
	return func(m *AgentExecutionMutation) {
		m.oldValue = func(context.Context) (*AgentExecution, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentExecutionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentExecutionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentExecutionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentExecutionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentExecution.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetExecutionID sets the "execution_id" field.
func (m *AgentExecutionMutation) SetExecutionID(i int) {
	m.workflow_execution = &i
}

// ExecutionID returns the value of the "execution_id" field in the mutation.
func (m *AgentExecutionMutation) ExecutionID() (r int, exists bool) {
	v := m.workflow_execution
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionID returns the old "execution_id" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldExecutionID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionID: %w", err)
	}
	return oldValue.ExecutionID, nil
}

// ClearExecutionID clears the value of the "execution_id" field.
func (m *AgentExecutionMutation) ClearExecutionID() {
	m.workflow_execution = nil
	m.clearedFields[agentexecution.FieldExecutionID] = struct{}{}
}

// ExecutionIDCleared returns if the "execution_id" field was cleared in this mutation.
func (m *AgentExecutionMutation) ExecutionIDCleared() bool {
	_, ok := m.clearedFields[agentexecution.FieldExecutionID]
	return ok
}

// ResetExecutionID resets all changes to the "execution_id" field.
func (m *AgentExecutionMutation) ResetExecutionID() {
	m.workflow_execution = nil
	delete(m.clearedFields, agentexecution.FieldExecutionID)
}

// SetStepID sets the "step_id" field.
func (m *AgentExecutionMutation) SetStepID(i int) {
	m.step = &i
}

// StepID returns the value of the "step_id" field in the mutation.
func (m *AgentExecutionMutation) StepID() (r int, exists bool) {
	v := m.step
	if v == nil {
		return
	}
	return *v, true
}

// OldStepID returns the old "step_id" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldStepID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepID: %w", err)
	}
	return oldValue.StepID, nil
}

// ClearStepID clears the value of the "step_id" field.
func (m *AgentExecutionMutation) ClearStepID() {
	m.step = nil
	m.clearedFields[agentexecution.FieldStepID] = struct{}{}
}

// StepIDCleared returns if the "step_id" field was cleared in this mutation.
func (m *AgentExecutionMutation) StepIDCleared() bool {
	_, ok := m.clearedFields[agentexecution.FieldStepID]
	return ok
}

// ResetStepID resets all changes to the "step_id" field.
func (m *AgentExecutionMutation) ResetStepID() {
	m.step = nil
	delete(m.clearedFields, agentexecution.FieldStepID)
}

// SetAgentID sets the "agent_id" field.
func (m *AgentExecutionMutation) SetAgentID(i int) {
	m.agent = &i
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *AgentExecutionMutation) AgentID() (r int, exists bool) {
	v := m.agent
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldAgentID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *AgentExecutionMutation) ResetAgentID() {
	m.agent = nil
}

// SetStatus sets the "status" field.
func (m *AgentExecutionMutation) SetStatus(a agentexecution.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AgentExecutionMutation) Status() (r agentexecution.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldStatus(ctx context.Context) (v agentexecution.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AgentExecutionMutation) ResetStatus() {
	m.status = nil
}

// SetInput sets the "input" field.
func (m *AgentExecutionMutation) SetInput(value map[string]interface{}) {
	m.input = &value
}

// Input returns the value of the "input" field in the mutation.
func (m *AgentExecutionMutation) Input() (r map[string]interface{}, exists bool) {
	v := m.input
	if v == nil {
		return
	}
	return *v, true
}

// OldInput returns the old "input" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldInput(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInput: %w", err)
	}
	return oldValue.Input, nil
}

// ClearInput clears the value of the "input" field.
func (m *AgentExecutionMutation) ClearInput() {
	m.input = nil
	m.clearedFields[agentexecution.FieldInput] = struct{}{}
}

// InputCleared returns if the "input" field was cleared in this mutation.
func (m *AgentExecutionMutation) InputCleared() bool {
	_, ok := m.clearedFields[agentexecution.FieldInput]
	return ok
}

// ResetInput resets all changes to the "input" field.
func (m *AgentExecutionMutation) ResetInput() {
	m.input = nil
	delete(m.clearedFields, agentexecution.FieldInput)
}

// SetOutput sets the "output" field.
func (m *AgentExecutionMutation) SetOutput(value map[string]interface{}) {
	m.output = &value
}

// Output returns the value of the "output" field in the mutation.
func (m *AgentExecutionMutation) Output() (r map[string]interface{}, exists bool) {
	v := m.output
	if v == nil {
		return
	}
	return *v, true
}

// OldOutput returns the old "output" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldOutput(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutput: %w", err)
	}
	return oldValue.Output, nil
}

// ClearOutput clears the value of the "output" field.
func (m *AgentExecutionMutation) ClearOutput() {
	m.output = nil
	m.clearedFields[agentexecution.FieldOutput] = struct{}{}
}

// OutputCleared returns if the "output" field was cleared in this mutation.
func (m *AgentExecutionMutation) OutputCleared() bool {
	_, ok := m.clearedFields[agentexecution.FieldOutput]
	return ok
}

// ResetOutput resets all changes to the "output" field.
func (m *AgentExecutionMutation) ResetOutput() {
	m.output = nil
	delete(m.clearedFields, agentexecution.FieldOutput)
}

// SetInputTokens sets the "input_tokens" field.
func (m *AgentExecutionMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *AgentExecutionMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldInputTokens(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *AgentExecutionMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *AgentExecutionMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ClearInputTokens clears the value of the "input_tokens" field.
func (m *AgentExecutionMutation) ClearInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
	m.clearedFields[agentexecution.FieldInputTokens] = struct{}{}
}

// InputTokensCleared returns if the "input_tokens" field was cleared in this mutation.
func (m *AgentExecutionMutation) InputTokensCleared() bool {
	_, ok := m.clearedFields[agentexecution.FieldInputTokens]
	return ok
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *AgentExecutionMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
	delete(m.clearedFields, agentexecution.FieldInputTokens)
}

// SetOutputTokens sets the "output_tokens" field.
func (m *AgentExecutionMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *AgentExecutionMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldOutputTokens(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *AgentExecutionMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *AgentExecutionMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ClearOutputTokens clears the value of the "output_tokens" field.
func (m *AgentExecutionMutation) ClearOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
	m.clearedFields[agentexecution.FieldOutputTokens] = struct{}{}
}

// OutputTokensCleared returns if the "output_tokens" field was cleared in this mutation.
func (m *AgentExecutionMutation) OutputTokensCleared() bool {
	_, ok := m.clearedFields[agentexecution.FieldOutputTokens]
	return ok
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *AgentExecutionMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
	delete(m.clearedFields, agentexecution.FieldOutputTokens)
}

// SetTokensUsed sets the "tokens_used" field.
func (m *AgentExecutionMutation) SetTokensUsed(i int) {
	m.tokens_used = &i
	m.addtokens_used = nil
}

// TokensUsed returns the value of the "tokens_used" field in the mutation.
func (m *AgentExecutionMutation) TokensUsed() (r int, exists bool) {
	v := m.tokens_used
	if v == nil {
		return
	}
	return *v, true
}

// OldTokensUsed returns the old "tokens_used" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldTokensUsed(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokensUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokensUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokensUsed: %w", err)
	}
	return oldValue.TokensUsed, nil
}

// AddTokensUsed adds i to the "tokens_used" field.
func (m *AgentExecutionMutation) AddTokensUsed(i int) {
	if m.addtokens_used != nil {
		*m.addtokens_used += i
	} else {
		m.addtokens_used = &i
	}
}

// AddedTokensUsed returns the value that was added to the "tokens_used" field in this mutation.
func (m *AgentExecutionMutation) AddedTokensUsed() (r int, exists bool) {
	v := m.addtokens_used
	if v == nil {
		return
	}
	return *v, true
}

// ClearTokensUsed clears the value of the "tokens_used" field.
func (m *AgentExecutionMutation) ClearTokensUsed() {
	m.tokens_used = nil
	m.addtokens_used = nil
	m.clearedFields[agentexecution.FieldTokensUsed] = struct{}{}
}

// TokensUsedCleared returns if the "tokens_used" field was cleared in this mutation.
func (m *AgentExecutionMutation) TokensUsedCleared() bool {
	_, ok := m.clearedFields[agentexecution.FieldTokensUsed]
	return ok
}

// ResetTokensUsed resets all changes to the "tokens_used" field.
func (m *AgentExecutionMutation) ResetTokensUsed() {
	m.tokens_used = nil
	m.addtokens_used = nil
	delete(m.clearedFields, agentexecution.FieldTokensUsed)
}

// SetDurationMs sets the "duration_ms" field.
func (m *AgentExecutionMutation) SetDurationMs(i int) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *AgentExecutionMutation) DurationMs() (r int, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldDurationMs(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *AgentExecutionMutation) AddDurationMs(i int) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *AgentExecutionMutation) AddedDurationMs() (r int, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (m *AgentExecutionMutation) ClearDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	m.clearedFields[agentexecution.FieldDurationMs] = struct{}{}
}

// DurationMsCleared returns if the "duration_ms" field was cleared in this mutation.
func (m *AgentExecutionMutation) DurationMsCleared() bool {
	_, ok := m.clearedFields[agentexecution.FieldDurationMs]
	return ok
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *AgentExecutionMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	delete(m.clearedFields, agentexecution.FieldDurationMs)
}

// SetErrorMessage sets the "error_message" field.
func (m *AgentExecutionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *AgentExecutionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *AgentExecutionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[agentexecution.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *AgentExecutionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[agentexecution.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *AgentExecutionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, agentexecution.FieldErrorMessage)
}

// SetStartedAt sets the "started_at" field.
func (m *AgentExecutionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *AgentExecutionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *AgentExecutionMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[agentexecution.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *AgentExecutionMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[agentexecution.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *AgentExecutionMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, agentexecution.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *AgentExecutionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *AgentExecutionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *AgentExecutionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[agentexecution.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *AgentExecutionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[agentexecution.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *AgentExecutionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, agentexecution.FieldCompletedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentExecutionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentExecutionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentExecutionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetWorkflowExecutionID sets the "workflow_execution" edge to the WorkflowExecution entity by id.
func (m *AgentExecutionMutation) SetWorkflowExecutionID(id int) {
	m.workflow_execution = &id
}

// ClearWorkflowExecution clears the "workflow_execution" edge to the WorkflowExecution entity.
func (m *AgentExecutionMutation) ClearWorkflowExecution() {
	m.clearedworkflow_execution = true
	m.clearedFields[agentexecution.FieldExecutionID] = struct{}{}
}

// WorkflowExecutionCleared reports if the "workflow_execution" edge to the WorkflowExecution entity was cleared.
func (m *AgentExecutionMutation) WorkflowExecutionCleared() bool {
	return m.ExecutionIDCleared() || m.clearedworkflow_execution
}

// WorkflowExecutionID returns the "workflow_execution" edge ID in the mutation.
func (m *AgentExecutionMutation) WorkflowExecutionID() (id int, exists bool) {
	if m.workflow_execution != nil {
		return *m.workflow_execution, true
	}
	return
}

// WorkflowExecutionIDs returns the "workflow_execution" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WorkflowExecutionID instead. It exists only for internal usage by the builders.
func (m *AgentExecutionMutation) WorkflowExecutionIDs() (ids []int) {
	if id := m.workflow_execution; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWorkflowExecution resets all changes to the "workflow_execution" edge.
func (m *AgentExecutionMutation) ResetWorkflowExecution() {
	m.workflow_execution = nil
	m.clearedworkflow_execution = false
}

// ClearStep clears the "step" edge to the WorkflowStep entity.
func (m *AgentExecutionMutation) ClearStep() {
	m.clearedstep = true
	m.clearedFields[agentexecution.FieldStepID] = struct{}{}
}

// StepCleared reports if the "step" edge to the WorkflowStep entity was cleared.
func (m *AgentExecutionMutation) StepCleared() bool {
	return m.StepIDCleared() || m.clearedstep
}

// StepIDs returns the "step" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// StepID instead. It exists only for internal usage by the builders.
func (m *AgentExecutionMutation) StepIDs() (ids []int) {
	if id := m.step; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetStep resets all changes to the "step" edge.
func (m *AgentExecutionMutation) ResetStep() {
	m.step = nil
	m.clearedstep = false
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (m *AgentExecutionMutation) ClearAgent() {
	m.clearedagent = true
	m.clearedFields[agentexecution.FieldAgentID] = struct{}{}
}

// AgentCleared reports if the "agent" edge to the Agent entity was cleared.
func (m *AgentExecutionMutation) AgentCleared() bool {
	return m.clearedagent
}

// AgentIDs returns the "agent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AgentID instead. It exists only for internal usage by the builders.
func (m *AgentExecutionMutation) AgentIDs() (ids []int) {
	if id := m.agent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAgent resets all changes to the "agent" edge.
func (m *AgentExecutionMutation) ResetAgent() {
	m.agent = nil
	m.clearedagent = false
}

// Where appends a list predicates to the AgentExecutionMutation builder.
func (m *AgentExecutionMutation) Where(ps ...predicate.AgentExecution) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentExecutionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentExecutionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentExecution, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentExecutionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentExecutionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentExecution).
func (m *AgentExecutionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentExecutionMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.workflow_execution != nil {
		fields = append(fields, agentexecution.FieldExecutionID)
	}
	if m.step != nil {
		fields = append(fields, agentexecution.FieldStepID)
	}
	if m.agent != nil {
		fields = append(fields, agentexecution.FieldAgentID)
	}
	if m.status != nil {
		fields = append(fields, agentexecution.FieldStatus)
	}
	if m.input != nil {
		fields = append(fields, agentexecution.FieldInput)
	}
	if m.output != nil {
		fields = append(fields, agentexecution.FieldOutput)
	}
	if m.input_tokens != nil {
		fields = append(fields, agentexecution.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, agentexecution.FieldOutputTokens)
	}
	if m.tokens_used != nil {
		fields = append(fields, agentexecution.FieldTokensUsed)
	}
	if m.duration_ms != nil {
		fields = append(fields, agentexecution.FieldDurationMs)
	}
	if m.error_message != nil {
		fields = append(fields, agentexecution.FieldErrorMessage)
	}
	if m.started_at != nil {
		fields = append(fields, agentexecution.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, agentexecution.FieldCompletedAt)
	}
	if m.created_at != nil {
		fields = append(fields, agentexecution.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentExecutionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentexecution.FieldExecutionID:
		return m.ExecutionID()
	case agentexecution.FieldStepID:
		return m.StepID()
	case agentexecution.FieldAgentID:
		return m.AgentID()
	case agentexecution.FieldStatus:
		return m.Status()
	case agentexecution.FieldInput:
		return m.Input()
	case agentexecution.FieldOutput:
		return m.Output()
	case agentexecution.FieldInputTokens:
		return m.InputTokens()
	case agentexecution.FieldOutputTokens:
		return m.OutputTokens()
	case agentexecution.FieldTokensUsed:
		return m.TokensUsed()
	case agentexecution.FieldDurationMs:
		return m.DurationMs()
	case agentexecution.FieldErrorMessage:
		return m.ErrorMessage()
	case agentexecution.FieldStartedAt:
		return m.StartedAt()
	case agentexecution.FieldCompletedAt:
		return m.CompletedAt()
	case agentexecution.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentExecutionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentexecution.FieldExecutionID:
		return m.OldExecutionID(ctx)
	case agentexecution.FieldStepID:
		return m.OldStepID(ctx)
	case agentexecution.FieldAgentID:
		return m.OldAgentID(ctx)
	case agentexecution.FieldStatus:
		return m.OldStatus(ctx)
	case agentexecution.FieldInput:
		return m.OldInput(ctx)
	case agentexecution.FieldOutput:
		return m.OldOutput(ctx)
	case agentexecution.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case agentexecution.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case agentexecution.FieldTokensUsed:
		return m.OldTokensUsed(ctx)
	case agentexecution.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case agentexecution.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case agentexecution.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case agentexecution.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case agentexecution.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentExecution field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentExecutionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentexecution.FieldExecutionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionID(v)
		return nil
	case agentexecution.FieldStepID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepID(v)
		return nil
	case agentexecution.FieldAgentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case agentexecution.FieldStatus:
		v, ok := value.(agentexecution.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case agentexecution.FieldInput:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInput(v)
		return nil
	case agentexecution.FieldOutput:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutput(v)
		return nil
	case agentexecution.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case agentexecution.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case agentexecution.FieldTokensUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokensUsed(v)
		return nil
	case agentexecution.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case agentexecution.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case agentexecution.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case agentexecution.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case agentexecution.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentExecution field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentExecutionMutation) AddedFields() []string {
	var fields []string
	if m.addinput_tokens != nil {
		fields = append(fields, agentexecution.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, agentexecution.FieldOutputTokens)
	}
	if m.addtokens_used != nil {
		fields = append(fields, agentexecution.FieldTokensUsed)
	}
	if m.addduration_ms != nil {
		fields = append(fields, agentexecution.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentExecutionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agentexecution.FieldInputTokens:
		return m.AddedInputTokens()
	case agentexecution.FieldOutputTokens:
		return m.AddedOutputTokens()
	case agentexecution.FieldTokensUsed:
		return m.AddedTokensUsed()
	case agentexecution.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentExecutionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agentexecution.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case agentexecution.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case agentexecution.FieldTokensUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokensUsed(v)
		return nil
	case agentexecution.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown AgentExecution numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentExecutionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentexecution.FieldExecutionID) {
		fields = append(fields, agentexecution.FieldExecutionID)
	}
	if m.FieldCleared(agentexecution.FieldStepID) {
		fields = append(fields, agentexecution.FieldStepID)
	}
	if m.FieldCleared(agentexecution.FieldInput) {
		fields = append(fields, agentexecution.FieldInput)
	}
	if m.FieldCleared(agentexecution.FieldOutput) {
		fields = append(fields, agentexecution.FieldOutput)
	}
	if m.FieldCleared(agentexecution.FieldInputTokens) {
		fields = append(fields, agentexecution.FieldInputTokens)
	}
	if m.FieldCleared(agentexecution.FieldOutputTokens) {
		fields = append(fields, agentexecution.FieldOutputTokens)
	}
	if m.FieldCleared(agentexecution.FieldTokensUsed) {
		fields = append(fields, agentexecution.FieldTokensUsed)
	}
	if m.FieldCleared(agentexecution.FieldDurationMs) {
		fields = append(fields, agentexecution.FieldDurationMs)
	}
	if m.FieldCleared(agentexecution.FieldErrorMessage) {
		fields = append(fields, agentexecution.FieldErrorMessage)
	}
	if m.FieldCleared(agentexecution.FieldStartedAt) {
		fields = append(fields, agentexecution.FieldStartedAt)
	}
	if m.FieldCleared(agentexecution.FieldCompletedAt) {
		fields = append(fields, agentexecution.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentExecutionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentExecutionMutation) ClearField(name string) error {
	switch name {
	case agentexecution.FieldExecutionID:
		m.ClearExecutionID()
		return nil
	case agentexecution.FieldStepID:
		m.ClearStepID()
		return nil
	case agentexecution.FieldInput:
		m.ClearInput()
		return nil
	case agentexecution.FieldOutput:
		m.ClearOutput()
		return nil
	case agentexecution.FieldInputTokens:
		m.ClearInputTokens()
		return nil
	case agentexecution.FieldOutputTokens:
		m.ClearOutputTokens()
		return nil
	case agentexecution.FieldTokensUsed:
		m.ClearTokensUsed()
		return nil
	case agentexecution.FieldDurationMs:
		m.ClearDurationMs()
		return nil
	case agentexecution.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case agentexecution.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case agentexecution.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentExecution nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentExecutionMutation) ResetField(name string) error {
	switch name {
	case agentexecution.FieldExecutionID:
		m.ResetExecutionID()
		return nil
	case agentexecution.FieldStepID:
		m.ResetStepID()
		return nil
	case agentexecution.FieldAgentID:
		m.ResetAgentID()
		return nil
	case agentexecution.FieldStatus:
		m.ResetStatus()
		return nil
	case agentexecution.FieldInput:
		m.ResetInput()
		return nil
	case agentexecution.FieldOutput:
		m.ResetOutput()
		return nil
	case agentexecution.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case agentexecution.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case agentexecution.FieldTokensUsed:
		m.ResetTokensUsed()
		return nil
	case agentexecution.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case agentexecution.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case agentexecution.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case agentexecution.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case agentexecution.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentExecution field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentExecutionMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.workflow_execution != nil {
		edges = append(edges, agentexecution.EdgeWorkflowExecution)
	}
	if m.step != nil {
		edges = append(edges, agentexecution.EdgeStep)
	}
	if m.agent != nil {
		edges = append(edges, agentexecution.EdgeAgent)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentExecutionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agentexecution.EdgeWorkflowExecution:
		if id := m.workflow_execution; id != nil {
			return []ent.Value{*id}
		}
	case agentexecution.EdgeStep:
		if id := m.step; id != nil {
			return []ent.Value{*id}
		}
	case agentexecution.EdgeAgent:
		if id := m.agent; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentExecutionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentExecutionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentExecutionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedworkflow_execution {
		edges = append(edges, agentexecution.EdgeWorkflowExecution)
	}
	if m.clearedstep {
		edges = append(edges, agentexecution.EdgeStep)
	}
	if m.clearedagent {
		edges = append(edges, agentexecution.EdgeAgent)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentExecutionMutation) EdgeCleared(name string) bool {
	switch name {
	case agentexecution.EdgeWorkflowExecution:
		return m.clearedworkflow_execution
	case agentexecution.EdgeStep:
		return m.clearedstep
	case agentexecution.EdgeAgent:
		return m.clearedagent
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentExecutionMutation) ClearEdge(name string) error {
	switch name {
	case agentexecution.EdgeWorkflowExecution:
		m.ClearWorkflowExecution()
		return nil
	case agentexecution.EdgeStep:
		m.ClearStep()
		return nil
	case agentexecution.EdgeAgent:
		m.ClearAgent()
		return nil
	}
	return fmt.Errorf("unknown AgentExecution unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentExecutionMutation) ResetEdge(name string) error {
	switch name {
	case agentexecution.EdgeWorkflowExecution:
		m.ResetWorkflowExecution()
		return nil
	case agentexecution.EdgeStep:
		m.ResetStep()
		return nil
	case agentexecution.EdgeAgent:
		m.ResetAgent()
		return nil
	}
	return fmt.Errorf("unknown AgentExecution edge %s", name)
}

// AgentToolMutation represents an operation that mutates the AgentTool nodes in the graph.
type AgentToolMutation struct {
	config
	op            Op
	typ           string
	id            *int
	_config       *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	agent         *int
	clearedagent  bool
	tool          *int
	clearedtool   bool
	done          bool
	oldValue      func(context.Context) (*AgentTool, error)
	predicates    []predicate.AgentTool
}

var _ ent.Mutation = (*AgentToolMutation)(nil)

// agenttoolOption allows management of the mutation configuration using functional options.
type agenttoolOption func(*AgentToolMutation)

// newAgentToolMutation creates new mutation for the AgentTool entity.
func newAgentToolMutation(c config, op Op, opts ...agenttoolOption) *AgentToolMutation {
	m := &AgentToolMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentTool,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentToolID sets the ID field of the mutation.
func withAgentToolID(id int) agenttoolOption {
	return func(m *AgentToolMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentTool
		)
		m.oldValue = func(ctx context.Context) (*AgentTool, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentTool.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentTool sets the old AgentTool of the mutation.
func withAgentTool(node *AgentTool) agenttoolOption {
	return func(m *AgentToolMutation) {
		m.oldValue = func(context.Context) (*AgentTool, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentToolMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentToolMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentToolMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentToolMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentTool.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentID sets the "agent_id" field.
func (m *AgentToolMutation) SetAgentID(i int) {
	m.agent = &i
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *AgentToolMutation) AgentID() (r int, exists bool) {
	v := m.agent
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the AgentTool entity.
// If the AgentTool object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentToolMutation) OldAgentID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *AgentToolMutation) ResetAgentID() {
	m.agent = nil
}

// SetToolID sets the "tool_id" field.
func (m *AgentToolMutation) SetToolID(i int) {
	m.tool = &i
}

// ToolID returns the value of the "tool_id" field in the mutation.
func (m *AgentToolMutation) ToolID() (r int, exists bool) {
	v := m.tool
	if v == nil {
		return
	}
	return *v, true
}

// OldToolID returns the old "tool_id" field's value of the AgentTool entity.
// If the AgentTool object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentToolMutation) OldToolID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolID: %w", err)
	}
	return oldValue.ToolID, nil
}

// ResetToolID resets all changes to the "tool_id" field.
func (m *AgentToolMutation) ResetToolID() {
	m.tool = nil
}

// SetConfig sets the "config" field.
func (m *AgentToolMutation) SetConfig(value map[string]interface{}) {
	m._config = &value
}

// Config returns the value of the "config" field in the mutation.
func (m *AgentToolMutation) Config() (r map[string]interface{}, exists bool) {
	v := m._config
	if v == nil {
		return
	}
	return *v, true
}

// OldConfig returns the old "config" field's value of the AgentTool entity.
// If the AgentTool object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentToolMutation) OldConfig(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfig: %w", err)
	}
	return oldValue.Config, nil
}

// ClearConfig clears the value of the "config" field.
func (m *AgentToolMutation) ClearConfig() {
	m._config = nil
	m.clearedFields[agenttool.FieldConfig] = struct{}{}
}

// ConfigCleared returns if the "config" field was cleared in this mutation.
func (m *AgentToolMutation) ConfigCleared() bool {
	_, ok := m.clearedFields[agenttool.FieldConfig]
	return ok
}

// ResetConfig resets all changes to the "config" field.
func (m *AgentToolMutation) ResetConfig() {
	m._config = nil
	delete(m.clearedFields, agenttool.FieldConfig)
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentToolMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentToolMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AgentTool entity.
// If the AgentTool object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentToolMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentToolMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (m *AgentToolMutation) ClearAgent() {
	m.clearedagent = true
	m.clearedFields[agenttool.FieldAgentID] = struct{}{}
}

// AgentCleared reports if the "agent" edge to the Agent entity was cleared.
func (m *AgentToolMutation) AgentCleared() bool {
	return m.clearedagent
}

// AgentIDs returns the "agent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AgentID instead. It exists only for internal usage by the builders.
func (m *AgentToolMutation) AgentIDs() (ids []int) {
	if id := m.agent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAgent resets all changes to the "agent" edge.
func (m *AgentToolMutation) ResetAgent() {
	m.agent = nil
	m.clearedagent = false
}

// ClearTool clears the "tool" edge to the Tool entity.
func (m *AgentToolMutation) ClearTool() {
	m.clearedtool = true
	m.clearedFields[agenttool.FieldToolID] = struct{}{}
}

// ToolCleared reports if the "tool" edge to the Tool entity was cleared.
func (m *AgentToolMutation) ToolCleared() bool {
	return m.clearedtool
}

// ToolIDs returns the "tool" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ToolID instead. It exists only for internal usage by the builders.
func (m *AgentToolMutation) ToolIDs() (ids []int) {
	if id := m.tool; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTool resets all changes to the "tool" edge.
func (m *AgentToolMutation) ResetTool() {
	m.tool = nil
	m.clearedtool = false
}

// Where appends a list predicates to the AgentToolMutation builder.
func (m *AgentToolMutation) Where(ps ...predicate.AgentTool) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentToolMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentToolMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentTool, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentToolMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentToolMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentTool).
func (m *AgentToolMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentToolMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.agent != nil {
		fields = append(fields, agenttool.FieldAgentID)
	}
	if m.tool != nil {
		fields = append(fields, agenttool.FieldToolID)
	}
	if m._config != nil {
		fields = append(fields, agenttool.FieldConfig)
	}
	if m.created_at != nil {
		fields = append(fields, agenttool.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentToolMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agenttool.FieldAgentID:
		return m.AgentID()
	case agenttool.FieldToolID:
		return m.ToolID()
	case agenttool.FieldConfig:
		return m.Config()
	case agenttool.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentToolMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agenttool.FieldAgentID:
		return m.OldAgentID(ctx)
	case agenttool.FieldToolID:
		return m.OldToolID(ctx)
	case agenttool.FieldConfig:
		return m.OldConfig(ctx)
	case agenttool.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentTool field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentToolMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agenttool.FieldAgentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case agenttool.FieldToolID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolID(v)
		return nil
	case agenttool.FieldConfig:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfig(v)
		return nil
	case agenttool.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentTool field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentToolMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentToolMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentToolMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AgentTool numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentToolMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agenttool.FieldConfig) {
		fields = append(fields, agenttool.FieldConfig)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentToolMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentToolMutation) ClearField(name string) error {
	switch name {
	case agenttool.FieldConfig:
		m.ClearConfig()
		return nil
	}
	return fmt.Errorf("unknown AgentTool nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentToolMutation) ResetField(name string) error {
	switch name {
	case agenttool.FieldAgentID:
		m.ResetAgentID()
		return nil
	case agenttool.FieldToolID:
		m.ResetToolID()
		return nil
	case agenttool.FieldConfig:
		m.ResetConfig()
		return nil
	case agenttool.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentTool field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentToolMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.agent != nil {
		edges = append(edges, agenttool.EdgeAgent)
	}
	if m.tool != nil {
		edges = append(edges, agenttool.EdgeTool)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentToolMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agenttool.EdgeAgent:
		if id := m.agent; id != nil {
			return []ent.Value{*id}
		}
	case agenttool.EdgeTool:
		if id := m.tool; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentToolMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentToolMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentToolMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedagent {
		edges = append(edges, agenttool.EdgeAgent)
	}
	if m.clearedtool {
		edges = append(edges, agenttool.EdgeTool)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentToolMutation) EdgeCleared(name string) bool {
	switch name {
	case agenttool.EdgeAgent:
		return m.clearedagent
	case agenttool.EdgeTool:
		return m.clearedtool
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentToolMutation) ClearEdge(name string) error {
	switch name {
	case agenttool.EdgeAgent:
		m.ClearAgent()
		return nil
	case agenttool.EdgeTool:
		m.ClearTool()
		return nil
	}
	return fmt.Errorf("unknown AgentTool unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentToolMutation) ResetEdge(name string) error {
	switch name {
	case agenttool.EdgeAgent:
		m.ResetAgent()
		return nil
	case agenttool.EdgeTool:
		m.ResetTool()
		return nil
	}
	return fmt.Errorf("unknown AgentTool edge %s", name)
}

// ApprovalRequestMutation represents an operation that mutates the ApprovalRequest nodes in the graph.
type ApprovalRequestMutation struct {
	config
	op               Op
	typ              string
	id               *int
	status           *approvalrequest.Status
	required_role    *string
	approved_by      *string
	approved_at      *time.Time
	comments         *string
	timeout_at       *time.Time
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	execution        *int
	clearedexecution bool
	step             *int
	clearedstep      bool
	done             bool
	oldValue         func(context.Context) (*ApprovalRequest, error)
	predicates       []predicate.ApprovalRequest
}

var _ ent.Mutation = (*ApprovalRequestMutation)(nil)

// approvalrequestOption allows management of the mutation configuration using functional options.
type approvalrequestOption func(*ApprovalRequestMutation)

// newApprovalRequestMutation creates new mutation for the ApprovalRequest entity.
func newApprovalRequestMutation(c config, op Op, opts ...approvalrequestOption) *ApprovalRequestMutation {
	m := &ApprovalRequestMutation{
		config:        c,
		op:            op,
		typ:           TypeApprovalRequest,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withApprovalRequestID sets the ID field of the mutation.
func withApprovalRequestID(id int) approvalrequestOption {
	return func(m *ApprovalRequestMutation) {
		var (
			err   error
			once  sync.Once
			value *ApprovalRequest
		)
		m.oldValue = func(ctx context.Context) (*ApprovalRequest, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ApprovalRequest.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withApprovalRequest sets the old ApprovalRequest of the mutation.
func withApprovalRequest(node *ApprovalRequest) approvalrequestOption {
	return func(m *ApprovalRequestMutation) {
		m.oldValue = func(context.Context) (*ApprovalRequest, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ApprovalRequestMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ApprovalRequestMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ApprovalRequestMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ApprovalRequestMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ApprovalRequest.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetExecutionID sets the "execution_id" field.
func (m *ApprovalRequestMutation) SetExecutionID(i int) {
	m.execution = &i
}

// ExecutionID returns the value of the "execution_id" field in the mutation.
func (m *ApprovalRequestMutation) ExecutionID() (r int, exists bool) {
	v := m.execution
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionID returns the old "execution_id" field's value of the ApprovalRequest entity.
// If the ApprovalRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRequestMutation) OldExecutionID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionID: %w", err)
	}
	return oldValue.ExecutionID, nil
}

// ResetExecutionID resets all changes to the "execution_id" field.
func (m *ApprovalRequestMutation) ResetExecutionID() {
	m.execution = nil
}

// SetStepID sets the "step_id" field.
func (m *ApprovalRequestMutation) SetStepID(i int) {
	m.step = &i
}

// StepID returns the value of the "step_id" field in the mutation.
func (m *ApprovalRequestMutation) StepID() (r int, exists bool) {
	v := m.step
	if v == nil {
		return
	}
	return *v, true
}

// OldStepID returns the old "step_id" field's value of the ApprovalRequest entity.
// If the ApprovalRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRequestMutation) OldStepID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepID: %w", err)
	}
	return oldValue.StepID, nil
}

// ResetStepID resets all changes to the "step_id" field.
func (m *ApprovalRequestMutation) ResetStepID() {
	m.step = nil
}

// SetStatus sets the "status" field.
func (m *ApprovalRequestMutation) SetStatus(a approvalrequest.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *ApprovalRequestMutation) Status() (r approvalrequest.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ApprovalRequest entity.
// If the ApprovalRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRequestMutation) OldStatus(ctx context.Context) (v approvalrequest.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ApprovalRequestMutation) ResetStatus() {
	m.status = nil
}

// SetRequiredRole sets the "required_role" field.
func (m *ApprovalRequestMutation) SetRequiredRole(s string) {
	m.required_role = &s
}

// RequiredRole returns the value of the "required_role" field in the mutation.
func (m *ApprovalRequestMutation) RequiredRole() (r string, exists bool) {
	v := m.required_role
	if v == nil {
		return
	}
	return *v, true
}

// OldRequiredRole returns the old "required_role" field's value of the ApprovalRequest entity.
// If the ApprovalRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRequestMutation) OldRequiredRole(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequiredRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequiredRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequiredRole: %w", err)
	}
	return oldValue.RequiredRole, nil
}

// ClearRequiredRole clears the value of the "required_role" field.
func (m *ApprovalRequestMutation) ClearRequiredRole() {
	m.required_role = nil
	m.clearedFields[approvalrequest.FieldRequiredRole] = struct{}{}
}

// RequiredRoleCleared returns if the "required_role" field was cleared in this mutation.
func (m *ApprovalRequestMutation) RequiredRoleCleared() bool {
	_, ok := m.clearedFields[approvalrequest.FieldRequiredRole]
	return ok
}

// ResetRequiredRole resets all changes to the "required_role" field.
func (m *ApprovalRequestMutation) ResetRequiredRole() {
	m.required_role = nil
	delete(m.clearedFields, approvalrequest.FieldRequiredRole)
}

// SetApprovedBy sets the "approved_by" field.
func (m *ApprovalRequestMutation) SetApprovedBy(s string) {
	m.approved_by = &s
}

// ApprovedBy returns the value of the "approved_by" field in the mutation.
func (m *ApprovalRequestMutation) ApprovedBy() (r string, exists bool) {
	v := m.approved_by
	if v == nil {
		return
	}
	return *v, true
}

// OldApprovedBy returns the old "approved_by" field's value of the ApprovalRequest entity.
// If the ApprovalRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRequestMutation) OldApprovedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApprovedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApprovedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApprovedBy: %w", err)
	}
	return oldValue.ApprovedBy, nil
}

// ClearApprovedBy clears the value of the "approved_by" field.
func (m *ApprovalRequestMutation) ClearApprovedBy() {
	m.approved_by = nil
	m.clearedFields[approvalrequest.FieldApprovedBy] = struct{}{}
}

// ApprovedByCleared returns if the "approved_by" field was cleared in this mutation.
func (m *ApprovalRequestMutation) ApprovedByCleared() bool {
	_, ok := m.clearedFields[approvalrequest.FieldApprovedBy]
	return ok
}

// ResetApprovedBy resets all changes to the "approved_by" field.
func (m *ApprovalRequestMutation) ResetApprovedBy() {
	m.approved_by = nil
	delete(m.clearedFields, approvalrequest.FieldApprovedBy)
}

// SetApprovedAt sets the "approved_at" field.
func (m *ApprovalRequestMutation) SetApprovedAt(t time.Time) {
	m.approved_at = &t
}

// ApprovedAt returns the value of the "approved_at" field in the mutation.
func (m *ApprovalRequestMutation) ApprovedAt() (r time.Time, exists bool) {
	v := m.approved_at
	if v == nil {
		return
	}
	return *v, true
}

// OldApprovedAt returns the old "approved_at" field's value of the ApprovalRequest entity.
// If the ApprovalRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRequestMutation) OldApprovedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApprovedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApprovedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApprovedAt: %w", err)
	}
	return oldValue.ApprovedAt, nil
}

// ClearApprovedAt clears the value of the "approved_at" field.
func (m *ApprovalRequestMutation) ClearApprovedAt() {
	m.approved_at = nil
	m.clearedFields[approvalrequest.FieldApprovedAt] = struct{}{}
}

// ApprovedAtCleared returns if the "approved_at" field was cleared in this mutation.
func (m *ApprovalRequestMutation) ApprovedAtCleared() bool {
	_, ok := m.clearedFields[approvalrequest.FieldApprovedAt]
	return ok
}

// ResetApprovedAt resets all changes to the "approved_at" field.
func (m *ApprovalRequestMutation) ResetApprovedAt() {
	m.approved_at = nil
	delete(m.clearedFields, approvalrequest.FieldApprovedAt)
}

// SetComments sets the "comments" field.
func (m *ApprovalRequestMutation) SetComments(s string) {
	m.comments = &s
}

// Comments returns the value of the "comments" field in the mutation.
func (m *ApprovalRequestMutation) Comments() (r string, exists bool) {
	v := m.comments
	if v == nil {
		return
	}
	return *v, true
}

// OldComments returns the old "comments" field's value of the ApprovalRequest entity.
// If the ApprovalRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRequestMutation) OldComments(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComments is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComments requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComments: %w", err)
	}
	return oldValue.Comments, nil
}

// ClearComments clears the value of the "comments" field.
func (m *ApprovalRequestMutation) ClearComments() {
	m.comments = nil
	m.clearedFields[approvalrequest.FieldComments] = struct{}{}
}

// CommentsCleared returns if the "comments" field was cleared in this mutation.
func (m *ApprovalRequestMutation) CommentsCleared() bool {
	_, ok := m.clearedFields[approvalrequest.FieldComments]
	return ok
}

// ResetComments resets all changes to the "comments" field.
func (m *ApprovalRequestMutation) ResetComments() {
	m.comments = nil
	delete(m.clearedFields, approvalrequest.FieldComments)
}

// SetTimeoutAt sets the "timeout_at" field.
func (m *ApprovalRequestMutation) SetTimeoutAt(t time.Time) {
	m.timeout_at = &t
}

// TimeoutAt returns the value of the "timeout_at" field in the mutation.
func (m *ApprovalRequestMutation) TimeoutAt() (r time.Time, exists bool) {
	v := m.timeout_at
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeoutAt returns the old "timeout_at" field's value of the ApprovalRequest entity.
// If the ApprovalRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRequestMutation) OldTimeoutAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeoutAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeoutAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeoutAt: %w", err)
	}
	return oldValue.TimeoutAt, nil
}

// ClearTimeoutAt clears the value of the "timeout_at" field.
func (m *ApprovalRequestMutation) ClearTimeoutAt() {
	m.timeout_at = nil
	m.clearedFields[approvalrequest.FieldTimeoutAt] = struct{}{}
}

// TimeoutAtCleared returns if the "timeout_at" field was cleared in this mutation.
func (m *ApprovalRequestMutation) TimeoutAtCleared() bool {
	_, ok := m.clearedFields[approvalrequest.FieldTimeoutAt]
	return ok
}

// ResetTimeoutAt resets all changes to the "timeout_at" field.
func (m *ApprovalRequestMutation) ResetTimeoutAt() {
	m.timeout_at = nil
	delete(m.clearedFields, approvalrequest.FieldTimeoutAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *ApprovalRequestMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ApprovalRequestMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ApprovalRequest entity.
// If the ApprovalRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRequestMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ApprovalRequestMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ApprovalRequestMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ApprovalRequestMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ApprovalRequest entity.
// If the ApprovalRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRequestMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ApprovalRequestMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearExecution clears the "execution" edge to the WorkflowExecution entity.
func (m *ApprovalRequestMutation) ClearExecution() {
	m.clearedexecution = true
	m.clearedFields[approvalrequest.FieldExecutionID] = struct{}{}
}

// ExecutionCleared reports if the "execution" edge to the WorkflowExecution entity was cleared.
func (m *ApprovalRequestMutation) ExecutionCleared() bool {
	return m.clearedexecution
}

// ExecutionIDs returns the "execution" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ExecutionID instead. It exists only for internal usage by the builders.
func (m *ApprovalRequestMutation) ExecutionIDs() (ids []int) {
	if id := m.execution; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetExecution resets all changes to the "execution" edge.
func (m *ApprovalRequestMutation) ResetExecution() {
	m.execution = nil
	m.clearedexecution = false
}

// ClearStep clears the "step" edge to the WorkflowStep entity.
func (m *ApprovalRequestMutation) ClearStep() {
	m.clearedstep = true
	m.clearedFields[approvalrequest.FieldStepID] = struct{}{}
}

// StepCleared reports if the "step" edge to the WorkflowStep entity was cleared.
func (m *ApprovalRequestMutation) StepCleared() bool {
	return m.clearedstep
}

// StepIDs returns the "step" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// StepID instead. It exists only for internal usage by the builders.
func (m *ApprovalRequestMutation) StepIDs() (ids []int) {
	if id := m.step; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetStep resets all changes to the "step" edge.
func (m *ApprovalRequestMutation) ResetStep() {
	m.step = nil
	m.clearedstep = false
}

// Where appends a list predicates to the ApprovalRequestMutation builder.
func (m *ApprovalRequestMutation) Where(ps ...predicate.ApprovalRequest) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ApprovalRequestMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ApprovalRequestMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ApprovalRequest, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ApprovalRequestMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ApprovalRequestMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ApprovalRequest).
func (m *ApprovalRequestMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ApprovalRequestMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.execution != nil {
		fields = append(fields, approvalrequest.FieldExecutionID)
	}
	if m.step != nil {
		fields = append(fields, approvalrequest.FieldStepID)
	}
	if m.status != nil {
		fields = append(fields, approvalrequest.FieldStatus)
	}
	if m.required_role != nil {
		fields = append(fields, approvalrequest.FieldRequiredRole)
	}
	if m.approved_by != nil {
		fields = append(fields, approvalrequest.FieldApprovedBy)
	}
	if m.approved_at != nil {
		fields = append(fields, approvalrequest.FieldApprovedAt)
	}
	if m.comments != nil {
		fields = append(fields, approvalrequest.FieldComments)
	}
	if m.timeout_at != nil {
		fields = append(fields, approvalrequest.FieldTimeoutAt)
	}
	if m.created_at != nil {
		fields = append(fields, approvalrequest.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, approvalrequest.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ApprovalRequestMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case approvalrequest.FieldExecutionID:
		return m.ExecutionID()
	case approvalrequest.FieldStepID:
		return m.StepID()
	case approvalrequest.FieldStatus:
		return m.Status()
	case approvalrequest.FieldRequiredRole:
		return m.RequiredRole()
	case approvalrequest.FieldApprovedBy:
		return m.ApprovedBy()
	case approvalrequest.FieldApprovedAt:
		return m.ApprovedAt()
	case approvalrequest.FieldComments:
		return m.Comments()
	case approvalrequest.FieldTimeoutAt:
		return m.TimeoutAt()
	case approvalrequest.FieldCreatedAt:
		return m.CreatedAt()
	case approvalrequest.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ApprovalRequestMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case approvalrequest.FieldExecutionID:
		return m.OldExecutionID(ctx)
	case approvalrequest.FieldStepID:
		return m.OldStepID(ctx)
	case approvalrequest.FieldStatus:
		return m.OldStatus(ctx)
	case approvalrequest.FieldRequiredRole:
		return m.OldRequiredRole(ctx)
	case approvalrequest.FieldApprovedBy:
		return m.OldApprovedBy(ctx)
	case approvalrequest.FieldApprovedAt:
		return m.OldApprovedAt(ctx)
	case approvalrequest.FieldComments:
		return m.OldComments(ctx)
	case approvalrequest.FieldTimeoutAt:
		return m.OldTimeoutAt(ctx)
	case approvalrequest.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case approvalrequest.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ApprovalRequest field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApprovalRequestMutation) SetField(name string, value ent.Value) error {
	switch name {
	case approvalrequest.FieldExecutionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionID(v)
		return nil
	case approvalrequest.FieldStepID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepID(v)
		return nil
	case approvalrequest.FieldStatus:
		v, ok := value.(approvalrequest.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case approvalrequest.FieldRequiredRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequiredRole(v)
		return nil
	case approvalrequest.FieldApprovedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApprovedBy(v)
		return nil
	case approvalrequest.FieldApprovedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApprovedAt(v)
		return nil
	case approvalrequest.FieldComments:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComments(v)
		return nil
	case approvalrequest.FieldTimeoutAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeoutAt(v)
		return nil
	case approvalrequest.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case approvalrequest.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ApprovalRequest field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ApprovalRequestMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ApprovalRequestMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApprovalRequestMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ApprovalRequest numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ApprovalRequestMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(approvalrequest.FieldRequiredRole) {
		fields = append(fields, approvalrequest.FieldRequiredRole)
	}
	if m.FieldCleared(approvalrequest.FieldApprovedBy) {
		fields = append(fields, approvalrequest.FieldApprovedBy)
	}
	if m.FieldCleared(approvalrequest.FieldApprovedAt) {
		fields = append(fields, approvalrequest.FieldApprovedAt)
	}
	if m.FieldCleared(approvalrequest.FieldComments) {
		fields = append(fields, approvalrequest.FieldComments)
	}
	if m.FieldCleared(approvalrequest.FieldTimeoutAt) {
		fields = append(fields, approvalrequest.FieldTimeoutAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ApprovalRequestMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ApprovalRequestMutation) ClearField(name string) error {
	switch name {
	case approvalrequest.FieldRequiredRole:
		m.ClearRequiredRole()
		return nil
	case approvalrequest.FieldApprovedBy:
		m.ClearApprovedBy()
		return nil
	case approvalrequest.FieldApprovedAt:
		m.ClearApprovedAt()
		return nil
	case approvalrequest.FieldComments:
		m.ClearComments()
		return nil
	case approvalrequest.FieldTimeoutAt:
		m.ClearTimeoutAt()
		return nil
	}
	return fmt.Errorf("unknown ApprovalRequest nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ApprovalRequestMutation) ResetField(name string) error {
	switch name {
	case approvalrequest.FieldExecutionID:
		m.ResetExecutionID()
		return nil
	case approvalrequest.FieldStepID:
		m.ResetStepID()
		return nil
	case approvalrequest.FieldStatus:
		m.ResetStatus()
		return nil
	case approvalrequest.FieldRequiredRole:
		m.ResetRequiredRole()
		return nil
	case approvalrequest.FieldApprovedBy:
		m.ResetApprovedBy()
		return nil
	case approvalrequest.FieldApprovedAt:
		m.ResetApprovedAt()
		return nil
	case approvalrequest.FieldComments:
		m.ResetComments()
		return nil
	case approvalrequest.FieldTimeoutAt:
		m.ResetTimeoutAt()
		return nil
	case approvalrequest.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case approvalrequest.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ApprovalRequest field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ApprovalRequestMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.execution != nil {
		edges = append(edges, approvalrequest.EdgeExecution)
	}
	if m.step != nil {
		edges = append(edges, approvalrequest.EdgeStep)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ApprovalRequestMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case approvalrequest.EdgeExecution:
		if id := m.execution; id != nil {
			return []ent.Value{*id}
		}
	case approvalrequest.EdgeStep:
		if id := m.step; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ApprovalRequestMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ApprovalRequestMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ApprovalRequestMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedexecution {
		edges = append(edges, approvalrequest.EdgeExecution)
	}
	if m.clearedstep {
		edges = append(edges, approvalrequest.EdgeStep)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ApprovalRequestMutation) EdgeCleared(name string) bool {
	switch name {
	case approvalrequest.EdgeExecution:
		return m.clearedexecution
	case approvalrequest.EdgeStep:
		return m.clearedstep
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ApprovalRequestMutation) ClearEdge(name string) error {
	switch name {
	case approvalrequest.EdgeExecution:
		m.ClearExecution()
		return nil
	case approvalrequest.EdgeStep:
		m.ClearStep()
		return nil
	}
	return fmt.Errorf("unknown ApprovalRequest unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ApprovalRequestMutation) ResetEdge(name string) error {
	switch name {
	case approvalrequest.EdgeExecution:
		m.ResetExecution()
		return nil
	case approvalrequest.EdgeStep:
		m.ResetStep()
		return nil
	}
	return fmt.Errorf("unknown ApprovalRequest edge %s", name)
}

// KnowledgeEntryMutation represents an operation that mutates the KnowledgeEntry nodes in the graph.
type KnowledgeEntryMutation struct {
	config
	op            Op
	typ           string
	id            *int
	title         *string
	content       *string
	category      *string
	tags          *[]string
	appendtags    []string
	active        *bool
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*KnowledgeEntry, error)
	predicates    []predicate.KnowledgeEntry
}

var _ ent.Mutation = (*KnowledgeEntryMutation)(nil)

// knowledgeentryOption allows management of the mutation configuration using functional options.
type knowledgeentryOption func(*KnowledgeEntryMutation)

// newKnowledgeEntryMutation creates new mutation for the KnowledgeEntry entity.
func newKnowledgeEntryMutation(c config, op Op, opts ...knowledgeentryOption) *KnowledgeEntryMutation {
	m := &KnowledgeEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeKnowledgeEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withKnowledgeEntryID sets the ID field of the mutation.
func withKnowledgeEntryID(id int) knowledgeentryOption {
	return func(m *KnowledgeEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *KnowledgeEntry
		)
		m.oldValue = func(ctx context.Context) (*KnowledgeEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().KnowledgeEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withKnowledgeEntry sets the old KnowledgeEntry of the mutation.
func withKnowledgeEntry(node *KnowledgeEntry) knowledgeentryOption {
	return func(m *KnowledgeEntryMutation) {
		m.oldValue = func(context.Context) (*KnowledgeEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m KnowledgeEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m KnowledgeEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *KnowledgeEntryMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *KnowledgeEntryMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().KnowledgeEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitle sets the "title" field.
func (m *KnowledgeEntryMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *KnowledgeEntryMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the KnowledgeEntry entity.
// If the KnowledgeEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeEntryMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *KnowledgeEntryMutation) ResetTitle() {
	m.title = nil
}

// SetContent sets the "content" field.
func (m *KnowledgeEntryMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *KnowledgeEntryMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the KnowledgeEntry entity.
// If the KnowledgeEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeEntryMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *KnowledgeEntryMutation) ResetContent() {
	m.content = nil
}

// SetCategory sets the "category" field.
func (m *KnowledgeEntryMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *KnowledgeEntryMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the KnowledgeEntry entity.
// If the KnowledgeEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeEntryMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ClearCategory clears the value of the "category" field.
func (m *KnowledgeEntryMutation) ClearCategory() {
	m.category = nil
	m.clearedFields[knowledgeentry.FieldCategory] = struct{}{}
}

// CategoryCleared returns if the "category" field was cleared in this mutation.
func (m *KnowledgeEntryMutation) CategoryCleared() bool {
	_, ok := m.clearedFields[knowledgeentry.FieldCategory]
	return ok
}

// ResetCategory resets all changes to the "category" field.
func (m *KnowledgeEntryMutation) ResetCategory() {
	m.category = nil
	delete(m.clearedFields, knowledgeentry.FieldCategory)
}

// SetTags sets the "tags" field.
func (m *KnowledgeEntryMutation) SetTags(s []string) {
	m.tags = &s
	m.appendtags = nil
}

// Tags returns the value of the "tags" field in the mutation.
func (m *KnowledgeEntryMutation) Tags() (r []string, exists bool) {
	v := m.tags
	if v == nil {
		return
	}
	return *v, true
}

// OldTags returns the old "tags" field's value of the KnowledgeEntry entity.
// If the KnowledgeEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeEntryMutation) OldTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTags: %w", err)
	}
	return oldValue.Tags, nil
}

// AppendTags adds s to the "tags" field.
func (m *KnowledgeEntryMutation) AppendTags(s []string) {
	m.appendtags = append(m.appendtags, s...)
}

// AppendedTags returns the list of values that were appended to the "tags" field in this mutation.
func (m *KnowledgeEntryMutation) AppendedTags() ([]string, bool) {
	if len(m.appendtags) == 0 {
		return nil, false
	}
	return m.appendtags, true
}

// ClearTags clears the value of the "tags" field.
func (m *KnowledgeEntryMutation) ClearTags() {
	m.tags = nil
	m.appendtags = nil
	m.clearedFields[knowledgeentry.FieldTags] = struct{}{}
}

// TagsCleared returns if the "tags" field was cleared in this mutation.
func (m *KnowledgeEntryMutation) TagsCleared() bool {
	_, ok := m.clearedFields[knowledgeentry.FieldTags]
	return ok
}

// ResetTags resets all changes to the "tags" field.
func (m *KnowledgeEntryMutation) ResetTags() {
	m.tags = nil
	m.appendtags = nil
	delete(m.clearedFields, knowledgeentry.FieldTags)
}

// SetActive sets the "active" field.
func (m *KnowledgeEntryMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *KnowledgeEntryMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the KnowledgeEntry entity.
// If the KnowledgeEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeEntryMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *KnowledgeEntryMutation) ResetActive() {
	m.active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *KnowledgeEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *KnowledgeEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the KnowledgeEntry entity.
// If the KnowledgeEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *KnowledgeEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *KnowledgeEntryMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *KnowledgeEntryMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the KnowledgeEntry entity.
// If the KnowledgeEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeEntryMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *KnowledgeEntryMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the KnowledgeEntryMutation builder.
func (m *KnowledgeEntryMutation) Where(ps ...predicate.KnowledgeEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the KnowledgeEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *KnowledgeEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.KnowledgeEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *KnowledgeEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *KnowledgeEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (KnowledgeEntry).
func (m *KnowledgeEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *KnowledgeEntryMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.title != nil {
		fields = append(fields, knowledgeentry.FieldTitle)
	}
	if m.content != nil {
		fields = append(fields, knowledgeentry.FieldContent)
	}
	if m.category != nil {
		fields = append(fields, knowledgeentry.FieldCategory)
	}
	if m.tags != nil {
		fields = append(fields, knowledgeentry.FieldTags)
	}
	if m.active != nil {
		fields = append(fields, knowledgeentry.FieldActive)
	}
	if m.created_at != nil {
		fields = append(fields, knowledgeentry.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, knowledgeentry.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *KnowledgeEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case knowledgeentry.FieldTitle:
		return m.Title()
	case knowledgeentry.FieldContent:
		return m.Content()
	case knowledgeentry.FieldCategory:
		return m.Category()
	case knowledgeentry.FieldTags:
		return m.Tags()
	case knowledgeentry.FieldActive:
		return m.Active()
	case knowledgeentry.FieldCreatedAt:
		return m.CreatedAt()
	case knowledgeentry.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *KnowledgeEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case knowledgeentry.FieldTitle:
		return m.OldTitle(ctx)
	case knowledgeentry.FieldContent:
		return m.OldContent(ctx)
	case knowledgeentry.FieldCategory:
		return m.OldCategory(ctx)
	case knowledgeentry.FieldTags:
		return m.OldTags(ctx)
	case knowledgeentry.FieldActive:
		return m.OldActive(ctx)
	case knowledgeentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case knowledgeentry.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown KnowledgeEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *KnowledgeEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case knowledgeentry.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case knowledgeentry.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case knowledgeentry.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case knowledgeentry.FieldTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTags(v)
		return nil
	case knowledgeentry.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	case knowledgeentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case knowledgeentry.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown KnowledgeEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *KnowledgeEntryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *KnowledgeEntryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *KnowledgeEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown KnowledgeEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *KnowledgeEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(knowledgeentry.FieldCategory) {
		fields = append(fields, knowledgeentry.FieldCategory)
	}
	if m.FieldCleared(knowledgeentry.FieldTags) {
		fields = append(fields, knowledgeentry.FieldTags)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *KnowledgeEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *KnowledgeEntryMutation) ClearField(name string) error {
	switch name {
	case knowledgeentry.FieldCategory:
		m.ClearCategory()
		return nil
	case knowledgeentry.FieldTags:
		m.ClearTags()
		return nil
	}
	return fmt.Errorf("unknown KnowledgeEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *KnowledgeEntryMutation) ResetField(name string) error {
	switch name {
	case knowledgeentry.FieldTitle:
		m.ResetTitle()
		return nil
	case knowledgeentry.FieldContent:
		m.ResetContent()
		return nil
	case knowledgeentry.FieldCategory:
		m.ResetCategory()
		return nil
	case knowledgeentry.FieldTags:
		m.ResetTags()
		return nil
	case knowledgeentry.FieldActive:
		m.ResetActive()
		return nil
	case knowledgeentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case knowledgeentry.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown KnowledgeEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *KnowledgeEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *KnowledgeEntryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *KnowledgeEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *KnowledgeEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *KnowledgeEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *KnowledgeEntryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *KnowledgeEntryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown KnowledgeEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *KnowledgeEntryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown KnowledgeEntry edge %s", name)
}

// ToolMutation represents an operation that mutates the Tool nodes in the graph.
type ToolMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	name               *string
	tool_type          *tool.ToolType
	description        *string
	input_schema       *map[string]interface{}
	handler            *string
	active             *bool
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	agent_tools        map[int]struct{}
	removedagent_tools map[int]struct{}
	clearedagent_tools bool
	done               bool
	oldValue           func(context.Context) (*Tool, error)
	predicates         []predicate.Tool
}

var _ ent.Mutation = (*ToolMutation)(nil)

// toolOption allows management of the mutation configuration using functional options.
type toolOption func(*ToolMutation)

// newToolMutation creates new mutation for the Tool entity.
func newToolMutation(c config, op Op, opts ...toolOption) *ToolMutation {
	m := &ToolMutation{
		config:        c,
		op:            op,
		typ:           TypeTool,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withToolID sets the ID field of the mutation.
func withToolID(id int) toolOption {
	return func(m *ToolMutation) {
		var (
			err   error
			once  sync.Once
			value *Tool
		)
		m.oldValue = func(ctx context.Context) (*Tool, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Tool.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTool sets the old Tool of the mutation.
func withTool(node *Tool) toolOption {
	return func(m *ToolMutation) {
		m.oldValue = func(context.Context) (*Tool, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ToolMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ToolMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ToolMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ToolMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Tool.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ToolMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ToolMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Tool entity.
// If the Tool object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ToolMutation) ResetName() {
	m.name = nil
}

// SetToolType sets the "tool_type" field.
func (m *ToolMutation) SetToolType(tt tool.ToolType) {
	m.tool_type = &tt
}

// ToolType returns the value of the "tool_type" field in the mutation.
func (m *ToolMutation) ToolType() (r tool.ToolType, exists bool) {
	v := m.tool_type
	if v == nil {
		return
	}
	return *v, true
}

// OldToolType returns the old "tool_type" field's value of the Tool entity.
// If the Tool object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolMutation) OldToolType(ctx context.Context) (v tool.ToolType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolType: %w", err)
	}
	return oldValue.ToolType, nil
}

// ResetToolType resets all changes to the "tool_type" field.
func (m *ToolMutation) ResetToolType() {
	m.tool_type = nil
}

// SetDescription sets the "description" field.
func (m *ToolMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ToolMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Tool entity.
// If the Tool object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *ToolMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[tool.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ToolMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[tool.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ToolMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, tool.FieldDescription)
}

// SetInputSchema sets the "input_schema" field.
func (m *ToolMutation) SetInputSchema(value map[string]interface{}) {
	m.input_schema = &value
}

// InputSchema returns the value of the "input_schema" field in the mutation.
func (m *ToolMutation) InputSchema() (r map[string]interface{}, exists bool) {
	v := m.input_schema
	if v == nil {
		return
	}
	return *v, true
}

// OldInputSchema returns the old "input_schema" field's value of the Tool entity.
// If the Tool object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolMutation) OldInputSchema(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputSchema is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputSchema requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputSchema: %w", err)
	}
	return oldValue.InputSchema, nil
}

// ClearInputSchema clears the value of the "input_schema" field.
func (m *ToolMutation) ClearInputSchema() {
	m.input_schema = nil
	m.clearedFields[tool.FieldInputSchema] = struct{}{}
}

// InputSchemaCleared returns if the "input_schema" field was cleared in this mutation.
func (m *ToolMutation) InputSchemaCleared() bool {
	_, ok := m.clearedFields[tool.FieldInputSchema]
	return ok
}

// ResetInputSchema resets all changes to the "input_schema" field.
func (m *ToolMutation) ResetInputSchema() {
	m.input_schema = nil
	delete(m.clearedFields, tool.FieldInputSchema)
}

// SetHandler sets the "handler" field.
func (m *ToolMutation) SetHandler(s string) {
	m.handler = &s
}

// Handler returns the value of the "handler" field in the mutation.
func (m *ToolMutation) Handler() (r string, exists bool) {
	v := m.handler
	if v == nil {
		return
	}
	return *v, true
}

// OldHandler returns the old "handler" field's value of the Tool entity.
// If the Tool object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolMutation) OldHandler(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHandler is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHandler requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHandler: %w", err)
	}
	return oldValue.Handler, nil
}

// ClearHandler clears the value of the "handler" field.
func (m *ToolMutation) ClearHandler() {
	m.handler = nil
	m.clearedFields[tool.FieldHandler] = struct{}{}
}

// HandlerCleared returns if the "handler" field was cleared in this mutation.
func (m *ToolMutation) HandlerCleared() bool {
	_, ok := m.clearedFields[tool.FieldHandler]
	return ok
}

// ResetHandler resets all changes to the "handler" field.
func (m *ToolMutation) ResetHandler() {
	m.handler = nil
	delete(m.clearedFields, tool.FieldHandler)
}

// SetActive sets the "active" field.
func (m *ToolMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *ToolMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the Tool entity.
// If the Tool object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *ToolMutation) ResetActive() {
	m.active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ToolMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ToolMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Tool entity.
// If the Tool object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ToolMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ToolMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ToolMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Tool entity.
// If the Tool object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ToolMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddAgentToolIDs adds the "agent_tools" edge to the AgentTool entity by ids.
func (m *ToolMutation) AddAgentToolIDs(ids ...int) {
	if m.agent_tools == nil {
		m.agent_tools = make(map[int]struct{})
	}
	for i := range ids {
		m.agent_tools[ids[i]] = struct{}{}
	}
}

// ClearAgentTools clears the "agent_tools" edge to the AgentTool entity.
func (m *ToolMutation) ClearAgentTools() {
	m.clearedagent_tools = true
}

// AgentToolsCleared reports if the "agent_tools" edge to the AgentTool entity was cleared.
func (m *ToolMutation) AgentToolsCleared() bool {
	return m.clearedagent_tools
}

// RemoveAgentToolIDs removes the "agent_tools" edge to the AgentTool entity by IDs.
func (m *ToolMutation) RemoveAgentToolIDs(ids ...int) {
	if m.removedagent_tools == nil {
		m.removedagent_tools = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.agent_tools, ids[i])
		m.removedagent_tools[ids[i]] = struct{}{}
	}
}

// RemovedAgentTools returns the removed IDs of the "agent_tools" edge to the AgentTool entity.
func (m *ToolMutation) RemovedAgentToolsIDs() (ids []int) {
	for id := range m.removedagent_tools {
		ids = append(ids, id)
	}
	return
}

// AgentToolsIDs returns the "agent_tools" edge IDs in the mutation.
func (m *ToolMutation) AgentToolsIDs() (ids []int) {
	for id := range m.agent_tools {
		ids = append(ids, id)
	}
	return
}

// ResetAgentTools resets all changes to the "agent_tools" edge.
func (m *ToolMutation) ResetAgentTools() {
	m.agent_tools = nil
	m.clearedagent_tools = false
	m.removedagent_tools = nil
}

// Where appends a list predicates to the ToolMutation builder.
func (m *ToolMutation) Where(ps ...predicate.Tool) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ToolMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ToolMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Tool, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ToolMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ToolMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Tool).
func (m *ToolMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ToolMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.name != nil {
		fields = append(fields, tool.FieldName)
	}
	if m.tool_type != nil {
		fields = append(fields, tool.FieldToolType)
	}
	if m.description != nil {
		fields = append(fields, tool.FieldDescription)
	}
	if m.input_schema != nil {
		fields = append(fields, tool.FieldInputSchema)
	}
	if m.handler != nil {
		fields = append(fields, tool.FieldHandler)
	}
	if m.active != nil {
		fields = append(fields, tool.FieldActive)
	}
	if m.created_at != nil {
		fields = append(fields, tool.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, tool.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ToolMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tool.FieldName:
		return m.Name()
	case tool.FieldToolType:
		return m.ToolType()
	case tool.FieldDescription:
		return m.Description()
	case tool.FieldInputSchema:
		return m.InputSchema()
	case tool.FieldHandler:
		return m.Handler()
	case tool.FieldActive:
		return m.Active()
	case tool.FieldCreatedAt:
		return m.CreatedAt()
	case tool.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ToolMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tool.FieldName:
		return m.OldName(ctx)
	case tool.FieldToolType:
		return m.OldToolType(ctx)
	case tool.FieldDescription:
		return m.OldDescription(ctx)
	case tool.FieldInputSchema:
		return m.OldInputSchema(ctx)
	case tool.FieldHandler:
		return m.OldHandler(ctx)
	case tool.FieldActive:
		return m.OldActive(ctx)
	case tool.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case tool.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Tool field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ToolMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tool.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case tool.FieldToolType:
		v, ok := value.(tool.ToolType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolType(v)
		return nil
	case tool.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case tool.FieldInputSchema:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputSchema(v)
		return nil
	case tool.FieldHandler:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHandler(v)
		return nil
	case tool.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	case tool.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case tool.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Tool field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ToolMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ToolMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ToolMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Tool numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ToolMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(tool.FieldDescription) {
		fields = append(fields, tool.FieldDescription)
	}
	if m.FieldCleared(tool.FieldInputSchema) {
		fields = append(fields, tool.FieldInputSchema)
	}
	if m.FieldCleared(tool.FieldHandler) {
		fields = append(fields, tool.FieldHandler)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ToolMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ToolMutation) ClearField(name string) error {
	switch name {
	case tool.FieldDescription:
		m.ClearDescription()
		return nil
	case tool.FieldInputSchema:
		m.ClearInputSchema()
		return nil
	case tool.FieldHandler:
		m.ClearHandler()
		return nil
	}
	return fmt.Errorf("unknown Tool nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ToolMutation) ResetField(name string) error {
	switch name {
	case tool.FieldName:
		m.ResetName()
		return nil
	case tool.FieldToolType:
		m.ResetToolType()
		return nil
	case tool.FieldDescription:
		m.ResetDescription()
		return nil
	case tool.FieldInputSchema:
		m.ResetInputSchema()
		return nil
	case tool.FieldHandler:
		m.ResetHandler()
		return nil
	case tool.FieldActive:
		m.ResetActive()
		return nil
	case tool.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case tool.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Tool field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ToolMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.agent_tools != nil {
		edges = append(edges, tool.EdgeAgentTools)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ToolMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case tool.EdgeAgentTools:
		ids := make([]ent.Value, 0, len(m.agent_tools))
		for id := range m.agent_tools {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ToolMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedagent_tools != nil {
		edges = append(edges, tool.EdgeAgentTools)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ToolMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case tool.EdgeAgentTools:
		ids := make([]ent.Value, 0, len(m.removedagent_tools))
		for id := range m.removedagent_tools {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ToolMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedagent_tools {
		edges = append(edges, tool.EdgeAgentTools)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ToolMutation) EdgeCleared(name string) bool {
	switch name {
	case tool.EdgeAgentTools:
		return m.clearedagent_tools
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ToolMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Tool unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ToolMutation) ResetEdge(name string) error {
	switch name {
	case tool.EdgeAgentTools:
		m.ResetAgentTools()
		return nil
	}
	return fmt.Errorf("unknown Tool edge %s", name)
}

// WorkflowMutation represents an operation that mutates the Workflow nodes in the graph.
type WorkflowMutation struct {
	config
	op                Op
	typ               string
	id                *int
	name              *string
	description       *string
	trigger_type      *workflow.TriggerType
	trigger_config    *map[string]interface{}
	execution_mode    *workflow.ExecutionMode
	active            *bool
	input_schema      *map[string]interface{}
	interface_type    *string
	public            *bool
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	steps             map[int]struct{}
	removedsteps      map[int]struct{}
	clearedsteps      bool
	executions        map[int]struct{}
	removedexecutions map[int]struct{}
	clearedexecutions bool
	schedules         map[int]struct{}
	removedschedules  map[int]struct{}
	clearedschedules  bool
	done              bool
	oldValue          func(context.Context) (*Workflow, error)
	predicates        []predicate.Workflow
}

var _ ent.Mutation = (*WorkflowMutation)(nil)

// workflowOption allows management of the mutation configuration using functional options.
type workflowOption func(*WorkflowMutation)

// newWorkflowMutation creates new mutation for the Workflow entity.
func newWorkflowMutation(c config, op Op, opts ...workflowOption) *WorkflowMutation {
	m := &WorkflowMutation{
		config:        c,
		op:            op,
		typ:           TypeWorkflow,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorkflowID sets the ID field of the mutation.
func withWorkflowID(id int) workflowOption {
	return func(m *WorkflowMutation) {
		var (
			err   error
			once  sync.Once
			value *Workflow
		)
		m.oldValue = func(ctx context.Context) (*Workflow, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Workflow.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorkflow sets the old Workflow of the mutation.
func withWorkflow(node *Workflow) workflowOption {
	return func(m *WorkflowMutation) {
		m.oldValue = func(context.Context) (*Workflow, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorkflowMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorkflowMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorkflowMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorkflowMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Workflow.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *WorkflowMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *WorkflowMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *WorkflowMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *WorkflowMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *WorkflowMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *WorkflowMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[workflow.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *WorkflowMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[workflow.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *WorkflowMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, workflow.FieldDescription)
}

// SetTriggerType sets the "trigger_type" field.
func (m *WorkflowMutation) SetTriggerType(wt workflow.TriggerType) {
	m.trigger_type = &wt
}

// TriggerType returns the value of the "trigger_type" field in the mutation.
func (m *WorkflowMutation) TriggerType() (r workflow.TriggerType, exists bool) {
	v := m.trigger_type
	if v == nil {
		return
	}
	return *v, true
}

// OldTriggerType returns the old "trigger_type" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldTriggerType(ctx context.Context) (v workflow.TriggerType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriggerType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriggerType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriggerType: %w", err)
	}
	return oldValue.TriggerType, nil
}

// ResetTriggerType resets all changes to the "trigger_type" field.
func (m *WorkflowMutation) ResetTriggerType() {
	m.trigger_type = nil
}

// SetTriggerConfig sets the "trigger_config" field.
func (m *WorkflowMutation) SetTriggerConfig(value map[string]interface{}) {
	m.trigger_config = &value
}

// TriggerConfig returns the value of the "trigger_config" field in the mutation.
func (m *WorkflowMutation) TriggerConfig() (r map[string]interface{}, exists bool) {
	v := m.trigger_config
	if v == nil {
		return
	}
	return *v, true
}

// OldTriggerConfig returns the old "trigger_config" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldTriggerConfig(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriggerConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriggerConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriggerConfig: %w", err)
	}
	return oldValue.TriggerConfig, nil
}

// ClearTriggerConfig clears the value of the "trigger_config" field.
func (m *WorkflowMutation) ClearTriggerConfig() {
	m.trigger_config = nil
	m.clearedFields[workflow.FieldTriggerConfig] = struct{}{}
}

// TriggerConfigCleared returns if the "trigger_config" field was cleared in this mutation.
func (m *WorkflowMutation) TriggerConfigCleared() bool {
	_, ok := m.clearedFields[workflow.FieldTriggerConfig]
	return ok
}

// ResetTriggerConfig resets all changes to the "trigger_config" field.
func (m *WorkflowMutation) ResetTriggerConfig() {
	m.trigger_config = nil
	delete(m.clearedFields, workflow.FieldTriggerConfig)
}

// SetExecutionMode sets the "execution_mode" field.
func (m *WorkflowMutation) SetExecutionMode(wm workflow.ExecutionMode) {
	m.execution_mode = &wm
}

// ExecutionMode returns the value of the "execution_mode" field in the mutation.
func (m *WorkflowMutation) ExecutionMode() (r workflow.ExecutionMode, exists bool) {
	v := m.execution_mode
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionMode returns the old "execution_mode" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldExecutionMode(ctx context.Context) (v workflow.ExecutionMode, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionMode: %w", err)
	}
	return oldValue.ExecutionMode, nil
}

// ResetExecutionMode resets all changes to the "execution_mode" field.
func (m *WorkflowMutation) ResetExecutionMode() {
	m.execution_mode = nil
}

// SetActive sets the "active" field.
func (m *WorkflowMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *WorkflowMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *WorkflowMutation) ResetActive() {
	m.active = nil
}

// SetInputSchema sets the "input_schema" field.
func (m *WorkflowMutation) SetInputSchema(value map[string]interface{}) {
	m.input_schema = &value
}

// InputSchema returns the value of the "input_schema" field in the mutation.
func (m *WorkflowMutation) InputSchema() (r map[string]interface{}, exists bool) {
	v := m.input_schema
	if v == nil {
		return
	}
	return *v, true
}

// OldInputSchema returns the old "input_schema" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldInputSchema(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputSchema is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputSchema requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputSchema: %w", err)
	}
	return oldValue.InputSchema, nil
}

// ClearInputSchema clears the value of the "input_schema" field.
func (m *WorkflowMutation) ClearInputSchema() {
	m.input_schema = nil
	m.clearedFields[workflow.FieldInputSchema] = struct{}{}
}

// InputSchemaCleared returns if the "input_schema" field was cleared in this mutation.
func (m *WorkflowMutation) InputSchemaCleared() bool {
	_, ok := m.clearedFields[workflow.FieldInputSchema]
	return ok
}

// ResetInputSchema resets all changes to the "input_schema" field.
func (m *WorkflowMutation) ResetInputSchema() {
	m.input_schema = nil
	delete(m.clearedFields, workflow.FieldInputSchema)
}

// SetInterfaceType sets the "interface_type" field.
func (m *WorkflowMutation) SetInterfaceType(s string) {
	m.interface_type = &s
}

// InterfaceType returns the value of the "interface_type" field in the mutation.
func (m *WorkflowMutation) InterfaceType() (r string, exists bool) {
	v := m.interface_type
	if v == nil {
		return
	}
	return *v, true
}

// OldInterfaceType returns the old "interface_type" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldInterfaceType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInterfaceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInterfaceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInterfaceType: %w", err)
	}
	return oldValue.InterfaceType, nil
}

// ClearInterfaceType clears the value of the "interface_type" field.
func (m *WorkflowMutation) ClearInterfaceType() {
	m.interface_type = nil
	m.clearedFields[workflow.FieldInterfaceType] = struct{}{}
}

// InterfaceTypeCleared returns if the "interface_type" field was cleared in this mutation.
func (m *WorkflowMutation) InterfaceTypeCleared() bool {
	_, ok := m.clearedFields[workflow.FieldInterfaceType]
	return ok
}

// ResetInterfaceType resets all changes to the "interface_type" field.
func (m *WorkflowMutation) ResetInterfaceType() {
	m.interface_type = nil
	delete(m.clearedFields, workflow.FieldInterfaceType)
}

// SetPublic sets the "public" field.
func (m *WorkflowMutation) SetPublic(b bool) {
	m.public = &b
}

// Public returns the value of the "public" field in the mutation.
func (m *WorkflowMutation) Public() (r bool, exists bool) {
	v := m.public
	if v == nil {
		return
	}
	return *v, true
}

// OldPublic returns the old "public" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldPublic(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublic: %w", err)
	}
	return oldValue.Public, nil
}

// ResetPublic resets all changes to the "public" field.
func (m *WorkflowMutation) ResetPublic() {
	m.public = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *WorkflowMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WorkflowMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WorkflowMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *WorkflowMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *WorkflowMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *WorkflowMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddStepIDs adds the "steps" edge to the WorkflowStep entity by ids.
func (m *WorkflowMutation) AddStepIDs(ids ...int) {
	if m.steps == nil {
		m.steps = make(map[int]struct{})
	}
	for i := range ids {
		m.steps[ids[i]] = struct{}{}
	}
}

// ClearSteps clears the "steps" edge to the WorkflowStep entity.
func (m *WorkflowMutation) ClearSteps() {
	m.clearedsteps = true
}

// StepsCleared reports if the "steps" edge to the WorkflowStep entity was cleared.
func (m *WorkflowMutation) StepsCleared() bool {
	return m.clearedsteps
}

// RemoveStepIDs removes the "steps" edge to the WorkflowStep entity by IDs.
func (m *WorkflowMutation) RemoveStepIDs(ids ...int) {
	if m.removedsteps == nil {
		m.removedsteps = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.steps, ids[i])
		m.removedsteps[ids[i]] = struct{}{}
	}
}

// RemovedSteps returns the removed IDs of the "steps" edge to the WorkflowStep entity.
func (m *WorkflowMutation) RemovedStepsIDs() (ids []int) {
	for id := range m.removedsteps {
		ids = append(ids, id)
	}
	return
}

// StepsIDs returns the "steps" edge IDs in the mutation.
func (m *WorkflowMutation) StepsIDs() (ids []int) {
	for id := range m.steps {
		ids = append(ids, id)
	}
	return
}

// ResetSteps resets all changes to the "steps" edge.
func (m *WorkflowMutation) ResetSteps() {
	m.steps = nil
	m.clearedsteps = false
	m.removedsteps = nil
}

// AddExecutionIDs adds the "executions" edge to the WorkflowExecution entity by ids.
func (m *WorkflowMutation) AddExecutionIDs(ids ...int) {
	if m.executions == nil {
		m.executions = make(map[int]struct{})
	}
	for i := range ids {
		m.executions[ids[i]] = struct{}{}
	}
}

// ClearExecutions clears the "executions" edge to the WorkflowExecution entity.
func (m *WorkflowMutation) ClearExecutions() {
	m.clearedexecutions = true
}

// ExecutionsCleared reports if the "executions" edge to the WorkflowExecution entity was cleared.
func (m *WorkflowMutation) ExecutionsCleared() bool {
	return m.clearedexecutions
}

// RemoveExecutionIDs removes the "executions" edge to the WorkflowExecution entity by IDs.
func (m *WorkflowMutation) RemoveExecutionIDs(ids ...int) {
	if m.removedexecutions == nil {
		m.removedexecutions = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.executions, ids[i])
		m.removedexecutions[ids[i]] = struct{}{}
	}
}

// RemovedExecutions returns the removed IDs of the "executions" edge to the WorkflowExecution entity.
func (m *WorkflowMutation) RemovedExecutionsIDs() (ids []int) {
	for id := range m.removedexecutions {
		ids = append(ids, id)
	}
	return
}

// ExecutionsIDs returns the "executions" edge IDs in the mutation.
func (m *WorkflowMutation) ExecutionsIDs() (ids []int) {
	for id := range m.executions {
		ids = append(ids, id)
	}
	return
}

// ResetExecutions resets all changes to the "executions" edge.
func (m *WorkflowMutation) ResetExecutions() {
	m.executions = nil
	m.clearedexecutions = false
	m.removedexecutions = nil
}

// AddScheduleIDs adds the "schedules" edge to the WorkflowSchedule entity by ids.
func (m *WorkflowMutation) AddScheduleIDs(ids ...int) {
	if m.schedules == nil {
		m.schedules = make(map[int]struct{})
	}
	for i := range ids {
		m.schedules[ids[i]] = struct{}{}
	}
}

// ClearSchedules clears the "schedules" edge to the WorkflowSchedule entity.
func (m *WorkflowMutation) ClearSchedules() {
	m.clearedschedules = true
}

// SchedulesCleared reports if the "schedules" edge to the WorkflowSchedule entity was cleared.
func (m *WorkflowMutation) SchedulesCleared() bool {
	return m.clearedschedules
}

// RemoveScheduleIDs removes the "schedules" edge to the WorkflowSchedule entity by IDs.
func (m *WorkflowMutation) RemoveScheduleIDs(ids ...int) {
	if m.removedschedules == nil {
		m.removedschedules = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.schedules, ids[i])
		m.removedschedules[ids[i]] = struct{}{}
	}
}

// RemovedSchedules returns the removed IDs of the "schedules" edge to the WorkflowSchedule entity.
func (m *WorkflowMutation) RemovedSchedulesIDs() (ids []int) {
	for id := range m.removedschedules {
		ids = append(ids, id)
	}
	return
}

// SchedulesIDs returns the "schedules" edge IDs in the mutation.
func (m *WorkflowMutation) SchedulesIDs() (ids []int) {
	for id := range m.schedules {
		ids = append(ids, id)
	}
	return
}

// ResetSchedules resets all changes to the "schedules" edge.
func (m *WorkflowMutation) ResetSchedules() {
	m.schedules = nil
	m.clearedschedules = false
	m.removedschedules = nil
}

// Where appends a list predicates to the WorkflowMutation builder.
func (m *WorkflowMutation) Where(ps ...predicate.Workflow) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorkflowMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorkflowMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Workflow, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorkflowMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorkflowMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Workflow).
func (m *WorkflowMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorkflowMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.name != nil {
		fields = append(fields, workflow.FieldName)
	}
	if m.description != nil {
		fields = append(fields, workflow.FieldDescription)
	}
	if m.trigger_type != nil {
		fields = append(fields, workflow.FieldTriggerType)
	}
	if m.trigger_config != nil {
		fields = append(fields, workflow.FieldTriggerConfig)
	}
	if m.execution_mode != nil {
		fields = append(fields, workflow.FieldExecutionMode)
	}
	if m.active != nil {
		fields = append(fields, workflow.FieldActive)
	}
	if m.input_schema != nil {
		fields = append(fields, workflow.FieldInputSchema)
	}
	if m.interface_type != nil {
		fields = append(fields, workflow.FieldInterfaceType)
	}
	if m.public != nil {
		fields = append(fields, workflow.FieldPublic)
	}
	if m.created_at != nil {
		fields = append(fields, workflow.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, workflow.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorkflowMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case workflow.FieldName:
		return m.Name()
	case workflow.FieldDescription:
		return m.Description()
	case workflow.FieldTriggerType:
		return m.TriggerType()
	case workflow.FieldTriggerConfig:
		return m.TriggerConfig()
	case workflow.FieldExecutionMode:
		return m.ExecutionMode()
	case workflow.FieldActive:
		return m.Active()
	case workflow.FieldInputSchema:
		return m.InputSchema()
	case workflow.FieldInterfaceType:
		return m.InterfaceType()
	case workflow.FieldPublic:
		return m.Public()
	case workflow.FieldCreatedAt:
		return m.CreatedAt()
	case workflow.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorkflowMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case workflow.FieldName:
		return m.OldName(ctx)
	case workflow.FieldDescription:
		return m.OldDescription(ctx)
	case workflow.FieldTriggerType:
		return m.OldTriggerType(ctx)
	case workflow.FieldTriggerConfig:
		return m.OldTriggerConfig(ctx)
	case workflow.FieldExecutionMode:
		return m.OldExecutionMode(ctx)
	case workflow.FieldActive:
		return m.OldActive(ctx)
	case workflow.FieldInputSchema:
		return m.OldInputSchema(ctx)
	case workflow.FieldInterfaceType:
		return m.OldInterfaceType(ctx)
	case workflow.FieldPublic:
		return m.OldPublic(ctx)
	case workflow.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case workflow.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Workflow field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowMutation) SetField(name string, value ent.Value) error {
	switch name {
	case workflow.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case workflow.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case workflow.FieldTriggerType:
		v, ok := value.(workflow.TriggerType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriggerType(v)
		return nil
	case workflow.FieldTriggerConfig:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriggerConfig(v)
		return nil
	case workflow.FieldExecutionMode:
		v, ok := value.(workflow.ExecutionMode)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionMode(v)
		return nil
	case workflow.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	case workflow.FieldInputSchema:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputSchema(v)
		return nil
	case workflow.FieldInterfaceType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInterfaceType(v)
		return nil
	case workflow.FieldPublic:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublic(v)
		return nil
	case workflow.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case workflow.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Workflow field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorkflowMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorkflowMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Workflow numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorkflowMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(workflow.FieldDescription) {
		fields = append(fields, workflow.FieldDescription)
	}
	if m.FieldCleared(workflow.FieldTriggerConfig) {
		fields = append(fields, workflow.FieldTriggerConfig)
	}
	if m.FieldCleared(workflow.FieldInputSchema) {
		fields = append(fields, workflow.FieldInputSchema)
	}
	if m.FieldCleared(workflow.FieldInterfaceType) {
		fields = append(fields, workflow.FieldInterfaceType)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorkflowMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorkflowMutation) ClearField(name string) error {
	switch name {
	case workflow.FieldDescription:
		m.ClearDescription()
		return nil
	case workflow.FieldTriggerConfig:
		m.ClearTriggerConfig()
		return nil
	case workflow.FieldInputSchema:
		m.ClearInputSchema()
		return nil
	case workflow.FieldInterfaceType:
		m.ClearInterfaceType()
		return nil
	}
	return fmt.Errorf("unknown Workflow nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorkflowMutation) ResetField(name string) error {
	switch name {
	case workflow.FieldName:
		m.ResetName()
		return nil
	case workflow.FieldDescription:
		m.ResetDescription()
		return nil
	case workflow.FieldTriggerType:
		m.ResetTriggerType()
		return nil
	case workflow.FieldTriggerConfig:
		m.ResetTriggerConfig()
		return nil
	case workflow.FieldExecutionMode:
		m.ResetExecutionMode()
		return nil
	case workflow.FieldActive:
		m.ResetActive()
		return nil
	case workflow.FieldInputSchema:
		m.ResetInputSchema()
		return nil
	case workflow.FieldInterfaceType:
		m.ResetInterfaceType()
		return nil
	case workflow.FieldPublic:
		m.ResetPublic()
		return nil
	case workflow.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case workflow.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Workflow field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorkflowMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.steps != nil {
		edges = append(edges, workflow.EdgeSteps)
	}
	if m.executions != nil {
		edges = append(edges, workflow.EdgeExecutions)
	}
	if m.schedules != nil {
		edges = append(edges, workflow.EdgeSchedules)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorkflowMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case workflow.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.steps))
		for id := range m.steps {
			ids = append(ids, id)
		}
		return ids
	case workflow.EdgeExecutions:
		ids := make([]ent.Value, 0, len(m.executions))
		for id := range m.executions {
			ids = append(ids, id)
		}
		return ids
	case workflow.EdgeSchedules:
		ids := make([]ent.Value, 0, len(m.schedules))
		for id := range m.schedules {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorkflowMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedsteps != nil {
		edges = append(edges, workflow.EdgeSteps)
	}
	if m.removedexecutions != nil {
		edges = append(edges, workflow.EdgeExecutions)
	}
	if m.removedschedules != nil {
		edges = append(edges, workflow.EdgeSchedules)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorkflowMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case workflow.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.removedsteps))
		for id := range m.removedsteps {
			ids = append(ids, id)
		}
		return ids
	case workflow.EdgeExecutions:
		ids := make([]ent.Value, 0, len(m.removedexecutions))
		for id := range m.removedexecutions {
			ids = append(ids, id)
		}
		return ids
	case workflow.EdgeSchedules:
		ids := make([]ent.Value, 0, len(m.removedschedules))
		for id := range m.removedschedules {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorkflowMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedsteps {
		edges = append(edges, workflow.EdgeSteps)
	}
	if m.clearedexecutions {
		edges = append(edges, workflow.EdgeExecutions)
	}
	if m.clearedschedules {
		edges = append(edges, workflow.EdgeSchedules)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorkflowMutation) EdgeCleared(name string) bool {
	switch name {
	case workflow.EdgeSteps:
		return m.clearedsteps
	case workflow.EdgeExecutions:
		return m.clearedexecutions
	case workflow.EdgeSchedules:
		return m.clearedschedules
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorkflowMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Workflow unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorkflowMutation) ResetEdge(name string) error {
	switch name {
	case workflow.EdgeSteps:
		m.ResetSteps()
		return nil
	case workflow.EdgeExecutions:
		m.ResetExecutions()
		return nil
	case workflow.EdgeSchedules:
		m.ResetSchedules()
		return nil
	}
	return fmt.Errorf("unknown Workflow edge %s", name)
}

// WorkflowExecutionMutation represents an operation that mutates the WorkflowExecution nodes in the graph.
type WorkflowExecutionMutation struct {
	config
	op                       Op
	typ                      string
	id                       *int
	status                   *workflowexecution.Status
	trigger_data             *map[string]interface{}
	context                  *map[string]interface{}
	error_message            *string
	current_step_order       *int
	addcurrent_step_order    *int
	created_at               *time.Time
	started_at               *time.Time
	completed_at             *time.Time
	updated_at               *time.Time
	clearedFields            map[string]struct{}
	workflow                 *int
	clearedworkflow          bool
	agent_executions         map[int]struct{}
	removedagent_executions  map[int]struct{}
	clearedagent_executions  bool
	approval_requests        map[int]struct{}
	removedapproval_requests map[int]struct{}
	clearedapproval_requests bool
	done                     bool
	oldValue                 func(context.Context) (*WorkflowExecution, error)
	predicates               []predicate.WorkflowExecution
}

var _ ent.Mutation = (*WorkflowExecutionMutation)(nil)

// workflowexecutionOption allows management of the mutation configuration using functional options.
type workflowexecutionOption func(*WorkflowExecutionMutation)

// newWorkflowExecutionMutation creates new mutation for the WorkflowExecution entity.
func newWorkflowExecutionMutation(c config, op Op, opts ...workflowexecutionOption) *WorkflowExecutionMutation {
	m := &WorkflowExecutionMutation{
		config:        c,
		op:            op,
		typ:           TypeWorkflowExecution,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorkflowExecutionID sets the ID field of the mutation.
func withWorkflowExecutionID(id int) workflowexecutionOption {
	return func(m *WorkflowExecutionMutation) {
		var (
			err   error
			once  sync.Once
			value *WorkflowExecution
		)
		m.oldValue = func(ctx context.Context) (*WorkflowExecution, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WorkflowExecution.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorkflowExecution sets the old WorkflowExecution of the mutation.
func withWorkflowExecution(node *WorkflowExecution) workflowexecutionOption {
	return func(m *WorkflowExecutionMutation) {
		m.oldValue = func(context.Context) (*WorkflowExecution, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorkflowExecutionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorkflowExecutionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorkflowExecutionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorkflowExecutionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WorkflowExecution.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkflowID sets the "workflow_id" field.
func (m *WorkflowExecutionMutation) SetWorkflowID(i int) {
	m.workflow = &i
}

// WorkflowID returns the value of the "workflow_id" field in the mutation.
func (m *WorkflowExecutionMutation) WorkflowID() (r int, exists bool) {
	v := m.workflow
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkflowID returns the old "workflow_id" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldWorkflowID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkflowID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkflowID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkflowID: %w", err)
	}
	return oldValue.WorkflowID, nil
}

// ResetWorkflowID resets all changes to the "workflow_id" field.
func (m *WorkflowExecutionMutation) ResetWorkflowID() {
	m.workflow = nil
}

// SetStatus sets the "status" field.
func (m *WorkflowExecutionMutation) SetStatus(w workflowexecution.Status) {
	m.status = &w
}

// Status returns the value of the "status" field in the mutation.
func (m *WorkflowExecutionMutation) Status() (r workflowexecution.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldStatus(ctx context.Context) (v workflowexecution.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *WorkflowExecutionMutation) ResetStatus() {
	m.status = nil
}

// SetTriggerData sets the "trigger_data" field.
func (m *WorkflowExecutionMutation) SetTriggerData(value map[string]interface{}) {
	m.trigger_data = &value
}

// TriggerData returns the value of the "trigger_data" field in the mutation.
func (m *WorkflowExecutionMutation) TriggerData() (r map[string]interface{}, exists bool) {
	v := m.trigger_data
	if v == nil {
		return
	}
	return *v, true
}

// OldTriggerData returns the old "trigger_data" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldTriggerData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriggerData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriggerData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriggerData: %w", err)
	}
	return oldValue.TriggerData, nil
}

// ClearTriggerData clears the value of the "trigger_data" field.
func (m *WorkflowExecutionMutation) ClearTriggerData() {
	m.trigger_data = nil
	m.clearedFields[workflowexecution.FieldTriggerData] = struct{}{}
}

// TriggerDataCleared returns if the "trigger_data" field was cleared in this mutation.
func (m *WorkflowExecutionMutation) TriggerDataCleared() bool {
	_, ok := m.clearedFields[workflowexecution.FieldTriggerData]
	return ok
}

// ResetTriggerData resets all changes to the "trigger_data" field.
func (m *WorkflowExecutionMutation) ResetTriggerData() {
	m.trigger_data = nil
	delete(m.clearedFields, workflowexecution.FieldTriggerData)
}

// SetContext sets the "context" field.
func (m *WorkflowExecutionMutation) SetContext(value map[string]interface{}) {
	m.context = &value
}

// Context returns the value of the "context" field in the mutation.
func (m *WorkflowExecutionMutation) Context() (r map[string]interface{}, exists bool) {
	v := m.context
	if v == nil {
		return
	}
	return *v, true
}

// OldContext returns the old "context" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldContext(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContext: %w", err)
	}
	return oldValue.Context, nil
}

// ClearContext clears the value of the "context" field.
func (m *WorkflowExecutionMutation) ClearContext() {
	m.context = nil
	m.clearedFields[workflowexecution.FieldContext] = struct{}{}
}

// ContextCleared returns if the "context" field was cleared in this mutation.
func (m *WorkflowExecutionMutation) ContextCleared() bool {
	_, ok := m.clearedFields[workflowexecution.FieldContext]
	return ok
}

// ResetContext resets all changes to the "context" field.
func (m *WorkflowExecutionMutation) ResetContext() {
	m.context = nil
	delete(m.clearedFields, workflowexecution.FieldContext)
}

// SetErrorMessage sets the "error_message" field.
func (m *WorkflowExecutionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *WorkflowExecutionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *WorkflowExecutionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[workflowexecution.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *WorkflowExecutionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[workflowexecution.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *WorkflowExecutionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, workflowexecution.FieldErrorMessage)
}

// SetCurrentStepOrder sets the "current_step_order" field.
func (m *WorkflowExecutionMutation) SetCurrentStepOrder(i int) {
	m.current_step_order = &i
	m.addcurrent_step_order = nil
}

// CurrentStepOrder returns the value of the "current_step_order" field in the mutation.
func (m *WorkflowExecutionMutation) CurrentStepOrder() (r int, exists bool) {
	v := m.current_step_order
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentStepOrder returns the old "current_step_order" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldCurrentStepOrder(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentStepOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentStepOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentStepOrder: %w", err)
	}
	return oldValue.CurrentStepOrder, nil
}

// AddCurrentStepOrder adds i to the "current_step_order" field.
func (m *WorkflowExecutionMutation) AddCurrentStepOrder(i int) {
	if m.addcurrent_step_order != nil {
		*m.addcurrent_step_order += i
	} else {
		m.addcurrent_step_order = &i
	}
}

// AddedCurrentStepOrder returns the value that was added to the "current_step_order" field in this mutation.
func (m *WorkflowExecutionMutation) AddedCurrentStepOrder() (r int, exists bool) {
	v := m.addcurrent_step_order
	if v == nil {
		return
	}
	return *v, true
}

// ClearCurrentStepOrder clears the value of the "current_step_order" field.
func (m *WorkflowExecutionMutation) ClearCurrentStepOrder() {
	m.current_step_order = nil
	m.addcurrent_step_order = nil
	m.clearedFields[workflowexecution.FieldCurrentStepOrder] = struct{}{}
}

// CurrentStepOrderCleared returns if the "current_step_order" field was cleared in this mutation.
func (m *WorkflowExecutionMutation) CurrentStepOrderCleared() bool {
	_, ok := m.clearedFields[workflowexecution.FieldCurrentStepOrder]
	return ok
}

// ResetCurrentStepOrder resets all changes to the "current_step_order" field.
func (m *WorkflowExecutionMutation) ResetCurrentStepOrder() {
	m.current_step_order = nil
	m.addcurrent_step_order = nil
	delete(m.clearedFields, workflowexecution.FieldCurrentStepOrder)
}

// SetCreatedAt sets the "created_at" field.
func (m *WorkflowExecutionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WorkflowExecutionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WorkflowExecutionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *WorkflowExecutionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *WorkflowExecutionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *WorkflowExecutionMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[workflowexecution.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *WorkflowExecutionMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[workflowexecution.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *WorkflowExecutionMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, workflowexecution.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *WorkflowExecutionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *WorkflowExecutionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *WorkflowExecutionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[workflowexecution.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *WorkflowExecutionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[workflowexecution.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *WorkflowExecutionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, workflowexecution.FieldCompletedAt)
}

// SetUpdatedAt sets the "updated_at" field.
func (m *WorkflowExecutionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *WorkflowExecutionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *WorkflowExecutionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearWorkflow clears the "workflow" edge to the Workflow entity.
func (m *WorkflowExecutionMutation) ClearWorkflow() {
	m.clearedworkflow = true
	m.clearedFields[workflowexecution.FieldWorkflowID] = struct{}{}
}

// WorkflowCleared reports if the "workflow" edge to the Workflow entity was cleared.
func (m *WorkflowExecutionMutation) WorkflowCleared() bool {
	return m.clearedworkflow
}

// WorkflowIDs returns the "workflow" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WorkflowID instead. It exists only for internal usage by the builders.
func (m *WorkflowExecutionMutation) WorkflowIDs() (ids []int) {
	if id := m.workflow; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWorkflow resets all changes to the "workflow" edge.
func (m *WorkflowExecutionMutation) ResetWorkflow() {
	m.workflow = nil
	m.clearedworkflow = false
}

// AddAgentExecutionIDs adds the "agent_executions" edge to the AgentExecution entity by ids.
func (m *WorkflowExecutionMutation) AddAgentExecutionIDs(ids ...int) {
	if m.agent_executions == nil {
		m.agent_executions = make(map[int]struct{})
	}
	for i := range ids {
		m.agent_executions[ids[i]] = struct{}{}
	}
}

// ClearAgentExecutions clears the "agent_executions" edge to the AgentExecution entity.
func (m *WorkflowExecutionMutation) ClearAgentExecutions() {
	m.clearedagent_executions = true
}

// AgentExecutionsCleared reports if the "agent_executions" edge to the AgentExecution entity was cleared.
func (m *WorkflowExecutionMutation) AgentExecutionsCleared() bool {
	return m.clearedagent_executions
}

// RemoveAgentExecutionIDs removes the "agent_executions" edge to the AgentExecution entity by IDs.
func (m *WorkflowExecutionMutation) RemoveAgentExecutionIDs(ids ...int) {
	if m.removedagent_executions == nil {
		m.removedagent_executions = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.agent_executions, ids[i])
		m.removedagent_executions[ids[i]] = struct{}{}
	}
}

// RemovedAgentExecutions returns the removed IDs of the "agent_executions" edge to the AgentExecution entity.
func (m *WorkflowExecutionMutation) RemovedAgentExecutionsIDs() (ids []int) {
	for id := range m.removedagent_executions {
		ids = append(ids, id)
	}
	return
}

// AgentExecutionsIDs returns the "agent_executions" edge IDs in the mutation.
func (m *WorkflowExecutionMutation) AgentExecutionsIDs() (ids []int) {
	for id := range m.agent_executions {
		ids = append(ids, id)
	}
	return
}

// ResetAgentExecutions resets all changes to the "agent_executions" edge.
func (m *WorkflowExecutionMutation) ResetAgentExecutions() {
	m.agent_executions = nil
	m.clearedagent_executions = false
	m.removedagent_executions = nil
}

// AddApprovalRequestIDs adds the "approval_requests" edge to the ApprovalRequest entity by ids.
func (m *WorkflowExecutionMutation) AddApprovalRequestIDs(ids ...int) {
	if m.approval_requests == nil {
		m.approval_requests = make(map[int]struct{})
	}
	for i := range ids {
		m.approval_requests[ids[i]] = struct{}{}
	}
}

// ClearApprovalRequests clears the "approval_requests" edge to the ApprovalRequest entity.
func (m *WorkflowExecutionMutation) ClearApprovalRequests() {
	m.clearedapproval_requests = true
}

// ApprovalRequestsCleared reports if the "approval_requests" edge to the ApprovalRequest entity was cleared.
func (m *WorkflowExecutionMutation) ApprovalRequestsCleared() bool {
	return m.clearedapproval_requests
}

// RemoveApprovalRequestIDs removes the "approval_requests" edge to the ApprovalRequest entity by IDs.
func (m *WorkflowExecutionMutation) RemoveApprovalRequestIDs(ids ...int) {
	if m.removedapproval_requests == nil {
		m.removedapproval_requests = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.approval_requests, ids[i])
		m.removedapproval_requests[ids[i]] = struct{}{}
	}
}

// RemovedApprovalRequests returns the removed IDs of the "approval_requests" edge to the ApprovalRequest entity.
func (m *WorkflowExecutionMutation) RemovedApprovalRequestsIDs() (ids []int) {
	for id := range m.removedapproval_requests {
		ids = append(ids, id)
	}
	return
}

// ApprovalRequestsIDs returns the "approval_requests" edge IDs in the mutation.
func (m *WorkflowExecutionMutation) ApprovalRequestsIDs() (ids []int) {
	for id := range m.approval_requests {
		ids = append(ids, id)
	}
	return
}

// ResetApprovalRequests resets all changes to the "approval_requests" edge.
func (m *WorkflowExecutionMutation) ResetApprovalRequests() {
	m.approval_requests = nil
	m.clearedapproval_requests = false
	m.removedapproval_requests = nil
}

// Where appends a list predicates to the WorkflowExecutionMutation builder.
func (m *WorkflowExecutionMutation) Where(ps ...predicate.WorkflowExecution) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorkflowExecutionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorkflowExecutionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WorkflowExecution, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorkflowExecutionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorkflowExecutionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WorkflowExecution).
func (m *WorkflowExecutionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorkflowExecutionMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.workflow != nil {
		fields = append(fields, workflowexecution.FieldWorkflowID)
	}
	if m.status != nil {
		fields = append(fields, workflowexecution.FieldStatus)
	}
	if m.trigger_data != nil {
		fields = append(fields, workflowexecution.FieldTriggerData)
	}
	if m.context != nil {
		fields = append(fields, workflowexecution.FieldContext)
	}
	if m.error_message != nil {
		fields = append(fields, workflowexecution.FieldErrorMessage)
	}
	if m.current_step_order != nil {
		fields = append(fields, workflowexecution.FieldCurrentStepOrder)
	}
	if m.created_at != nil {
		fields = append(fields, workflowexecution.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, workflowexecution.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, workflowexecution.FieldCompletedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, workflowexecution.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorkflowExecutionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case workflowexecution.FieldWorkflowID:
		return m.WorkflowID()
	case workflowexecution.FieldStatus:
		return m.Status()
	case workflowexecution.FieldTriggerData:
		return m.TriggerData()
	case workflowexecution.FieldContext:
		return m.Context()
	case workflowexecution.FieldErrorMessage:
		return m.ErrorMessage()
	case workflowexecution.FieldCurrentStepOrder:
		return m.CurrentStepOrder()
	case workflowexecution.FieldCreatedAt:
		return m.CreatedAt()
	case workflowexecution.FieldStartedAt:
		return m.StartedAt()
	case workflowexecution.FieldCompletedAt:
		return m.CompletedAt()
	case workflowexecution.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorkflowExecutionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case workflowexecution.FieldWorkflowID:
		return m.OldWorkflowID(ctx)
	case workflowexecution.FieldStatus:
		return m.OldStatus(ctx)
	case workflowexecution.FieldTriggerData:
		return m.OldTriggerData(ctx)
	case workflowexecution.FieldContext:
		return m.OldContext(ctx)
	case workflowexecution.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case workflowexecution.FieldCurrentStepOrder:
		return m.OldCurrentStepOrder(ctx)
	case workflowexecution.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case workflowexecution.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case workflowexecution.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case workflowexecution.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown WorkflowExecution field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowExecutionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case workflowexecution.FieldWorkflowID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkflowID(v)
		return nil
	case workflowexecution.FieldStatus:
		v, ok := value.(workflowexecution.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case workflowexecution.FieldTriggerData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriggerData(v)
		return nil
	case workflowexecution.FieldContext:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContext(v)
		return nil
	case workflowexecution.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case workflowexecution.FieldCurrentStepOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentStepOrder(v)
		return nil
	case workflowexecution.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case workflowexecution.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case workflowexecution.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case workflowexecution.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown WorkflowExecution field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorkflowExecutionMutation) AddedFields() []string {
	var fields []string
	if m.addcurrent_step_order != nil {
		fields = append(fields, workflowexecution.FieldCurrentStepOrder)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorkflowExecutionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case workflowexecution.FieldCurrentStepOrder:
		return m.AddedCurrentStepOrder()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowExecutionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case workflowexecution.FieldCurrentStepOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentStepOrder(v)
		return nil
	}
	return fmt.Errorf("unknown WorkflowExecution numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorkflowExecutionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(workflowexecution.FieldTriggerData) {
		fields = append(fields, workflowexecution.FieldTriggerData)
	}
	if m.FieldCleared(workflowexecution.FieldContext) {
		fields = append(fields, workflowexecution.FieldContext)
	}
	if m.FieldCleared(workflowexecution.FieldErrorMessage) {
		fields = append(fields, workflowexecution.FieldErrorMessage)
	}
	if m.FieldCleared(workflowexecution.FieldCurrentStepOrder) {
		fields = append(fields, workflowexecution.FieldCurrentStepOrder)
	}
	if m.FieldCleared(workflowexecution.FieldStartedAt) {
		fields = append(fields, workflowexecution.FieldStartedAt)
	}
	if m.FieldCleared(workflowexecution.FieldCompletedAt) {
		fields = append(fields, workflowexecution.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorkflowExecutionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorkflowExecutionMutation) ClearField(name string) error {
	switch name {
	case workflowexecution.FieldTriggerData:
		m.ClearTriggerData()
		return nil
	case workflowexecution.FieldContext:
		m.ClearContext()
		return nil
	case workflowexecution.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case workflowexecution.FieldCurrentStepOrder:
		m.ClearCurrentStepOrder()
		return nil
	case workflowexecution.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case workflowexecution.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown WorkflowExecution nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorkflowExecutionMutation) ResetField(name string) error {
	switch name {
	case workflowexecution.FieldWorkflowID:
		m.ResetWorkflowID()
		return nil
	case workflowexecution.FieldStatus:
		m.ResetStatus()
		return nil
	case workflowexecution.FieldTriggerData:
		m.ResetTriggerData()
		return nil
	case workflowexecution.FieldContext:
		m.ResetContext()
		return nil
	case workflowexecution.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case workflowexecution.FieldCurrentStepOrder:
		m.ResetCurrentStepOrder()
		return nil
	case workflowexecution.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case workflowexecution.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case workflowexecution.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case workflowexecution.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown WorkflowExecution field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorkflowExecutionMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.workflow != nil {
		edges = append(edges, workflowexecution.EdgeWorkflow)
	}
	if m.agent_executions != nil {
		edges = append(edges, workflowexecution.EdgeAgentExecutions)
	}
	if m.approval_requests != nil {
		edges = append(edges, workflowexecution.EdgeApprovalRequests)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorkflowExecutionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case workflowexecution.EdgeWorkflow:
		if id := m.workflow; id != nil {
			return []ent.Value{*id}
		}
	case workflowexecution.EdgeAgentExecutions:
		ids := make([]ent.Value, 0, len(m.agent_executions))
		for id := range m.agent_executions {
			ids = append(ids, id)
		}
		return ids
	case workflowexecution.EdgeApprovalRequests:
		ids := make([]ent.Value, 0, len(m.approval_requests))
		for id := range m.approval_requests {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorkflowExecutionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedagent_executions != nil {
		edges = append(edges, workflowexecution.EdgeAgentExecutions)
	}
	if m.removedapproval_requests != nil {
		edges = append(edges, workflowexecution.EdgeApprovalRequests)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorkflowExecutionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case workflowexecution.EdgeAgentExecutions:
		ids := make([]ent.Value, 0, len(m.removedagent_executions))
		for id := range m.removedagent_executions {
			ids = append(ids, id)
		}
		return ids
	case workflowexecution.EdgeApprovalRequests:
		ids := make([]ent.Value, 0, len(m.removedapproval_requests))
		for id := range m.removedapproval_requests {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorkflowExecutionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedworkflow {
		edges = append(edges, workflowexecution.EdgeWorkflow)
	}
	if m.clearedagent_executions {
		edges = append(edges, workflowexecution.EdgeAgentExecutions)
	}
	if m.clearedapproval_requests {
		edges = append(edges, workflowexecution.EdgeApprovalRequests)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorkflowExecutionMutation) EdgeCleared(name string) bool {
	switch name {
	case workflowexecution.EdgeWorkflow:
		return m.clearedworkflow
	case workflowexecution.EdgeAgentExecutions:
		return m.clearedagent_executions
	case workflowexecution.EdgeApprovalRequests:
		return m.clearedapproval_requests
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorkflowExecutionMutation) ClearEdge(name string) error {
	switch name {
	case workflowexecution.EdgeWorkflow:
		m.ClearWorkflow()
		return nil
	}
	return fmt.Errorf("unknown WorkflowExecution unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorkflowExecutionMutation) ResetEdge(name string) error {
	switch name {
	case workflowexecution.EdgeWorkflow:
		m.ResetWorkflow()
		return nil
	case workflowexecution.EdgeAgentExecutions:
		m.ResetAgentExecutions()
		return nil
	case workflowexecution.EdgeApprovalRequests:
		m.ResetApprovalRequests()
		return nil
	}
	return fmt.Errorf("unknown WorkflowExecution edge %s", name)
}

// WorkflowScheduleMutation represents an operation that mutates the WorkflowSchedule nodes in the graph.
type WorkflowScheduleMutation struct {
	config
	op              Op
	typ             string
	id              *int
	cron_expression *string
	enabled         *bool
	last_run_at     *time.Time
	next_run_at     *time.Time
	trigger_data    *map[string]interface{}
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	workflow        *int
	clearedworkflow bool
	done            bool
	oldValue        func(context.Context) (*WorkflowSchedule, error)
	predicates      []predicate.WorkflowSchedule
}

var _ ent.Mutation = (*WorkflowScheduleMutation)(nil)

// workflowscheduleOption allows management of the mutation configuration using functional options.
type workflowscheduleOption func(*WorkflowScheduleMutation)

// newWorkflowScheduleMutation creates new mutation for the WorkflowSchedule entity.
func newWorkflowScheduleMutation(c config, op Op, opts ...workflowscheduleOption) *WorkflowScheduleMutation {
	m := &WorkflowScheduleMutation{
		config:        c,
		op:            op,
		typ:           TypeWorkflowSchedule,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorkflowScheduleID sets the ID field of the mutation.
func withWorkflowScheduleID(id int) workflowscheduleOption {
	return func(m *WorkflowScheduleMutation) {
		var (
			err   error
			once  sync.Once
			value *WorkflowSchedule
		)
		m.oldValue = func(ctx context.Context) (*WorkflowSchedule, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WorkflowSchedule.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorkflowSchedule sets the old WorkflowSchedule of the mutation.
func withWorkflowSchedule(node *WorkflowSchedule) workflowscheduleOption {
	return func(m *WorkflowScheduleMutation) {
		m.oldValue = func(context.Context) (*WorkflowSchedule, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorkflowScheduleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorkflowScheduleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorkflowScheduleMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorkflowScheduleMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WorkflowSchedule.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkflowID sets the "workflow_id" field.
func (m *WorkflowScheduleMutation) SetWorkflowID(i int) {
	m.workflow = &i
}

// WorkflowID returns the value of the "workflow_id" field in the mutation.
func (m *WorkflowScheduleMutation) WorkflowID() (r int, exists bool) {
	v := m.workflow
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkflowID returns the old "workflow_id" field's value of the WorkflowSchedule entity.
// If the WorkflowSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowScheduleMutation) OldWorkflowID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkflowID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkflowID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkflowID: %w", err)
	}
	return oldValue.WorkflowID, nil
}

// ResetWorkflowID resets all changes to the "workflow_id" field.
func (m *WorkflowScheduleMutation) ResetWorkflowID() {
	m.workflow = nil
}

// SetCronExpression sets the "cron_expression" field.
func (m *WorkflowScheduleMutation) SetCronExpression(s string) {
	m.cron_expression = &s
}

// CronExpression returns the value of the "cron_expression" field in the mutation.
func (m *WorkflowScheduleMutation) CronExpression() (r string, exists bool) {
	v := m.cron_expression
	if v == nil {
		return
	}
	return *v, true
}

// OldCronExpression returns the old "cron_expression" field's value of the WorkflowSchedule entity.
// If the WorkflowSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowScheduleMutation) OldCronExpression(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCronExpression is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCronExpression requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCronExpression: %w", err)
	}
	return oldValue.CronExpression, nil
}

// ResetCronExpression resets all changes to the "cron_expression" field.
func (m *WorkflowScheduleMutation) ResetCronExpression() {
	m.cron_expression = nil
}

// SetEnabled sets the "enabled" field.
func (m *WorkflowScheduleMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *WorkflowScheduleMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the WorkflowSchedule entity.
// If the WorkflowSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowScheduleMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *WorkflowScheduleMutation) ResetEnabled() {
	m.enabled = nil
}

// SetLastRunAt sets the "last_run_at" field.
func (m *WorkflowScheduleMutation) SetLastRunAt(t time.Time) {
	m.last_run_at = &t
}

// LastRunAt returns the value of the "last_run_at" field in the mutation.
func (m *WorkflowScheduleMutation) LastRunAt() (r time.Time, exists bool) {
	v := m.last_run_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastRunAt returns the old "last_run_at" field's value of the WorkflowSchedule entity.
// If the WorkflowSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowScheduleMutation) OldLastRunAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastRunAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastRunAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastRunAt: %w", err)
	}
	return oldValue.LastRunAt, nil
}

// ClearLastRunAt clears the value of the "last_run_at" field.
func (m *WorkflowScheduleMutation) ClearLastRunAt() {
	m.last_run_at = nil
	m.clearedFields[workflowschedule.FieldLastRunAt] = struct{}{}
}

// LastRunAtCleared returns if the "last_run_at" field was cleared in this mutation.
func (m *WorkflowScheduleMutation) LastRunAtCleared() bool {
	_, ok := m.clearedFields[workflowschedule.FieldLastRunAt]
	return ok
}

// ResetLastRunAt resets all changes to the "last_run_at" field.
func (m *WorkflowScheduleMutation) ResetLastRunAt() {
	m.last_run_at = nil
	delete(m.clearedFields, workflowschedule.FieldLastRunAt)
}

// SetNextRunAt sets the "next_run_at" field.
func (m *WorkflowScheduleMutation) SetNextRunAt(t time.Time) {
	m.next_run_at = &t
}

// NextRunAt returns the value of the "next_run_at" field in the mutation.
func (m *WorkflowScheduleMutation) NextRunAt() (r time.Time, exists bool) {
	v := m.next_run_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNextRunAt returns the old "next_run_at" field's value of the WorkflowSchedule entity.
// If the WorkflowSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowScheduleMutation) OldNextRunAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextRunAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextRunAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextRunAt: %w", err)
	}
	return oldValue.NextRunAt, nil
}

// ResetNextRunAt resets all changes to the "next_run_at" field.
func (m *WorkflowScheduleMutation) ResetNextRunAt() {
	m.next_run_at = nil
}

// SetTriggerData sets the "trigger_data" field.
func (m *WorkflowScheduleMutation) SetTriggerData(value map[string]interface{}) {
	m.trigger_data = &value
}

// TriggerData returns the value of the "trigger_data" field in the mutation.
func (m *WorkflowScheduleMutation) TriggerData() (r map[string]interface{}, exists bool) {
	v := m.trigger_data
	if v == nil {
		return
	}
	return *v, true
}

// OldTriggerData returns the old "trigger_data" field's value of the WorkflowSchedule entity.
// If the WorkflowSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowScheduleMutation) OldTriggerData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriggerData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriggerData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriggerData: %w", err)
	}
	return oldValue.TriggerData, nil
}

// ClearTriggerData clears the value of the "trigger_data" field.
func (m *WorkflowScheduleMutation) ClearTriggerData() {
	m.trigger_data = nil
	m.clearedFields[workflowschedule.FieldTriggerData] = struct{}{}
}

// TriggerDataCleared returns if the "trigger_data" field was cleared in this mutation.
func (m *WorkflowScheduleMutation) TriggerDataCleared() bool {
	_, ok := m.clearedFields[workflowschedule.FieldTriggerData]
	return ok
}

// ResetTriggerData resets all changes to the "trigger_data" field.
func (m *WorkflowScheduleMutation) ResetTriggerData() {
	m.trigger_data = nil
	delete(m.clearedFields, workflowschedule.FieldTriggerData)
}

// SetCreatedAt sets the "created_at" field.
func (m *WorkflowScheduleMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WorkflowScheduleMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the WorkflowSchedule entity.
// If the WorkflowSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowScheduleMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WorkflowScheduleMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *WorkflowScheduleMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *WorkflowScheduleMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the WorkflowSchedule entity.
// If the WorkflowSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowScheduleMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *WorkflowScheduleMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearWorkflow clears the "workflow" edge to the Workflow entity.
func (m *WorkflowScheduleMutation) ClearWorkflow() {
	m.clearedworkflow = true
	m.clearedFields[workflowschedule.FieldWorkflowID] = struct{}{}
}

// WorkflowCleared reports if the "workflow" edge to the Workflow entity was cleared.
func (m *WorkflowScheduleMutation) WorkflowCleared() bool {
	return m.clearedworkflow
}

// WorkflowIDs returns the "workflow" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WorkflowID instead. It exists only for internal usage by the builders.
func (m *WorkflowScheduleMutation) WorkflowIDs() (ids []int) {
	if id := m.workflow; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWorkflow resets all changes to the "workflow" edge.
func (m *WorkflowScheduleMutation) ResetWorkflow() {
	m.workflow = nil
	m.clearedworkflow = false
}

// Where appends a list predicates to the WorkflowScheduleMutation builder.
func (m *WorkflowScheduleMutation) Where(ps ...predicate.WorkflowSchedule) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorkflowScheduleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorkflowScheduleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WorkflowSchedule, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorkflowScheduleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorkflowScheduleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WorkflowSchedule).
func (m *WorkflowScheduleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorkflowScheduleMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.workflow != nil {
		fields = append(fields, workflowschedule.FieldWorkflowID)
	}
	if m.cron_expression != nil {
		fields = append(fields, workflowschedule.FieldCronExpression)
	}
	if m.enabled != nil {
		fields = append(fields, workflowschedule.FieldEnabled)
	}
	if m.last_run_at != nil {
		fields = append(fields, workflowschedule.FieldLastRunAt)
	}
	if m.next_run_at != nil {
		fields = append(fields, workflowschedule.FieldNextRunAt)
	}
	if m.trigger_data != nil {
		fields = append(fields, workflowschedule.FieldTriggerData)
	}
	if m.created_at != nil {
		fields = append(fields, workflowschedule.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, workflowschedule.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorkflowScheduleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case workflowschedule.FieldWorkflowID:
		return m.WorkflowID()
	case workflowschedule.FieldCronExpression:
		return m.CronExpression()
	case workflowschedule.FieldEnabled:
		return m.Enabled()
	case workflowschedule.FieldLastRunAt:
		return m.LastRunAt()
	case workflowschedule.FieldNextRunAt:
		return m.NextRunAt()
	case workflowschedule.FieldTriggerData:
		return m.TriggerData()
	case workflowschedule.FieldCreatedAt:
		return m.CreatedAt()
	case workflowschedule.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorkflowScheduleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case workflowschedule.FieldWorkflowID:
		return m.OldWorkflowID(ctx)
	case workflowschedule.FieldCronExpression:
		return m.OldCronExpression(ctx)
	case workflowschedule.FieldEnabled:
		return m.OldEnabled(ctx)
	case workflowschedule.FieldLastRunAt:
		return m.OldLastRunAt(ctx)
	case workflowschedule.FieldNextRunAt:
		return m.OldNextRunAt(ctx)
	case workflowschedule.FieldTriggerData:
		return m.OldTriggerData(ctx)
	case workflowschedule.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case workflowschedule.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown WorkflowSchedule field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowScheduleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case workflowschedule.FieldWorkflowID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkflowID(v)
		return nil
	case workflowschedule.FieldCronExpression:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCronExpression(v)
		return nil
	case workflowschedule.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case workflowschedule.FieldLastRunAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastRunAt(v)
		return nil
	case workflowschedule.FieldNextRunAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextRunAt(v)
		return nil
	case workflowschedule.FieldTriggerData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriggerData(v)
		return nil
	case workflowschedule.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case workflowschedule.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown WorkflowSchedule field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorkflowScheduleMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorkflowScheduleMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowScheduleMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown WorkflowSchedule numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorkflowScheduleMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(workflowschedule.FieldLastRunAt) {
		fields = append(fields, workflowschedule.FieldLastRunAt)
	}
	if m.FieldCleared(workflowschedule.FieldTriggerData) {
		fields = append(fields, workflowschedule.FieldTriggerData)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorkflowScheduleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorkflowScheduleMutation) ClearField(name string) error {
	switch name {
	case workflowschedule.FieldLastRunAt:
		m.ClearLastRunAt()
		return nil
	case workflowschedule.FieldTriggerData:
		m.ClearTriggerData()
		return nil
	}
	return fmt.Errorf("unknown WorkflowSchedule nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorkflowScheduleMutation) ResetField(name string) error {
	switch name {
	case workflowschedule.FieldWorkflowID:
		m.ResetWorkflowID()
		return nil
	case workflowschedule.FieldCronExpression:
		m.ResetCronExpression()
		return nil
	case workflowschedule.FieldEnabled:
		m.ResetEnabled()
		return nil
	case workflowschedule.FieldLastRunAt:
		m.ResetLastRunAt()
		return nil
	case workflowschedule.FieldNextRunAt:
		m.ResetNextRunAt()
		return nil
	case workflowschedule.FieldTriggerData:
		m.ResetTriggerData()
		return nil
	case workflowschedule.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case workflowschedule.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown WorkflowSchedule field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorkflowScheduleMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.workflow != nil {
		edges = append(edges, workflowschedule.EdgeWorkflow)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorkflowScheduleMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case workflowschedule.EdgeWorkflow:
		if id := m.workflow; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorkflowScheduleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorkflowScheduleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorkflowScheduleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedworkflow {
		edges = append(edges, workflowschedule.EdgeWorkflow)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorkflowScheduleMutation) EdgeCleared(name string) bool {
	switch name {
	case workflowschedule.EdgeWorkflow:
		return m.clearedworkflow
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorkflowScheduleMutation) ClearEdge(name string) error {
	switch name {
	case workflowschedule.EdgeWorkflow:
		m.ClearWorkflow()
		return nil
	}
	return fmt.Errorf("unknown WorkflowSchedule unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorkflowScheduleMutation) ResetEdge(name string) error {
	switch name {
	case workflowschedule.EdgeWorkflow:
		m.ResetWorkflow()
		return nil
	}
	return fmt.Errorf("unknown WorkflowSchedule edge %s", name)
}

// WorkflowStepMutation represents an operation that mutates the WorkflowStep nodes in the graph.
type WorkflowStepMutation struct {
	config
	op                       Op
	typ                      string
	id                       *int
	step_order               *int
	addstep_order            *int
	step_type                *workflowstep.StepType
	name                     *string
	input_mapping            *map[string]interface{}
	output_variable          *string
	condition_expression     *string
	depends_on               *[]int
	appenddepends_on         []int
	approval_config          *map[string]interface{}
	retry_config             *map[string]interface{}
	timeout_seconds          *int
	addtimeout_seconds       *int
	created_at               *time.Time
	updated_at               *time.Time
	clearedFields            map[string]struct{}
	workflow                 *int
	clearedworkflow          bool
	agent                    *int
	clearedagent             bool
	agent_executions         map[int]struct{}
	removedagent_executions  map[int]struct{}
	clearedagent_executions  bool
	approval_requests        map[int]struct{}
	removedapproval_requests map[int]struct{}
	clearedapproval_requests bool
	done                     bool
	oldValue                 func(context.Context) (*WorkflowStep, error)
	predicates               []predicate.WorkflowStep
}

var _ ent.Mutation = (*WorkflowStepMutation)(nil)

// workflowstepOption allows management of the mutation configuration using functional options.
type workflowstepOption func(*WorkflowStepMutation)

// newWorkflowStepMutation creates new mutation for the WorkflowStep entity.
func newWorkflowStepMutation(c config, op Op, opts ...workflowstepOption) *WorkflowStepMutation {
	m := &WorkflowStepMutation{
		config:        c,
		op:            op,
		typ:           TypeWorkflowStep,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorkflowStepID sets the ID field of the mutation.
func withWorkflowStepID(id int) workflowstepOption {
	return func(m *WorkflowStepMutation) {
		var (
			err   error
			once  sync.Once
			value *WorkflowStep
		)
		m.oldValue = func(ctx context.Context) (*WorkflowStep, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WorkflowStep.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorkflowStep sets the old WorkflowStep of the mutation.
func withWorkflowStep(node *WorkflowStep) workflowstepOption {
	return func(m *WorkflowStepMutation) {
		m.oldValue = func(context.Context) (*WorkflowStep, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorkflowStepMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorkflowStepMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorkflowStepMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorkflowStepMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WorkflowStep.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkflowID sets the "workflow_id" field.
func (m *WorkflowStepMutation) SetWorkflowID(i int) {
	m.workflow = &i
}

// WorkflowID returns the value of the "workflow_id" field in the mutation.
func (m *WorkflowStepMutation) WorkflowID() (r int, exists bool) {
	v := m.workflow
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkflowID returns the old "workflow_id" field's value of the WorkflowStep entity.
// If the WorkflowStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowStepMutation) OldWorkflowID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkflowID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkflowID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkflowID: %w", err)
	}
	return oldValue.WorkflowID, nil
}

// ResetWorkflowID resets all changes to the "workflow_id" field.
func (m *WorkflowStepMutation) ResetWorkflowID() {
	m.workflow = nil
}

// SetStepOrder sets the "step_order" field.
func (m *WorkflowStepMutation) SetStepOrder(i int) {
	m.step_order = &i
	m.addstep_order = nil
}

// StepOrder returns the value of the "step_order" field in the mutation.
func (m *WorkflowStepMutation) StepOrder() (r int, exists bool) {
	v := m.step_order
	if v == nil {
		return
	}
	return *v, true
}

// OldStepOrder returns the old "step_order" field's value of the WorkflowStep entity.
// If the WorkflowStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowStepMutation) OldStepOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepOrder: %w", err)
	}
	return oldValue.StepOrder, nil
}

// AddStepOrder adds i to the "step_order" field.
func (m *WorkflowStepMutation) AddStepOrder(i int) {
	if m.addstep_order != nil {
		*m.addstep_order += i
	} else {
		m.addstep_order = &i
	}
}

// AddedStepOrder returns the value that was added to the "step_order" field in this mutation.
func (m *WorkflowStepMutation) AddedStepOrder() (r int, exists bool) {
	v := m.addstep_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetStepOrder resets all changes to the "step_order" field.
func (m *WorkflowStepMutation) ResetStepOrder() {
	m.step_order = nil
	m.addstep_order = nil
}

// SetStepType sets the "step_type" field.
func (m *WorkflowStepMutation) SetStepType(wt workflowstep.StepType) {
	m.step_type = &wt
}

// StepType returns the value of the "step_type" field in the mutation.
func (m *WorkflowStepMutation) StepType() (r workflowstep.StepType, exists bool) {
	v := m.step_type
	if v == nil {
		return
	}
	return *v, true
}

// OldStepType returns the old "step_type" field's value of the WorkflowStep entity.
// If the WorkflowStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowStepMutation) OldStepType(ctx context.Context) (v workflowstep.StepType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepType: %w", err)
	}
	return oldValue.StepType, nil
}

// ResetStepType resets all changes to the "step_type" field.
func (m *WorkflowStepMutation) ResetStepType() {
	m.step_type = nil
}

// SetAgentID sets the "agent_id" field.
func (m *WorkflowStepMutation) SetAgentID(i int) {
	m.agent = &i
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *WorkflowStepMutation) AgentID() (r int, exists bool) {
	v := m.agent
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the WorkflowStep entity.
// If the WorkflowStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowStepMutation) OldAgentID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ClearAgentID clears the value of the "agent_id" field.
func (m *WorkflowStepMutation) ClearAgentID() {
	m.agent = nil
	m.clearedFields[workflowstep.FieldAgentID] = struct{}{}
}

// AgentIDCleared returns if the "agent_id" field was cleared in this mutation.
func (m *WorkflowStepMutation) AgentIDCleared() bool {
	_, ok := m.clearedFields[workflowstep.FieldAgentID]
	return ok
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *WorkflowStepMutation) ResetAgentID() {
	m.agent = nil
	delete(m.clearedFields, workflowstep.FieldAgentID)
}

// SetName sets the "name" field.
func (m *WorkflowStepMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *WorkflowStepMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the WorkflowStep entity.
// If the WorkflowStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowStepMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *WorkflowStepMutation) ResetName() {
	m.name = nil
}

// SetInputMapping sets the "input_mapping" field.
func (m *WorkflowStepMutation) SetInputMapping(value map[string]interface{}) {
	m.input_mapping = &value
}

// InputMapping returns the value of the "input_mapping" field in the mutation.
func (m *WorkflowStepMutation) InputMapping() (r map[string]interface{}, exists bool) {
	v := m.input_mapping
	if v == nil {
		return
	}
	return *v, true
}

// OldInputMapping returns the old "input_mapping" field's value of the WorkflowStep entity.
// If the WorkflowStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowStepMutation) OldInputMapping(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputMapping is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputMapping requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputMapping: %w", err)
	}
	return oldValue.InputMapping, nil
}

// ClearInputMapping clears the value of the "input_mapping" field.
func (m *WorkflowStepMutation) ClearInputMapping() {
	m.input_mapping = nil
	m.clearedFields[workflowstep.FieldInputMapping] = struct{}{}
}

// InputMappingCleared returns if the "input_mapping" field was cleared in this mutation.
func (m *WorkflowStepMutation) InputMappingCleared() bool {
	_, ok := m.clearedFields[workflowstep.FieldInputMapping]
	return ok
}

// ResetInputMapping resets all changes to the "input_mapping" field.
func (m *WorkflowStepMutation) ResetInputMapping() {
	m.input_mapping = nil
	delete(m.clearedFields, workflowstep.FieldInputMapping)
}

// SetOutputVariable sets the "output_variable" field.
func (m *WorkflowStepMutation) SetOutputVariable(s string) {
	m.output_variable = &s
}

// OutputVariable returns the value of the "output_variable" field in the mutation.
func (m *WorkflowStepMutation) OutputVariable() (r string, exists bool) {
	v := m.output_variable
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputVariable returns the old "output_variable" field's value of the WorkflowStep entity.
// If the WorkflowStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowStepMutation) OldOutputVariable(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputVariable is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputVariable requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputVariable: %w", err)
	}
	return oldValue.OutputVariable, nil
}

// ClearOutputVariable clears the value of the "output_variable" field.
func (m *WorkflowStepMutation) ClearOutputVariable() {
	m.output_variable = nil
	m.clearedFields[workflowstep.FieldOutputVariable] = struct{}{}
}

// OutputVariableCleared returns if the "output_variable" field was cleared in this mutation.
func (m *WorkflowStepMutation) OutputVariableCleared() bool {
	_, ok := m.clearedFields[workflowstep.FieldOutputVariable]
	return ok
}

// ResetOutputVariable resets all changes to the "output_variable" field.
func (m *WorkflowStepMutation) ResetOutputVariable() {
	m.output_variable = nil
	delete(m.clearedFields, workflowstep.FieldOutputVariable)
}

// SetConditionExpression sets the "condition_expression" field.
func (m *WorkflowStepMutation) SetConditionExpression(s string) {
	m.condition_expression = &s
}

// ConditionExpression returns the value of the "condition_expression" field in the mutation.
func (m *WorkflowStepMutation) ConditionExpression() (r string, exists bool) {
	v := m.condition_expression
	if v == nil {
		return
	}
	return *v, true
}

// OldConditionExpression returns the old "condition_expression" field's value of the WorkflowStep entity.
// If the WorkflowStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowStepMutation) OldConditionExpression(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConditionExpression is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConditionExpression requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConditionExpression: %w", err)
	}
	return oldValue.ConditionExpression, nil
}

// ClearConditionExpression clears the value of the "condition_expression" field.
func (m *WorkflowStepMutation) ClearConditionExpression() {
	m.condition_expression = nil
	m.clearedFields[workflowstep.FieldConditionExpression] = struct{}{}
}

// ConditionExpressionCleared returns if the "condition_expression" field was cleared in this mutation.
func (m *WorkflowStepMutation) ConditionExpressionCleared() bool {
	_, ok := m.clearedFields[workflowstep.FieldConditionExpression]
	return ok
}

// ResetConditionExpression resets all changes to the "condition_expression" field.
func (m *WorkflowStepMutation) ResetConditionExpression() {
	m.condition_expression = nil
	delete(m.clearedFields, workflowstep.FieldConditionExpression)
}

// SetDependsOn sets the "depends_on" field.
func (m *WorkflowStepMutation) SetDependsOn(i []int) {
	m.depends_on = &i
	m.appenddepends_on = nil
}

// DependsOn returns the value of the "depends_on" field in the mutation.
func (m *WorkflowStepMutation) DependsOn() (r []int, exists bool) {
	v := m.depends_on
	if v == nil {
		return
	}
	return *v, true
}

// OldDependsOn returns the old "depends_on" field's value of the WorkflowStep entity.
// If the WorkflowStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowStepMutation) OldDependsOn(ctx context.Context) (v []int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDependsOn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDependsOn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDependsOn: %w", err)
	}
	return oldValue.DependsOn, nil
}

// AppendDependsOn adds i to the "depends_on" field.
func (m *WorkflowStepMutation) AppendDependsOn(i []int) {
	m.appenddepends_on = append(m.appenddepends_on, i...)
}

// AppendedDependsOn returns the list of values that were appended to the "depends_on" field in this mutation.
func (m *WorkflowStepMutation) AppendedDependsOn() ([]int, bool) {
	if len(m.appenddepends_on) == 0 {
		return nil, false
	}
	return m.appenddepends_on, true
}

// ClearDependsOn clears the value of the "depends_on" field.
func (m *WorkflowStepMutation) ClearDependsOn() {
	m.depends_on = nil
	m.appenddepends_on = nil
	m.clearedFields[workflowstep.FieldDependsOn] = struct{}{}
}

// DependsOnCleared returns if the "depends_on" field was cleared in this mutation.
func (m *WorkflowStepMutation) DependsOnCleared() bool {
	_, ok := m.clearedFields[workflowstep.FieldDependsOn]
	return ok
}

// ResetDependsOn resets all changes to the "depends_on" field.
func (m *WorkflowStepMutation) ResetDependsOn() {
	m.depends_on = nil
	m.appenddepends_on = nil
	delete(m.clearedFields, workflowstep.FieldDependsOn)
}

// SetApprovalConfig sets the "approval_config" field.
func (m *WorkflowStepMutation) SetApprovalConfig(value map[string]interface{}) {
	m.approval_config = &value
}

// ApprovalConfig returns the value of the "approval_config" field in the mutation.
func (m *WorkflowStepMutation) ApprovalConfig() (r map[string]interface{}, exists bool) {
	v := m.approval_config
	if v == nil {
		return
	}
	return *v, true
}

// OldApprovalConfig returns the old "approval_config" field's value of the WorkflowStep entity.
// If the WorkflowStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowStepMutation) OldApprovalConfig(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApprovalConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApprovalConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApprovalConfig: %w", err)
	}
	return oldValue.ApprovalConfig, nil
}

// ClearApprovalConfig clears the value of the "approval_config" field.
func (m *WorkflowStepMutation) ClearApprovalConfig() {
	m.approval_config = nil
	m.clearedFields[workflowstep.FieldApprovalConfig] = struct{}{}
}

// ApprovalConfigCleared returns if the "approval_config" field was cleared in this mutation.
func (m *WorkflowStepMutation) ApprovalConfigCleared() bool {
	_, ok := m.clearedFields[workflowstep.FieldApprovalConfig]
	return ok
}

// ResetApprovalConfig resets all changes to the "approval_config" field.
func (m *WorkflowStepMutation) ResetApprovalConfig() {
	m.approval_config = nil
	delete(m.clearedFields, workflowstep.FieldApprovalConfig)
}

// SetRetryConfig sets the "retry_config" field.
func (m *WorkflowStepMutation) SetRetryConfig(value map[string]interface{}) {
	m.retry_config = &value
}

// RetryConfig returns the value of the "retry_config" field in the mutation.
func (m *WorkflowStepMutation) RetryConfig() (r map[string]interface{}, exists bool) {
	v := m.retry_config
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryConfig returns the old "retry_config" field's value of the WorkflowStep entity.
// If the WorkflowStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowStepMutation) OldRetryConfig(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryConfig: %w", err)
	}
	return oldValue.RetryConfig, nil
}

// ClearRetryConfig clears the value of the "retry_config" field.
func (m *WorkflowStepMutation) ClearRetryConfig() {
	m.retry_config = nil
	m.clearedFields[workflowstep.FieldRetryConfig] = struct{}{}
}

// RetryConfigCleared returns if the "retry_config" field was cleared in this mutation.
func (m *WorkflowStepMutation) RetryConfigCleared() bool {
	_, ok := m.clearedFields[workflowstep.FieldRetryConfig]
	return ok
}

// ResetRetryConfig resets all changes to the "retry_config" field.
func (m *WorkflowStepMutation) ResetRetryConfig() {
	m.retry_config = nil
	delete(m.clearedFields, workflowstep.FieldRetryConfig)
}

// SetTimeoutSeconds sets the "timeout_seconds" field.
func (m *WorkflowStepMutation) SetTimeoutSeconds(i int) {
	m.timeout_seconds = &i
	m.addtimeout_seconds = nil
}

// TimeoutSeconds returns the value of the "timeout_seconds" field in the mutation.
func (m *WorkflowStepMutation) TimeoutSeconds() (r int, exists bool) {
	v := m.timeout_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeoutSeconds returns the old "timeout_seconds" field's value of the WorkflowStep entity.
// If the WorkflowStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowStepMutation) OldTimeoutSeconds(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeoutSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeoutSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeoutSeconds: %w", err)
	}
	return oldValue.TimeoutSeconds, nil
}

// AddTimeoutSeconds adds i to the "timeout_seconds" field.
func (m *WorkflowStepMutation) AddTimeoutSeconds(i int) {
	if m.addtimeout_seconds != nil {
		*m.addtimeout_seconds += i
	} else {
		m.addtimeout_seconds = &i
	}
}

// AddedTimeoutSeconds returns the value that was added to the "timeout_seconds" field in this mutation.
func (m *WorkflowStepMutation) AddedTimeoutSeconds() (r int, exists bool) {
	v := m.addtimeout_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ClearTimeoutSeconds clears the value of the "timeout_seconds" field.
func (m *WorkflowStepMutation) ClearTimeoutSeconds() {
	m.timeout_seconds = nil
	m.addtimeout_seconds = nil
	m.clearedFields[workflowstep.FieldTimeoutSeconds] = struct{}{}
}

// TimeoutSecondsCleared returns if the "timeout_seconds" field was cleared in this mutation.
func (m *WorkflowStepMutation) TimeoutSecondsCleared() bool {
	_, ok := m.clearedFields[workflowstep.FieldTimeoutSeconds]
	return ok
}

// ResetTimeoutSeconds resets all changes to the "timeout_seconds" field.
func (m *WorkflowStepMutation) ResetTimeoutSeconds() {
	m.timeout_seconds = nil
	m.addtimeout_seconds = nil
	delete(m.clearedFields, workflowstep.FieldTimeoutSeconds)
}

// SetCreatedAt sets the "created_at" field.
func (m *WorkflowStepMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WorkflowStepMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the WorkflowStep entity.
// If the WorkflowStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowStepMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WorkflowStepMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *WorkflowStepMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *WorkflowStepMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the WorkflowStep entity.
// If the WorkflowStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowStepMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *WorkflowStepMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearWorkflow clears the "workflow" edge to the Workflow entity.
func (m *WorkflowStepMutation) ClearWorkflow() {
	m.clearedworkflow = true
	m.clearedFields[workflowstep.FieldWorkflowID] = struct{}{}
}

// WorkflowCleared reports if the "workflow" edge to the Workflow entity was cleared.
func (m *WorkflowStepMutation) WorkflowCleared() bool {
	return m.clearedworkflow
}

// WorkflowIDs returns the "workflow" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WorkflowID instead. It exists only for internal usage by the builders.
func (m *WorkflowStepMutation) WorkflowIDs() (ids []int) {
	if id := m.workflow; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWorkflow resets all changes to the "workflow" edge.
func (m *WorkflowStepMutation) ResetWorkflow() {
	m.workflow = nil
	m.clearedworkflow = false
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (m *WorkflowStepMutation) ClearAgent() {
	m.clearedagent = true
	m.clearedFields[workflowstep.FieldAgentID] = struct{}{}
}

// AgentCleared reports if the "agent" edge to the Agent entity was cleared.
func (m *WorkflowStepMutation) AgentCleared() bool {
	return m.AgentIDCleared() || m.clearedagent
}

// AgentIDs returns the "agent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AgentID instead. It exists only for internal usage by the builders.
func (m *WorkflowStepMutation) AgentIDs() (ids []int) {
	if id := m.agent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAgent resets all changes to the "agent" edge.
func (m *WorkflowStepMutation) ResetAgent() {
	m.agent = nil
	m.clearedagent = false
}

// AddAgentExecutionIDs adds the "agent_executions" edge to the AgentExecution entity by ids.
func (m *WorkflowStepMutation) AddAgentExecutionIDs(ids ...int) {
	if m.agent_executions == nil {
		m.agent_executions = make(map[int]struct{})
	}
	for i := range ids {
		m.agent_executions[ids[i]] = struct{}{}
	}
}

// ClearAgentExecutions clears the "agent_executions" edge to the AgentExecution entity.
func (m *WorkflowStepMutation) ClearAgentExecutions() {
	m.clearedagent_executions = true
}

// AgentExecutionsCleared reports if the "agent_executions" edge to the AgentExecution entity was cleared.
func (m *WorkflowStepMutation) AgentExecutionsCleared() bool {
	return m.clearedagent_executions
}

// RemoveAgentExecutionIDs removes the "agent_executions" edge to the AgentExecution entity by IDs.
func (m *WorkflowStepMutation) RemoveAgentExecutionIDs(ids ...int) {
	if m.removedagent_executions == nil {
		m.removedagent_executions = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.agent_executions, ids[i])
		m.removedagent_executions[ids[i]] = struct{}{}
	}
}

// RemovedAgentExecutions returns the removed IDs of the "agent_executions" edge to the AgentExecution entity.
func (m *WorkflowStepMutation) RemovedAgentExecutionsIDs() (ids []int) {
	for id := range m.removedagent_executions {
		ids = append(ids, id)
	}
	return
}

// AgentExecutionsIDs returns the "agent_executions" edge IDs in the mutation.
func (m *WorkflowStepMutation) AgentExecutionsIDs() (ids []int) {
	for id := range m.agent_executions {
		ids = append(ids, id)
	}
	return
}

// ResetAgentExecutions resets all changes to the "agent_executions" edge.
func (m *WorkflowStepMutation) ResetAgentExecutions() {
	m.agent_executions = nil
	m.clearedagent_executions = false
	m.removedagent_executions = nil
}

// AddApprovalRequestIDs adds the "approval_requests" edge to the ApprovalRequest entity by ids.
func (m *WorkflowStepMutation) AddApprovalRequestIDs(ids ...int) {
	if m.approval_requests == nil {
		m.approval_requests = make(map[int]struct{})
	}
	for i := range ids {
		m.approval_requests[ids[i]] = struct{}{}
	}
}

// ClearApprovalRequests clears the "approval_requests" edge to the ApprovalRequest entity.
func (m *WorkflowStepMutation) ClearApprovalRequests() {
	m.clearedapproval_requests = true
}

// ApprovalRequestsCleared reports if the "approval_requests" edge to the ApprovalRequest entity was cleared.
func (m *WorkflowStepMutation) ApprovalRequestsCleared() bool {
	return m.clearedapproval_requests
}

// RemoveApprovalRequestIDs removes the "approval_requests" edge to the ApprovalRequest entity by IDs.
func (m *WorkflowStepMutation) RemoveApprovalRequestIDs(ids ...int) {
	if m.removedapproval_requests == nil {
		m.removedapproval_requests = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.approval_requests, ids[i])
		m.removedapproval_requests[ids[i]] = struct{}{}
	}
}

// RemovedApprovalRequests returns the removed IDs of the "approval_requests" edge to the ApprovalRequest entity.
func (m *WorkflowStepMutation) RemovedApprovalRequestsIDs() (ids []int) {
	for id := range m.removedapproval_requests {
		ids = append(ids, id)
	}
	return
}

// ApprovalRequestsIDs returns the "approval_requests" edge IDs in the mutation.
func (m *WorkflowStepMutation) ApprovalRequestsIDs() (ids []int) {
	for id := range m.approval_requests {
		ids = append(ids, id)
	}
	return
}

// ResetApprovalRequests resets all changes to the "approval_requests" edge.
func (m *WorkflowStepMutation) ResetApprovalRequests() {
	m.approval_requests = nil
	m.clearedapproval_requests = false
	m.removedapproval_requests = nil
}

// Where appends a list predicates to the WorkflowStepMutation builder.
func (m *WorkflowStepMutation) Where(ps ...predicate.WorkflowStep) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorkflowStepMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorkflowStepMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WorkflowStep, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorkflowStepMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorkflowStepMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WorkflowStep).
func (m *WorkflowStepMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorkflowStepMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.workflow != nil {
		fields = append(fields, workflowstep.FieldWorkflowID)
	}
	if m.step_order != nil {
		fields = append(fields, workflowstep.FieldStepOrder)
	}
	if m.step_type != nil {
		fields = append(fields, workflowstep.FieldStepType)
	}
	if m.agent != nil {
		fields = append(fields, workflowstep.FieldAgentID)
	}
	if m.name != nil {
		fields = append(fields, workflowstep.FieldName)
	}
	if m.input_mapping != nil {
		fields = append(fields, workflowstep.FieldInputMapping)
	}
	if m.output_variable != nil {
		fields = append(fields, workflowstep.FieldOutputVariable)
	}
	if m.condition_expression != nil {
		fields = append(fields, workflowstep.FieldConditionExpression)
	}
	if m.depends_on != nil {
		fields = append(fields, workflowstep.FieldDependsOn)
	}
	if m.approval_config != nil {
		fields = append(fields, workflowstep.FieldApprovalConfig)
	}
	if m.retry_config != nil {
		fields = append(fields, workflowstep.FieldRetryConfig)
	}
	if m.timeout_seconds != nil {
		fields = append(fields, workflowstep.FieldTimeoutSeconds)
	}
	if m.created_at != nil {
		fields = append(fields, workflowstep.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, workflowstep.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorkflowStepMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case workflowstep.FieldWorkflowID:
		return m.WorkflowID()
	case workflowstep.FieldStepOrder:
		return m.StepOrder()
	case workflowstep.FieldStepType:
		return m.StepType()
	case workflowstep.FieldAgentID:
		return m.AgentID()
	case workflowstep.FieldName:
		return m.Name()
	case workflowstep.FieldInputMapping:
		return m.InputMapping()
	case workflowstep.FieldOutputVariable:
		return m.OutputVariable()
	case workflowstep.FieldConditionExpression:
		return m.ConditionExpression()
	case workflowstep.FieldDependsOn:
		return m.DependsOn()
	case workflowstep.FieldApprovalConfig:
		return m.ApprovalConfig()
	case workflowstep.FieldRetryConfig:
		return m.RetryConfig()
	case workflowstep.FieldTimeoutSeconds:
		return m.TimeoutSeconds()
	case workflowstep.FieldCreatedAt:
		return m.CreatedAt()
	case workflowstep.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorkflowStepMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case workflowstep.FieldWorkflowID:
		return m.OldWorkflowID(ctx)
	case workflowstep.FieldStepOrder:
		return m.OldStepOrder(ctx)
	case workflowstep.FieldStepType:
		return m.OldStepType(ctx)
	case workflowstep.FieldAgentID:
		return m.OldAgentID(ctx)
	case workflowstep.FieldName:
		return m.OldName(ctx)
	case workflowstep.FieldInputMapping:
		return m.OldInputMapping(ctx)
	case workflowstep.FieldOutputVariable:
		return m.OldOutputVariable(ctx)
	case workflowstep.FieldConditionExpression:
		return m.OldConditionExpression(ctx)
	case workflowstep.FieldDependsOn:
		return m.OldDependsOn(ctx)
	case workflowstep.FieldApprovalConfig:
		return m.OldApprovalConfig(ctx)
	case workflowstep.FieldRetryConfig:
		return m.OldRetryConfig(ctx)
	case workflowstep.FieldTimeoutSeconds:
		return m.OldTimeoutSeconds(ctx)
	case workflowstep.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case workflowstep.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown WorkflowStep field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowStepMutation) SetField(name string, value ent.Value) error {
	switch name {
	case workflowstep.FieldWorkflowID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkflowID(v)
		return nil
	case workflowstep.FieldStepOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepOrder(v)
		return nil
	case workflowstep.FieldStepType:
		v, ok := value.(workflowstep.StepType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepType(v)
		return nil
	case workflowstep.FieldAgentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case workflowstep.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case workflowstep.FieldInputMapping:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputMapping(v)
		return nil
	case workflowstep.FieldOutputVariable:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputVariable(v)
		return nil
	case workflowstep.FieldConditionExpression:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConditionExpression(v)
		return nil
	case workflowstep.FieldDependsOn:
		v, ok := value.([]int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDependsOn(v)
		return nil
	case workflowstep.FieldApprovalConfig:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApprovalConfig(v)
		return nil
	case workflowstep.FieldRetryConfig:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryConfig(v)
		return nil
	case workflowstep.FieldTimeoutSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeoutSeconds(v)
		return nil
	case workflowstep.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case workflowstep.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown WorkflowStep field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorkflowStepMutation) AddedFields() []string {
	var fields []string
	if m.addstep_order != nil {
		fields = append(fields, workflowstep.FieldStepOrder)
	}
	if m.addtimeout_seconds != nil {
		fields = append(fields, workflowstep.FieldTimeoutSeconds)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorkflowStepMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case workflowstep.FieldStepOrder:
		return m.AddedStepOrder()
	case workflowstep.FieldTimeoutSeconds:
		return m.AddedTimeoutSeconds()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowStepMutation) AddField(name string, value ent.Value) error {
	switch name {
	case workflowstep.FieldStepOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStepOrder(v)
		return nil
	case workflowstep.FieldTimeoutSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeoutSeconds(v)
		return nil
	}
	return fmt.Errorf("unknown WorkflowStep numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorkflowStepMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(workflowstep.FieldAgentID) {
		fields = append(fields, workflowstep.FieldAgentID)
	}
	if m.FieldCleared(workflowstep.FieldInputMapping) {
		fields = append(fields, workflowstep.FieldInputMapping)
	}
	if m.FieldCleared(workflowstep.FieldOutputVariable) {
		fields = append(fields, workflowstep.FieldOutputVariable)
	}
	if m.FieldCleared(workflowstep.FieldConditionExpression) {
		fields = append(fields, workflowstep.FieldConditionExpression)
	}
	if m.FieldCleared(workflowstep.FieldDependsOn) {
		fields = append(fields, workflowstep.FieldDependsOn)
	}
	if m.FieldCleared(workflowstep.FieldApprovalConfig) {
		fields = append(fields, workflowstep.FieldApprovalConfig)
	}
	if m.FieldCleared(workflowstep.FieldRetryConfig) {
		fields = append(fields, workflowstep.FieldRetryConfig)
	}
	if m.FieldCleared(workflowstep.FieldTimeoutSeconds) {
		fields = append(fields, workflowstep.FieldTimeoutSeconds)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorkflowStepMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorkflowStepMutation) ClearField(name string) error {
	switch name {
	case workflowstep.FieldAgentID:
		m.ClearAgentID()
		return nil
	case workflowstep.FieldInputMapping:
		m.ClearInputMapping()
		return nil
	case workflowstep.FieldOutputVariable:
		m.ClearOutputVariable()
		return nil
	case workflowstep.FieldConditionExpression:
		m.ClearConditionExpression()
		return nil
	case workflowstep.FieldDependsOn:
		m.ClearDependsOn()
		return nil
	case workflowstep.FieldApprovalConfig:
		m.ClearApprovalConfig()
		return nil
	case workflowstep.FieldRetryConfig:
		m.ClearRetryConfig()
		return nil
	case workflowstep.FieldTimeoutSeconds:
		m.ClearTimeoutSeconds()
		return nil
	}
	return fmt.Errorf("unknown WorkflowStep nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorkflowStepMutation) ResetField(name string) error {
	switch name {
	case workflowstep.FieldWorkflowID:
		m.ResetWorkflowID()
		return nil
	case workflowstep.FieldStepOrder:
		m.ResetStepOrder()
		return nil
	case workflowstep.FieldStepType:
		m.ResetStepType()
		return nil
	case workflowstep.FieldAgentID:
		m.ResetAgentID()
		return nil
	case workflowstep.FieldName:
		m.ResetName()
		return nil
	case workflowstep.FieldInputMapping:
		m.ResetInputMapping()
		return nil
	case workflowstep.FieldOutputVariable:
		m.ResetOutputVariable()
		return nil
	case workflowstep.FieldConditionExpression:
		m.ResetConditionExpression()
		return nil
	case workflowstep.FieldDependsOn:
		m.ResetDependsOn()
		return nil
	case workflowstep.FieldApprovalConfig:
		m.ResetApprovalConfig()
		return nil
	case workflowstep.FieldRetryConfig:
		m.ResetRetryConfig()
		return nil
	case workflowstep.FieldTimeoutSeconds:
		m.ResetTimeoutSeconds()
		return nil
	case workflowstep.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case workflowstep.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown WorkflowStep field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorkflowStepMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.workflow != nil {
		edges = append(edges, workflowstep.EdgeWorkflow)
	}
	if m.agent != nil {
		edges = append(edges, workflowstep.EdgeAgent)
	}
	if m.agent_executions != nil {
		edges = append(edges, workflowstep.EdgeAgentExecutions)
	}
	if m.approval_requests != nil {
		edges = append(edges, workflowstep.EdgeApprovalRequests)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorkflowStepMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case workflowstep.EdgeWorkflow:
		if id := m.workflow; id != nil {
			return []ent.Value{*id}
		}
	case workflowstep.EdgeAgent:
		if id := m.agent; id != nil {
			return []ent.Value{*id}
		}
	case workflowstep.EdgeAgentExecutions:
		ids := make([]ent.Value, 0, len(m.agent_executions))
		for id := range m.agent_executions {
			ids = append(ids, id)
		}
		return ids
	case workflowstep.EdgeApprovalRequests:
		ids := make([]ent.Value, 0, len(m.approval_requests))
		for id := range m.approval_requests {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorkflowStepMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedagent_executions != nil {
		edges = append(edges, workflowstep.EdgeAgentExecutions)
	}
	if m.removedapproval_requests != nil {
		edges = append(edges, workflowstep.EdgeApprovalRequests)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorkflowStepMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case workflowstep.EdgeAgentExecutions:
		ids := make([]ent.Value, 0, len(m.removedagent_executions))
		for id := range m.removedagent_executions {
			ids = append(ids, id)
		}
		return ids
	case workflowstep.EdgeApprovalRequests:
		ids := make([]ent.Value, 0, len(m.removedapproval_requests))
		for id := range m.removedapproval_requests {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorkflowStepMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedworkflow {
		edges = append(edges, workflowstep.EdgeWorkflow)
	}
	if m.clearedagent {
		edges = append(edges, workflowstep.EdgeAgent)
	}
	if m.clearedagent_executions {
		edges = append(edges, workflowstep.EdgeAgentExecutions)
	}
	if m.clearedapproval_requests {
		edges = append(edges, workflowstep.EdgeApprovalRequests)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorkflowStepMutation) EdgeCleared(name string) bool {
	switch name {
	case workflowstep.EdgeWorkflow:
		return m.clearedworkflow
	case workflowstep.EdgeAgent:
		return m.clearedagent
	case workflowstep.EdgeAgentExecutions:
		return m.clearedagent_executions
	case workflowstep.EdgeApprovalRequests:
		return m.clearedapproval_requests
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorkflowStepMutation) ClearEdge(name string) error {
	switch name {
	case workflowstep.EdgeWorkflow:
		m.ClearWorkflow()
		return nil
	case workflowstep.EdgeAgent:
		m.ClearAgent()
		return nil
	}
	return fmt.Errorf("unknown WorkflowStep unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorkflowStepMutation) ResetEdge(name string) error {
	switch name {
	case workflowstep.EdgeWorkflow:
		m.ResetWorkflow()
		return nil
	case workflowstep.EdgeAgent:
		m.ResetAgent()
		return nil
	case workflowstep.EdgeAgentExecutions:
		m.ResetAgentExecutions()
		return nil
	case workflowstep.EdgeApprovalRequests:
		m.ResetApprovalRequests()
		return nil
	}
	return fmt.Errorf("unknown WorkflowStep edge %s", name)
}
