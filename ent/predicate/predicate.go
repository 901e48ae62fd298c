// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Agent is the predicate function for agent builders.
type Agent func(*sql.Selector)

// AgentExecution is the predicate function for agentexecution builders.
type AgentExecution func(*sql.Selector)

// AgentTool is the predicate function for agenttool builders.
type AgentTool func(*sql.Selector)

// ApprovalRequest is the predicate function for approvalrequest builders.
type ApprovalRequest func(*sql.Selector)

// KnowledgeEntry is the predicate function for knowledgeentry builders.
type KnowledgeEntry func(*sql.Selector)

// Tool is the predicate function for tool builders.
type Tool func(*sql.Selector)

// Workflow is the predicate function for workflow builders.
type Workflow func(*sql.Selector)

// WorkflowExecution is the predicate function for workflowexecution builders.
type WorkflowExecution func(*sql.Selector)

// WorkflowSchedule is the predicate function for workflowschedule builders.
type WorkflowSchedule func(*sql.Selector)

// WorkflowStep is the predicate function for workflowstep builders.
type WorkflowStep func(*sql.Selector)
