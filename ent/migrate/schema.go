// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentsColumns holds the columns for the "agents" table.
	AgentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "system_prompt", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "temperature", Type: field.TypeFloat64, Default: 0.7},
		{Name: "max_tokens", Type: field.TypeInt, Default: 4096},
		{Name: "config", Type: field.TypeJSON, Nullable: true},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// AgentsTable holds the schema information for the "agents" table.
	AgentsTable = &schema.Table{
		Name:       "agents",
		Columns:    AgentsColumns,
		PrimaryKey: []*schema.Column{AgentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agent_active",
				Unique:  false,
				Columns: []*schema.Column{AgentsColumns[8]},
			},
		},
	}
	// AgentExecutionsColumns holds the columns for the "agent_executions" table.
	AgentExecutionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "completed", "failed"}, Default: "pending"},
		{Name: "input", Type: field.TypeJSON, Nullable: true},
		{Name: "output", Type: field.TypeJSON, Nullable: true},
		{Name: "input_tokens", Type: field.TypeInt, Nullable: true},
		{Name: "output_tokens", Type: field.TypeInt, Nullable: true},
		{Name: "tokens_used", Type: field.TypeInt, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "agent_id", Type: field.TypeInt},
		{Name: "execution_id", Type: field.TypeInt, Nullable: true},
		{Name: "step_id", Type: field.TypeInt, Nullable: true},
	}
	// AgentExecutionsTable holds the schema information for the "agent_executions" table.
	AgentExecutionsTable = &schema.Table{
		Name:       "agent_executions",
		Columns:    AgentExecutionsColumns,
		PrimaryKey: []*schema.Column{AgentExecutionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agent_executions_agents_executions",
				Columns:    []*schema.Column{AgentExecutionsColumns[12]},
				RefColumns: []*schema.Column{AgentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "agent_executions_workflow_executions_agent_executions",
				Columns:    []*schema.Column{AgentExecutionsColumns[13]},
				RefColumns: []*schema.Column{WorkflowExecutionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "agent_executions_workflow_steps_agent_executions",
				Columns:    []*schema.Column{AgentExecutionsColumns[14]},
				RefColumns: []*schema.Column{WorkflowStepsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agentexecution_execution_id",
				Unique:  false,
				Columns: []*schema.Column{AgentExecutionsColumns[13]},
			},
			{
				Name:    "agentexecution_agent_id_status",
				Unique:  false,
				Columns: []*schema.Column{AgentExecutionsColumns[12], AgentExecutionsColumns[1]},
			},
			{
				Name:    "agentexecution_status",
				Unique:  false,
				Columns: []*schema.Column{AgentExecutionsColumns[1]},
			},
		},
	}
	// AgentToolsColumns holds the columns for the "agent_tools" table.
	AgentToolsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "config", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "agent_id", Type: field.TypeInt},
		{Name: "tool_id", Type: field.TypeInt},
	}
	// AgentToolsTable holds the schema information for the "agent_tools" table.
	AgentToolsTable = &schema.Table{
		Name:       "agent_tools",
		Columns:    AgentToolsColumns,
		PrimaryKey: []*schema.Column{AgentToolsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agent_tools_agents_agent_tools",
				Columns:    []*schema.Column{AgentToolsColumns[3]},
				RefColumns: []*schema.Column{AgentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "agent_tools_tools_agent_tools",
				Columns:    []*schema.Column{AgentToolsColumns[4]},
				RefColumns: []*schema.Column{ToolsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agenttool_agent_id_tool_id",
				Unique:  true,
				Columns: []*schema.Column{AgentToolsColumns[3], AgentToolsColumns[4]},
			},
		},
	}
	// ApprovalRequestsColumns holds the columns for the "approval_requests" table.
	ApprovalRequestsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "approved", "rejected", "timeout"}, Default: "pending"},
		{Name: "required_role", Type: field.TypeString, Nullable: true},
		{Name: "approved_by", Type: field.TypeString, Nullable: true},
		{Name: "approved_at", Type: field.TypeTime, Nullable: true},
		{Name: "comments", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "timeout_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "execution_id", Type: field.TypeInt},
		{Name: "step_id", Type: field.TypeInt},
	}
	// ApprovalRequestsTable holds the schema information for the "approval_requests" table.
	ApprovalRequestsTable = &schema.Table{
		Name:       "approval_requests",
		Columns:    ApprovalRequestsColumns,
		PrimaryKey: []*schema.Column{ApprovalRequestsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "approval_requests_workflow_executions_approval_requests",
				Columns:    []*schema.Column{ApprovalRequestsColumns[9]},
				RefColumns: []*schema.Column{WorkflowExecutionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "approval_requests_workflow_steps_approval_requests",
				Columns:    []*schema.Column{ApprovalRequestsColumns[10]},
				RefColumns: []*schema.Column{WorkflowStepsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "approvalrequest_status",
				Unique:  false,
				Columns: []*schema.Column{ApprovalRequestsColumns[1]},
			},
			{
				Name:    "approvalrequest_status_timeout_at",
				Unique:  false,
				Columns: []*schema.Column{ApprovalRequestsColumns[1], ApprovalRequestsColumns[6]},
			},
			{
				Name:    "approvalrequest_execution_id_status",
				Unique:  false,
				Columns: []*schema.Column{ApprovalRequestsColumns[9], ApprovalRequestsColumns[1]},
			},
		},
	}
	// KnowledgeEntriesColumns holds the columns for the "knowledge_entries" table.
	KnowledgeEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "title", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "category", Type: field.TypeString, Nullable: true},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// KnowledgeEntriesTable holds the schema information for the "knowledge_entries" table.
	KnowledgeEntriesTable = &schema.Table{
		Name:       "knowledge_entries",
		Columns:    KnowledgeEntriesColumns,
		PrimaryKey: []*schema.Column{KnowledgeEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "knowledgeentry_category",
				Unique:  false,
				Columns: []*schema.Column{KnowledgeEntriesColumns[3]},
			},
		},
	}
	// ToolsColumns holds the columns for the "tools" table.
	ToolsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "tool_type", Type: field.TypeEnum, Enums: []string{"in_process", "external"}, Default: "in_process"},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "input_schema", Type: field.TypeJSON, Nullable: true},
		{Name: "handler", Type: field.TypeString, Nullable: true},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ToolsTable holds the schema information for the "tools" table.
	ToolsTable = &schema.Table{
		Name:       "tools",
		Columns:    ToolsColumns,
		PrimaryKey: []*schema.Column{ToolsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "tool_tool_type",
				Unique:  false,
				Columns: []*schema.Column{ToolsColumns[2]},
			},
			{
				Name:    "tool_active",
				Unique:  false,
				Columns: []*schema.Column{ToolsColumns[6]},
			},
		},
	}
	// WorkflowsColumns holds the columns for the "workflows" table.
	WorkflowsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "trigger_type", Type: field.TypeEnum, Enums: []string{"manual", "scheduled", "event"}, Default: "manual"},
		{Name: "trigger_config", Type: field.TypeJSON, Nullable: true},
		{Name: "execution_mode", Type: field.TypeEnum, Enums: []string{"sync", "async"}, Default: "sync"},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "input_schema", Type: field.TypeJSON, Nullable: true},
		{Name: "interface_type", Type: field.TypeString, Nullable: true},
		{Name: "public", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// WorkflowsTable holds the schema information for the "workflows" table.
	WorkflowsTable = &schema.Table{
		Name:       "workflows",
		Columns:    WorkflowsColumns,
		PrimaryKey: []*schema.Column{WorkflowsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "workflow_trigger_type",
				Unique:  false,
				Columns: []*schema.Column{WorkflowsColumns[3]},
			},
			{
				Name:    "workflow_active",
				Unique:  false,
				Columns: []*schema.Column{WorkflowsColumns[6]},
			},
		},
	}
	// WorkflowExecutionsColumns holds the columns for the "workflow_executions" table.
	WorkflowExecutionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "paused", "completed", "failed", "cancelled"}, Default: "pending"},
		{Name: "trigger_data", Type: field.TypeJSON, Nullable: true},
		{Name: "context", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "current_step_order", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "workflow_id", Type: field.TypeInt},
	}
	// WorkflowExecutionsTable holds the schema information for the "workflow_executions" table.
	WorkflowExecutionsTable = &schema.Table{
		Name:       "workflow_executions",
		Columns:    WorkflowExecutionsColumns,
		PrimaryKey: []*schema.Column{WorkflowExecutionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "workflow_executions_workflows_executions",
				Columns:    []*schema.Column{WorkflowExecutionsColumns[10]},
				RefColumns: []*schema.Column{WorkflowsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "workflowexecution_status",
				Unique:  false,
				Columns: []*schema.Column{WorkflowExecutionsColumns[1]},
			},
			{
				Name:    "workflowexecution_workflow_id_status",
				Unique:  false,
				Columns: []*schema.Column{WorkflowExecutionsColumns[10], WorkflowExecutionsColumns[1]},
			},
			{
				Name:    "workflowexecution_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{WorkflowExecutionsColumns[1], WorkflowExecutionsColumns[6]},
			},
		},
	}
	// WorkflowSchedulesColumns holds the columns for the "workflow_schedules" table.
	WorkflowSchedulesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "cron_expression", Type: field.TypeString},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "last_run_at", Type: field.TypeTime, Nullable: true},
		{Name: "next_run_at", Type: field.TypeTime},
		{Name: "trigger_data", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "workflow_id", Type: field.TypeInt},
	}
	// WorkflowSchedulesTable holds the schema information for the "workflow_schedules" table.
	WorkflowSchedulesTable = &schema.Table{
		Name:       "workflow_schedules",
		Columns:    WorkflowSchedulesColumns,
		PrimaryKey: []*schema.Column{WorkflowSchedulesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "workflow_schedules_workflows_schedules",
				Columns:    []*schema.Column{WorkflowSchedulesColumns[8]},
				RefColumns: []*schema.Column{WorkflowsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "workflowschedule_enabled_next_run_at",
				Unique:  false,
				Columns: []*schema.Column{WorkflowSchedulesColumns[2], WorkflowSchedulesColumns[4]},
			},
		},
	}
	// WorkflowStepsColumns holds the columns for the "workflow_steps" table.
	WorkflowStepsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "step_order", Type: field.TypeInt},
		{Name: "step_type", Type: field.TypeEnum, Enums: []string{"agent", "condition", "approval", "parallel"}},
		{Name: "name", Type: field.TypeString},
		{Name: "input_mapping", Type: field.TypeJSON, Nullable: true},
		{Name: "output_variable", Type: field.TypeString, Nullable: true},
		{Name: "condition_expression", Type: field.TypeString, Nullable: true},
		{Name: "depends_on", Type: field.TypeJSON, Nullable: true},
		{Name: "approval_config", Type: field.TypeJSON, Nullable: true},
		{Name: "retry_config", Type: field.TypeJSON, Nullable: true},
		{Name: "timeout_seconds", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "agent_id", Type: field.TypeInt, Nullable: true},
		{Name: "workflow_id", Type: field.TypeInt},
	}
	// WorkflowStepsTable holds the schema information for the "workflow_steps" table.
	WorkflowStepsTable = &schema.Table{
		Name:       "workflow_steps",
		Columns:    WorkflowStepsColumns,
		PrimaryKey: []*schema.Column{WorkflowStepsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "workflow_steps_agents_steps",
				Columns:    []*schema.Column{WorkflowStepsColumns[13]},
				RefColumns: []*schema.Column{AgentsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "workflow_steps_workflows_steps",
				Columns:    []*schema.Column{WorkflowStepsColumns[14]},
				RefColumns: []*schema.Column{WorkflowsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "workflowstep_workflow_id_step_order",
				Unique:  true,
				Columns: []*schema.Column{WorkflowStepsColumns[14], WorkflowStepsColumns[1]},
			},
			{
				Name:    "workflowstep_step_type",
				Unique:  false,
				Columns: []*schema.Column{WorkflowStepsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentsTable,
		AgentExecutionsTable,
		AgentToolsTable,
		ApprovalRequestsTable,
		KnowledgeEntriesTable,
		ToolsTable,
		WorkflowsTable,
		WorkflowExecutionsTable,
		WorkflowSchedulesTable,
		WorkflowStepsTable,
	}
)

func init() {
	AgentExecutionsTable.ForeignKeys[0].RefTable = AgentsTable
	AgentExecutionsTable.ForeignKeys[1].RefTable = WorkflowExecutionsTable
	AgentExecutionsTable.ForeignKeys[2].RefTable = WorkflowStepsTable
	AgentToolsTable.ForeignKeys[0].RefTable = AgentsTable
	AgentToolsTable.ForeignKeys[1].RefTable = ToolsTable
	ApprovalRequestsTable.ForeignKeys[0].RefTable = WorkflowExecutionsTable
	ApprovalRequestsTable.ForeignKeys[1].RefTable = WorkflowStepsTable
	WorkflowExecutionsTable.ForeignKeys[0].RefTable = WorkflowsTable
	WorkflowSchedulesTable.ForeignKeys[0].RefTable = WorkflowsTable
	WorkflowStepsTable.ForeignKeys[0].RefTable = AgentsTable
	WorkflowStepsTable.ForeignKeys[1].RefTable = WorkflowsTable
}
