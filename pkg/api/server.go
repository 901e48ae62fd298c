// Package api exposes the admin HTTP surface: CRUD for agents, tools,
// workflows, steps, schedules and knowledge entries, execution monitoring,
// approval decisions, and health probes. Every response uses the
// {success, message, data, error} envelope.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/batonworks/baton/pkg/approval"
	"github.com/batonworks/baton/pkg/database"
	"github.com/batonworks/baton/pkg/orchestrator"
	"github.com/batonworks/baton/pkg/queue"
	"github.com/batonworks/baton/pkg/services"
)

// Server is the admin HTTP server
type Server struct {
	db              *database.Client
	agents          *services.AgentService
	tools           *services.ToolService
	workflows       *services.WorkflowService
	executions      *services.ExecutionService
	agentExecutions *services.AgentExecutionService
	approvals       *services.ApprovalService
	schedules       *services.ScheduleService
	knowledge       *services.KnowledgeService
	orchestrator    *orchestrator.Orchestrator
	coordinator     *approval.Coordinator
	pool            *queue.WorkerPool

	httpServer *http.Server
}

// Deps bundles the server's collaborators
type Deps struct {
	DB              *database.Client
	Agents          *services.AgentService
	Tools           *services.ToolService
	Workflows       *services.WorkflowService
	Executions      *services.ExecutionService
	AgentExecutions *services.AgentExecutionService
	Approvals       *services.ApprovalService
	Schedules       *services.ScheduleService
	Knowledge       *services.KnowledgeService
	Orchestrator    *orchestrator.Orchestrator
	Coordinator     *approval.Coordinator
	Pool            *queue.WorkerPool
}

// NewServer creates the admin HTTP server
func NewServer(deps Deps) *Server {
	return &Server{
		db:              deps.DB,
		agents:          deps.Agents,
		tools:           deps.Tools,
		workflows:       deps.Workflows,
		executions:      deps.Executions,
		agentExecutions: deps.AgentExecutions,
		approvals:       deps.Approvals,
		schedules:       deps.Schedules,
		knowledge:       deps.Knowledge,
		orchestrator:    deps.Orchestrator,
		coordinator:     deps.Coordinator,
		pool:            deps.Pool,
	}
}

// Router builds the gin engine with all routes registered
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestID(), requestLogger())

	router.GET("/health", s.health)
	router.GET("/health/ready", s.ready)

	v1 := router.Group("/api/v1")

	agents := v1.Group("/agents")
	agents.GET("", s.listAgents)
	agents.POST("", s.createAgent)
	agents.GET("/:id", s.getAgent)
	agents.PUT("/:id", s.updateAgent)
	agents.DELETE("/:id", s.deleteAgent)
	agents.POST("/:id/activate", s.setAgentActive(true))
	agents.POST("/:id/deactivate", s.setAgentActive(false))
	agents.GET("/:id/tools", s.listAgentTools)
	agents.POST("/:id/tools", s.assignTool)
	agents.DELETE("/:id/tools/:toolId", s.removeTool)

	tools := v1.Group("/tools")
	tools.GET("", s.listTools)
	tools.POST("", s.createTool)
	tools.GET("/:id", s.getTool)
	tools.PUT("/:id", s.updateTool)
	tools.DELETE("/:id", s.deleteTool)
	tools.POST("/:id/activate", s.setToolActive(true))
	tools.POST("/:id/deactivate", s.setToolActive(false))

	workflows := v1.Group("/workflows")
	workflows.GET("", s.listWorkflows)
	workflows.POST("", s.createWorkflow)
	workflows.GET("/:id", s.getWorkflow)
	workflows.PUT("/:id", s.updateWorkflow)
	workflows.DELETE("/:id", s.deleteWorkflow)
	workflows.POST("/:id/activate", s.setWorkflowActive(true))
	workflows.POST("/:id/deactivate", s.setWorkflowActive(false))
	workflows.GET("/:id/steps", s.listSteps)
	workflows.POST("/:id/steps", s.addStep)
	workflows.PUT("/:id/steps/:stepId", s.updateStep)
	workflows.DELETE("/:id/steps/:stepId", s.deleteStep)
	workflows.POST("/:id/steps/reorder", s.reorderSteps)
	workflows.POST("/:id/execute", s.executeWorkflow)
	workflows.GET("/:id/schedules", s.listWorkflowSchedules)

	executions := v1.Group("/executions")
	executions.GET("", s.listExecutions)
	executions.GET("/:id", s.getExecution)
	executions.POST("/:id/cancel", s.cancelExecution)
	executions.GET("/:id/agent-executions", s.listAgentExecutions)

	approvals := v1.Group("/approvals")
	approvals.GET("/pending", s.listPendingApprovals)
	approvals.GET("/pending/count", s.countPendingApprovals)
	approvals.GET("/execution/:id", s.listApprovalsByExecution)
	approvals.POST("/:id/approve", s.approveRequest)
	approvals.POST("/:id/reject", s.rejectRequest)

	schedules := v1.Group("/schedules")
	schedules.GET("", s.listSchedules)
	schedules.POST("", s.createSchedule)
	schedules.GET("/:id", s.getSchedule)
	schedules.PUT("/:id", s.updateSchedule)
	schedules.DELETE("/:id", s.deleteSchedule)
	schedules.POST("/:id/cancel", s.setScheduleEnabled(false))
	schedules.POST("/:id/reactivate", s.setScheduleEnabled(true))

	knowledge := v1.Group("/knowledge")
	knowledge.GET("", s.listKnowledge)
	knowledge.POST("", s.createKnowledge)
	knowledge.GET("/:id", s.getKnowledge)
	knowledge.PUT("/:id", s.updateKnowledge)
	knowledge.DELETE("/:id", s.deleteKnowledge)

	return router
}

// Start begins serving on addr. Blocks until the server stops
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.Router(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 0, // sync workflow executions may run long
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown stops the server gracefully
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
