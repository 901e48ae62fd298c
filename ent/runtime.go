// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/batonworks/baton/ent/agent"
	"github.com/batonworks/baton/ent/agentexecution"
	"github.com/batonworks/baton/ent/agenttool"
	"github.com/batonworks/baton/ent/approvalrequest"
	"github.com/batonworks/baton/ent/knowledgeentry"
	"github.com/batonworks/baton/ent/schema"
	"github.com/batonworks/baton/ent/tool"
	"github.com/batonworks/baton/ent/workflow"
	"github.com/batonworks/baton/ent/workflowexecution"
	"github.com/batonworks/baton/ent/workflowschedule"
	"github.com/batonworks/baton/ent/workflowstep"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentFields := schema.Agent{}.Fields()
	_ = agentFields
	// agentDescName is the schema descriptor for name field.
	agentDescName := agentFields[0].Descriptor()
	// agent.NameValidator is a validator for the "name" field. It is called by the builders before save.
	agent.NameValidator = agentDescName.Validators[0].(func(string) error)
	// agentDescProvider is the schema descriptor for provider field.
	agentDescProvider := agentFields[1].Descriptor()
	// agent.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	agent.ProviderValidator = agentDescProvider.Validators[0].(func(string) error)
	// agentDescModel is the schema descriptor for model field.
	agentDescModel := agentFields[2].Descriptor()
	// agent.ModelValidator is a validator for the "model" field. It is called by the builders before save.
	agent.ModelValidator = agentDescModel.Validators[0].(func(string) error)
	// agentDescTemperature is the schema descriptor for temperature field.
	agentDescTemperature := agentFields[4].Descriptor()
	// agent.DefaultTemperature holds the default value on creation for the temperature field.
	agent.DefaultTemperature = agentDescTemperature.Default.(float64)
	// agent.TemperatureValidator is a validator for the "temperature" field. It is called by the builders before save.
	agent.TemperatureValidator = func() func(float64) error {
		validators := agentDescTemperature.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(temperature float64) error {
			for _, fn := range fns {
				if err := fn(temperature); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// agentDescMaxTokens is the schema descriptor for max_tokens field.
	agentDescMaxTokens := agentFields[5].Descriptor()
	// agent.DefaultMaxTokens holds the default value on creation for the max_tokens field.
	agent.DefaultMaxTokens = agentDescMaxTokens.Default.(int)
	// agent.MaxTokensValidator is a validator for the "max_tokens" field. It is called by the builders before save.
	agent.MaxTokensValidator = agentDescMaxTokens.Validators[0].(func(int) error)
	// agentDescActive is the schema descriptor for active field.
	agentDescActive := agentFields[7].Descriptor()
	// agent.DefaultActive holds the default value on creation for the active field.
	agent.DefaultActive = agentDescActive.Default.(bool)
	// agentDescCreatedAt is the schema descriptor for created_at field.
	agentDescCreatedAt := agentFields[8].Descriptor()
	// agent.DefaultCreatedAt holds the default value on creation for the created_at field.
	agent.DefaultCreatedAt = agentDescCreatedAt.Default.(func() time.Time)
	// agentDescUpdatedAt is the schema descriptor for updated_at field.
	agentDescUpdatedAt := agentFields[9].Descriptor()
	// agent.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	agent.DefaultUpdatedAt = agentDescUpdatedAt.Default.(func() time.Time)
	// agent.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	agent.UpdateDefaultUpdatedAt = agentDescUpdatedAt.UpdateDefault.(func() time.Time)
	agentexecutionFields := schema.AgentExecution{}.Fields()
	_ = agentexecutionFields
	// agentexecutionDescCreatedAt is the schema descriptor for created_at field.
	agentexecutionDescCreatedAt := agentexecutionFields[13].Descriptor()
	// agentexecution.DefaultCreatedAt holds the default value on creation for the created_at field.
	agentexecution.DefaultCreatedAt = agentexecutionDescCreatedAt.Default.(func() time.Time)
	agenttoolFields := schema.AgentTool{}.Fields()
	_ = agenttoolFields
	// agenttoolDescCreatedAt is the schema descriptor for created_at field.
	agenttoolDescCreatedAt := agenttoolFields[3].Descriptor()
	// agenttool.DefaultCreatedAt holds the default value on creation for the created_at field.
	agenttool.DefaultCreatedAt = agenttoolDescCreatedAt.Default.(func() time.Time)
	approvalrequestFields := schema.ApprovalRequest{}.Fields()
	_ = approvalrequestFields
	// approvalrequestDescCreatedAt is the schema descriptor for created_at field.
	approvalrequestDescCreatedAt := approvalrequestFields[8].Descriptor()
	// approvalrequest.DefaultCreatedAt holds the default value on creation for the created_at field.
	approvalrequest.DefaultCreatedAt = approvalrequestDescCreatedAt.Default.(func() time.Time)
	// approvalrequestDescUpdatedAt is the schema descriptor for updated_at field.
	approvalrequestDescUpdatedAt := approvalrequestFields[9].Descriptor()
	// approvalrequest.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	approvalrequest.DefaultUpdatedAt = approvalrequestDescUpdatedAt.Default.(func() time.Time)
	// approvalrequest.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	approvalrequest.UpdateDefaultUpdatedAt = approvalrequestDescUpdatedAt.UpdateDefault.(func() time.Time)
	knowledgeentryFields := schema.KnowledgeEntry{}.Fields()
	_ = knowledgeentryFields
	// knowledgeentryDescTitle is the schema descriptor for title field.
	knowledgeentryDescTitle := knowledgeentryFields[0].Descriptor()
	// knowledgeentry.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	knowledgeentry.TitleValidator = knowledgeentryDescTitle.Validators[0].(func(string) error)
	// knowledgeentryDescActive is the schema descriptor for active field.
	knowledgeentryDescActive := knowledgeentryFields[4].Descriptor()
	// knowledgeentry.DefaultActive holds the default value on creation for the active field.
	knowledgeentry.DefaultActive = knowledgeentryDescActive.Default.(bool)
	// knowledgeentryDescCreatedAt is the schema descriptor for created_at field.
	knowledgeentryDescCreatedAt := knowledgeentryFields[5].Descriptor()
	// knowledgeentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	knowledgeentry.DefaultCreatedAt = knowledgeentryDescCreatedAt.Default.(func() time.Time)
	// knowledgeentryDescUpdatedAt is the schema descriptor for updated_at field.
	knowledgeentryDescUpdatedAt := knowledgeentryFields[6].Descriptor()
	// knowledgeentry.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	knowledgeentry.DefaultUpdatedAt = knowledgeentryDescUpdatedAt.Default.(func() time.Time)
	// knowledgeentry.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	knowledgeentry.UpdateDefaultUpdatedAt = knowledgeentryDescUpdatedAt.UpdateDefault.(func() time.Time)
	toolFields := schema.Tool{}.Fields()
	_ = toolFields
	// toolDescName is the schema descriptor for name field.
	toolDescName := toolFields[0].Descriptor()
	// tool.NameValidator is a validator for the "name" field. It is called by the builders before save.
	tool.NameValidator = toolDescName.Validators[0].(func(string) error)
	// toolDescActive is the schema descriptor for active field.
	toolDescActive := toolFields[5].Descriptor()
	// tool.DefaultActive holds the default value on creation for the active field.
	tool.DefaultActive = toolDescActive.Default.(bool)
	// toolDescCreatedAt is the schema descriptor for created_at field.
	toolDescCreatedAt := toolFields[6].Descriptor()
	// tool.DefaultCreatedAt holds the default value on creation for the created_at field.
	tool.DefaultCreatedAt = toolDescCreatedAt.Default.(func() time.Time)
	// toolDescUpdatedAt is the schema descriptor for updated_at field.
	toolDescUpdatedAt := toolFields[7].Descriptor()
	// tool.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	tool.DefaultUpdatedAt = toolDescUpdatedAt.Default.(func() time.Time)
	// tool.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	tool.UpdateDefaultUpdatedAt = toolDescUpdatedAt.UpdateDefault.(func() time.Time)
	workflowFields := schema.Workflow{}.Fields()
	_ = workflowFields
	// workflowDescName is the schema descriptor for name field.
	workflowDescName := workflowFields[0].Descriptor()
	// workflow.NameValidator is a validator for the "name" field. It is called by the builders before save.
	workflow.NameValidator = workflowDescName.Validators[0].(func(string) error)
	// workflowDescActive is the schema descriptor for active field.
	workflowDescActive := workflowFields[5].Descriptor()
	// workflow.DefaultActive holds the default value on creation for the active field.
	workflow.DefaultActive = workflowDescActive.Default.(bool)
	// workflowDescPublic is the schema descriptor for public field.
	workflowDescPublic := workflowFields[8].Descriptor()
	// workflow.DefaultPublic holds the default value on creation for the public field.
	workflow.DefaultPublic = workflowDescPublic.Default.(bool)
	// workflowDescCreatedAt is the schema descriptor for created_at field.
	workflowDescCreatedAt := workflowFields[9].Descriptor()
	// workflow.DefaultCreatedAt holds the default value on creation for the created_at field.
	workflow.DefaultCreatedAt = workflowDescCreatedAt.Default.(func() time.Time)
	// workflowDescUpdatedAt is the schema descriptor for updated_at field.
	workflowDescUpdatedAt := workflowFields[10].Descriptor()
	// workflow.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	workflow.DefaultUpdatedAt = workflowDescUpdatedAt.Default.(func() time.Time)
	// workflow.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	workflow.UpdateDefaultUpdatedAt = workflowDescUpdatedAt.UpdateDefault.(func() time.Time)
	workflowexecutionFields := schema.WorkflowExecution{}.Fields()
	_ = workflowexecutionFields
	// workflowexecutionDescCreatedAt is the schema descriptor for created_at field.
	workflowexecutionDescCreatedAt := workflowexecutionFields[6].Descriptor()
	// workflowexecution.DefaultCreatedAt holds the default value on creation for the created_at field.
	workflowexecution.DefaultCreatedAt = workflowexecutionDescCreatedAt.Default.(func() time.Time)
	// workflowexecutionDescUpdatedAt is the schema descriptor for updated_at field.
	workflowexecutionDescUpdatedAt := workflowexecutionFields[9].Descriptor()
	// workflowexecution.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	workflowexecution.DefaultUpdatedAt = workflowexecutionDescUpdatedAt.Default.(func() time.Time)
	// workflowexecution.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	workflowexecution.UpdateDefaultUpdatedAt = workflowexecutionDescUpdatedAt.UpdateDefault.(func() time.Time)
	workflowscheduleFields := schema.WorkflowSchedule{}.Fields()
	_ = workflowscheduleFields
	// workflowscheduleDescCronExpression is the schema descriptor for cron_expression field.
	workflowscheduleDescCronExpression := workflowscheduleFields[1].Descriptor()
	// workflowschedule.CronExpressionValidator is a validator for the "cron_expression" field. It is called by the builders before save.
	workflowschedule.CronExpressionValidator = workflowscheduleDescCronExpression.Validators[0].(func(string) error)
	// workflowscheduleDescEnabled is the schema descriptor for enabled field.
	workflowscheduleDescEnabled := workflowscheduleFields[2].Descriptor()
	// workflowschedule.DefaultEnabled holds the default value on creation for the enabled field.
	workflowschedule.DefaultEnabled = workflowscheduleDescEnabled.Default.(bool)
	// workflowscheduleDescCreatedAt is the schema descriptor for created_at field.
	workflowscheduleDescCreatedAt := workflowscheduleFields[6].Descriptor()
	// workflowschedule.DefaultCreatedAt holds the default value on creation for the created_at field.
	workflowschedule.DefaultCreatedAt = workflowscheduleDescCreatedAt.Default.(func() time.Time)
	// workflowscheduleDescUpdatedAt is the schema descriptor for updated_at field.
	workflowscheduleDescUpdatedAt := workflowscheduleFields[7].Descriptor()
	// workflowschedule.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	workflowschedule.DefaultUpdatedAt = workflowscheduleDescUpdatedAt.Default.(func() time.Time)
	// workflowschedule.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	workflowschedule.UpdateDefaultUpdatedAt = workflowscheduleDescUpdatedAt.UpdateDefault.(func() time.Time)
	workflowstepFields := schema.WorkflowStep{}.Fields()
	_ = workflowstepFields
	// workflowstepDescStepOrder is the schema descriptor for step_order field.
	workflowstepDescStepOrder := workflowstepFields[1].Descriptor()
	// workflowstep.StepOrderValidator is a validator for the "step_order" field. It is called by the builders before save.
	workflowstep.StepOrderValidator = workflowstepDescStepOrder.Validators[0].(func(int) error)
	// workflowstepDescName is the schema descriptor for name field.
	workflowstepDescName := workflowstepFields[4].Descriptor()
	// workflowstep.NameValidator is a validator for the "name" field. It is called by the builders before save.
	workflowstep.NameValidator = workflowstepDescName.Validators[0].(func(string) error)
	// workflowstepDescCreatedAt is the schema descriptor for created_at field.
	workflowstepDescCreatedAt := workflowstepFields[12].Descriptor()
	// workflowstep.DefaultCreatedAt holds the default value on creation for the created_at field.
	workflowstep.DefaultCreatedAt = workflowstepDescCreatedAt.Default.(func() time.Time)
	// workflowstepDescUpdatedAt is the schema descriptor for updated_at field.
	workflowstepDescUpdatedAt := workflowstepFields[13].Descriptor()
	// workflowstep.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	workflowstep.DefaultUpdatedAt = workflowstepDescUpdatedAt.Default.(func() time.Time)
	// workflowstep.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	workflowstep.UpdateDefaultUpdatedAt = workflowstepDescUpdatedAt.UpdateDefault.(func() time.Time)
}
