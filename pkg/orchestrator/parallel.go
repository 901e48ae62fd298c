package orchestrator

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/batonworks/baton/ent"
	"github.com/batonworks/baton/ent/workflowstep"
	"github.com/batonworks/baton/pkg/engine"
	"github.com/batonworks/baton/pkg/expr"
)

// maxParallelWidth bounds the concurrent gather of a parallel group
const maxParallelWidth = 8

type subResult struct {
	output  map[string]interface{}
	skipped bool
	err     error
}

// collectParallelGroup returns the steps grouped under a parallel step:
// every later step whose depends_on lists the parallel step's order. The
// schema has no dedicated sub-step relation, so depends_on doubles as the
// grouping key
func collectParallelGroup(steps []*ent.WorkflowStep, parallelIdx int) []*ent.WorkflowStep {
	parent := steps[parallelIdx]
	var group []*ent.WorkflowStep
	for _, step := range steps[parallelIdx+1:] {
		for _, dep := range step.DependsOn {
			if dep == parent.StepOrder {
				group = append(group, step)
				break
			}
		}
	}
	return group
}

// runParallelGroup executes a parallel group concurrently against the shared
// context. Successful sub-step outputs land in the context under their own
// output variables; the returned merged document records every sub-step
// under its output variable or a synthetic step_<order> key, with failures
// folded in as {error, stepName} rather than aborting the group
func (o *Orchestrator) runParallelGroup(ctx context.Context, executionID int, group []*ent.WorkflowStep, execCtx map[string]interface{}) map[string]interface{} {
	results := make([]subResult, len(group))

	var g errgroup.Group
	g.SetLimit(maxParallelWidth)
	for i, step := range group {
		g.Go(func() error {
			output, skipped, err := o.runSubStep(ctx, executionID, step, execCtx)
			results[i] = subResult{output: output, skipped: skipped, err: err}
			return nil
		})
	}
	// Sub-step failures are captured in the results, never returned
	_ = g.Wait()

	merged := make(map[string]interface{})
	for i, step := range group {
		res := results[i]
		if res.skipped {
			continue
		}
		key := step.OutputVariable
		if key == "" {
			key = fmt.Sprintf("step_%d", step.StepOrder)
		}
		if res.err != nil {
			o.logger.Error("Parallel sub-step failed",
				"execution_id", executionID, "step", step.Name, "error", res.err)
			merged[key] = map[string]interface{}{
				"error":    res.err.Error(),
				"stepName": step.Name,
			}
			continue
		}
		merged[key] = res.output
		if step.OutputVariable != "" {
			execCtx[step.OutputVariable] = res.output
		}
	}
	return merged
}

// runSubStep executes one member of a parallel group. Members honor their
// own skip predicates, timeouts and retry configs; approval and nested
// parallel steps cannot run inside a group
func (o *Orchestrator) runSubStep(ctx context.Context, executionID int, step *ent.WorkflowStep, execCtx map[string]interface{}) (map[string]interface{}, bool, error) {
	if step.ConditionExpression != "" {
		skip, evalErr := expr.EvaluateBool(execCtx, step.ConditionExpression)
		if evalErr != nil {
			o.logger.Warn("Unrecognized condition expression, step will run",
				"execution_id", executionID, "step", step.Name,
				"expression", step.ConditionExpression, "error", evalErr)
		}
		if skip {
			return nil, true, nil
		}
	}

	switch step.StepType {
	case workflowstep.StepTypeAgent:
		output, err := o.runAgentStep(ctx, executionID, step, execCtx)
		return output, false, err
	case workflowstep.StepTypeCondition:
		return map[string]interface{}{"skipped": true}, false, nil
	default:
		return nil, false, engine.NewErrorf(engine.KindInvalidArgument,
			"step %q: %s steps cannot run inside a parallel group", step.Name, step.StepType)
	}
}
