package provisioning

import (
	"fmt"
	"time"
)

// RunStage reconciles a stage's resources in order, failing fast on the
// first fatal outcome, then runs the post-step.
func RunStage(ctx *Context, stage Stage) StageResult {
	start := time.Now()
	result := StageResult{StageID: stage.ID}

	LogStageStart(ctx.Observer, stage.ID)

	resources := stage.Resources(ctx)
	for i, desc := range resources {
		ctx.Observer.Progress(stage.ID, i+1, len(resources))

		r := Reconcile(ctx, desc)
		result.Results = append(result.Results, r)
		ctx.Observer.Printf("  %s", r)

		if r.Failed() {
			result.Err = fmt.Errorf("resource %s/%s failed: %s", r.Kind, r.Name, r.Detail)
			LogStageFailed(ctx.Observer, stage.ID, result.Err)
			return result
		}
	}

	if stage.Post != nil {
		if err := stage.Post(ctx); err != nil {
			result.Err = fmt.Errorf("post-step failed: %w", err)
			LogStageFailed(ctx.Observer, stage.ID, result.Err)
			return result
		}
	}

	ctx.Observer.Printf("  summary: %s", result.Summary())
	LogStageComplete(ctx.Observer, stage.ID, time.Since(start))
	return result
}
