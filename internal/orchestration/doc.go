// Package orchestration coordinates the multi-stage setup workflow.
//
// The Manager owns the persisted state machine: it loads the checkpoint
// document, picks the lowest non-completed stage, marks it in-progress
// before execution and completed or failed immediately after, and never
// advances past a failure. Because every resource is reconciled with
// describe-then-act semantics, re-running an interrupted or failed stage
// from the top is safe.
//
// # Usage
//
//	mgr := orchestration.NewManager(store, controlPlane)
//	doc, err := mgr.Configure(ctx, runContext)
//	err = mgr.Run(ctx)          // fresh run or resume, same path
//	err = mgr.Rerun(ctx, "compute")
package orchestration
