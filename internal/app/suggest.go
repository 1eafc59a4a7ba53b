package app

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/amonks/devflow/store"
	"github.com/amonks/devflow/suggest"
)

// RequestLearning asks the learning service about question, or a random
// prompt when question is blank. The outcome always lands in the learning
// panel; failures are described there and never touch the task data.
func (a *App) RequestLearning(ctx context.Context, question string) store.LearningPanel {
	question = strings.TrimSpace(question)
	if question == "" {
		question = suggest.PickQuestion(nil)
	}
	request := a.Store.Dispatch(store.RequestLearning{Question: question}).Learning.Request

	items, err := a.Learning.Recommend(ctx, question)
	if err != nil {
		a.log.Warn("learning request failed", zap.Error(err))
		return a.Store.Dispatch(store.ReceiveLearning{Request: request, Err: suggest.Describe(err)}).Learning
	}
	return a.Store.Dispatch(store.ReceiveLearning{Request: request, Items: items}).Learning
}

// RequestPlan sends the current tasks to the planner service.
func (a *App) RequestPlan(ctx context.Context) store.PlannerPanel {
	st := a.Store.Dispatch(store.RequestPlan{})
	request := st.Planner.Request

	items, err := a.Planner.Plan(ctx, st.Tasks)
	if err != nil {
		a.log.Warn("plan request failed", zap.Error(err))
		return a.Store.Dispatch(store.ReceivePlan{Request: request, Err: suggest.Describe(err)}).Planner
	}
	return a.Store.Dispatch(store.ReceivePlan{Request: request, Items: suggest.NormalizePlan(items)}).Planner
}
