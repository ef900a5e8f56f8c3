package usecase

import (
	"context"

	"crm/internal/domain/entity"
)

// TaskUsecase defines follow-up and daily feedback task operations
type TaskUsecase interface {
	ListFollowUps(ctx context.Context, status entity.FollowUpStatus) ([]entity.FollowUpTask, error)
	ResolveFollowUp(ctx context.Context, actor entity.Actor, id, notes string) (*Result[entity.FollowUpTask], error)

	ListFeedbackTasks(ctx context.Context, status entity.DailyFeedbackStatus) ([]entity.DailyFeedbackTask, error)

	// GenerateFeedbackTasks creates pending tasks for recent invoices that have none
	GenerateFeedbackTasks(ctx context.Context, actor entity.Actor) (*Result[int], error)
}
