package usecase

import (
	"context"

	"crm/internal/domain/entity"
	"crm/internal/domain/workflow"
)

// ComplaintFilter narrows complaint listings. Zero values match everything.
type ComplaintFilter struct {
	Status     entity.ComplaintStatus
	Priority   entity.ComplaintPriority
	AssignedTo string
	CustomerID string
}

// ComplaintUsecase defines the complaint lifecycle operations
type ComplaintUsecase interface {
	// List returns complaints newest first
	List(ctx context.Context, filter ComplaintFilter) ([]entity.Complaint, error)

	// Get returns one complaint
	Get(ctx context.Context, id string) (*entity.Complaint, error)

	// Register opens a new complaint
	Register(ctx context.Context, actor entity.Actor, in workflow.NewComplaint) (*Result[entity.Complaint], error)

	// ApplyAction moves a complaint to another status
	ApplyAction(ctx context.Context, actor entity.Actor, id string, cmd workflow.Command) (*Result[entity.Complaint], error)

	// AddLog appends a note to the complaint log
	AddLog(ctx context.Context, actor entity.Actor, id, note string) (*Result[entity.Complaint], error)

	// AllowedActions lists the transitions the actor may take on the complaint
	AllowedActions(ctx context.Context, actor entity.Actor, id string) ([]workflow.Option, error)
}
