// Package impression records customer feedback and derives the follow-up work it implies.
package impression

import (
	"slices"
	"strconv"
	"time"

	"crm/internal/domain/effect"
	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/i18n"
)

// Input is everything Record needs besides the customer and the impression.
type Input struct {
	Actor      entity.Actor
	Branches   []entity.Branch
	Tasks      []entity.DailyFeedbackTask
	FollowUpID string
	Now        time.Time
	Texts      *i18n.Texts
}

// Result is the outcome of recording an impression.
type Result struct {
	Customer       entity.Customer
	FollowUp       *entity.FollowUpTask
	CompletedTasks []entity.DailyFeedbackTask
	Effects        []effect.Effect
}

// CompletedInvoiceIDs lists the invoices whose feedback tasks were completed.
func (r Result) CompletedInvoiceIDs() []string {
	ids := make([]string, 0, len(r.CompletedTasks))
	for _, t := range r.CompletedTasks {
		ids = append(ids, t.InvoiceID)
	}

	return ids
}

// Validate checks the ratings, branch and discovery channel.
func Validate(imp entity.CustomerImpression) error {
	if imp.ProductQualityRating < 1 || imp.ProductQualityRating > 5 {
		return domainerrors.ErrValidationFailed.WithDetails("productQualityRating must be between 1 and 5")
	}
	if imp.BranchExperienceRating < 1 || imp.BranchExperienceRating > 5 {
		return domainerrors.ErrValidationFailed.WithDetails("branchExperienceRating must be between 1 and 5")
	}
	if imp.BranchID == "" {
		return domainerrors.ErrValidationFailed.WithDetails("branchId is required")
	}
	if imp.DiscoveryChannel != "" && !imp.DiscoveryChannel.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown discovery channel " + string(imp.DiscoveryChannel))
	}

	return nil
}

// Record prepends imp to the customer, raises a follow-up when the customer
// switched branches and completes the pending feedback tasks of linked invoices.
func Record(c entity.Customer, imp entity.CustomerImpression, in Input) (Result, error) {
	if err := Validate(imp); err != nil {
		return Result{}, err
	}

	imp.Date = in.Now
	imp.RecordedByUserID = in.Actor.UserID
	imp.RecordedByUserName = in.Actor.UserName

	res := Result{
		Effects: []effect.Effect{effect.Audit{Details: in.Texts.T(i18n.AuditImpression, c.Name)}},
	}

	if c.PrimaryBranchID != "" && c.PrimaryBranchID != imp.BranchID {
		details := in.Texts.T(i18n.FollowUpBranchDetails,
			branchName(in.Branches, c.PrimaryBranchID, in.Texts),
			branchName(in.Branches, imp.BranchID, in.Texts))
		task := entity.FollowUpTask{
			ID:           in.FollowUpID,
			CustomerID:   c.ID,
			CustomerName: c.Name,
			DateCreated:  in.Now,
			Reason:       in.Texts.T(i18n.FollowUpBranchReason),
			Details:      details,
			Status:       entity.FollowUpPending,
			LastModified: in.Now,
		}
		res.FollowUp = &task
		res.Effects = append(res.Effects, effect.Info(in.Texts.T(i18n.NoticeBranchChanged)))
	}

	c.Impressions = append([]entity.CustomerImpression{imp}, c.Impressions...)
	c.PrimaryBranchID = imp.BranchID
	c.LastModified = in.Now
	res.Customer = c

	for _, task := range in.Tasks {
		if task.CustomerID != c.ID || task.Status != entity.DailyFeedbackPending ||
			!slices.Contains(imp.RelatedInvoiceIDs, task.InvoiceID) {
			continue
		}
		task.Status = entity.DailyFeedbackCompleted
		task.LastModified = in.Now
		res.CompletedTasks = append(res.CompletedTasks, task)
	}
	if len(res.CompletedTasks) > 0 {
		res.Effects = append(res.Effects,
			effect.Success(in.Texts.T(i18n.NoticeFeedbackCompleted, strconv.Itoa(len(res.CompletedTasks)))))
	}

	return res, nil
}

func branchName(branches []entity.Branch, id string, texts *i18n.Texts) string {
	idx := slices.IndexFunc(branches, func(b entity.Branch) bool { return b.ID == id })
	if idx < 0 {
		return texts.T(i18n.Unknown)
	}

	return branches[idx].Name
}
