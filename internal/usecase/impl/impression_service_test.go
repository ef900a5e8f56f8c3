package impl

import (
	"context"
	"testing"
	"time"

	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type impressionServiceFixtures struct {
	coreFixtures
	service usecase.ImpressionUsecase
}

func createTestImpressionService(t *testing.T) impressionServiceFixtures {
	state := entity.DefaultState()
	state.Branches = []entity.Branch{{ID: "branch-1", Name: "Downtown"}, {ID: "branch-2", Name: "Mall"}}
	seedCustomer(state, entity.Customer{ID: "CUST-0001", Name: "Mona", Phone: "0100", PrimaryBranchID: "branch-1"})
	state.DailyFeedbackTasks = []entity.DailyFeedbackTask{
		{ID: "dft-INV-1", CustomerID: "CUST-0001", InvoiceID: "INV-1", Status: entity.DailyFeedbackPending},
		{ID: "dft-INV-2", CustomerID: "CUST-0001", InvoiceID: "INV-2", Status: entity.DailyFeedbackPending},
	}

	core := newCoreFixtures(t, state)

	return impressionServiceFixtures{
		coreFixtures: core,
		service:      NewImpressionService(core.store, core.clock, core.ids, core.texts, core.logger),
	}
}

func TestImpressionService_Record_BranchChangeAndFeedback(t *testing.T) {
	fx := createTestImpressionService(t)

	result, err := fx.service.Record(context.Background(), staffMember, "CUST-0001", entity.CustomerImpression{
		ProductQualityRating:   4,
		BranchExperienceRating: 5,
		BranchID:               "branch-2",
		RelatedInvoiceIDs:      []string{"INV-1"},
	})
	require.NoError(t, err)

	outcome := result.Value
	assert.Equal(t, "branch-2", outcome.Customer.PrimaryBranchID)
	require.Len(t, outcome.Customer.Impressions, 1)
	assert.Equal(t, "imp-1", outcome.Customer.Impressions[0].ID)
	assert.Equal(t, "user-st", outcome.Customer.Impressions[0].RecordedByUserID)
	assert.Equal(t, testNow, outcome.Customer.Impressions[0].Date)

	require.NotNil(t, outcome.FollowUp)
	assert.Equal(t, "follow-2", outcome.FollowUp.ID)
	assert.Equal(t, "Customer usually visited Downtown but recorded an impression at Mall", outcome.FollowUp.Details)
	assert.Equal(t, []string{"INV-1"}, outcome.CompletedInvoiceIDs)

	levels := make([]entity.NoticeLevel, 0, len(result.Notices))
	for _, n := range result.Notices {
		levels = append(levels, n.Level)
	}
	assert.Equal(t, []entity.NoticeLevel{entity.NoticeInfo, entity.NoticeSuccess}, levels)

	state := fx.store.Snapshot()
	require.Len(t, state.FollowUpTasks, 1)
	assert.Equal(t, entity.FollowUpPending, state.FollowUpTasks[0].Status)
	assert.Equal(t, entity.DailyFeedbackCompleted, state.DailyFeedbackTasks[0].Status)
	assert.Equal(t, entity.DailyFeedbackPending, state.DailyFeedbackTasks[1].Status)
}

func TestImpressionService_Record_SameBranch(t *testing.T) {
	fx := createTestImpressionService(t)

	result, err := fx.service.Record(context.Background(), staffMember, "CUST-0001", entity.CustomerImpression{
		ID:                     "imp-fixed",
		ProductQualityRating:   3,
		BranchExperienceRating: 3,
		BranchID:               "branch-1",
		Date:                   testNow.Add(-time.Hour),
	})
	require.NoError(t, err)

	assert.Nil(t, result.Value.FollowUp)
	assert.Empty(t, result.Value.CompletedInvoiceIDs)
	assert.Equal(t, "imp-fixed", result.Value.Customer.Impressions[0].ID)
	assert.Equal(t, testNow, result.Value.Customer.Impressions[0].Date, "impressions are stamped when recorded")
	assert.Empty(t, fx.store.Snapshot().FollowUpTasks)
}

func TestImpressionService_Record_Invalid(t *testing.T) {
	fx := createTestImpressionService(t)
	ctx := context.Background()

	_, err := fx.service.Record(ctx, staffMember, "CUST-0001", entity.CustomerImpression{
		ProductQualityRating:   6,
		BranchExperienceRating: 3,
		BranchID:               "branch-1",
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.service.Record(ctx, staffMember, "CUST-404", entity.CustomerImpression{
		ProductQualityRating:   3,
		BranchExperienceRating: 3,
		BranchID:               "branch-1",
	})
	assert.ErrorIs(t, err, domainerrors.ErrCustomerNotFound)
}
