package impl

import (
	"context"
	"testing"

	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	mockService "crm/internal/mocks/service"
	"crm/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type customerServiceFixtures struct {
	coreFixtures
	service usecase.CustomerUsecase
	qrcode  *mockService.MockQRCodeService
}

func createTestCustomerService(t *testing.T) customerServiceFixtures {
	state := entity.DefaultState()
	seedCustomer(state, entity.Customer{
		ID:                "CUST-0001",
		Name:              "Mona",
		Phone:             "0100",
		Points:            300,
		TotalPointsEarned: 300,
		TotalPurchases:    4000,
		Classification:    entity.ClassificationBronze,
	})
	seedCustomer(state, entity.Customer{ID: "CUST-0002", Name: "Ali", Phone: "0111", Classification: entity.ClassificationGold})

	core := newCoreFixtures(t, state)
	qr := mockService.NewMockQRCodeService(t)

	return customerServiceFixtures{
		coreFixtures: core,
		service:      NewCustomerService(core.store, core.clock, core.ids, qr, core.texts, core.logger),
		qrcode:       qr,
	}
}

func TestCustomerService_Create(t *testing.T) {
	fx := createTestCustomerService(t)

	result, err := fx.service.Create(context.Background(), staffMember, usecase.NewCustomer{Name: " Laila ", Phone: "0122"})
	require.NoError(t, err)

	assert.Equal(t, "CUST-0003", result.Value.ID)
	assert.Equal(t, "Laila", result.Value.Name)
	assert.Equal(t, entity.CustomerTypeNormal, result.Value.Type)
	assert.Equal(t, entity.ClassificationBronze, result.Value.Classification)
	assert.Equal(t, testNow, result.Value.JoinDate)
	assert.Contains(t, activityDetails(fx.store.Snapshot()), "Added customer Laila")
}

func TestCustomerService_Create_Duplicate(t *testing.T) {
	fx := createTestCustomerService(t)

	_, err := fx.service.Create(context.Background(), staffMember, usecase.NewCustomer{Name: "Mona again", Phone: "0100"})
	assert.ErrorIs(t, err, domainerrors.ErrCustomerAlreadyExists)

	_, err = fx.service.Create(context.Background(), staffMember, usecase.NewCustomer{Name: "No phone"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCustomerService_GrantAndDeduct(t *testing.T) {
	fx := createTestCustomerService(t)
	ctx := context.Background()

	granted, err := fx.service.GrantPoints(ctx, teamLeader, "CUST-0001", 50, "goodwill")
	require.NoError(t, err)
	assert.Equal(t, 350, granted.Value.Points)
	assert.Equal(t, 350, granted.Value.TotalPointsEarned)

	deducted, err := fx.service.DeductPoints(ctx, teamLeader, "CUST-0001", 100, "correction")
	require.NoError(t, err)
	assert.Equal(t, 250, deducted.Value.Points)
	assert.Equal(t, 100, deducted.Value.TotalPointsUsed)
	assert.True(t, deducted.Value.BalanceConsistent())

	details := activityDetails(fx.store.Snapshot())
	assert.Contains(t, details, "Granted 50 points to customer Mona. Reason: goodwill")
	assert.Contains(t, details, "Deducted 100 points from customer Mona. Reason: correction")
}

func TestCustomerService_DeductPoints_InsufficientBalance(t *testing.T) {
	fx := createTestCustomerService(t)
	before := fx.store.Snapshot()

	_, err := fx.service.DeductPoints(context.Background(), teamLeader, "CUST-0001", 301, "too much")
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientBalance)
	assert.Same(t, before, fx.store.Snapshot())
}

func TestCustomerService_AddLegacyBalance_Reclassifies(t *testing.T) {
	fx := createTestCustomerService(t)

	result, err := fx.service.AddLegacyBalance(context.Background(), generalManager, "CUST-0001", 1005, "paper card")
	require.NoError(t, err)

	assert.Equal(t, 300+100, result.Value.Points)
	assert.InDelta(t, 5005, result.Value.TotalPurchases, 1e-9)
	assert.Equal(t, entity.ClassificationSilver, result.Value.Classification)
}

func TestCustomerService_GrantVideoReward(t *testing.T) {
	fx := createTestCustomerService(t)

	result, err := fx.service.GrantVideoReward(context.Background(), staffMember, "CUST-0002")
	require.NoError(t, err)
	assert.Equal(t, 50, result.Value.Points)

	_, err = fx.service.GrantVideoReward(context.Background(), staffMember, "CUST-404")
	assert.ErrorIs(t, err, domainerrors.ErrCustomerNotFound)
}

func TestCustomerService_RedeemVoucher(t *testing.T) {
	fx := createTestCustomerService(t)
	ctx := context.Background()

	result, err := fx.service.RedeemVoucher(ctx, staffMember, "CUST-0001", 200)
	require.NoError(t, err)

	voucher := result.Value
	assert.Equal(t, "VCHR-1", voucher.Code)
	assert.Equal(t, 200, voucher.Points)
	assert.InDelta(t, 200, voucher.Amount, 1e-9)
	assert.Equal(t, "Mona", voucher.CustomerName)

	customer, err := fx.service.Get(ctx, "CUST-0001")
	require.NoError(t, err)
	assert.Equal(t, 100, customer.Points)
	require.NotEmpty(t, customer.Log)
	assert.Equal(t, "VCHR-1", customer.Log[0].InvoiceID)
	assert.Equal(t, -200, customer.Log[0].PointsChange)

	fx.qrcode.EXPECT().GenerateVoucherQR("VCHR-1").Return([]byte("png"), nil)

	png, err := fx.service.VoucherQR(ctx, "VCHR-1")
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}

func TestCustomerService_VoucherQR_Errors(t *testing.T) {
	fx := createTestCustomerService(t)
	ctx := context.Background()

	_, err := fx.service.VoucherQR(ctx, "VCHR-404")
	assert.ErrorIs(t, err, domainerrors.ErrVoucherNotFound)

	_, err = fx.service.RedeemVoucher(ctx, staffMember, "CUST-0001", 100)
	require.NoError(t, err)

	fx.qrcode.EXPECT().GenerateVoucherQR("VCHR-1").Return(nil, errors.New("encoder failure"))

	_, err = fx.service.VoucherQR(ctx, "VCHR-1")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to render voucher QR")
}

func TestCustomerService_List(t *testing.T) {
	fx := createTestCustomerService(t)
	ctx := context.Background()

	byName, err := fx.service.List(ctx, usecase.CustomerFilter{Query: "mon"})
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "CUST-0001", byName[0].ID)

	byPhone, err := fx.service.List(ctx, usecase.CustomerFilter{Query: "0111"})
	require.NoError(t, err)
	require.Len(t, byPhone, 1)
	assert.Equal(t, "CUST-0002", byPhone[0].ID)

	gold, err := fx.service.List(ctx, usecase.CustomerFilter{Classification: entity.ClassificationGold})
	require.NoError(t, err)
	require.Len(t, gold, 1)
	assert.Equal(t, "Ali", gold[0].Name)
}
