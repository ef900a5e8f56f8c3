package impl

import (
	"context"
	"strings"
	"testing"

	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/importer"
	"crm/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type importServiceFixtures struct {
	coreFixtures
	service usecase.ImportUsecase
}

func createTestImportService(t *testing.T) importServiceFixtures {
	state := entity.DefaultState()
	seedCustomer(state, entity.Customer{ID: "CUST-0001", Name: "Mona", Phone: "0100"})

	core := newCoreFixtures(t, state)

	return importServiceFixtures{
		coreFixtures: core,
		service:      NewImportService(core.store, core.clock, core.ids, core.texts, core.logger),
	}
}

var importMapping = map[string]string{
	"Phone":   "phone",
	"Name":    "name",
	"Invoice": "invoiceId",
	"Amount":  "invoiceAmount",
	"Notes":   "ignore",
}

func TestImportService_ImportCSV(t *testing.T) {
	fx := createTestImportService(t)

	input := "Phone,Name,Invoice,Amount,Notes\n" +
		"0100,Mona,INV-1,300,\n" +
		"0100,Mona,INV-2,200,\n" +
		"0199,Hany,INV-3,1000,new\n" +
		"0155,Bad,INV-4,abc,\n"

	result, err := fx.service.ImportCSV(context.Background(), generalManager, strings.NewReader(input), importMapping)
	require.NoError(t, err)
	assert.Equal(t, importer.Summary{New: 1, Updated: 2, Transactions: 3, Skipped: 1}, result.Value)

	state := fx.store.Snapshot()
	require.Len(t, state.Customers, 2)

	mona, ok := state.FindCustomer("CUST-0001")
	require.True(t, ok)
	assert.Len(t, mona.Log, 2)
	assert.Equal(t, 50, mona.Points)

	hany, ok := state.FindCustomer("CUST-0002")
	require.True(t, ok)
	assert.Equal(t, "Hany", hany.Name)
	assert.Equal(t, 100, hany.Points)

	assert.Equal(t, "Imported customers: new 1, updated 2, transactions 3, skipped 1", state.ActivityLog[0].Details)
	assert.Equal(t, "user-gm", state.ActivityLog[0].UserID)
}

func TestImportService_ImportCSV_BadMapping(t *testing.T) {
	fx := createTestImportService(t)
	before := fx.store.Snapshot()

	_, err := fx.service.ImportCSV(context.Background(), generalManager, strings.NewReader("Name\nMona\n"),
		map[string]string{"Name": "name"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.service.ImportCSV(context.Background(), generalManager, strings.NewReader("Phone\n0100\n"),
		map[string]string{"Phone": "shoe-size"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.service.ImportCSV(context.Background(), generalManager, strings.NewReader(""), importMapping)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	assert.Same(t, before, fx.store.Snapshot())
}
