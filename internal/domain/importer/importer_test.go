package importer

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crm/internal/domain/entity"
	"crm/internal/domain/loyalty"
)

var importNow = time.Date(2025, 7, 1, 8, 0, 0, 0, time.UTC)

func TestParseField(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		want    Field
		wantErr bool
	}{
		{name: "", want: FieldIgnored},
		{name: "ignore", want: FieldIgnored},
		{name: "phone", want: FieldPhone},
		{name: "_oldPoints", want: FieldLegacyPoints},
		{name: "favouriteColour", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseField(tt.name)
			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMapping(t *testing.T) {
	_, err := ParseMapping(map[string]string{"Name": "name"})
	require.Error(t, err, "id or phone column is mandatory")

	_, err = ParseMapping(map[string]string{"Phone": "phone", "Mobile": "phone"})
	require.Error(t, err)

	mapping, err := ParseMapping(map[string]string{"Phone": "phone", "Notes": ""})
	require.NoError(t, err)
	assert.Equal(t, Mapping{"Phone": FieldPhone, "Notes": FieldIgnored}, mapping)
}

func TestMapping_Row(t *testing.T) {
	mapping := Mapping{"Phone": FieldPhone, "Amount": FieldInvoiceAmount, "Date": FieldInvoiceDate, "Memo": FieldIgnored}

	row, err := mapping.Row([]string{"Phone", "Amount", "Date", "Memo"}, []string{" 0100 ", "1,250.5", "2025-06-30", "x"})
	require.NoError(t, err)
	assert.Equal(t, "0100", row.Phone)
	assert.InDelta(t, 1250.5, row.InvoiceAmount, 1e-9)
	require.NotNil(t, row.InvoiceDate)
	assert.Equal(t, time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC), *row.InvoiceDate)

	_, err = mapping.Row([]string{"Phone", "Amount"}, []string{"0100", "abc"})
	assert.Error(t, err)
}

func stateWithCustomer() *entity.AppState {
	state := entity.DefaultState()
	state.PutCustomer(entity.Customer{
		ID:                "CUST-0007",
		Name:              "Old Name",
		Phone:             "0100",
		Log:               []entity.CustomerLogEntry{{InvoiceID: "INV-1", Date: importNow.Add(-48 * time.Hour), Amount: 100, PointsChange: 10}},
		Points:            10,
		TotalPointsEarned: 10,
		TotalPurchases:    100,
		PurchaseCount:     1,
	})

	return state
}

func TestMerger_MergeRow(t *testing.T) {
	state := stateWithCustomer()
	merger := NewMerger(state, importNow)
	invoiceDate := importNow.Add(-24 * time.Hour)

	merger.MergeRow(Row{Phone: "0100", Name: "New Name", InvoiceID: "INV-2", InvoiceAmount: 5250, InvoiceDate: &invoiceDate})
	merger.MergeRow(Row{Phone: "0100", InvoiceID: "INV-2", InvoiceAmount: 5250})
	merger.MergeRow(Row{Phone: "0199", Name: "Fresh", InvoiceID: "INV-9", InvoiceAmount: 99})
	merger.MergeRow(Row{Phone: "0200"})
	merger.MergeRow(Row{Name: "nobody"})
	merger.MergeRow(Row{ID: "CUST-0007", LegacyTotalPurchases: 10000, LegacyPoints: 40})

	assert.Equal(t, Summary{New: 1, Updated: 3, Transactions: 2, Skipped: 2}, merger.Summary())

	existing, ok := state.FindCustomer("CUST-0007")
	require.True(t, ok)
	assert.Equal(t, "New Name", existing.Name)
	require.Len(t, existing.Log, 2)
	assert.Equal(t, "INV-2", existing.Log[0].InvoiceID, "log is newest first")
	assert.Equal(t, 520, existing.Log[0].PointsChange)
	assert.Equal(t, 10+520+40, existing.Points)
	assert.True(t, existing.BalanceConsistent())
	assert.Equal(t, 2, existing.PurchaseCount)
	assert.InDelta(t, 15350, existing.TotalPurchases, 1e-9)
	assert.Equal(t, entity.ClassificationGold, existing.Classification)
	require.NotNil(t, existing.LastPurchaseDate)
	assert.Equal(t, invoiceDate, *existing.LastPurchaseDate)

	created, ok := state.FindCustomer("CUST-0008")
	require.True(t, ok)
	assert.Equal(t, "Fresh", created.Name)
	assert.Equal(t, DefaultGovernorate, created.Governorate)
	require.Len(t, created.Log, 1)
	assert.Equal(t, DefaultInvoiceDetails, created.Log[0].Details)
	assert.Zero(t, created.Points, "99 is below one import spend unit")
	assert.Equal(t, entity.ClassificationBronze, created.Classification)
}

func TestMapping_Row_RejectsOutOfRange(t *testing.T) {
	t.Parallel()

	mapping := Mapping{"Phone": FieldPhone, "Amount": FieldInvoiceAmount, "Points": FieldLegacyPoints}
	tests := []struct {
		name   string
		amount string
		points string
	}{
		{name: "huge amount", amount: "1e30", points: "0"},
		{name: "infinite amount", amount: "Inf", points: "0"},
		{name: "not a number", amount: "NaN", points: "0"},
		{name: "huge legacy points", amount: "10", points: "1e30"},
		{name: "legacy points over limit", amount: "10", points: "1000000001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := mapping.Row([]string{"Phone", "Amount", "Points"}, []string{"0100", tt.amount, tt.points})
			assert.Error(t, err)
		})
	}
}

func TestMerger_MergeRow_SkipsBalanceOverflow(t *testing.T) {
	state := stateWithCustomer()
	merger := NewMerger(state, importNow)
	before, ok := state.FindCustomer("CUST-0007")
	require.True(t, ok)

	merger.MergeRow(Row{ID: "CUST-0007", InvoiceID: "INV-BIG", InvoiceAmount: loyalty.MaxAmount})
	merger.MergeRow(Row{ID: "CUST-0007", LegacyPoints: loyalty.MaxPoints})
	merger.MergeRow(Row{Phone: "0300", Name: "Big", InvoiceID: "INV-X", InvoiceAmount: loyalty.MaxAmount})

	assert.Equal(t, Summary{Skipped: 3}, merger.Summary())
	after, ok := state.FindCustomer("CUST-0007")
	require.True(t, ok)
	assert.Equal(t, before, after)
	assert.Len(t, state.Customers, 1)
}

func TestReadCSV(t *testing.T) {
	state := entity.DefaultState()
	merger := NewMerger(state, importNow)
	mapping, err := ParseMapping(map[string]string{
		"الهاتف": "phone", "الاسم": "name", "رقم الفاتورة": "invoiceId", "المبلغ": "invoiceAmount", "ملاحظات": "ignore",
	})
	require.NoError(t, err)

	input := "\ufeffالهاتف,الاسم,رقم الفاتورة,المبلغ,ملاحظات\n" +
		"0100,Mona,INV-1,300,vip\n" +
		"0101,Ali,INV-2,not-a-number,\n" +
		"0100,Mona,INV-3,200,\n"

	rows, invalid, err := ReadCSV(strings.NewReader(input), mapping)
	require.NoError(t, err)
	assert.Equal(t, 1, invalid)
	require.Len(t, rows, 2)

	merger.Skip(invalid)
	merger.Merge(rows)
	assert.Equal(t, Summary{New: 1, Updated: 1, Transactions: 2, Skipped: 1}, merger.Summary())

	require.Len(t, state.Customers, 1)
	assert.Equal(t, "CUST-0001", state.Customers[0].ID)
	assert.Equal(t, 50, state.Customers[0].Points)
}

func TestNextCustomerID(t *testing.T) {
	customers := []entity.Customer{{ID: "CUST-0009"}, {ID: "CUST-0102"}, {ID: "legacy"}}
	assert.Equal(t, "CUST-0103", NextCustomerID(customers))
	assert.Equal(t, "CUST-0001", NextCustomerID(nil))
}
