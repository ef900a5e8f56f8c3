package snapshot

import (
	"strings"
	"testing"

	"crm/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	state := entity.DefaultState()
	state.Branches = []entity.Branch{{ID: "branch-1", Name: "الفرع الرئيسي"}}
	state.Customers = []entity.Customer{{ID: "CUST-0001", Name: "Mona", Phone: "0500000000", Points: 120}}

	for _, pretty := range []bool{true, false} {
		data, err := Encode(state, pretty)
		require.NoError(t, err)
		assert.Equal(t, pretty, strings.Contains(string(data), "\n  "))

		decoded, err := Decode(data)
		require.NoError(t, err)
		assert.Equal(t, state, decoded)
	}
}

func TestDecode_NormalizesMissingCollections(t *testing.T) {
	decoded, err := Decode([]byte(`{"branches":[{"id":"b1","name":"Downtown"}]}`))
	require.NoError(t, err)

	assert.Len(t, decoded.Branches, 1)
	assert.NotNil(t, decoded.Customers)
	assert.NotNil(t, decoded.ActivityLog)
}

func TestDecode_Rejects(t *testing.T) {
	_, err := Decode(nil)
	assert.ErrorIs(t, err, ErrEmptyDocument)

	_, err = Decode([]byte(" null "))
	assert.ErrorIs(t, err, ErrEmptyDocument)

	_, err = Decode([]byte("{ }"))
	assert.ErrorIs(t, err, ErrEmptyDocument)

	_, err = Decode([]byte("{not json"))
	assert.Error(t, err)

	_, err = Encode(nil, false)
	assert.ErrorIs(t, err, ErrEmptyDocument)
}
