package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/akuntansi-app/akuntansi-backend/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type patchPayload struct {
	Description dto.Optional[string] `json:"deskripsi_transaksi"`
	Reference   dto.Optional[string] `json:"evidence_ref"`
}

func TestOptional_AbsentKey(t *testing.T) {
	var p patchPayload
	require.NoError(t, json.Unmarshal([]byte(`{}`), &p))

	assert.False(t, p.Description.Set)
	assert.False(t, p.Reference.Set)
}

func TestOptional_ExplicitNull(t *testing.T) {
	var p patchPayload
	require.NoError(t, json.Unmarshal([]byte(`{"evidence_ref": null}`), &p))

	assert.True(t, p.Reference.Set)
	assert.False(t, p.Reference.Valid)
	assert.False(t, p.Description.Set)
}

func TestOptional_Value(t *testing.T) {
	var p patchPayload
	require.NoError(t, json.Unmarshal([]byte(`{"deskripsi_transaksi": "Pembelian"}`), &p))

	assert.True(t, p.Description.Set)
	assert.True(t, p.Description.Valid)
	assert.Equal(t, "Pembelian", p.Description.Value)
}

func TestOptional_InvalidValue(t *testing.T) {
	var p patchPayload
	err := json.Unmarshal([]byte(`{"deskripsi_transaksi": 42}`), &p)
	assert.Error(t, err)
}

func TestOptional_Helpers(t *testing.T) {
	some := dto.Some("x")
	assert.True(t, some.Set)
	assert.True(t, some.Valid)
	assert.Equal(t, "x", some.Value)

	null := dto.Null[string]()
	assert.True(t, null.Set)
	assert.False(t, null.Valid)
}
