package json

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshalNumber(t *testing.T) {
	var out map[string]interface{}
	require.NoError(t, UnmarshalNumber([]byte(`{"id":412345678901234567}`), &out))
	assert.Equal(t, "412345678901234567", out["id"].(interface{ String() string }).String())
}

func TestMarshalToString(t *testing.T) {
	s, err := MarshalToString(struct {
		ID uint64 `json:"id,string"`
	}{ID: 7})
	require.NoError(t, err)
	assert.Equal(t, `{"id":"7"}`, s)

	var back struct {
		ID uint64 `json:"id,string"`
	}
	require.NoError(t, UnmarshalFromString(s, &back))
	assert.Equal(t, uint64(7), back.ID)
}
