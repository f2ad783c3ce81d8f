package idx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rbac-admin/pkg/json"
)

func TestIDsUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    IDs
		wantErr bool
	}{
		{name: "strings", input: `["1","18446744073709551615"]`, want: IDs{1, 18446744073709551615}},
		{name: "numbers", input: `[2,3]`, want: IDs{2, 3}},
		{name: "empty", input: `[]`, want: IDs{}},
		{name: "zero", input: `["0"]`, wantErr: true},
		{name: "bool", input: `[true]`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ids IDs
			err := json.Unmarshal([]byte(tt.input), &ids)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestIDsMarshalJSON(t *testing.T) {
	data, err := json.Marshal(IDs{1, 2})
	require.NoError(t, err)
	assert.JSONEq(t, `["1","2"]`, string(data))
}

func TestIDsUnique(t *testing.T) {
	assert.Equal(t, IDs{3, 1, 2}, IDs{3, 1, 3, 2, 1}.Unique())
}
