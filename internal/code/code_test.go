package code

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rbac-admin/pkg/code"
)

func TestLoading(t *testing.T) {
	require.NoError(t, Loading())
}

func TestStatusCodes(t *testing.T) {
	tests := []struct {
		err    code.ErrorCode
		status int
	}{
		{ErrTokenInvalid, http.StatusUnauthorized},
		{ErrUserNotFound, http.StatusNotFound},
		{ErrUsernameExists, http.StatusConflict},
		{ErrRoleInUse, http.StatusForbidden},
		{ErrInvalidParent, http.StatusBadRequest},
		{ErrDatabase, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.err.Message(), func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.StatusCode())
		})
	}
}
