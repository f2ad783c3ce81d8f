package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type structCustomValidation struct {
	Order string `binding:"order"`
}

func newEngine(t *testing.T) *defaultValidator {
	engine, err := New()
	require.NoError(t, err)
	require.NoError(t, Register(engine))
	return engine
}

func TestOrderWithDBSort(t *testing.T) {
	engine := newEngine(t)

	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "nil", value: "", wantErr: true},
		{name: "one_ok", value: "update"},
		{name: "one_single_char", value: "u", wantErr: true},
		{name: "one_single_invalid_char", value: "%", wantErr: true},
		{name: "one_two_char_contain_", value: "u_", wantErr: true},
		{name: "injection", value: "name; drop table sys_user", wantErr: true},
		{name: "mult_ok", value: "order_num asc,created_at,updated_at ASC,name desc"},
		{name: "mult_failed", value: "upDate DESC,created", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := engine.ValidateStruct(structCustomValidation{Order: tt.value})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestPermissionCode(t *testing.T) {
	engine := newEngine(t)
	type req struct {
		Code string `json:"code" binding:"omitempty,permission_code"`
	}
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "empty", value: ""},
		{name: "three_parts", value: "system:user:add"},
		{name: "wildcard", value: "system:user:*"},
		{name: "single", value: "dashboard"},
		{name: "space", value: "system user", wantErr: true},
		{name: "leading_colon", value: ":user", wantErr: true},
		{name: "trailing_colon", value: "system:", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := engine.ValidateStruct(&req{Code: tt.value})
			if tt.wantErr {
				var fields FieldErrors
				require.True(t, errors.As(err, &fields))
				assert.Contains(t, fields["code"], "module:resource:action")
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestFieldErrors(t *testing.T) {
	engine := newEngine(t)
	type req struct {
		Username string `json:"username" binding:"required,username"`
		Email    string `json:"email" binding:"omitempty,email"`
		Ignored  string `json:"-" binding:"omitempty"`
	}
	err := engine.ValidateStruct(req{Username: "1ab", Email: "not-mail"})
	var fields FieldErrors
	require.True(t, errors.As(err, &fields))
	assert.Len(t, fields, 2)
	assert.Contains(t, fields["username"], "must start with a letter")
	assert.Equal(t, "email must be a valid email address", fields["email"])
	assert.Contains(t, err.Error(), "; ")

	err = engine.ValidateStruct(req{})
	require.True(t, errors.As(err, &fields))
	assert.Equal(t, "username is a required field", fields["username"])

	assert.NoError(t, engine.ValidateStruct(&req{Username: "admin"}))
	assert.NoError(t, engine.ValidateStruct(nil))
	var nilReq *req
	assert.NoError(t, engine.ValidateStruct(nilReq))
}
