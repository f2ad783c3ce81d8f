package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var orderCompile = regexp.MustCompile(`^[a-z][a-z_]{0,30}[a-z](\s(asc|ASC|desc|DESC))?(,[a-z][a-z_]{0,30}[a-z](\s(asc|ASC|desc|DESC))?)*$`)

func OrderWithDBSort(f1 validator.FieldLevel) bool {
	valid, ok := f1.Field().Interface().(string)
	if !ok {
		return false
	}
	return orderCompile.MatchString(valid)
}

var permissionCodeCompile = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_\-]*(:[a-zA-Z0-9_\-*]+)*$`)

// PermissionCode 按钮权限标识,如 system:user:add
func PermissionCode(f1 validator.FieldLevel) bool {
	valid, ok := f1.Field().Interface().(string)
	if !ok {
		return false
	}
	return len(valid) <= 100 && permissionCodeCompile.MatchString(valid)
}

var usernameCompile = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_.\-]{2,31}$`)

// Username 字母开头,3-32位字母数字及 _ . -
func Username(f1 validator.FieldLevel) bool {
	valid, ok := f1.Field().Interface().(string)
	if !ok {
		return false
	}
	return usernameCompile.MatchString(valid)
}

// Register 注册全部自定义校验及其提示
func Register(v *defaultValidator) error {
	for _, item := range []struct {
		tag  string
		fn   validator.Func
		text string
	}{
		{tag: "order", fn: OrderWithDBSort, text: "{0} must be a comma separated list of 'column [asc|desc]'"},
		{tag: "permission_code", fn: PermissionCode, text: "{0} must look like 'module:resource:action'"},
		{tag: "username", fn: Username, text: "{0} must start with a letter and contain 3-32 letters, digits, '_', '.' or '-'"},
	} {
		if err := RegisterValidation(v, item.tag, item.fn); err != nil {
			return err
		}
		if err := v.RegisterTranslation(item.tag, item.text); err != nil {
			return err
		}
	}
	return nil
}
