package code

import "rbac-admin/pkg/code"

var (
	// 000~099 认证类

	ErrLoginUserNotFound   = code.Froze("4011000001", "user not found")
	ErrPasswordNotSet      = code.Froze("4011000002", "password not set")
	ErrIncorrectPassword   = code.Froze("4011000003", "incorrect username or password")
	ErrTokenInvalid        = code.Froze("4011000004", "token expired or invalid, please log in again")
	ErrTokenMissing        = code.Froze("4011000005", "missing bearer token, please log in")
	ErrOldPasswordMismatch = code.Froze("4011000006", "old password is incorrect")

	// 资源不存在

	ErrUserNotFound       = code.Froze("4041000007", "user not found")
	ErrRoleNotFound       = code.Froze("4041000008", "role not found")
	ErrPermissionNotFound = code.Froze("4041000009", "permission not found")

	// 唯一约束冲突

	ErrUsernameExists       = code.Froze("4091000010", "username already exists")
	ErrEmailExists          = code.Froze("4091000011", "email already exists")
	ErrPhoneExists          = code.Froze("4091000012", "phone already exists")
	ErrRoleNameExists       = code.Froze("4091000013", "role name already exists")
	ErrRoleKeyExists        = code.Froze("4091000014", "role key already exists")
	ErrPermissionCodeExists = code.Froze("4091000015", "permission code already exists")

	// 操作被拒绝

	ErrRoleInUse             = code.Froze("4031000016", "role in use")
	ErrPermissionHasChildren = code.Froze("4031000017", "permission has children, delete them first")
	ErrRepeatSubmit          = code.Froze("4031000018", "please do not resubmit")

	ErrInvalidParent = code.Froze("4001000019", "invalid parent permission")

	// 存储

	ErrDatabase = code.Froze("5001000020", "database error")
	ErrCache    = code.Froze("5001000021", "cache error")
)

// Loading 注册业务错误码,重复时返回错误
func Loading() error {
	return code.AddCode(map[code.ErrorCode]struct{}{
		ErrLoginUserNotFound:     {},
		ErrPasswordNotSet:        {},
		ErrIncorrectPassword:     {},
		ErrTokenInvalid:          {},
		ErrTokenMissing:          {},
		ErrOldPasswordMismatch:   {},
		ErrUserNotFound:          {},
		ErrRoleNotFound:          {},
		ErrPermissionNotFound:    {},
		ErrUsernameExists:        {},
		ErrEmailExists:           {},
		ErrPhoneExists:           {},
		ErrRoleNameExists:        {},
		ErrRoleKeyExists:         {},
		ErrPermissionCodeExists:  {},
		ErrRoleInUse:             {},
		ErrPermissionHasChildren: {},
		ErrRepeatSubmit:          {},
		ErrInvalidParent:         {},
		ErrDatabase:              {},
		ErrCache:                 {},
	})
}
