package mysql

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"rbac-admin/internal/code"
	pkgcode "rbac-admin/pkg/code"
	"rbac-admin/pkg/storage"
)

// conflict 唯一索引名或列名片段与对应的错误
type conflict struct {
	key string
	err pkgcode.ErrorCode
}

var (
	userConflicts = []conflict{
		{key: "username", err: code.ErrUsernameExists},
		{key: "email", err: code.ErrEmailExists},
		{key: "phone", err: code.ErrPhoneExists},
	}
	// mysql返回索引名uk_role_key,sqlite返回列名sys_role.role_key
	roleConflicts = []conflict{
		{key: "key", err: code.ErrRoleKeyExists},
		{key: "name", err: code.ErrRoleNameExists},
	}
	permissionConflicts = []conflict{
		{key: "code", err: code.ErrPermissionCodeExists},
	}
)

// dbError 原始错误只进入日志,不返回给调用方
func dbError(err error) error {
	return errors.Wrap(code.ErrDatabase, err.Error())
}

func notFound(err error, notFoundErr pkgcode.ErrorCode) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errors.WithStack(notFoundErr)
	}
	return dbError(err)
}

func writeError(err error, conflicts []conflict) error {
	key, ok := storage.DuplicateKey(err)
	if !ok {
		return dbError(err)
	}
	for _, c := range conflicts {
		if strings.Contains(key, c.key) {
			return errors.WithStack(c.err)
		}
	}
	return errors.WithStack(pkgcode.ErrConflict.WithResult(key))
}
