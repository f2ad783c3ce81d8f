package migrations

import (
	"database/sql"
	"time"

	"github.com/pressly/goose"
	"github.com/spf13/viper"

	"rbac-admin/pkg/password"
)

const (
	adminUserID = 1
	adminRoleID = 1
)

func init() {
	goose.AddMigration(upSeedAdmin, downSeedAdmin)
}

// upSeedAdmin 初始管理员,密码取auth.admin_password
func upSeedAdmin(tx *sql.Tx) error {
	digest, err := password.Hash(viper.GetString("auth.admin_password"), password.DefaultCost)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	if _, err = tx.Exec("INSERT INTO `sys_user` (`id`, `username`, `password`, `nickname`, `status`, `created_at`, `updated_at`) "+
		"VALUES (?, ?, ?, ?, ?, ?, ?)", adminUserID, "admin", digest, "Administrator", 1, now, now); err != nil {
		return err
	}
	_, err = tx.Exec("INSERT INTO `sys_user_role` (`user_id`, `role_id`) VALUES (?, ?)", adminUserID, adminRoleID)
	return err
}

func downSeedAdmin(tx *sql.Tx) error {
	if _, err := tx.Exec("DELETE FROM `sys_user_role` WHERE `user_id` = ?", adminUserID); err != nil {
		return err
	}
	_, err := tx.Exec("DELETE FROM `sys_user` WHERE `id` = ?", adminUserID)
	return err
}
