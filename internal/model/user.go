package model

import "rbac-admin/pkg/storage"

// User 系统用户
type User struct {
	storage.Base
	Username string     `json:"username" gorm:"column:username;type:varchar(32);not null;uniqueIndex:uk_user_username,priority:1;comment:用户名"`
	Password string     `json:"-" gorm:"column:password;type:varchar(100);not null;comment:bcrypt密码摘要"`
	Nickname string     `json:"nickname" gorm:"column:nickname;type:varchar(64);not null;comment:昵称"`
	Email    *string    `json:"email" gorm:"column:email;type:varchar(128);uniqueIndex:uk_user_email,priority:1;comment:邮箱"`
	Phone    *string    `json:"phone" gorm:"column:phone;type:varchar(32);uniqueIndex:uk_user_phone,priority:1;comment:手机号"`
	Status   UserStatus `json:"status" gorm:"column:status;not null;comment:状态 0停用 1正常 2锁定"`
	Gender   Gender     `json:"gender" gorm:"column:gender;not null;comment:性别 0女 1男"`
	Avatar   string     `json:"avatar" gorm:"column:avatar;type:varchar(255);not null;comment:头像"`
	Remark   string     `json:"remark" gorm:"column:remark;type:varchar(500);not null;comment:备注"`

	Deleted storage.Deleted `json:"-" gorm:"column:deleted;not null;default:0;uniqueIndex:uk_user_username,priority:2;uniqueIndex:uk_user_email,priority:2;uniqueIndex:uk_user_phone,priority:2;comment:软删除记录id"`
}

func (User) TableName() string {
	return "sys_user"
}

// UserRole 用户与角色的关联
type UserRole struct {
	UserID uint64 `gorm:"column:user_id;primaryKey;autoIncrement:false"`
	RoleID uint64 `gorm:"column:role_id;primaryKey;autoIncrement:false;index:idx_user_role_role_id"`
}

func (UserRole) TableName() string {
	return "sys_user_role"
}
