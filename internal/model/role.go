package model

import "rbac-admin/pkg/storage"

// Role 角色
type Role struct {
	storage.Base
	Name   string     `json:"name" gorm:"column:name;type:varchar(64);not null;uniqueIndex:uk_role_name,priority:1;comment:角色名称"`
	Key    string     `json:"key" gorm:"column:role_key;type:varchar(64);not null;uniqueIndex:uk_role_key,priority:1;comment:角色标识"`
	Status RoleStatus `json:"status" gorm:"column:status;not null;comment:状态 0正常 1停用"`
	Sort   int        `json:"sort" gorm:"column:sort;not null;comment:显示顺序"`
	Remark string     `json:"remark" gorm:"column:remark;type:varchar(500);not null;comment:备注"`

	Deleted storage.Deleted `json:"-" gorm:"column:deleted;not null;default:0;uniqueIndex:uk_role_name,priority:2;uniqueIndex:uk_role_key,priority:2;comment:软删除记录id"`
}

func (Role) TableName() string {
	return "sys_role"
}

// RolePermission 角色与权限的关联
type RolePermission struct {
	RoleID       uint64 `gorm:"column:role_id;primaryKey;autoIncrement:false"`
	PermissionID uint64 `gorm:"column:permission_id;primaryKey;autoIncrement:false;index:idx_role_permission_permission_id"`
}

func (RolePermission) TableName() string {
	return "sys_role_permission"
}
