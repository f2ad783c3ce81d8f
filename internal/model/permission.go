package model

import "rbac-admin/pkg/storage"

// Permission 目录、菜单或按钮
type Permission struct {
	storage.Base
	Name        string         `json:"name" gorm:"column:name;type:varchar(64);not null;comment:名称"`
	Type        PermissionType `json:"type" gorm:"column:type;not null;comment:类型 0目录 1菜单 2按钮"`
	ParentID    uint64         `json:"parent_id,string" gorm:"column:parent_id;not null;index:idx_permission_parent_id;comment:父id,0为顶级"`
	Path        string         `json:"path" gorm:"column:path;type:varchar(255);not null;comment:路由地址"`
	Component   string         `json:"component" gorm:"column:component;type:varchar(255);not null;comment:组件路径"`
	Icon        string         `json:"icon" gorm:"column:icon;type:varchar(100);not null;comment:图标"`
	Code        *string        `json:"code" gorm:"column:code;type:varchar(100);uniqueIndex:uk_permission_code,priority:1;comment:权限标识"`
	OrderNum    int            `json:"order_num" gorm:"column:order_num;not null;comment:显示顺序"`
	IsVisible   bool           `json:"is_visible" gorm:"column:is_visible;not null;comment:是否显示"`
	IsCacheable bool           `json:"is_cacheable" gorm:"column:is_cacheable;not null;comment:是否缓存"`

	Deleted storage.Deleted `json:"-" gorm:"column:deleted;not null;default:0;uniqueIndex:uk_permission_code,priority:2;comment:软删除记录id"`
}

func (Permission) TableName() string {
	return "sys_permission"
}

// CodeValue 权限标识,未设置时为空串
func (p *Permission) CodeValue() string {
	if p.Code == nil {
		return ""
	}
	return *p.Code
}

// Tables 需要迁移的全部表
func Tables() []interface{} {
	return []interface{}{
		&User{},
		&UserRole{},
		&Role{},
		&RolePermission{},
		&Permission{},
	}
}
