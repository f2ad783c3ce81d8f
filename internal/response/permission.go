package response

import "rbac-admin/internal/model"

// PermissionNode 权限树节点,叶子节点不输出children
type PermissionNode struct {
	*model.Permission
	Children []*PermissionNode `json:"children,omitempty"`
}

// NewPermissionNodes 每个权限包装为独立节点,保持输入顺序
func NewPermissionNodes(permissions []*model.Permission) []*PermissionNode {
	nodes := make([]*PermissionNode, len(permissions))
	for i, permission := range permissions {
		nodes[i] = &PermissionNode{Permission: permission}
	}
	return nodes
}
