// Package authorize 计算用户的有效菜单树与按钮权限标识
package authorize

import (
	"context"
	"sort"

	"rbac-admin/internal/model"
	"rbac-admin/internal/response"
	"rbac-admin/internal/service/permission"
	"rbac-admin/internal/store"
)

type AuthorizeSrv interface {
	Resolve(ctx context.Context, userID uint64) (*response.Authorization, error)
}

func NewAuthorizeSrv(store store.Store) AuthorizeSrv {
	return authorizeSrv{
		store: store,
	}
}

type authorizeSrv struct {
	store store.Store
}

// Resolve 只有状态正常的未删除角色提供权限,多个角色重叠的权限只计一次
func (a authorizeSrv) Resolve(ctx context.Context, userID uint64) (*response.Authorization, error) {
	if _, err := a.store.Users().Get(ctx, userID); err != nil {
		return nil, err
	}
	status := model.RoleStatusNormal
	byUser, err := a.store.Roles().ListByUsers(ctx, []uint64{userID}, &status)
	if err != nil {
		return nil, err
	}
	roles := byUser[userID]
	roleIDs := make([]uint64, 0, len(roles))
	for _, role := range roles {
		roleIDs = append(roleIDs, role.ID)
	}
	permissions, err := a.store.Permissions().ListByRoles(ctx, roleIDs)
	if err != nil {
		return nil, err
	}
	menus, buttons := Collect(permissions)
	return &response.Authorization{
		Roles:   response.NewRoleBriefs(roles),
		Menus:   menus,
		Buttons: buttons,
	}, nil
}

// Collect 去重后,带路由地址的节点组成菜单树,按钮类型的权限标识组成按钮列表
func Collect(permissions []*model.Permission) ([]*response.PermissionNode, []string) {
	seen := make(map[uint64]struct{}, len(permissions))
	routed := make([]*model.Permission, 0, len(permissions))
	buttons := make([]string, 0)
	for _, p := range permissions {
		if _, ok := seen[p.ID]; ok {
			continue
		}
		seen[p.ID] = struct{}{}
		if p.Path != "" {
			routed = append(routed, p)
		}
		if p.Type == model.PermissionTypeButton && p.CodeValue() != "" {
			buttons = append(buttons, p.CodeValue())
		}
	}
	sort.SliceStable(routed, func(i, j int) bool {
		if routed[i].ParentID != routed[j].ParentID {
			return routed[i].ParentID < routed[j].ParentID
		}
		return routed[i].OrderNum < routed[j].OrderNum
	})
	menus := permission.BuildTree(response.NewPermissionNodes(routed), func(n *response.PermissionNode) uint64 {
		return n.ParentID
	})
	return menus, buttons
}
