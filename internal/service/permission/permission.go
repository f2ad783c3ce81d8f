package permission

import (
	"context"
	"errors"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"go.uber.org/zap"

	"rbac-admin/internal/code"
	"rbac-admin/internal/model"
	"rbac-admin/internal/request"
	"rbac-admin/internal/response"
	"rbac-admin/internal/store"
	"rbac-admin/pkg/logger"
	"rbac-admin/pkg/tree"
)

type PermissionSrv interface {
	Create(ctx context.Context, req *request.CreatePermissionReq) (uint64, error)
	Update(ctx context.Context, id uint64, req *request.UpdatePermissionReq) error
	Delete(ctx context.Context, id uint64) error
	Get(ctx context.Context, id uint64) (*model.Permission, error)
	Tree(ctx context.Context, req *request.PermissionTreeReq) ([]*response.PermissionNode, error)
}

func NewPermissionSrv(store store.Store) PermissionSrv {
	return permissionSrv{
		store: store,
	}
}

type permissionSrv struct {
	store store.Store
}

func (p permissionSrv) Create(ctx context.Context, req *request.CreatePermissionReq) (uint64, error) {
	if err := p.checkParent(ctx, req.ParentID); err != nil {
		return 0, err
	}
	obj := &model.Permission{
		Name:        req.Name,
		Type:        req.Type,
		ParentID:    req.ParentID,
		Path:        req.Path,
		Component:   req.Component,
		Icon:        req.Icon,
		Code:        nullable(req.Code),
		OrderNum:    req.OrderNum,
		IsVisible:   true,
		IsCacheable: false,
	}
	if req.IsVisible != nil {
		obj.IsVisible = *req.IsVisible
	}
	if req.IsCacheable != nil {
		obj.IsCacheable = *req.IsCacheable
	}
	if err := p.store.Permissions().Create(ctx, obj); err != nil {
		logger.From(ctx).Error("failed to create permission", zap.Any("param", req), zap.Error(err))
		return 0, err
	}
	return obj.ID, nil
}

func (p permissionSrv) Update(ctx context.Context, id uint64, req *request.UpdatePermissionReq) error {
	current, err := p.store.Permissions().Get(ctx, id)
	if err != nil {
		return err
	}
	values := make(map[string]interface{})
	if req.ParentID != nil && *req.ParentID != current.ParentID {
		if err = p.checkMove(ctx, id, *req.ParentID); err != nil {
			return err
		}
		values["parent_id"] = *req.ParentID
	}
	if req.Type != nil && *req.Type != current.Type {
		if *req.Type == model.PermissionTypeButton {
			children, err := p.store.Permissions().CountChildren(ctx, id)
			if err != nil {
				return err
			}
			if children > 0 {
				return pkgerrors.WithStack(code.ErrPermissionHasChildren.
					WithMessage("permission has children and cannot become a button"))
			}
		}
		values["type"] = *req.Type
	}
	if req.Name != nil {
		values["name"] = *req.Name
	}
	if req.Path != nil {
		values["path"] = *req.Path
	}
	if req.Component != nil {
		values["component"] = *req.Component
	}
	if req.Icon != nil {
		values["icon"] = *req.Icon
	}
	if req.Code != nil {
		values["code"] = nullable(*req.Code)
	}
	if req.OrderNum != nil {
		values["order_num"] = *req.OrderNum
	}
	if req.IsVisible != nil {
		values["is_visible"] = *req.IsVisible
	}
	if req.IsCacheable != nil {
		values["is_cacheable"] = *req.IsCacheable
	}
	if len(values) == 0 {
		return nil
	}
	return p.store.Permissions().Update(ctx, id, values)
}

func (p permissionSrv) Delete(ctx context.Context, id uint64) error {
	if _, err := p.store.Permissions().Get(ctx, id); err != nil {
		return err
	}
	children, err := p.store.Permissions().CountChildren(ctx, id)
	if err != nil {
		return err
	}
	if children > 0 {
		return pkgerrors.WithStack(code.ErrPermissionHasChildren)
	}
	return p.store.Permissions().Delete(ctx, id)
}

func (p permissionSrv) Get(ctx context.Context, id uint64) (*model.Permission, error) {
	return p.store.Permissions().Get(ctx, id)
}

func (p permissionSrv) Tree(ctx context.Context, req *request.PermissionTreeReq) ([]*response.PermissionNode, error) {
	permissions, err := p.store.Permissions().List(ctx, req)
	if err != nil {
		logger.From(ctx).Error("failed to list permissions", zap.Any("param", req), zap.Error(err))
		return nil, err
	}
	nodes := response.NewPermissionNodes(permissions)
	parentOf := func(n *response.PermissionNode) uint64 { return n.ParentID }
	if filtered(req) {
		// 过滤后父节点可能不在结果中,此时将节点提升为根节点
		present := make(map[uint64]struct{}, len(nodes))
		for _, node := range nodes {
			present[node.ID] = struct{}{}
		}
		parentOf = func(n *response.PermissionNode) uint64 {
			if _, ok := present[n.ParentID]; ok {
				return n.ParentID
			}
			return model.RootPermissionID
		}
	}
	return BuildTree(nodes, parentOf), nil
}

// BuildTree 以0为根还原权限树,调用方负责预先排序
func BuildTree(nodes []*response.PermissionNode, parentOf func(*response.PermissionNode) uint64) []*response.PermissionNode {
	return tree.Build(nodes, tree.Options[uint64, *response.PermissionNode]{
		ID:       func(n *response.PermissionNode) uint64 { return n.ID },
		ParentID: parentOf,
		Root:     model.RootPermissionID,
		AddChild: func(parent, child *response.PermissionNode) {
			parent.Children = append(parent.Children, child)
		},
	})
}

// checkParent 父节点必须存在且不是按钮
func (p permissionSrv) checkParent(ctx context.Context, parentID uint64) error {
	if parentID == model.RootPermissionID {
		return nil
	}
	parent, err := p.store.Permissions().Get(ctx, parentID)
	if err != nil {
		if errors.Is(err, code.ErrPermissionNotFound) {
			return pkgerrors.WithStack(code.ErrInvalidParent.WithMessage("parent permission not found"))
		}
		return err
	}
	if parent.Type == model.PermissionTypeButton {
		return pkgerrors.WithStack(code.ErrInvalidParent.WithMessage("a button cannot have children"))
	}
	return nil
}

// checkMove 新的父节点不能是自身或自身的子孙节点
func (p permissionSrv) checkMove(ctx context.Context, id, parentID uint64) error {
	if parentID == id {
		return pkgerrors.WithStack(code.ErrInvalidParent.WithMessage("a permission cannot be its own parent"))
	}
	if err := p.checkParent(ctx, parentID); err != nil {
		return err
	}
	if parentID == model.RootPermissionID {
		return nil
	}
	all, err := p.store.Permissions().List(ctx, nil)
	if err != nil {
		return err
	}
	parents := make(map[uint64]uint64, len(all))
	for _, item := range all {
		parents[item.ID] = item.ParentID
	}
	// 自下而上遍历祖先,visited防止脏数据成环
	visited := make(map[uint64]struct{})
	for current := parentID; current != model.RootPermissionID; current = parents[current] {
		if current == id {
			return pkgerrors.WithStack(code.ErrInvalidParent.
				WithMessage("a permission cannot move under its own descendant"))
		}
		if _, ok := visited[current]; ok {
			break
		}
		visited[current] = struct{}{}
	}
	return nil
}

func filtered(req *request.PermissionTreeReq) bool {
	return req != nil && (req.Name != "" || req.Type != nil || req.Visible != nil)
}

func nullable(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
