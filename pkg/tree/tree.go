// Package tree 将带父id的扁平节点列表还原为森林
package tree

// Options 描述节点的id、父id及挂载子节点的方式
type Options[K comparable, T any] struct {
	ID       func(T) K
	ParentID func(T) K
	// Root 父id等于Root的节点作为根节点
	Root K
	// AddChild 将child追加到parent的子节点列表
	AddChild func(parent, child T)
}

// Build 一次遍历建立索引,二次遍历挂载子节点,时间与空间均为O(n).
// 根节点与兄弟节点保持输入顺序,父节点不存在的孤儿节点被丢弃.
// T通常为指针类型,AddChild直接修改节点本身.
func Build[K comparable, T any](items []T, opts Options[K, T]) []T {
	index := make(map[K]T, len(items))
	for _, item := range items {
		index[opts.ID(item)] = item
	}
	roots := make([]T, 0)
	for _, item := range items {
		parentID := opts.ParentID(item)
		if parentID == opts.Root {
			roots = append(roots, item)
			continue
		}
		parent, ok := index[parentID]
		if !ok {
			continue
		}
		opts.AddChild(parent, item)
	}
	return roots
}

// Flatten 深度优先展开森林
func Flatten[T any](roots []T, children func(T) []T) []T {
	var out []T
	var walk func([]T)
	walk = func(nodes []T) {
		for _, node := range nodes {
			out = append(out, node)
			walk(children(node))
		}
	}
	walk(roots)
	return out
}
