package storage

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"gorm.io/gorm"

	"rbac-admin/pkg/utils/v"
)

// SQLBuilder 将参数组装成 gorm.DB 即预处理的sql语句
type SQLBuilder interface {
	Build(ctx context.Context, query *gorm.DB) *gorm.DB
}

// Pagination 分页
type Pagination struct {
	// 查询第几页
	// Example: 1
	PageNum int `form:"page_num,default=1" json:"page_num" binding:"omitempty,min=0"`
	// 查询每页显示条目,-1表示全量查询
	// Example: 20
	PageSize int `form:"page_size,default=20" json:"page_size" binding:"omitempty,min=-1,max=500"`
	// 总计条目
	// Example: 300
	Total int64 `form:"-" json:"total"`
}

func (p *Pagination) Build(_ context.Context, query *gorm.DB) *gorm.DB {
	if p.Total == 0 {
		// 统计失败时错误挂到query上,由后续Find返回
		if err := query.Session(&gorm.Session{}).Count(&p.Total).Error; err != nil {
			_ = query.AddError(err)
			return query
		}
	}
	// -1表示全量查询
	if p.PageSize < 0 {
		return query
	}
	if p.PageNum == 0 {
		p.PageNum = v.DefaultPageNum
	}
	if p.PageSize == 0 {
		p.PageSize = v.DefaultPageSize
	}
	return query.Limit(p.PageSize).Offset((p.PageNum - 1) * p.PageSize)
}

// Sort 排序
type Sort struct {
	// 排序信息【格式:字段 排序方式】,desc-降序,asc-升序,默认降序排列,例如:[created_at asc]
	// 给多个字段排序 created_at, id asc => order by created_at desc, id asc
	SortField string `form:"sort" json:"-" binding:"omitempty,order"`
}

func (s *Sort) Build(_ context.Context, query *gorm.DB) *gorm.DB {
	defaultCreatedAtSort := true
	if s.SortField != "" {
		for _, field := range strings.Split(s.SortField, ",") {
			field = strings.TrimSpace(field)
			if strings.HasPrefix(field, "created_at") {
				defaultCreatedAtSort = false
			}
			// 如果排序没有明确要按asc或desc来排序，则按照默认排序(倒序)
			lower := strings.ToLower(field)
			if !strings.HasSuffix(lower, " asc") && !strings.HasSuffix(lower, " desc") {
				query = query.Order(fmt.Sprintf("%s desc", field))
				continue
			}
			query = query.Order(field)
		}
	}
	if defaultCreatedAtSort {
		// 默认按created_at倒序排列,id兜底保证分页稳定
		query = query.Order("created_at desc").Order("id desc")
	}
	return query
}

// Allow 排序字段必须在columns内
func (s *Sort) Allow(columns ...string) error {
	for _, field := range strings.Split(s.SortField, ",") {
		parts := strings.Fields(field)
		if len(parts) == 0 {
			continue
		}
		if !slices.Contains(columns, parts[0]) {
			return fmt.Errorf("sort field %s is not supported", parts[0])
		}
	}
	return nil
}

type ListQuery struct {
	Pagination
	Sort
}

func (l *ListQuery) Build(ctx context.Context, query *gorm.DB) *gorm.DB {
	query = l.Sort.Build(ctx, query)
	return l.Pagination.Build(ctx, query)
}
