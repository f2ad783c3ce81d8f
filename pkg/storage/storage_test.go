package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type widget struct {
	Base
	Name    string  `gorm:"column:name;type:varchar(64);not null;uniqueIndex:uk_widget_name,priority:1"`
	Deleted Deleted `gorm:"column:deleted;not null;default:0;uniqueIndex:uk_widget_name,priority:2"`
}

func openTestDB(t *testing.T) *DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := Open(context.Background(), sqlite.Open(dsn), WithMaxOpenConn(1), WithMaxIdleConn(1))
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&widget{}))
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestSoftDelete(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	w := &widget{Name: "a"}
	require.NoError(t, db.With(ctx).Create(w).Error)
	assert.NotZero(t, w.ID)

	require.NoError(t, db.With(ctx).Delete(&widget{}, w.ID).Error)

	var found widget
	err := db.With(ctx).First(&found, w.ID).Error
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	var raw widget
	require.NoError(t, db.With(ctx).Unscoped().First(&raw, w.ID).Error)
	assert.Equal(t, Deleted(w.ID), raw.Deleted)

	// 软删除后同名记录可以再次创建
	again := &widget{Name: "a"}
	require.NoError(t, db.With(ctx).Create(again).Error)

	dup := &widget{Name: "a"}
	err = db.With(ctx).Create(dup).Error
	require.Error(t, err)
	key, ok := DuplicateKey(err)
	assert.True(t, ok)
	assert.Contains(t, key, "name")
}

func TestSoftDeletedRowsAreNotUpdated(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	w := &widget{Name: "b"}
	require.NoError(t, db.With(ctx).Create(w).Error)
	require.NoError(t, db.With(ctx).Delete(&widget{}, w.ID).Error)

	result := db.With(ctx).Model(&widget{}).Where("id = ?", w.ID).Update("name", "c")
	require.NoError(t, result.Error)
	assert.Zero(t, result.RowsAffected)
}

func TestAuditFilled(t *testing.T) {
	OperatorSetFunc(func(ctx context.Context) uint64 { return 42 })
	defer OperatorSetFunc(nil)

	db := openTestDB(t)
	w := &widget{Name: "audited"}
	require.NoError(t, db.With(context.Background()).Create(w).Error)
	assert.Equal(t, uint64(42), w.CreatedBy)
	assert.Equal(t, uint64(42), w.UpdatedBy)
}

func TestListQuery(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	for i := 0; i < 5; i++ {
		require.NoError(t, db.With(ctx).Create(&widget{Name: fmt.Sprintf("w%d", i)}).Error)
	}
	q := &ListQuery{
		Pagination: Pagination{PageNum: 2, PageSize: 2},
		Sort:       Sort{SortField: "name asc"},
	}
	var list []*widget
	require.NoError(t, q.Build(ctx, db.With(ctx).Model(&widget{})).Find(&list).Error)
	assert.Equal(t, int64(5), q.Total)
	require.Len(t, list, 2)
	assert.Equal(t, "w2", list[0].Name)
	assert.Equal(t, "w3", list[1].Name)
}

func TestPaginationCountError(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	p := &Pagination{PageNum: 1, PageSize: 10}
	query := p.Build(ctx, db.With(ctx).Table("missing_widget"))
	require.Error(t, query.Error)
	assert.Zero(t, p.Total)

	var list []*widget
	assert.Error(t, query.Find(&list).Error)
}

func TestSortAllow(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		wantErr bool
	}{
		{name: "empty", field: ""},
		{name: "one", field: "name"},
		{name: "mult", field: "name asc, created_at DESC"},
		{name: "not_allowed", field: "password asc", wantErr: true},
		{name: "mult_not_allowed", field: "name,password", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Sort{SortField: tt.field}
			err := s.Allow("name", "created_at")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestContains(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	for _, name := range []string{"100%", "1000", "a_b", "axb"} {
		require.NoError(t, db.With(ctx).Create(&widget{Name: name}).Error)
	}
	var list []*widget
	cond, arg := Contains("name", "0%")
	require.NoError(t, db.With(ctx).Where(cond, arg).Find(&list).Error)
	require.Len(t, list, 1)
	assert.Equal(t, "100%", list[0].Name)

	cond, arg = Contains("name", "_")
	list = nil
	require.NoError(t, db.With(ctx).Where(cond, arg).Find(&list).Error)
	require.Len(t, list, 1)
	assert.Equal(t, "a_b", list[0].Name)
}

func TestDuplicateKeyMySQL(t *testing.T) {
	err := &mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'admin-0' for key 'sys_user.uk_user_username'"}
	key, ok := DuplicateKey(fmt.Errorf("wrap: %w", err))
	assert.True(t, ok)
	assert.Equal(t, "sys_user.uk_user_username", key)

	_, ok = DuplicateKey(&mysql.MySQLError{Number: 1054, Message: "Unknown column"})
	assert.False(t, ok)
	_, ok = DuplicateKey(errors.New("other"))
	assert.False(t, ok)
	_, ok = DuplicateKey(nil)
	assert.False(t, ok)
}

func TestDsn(t *testing.T) {
	assert.Equal(t,
		"root:pwd@tcp(127.0.0.1:3306)/rbac?charset=utf8mb4&parseTime=true&loc=UTC&timeout=5s",
		Dsn("root", "pwd", "127.0.0.1", "3306", "rbac", "utf8mb4", 5e9, 0, 0))
}
