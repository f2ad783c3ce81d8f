package storage

import (
	"context"
	"time"

	"gorm.io/gorm"

	"rbac-admin/pkg/idx"
)

type SnowID struct {
	ID uint64 `json:"id,string" gorm:"primaryKey;autoIncrement:false;column:id"`
}

func (b *SnowID) BeforeCreate(*gorm.DB) error {
	if b.ID == 0 {
		snowID, err := idx.NextID()
		if err != nil {
			return err
		}
		b.ID = snowID
	}
	return nil
}

type Time struct {
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;not null;comment:创建时间"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;not null;comment:更新时间"`
}

// Audit 记录操作人
type Audit struct {
	CreatedBy uint64 `json:"created_by,string" gorm:"column:created_by;not null;default:0;comment:创建人"`
	UpdatedBy uint64 `json:"updated_by,string" gorm:"column:updated_by;not null;default:0;comment:更新人"`
}

var operatorFrom func(ctx context.Context) uint64

// OperatorSetFunc 注册从context读取当前操作人id的方法
func OperatorSetFunc(f func(ctx context.Context) uint64) {
	operatorFrom = f
}

// Operator 当前操作人id,未注册或匿名时为0
func Operator(ctx context.Context) uint64 {
	if operatorFrom == nil || ctx == nil {
		return 0
	}
	return operatorFrom(ctx)
}

// FillAudit fill the audit object with the operator read from context.
func (a *Audit) FillAudit(ctx context.Context) {
	operator := Operator(ctx)
	if a.CreatedBy == 0 {
		a.CreatedBy = operator
	}
	if a.UpdatedBy == 0 {
		a.UpdatedBy = operator
	}
}

type Base struct {
	SnowID
	Time
	Audit
}

func (b *Base) BeforeCreate(db *gorm.DB) error {
	b.FillAudit(db.Statement.Context)
	return b.SnowID.BeforeCreate(db)
}
