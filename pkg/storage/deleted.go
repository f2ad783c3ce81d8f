package storage

import (
	"reflect"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/schema"
)

// Deleted 软删除标记,0表示未删除,删除时写入记录自身id,
// 因此 (列, deleted) 组合唯一索引只约束未删除的记录
type Deleted uint64

func (Deleted) QueryClauses(f *schema.Field) []clause.Interface {
	return []clause.Interface{SoftDeletedQueryClause{Field: f}}
}

func (Deleted) UpdateClauses(f *schema.Field) []clause.Interface {
	return []clause.Interface{SoftDeletedQueryClause{Field: f}}
}

func (Deleted) DeleteClauses(f *schema.Field) []clause.Interface {
	return []clause.Interface{SoftDeleteDeletedClause{Field: f}}
}

type SoftDeletedQueryClause struct {
	Field *schema.Field
}

func (SoftDeletedQueryClause) Name() string {
	return ""
}

func (SoftDeletedQueryClause) Build(clause.Builder) {
}

func (SoftDeletedQueryClause) MergeClause(*clause.Clause) {
}

func (s SoftDeletedQueryClause) ModifyStatement(stmt *gorm.Statement) {
	if _, ok := stmt.Clauses["soft_delete_enabled"]; ok || stmt.Unscoped {
		return
	}
	if c, ok := stmt.Clauses["WHERE"]; ok {
		if where, ok := c.Expression.(clause.Where); ok && len(where.Exprs) > 1 {
			for _, expr := range where.Exprs {
				if orCond, ok := expr.(clause.OrConditions); ok && len(orCond.Exprs) == 1 {
					where.Exprs = []clause.Expression{clause.And(where.Exprs...)}
					c.Expression = where
					stmt.Clauses["WHERE"] = c
					break
				}
			}
		}
	}
	stmt.AddClause(clause.Where{Exprs: []clause.Expression{
		clause.Eq{Column: clause.Column{Table: clause.CurrentTable, Name: s.Field.DBName}, Value: 0},
	}})
	stmt.Clauses["soft_delete_enabled"] = clause.Clause{}
}

type SoftDeleteDeletedClause struct {
	Field *schema.Field
}

func (SoftDeleteDeletedClause) Name() string {
	return ""
}

func (SoftDeleteDeletedClause) Build(clause.Builder) {
}

func (SoftDeleteDeletedClause) MergeClause(*clause.Clause) {
}

func (s SoftDeleteDeletedClause) ModifyStatement(stmt *gorm.Statement) {
	if stmt.SQL.Len() != 0 || stmt.Unscoped {
		return
	}
	idField, ok := stmt.Schema.FieldsByDBName["id"]
	if !ok {
		_ = stmt.AddError(gorm.ErrPrimaryKeyRequired)
		return
	}
	clauseSet := clause.Set{{
		Column: clause.Column{Name: s.Field.DBName},
		Value:  clause.Column{Name: idField.DBName},
	}}
	if field, ok := stmt.Schema.FieldsByName["UpdatedAt"]; ok {
		clauseSet = append(clauseSet, clause.Assignment{Column: clause.Column{Name: field.DBName}, Value: stmt.NowFunc()})
	}
	stmt.AddClause(clauseSet)

	_, queryValues := schema.GetIdentityFieldValuesMap(stmt.Context, stmt.ReflectValue, stmt.Schema.PrimaryFields)
	column, values := schema.ToQueryValues(stmt.Table, stmt.Schema.PrimaryFieldDBNames, queryValues)
	if len(values) > 0 {
		stmt.AddClause(clause.Where{Exprs: []clause.Expression{clause.IN{Column: column, Values: values}}})
	}
	if stmt.ReflectValue.CanAddr() && stmt.Dest != stmt.Model && stmt.Model != nil {
		_, queryValues = schema.GetIdentityFieldValuesMap(stmt.Context, reflect.ValueOf(stmt.Model), stmt.Schema.PrimaryFields)
		column, values = schema.ToQueryValues(stmt.Table, stmt.Schema.PrimaryFieldDBNames, queryValues)
		if len(values) > 0 {
			stmt.AddClause(clause.Where{Exprs: []clause.Expression{clause.IN{Column: column, Values: values}}})
		}
	}

	if _, ok := stmt.Clauses["WHERE"]; !stmt.AllowGlobalUpdate && !ok {
		_ = stmt.AddError(gorm.ErrMissingWhereClause)
	} else {
		SoftDeletedQueryClause(s).ModifyStatement(stmt)
	}

	stmt.AddClauseIfNotExists(clause.Update{})
	stmt.Build("UPDATE", "SET", "WHERE")
}
