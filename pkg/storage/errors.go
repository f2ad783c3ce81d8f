package storage

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-sql-driver/mysql"
)

const (
	mysqlDuplicateEntry = 1062
	sqliteUnique        = "UNIQUE constraint failed: "
)

var mysqlKeyCompile = regexp.MustCompile(`for key '([^']+)'`)

// DuplicateKey 判断是否唯一约束冲突,返回冲突的索引名(mysql)或列名(sqlite)
func DuplicateKey(err error) (string, bool) {
	if err == nil {
		return "", false
	}
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		if mysqlErr.Number != mysqlDuplicateEntry {
			return "", false
		}
		if match := mysqlKeyCompile.FindStringSubmatch(mysqlErr.Message); len(match) == 2 {
			return match[1], true
		}
		return mysqlErr.Message, true
	}
	msg := err.Error()
	if index := strings.Index(msg, sqliteUnique); index >= 0 {
		return msg[index+len(sqliteUnique):], true
	}
	return "", false
}
