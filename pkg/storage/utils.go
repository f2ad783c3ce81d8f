package storage

import "strings"

// likeEscape mysql与sqlite都可用的转义字符
const likeEscape = "!"

var likeReplacer = strings.NewReplacer(likeEscape, likeEscape+likeEscape, "%", likeEscape+"%", "_", likeEscape+"_")

// EscapeLike 转义LIKE通配符
func EscapeLike(s string) string {
	return likeReplacer.Replace(s)
}

// Contains 构造包含匹配的LIKE条件与参数
func Contains(column, s string) (string, string) {
	return column + " LIKE ? ESCAPE '" + likeEscape + "'", "%" + EscapeLike(s) + "%"
}
