package timex

import (
	"time"
)

const (
	DefaultLocation  = "Asia/Shanghai"
	TimeFormatLayout = "2006-01-02 15:04:05"
)

// CST 时区数据缺失时退化为固定的+8时区
var CST = func() *time.Location {
	loc, err := time.LoadLocation(DefaultLocation)
	if err != nil {
		return time.FixedZone("CST", 8*60*60)
	}
	return loc
}()

func TimeFormat(t time.Time) string {
	return t.In(CST).Format(TimeFormatLayout)
}

// ISO8601 UTC毫秒精度,用于错误响应的timestamp
func ISO8601(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z07:00")
}
