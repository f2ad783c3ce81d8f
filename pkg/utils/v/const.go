package v

const (
	Decimal = 10

	FormatTime = "2006-01-02 15:04:05"
)

const (
	// 分页信息
	DefaultPageNum  = 1
	DefaultPageSize = 20
	MaxPageSize     = 500
)

// ServiceName 服务名,未配置service.name时使用
const ServiceName = "rbac-admin"
