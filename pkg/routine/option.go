package routine

type option struct {
	limit int
}

type Option func(*option)

// WithLimit 限制同时运行的goroutine数量
func WithLimit(limit int) Option {
	return func(o *option) { o.limit = limit }
}
