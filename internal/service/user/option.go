package user

import "rbac-admin/pkg/password"

type option struct {
	passwordLength int
	passwordCost   int
}

type Option func(*option)

// WithPasswordLength 临时密码长度
func WithPasswordLength(length int) Option {
	return func(o *option) {
		o.passwordLength = length
	}
}

// WithPasswordCost bcrypt加密轮数
func WithPasswordCost(cost int) Option {
	return func(o *option) {
		o.passwordCost = cost
	}
}

func newOption(opts ...Option) option {
	o := option{
		passwordLength: 12,
		passwordCost:   password.DefaultCost,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
