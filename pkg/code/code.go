package code

// ErrorCode 携带http状态码与业务码的错误
type ErrorCode interface {
	error
	ServiceName() string
	StatusCode() int
	Code() string
	Message() string
	Result() interface{}
	WithStatusCode(int) ErrorCode
	WithCode(string) ErrorCode
	WithMessage(string) ErrorCode
	WithResult(interface{}) ErrorCode
	Is(error) bool
}
