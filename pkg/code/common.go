package code

import "fmt"

// codeLength 业务码长度: 3(service)+4(error)
const codeLength = 7

var (
	// 00~99为服务级别错误码

	ErrInternalServerError = Froze("5000000000", "internal server error")
	ErrInvalidParam        = Froze("4000000001", "invalid request parameter")
	ErrNotFound            = Froze("4040000002", "resource not found")
	ErrNotAllowMethod      = Froze("4050000003", "method not allowed")
	ErrParseContent        = Froze("5000000004", "failed to parse content")
	ErrCodeUnknown         = Froze("5000000005", "unknown error")
	ErrUnauthorized        = Froze("4010000006", "unauthorized")
	ErrForbidden           = Froze("4030000007", "forbidden")
	ErrConflict            = Froze("4090000008", "resource already exists")
)

// AddCode business code to codeMessageBox
func AddCode(m map[ErrorCode]struct{}) error {
	temp := make(map[string]string)
	for errorCode := range map[ErrorCode]struct{}{
		ErrInternalServerError: {},
		ErrInvalidParam:        {},
		ErrNotFound:            {},
		ErrNotAllowMethod:      {},
		ErrParseContent:        {},
		ErrCodeUnknown:         {},
		ErrUnauthorized:        {},
		ErrForbidden:           {},
		ErrConflict:            {},
	} {
		if err := check(errorCode); err != nil {
			return err
		}
		temp[errorCode.Code()] = errorCode.Message()
	}
	for errorCode := range m {
		if err := check(errorCode); err != nil {
			return err
		}
		code := errorCode.Code()
		if value, ok := temp[code]; ok {
			return fmt.Errorf("error code %s(%s) already exists", code, value)
		}
		temp[code] = errorCode.Message()
	}
	return nil
}

// check validate ErrorCode's code must be 3(http)+3(service)+4(error)
func check(err ErrorCode) error {
	code := err.Code()
	statusCode := err.StatusCode()
	if statusCode < 100 || statusCode >= 600 {
		return fmt.Errorf("error code %s has invalid status code %d", code, statusCode)
	}
	if l := len(code); l != codeLength {
		return fmt.Errorf("error code %s is %d,but it must be %d", code, l, codeLength)
	}
	return nil
}
