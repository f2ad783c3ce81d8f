package v

import "net/textproto"

var (
	HeaderTraceID       = textproto.CanonicalMIMEHeaderKey("X-Trace-ID")
	HeaderAuthorization = textproto.CanonicalMIMEHeaderKey("Authorization")
	HeaderRealIP        = textproto.CanonicalMIMEHeaderKey("X-Real-IP")
)

// BearerPrefix Authorization请求头的token前缀
const BearerPrefix = "Bearer "
