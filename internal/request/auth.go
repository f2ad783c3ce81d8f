package request

// LoginReq 登录
type LoginReq struct {
	Username string `json:"username" binding:"required,max=32"`
	Password string `json:"password" binding:"required,max=72"`
}
