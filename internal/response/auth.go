package response

// LoginRes 登录成功
type LoginRes struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
	// 有效期,单位秒
	ExpiresIn int64 `json:"expiresIn"`
}

// Authorization 用户的有效角色、菜单树与按钮权限标识
type Authorization struct {
	Roles   []*RoleBrief      `json:"roles"`
	Menus   []*PermissionNode `json:"menus"`
	Buttons []string          `json:"buttons"`
}

// Profile 当前登录用户信息
type Profile struct {
	*User
	Menus   []*PermissionNode `json:"menus"`
	Buttons []string          `json:"buttons"`
}
