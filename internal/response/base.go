package response

// IDRes 创建成功后返回的资源id
type IDRes struct {
	ID uint64 `json:"id,string"`
}
