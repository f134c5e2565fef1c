package domain

// PageResponse 统一分页响应：data + 回显的页参数 + 总页数
type PageResponse struct {
	Data       any `json:"data"`
	PageNumber int `json:"pageNumber"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
}

// TotalPages = ceil(total / size)，size 由调用方保证 > 0
func TotalPages(total int64, size int) int {
	return int((total + int64(size) - 1) / int64(size))
}
