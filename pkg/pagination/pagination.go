package pagination

// Page 分页元数据，skip/limit 窗口 + 过滤后总数计算得出。
type Page struct {
	CurrentPage int   `json:"current_page"`
	TotalPages  int   `json:"total_pages"`
	IsLastPage  bool  `json:"is_last_page"`
	TotalCount  int64 `json:"total_count"`
}

// Paginate 根据窗口参数与总数生成分页元数据。
// current_page = skip/limit + 1；total_pages = ceil(total/limit)。
func Paginate(skip, limit int, total int64) Page {
	return Page{
		CurrentPage: skip/limit + 1,
		TotalPages:  int((total + int64(limit) - 1) / int64(limit)),
		IsLastPage:  int64(skip+limit) >= total,
		TotalCount:  total,
	}
}
