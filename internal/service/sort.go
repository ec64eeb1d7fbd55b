package service

// feed 列表排序枚举 → SQL 排序子句。
// 未识别的取值不做静默兜底，直接拒绝（ErrInvalidSort）。
var feedSortOrders = map[string]string{
	"id_asc":         "id ASC",
	"id_desc":        "id DESC",
	"create_dt_asc":  "create_dt ASC",
	"create_dt_desc": "create_dt DESC",
}

// 评论只按创建时间排序。
var commentSortOrders = map[string]string{
	"create_dt_asc":  "create_dt ASC",
	"create_dt_desc": "create_dt DESC",
}

// parseFeedSort 空值取默认 create_dt_desc。
func parseFeedSort(sortBy string) (string, error) {
	if sortBy == "" {
		sortBy = "create_dt_desc"
	}
	order, ok := feedSortOrders[sortBy]
	if !ok {
		return "", ErrInvalidSort
	}
	return order, nil
}

func parseCommentSort(sortBy string) (string, error) {
	if sortBy == "" {
		sortBy = "create_dt_desc"
	}
	order, ok := commentSortOrders[sortBy]
	if !ok {
		return "", ErrInvalidSort
	}
	return order, nil
}
