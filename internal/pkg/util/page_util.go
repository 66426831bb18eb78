package util

// Paginate 对完整集合做本地分页，返回当前页切片和总页数
// 总页数向上取整，越界的页码得到空切片
func Paginate[T any](items []T, page, size int) ([]T, int) {
	if size <= 0 || page <= 0 {
		return nil, 0
	}

	totalPages := (len(items) + size - 1) / size

	start := (page - 1) * size
	if start >= len(items) {
		return []T{}, totalPages
	}

	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], totalPages
}
