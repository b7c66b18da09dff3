package repository

import "gorm.io/gorm"

// applyPagination 统一分页：page 与 pageSize 均需为正数才生效
func applyPagination(query *gorm.DB, page, pageSize int) *gorm.DB {
	if page > 0 && pageSize > 0 {
		query = query.Offset((page - 1) * pageSize).Limit(pageSize)
	}
	return query
}
