package database

import "gorm.io/gorm"

// Paginate applies offset/limit paging to a GORM query. A page index below
// one would produce a negative offset, so the skip is clamped to zero.
func Paginate(pageIndex, pageSize int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		offset := (pageIndex - 1) * pageSize
		if offset < 0 {
			offset = 0
		}
		return db.Offset(offset).Limit(pageSize)
	}
}
