package storage

import "strconv"

// Exists reports whether a row of the given model carries the identifier
// taken from a route path. A malformed (non-numeric) identifier reports
// false rather than surfacing a query error.
func Exists(model interface{}, id string) bool {
	n, err := strconv.ParseUint(id, 10, 64)
	if err != nil {
		return false
	}
	return ExistsID(model, uint(n))
}

// ExistsID is the typed variant used once an identifier has been parsed.
func ExistsID(model interface{}, id uint) bool {
	var count int64
	if err := DB.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false
	}
	return count > 0
}
