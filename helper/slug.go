package helper

import (
	"fmt"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// GenerateUniqueSlug slugs name and appends -1, -2, ... until no row of model uses it.
// excludeID skips the row being renamed.
func GenerateUniqueSlug(tx *gorm.DB, model any, name string, excludeID uint) string {
	base := slug.Make(name)
	if base == "" {
		base = "item"
	}
	result := base
	i := 1

	for {
		var count int64
		query := tx.Model(model).Where("slug = ?", result)
		if excludeID != 0 {
			query = query.Where("id <> ?", excludeID)
		}
		query.Count(&count)

		if count == 0 {
			break
		}
		result = fmt.Sprintf("%s-%d", base, i)
		i++
	}

	return result
}
