package ioload

import (
	"strings"

	"github.com/gnames/opendata/pkg/schema"
	"gorm.io/gorm"
)

// findCity finds a city by the uppercased name. When several cities
// share the name, the one created first wins.
func findCity(gdb *gorm.DB, name string) (schema.City, bool, error) {
	var res schema.City
	upper := strings.ToUpper(name)
	q := gdb.Where("name = ?", upper).Order("id").Limit(1).Find(&res)
	if q.Error != nil {
		return res, false, LookupError("city", upper, q.Error)
	}
	return res, q.RowsAffected > 0, nil
}

// findUniversity finds a university by its short name. The lowest ID
// wins on duplicates.
func findUniversity(
	gdb *gorm.DB,
	shortName string,
) (schema.University, bool, error) {
	var res schema.University
	q := gdb.Where("short_name = ?", shortName).
		Order("id").Limit(1).Find(&res)
	if q.Error != nil {
		return res, false, LookupError("university", shortName, q.Error)
	}
	return res, q.RowsAffected > 0, nil
}

func fields(names []string) []schema.Field {
	if len(names) == 0 {
		return nil
	}
	res := make([]schema.Field, len(names))
	for i, v := range names {
		res[i] = schema.Field{Name: v}
	}
	return res
}

func professions(names []string) []schema.Profession {
	if len(names) == 0 {
		return nil
	}
	res := make([]schema.Profession, len(names))
	for i, v := range names {
		res[i] = schema.Profession{Name: v}
	}
	return res
}
