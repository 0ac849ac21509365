package schema_test

import (
	"testing"

	"github.com/gnames/opendata/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

func openMemory(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.New(sqlite.Config{
		DriverName: "sqlite",
		DSN:        "file::memory:?_pragma=foreign_keys(1)",
	}), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, schema.Migrate(db))
	return db
}

func TestMigrate(t *testing.T) {
	db := openMemory(t)

	tables := []string{
		"provinces", "cities", "districts", "neighborhoods",
		"universities", "faculties", "courses", "fields", "professions",
		"university_cities", "faculty_fields", "course_fields",
		"course_professions",
	}
	for _, v := range tables {
		assert.True(t, db.Migrator().HasTable(v), v)
	}

	// running again keeps existing tables
	require.NoError(t, schema.Migrate(db))
}

func TestAllModels(t *testing.T) {
	models := schema.AllModels()
	assert.Len(t, models, 9)
	assert.IsType(t, &schema.Province{}, models[0])
}

func TestCascadeProvince(t *testing.T) {
	db := openMemory(t)

	prov := schema.Province{
		Name: "Littoral",
		Cities: []schema.City{{
			Name: "DOUALA",
			Districts: []schema.District{{
				Name:          "Douala I",
				Neighborhoods: []schema.Neighborhood{{Name: "Akwa"}},
			}},
		}},
	}
	require.NoError(t, db.Create(&prov).Error)

	univ := schema.University{
		ShortName: "UDLA",
		LongName:  "Université de Douala",
		Cities:    prov.Cities,
	}
	require.NoError(t, db.Create(&univ).Error)

	fac := schema.Faculty{
		ShortName:    "FS",
		LongName:     "Faculté des Sciences",
		CityID:       prov.Cities[0].ID,
		UniversityID: univ.ID,
		Fields:       []schema.Field{{Name: "Sciences"}},
	}
	require.NoError(t, db.Create(&fac).Error)

	res := db.Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&schema.Province{})
	require.NoError(t, res.Error)

	tests := []struct {
		model any
		count int64
	}{
		{&schema.City{}, 0},
		{&schema.District{}, 0},
		{&schema.Neighborhood{}, 0},
		{&schema.Faculty{}, 0},
		{&schema.University{}, 1},
		{&schema.Field{}, 1},
	}
	for _, v := range tests {
		var n int64
		require.NoError(t, db.Model(v.model).Count(&n).Error)
		assert.Equal(t, v.count, n, "%T", v.model)
	}

	var links int64
	require.NoError(t, db.Table("university_cities").Count(&links).Error)
	assert.Zero(t, links)
}

func TestCascadeUniversity(t *testing.T) {
	db := openMemory(t)

	univ := schema.University{ShortName: "UY1", LongName: "Université de Yaoundé I"}
	require.NoError(t, db.Create(&univ).Error)

	course := schema.Course{
		Name:         "Informatique",
		UniversityID: univ.ID,
		Fields:       []schema.Field{{Name: "Informatique"}},
		Professions:  []schema.Profession{{Name: "Développeur"}},
	}
	require.NoError(t, db.Create(&course).Error)

	res := db.Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&schema.University{})
	require.NoError(t, res.Error)

	var n int64
	require.NoError(t, db.Model(&schema.Course{}).Count(&n).Error)
	assert.Zero(t, n)

	require.NoError(t, db.Table("course_professions").Count(&n).Error)
	assert.Zero(t, n)

	// tags stay behind
	require.NoError(t, db.Model(&schema.Profession{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)
}
