// Package schema provides store models for opendata.
// Table names follow GORM defaults. Child rows and join tables are
// removed by the database when their parent row is deleted.
package schema

import "time"

// Province is the first level of the geographic hierarchy.
type Province struct {
	ID uint `gorm:"primaryKey"`

	// Name is the `lib_dep` value of provinces.yml.
	Name string `gorm:"not null"`

	Cities []City `gorm:"constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
}

// City is created from a commune. Universities and faculties refer to
// cities by name.
type City struct {
	ID         uint   `gorm:"primaryKey"`
	Name       string `gorm:"not null;index"`
	ProvinceID uint   `gorm:"not null;index"`

	Districts []District `gorm:"constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
}

// District is created from an arrondissement.
type District struct {
	ID     uint   `gorm:"primaryKey"`
	Name   string `gorm:"not null"`
	CityID uint   `gorm:"not null;index"`

	Neighborhoods []Neighborhood `gorm:"constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
}

// Neighborhood is created from a quartier.
type Neighborhood struct {
	ID         uint   `gorm:"primaryKey"`
	Name       string `gorm:"not null"`
	DistrictID uint   `gorm:"not null;index"`

	CreatedAt time.Time
}

// University is an institution of higher education.
type University struct {
	ID uint `gorm:"primaryKey"`

	// ShortName is the lookup key used by faculties and courses. It is not
	// unique, the lowest ID wins on lookup.
	ShortName string `gorm:"not null;index"`

	// LongName is the display name of the university.
	LongName string `gorm:"not null"`

	Address string
	Phone   string
	Email   string
	URL     string

	// Status is the `type` field of universities.yml (public, private...).
	Status string

	Cities []City `gorm:"many2many:university_cities;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
}

// Faculty belongs to a university and is placed in a city.
type Faculty struct {
	ID        uint   `gorm:"primaryKey"`
	ShortName string `gorm:"index"`
	LongName  string

	CityID uint `gorm:"not null;index"`
	City   City `gorm:"constraint:OnDelete:CASCADE"`

	UniversityID uint       `gorm:"not null;index"`
	University   University `gorm:"constraint:OnDelete:CASCADE"`

	Fields []Field `gorm:"many2many:faculty_fields;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
}

// Course is a study programme offered by a university.
type Course struct {
	ID           uint `gorm:"primaryKey"`
	Name         string
	Description  string
	Prerequisite string

	// YearsOfStudy is kept as text, sources use values like "3" or "3-5".
	YearsOfStudy string

	// Faculty is a free-text label, it does not refer to Faculty rows.
	Faculty string

	UniversityID uint       `gorm:"not null;index"`
	University   University `gorm:"constraint:OnDelete:CASCADE"`

	Fields      []Field      `gorm:"many2many:course_fields;constraint:OnDelete:CASCADE"`
	Professions []Profession `gorm:"many2many:course_professions;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
}

// Field is a domain-of-study tag.
type Field struct {
	ID   uint `gorm:"primaryKey"`
	Name string
}

// Profession is a career tag of a course.
type Profession struct {
	ID   uint `gorm:"primaryKey"`
	Name string
}
