// Package dataset defines typed records of the YAML datasets and the
// Reader contract used by loaders.
//
// Keys follow the source files: provinces.yml uses French administrative
// terms (departement, commune, arrondissement, quartier), while
// universities.yml, faculties.yml and formations files use English keys.
package dataset

import "context"

// Reader provides parsed dataset files. Every call reads the files from
// disk again, nothing is cached.
type Reader interface {
	// Emergency returns content of emergency.yml.
	Emergency() (Emergency, error)

	// Faculties returns entries of faculties.yml.
	Faculties() ([]FacultyGroup, error)

	// Provinces returns entries of provinces.yml.
	Provinces() ([]Province, error)

	// Universities returns entries of universities.yml.
	Universities() ([]University, error)

	// Courses returns courses of all files in the formations directory.
	// Every course carries the short name of the university from the `id`
	// field of its file.
	Courses(ctx context.Context) ([]Course, error)
}

// Emergency keeps emergency.yml as decoded YAML. No loader consumes it,
// so its layout is not fixed.
type Emergency struct {
	Content any
}

// Province is a top-level entry of provinces.yml.
type Province struct {
	Name     string    `yaml:"lib_dep"  validate:"required"`
	Communes []Commune `yaml:"communes" validate:"dive"`
}

// Commune becomes a City.
type Commune struct {
	Name            string           `yaml:"lib_com"         validate:"required"`
	Arrondissements []Arrondissement `yaml:"arrondissements" validate:"dive"`
}

// Arrondissement becomes a District.
type Arrondissement struct {
	Name      string     `yaml:"lib_arrond" validate:"required"`
	Quartiers []Quartier `yaml:"quartiers"  validate:"dive"`
}

// Quartier becomes a Neighborhood.
type Quartier struct {
	Name string `yaml:"lib_quart" validate:"required"`
}

// University is an entry of universities.yml.
type University struct {
	// ShortName is used by faculties.yml and formations files to refer
	// to the university.
	ShortName string   `yaml:"id"      validate:"required"`
	Name      string   `yaml:"name"    validate:"required"`
	Address   string   `yaml:"address"`
	Phone     string   `yaml:"phone"`
	Email     string   `yaml:"email"`
	URL       string   `yaml:"url"`
	Type      string   `yaml:"type"`
	Cities    []string `yaml:"cities"`
}

// FacultyGroup is an entry of faculties.yml: faculties of one university.
type FacultyGroup struct {
	University string    `yaml:"id"        validate:"required"`
	Faculties  []Faculty `yaml:"faculties" validate:"dive"`
}

// Faculty of a university located in a city.
type Faculty struct {
	ShortName string   `yaml:"id"     validate:"required"`
	Name      string   `yaml:"name"   validate:"required"`
	City      string   `yaml:"city"   validate:"required"`
	Fields    []string `yaml:"fields"`
}

// Formation is the content of one file in the formations directory.
type Formation struct {
	University string   `yaml:"id"      validate:"required"`
	Courses    []Course `yaml:"courses" validate:"dive"`
}

// Course is a study programme. University is not part of the course
// entry, it is copied from the Formation that contains it.
type Course struct {
	Name         string   `yaml:"name"         validate:"required"`
	Description  string   `yaml:"description"`
	Prerequisite string   `yaml:"prerequisite"`
	YearsOfStudy string   `yaml:"yearsofstudy"`
	Faculty      string   `yaml:"faculty"`
	Fields       []string `yaml:"fields"`
	Roles        []string `yaml:"roles"`
	University   string   `yaml:"-"`
}
