package iodataset_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/opendata/internal/iodataset"
	"github.com/gnames/opendata/internal/iotesting"
	"github.com/gnames/opendata/pkg/config"
	"github.com/gnames/opendata/pkg/dataset"
	"github.com/gnames/opendata/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReader(t *testing.T, files map[string]string) dataset.Reader {
	t.Helper()
	dir := t.TempDir()
	iotesting.WriteDataset(t, dir, files)
	return iodataset.New(config.NewDatasetPaths(dir), 2)
}

func errCode(t *testing.T, err error) gn.ErrorCode {
	t.Helper()
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")
	return gnErr.Code
}

func TestProvinces(t *testing.T) {
	r := newReader(t, iotesting.Dataset())

	res, err := r.Provinces()
	require.NoError(t, err)
	require.Len(t, res, 2)

	assert.Equal(t, "LITTORAL", res[0].Name)
	require.Len(t, res[0].Communes, 1)
	douala := res[0].Communes[0]
	assert.Equal(t, "DOUALA", douala.Name)
	require.Len(t, douala.Arrondissements, 2)
	assert.Equal(t, "DOUALA 1ER", douala.Arrondissements[0].Name)
	assert.Len(t, douala.Arrondissements[0].Quartiers, 3)
	assert.Equal(t, "AKWA", douala.Arrondissements[0].Quartiers[0].Name)

	// missing lists are empty
	mbalmayo := res[1].Communes[1]
	assert.Equal(t, "MBALMAYO", mbalmayo.Name)
	assert.Empty(t, mbalmayo.Arrondissements)
}

func TestUniversities(t *testing.T) {
	r := newReader(t, iotesting.Dataset())

	res, err := r.Universities()
	require.NoError(t, err)
	require.Len(t, res, 2)

	udla := res[0]
	assert.Equal(t, "UDLA", udla.ShortName)
	assert.Equal(t, "Université de Douala", udla.Name)
	assert.Equal(t, "233 40 11 28", udla.Phone)
	assert.Equal(t, "public", udla.Type)
	assert.Equal(t, []string{"Douala"}, udla.Cities)
	assert.Equal(t, []string{"Yaounde", "Kribi"}, res[1].Cities)
}

func TestFaculties(t *testing.T) {
	r := newReader(t, iotesting.Dataset())

	res, err := r.Faculties()
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, "UDLA", res[0].University)
	require.Len(t, res[0].Faculties, 2)
	assert.Equal(t, "FS", res[0].Faculties[0].ShortName)
	assert.Equal(t, "Douala", res[0].Faculties[0].City)
	assert.Equal(t, []string{"Mathématiques", "Informatique"},
		res[0].Faculties[0].Fields)
	assert.Empty(t, res[1].Faculties[1].Fields)
}

func TestEmergency(t *testing.T) {
	r := newReader(t, iotesting.Dataset())

	res, err := r.Emergency()
	require.NoError(t, err)
	m, ok := res.Content.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 117, m["police"])
	assert.Len(t, m["hospitals"], 1)
}

func TestCourses(t *testing.T) {
	files := iotesting.Dataset()
	files["formations/.hidden.yml"] = "not: [valid"
	files["formations/nested/skip.yml"] = iotesting.FormationUY1YAML
	r := newReader(t, files)

	res, err := r.Courses(context.Background())
	require.NoError(t, err)
	require.Len(t, res, 4)

	tests := []struct {
		name, univ string
	}{
		{"Génie Civil", "UBDA"},
		{"Licence en Informatique", "UDLA"},
		{"Licence en Mathématiques", "UDLA"},
		{"Doctorat en Médecine", "UY1"},
	}
	for i, v := range tests {
		assert.Equal(t, v.name, res[i].Name)
		assert.Equal(t, v.univ, res[i].University)
	}

	info := res[1]
	assert.Equal(t, "3", info.YearsOfStudy)
	assert.Equal(t, "Faculté des Sciences", info.Faculty)
	assert.Equal(t, []string{"Informatique"}, info.Fields)
	assert.Equal(t, []string{"Développeur", "Analyste"}, info.Roles)
}

func TestCourses_Cancelled(t *testing.T) {
	r := newReader(t, iotesting.Dataset())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Courses(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFileNotFound(t *testing.T) {
	r := iodataset.New(config.NewDatasetPaths(t.TempDir()), 1)

	_, err := r.Provinces()
	assert.Equal(t, errcode.DatasetFileNotFoundError, errCode(t, err))

	_, err = r.Emergency()
	assert.Equal(t, errcode.DatasetFileNotFoundError, errCode(t, err))

	_, err = r.Courses(context.Background())
	assert.Equal(t, errcode.DatasetFileNotFoundError, errCode(t, err))
}

func TestParseError(t *testing.T) {
	tests := []struct {
		msg   string
		files map[string]string
		call  func(dataset.Reader) error
		vars  []any
	}{
		{
			msg:   "malformed yaml",
			files: map[string]string{"provinces.yml": "- lib_dep: [LITTORAL"},
			call:  func(r dataset.Reader) error { _, err := r.Provinces(); return err },
		},
		{
			msg:   "mapping instead of list",
			files: map[string]string{"universities.yml": "id: UDLA\nname: Douala\n"},
			call:  func(r dataset.Reader) error { _, err := r.Universities(); return err },
		},
		{
			msg: "missing nested key",
			files: map[string]string{"provinces.yml": `- lib_dep: LITTORAL
- lib_dep: CENTRE
  communes:
    - lib_com: YAOUNDE
    - arrondissements: []
`},
			call: func(r dataset.Reader) error { _, err := r.Provinces(); return err },
			vars: []any{1, "communes[1].lib_com", "required"},
		},
		{
			msg:   "faculty without city",
			files: map[string]string{"faculties.yml": "- id: UDLA\n  faculties:\n    - id: FS\n      name: Sciences\n"},
			call:  func(r dataset.Reader) error { _, err := r.Faculties(); return err },
			vars:  []any{0, "faculties[0].city", "required"},
		},
		{
			msg:   "formation without id",
			files: map[string]string{"formations/a.yml": "courses:\n  - name: Droit\n"},
			call: func(r dataset.Reader) error {
				_, err := r.Courses(context.Background())
				return err
			},
			vars: []any{-1, "id", "required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			r := newReader(t, tt.files)
			err := tt.call(r)
			assert.Equal(t, errcode.DatasetParseError, errCode(t, err))
			if tt.vars != nil {
				gnErr := err.(*gn.Error)
				require.Len(t, gnErr.Vars, 4)
				assert.Equal(t, tt.vars, gnErr.Vars[1:])
			}
		})
	}
}

func TestNoCaching(t *testing.T) {
	dir := t.TempDir()
	iotesting.WriteDataset(t, dir, iotesting.Dataset())
	r := iodataset.New(config.NewDatasetPaths(dir), 1)

	res, err := r.Provinces()
	require.NoError(t, err)
	assert.Len(t, res, 2)

	path := filepath.Join(dir, config.ProvincesFile)
	require.NoError(t, os.WriteFile(path, []byte("- lib_dep: EST\n"), 0644))

	res, err = r.Provinces()
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "EST", res[0].Name)
}
