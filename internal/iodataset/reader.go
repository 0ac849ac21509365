// Package iodataset implements dataset.Reader on top of YAML files.
// This is an impure I/O package: every call reads files from disk.
package iodataset

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gnames/opendata/pkg/config"
	"github.com/gnames/opendata/pkg/dataset"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

type reader struct {
	paths    config.DatasetPaths
	jobs     int
	validate *recordValidator
}

// New creates a Reader for datasets at the given paths. The jobs number
// limits how many formations files are parsed at once.
func New(paths config.DatasetPaths, jobs int) dataset.Reader {
	if jobs < 1 {
		jobs = 1
	}
	return &reader{
		paths:    paths,
		jobs:     jobs,
		validate: newRecordValidator(),
	}
}

// Emergency returns emergency.yml without interpreting it.
func (r *reader) Emergency() (dataset.Emergency, error) {
	var res dataset.Emergency
	data, err := readFile(r.paths.Emergency)
	if err != nil {
		return res, err
	}
	if err = yaml.Unmarshal(data, &res.Content); err != nil {
		return res, ParseError(r.paths.Emergency, err)
	}
	return res, nil
}

func (r *reader) Faculties() ([]dataset.FacultyGroup, error) {
	return readList[dataset.FacultyGroup](r, r.paths.Faculties)
}

func (r *reader) Provinces() ([]dataset.Province, error) {
	return readList[dataset.Province](r, r.paths.Provinces)
}

func (r *reader) Universities() ([]dataset.University, error) {
	return readList[dataset.University](r, r.paths.Universities)
}

// Courses parses formations files concurrently and returns their courses
// in file name order.
func (r *reader) Courses(ctx context.Context) ([]dataset.Course, error) {
	files, err := r.formationFiles()
	if err != nil {
		return nil, err
	}
	slog.Info("Reading formations", "files", len(files), "jobs", r.jobs)

	parts := make([][]dataset.Course, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.jobs)
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			f, err := r.formation(path)
			if err != nil {
				return err
			}
			for j := range f.Courses {
				f.Courses[j].University = f.University
			}
			parts[i] = f.Courses
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	var res []dataset.Course
	for _, v := range parts {
		res = append(res, v...)
	}
	return res, nil
}

// formationFiles lists regular visible files of the formations directory.
// os.ReadDir sorts entries by name.
func (r *reader) formationFiles() ([]string, error) {
	dir := r.paths.Formations
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, FileNotFoundError(dir, err)
		}
		return nil, ReadError(dir, err)
	}

	var res []string
	for _, e := range entries {
		if !e.Type().IsRegular() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		res = append(res, filepath.Join(dir, e.Name()))
	}
	return res, nil
}

func (r *reader) formation(path string) (dataset.Formation, error) {
	var res dataset.Formation
	data, err := readFile(path)
	if err != nil {
		return res, err
	}
	if err = yaml.Unmarshal(data, &res); err != nil {
		return res, ParseError(path, err)
	}
	if err = r.validate.record(path, -1, res); err != nil {
		return res, err
	}
	return res, nil
}

func readList[T any](r *reader, path string) ([]T, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	var res []T
	if err = yaml.Unmarshal(data, &res); err != nil {
		return nil, ParseError(path, err)
	}
	for i := range res {
		if err = r.validate.record(path, i, res[i]); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, FileNotFoundError(path, err)
		}
		return nil, ReadError(path, err)
	}
	return data, nil
}
