package iodataset

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/opendata/pkg/errcode"
)

// FileNotFoundError is returned when a dataset file or directory does
// not exist.
func FileNotFoundError(path string, err error) error {
	msg := `Dataset file <em>%s</em> does not exist

<em>How to fix:</em>
  1. Check the data directory: <em>opendata --data-dir DIR</em>
  2. Or set <em>data_dir</em> in ~/.config/opendata/config.yaml`

	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DatasetFileNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: file %s not found: %w",
			fn.Name(), path, err),
	}
}

// ReadError is returned when a dataset file exists but cannot be read.
func ReadError(path string, err error) error {
	msg := "Cannot read dataset <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DatasetReadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot read %s: %w", fn.Name(), path, err),
	}
}

// ParseError is returned for malformed or mistyped YAML.
func ParseError(path string, err error) error {
	msg := "Cannot parse dataset <em>%s</em>: %s"
	vars := []any{path, err.Error()}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DatasetParseError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot parse %s: %w", fn.Name(), path, err),
	}
}

// RecordError is returned when a decoded record misses an identifying
// field. Entry is -1 for single-document files.
func RecordError(path string, entry int, key, tag string, err error) error {
	msg := "Invalid record in <em>%s</em>, entry %d: key <em>%s</em> failed '%s' check"
	vars := []any{path, entry, key, tag}
	return &gn.Error{
		Code: errcode.DatasetParseError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("invalid record %d in %s, key %s: %w",
			entry, path, key, err),
	}
}
