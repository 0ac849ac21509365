package ioload

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/opendata/pkg/errcode"
)

// NotConnectedError is returned when loading starts without a store
// connection.
func NotConnectedError() error {
	msg := "Load attempted without database connection"

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("not connected to database"),
	}
}

// CreateError is returned when the store rejects a record.
func CreateError(entity, name string, err error) error {
	msg := "Cannot create %s <em>%s</em>"
	vars := []any{entity, name}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)

	return &gn.Error{
		Code: errcode.LoadCreateError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot create %s %q: %w",
			fn.Name(), entity, name, err),
	}
}

// LookupError is returned when a lookup query fails. A record that is
// simply missing is not an error.
func LookupError(entity, name string, err error) error {
	msg := "Cannot look up %s <em>%s</em>"
	vars := []any{entity, name}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)

	return &gn.Error{
		Code: errcode.LoadLookupError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot look up %s %q: %w",
			fn.Name(), entity, name, err),
	}
}

// CancelledError creates an error for when load
// operation is cancelled.
func CancelledError(err error) error {
	msg := "Load operation was cancelled"

	return &gn.Error{
		Code: errcode.LoadCancelledError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("load cancelled: %w", err),
	}
}
