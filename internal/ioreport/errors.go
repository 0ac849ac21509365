package ioreport

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/opendata/pkg/errcode"
)

func NotConnectedError() error {
	msg := "Report attempted without database connection"

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Err:  fmt.Errorf("not connected to database"),
	}
}

func CountError(kind string, err error) error {
	msg := "Cannot count <em>%s</em>"
	vars := []any{kind}

	return &gn.Error{
		Code: errcode.ReportCountError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot count %s: %w", kind, err),
	}
}

func DeleteError(kind string, err error) error {
	msg := `Cannot delete <em>%s</em>

<em>Possible causes:</em>
  - Tables were created without cascading foreign keys
  - Insufficient database permissions`
	vars := []any{kind}

	return &gn.Error{
		Code: errcode.ReportDeleteError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot delete %s: %w", kind, err),
	}
}
