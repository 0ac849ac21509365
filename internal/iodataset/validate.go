package iodataset

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// recordValidator checks identifying fields of decoded records and
// reports them by their YAML keys.
type recordValidator struct {
	v *validator.Validate
}

func newRecordValidator() *recordValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &recordValidator{v: v}
}

// record validates one top-level entry. Entry is the index of the entry
// in a list file, or -1 for files with a single document.
func (rv *recordValidator) record(path string, entry int, rec any) error {
	err := rv.v.Struct(rec)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return ParseError(path, err)
	}
	fe := verrs[0]
	return RecordError(path, entry, yamlKey(fe.Namespace()), fe.Tag(), err)
}

// yamlKey drops the Go type name from a validator namespace, so
// "Province.communes[0].lib_com" becomes "communes[0].lib_com".
func yamlKey(ns string) string {
	_, key, ok := strings.Cut(ns, ".")
	if !ok {
		return ns
	}
	return key
}
