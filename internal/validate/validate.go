// Package validate performs the required-field checks that run before any request leaves the process.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// ErrValidation matches every *Error with errors.Is.
var ErrValidation = errors.New("validation failed")

// Error lists the JSON names of the fields that failed validation, in struct order.
type Error struct {
	Fields []string
}

func (e *Error) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f + " is required"
	}
	return strings.Join(parts, ", ")
}

// Is reports whether target is ErrValidation.
func (e *Error) Is(target error) bool {
	return target == ErrValidation
}

var (
	once     sync.Once
	instance *validator.Validate
)

func get() *validator.Validate {
	once.Do(func() {
		instance = validator.New(validator.WithRequiredStructEnabled())
		instance.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
	})
	return instance
}

// Struct validates the `validate` tags of v, which must be a struct or a pointer to one.
// Blank strings count as missing.
func Struct(v any) error {
	err := get().Struct(v)
	if err == nil {
		return blankStrings(v)
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fe.Field())
		}
		return &Error{Fields: fields}
	}
	return fmt.Errorf("validate: %w", err)
}

// Records validates v when it is a struct, or each element when it is a slice of structs.
// Any other value is accepted as is.
func Records(v any) error {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Struct:
		return Struct(rv.Interface())
	case reflect.Slice:
		for i := 0; i < rv.Len(); i++ {
			if err := Records(rv.Index(i).Interface()); err != nil {
				return fmt.Errorf("item %d: %w", i, err)
			}
		}
	}
	return nil
}

// blankStrings rejects required string fields that contain only whitespace,
// which the required tag alone lets through.
func blankStrings(v any) error {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}
	var fields []string
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if f.Type.Kind() != reflect.String || !strings.Contains(f.Tag.Get("validate"), "required") {
			continue
		}
		if strings.TrimSpace(rv.Field(i).String()) == "" {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "" {
				name = f.Name
			}
			fields = append(fields, name)
		}
	}
	if len(fields) > 0 {
		return &Error{Fields: fields}
	}
	return nil
}
