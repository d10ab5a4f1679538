package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	quillerrors "github.com/alexisbeaulieu97/quill/pkg/errors"
)

// convertValidationError normalizes validator errors into quill validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if ve.Tag() == "unique" {
			msg = fmt.Sprintf("%s contains duplicate entries", field)
		}
		return quillerrors.NewValidationError(field, msg, err)
	}

	return quillerrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName drops the root struct name from the namespace, which the
// tag name func already renders with YAML keys.
func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func fieldForPage(index int, field string) string {
	return fmt.Sprintf("pages[%d].%s", index, field)
}

func fieldForNav(index int, field string) string {
	return fmt.Sprintf("nav[%d].%s", index, field)
}
