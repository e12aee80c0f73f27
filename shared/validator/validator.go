package validator

import (
	"errors"
	"fmt"
	"strings"

	val "github.com/go-playground/validator/v10"

	"gipnoze/shared/failure"
)

var validate = val.New(val.WithRequiredStructEnabled())

// Struct validates a struct by its validate tags and converts violations into
// a single bad-request failure listing the offending fields.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var valErrs val.ValidationErrors
	if !errors.As(err, &valErrs) {
		return failure.BadRequest(err)
	}

	fields := make([]string, 0, len(valErrs))
	for _, fieldErr := range valErrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fieldErr.Field(), fieldErr.Tag()))
	}

	return failure.BadRequestFromString("invalid fields: " + strings.Join(fields, ", "))
}
