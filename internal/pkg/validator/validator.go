package validator

import (
	stderrors "errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/parking-registry/internal/pkg/errors"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// В деталях ошибки используем имена полей из JSON/query, а не Go-имена
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "query"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})
}

// Validate - валидация структуры. Ошибки валидации возвращаются как
// errors.ErrValidation с деталями по полям.
func Validate(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return errors.ErrInvalidRequest
	}

	return errors.ErrValidation.WithDetails(FieldErrors(verrs))
}

// FieldErrors преобразует ошибки валидатора в map поле -> правило
func FieldErrors(verrs validator.ValidationErrors) map[string]interface{} {
	details := make(map[string]interface{}, len(verrs))
	for _, fe := range verrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		details[fe.Field()] = rule
	}
	return details
}

// GetValidator - получить валидатор для кастомной конфигурации
func GetValidator() *validator.Validate {
	return validate
}
