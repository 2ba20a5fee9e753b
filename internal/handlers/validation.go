package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidation makes validation errors report json field names and
// makes the JSON binder reject unknown fields.
func RegisterValidation() {
	registerOnce.Do(func() {
		binding.EnableDecoderDisallowUnknownFields = true

		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			v.RegisterTagNameFunc(func(fld reflect.StructField) string {
				name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
				if name == "-" {
					return ""
				}
				return name
			})
		}
	})
}

// bindJSON binds the request body into req and writes a 400 on failure.
func bindJSON(ctx *gin.Context, req any) bool {
	if err := ctx.ShouldBindJSON(req); err != nil {
		badRequest(ctx, validationMessage(err))
		return false
	}
	return true
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		switch fe.Tag() {
		case "required":
			return fmt.Sprintf("%s is required", fe.Field())
		case "email":
			return fmt.Sprintf("%s must be a valid email address", fe.Field())
		case "min":
			return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
		case "max":
			return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
		default:
			return fmt.Sprintf("%s is invalid", fe.Field())
		}
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return fmt.Sprintf("%s has an invalid type", typeErr.Field)
	}

	if field, ok := strings.CutPrefix(err.Error(), "json: unknown field "); ok {
		return fmt.Sprintf("Unknown field %s", field)
	}

	return "Invalid request body"
}

func isEmail(s string) bool {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return strings.Contains(s, "@")
	}
	return v.Var(s, "required,email") == nil
}
