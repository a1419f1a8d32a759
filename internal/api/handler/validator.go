package handler

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/campusxp/experience-api/internal/core/domain"
)

// payloadKey is where a validated request body is stored on the echo context.
const payloadKey = "payload"

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
//
// Fields are checked in declaration order and the first failure is reported,
// so the order of fields in a request struct is the order of its rules.
type echoValidator struct {
	v          *validator.Validate
	summaryMax int
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
// summaryMax bounds the "summarymax" tag.
func NewValidator(summaryMax int) *echoValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("summarymax", func(fl validator.FieldLevel) bool {
		return utf8.RuneCountInString(fl.Field().String()) <= summaryMax
	})
	return &echoValidator{v: v, summaryMax: summaryMax}
}

// Validate satisfies the echo.Validator interface. Failures are
// invalid-payload domain errors naming the first failing field.
func (ev *echoValidator) Validate(i any) error {
	err := ev.v.Struct(i)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		return domain.InvalidPayload(ev.fieldError(ve[0]))
	}
	return err
}

// fieldError converts a single ValidationError into a human-readable message.
func (ev *echoValidator) fieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return "Please provide " + field
	case "min":
		return fmt.Sprintf("Please provide %s with at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("Please provide %s with at most %s characters", field, fe.Param())
	case "summarymax":
		return fmt.Sprintf("Please enter %s with max of %d characters", field, ev.summaryMax)
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}

// validatePayload binds the body into a fresh T, validates it and stores it
// for the handler. It short-circuits with invalid-payload on the first failure.
func validatePayload[T any]() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().ContentLength == 0 {
				return domain.ErrEmptyPayload
			}

			p := new(T)
			if err := (&echo.DefaultBinder{}).BindBody(c, p); err != nil {
				var he *echo.HTTPError
				if errors.As(err, &he) && he.Code == http.StatusUnsupportedMediaType {
					return domain.InvalidPayload("Request body must be JSON")
				}
				return domain.InvalidPayload("Request body is not valid JSON")
			}

			if err := c.Validate(p); err != nil {
				return err
			}

			c.Set(payloadKey, p)
			return next(c)
		}
	}
}

// payloadFrom returns the body stored by validatePayload.
func payloadFrom[T any](c echo.Context) (*T, error) {
	p, ok := c.Get(payloadKey).(*T)
	if !ok {
		return nil, domain.ErrEmptyPayload
	}
	return p, nil
}

// ValidateCreateUser checks a registration body.
func ValidateCreateUser() echo.MiddlewareFunc { return validatePayload[createUserRequest]() }

// ValidateUpdateUser checks a profile update body.
func ValidateUpdateUser() echo.MiddlewareFunc { return validatePayload[updateUserRequest]() }

// ValidateExperience checks an experience create/update body.
func ValidateExperience() echo.MiddlewareFunc { return validatePayload[experienceRequest]() }

// ValidateSession checks a session exchange body.
func ValidateSession() echo.MiddlewareFunc { return validatePayload[sessionRequest]() }
