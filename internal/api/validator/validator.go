package validator

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/Behyna/sms-services/smsactivate/internal/api/contract"
	"github.com/Behyna/sms-services/smsactivate/internal/constants"
	"github.com/Behyna/sms-services/smsactivate/internal/metrics"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

const (
	sep = " and "
)

type Error struct {
	Error       bool
	FailedField string
	Tag         string
	Value       interface{}
}

type IXValidator interface {
	Validator(data any, message string, c *fiber.Ctx) (responseErr contract.Response)
	ValidateQuery(data any, message string, c *fiber.Ctx) (responseErr contract.Response)
	Validate(data interface{}) []Error
}

type XValidator struct {
	validator *validator.Validate
	metrics   *metrics.Metrics
}

func NewXValidator(validator *validator.Validate, metrics *metrics.Metrics) (IXValidator, error) {
	for key, function := range valid {
		if err := validator.RegisterValidation(key, function); err != nil {
			return nil, fmt.Errorf("failed to register validation %q: %w", key, err)
		}
	}

	return &XValidator{
		validator: validator,
		metrics:   metrics,
	}, nil
}

// Validator parses the JSON body into data and validates it. A non-empty Code in
// the result means the request was rejected and the status is already set.
func (x XValidator) Validator(data any, message string, c *fiber.Ctx) (responseErr contract.Response) {
	if err := c.BodyParser(data); err != nil {
		c.Status(http.StatusBadRequest)
		return contract.Response{
			Code:    constants.ErrCodeInvalidRequestBody,
			Message: constants.GetErrorMessage(constants.ErrCodeInvalidRequestBody),
		}
	}

	return x.check(data, message, c)
}

// ValidateQuery is Validator for query-string requests.
func (x XValidator) ValidateQuery(data any, message string, c *fiber.Ctx) (responseErr contract.Response) {
	if err := c.QueryParser(data); err != nil {
		c.Status(http.StatusBadRequest)
		return contract.Response{
			Code:    constants.ErrCodeInvalidRequestBody,
			Message: constants.GetErrorMessage(constants.ErrCodeInvalidRequestBody),
		}
	}

	return x.check(data, message, c)
}

func (x XValidator) check(data any, message string, c *fiber.Ctx) (responseErr contract.Response) {
	if errs := x.Validate(data); len(errs) > 0 && errs[0].Error {
		errMsgs := make([]string, 0)
		for _, err := range errs {
			errMsgs = append(errMsgs, fmt.Sprintf(
				message,
				err.FailedField,
			))

			if x.metrics != nil {
				x.metrics.RecordValidationError(err.FailedField, err.Tag)
			}
		}
		c.Status(http.StatusUnprocessableEntity)

		return contract.Response{
			Code:    constants.ErrCodeValidationFailed,
			Message: strings.Join(errMsgs, sep),
		}
	}

	return responseErr
}

func (x XValidator) Validate(data interface{}) []Error {
	var validationErrors []Error

	errs := x.validator.Struct(data)
	if errs != nil {
		fieldErrs, ok := errs.(validator.ValidationErrors)
		if !ok {
			return []Error{{Error: true, FailedField: "request", Tag: "invalid"}}
		}
		for _, err := range fieldErrs {
			var elem Error
			elem.FailedField = err.Field()
			elem.Tag = err.Tag()
			elem.Value = err.Value()
			elem.Error = true
			validationErrors = append(validationErrors, elem)
		}
	}
	return validationErrors
}
