package middleware

import (
	"errors"

	"github.com/Behyna/sms-services/smsactivate/internal/api/contract"
	"github.com/Behyna/sms-services/smsactivate/internal/constants"
	"github.com/Behyna/sms-services/smsactivate/pkg/smsactivate"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func ErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var providerErr *smsactivate.Error
		if errors.As(err, &providerErr) {
			return handleProviderError(c, providerErr)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(contract.Response{
				Code:    constants.ErrCodeRequestFailed,
				Message: fiberErr.Message,
			})
		}

		logger.Error("Unhandled request error",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err))

		return c.Status(fiber.StatusInternalServerError).JSON(contract.Response{
			Code:    constants.ErrCodeInternalError,
			Message: constants.GetErrorMessage(constants.ErrCodeInternalError),
		})
	}
}

func handleProviderError(c *fiber.Ctx, err *smsactivate.Error) error {
	response := contract.ResponseError{
		Code:    string(err.Code),
		Kind:    string(err.Kind),
		Message: err.Message,
	}

	switch err.Kind {
	case smsactivate.KindPriceTooLow:
		minPrice := err.MinPrice
		response.MinPrice = &minPrice
	case smsactivate.KindBanned:
		response.BannedUntil = err.BannedUntil
	case smsactivate.KindTransport:
		response.Code = constants.ErrCodeProviderUnavailable
		response.Message = constants.GetErrorMessage(constants.ErrCodeProviderUnavailable)
	}

	return c.Status(constants.GetKindHTTPStatus(err.Kind)).JSON(response)
}
