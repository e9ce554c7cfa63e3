package v1

import (
	"strconv"
	"time"

	"github.com/Behyna/sms-services/smsactivate/internal/api/contract"
	"github.com/Behyna/sms-services/smsactivate/internal/api/validator"
	"github.com/Behyna/sms-services/smsactivate/internal/constants"
	"github.com/Behyna/sms-services/smsactivate/internal/service"
	"github.com/Behyna/sms-services/smsactivate/pkg/smsactivate"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const codeSuccess = "success"

type Handler struct {
	logger            *zap.Logger
	activationService service.ActivationService
	XValidator        validator.IXValidator
}

func NewHandler(logger *zap.Logger, activationService service.ActivationService, XValidator validator.IXValidator) *Handler {
	return &Handler{
		logger:            logger,
		activationService: activationService,
		XValidator:        XValidator,
	}
}

func (h *Handler) Pong(c *fiber.Ctx) error {
	return c.SendString("pong")
}

func (h *Handler) GetBalance(c *fiber.Ctx) error {
	balance, err := h.activationService.GetBalance(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(contract.Response{
		Successful: true,
		Code:       codeSuccess,
		Message:    constants.BalanceRetrieved,
		Result:     BalanceResponse{Balance: balance},
	})
}

func (h *Handler) CreateNumber(c *fiber.Ctx) error {
	start := time.Now()

	var handlerRequest NumberRequest
	if responseError := h.XValidator.Validator(&handlerRequest, constants.MessageErrorFormat, c); responseError.Code != "" {
		h.logger.Error("Error Validator", zap.Any("request", handlerRequest))
		return c.JSON(responseError)
	}

	request := smsactivate.NumberRequest{
		Service:  handlerRequest.Service,
		Country:  handlerRequest.Country,
		Operator: handlerRequest.Operators,
		MaxPrice: handlerRequest.MaxPrice,
		Forward:  handlerRequest.Forward,
	}

	var (
		result       any
		activationID int64
	)
	if handlerRequest.V2 {
		number, err := h.activationService.GetNumberV2(c.UserContext(), request)
		if err != nil {
			return err
		}
		result, activationID = number, number.ActivationID
	} else {
		number, err := h.activationService.GetNumber(c.UserContext(), request)
		if err != nil {
			return err
		}
		result, activationID = number, number.ActivationID
	}

	h.logger.Info("Number created successfully",
		zap.Int64("activation_id", activationID),
		zap.String("service", request.Service),
		zap.Duration("duration", time.Since(start)),
	)

	return c.Status(fiber.StatusCreated).JSON(contract.Response{
		Successful: true,
		Code:       codeSuccess,
		Message:    constants.NumberCreated,
		Result:     result,
	})
}

func (h *Handler) GetStatus(c *fiber.Ctx) error {
	activationID, ok := parseActivationID(c)
	if !ok {
		return h.reject(c, constants.ErrCodeInvalidActivationID)
	}

	if c.QueryBool("v2") {
		status, err := h.activationService.GetStatusV2(c.UserContext(), activationID)
		if err != nil {
			return err
		}
		return c.JSON(contract.Response{Successful: true, Code: codeSuccess, Result: status})
	}

	status, err := h.activationService.GetStatus(c.UserContext(), activationID)
	if err != nil {
		return err
	}

	return c.JSON(contract.Response{
		Successful: true,
		Code:       codeSuccess,
		Result: StatusResponse{
			ActivationID: activationID,
			Status:       status.Status,
			Code:         status.Code,
		},
	})
}

func (h *Handler) SetStatus(c *fiber.Ctx) error {
	activationID, ok := parseActivationID(c)
	if !ok {
		return h.reject(c, constants.ErrCodeInvalidActivationID)
	}

	var handlerRequest SetStatusRequest
	if responseError := h.XValidator.Validator(&handlerRequest, constants.MessageErrorFormat, c); responseError.Code != "" {
		h.logger.Error("Error Validator", zap.Any("request", handlerRequest))
		return c.JSON(responseError)
	}

	action, err := smsactivate.ParseAction(handlerRequest.Action)
	if err != nil {
		return h.reject(c, constants.ErrCodeInvalidAction)
	}

	result, err := h.activationService.SetStatus(c.UserContext(), activationID, action)
	if err != nil {
		return err
	}

	return c.JSON(contract.Response{
		Successful: true,
		Code:       codeSuccess,
		Message:    constants.StatusUpdated,
		Result:     SetStatusResponse{ActivationID: activationID, Result: result},
	})
}

func (h *Handler) GetActiveActivations(c *fiber.Ctx) error {
	activations, err := h.activationService.GetActiveActivations(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(contract.Response{Successful: true, Code: codeSuccess, Result: activations.ActiveActivations})
}

func (h *Handler) GetCountries(c *fiber.Ctx) error {
	countries, err := h.activationService.GetCountries(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(contract.Response{Successful: true, Code: codeSuccess, Result: countries})
}

func (h *Handler) GetPrices(c *fiber.Ctx) error {
	var handlerRequest PricesRequest
	if responseError := h.XValidator.ValidateQuery(&handlerRequest, constants.MessageErrorFormat, c); responseError.Code != "" {
		h.logger.Error("Error Validator", zap.Any("request", handlerRequest))
		return c.JSON(responseError)
	}

	prices, err := h.activationService.GetPrices(c.UserContext(), smsactivate.PricesRequest{
		Service: handlerRequest.Service,
		Country: handlerRequest.Country,
	})
	if err != nil {
		return err
	}

	return c.JSON(contract.Response{Successful: true, Code: codeSuccess, Result: prices})
}

func (h *Handler) reject(c *fiber.Ctx, code string) error {
	return c.Status(constants.GetHTTPStatus(code)).JSON(contract.Response{
		Code:    code,
		Message: constants.GetErrorMessage(code),
	})
}

func parseActivationID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
