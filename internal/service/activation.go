package service

import (
	"context"
	"strings"
	"time"

	"github.com/Behyna/sms-services/smsactivate/internal/metrics"
	"github.com/Behyna/sms-services/smsactivate/pkg/smsactivate"
	"go.uber.org/zap"
)

const outcomeSuccess = "success"

type ActivationService interface {
	GetBalance(ctx context.Context) (float64, error)
	GetBalanceAndCashBack(ctx context.Context) (float64, error)
	GetNumber(ctx context.Context, request smsactivate.NumberRequest) (smsactivate.Number, error)
	GetNumberV2(ctx context.Context, request smsactivate.NumberRequest) (smsactivate.NumberV2, error)
	GetStatus(ctx context.Context, activationID int64) (smsactivate.Status, error)
	GetStatusV2(ctx context.Context, activationID int64) (smsactivate.StatusV2, error)
	SetStatus(ctx context.Context, activationID int64, action smsactivate.Action) (smsactivate.SetStatusResult, error)
	GetCountries(ctx context.Context) (map[string]smsactivate.Country, error)
	GetServicesList(ctx context.Context, request smsactivate.ServicesRequest) (smsactivate.ServicesList, error)
	GetOperators(ctx context.Context, country string) (smsactivate.Operators, error)
	GetPrices(ctx context.Context, request smsactivate.PricesRequest) (smsactivate.Prices, error)
	GetActiveActivations(ctx context.Context) (smsactivate.ActiveActivations, error)
	GetHistory(ctx context.Context, request smsactivate.HistoryRequest) ([]smsactivate.HistoryEntry, error)
	GetTopCountriesByService(ctx context.Context, request smsactivate.TopCountriesRequest) (map[string]smsactivate.TopCountry, error)
}

type Activation struct {
	client  smsactivate.Client
	logger  *zap.Logger
	metrics *metrics.Metrics
}

// NewActivationService wraps client with logging and, when m is non-nil, provider metrics.
func NewActivationService(client smsactivate.Client, logger *zap.Logger, m *metrics.Metrics) ActivationService {
	return &Activation{client: client, logger: logger, metrics: m}
}

// Outcome is the metrics label for the result of a provider call.
func Outcome(err error) string {
	if err == nil {
		return outcomeSuccess
	}
	if kind := smsactivate.KindOf(err); kind != "" {
		return strings.ToLower(string(kind))
	}
	return "error"
}

func observe[T any](ctx context.Context, s *Activation, op smsactivate.Operation, fields []zap.Field,
	call func(context.Context) (T, error)) (T, error) {
	start := time.Now()
	s.logger.Debug("Calling activation provider", append(fields, zap.String("operation", string(op)))...)

	result, err := call(ctx)
	duration := time.Since(start)

	if s.metrics != nil {
		s.metrics.RecordProviderCall(string(op), Outcome(err), duration)
	}

	if err != nil {
		s.logFailure(op, err, duration, fields)
		return result, err
	}

	s.logger.Debug("Activation provider call succeeded",
		append(fields, zap.String("operation", string(op)), zap.Duration("duration", duration))...)
	return result, nil
}

func (s *Activation) logFailure(op smsactivate.Operation, err error, duration time.Duration, fields []zap.Field) {
	fields = append(fields,
		zap.String("operation", string(op)),
		zap.String("kind", string(smsactivate.KindOf(err))),
		zap.Duration("duration", duration),
		zap.Error(err),
	)

	switch smsactivate.KindOf(err) {
	case smsactivate.KindExhaustedSupply, smsactivate.KindNotFound, smsactivate.KindEarlyCancel,
		smsactivate.KindPriceTooLow:
		s.logger.Warn("Activation provider rejected request", fields...)
	default:
		s.logger.Error("Activation provider call failed", fields...)
	}
}

func (s *Activation) GetBalance(ctx context.Context) (float64, error) {
	balance, err := observe(ctx, s, smsactivate.OpGetBalance, nil, s.client.GetBalance)
	if err == nil && s.metrics != nil {
		s.metrics.UpdateProviderBalance(balance)
	}
	return balance, err
}

func (s *Activation) GetBalanceAndCashBack(ctx context.Context) (float64, error) {
	return observe(ctx, s, smsactivate.OpGetBalanceAndCashBack, nil, s.client.GetBalanceAndCashBack)
}

func (s *Activation) GetNumber(ctx context.Context, request smsactivate.NumberRequest) (smsactivate.Number, error) {
	number, err := observe(ctx, s, smsactivate.OpGetNumber, numberFields(request),
		func(ctx context.Context) (smsactivate.Number, error) {
			return s.client.GetNumber(ctx, request)
		})
	if err != nil {
		return number, err
	}

	s.recordAllocation(request)
	s.logger.Info("Number allocated",
		zap.Int64("activationId", number.ActivationID),
		zap.String("service", request.Service),
		zap.String("country", request.Country))
	return number, nil
}

func (s *Activation) GetNumberV2(ctx context.Context, request smsactivate.NumberRequest) (smsactivate.NumberV2, error) {
	number, err := observe(ctx, s, smsactivate.OpGetNumberV2, numberFields(request),
		func(ctx context.Context) (smsactivate.NumberV2, error) {
			return s.client.GetNumberV2(ctx, request)
		})
	if err != nil {
		return number, err
	}

	s.recordAllocation(request)
	s.logger.Info("Number allocated",
		zap.Int64("activationId", number.ActivationID),
		zap.String("service", request.Service),
		zap.String("country", request.Country),
		zap.String("cost", number.ActivationCost.String()))
	return number, nil
}

func (s *Activation) GetStatus(ctx context.Context, activationID int64) (smsactivate.Status, error) {
	return observe(ctx, s, smsactivate.OpGetStatus, activationFields(activationID),
		func(ctx context.Context) (smsactivate.Status, error) {
			return s.client.GetStatus(ctx, activationID)
		})
}

func (s *Activation) GetStatusV2(ctx context.Context, activationID int64) (smsactivate.StatusV2, error) {
	return observe(ctx, s, smsactivate.OpGetStatusV2, activationFields(activationID),
		func(ctx context.Context) (smsactivate.StatusV2, error) {
			return s.client.GetStatusV2(ctx, activationID)
		})
}

func (s *Activation) SetStatus(ctx context.Context, activationID int64, action smsactivate.Action) (smsactivate.SetStatusResult, error) {
	fields := append(activationFields(activationID), zap.Int("action", int(action)))

	result, err := observe(ctx, s, smsactivate.OpSetStatus, fields,
		func(ctx context.Context) (smsactivate.SetStatusResult, error) {
			return s.client.SetStatus(ctx, activationID, action)
		})
	if err != nil {
		return result, err
	}

	s.logger.Info("Activation status changed",
		zap.Int64("activationId", activationID),
		zap.String("result", string(result)))
	return result, nil
}

func (s *Activation) GetCountries(ctx context.Context) (map[string]smsactivate.Country, error) {
	return observe(ctx, s, smsactivate.OpGetCountries, nil, s.client.GetCountries)
}

func (s *Activation) GetServicesList(ctx context.Context, request smsactivate.ServicesRequest) (smsactivate.ServicesList, error) {
	return observe(ctx, s, smsactivate.OpGetServicesList, []zap.Field{zap.String("country", request.Country)},
		func(ctx context.Context) (smsactivate.ServicesList, error) {
			return s.client.GetServicesList(ctx, request)
		})
}

func (s *Activation) GetOperators(ctx context.Context, country string) (smsactivate.Operators, error) {
	return observe(ctx, s, smsactivate.OpGetOperators, []zap.Field{zap.String("country", country)},
		func(ctx context.Context) (smsactivate.Operators, error) {
			return s.client.GetOperators(ctx, country)
		})
}

func (s *Activation) GetPrices(ctx context.Context, request smsactivate.PricesRequest) (smsactivate.Prices, error) {
	fields := []zap.Field{zap.String("service", request.Service), zap.String("country", request.Country)}

	return observe(ctx, s, smsactivate.OpGetPrices, fields,
		func(ctx context.Context) (smsactivate.Prices, error) {
			return s.client.GetPrices(ctx, request)
		})
}

func (s *Activation) GetActiveActivations(ctx context.Context) (smsactivate.ActiveActivations, error) {
	return observe(ctx, s, smsactivate.OpGetActiveActivations, nil, s.client.GetActiveActivations)
}

func (s *Activation) GetHistory(ctx context.Context, request smsactivate.HistoryRequest) ([]smsactivate.HistoryEntry, error) {
	return observe(ctx, s, smsactivate.OpGetHistory, nil,
		func(ctx context.Context) ([]smsactivate.HistoryEntry, error) {
			return s.client.GetHistory(ctx, request)
		})
}

func (s *Activation) GetTopCountriesByService(ctx context.Context, request smsactivate.TopCountriesRequest) (map[string]smsactivate.TopCountry, error) {
	return observe(ctx, s, smsactivate.OpGetTopCountriesByService, []zap.Field{zap.String("service", request.Service)},
		func(ctx context.Context) (map[string]smsactivate.TopCountry, error) {
			return s.client.GetTopCountriesByService(ctx, request)
		})
}

func (s *Activation) recordAllocation(request smsactivate.NumberRequest) {
	if s.metrics != nil {
		s.metrics.RecordNumberAllocated(request.Service, request.Country)
	}
}

func numberFields(request smsactivate.NumberRequest) []zap.Field {
	return []zap.Field{
		zap.String("service", request.Service),
		zap.String("country", request.Country),
		zap.Float64("maxPrice", request.MaxPrice),
	}
}

func activationFields(activationID int64) []zap.Field {
	return []zap.Field{zap.Int64("activationId", activationID)}
}
