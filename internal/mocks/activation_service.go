package mocks

import (
	"context"

	"github.com/Behyna/sms-services/smsactivate/pkg/smsactivate"
	"github.com/stretchr/testify/mock"
)

type ActivationService struct {
	mock.Mock
}

func (m *ActivationService) GetBalance(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}

func (m *ActivationService) GetBalanceAndCashBack(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}

func (m *ActivationService) GetNumber(ctx context.Context, request smsactivate.NumberRequest) (smsactivate.Number, error) {
	args := m.Called(ctx, request)
	return args.Get(0).(smsactivate.Number), args.Error(1)
}

func (m *ActivationService) GetNumberV2(ctx context.Context, request smsactivate.NumberRequest) (smsactivate.NumberV2, error) {
	args := m.Called(ctx, request)
	return args.Get(0).(smsactivate.NumberV2), args.Error(1)
}

func (m *ActivationService) GetStatus(ctx context.Context, activationID int64) (smsactivate.Status, error) {
	args := m.Called(ctx, activationID)
	return args.Get(0).(smsactivate.Status), args.Error(1)
}

func (m *ActivationService) GetStatusV2(ctx context.Context, activationID int64) (smsactivate.StatusV2, error) {
	args := m.Called(ctx, activationID)
	return args.Get(0).(smsactivate.StatusV2), args.Error(1)
}

func (m *ActivationService) SetStatus(ctx context.Context, activationID int64, action smsactivate.Action) (smsactivate.SetStatusResult, error) {
	args := m.Called(ctx, activationID, action)
	return args.Get(0).(smsactivate.SetStatusResult), args.Error(1)
}

func (m *ActivationService) GetCountries(ctx context.Context) (map[string]smsactivate.Country, error) {
	args := m.Called(ctx)
	return args.Get(0).(map[string]smsactivate.Country), args.Error(1)
}

func (m *ActivationService) GetServicesList(ctx context.Context, request smsactivate.ServicesRequest) (smsactivate.ServicesList, error) {
	args := m.Called(ctx, request)
	return args.Get(0).(smsactivate.ServicesList), args.Error(1)
}

func (m *ActivationService) GetOperators(ctx context.Context, country string) (smsactivate.Operators, error) {
	args := m.Called(ctx, country)
	return args.Get(0).(smsactivate.Operators), args.Error(1)
}

func (m *ActivationService) GetPrices(ctx context.Context, request smsactivate.PricesRequest) (smsactivate.Prices, error) {
	args := m.Called(ctx, request)
	return args.Get(0).(smsactivate.Prices), args.Error(1)
}

func (m *ActivationService) GetActiveActivations(ctx context.Context) (smsactivate.ActiveActivations, error) {
	args := m.Called(ctx)
	return args.Get(0).(smsactivate.ActiveActivations), args.Error(1)
}

func (m *ActivationService) GetHistory(ctx context.Context, request smsactivate.HistoryRequest) ([]smsactivate.HistoryEntry, error) {
	args := m.Called(ctx, request)
	return args.Get(0).([]smsactivate.HistoryEntry), args.Error(1)
}

func (m *ActivationService) GetTopCountriesByService(ctx context.Context, request smsactivate.TopCountriesRequest) (map[string]smsactivate.TopCountry, error) {
	args := m.Called(ctx, request)
	return args.Get(0).(map[string]smsactivate.TopCountry), args.Error(1)
}
