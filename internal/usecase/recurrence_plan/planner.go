package recurrence_plan

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-EventStockService/internal/domain"
	offerClient "github.com/m04kA/SMC-EventStockService/internal/integrations/offerservice"
	"github.com/m04kA/SMC-EventStockService/internal/recurrence"
	"github.com/m04kA/SMC-EventStockService/internal/stockgen"
)

// Planner разворачивает правило повторения оффера в список стоков без сохранения
type Planner struct {
	offerClient OfferServiceClient
	expander    StockExpander
	localToUTC  stockgen.LocalToUTC
	limits      Limits
	logger      Logger
}

// NewPlanner создает новый экземпляр Planner
func NewPlanner(
	offerClient OfferServiceClient,
	expander StockExpander,
	localToUTC stockgen.LocalToUTC,
	limits Limits,
	logger Logger,
) *Planner {
	if limits.DefaultDepartmentCode == "" {
		limits.DefaultDepartmentCode = domain.DefaultDepartmentCode
	}
	return &Planner{
		offerClient: offerClient,
		expander:    expander,
		localToUTC:  localToUTC,
		limits:      limits,
		logger:      logger,
	}
}

// Plan валидирует запрос, проверяет оффер и генерирует стоки
func (p *Planner) Plan(ctx context.Context, req *Request) (*Plan, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req, p.limits); err != nil {
		p.logger.Warn("RecurrencePlan: validation failed: %v", err)
		return nil, err
	}

	// 2. Собираем правило
	rule, err := buildRule(req)
	if err != nil {
		p.logger.Warn("RecurrencePlan: invalid rule: %v", err)
		return nil, err
	}

	// 3. Получаем оффер
	offer, err := p.offerClient.GetOffer(ctx, req.OfferID)
	if err != nil {
		if errors.Is(err, offerClient.ErrOfferNotFound) {
			p.logger.Warn("RecurrencePlan: offer id=%d not found", req.OfferID)
			return nil, ErrOfferNotFound
		}
		p.logger.Error("RecurrencePlan: failed to get offer id=%d: %v", req.OfferID, err)
		return nil, fmt.Errorf("%w: failed to get offer: %v", ErrInternal, err)
	}

	// 4. Проверяем, что оффер - событие с нужными ценовыми категориями
	if err := validateOffer(offer, req.PriceTiers); err != nil {
		p.logger.Warn("RecurrencePlan: offer id=%d rejected: %v", req.OfferID, err)
		return nil, err
	}

	// 5. Генерируем даты
	dates, err := recurrence.GenerateDates(rule)
	if err != nil {
		p.logger.Warn("RecurrencePlan: failed to generate dates: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 6. Проверяем ограничение до генерации стоков
	total := len(dates) * len(req.BeginningTimes) * len(req.PriceTiers)
	if p.limits.MaxStocksPerRequest > 0 && total > p.limits.MaxStocksPerRequest {
		p.logger.Warn("RecurrencePlan: offer id=%d, %d stocks requested, maximum is %d",
			req.OfferID, total, p.limits.MaxStocksPerRequest)
		return nil, fmt.Errorf("%w: %d requested, maximum is %d", ErrTooManyStocks, total, p.limits.MaxStocksPerRequest)
	}

	// 7. Генерируем стоки в поясе площадки
	departmentCode := offer.DepartmentCode
	if departmentCode == "" {
		departmentCode = p.limits.DefaultDepartmentCode
	}

	stocks, err := p.expander.Expand(dates, req.BeginningTimes, req.PriceTiers, req.BookingLimitOffsetDays, departmentCode, p.localToUTC)
	if err != nil {
		if isInputError(err) {
			p.logger.Warn("RecurrencePlan: failed to expand stocks: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		p.logger.Error("RecurrencePlan: failed to expand stocks: %v", err)
		return nil, fmt.Errorf("%w: failed to expand stocks: %v", ErrInternal, err)
	}

	// 8. Представление правила в RFC 5545
	rrule, err := recurrence.ToRRule(rule)
	if err != nil {
		p.logger.Error("RecurrencePlan: failed to build rrule: %v", err)
		return nil, fmt.Errorf("%w: failed to build rrule: %v", ErrInternal, err)
	}

	p.logger.Info("RecurrencePlan: offer id=%d, %s rule, %d dates, %d stocks, department=%s",
		req.OfferID, rule.Kind(), len(dates), len(stocks), departmentCode)

	return &Plan{
		Offer:          offer,
		Rule:           rule,
		DepartmentCode: departmentCode,
		Dates:          dates,
		Stocks:         stocks,
		RRule:          rrule.String(),
	}, nil
}

func isInputError(err error) bool {
	return errors.Is(err, stockgen.ErrBlankTimeSlot) ||
		errors.Is(err, stockgen.ErrInvalidTimeSlot) ||
		errors.Is(err, stockgen.ErrInvalidPriceCategory) ||
		errors.Is(err, stockgen.ErrInvalidQuantity)
}
