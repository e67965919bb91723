package create_recurring_stocks

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-EventStockService/internal/domain"
	"github.com/m04kA/SMC-EventStockService/internal/usecase/recurrence_plan"
)

// UseCase use case для создания стоков события по правилу повторения
type UseCase struct {
	planner           Planner
	stockRepo         StockRepository
	txManager         TransactionManager
	observer          GenerationObserver
	maxStocksPerOffer int
	logger            Logger
}

// NewUseCase создает новый экземпляр use case. observer может быть nil,
// maxStocksPerOffer <= 0 отключает ограничение на общее число стоков оффера
func NewUseCase(
	planner Planner,
	stockRepo StockRepository,
	txManager TransactionManager,
	observer GenerationObserver,
	maxStocksPerOffer int,
	logger Logger,
) *UseCase {
	return &UseCase{
		planner:           planner,
		stockRepo:         stockRepo,
		txManager:         txManager,
		observer:          observer,
		maxStocksPerOffer: maxStocksPerOffer,
		logger:            logger,
	}
}

// Execute выполняет use case создания стоков
// Все стоки сохраняются в одной транзакции: либо все, либо ни одного
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	uc.logger.Info("CreateRecurringStocks: offer=%d, recurrence=%s, slots=%d, tiers=%d",
		req.OfferID, req.RecurrenceType, len(req.BeginningTimes), len(req.PriceTiers))

	// 1. Разворачиваем правило (валидация, оффер, даты, стоки)
	plan, err := uc.planner.Plan(ctx, req)
	if err != nil {
		if isPlanError(err) {
			return nil, err
		}
		uc.logger.Error("CreateRecurringStocks: failed to plan stocks: %v", err)
		return nil, fmt.Errorf("%w: failed to plan stocks: %v", ErrInternal, err)
	}

	// 2. Сохраняем стоки в транзакции
	var created []*domain.Stock
	if len(plan.Stocks) > 0 {
		err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
			if err := uc.checkOfferCapacity(txCtx, req.OfferID, len(plan.Stocks)); err != nil {
				return err
			}

			stocks, err := uc.stockRepo.CreateBatch(txCtx, req.OfferID, plan.Stocks)
			if err != nil {
				return err
			}
			created = stocks
			return nil
		})
		if errors.Is(err, ErrTooManyStocks) {
			uc.logger.Warn("CreateRecurringStocks: offer=%d rejected: %v", req.OfferID, err)
			return nil, err
		}
		if err != nil {
			uc.logger.Error("CreateRecurringStocks: failed to save %d stocks for offer=%d: %v",
				len(plan.Stocks), req.OfferID, err)
			return nil, fmt.Errorf("%w: failed to save stocks: %v", ErrInternal, err)
		}
	} else {
		created = make([]*domain.Stock, 0)
		uc.logger.Warn("CreateRecurringStocks: rule produced no dates for offer=%d", req.OfferID)
	}

	// 3. Метрики
	if uc.observer != nil {
		uc.observer.ObserveGeneration(string(plan.Rule.Kind()), len(plan.Dates), len(created))
	}

	uc.logger.Info("CreateRecurringStocks: created %d stocks on %d dates for offer=%d",
		len(created), len(plan.Dates), req.OfferID)

	return &Response{
		OfferID:    req.OfferID,
		Recurrence: string(plan.Rule.Kind()),
		DatesCount: len(plan.Dates),
		RRule:      plan.RRule,
		Stocks:     created,
	}, nil
}

// checkOfferCapacity проверяет, что у оффера не станет больше maxStocksPerOffer стоков
func (uc *UseCase) checkOfferCapacity(ctx context.Context, offerID int64, adding int) error {
	if uc.maxStocksPerOffer <= 0 {
		return nil
	}

	existing, err := uc.stockRepo.CountByOffer(ctx, offerID)
	if err != nil {
		return err
	}
	if existing+adding > uc.maxStocksPerOffer {
		return fmt.Errorf("%w: offer already has %d stocks, adding %d exceeds %d",
			ErrTooManyStocks, existing, adding, uc.maxStocksPerOffer)
	}
	return nil
}

// isPlanError ошибки Planner, которые возвращаются клиенту как есть
func isPlanError(err error) bool {
	return errors.Is(err, recurrence_plan.ErrInvalidInput) ||
		errors.Is(err, recurrence_plan.ErrIntervalTooLong) ||
		errors.Is(err, recurrence_plan.ErrOfferNotFound) ||
		errors.Is(err, recurrence_plan.ErrOfferNotEvent) ||
		errors.Is(err, recurrence_plan.ErrPriceCategoryNotFound) ||
		errors.Is(err, recurrence_plan.ErrTooManyStocks)
}
