package preview_recurring_stocks

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-EventStockService/internal/usecase/recurrence_plan"
)

// UseCase use case для предпросмотра стоков без сохранения
type UseCase struct {
	planner Planner
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(planner Planner, logger Logger) *UseCase {
	return &UseCase{
		planner: planner,
		logger:  logger,
	}
}

// Execute разворачивает правило и возвращает стоки с временными идентификаторами
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	uc.logger.Info("PreviewRecurringStocks: offer=%d, recurrence=%s", req.OfferID, req.RecurrenceType)

	plan, err := uc.planner.Plan(ctx, req)
	if err != nil {
		if errors.Is(err, recurrence_plan.ErrInternal) || !isKnown(err) {
			uc.logger.Error("PreviewRecurringStocks: failed to plan stocks: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
		return nil, err
	}

	return &Response{
		OfferID:        req.OfferID,
		Recurrence:     string(plan.Rule.Kind()),
		DepartmentCode: plan.DepartmentCode,
		RRule:          plan.RRule,
		Dates:          plan.Dates,
		Stocks:         plan.Stocks,
	}, nil
}

func isKnown(err error) bool {
	for _, target := range []error{
		ErrInvalidInput, ErrIntervalTooLong, ErrOfferNotFound, ErrOfferNotEvent, ErrPriceCategoryNotFound, ErrTooManyStocks,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
