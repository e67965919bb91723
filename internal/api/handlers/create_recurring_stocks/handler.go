package create_recurring_stocks

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-EventStockService/internal/api/handlers"
	createStocks "github.com/m04kA/SMC-EventStockService/internal/usecase/create_recurring_stocks"
)

const (
	msgInvalidOfferID        = "некорректный ID оффера"
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgInvalidDate           = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidBookingLimit   = "некорректный интервал закрытия бронирования, ожидается целое число дней"
	msgInvalidRule           = "некорректное правило повторения"
	msgIntervalTooLong       = "слишком длинный интервал дат"
	msgOfferNotFound         = "оффер не найден"
	msgOfferNotEvent         = "оффер не является событием"
	msgPriceCategoryNotFound = "ценовая категория не принадлежит офферу"
	msgTooManyStocks         = "правило порождает слишком много стоков"
)

type Handler struct {
	useCase CreateRecurringStocksUseCase
	logger  Logger
}

func NewHandler(useCase CreateRecurringStocksUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/offers/{offerId}/stocks/recurrence
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	offerID, err := strconv.ParseInt(mux.Vars(r)["offerId"], 10, 64)
	if err != nil || offerID <= 0 {
		h.logger.Warn("POST /offers/{id}/stocks/recurrence - Invalid offer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOfferID)
		return
	}

	var req RecurrenceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /offers/{id}/stocks/recurrence - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(offerID)
	if err != nil {
		h.logger.Warn("POST /offers/{id}/stocks/recurrence - Failed to parse request: %v", err)
		if errors.Is(err, ErrInvalidBookingLimit) {
			handlers.RespondBadRequest(w, msgInvalidBookingLimit)
			return
		}
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createStocks.ErrOfferNotFound):
			h.logger.Warn("POST /offers/{id}/stocks/recurrence - Offer not found: offer_id=%d", offerID)
			handlers.RespondNotFound(w, msgOfferNotFound)

		case errors.Is(err, createStocks.ErrOfferNotEvent):
			h.logger.Warn("POST /offers/{id}/stocks/recurrence - Offer is not an event: offer_id=%d", offerID)
			handlers.RespondBadRequest(w, msgOfferNotEvent)

		case errors.Is(err, createStocks.ErrPriceCategoryNotFound):
			h.logger.Warn("POST /offers/{id}/stocks/recurrence - Unknown price category: offer_id=%d, %v", offerID, err)
			handlers.RespondBadRequest(w, msgPriceCategoryNotFound)

		case errors.Is(err, createStocks.ErrIntervalTooLong):
			h.logger.Warn("POST /offers/{id}/stocks/recurrence - Interval too long: offer_id=%d, %v", offerID, err)
			handlers.RespondBadRequest(w, msgIntervalTooLong)

		case errors.Is(err, createStocks.ErrTooManyStocks):
			h.logger.Warn("POST /offers/{id}/stocks/recurrence - Too many stocks: offer_id=%d, %v", offerID, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgTooManyStocks)

		case errors.Is(err, createStocks.ErrInvalidInput):
			h.logger.Warn("POST /offers/{id}/stocks/recurrence - Invalid rule: offer_id=%d, %v", offerID, err)
			handlers.RespondBadRequest(w, msgInvalidRule)

		default:
			h.logger.Error("POST /offers/{id}/stocks/recurrence - Failed to create stocks: offer_id=%d, error=%v",
				offerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result, time.Now())

	h.logger.Info("POST /offers/{id}/stocks/recurrence - Stocks created: offer_id=%d, stocks=%d, dates=%d",
		offerID, response.StocksCount, response.DatesCount)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
