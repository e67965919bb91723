package preview_recurring_stocks

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-EventStockService/internal/api/handlers"
	"github.com/m04kA/SMC-EventStockService/internal/api/handlers/create_recurring_stocks"
	previewStocks "github.com/m04kA/SMC-EventStockService/internal/usecase/preview_recurring_stocks"
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
	useCase PreviewRecurringStocksUseCase
	logger  Logger
}

func NewHandler(useCase PreviewRecurringStocksUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/offers/{offerId}/stocks/recurrence/preview
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	offerID, err := strconv.ParseInt(mux.Vars(r)["offerId"], 10, 64)
	if err != nil || offerID <= 0 {
		h.logger.Warn("POST /offers/{id}/stocks/recurrence/preview - Invalid offer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOfferID)
		return
	}

	// Тело запроса совпадает с созданием стоков
	var req create_recurring_stocks.RecurrenceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /offers/{id}/stocks/recurrence/preview - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(offerID)
	if err != nil {
		h.logger.Warn("POST /offers/{id}/stocks/recurrence/preview - Failed to parse request: %v", err)
		if errors.Is(err, create_recurring_stocks.ErrInvalidBookingLimit) {
			handlers.RespondBadRequest(w, msgInvalidBookingLimit)
			return
		}
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, previewStocks.ErrOfferNotFound):
			h.logger.Warn("POST /offers/{id}/stocks/recurrence/preview - Offer not found: offer_id=%d", offerID)
			handlers.RespondNotFound(w, msgOfferNotFound)

		case errors.Is(err, previewStocks.ErrOfferNotEvent):
			handlers.RespondBadRequest(w, msgOfferNotEvent)

		case errors.Is(err, previewStocks.ErrPriceCategoryNotFound):
			handlers.RespondBadRequest(w, msgPriceCategoryNotFound)

		case errors.Is(err, previewStocks.ErrIntervalTooLong):
			handlers.RespondBadRequest(w, msgIntervalTooLong)

		case errors.Is(err, previewStocks.ErrTooManyStocks):
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgTooManyStocks)

		case errors.Is(err, previewStocks.ErrInvalidInput):
			h.logger.Warn("POST /offers/{id}/stocks/recurrence/preview - Invalid rule: offer_id=%d, %v", offerID, err)
			handlers.RespondBadRequest(w, msgInvalidRule)

		default:
			h.logger.Error("POST /offers/{id}/stocks/recurrence/preview - Failed to preview stocks: offer_id=%d, error=%v",
				offerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /offers/{id}/stocks/recurrence/preview - Preview generated: offer_id=%d, stocks=%d",
		offerID, len(result.Stocks))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
