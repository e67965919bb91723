package get_offer_stocks

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-EventStockService/internal/api/handlers"
	"github.com/m04kA/SMC-EventStockService/internal/service/stocks"
)

const (
	msgInvalidOfferID = "некорректный ID оффера"
)

type Handler struct {
	service StockService
	logger  Logger
}

func NewHandler(service StockService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/offers/{offerId}/stocks
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	offerID, err := strconv.ParseInt(mux.Vars(r)["offerId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /offers/{id}/stocks - Invalid offer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOfferID)
		return
	}

	result, err := h.service.GetByOffer(r.Context(), offerID)
	if err != nil {
		switch {
		case errors.Is(err, stocks.ErrInvalidInput):
			h.logger.Warn("GET /offers/{id}/stocks - Invalid input: offer_id=%d", offerID)
			handlers.RespondBadRequest(w, msgInvalidOfferID)

		default:
			h.logger.Error("GET /offers/{id}/stocks - Failed to get stocks: offer_id=%d, error=%v", offerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /offers/{id}/stocks - Stocks retrieved: offer_id=%d, count=%d", offerID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
