package export_offer_calendar

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-EventStockService/internal/api/handlers"
	"github.com/m04kA/SMC-EventStockService/internal/service/stocks"
)

const (
	msgInvalidOfferID = "некорректный ID оффера"
	msgOfferNotFound  = "оффер не найден"
	msgNoStocks       = "у оффера нет стоков"
)

const contentTypeCalendar = "text/calendar; charset=utf-8"

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

// Handle GET /api/v1/offers/{offerId}/stocks.ics
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	offerID, err := strconv.ParseInt(mux.Vars(r)["offerId"], 10, 64)
	if err != nil || offerID <= 0 {
		h.logger.Warn("GET /offers/{id}/stocks.ics - Invalid offer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOfferID)
		return
	}

	data, err := h.service.ExportCalendar(r.Context(), offerID)
	if err != nil {
		switch {
		case errors.Is(err, stocks.ErrOfferNotFound):
			h.logger.Warn("GET /offers/{id}/stocks.ics - Offer not found: offer_id=%d", offerID)
			handlers.RespondNotFound(w, msgOfferNotFound)

		case errors.Is(err, stocks.ErrNoStocks):
			h.logger.Warn("GET /offers/{id}/stocks.ics - No stocks: offer_id=%d", offerID)
			handlers.RespondNotFound(w, msgNoStocks)

		case errors.Is(err, stocks.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidOfferID)

		default:
			h.logger.Error("GET /offers/{id}/stocks.ics - Failed to export calendar: offer_id=%d, error=%v",
				offerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	w.Header().Set("Content-Type", contentTypeCalendar)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="offer-%d.ics"`, offerID))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.logger.Error("GET /offers/{id}/stocks.ics - Failed to write response: offer_id=%d, error=%v", offerID, err)
		return
	}

	h.logger.Info("GET /offers/{id}/stocks.ics - Calendar exported: offer_id=%d, bytes=%d", offerID, len(data))
}
