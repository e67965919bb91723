package delete_stock

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-EventStockService/internal/api/handlers"
	"github.com/m04kA/SMC-EventStockService/internal/service/stocks"
)

const (
	msgInvalidStockID   = "некорректный ID стока"
	msgStockNotFound    = "сток не найден"
	msgStockHasBookings = "на сток уже есть бронирования"
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

// Handle DELETE /api/v1/stocks/{stockId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	stockID, err := strconv.ParseInt(mux.Vars(r)["stockId"], 10, 64)
	if err != nil || stockID <= 0 {
		h.logger.Warn("DELETE /stocks/{id} - Invalid stock ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStockID)
		return
	}

	if err := h.service.Delete(r.Context(), stockID); err != nil {
		switch {
		case errors.Is(err, stocks.ErrStockNotFound):
			h.logger.Warn("DELETE /stocks/{id} - Stock not found: stock_id=%d", stockID)
			handlers.RespondNotFound(w, msgStockNotFound)

		case errors.Is(err, stocks.ErrStockHasBookings):
			h.logger.Warn("DELETE /stocks/{id} - Stock has bookings: stock_id=%d", stockID)
			handlers.RespondConflict(w, msgStockHasBookings)

		case errors.Is(err, stocks.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidStockID)

		default:
			h.logger.Error("DELETE /stocks/{id} - Failed to delete stock: stock_id=%d, error=%v", stockID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /stocks/{id} - Stock deleted: stock_id=%d", stockID)
	handlers.RespondNoContent(w)
}
