package preview_recurring_stocks

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-EventStockService/internal/domain"
	previewStocks "github.com/m04kA/SMC-EventStockService/internal/usecase/preview_recurring_stocks"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *previewStocks.Request) (*previewStocks.Response, error) {
	args := m.Called(ctx, req)
	if resp := args.Get(0); resp != nil {
		return resp.(*previewStocks.Response), args.Error(1)
	}
	return nil, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(h *Handler, offerID, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/offers/"+offerID+"/stocks/recurrence/preview", strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"offerId": offerID})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_Preview(t *testing.T) {
	uc := new(mockUseCase)
	h := NewHandler(uc, nopLogger{})

	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *previewStocks.Request) bool {
		return req.OfferID == 5 && req.RecurrenceType == domain.RecurrenceUnique
	})).Return(&previewStocks.Response{
		OfferID:        5,
		Recurrence:     "UNIQUE",
		DepartmentCode: "974",
		RRule:          "FREQ=DAILY;COUNT=1",
		Dates:          []time.Time{time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)},
		Stocks: []domain.GeneratedStock{
			{
				ID:                      "tmp-1",
				PriceCategoryID:         3,
				Quantity:                domain.Limited(50),
				BeginningDatetimeUTC:    "2024-06-10T14:00:00Z",
				BookingLimitDatetimeUTC: "2024-06-10T14:00:00Z",
			},
		},
	}, nil)

	body := `{"recurrenceType":"UNIQUE","startingDate":"2024-06-10","beginningTimes":["18:00"],
		"quantityPerPriceCategories":[{"priceCategory":3,"quantity":"50"}]}`
	rec := doRequest(h, "5", body)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp PreviewResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"2024-06-10"}, resp.Dates)
	assert.Equal(t, "974", resp.DepartmentCode)
	require.Len(t, resp.Stocks, 1)
	assert.Equal(t, "tmp-1", resp.Stocks[0].ID)
	require.NotNil(t, resp.Stocks[0].Quantity)
	assert.Equal(t, 50, *resp.Stocks[0].Quantity)
	assert.Equal(t, "2024-06-10T14:00:00Z", resp.Stocks[0].BeginningDatetime)

	uc.AssertExpectations(t)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		offerID    string
		body       string
		err        error
		wantStatus int
	}{
		{name: "bad offer id", offerID: "x", body: `{}`, wantStatus: http.StatusBadRequest},
		{name: "bad date", offerID: "5", body: `{"startingDate":"tomorrow"}`, wantStatus: http.StatusBadRequest},
		{name: "bad booking limit", offerID: "5", body: `{"bookingLimitDateInterval":"x"}`, wantStatus: http.StatusBadRequest},
		{name: "invalid rule", offerID: "5", body: `{}`, err: previewStocks.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "offer not found", offerID: "5", body: `{}`, err: previewStocks.ErrOfferNotFound, wantStatus: http.StatusNotFound},
		{name: "too many stocks", offerID: "5", body: `{}`, err: previewStocks.ErrTooManyStocks, wantStatus: http.StatusUnprocessableEntity},
		{name: "internal", offerID: "5", body: `{}`, err: previewStocks.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(mockUseCase)
			if tt.err != nil {
				uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)
			}
			h := NewHandler(uc, nopLogger{})

			rec := doRequest(h, tt.offerID, tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.err == nil {
				uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
			}
		})
	}
}
