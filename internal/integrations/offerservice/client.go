package offerservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/m04kA/SMC-EventStockService/internal/domain"
)

// Client клиент для работы с OfferService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента OfferService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetOffer получает оффер с кодом департамента площадки и ценовыми категориями
func (c *Client) GetOffer(ctx context.Context, offerID int64) (*domain.Offer, error) {
	url := fmt.Sprintf("%s/internal/offers/%d", c.baseURL, offerID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("OfferService request failed for offer_id=%d: %v", offerID, err)
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid offer ID format", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrOfferNotFound
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var offer Offer
	if err := json.NewDecoder(resp.Body).Decode(&offer); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	if offer.ID != offerID {
		c.log.Error("OfferService returned offer id=%d for requested offer_id=%d", offer.ID, offerID)
		return nil, fmt.Errorf("%w: requested offer %d, got %d", ErrInvalidResponse, offerID, offer.ID)
	}

	c.log.Info("Fetched offer id=%d (department=%s, event=%t, price_categories=%d)",
		offer.ID, offer.DepartmentCode, offer.IsEvent, len(offer.PriceCategories))

	return offer.ToDomain(), nil
}
