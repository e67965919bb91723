package offerservice

import "github.com/m04kA/SMC-EventStockService/internal/domain"

// Offer модель оффера из OfferService
type Offer struct {
	ID              int64           `json:"id"`
	VenueID         int64           `json:"venue_id"`
	Name            string          `json:"name"`
	DepartmentCode  string          `json:"department_code"` // Код департамента площадки ("75", "974"...)
	IsEvent         bool            `json:"is_event"`
	PriceCategories []PriceCategory `json:"price_categories"`
}

// PriceCategory ценовая категория оффера
type PriceCategory struct {
	ID    int64  `json:"id"`
	Label string `json:"label"`
	Price string `json:"price"`
}

// ToDomain конвертирует ответ сервиса в доменную модель
func (o *Offer) ToDomain() *domain.Offer {
	ids := make([]int64, 0, len(o.PriceCategories))
	for _, pc := range o.PriceCategories {
		ids = append(ids, pc.ID)
	}

	return &domain.Offer{
		ID:               o.ID,
		VenueID:          o.VenueID,
		Name:             o.Name,
		DepartmentCode:   o.DepartmentCode,
		IsEvent:          o.IsEvent,
		PriceCategoryIDs: ids,
	}
}
