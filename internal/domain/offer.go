package domain

// Offer is the subset of an offer needed to generate its stocks
type Offer struct {
	ID               int64
	VenueID          int64
	Name             string
	DepartmentCode   string
	IsEvent          bool
	PriceCategoryIDs []int64
}

// HasPriceCategory returns true if the price category belongs to the offer
func (o *Offer) HasPriceCategory(id int64) bool {
	for _, pc := range o.PriceCategoryIDs {
		if pc == id {
			return true
		}
	}
	return false
}
