package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/samber/mo"
)

var (
	// ErrInvalidQuantity is returned when a quantity is neither empty nor a non-negative integer
	ErrInvalidQuantity = errors.New("invalid quantity")

	// ErrInvalidPriceCategory is returned when a price category id is not an integer
	ErrInvalidPriceCategory = errors.New("invalid price category id")
)

// Quantity is either unlimited (None) or a limited number of places (Some)
type Quantity = mo.Option[int]

// Unlimited returns an unlimited quantity
func Unlimited() Quantity {
	return mo.None[int]()
}

// Limited returns a quantity limited to n places
func Limited(n int) Quantity {
	return mo.Some(n)
}

// ParseQuantity converts the form value: "" means unlimited, digits mean limited
func ParseQuantity(raw string) (Quantity, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Unlimited(), nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return Unlimited(), fmt.Errorf("%w: %q", ErrInvalidQuantity, raw)
	}
	return Limited(n), nil
}

// PriceTierInput is a (price category, quantity) pair as submitted by the form
type PriceTierInput struct {
	PriceCategoryID string
	Quantity        string
}

// PriceTier is a validated (price category, quantity) pair
type PriceTier struct {
	PriceCategoryID int64
	Quantity        Quantity
}

// ToPriceTier converts the form values once
func (in PriceTierInput) ToPriceTier() (PriceTier, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(in.PriceCategoryID), 10, 64)
	if err != nil {
		return PriceTier{}, fmt.Errorf("%w: %q", ErrInvalidPriceCategory, in.PriceCategoryID)
	}

	quantity, err := ParseQuantity(in.Quantity)
	if err != nil {
		return PriceTier{}, err
	}

	return PriceTier{PriceCategoryID: id, Quantity: quantity}, nil
}

// GeneratedStock is one dated, timed, priced inventory entry produced from a recurrence rule.
// ID is a client-side token; it is never persisted.
type GeneratedStock struct {
	ID                      string
	PriceCategoryID         int64
	Quantity                Quantity
	BeginningDatetimeUTC    string
	BookingLimitDatetimeUTC string
}

// Stock is a persisted stock of an event offer
type Stock struct {
	ID                   int64
	OfferID              int64
	PriceCategoryID      int64
	Quantity             Quantity
	BookedQuantity       int
	BeginningDatetime    time.Time
	BookingLimitDatetime time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// IsUnlimited returns true if the stock has no quantity limit
func (s *Stock) IsUnlimited() bool {
	return s.Quantity.IsAbsent()
}

// RemainingQuantity returns the number of places left, or None when unlimited
func (s *Stock) RemainingQuantity() Quantity {
	if s.IsUnlimited() {
		return Unlimited()
	}
	remaining := s.Quantity.OrEmpty() - s.BookedQuantity
	if remaining < 0 {
		remaining = 0
	}
	return Limited(remaining)
}

// IsBookable returns true if the stock can still be booked at the given instant
func (s *Stock) IsBookable(now time.Time) bool {
	if now.After(s.BookingLimitDatetime) {
		return false
	}
	remaining, limited := s.RemainingQuantity().Get()
	return !limited || remaining > 0
}
