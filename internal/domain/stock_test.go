package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		limited   bool
		value     int
		expectErr bool
	}{
		{name: "empty means unlimited", raw: ""},
		{name: "blank means unlimited", raw: "   "},
		{name: "number passes through", raw: "5", limited: true, value: 5},
		{name: "zero is limited", raw: "0", limited: true, value: 0},
		{name: "negative", raw: "-1", expectErr: true},
		{name: "not a number", raw: "ten", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := ParseQuantity(tt.raw)
			if tt.expectErr {
				require.ErrorIs(t, err, ErrInvalidQuantity)
				return
			}
			require.NoError(t, err)

			value, limited := q.Get()
			assert.Equal(t, tt.limited, limited)
			if tt.limited {
				assert.Equal(t, tt.value, value)
			}
		})
	}
}

func TestPriceTierInput_ToPriceTier(t *testing.T) {
	tier, err := PriceTierInput{PriceCategoryID: "12", Quantity: ""}.ToPriceTier()
	require.NoError(t, err)
	assert.Equal(t, int64(12), tier.PriceCategoryID)
	assert.True(t, tier.Quantity.IsAbsent())

	tier, err = PriceTierInput{PriceCategoryID: " 3 ", Quantity: "10"}.ToPriceTier()
	require.NoError(t, err)
	assert.Equal(t, int64(3), tier.PriceCategoryID)
	assert.Equal(t, Limited(10), tier.Quantity)

	_, err = PriceTierInput{PriceCategoryID: "", Quantity: "10"}.ToPriceTier()
	assert.ErrorIs(t, err, ErrInvalidPriceCategory)

	_, err = PriceTierInput{PriceCategoryID: "1", Quantity: "1.5"}.ToPriceTier()
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestQuantity_MarshalJSON(t *testing.T) {
	unlimited, err := Unlimited().MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "null", string(unlimited))

	limited, err := Limited(10).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "10", string(limited))
}

func TestStock_RemainingQuantity(t *testing.T) {
	limit := time.Date(2024, 6, 8, 10, 0, 0, 0, time.UTC)

	unlimited := &Stock{Quantity: Unlimited(), BookedQuantity: 40, BookingLimitDatetime: limit}
	assert.True(t, unlimited.IsUnlimited())
	assert.True(t, unlimited.RemainingQuantity().IsAbsent())
	assert.True(t, unlimited.IsBookable(limit.Add(-time.Hour)))

	soldOut := &Stock{Quantity: Limited(10), BookedQuantity: 12, BookingLimitDatetime: limit}
	assert.Equal(t, Limited(0), soldOut.RemainingQuantity())
	assert.False(t, soldOut.IsBookable(limit.Add(-time.Hour)))

	open := &Stock{Quantity: Limited(10), BookedQuantity: 3, BookingLimitDatetime: limit}
	assert.Equal(t, Limited(7), open.RemainingQuantity())
	assert.True(t, open.IsBookable(limit))
	assert.False(t, open.IsBookable(limit.Add(time.Second)))
}

func TestWeekdaySet(t *testing.T) {
	set := NewWeekdaySet(time.Wednesday, time.Monday)

	assert.True(t, set.Has(time.Monday))
	assert.True(t, set.Has(time.Wednesday))
	assert.False(t, set.Has(time.Sunday))
	assert.False(t, set.IsEmpty())
	assert.Equal(t, []time.Weekday{time.Monday, time.Wednesday}, set.Days())

	assert.True(t, WeekdaySet(0).IsEmpty())
	assert.Equal(t, WeekdaySet(0), NewWeekdaySet(time.Weekday(9)))

	withSunday := set.With(time.Sunday)
	assert.Equal(t, []time.Weekday{time.Monday, time.Wednesday, time.Sunday}, withSunday.Days())
}

func TestParseWeekday(t *testing.T) {
	d, ok := ParseWeekday(" Tuesday ")
	require.True(t, ok)
	assert.Equal(t, time.Tuesday, d)

	_, ok = ParseWeekday("mardi")
	assert.False(t, ok)
}

func TestMonthlyOption_IsValid(t *testing.T) {
	assert.True(t, MonthlyDayOfMonth.IsValid())
	assert.True(t, MonthlyNthWeekday.IsValid())
	assert.True(t, MonthlyLastWeekday.IsValid())
	assert.False(t, MonthlyNone.IsValid())
	assert.False(t, MonthlyOption("EVERY_OTHER").IsValid())
}

func TestOffer_HasPriceCategory(t *testing.T) {
	offer := &Offer{PriceCategoryIDs: []int64{1, 2}}
	assert.True(t, offer.HasPriceCategory(2))
	assert.False(t, offer.HasPriceCategory(3))
}
