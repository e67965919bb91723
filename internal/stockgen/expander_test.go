package stockgen

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-EventStockService/internal/domain"
	"github.com/m04kA/SMC-EventStockService/pkg/types"
)

// fakeLocalToUTC считает локальное время равным UTC
func fakeLocalToUTC(date time.Time, slot types.TimeString, _ string) string {
	return fmt.Sprintf("%sT%s:00Z", date.Format(domain.DateFormat), slot)
}

func sequentialIDs() IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestExpander_Expand_CrossProduct(t *testing.T) {
	e := NewExpander(WithIDGenerator(sequentialIDs()))

	stocks, err := e.Expand(
		[]time.Time{day(2024, time.June, 10), day(2024, time.June, 11)},
		[]types.TimeString{"10:00", "18:30"},
		[]domain.PriceTierInput{{PriceCategoryID: "1", Quantity: "10"}},
		nil,
		"75",
		fakeLocalToUTC,
	)
	require.NoError(t, err)
	require.Len(t, stocks, 4)

	wantBeginnings := []string{
		"2024-06-10T10:00:00Z",
		"2024-06-10T18:30:00Z",
		"2024-06-11T10:00:00Z",
		"2024-06-11T18:30:00Z",
	}
	for i, s := range stocks {
		assert.Equal(t, fmt.Sprintf("id-%d", i+1), s.ID)
		assert.Equal(t, wantBeginnings[i], s.BeginningDatetimeUTC)
		// Без смещения дата окончания бронирования совпадает с началом
		assert.Equal(t, s.BeginningDatetimeUTC, s.BookingLimitDatetimeUTC)
		assert.Equal(t, int64(1), s.PriceCategoryID)
		assert.Equal(t, domain.Limited(10), s.Quantity)
	}
}

func TestExpander_Expand_Order(t *testing.T) {
	e := NewExpander(WithIDGenerator(sequentialIDs()))

	stocks, err := e.Expand(
		[]time.Time{day(2024, time.June, 10)},
		[]types.TimeString{"20:00", "09:00"},
		[]domain.PriceTierInput{{PriceCategoryID: "7", Quantity: ""}, {PriceCategoryID: "3", Quantity: "5"}},
		nil,
		"75",
		fakeLocalToUTC,
	)
	require.NoError(t, err)
	require.Len(t, stocks, 4)

	// Порядок слотов и категорий сохраняется как есть, без сортировки
	assert.Equal(t, "2024-06-10T20:00:00Z", stocks[0].BeginningDatetimeUTC)
	assert.Equal(t, int64(7), stocks[0].PriceCategoryID)
	assert.Equal(t, int64(3), stocks[1].PriceCategoryID)
	assert.Equal(t, "2024-06-10T09:00:00Z", stocks[2].BeginningDatetimeUTC)
	assert.Equal(t, int64(7), stocks[2].PriceCategoryID)
	assert.Equal(t, int64(3), stocks[3].PriceCategoryID)
}

func TestExpander_Expand_BookingLimit(t *testing.T) {
	stocks, err := NewExpander().Expand(
		[]time.Time{day(2024, time.June, 10)},
		[]types.TimeString{"10:00"},
		[]domain.PriceTierInput{{PriceCategoryID: "1", Quantity: "10"}},
		intPtr(2),
		"75",
		fakeLocalToUTC,
	)
	require.NoError(t, err)
	require.Len(t, stocks, 1)

	assert.Equal(t, "2024-06-10T10:00:00Z", stocks[0].BeginningDatetimeUTC)
	assert.Equal(t, "2024-06-08T10:00:00Z", stocks[0].BookingLimitDatetimeUTC)
}

func TestExpander_Expand_UnlimitedQuantity(t *testing.T) {
	stocks, err := ExpandStocks(
		[]time.Time{day(2024, time.June, 10)},
		[]types.TimeString{"10:00"},
		[]domain.PriceTierInput{{PriceCategoryID: "1", Quantity: ""}},
		nil,
		"75",
		fakeLocalToUTC,
	)
	require.NoError(t, err)
	require.Len(t, stocks, 1)

	assert.True(t, stocks[0].Quantity.IsAbsent())
}

func TestExpander_Expand_DepartmentPassedToConverter(t *testing.T) {
	var seen []string
	convert := func(date time.Time, slot types.TimeString, departmentCode string) string {
		seen = append(seen, departmentCode)
		return fakeLocalToUTC(date, slot, departmentCode)
	}

	_, err := NewExpander().Expand(
		[]time.Time{day(2024, time.June, 10), day(2024, time.June, 11)},
		[]types.TimeString{"10:00"},
		[]domain.PriceTierInput{{PriceCategoryID: "1"}, {PriceCategoryID: "2"}},
		nil,
		"974",
		convert,
	)
	require.NoError(t, err)
	// Конвертер вызывается один раз на пару (дата, слот)
	assert.Equal(t, []string{"974", "974"}, seen)
}

func TestExpander_Expand_Deterministic(t *testing.T) {
	args := func() ([]domain.GeneratedStock, error) {
		return NewExpander(WithIDGenerator(sequentialIDs())).Expand(
			[]time.Time{day(2024, time.June, 10), day(2024, time.June, 12)},
			[]types.TimeString{"10:00", "14:00"},
			[]domain.PriceTierInput{{PriceCategoryID: "1", Quantity: "10"}, {PriceCategoryID: "2"}},
			intPtr(1),
			"75",
			fakeLocalToUTC,
		)
	}

	first, err := args()
	require.NoError(t, err)
	second, err := args()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestExpander_Expand_DefaultIDsAreUnique(t *testing.T) {
	stocks, err := ExpandStocks(
		[]time.Time{day(2024, time.June, 10), day(2024, time.June, 11), day(2024, time.June, 12)},
		[]types.TimeString{"10:00", "14:00", "18:00"},
		[]domain.PriceTierInput{{PriceCategoryID: "1"}, {PriceCategoryID: "2"}},
		nil,
		"75",
		fakeLocalToUTC,
	)
	require.NoError(t, err)
	require.Len(t, stocks, 18)

	ids := make(map[string]struct{}, len(stocks))
	for _, s := range stocks {
		_, err := uuid.Parse(s.ID)
		require.NoError(t, err)
		ids[s.ID] = struct{}{}
	}
	assert.Len(t, ids, len(stocks))
}

func TestExpander_Expand_Empty(t *testing.T) {
	stocks, err := ExpandStocks(nil, []types.TimeString{"10:00"}, []domain.PriceTierInput{{PriceCategoryID: "1"}}, nil, "75", fakeLocalToUTC)
	require.NoError(t, err)
	assert.Empty(t, stocks)
}

func TestExpander_Expand_Errors(t *testing.T) {
	dates := []time.Time{day(2024, time.June, 10)}
	tiers := []domain.PriceTierInput{{PriceCategoryID: "1", Quantity: "10"}}

	tests := []struct {
		name    string
		slots   []types.TimeString
		tiers   []domain.PriceTierInput
		convert LocalToUTC
		wantErr error
	}{
		{name: "blank slot", slots: []types.TimeString{"10:00", " "}, tiers: tiers, convert: fakeLocalToUTC, wantErr: ErrBlankTimeSlot},
		{name: "malformed slot", slots: []types.TimeString{"25:00"}, tiers: tiers, convert: fakeLocalToUTC, wantErr: ErrInvalidTimeSlot},
		{
			name:    "price category is not a number",
			slots:   []types.TimeString{"10:00"},
			tiers:   []domain.PriceTierInput{{PriceCategoryID: "abc", Quantity: "10"}},
			convert: fakeLocalToUTC,
			wantErr: ErrInvalidPriceCategory,
		},
		{
			name:    "negative quantity",
			slots:   []types.TimeString{"10:00"},
			tiers:   []domain.PriceTierInput{{PriceCategoryID: "1", Quantity: "-1"}},
			convert: fakeLocalToUTC,
			wantErr: ErrInvalidQuantity,
		},
		{
			name:    "converter returns garbage",
			slots:   []types.TimeString{"10:00"},
			tiers:   tiers,
			convert: func(time.Time, types.TimeString, string) string { return "tomorrow" },
			wantErr: ErrInvalidBeginningDatetime,
		},
		{name: "no converter", slots: []types.TimeString{"10:00"}, tiers: tiers, wantErr: ErrMissingLocalToUTC},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stocks, err := NewExpander().Expand(dates, tt.slots, tt.tiers, nil, "75", tt.convert)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, stocks)
		})
	}
}

func TestExpander_ConcurrentUse(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			stocks, err := ExpandStocks(
				[]time.Time{day(2024, time.June, 10)},
				[]types.TimeString{"10:00"},
				[]domain.PriceTierInput{{PriceCategoryID: "1"}},
				nil,
				"75",
				fakeLocalToUTC,
			)
			assert.NoError(t, err)
			assert.Len(t, stocks, 1)
		}()
	}
	wg.Wait()
}

func TestBookingLimit(t *testing.T) {
	tests := []struct {
		name      string
		beginning string
		offset    int
		want      string
	}{
		{name: "no offset", beginning: "2024-06-10T10:00:00Z", offset: 0, want: "2024-06-10T10:00:00Z"},
		{name: "two days", beginning: "2024-06-10T10:00:00Z", offset: 2, want: "2024-06-08T10:00:00Z"},
		{name: "across month", beginning: "2024-03-01T08:15:00Z", offset: 1, want: "2024-02-29T08:15:00Z"},
		{name: "drops sub-second precision", beginning: "2024-06-10T10:00:00.123456Z", offset: 0, want: "2024-06-10T10:00:00Z"},
		{name: "offset input is normalized to utc", beginning: "2024-06-10T12:00:00+02:00", offset: 1, want: "2024-06-09T10:00:00Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BookingLimit(tt.beginning, tt.offset)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func intPtr(v int) *int {
	return &v
}
