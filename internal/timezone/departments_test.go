package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-EventStockService/pkg/types"
)

func TestZoneName(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{code: "75", want: "Europe/Paris"},
		{code: "2A", want: "Europe/Paris"},
		{code: "974", want: "Indian/Reunion"},
		{code: " 971 ", want: "America/Guadeloupe"},
		{code: "987", want: "Pacific/Tahiti"},
		{code: "", want: DefaultZone},
		{code: "unknown", want: DefaultZone},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, ZoneName(tt.code))
		})
	}
}

func TestLocation_AllZonesLoad(t *testing.T) {
	for code := range departmentZones {
		_, err := Location(code)
		require.NoError(t, err, code)
	}

	first, err := Location("75")
	require.NoError(t, err)
	second, err := Location("93")
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestLocalToUTC(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		slot types.TimeString
		code string
		want string
	}{
		{name: "paris summer time", date: time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC), slot: "18:00", code: "75", want: "2024-06-10T16:00:00Z"},
		{name: "paris winter time", date: time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC), slot: "18:00", code: "75", want: "2024-01-10T17:00:00Z"},
		{name: "day after spring forward", date: time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC), slot: "10:00", code: "13", want: "2024-04-01T08:00:00Z"},
		{name: "day before spring forward", date: time.Date(2024, time.March, 30, 0, 0, 0, 0, time.UTC), slot: "10:00", code: "13", want: "2024-03-30T09:00:00Z"},
		{name: "reunion", date: time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC), slot: "18:00", code: "974", want: "2024-06-10T14:00:00Z"},
		{name: "guadeloupe", date: time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC), slot: "18:00", code: "971", want: "2024-06-10T22:00:00Z"},
		{name: "tahiti crosses midnight", date: time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC), slot: "18:00", code: "987", want: "2024-06-11T04:00:00Z"},
		{name: "unknown department", date: time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC), slot: "18:00", code: "XX", want: "2024-06-10T16:00:00Z"},
		{name: "invalid slot", date: time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC), slot: "18h", code: "75", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LocalToUTC(tt.date, tt.slot, tt.code))
		})
	}
}
