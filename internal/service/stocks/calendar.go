package stocks

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/emersion/go-ical"

	"github.com/m04kA/SMC-EventStockService/internal/domain"
)

const (
	calendarProductID = "-//SMC//EventStockService//FR"
	uidDomain         = "stocks.smc"

	propBookingLimit = "X-SMC-BOOKING-LIMIT"
)

// encodeCalendar собирает VCALENDAR со стоками оффера
func encodeCalendar(offer *domain.Offer, stocks []*domain.Stock, now time.Time) ([]byte, error) {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, calendarProductID)
	cal.Props.SetText(ical.PropName, offer.Name)

	for _, s := range stocks {
		cal.Children = append(cal.Children, stockEvent(offer, s, now).Component)
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("failed to encode calendar: %w", err)
	}
	return buf.Bytes(), nil
}

func stockEvent(offer *domain.Offer, s *domain.Stock, now time.Time) *ical.Event {
	event := ical.NewEvent()
	event.Props.SetText(ical.PropUID, fmt.Sprintf("stock-%d@%s", s.ID, uidDomain))
	event.Props.SetDateTime(ical.PropDateTimeStamp, now.UTC())
	event.Props.SetDateTime(ical.PropDateTimeStart, s.BeginningDatetime.UTC())
	event.Props.SetText(ical.PropSummary, offer.Name)
	event.Props.SetText(ical.PropDescription, describeStock(s))
	event.Props.SetDateTime(propBookingLimit, s.BookingLimitDatetime.UTC())
	return event
}

func describeStock(s *domain.Stock) string {
	places := "unlimited"
	if !s.IsUnlimited() {
		places = strconv.Itoa(s.Quantity.OrEmpty())
	}
	return fmt.Sprintf("Price category %d, places: %s, booked: %d", s.PriceCategoryID, places, s.BookedQuantity)
}
