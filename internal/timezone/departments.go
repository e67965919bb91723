// Package timezone переводит локальное время площадки в UTC по коду департамента.
package timezone

import (
	"fmt"
	"strings"
	"sync"
	"time"
	_ "time/tzdata"

	"github.com/m04kA/SMC-EventStockService/internal/domain"
	"github.com/m04kA/SMC-EventStockService/pkg/types"
)

// DefaultZone пояс метрополии, используется для неизвестных департаментов
const DefaultZone = "Europe/Paris"

// Заморские департаменты и территории. Остальные коды относятся к метрополии.
var departmentZones = map[string]string{
	"971": "America/Guadeloupe",
	"972": "America/Martinique",
	"973": "America/Cayenne",
	"974": "Indian/Reunion",
	"975": "America/Miquelon",
	"976": "Indian/Mayotte",
	"977": "America/St_Barthelemy",
	"978": "America/Marigot",
	"984": "Indian/Kerguelen",
	"986": "Pacific/Wallis",
	"987": "Pacific/Tahiti",
	"988": "Pacific/Noumea",
}

var locations sync.Map // map[string]*time.Location

// ZoneName возвращает IANA-имя пояса департамента
func ZoneName(departmentCode string) string {
	if zone, ok := departmentZones[strings.TrimSpace(departmentCode)]; ok {
		return zone
	}
	return DefaultZone
}

// Location возвращает пояс департамента. Загруженные пояса кэшируются.
func Location(departmentCode string) (*time.Location, error) {
	name := ZoneName(departmentCode)
	if loc, ok := locations.Load(name); ok {
		return loc.(*time.Location), nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("timezone: load %s: %w", name, err)
	}
	locations.Store(name, loc)
	return loc, nil
}

// LocalToUTC переводит календарную дату и время HH:MM в поясе департамента
// в строку UTC формата "2006-01-02T15:04:05Z".
// Для некорректного слота возвращает пустую строку.
// Время, попадающее в разрыв при переходе на летнее время, сдвигается по правилам time.Date.
func LocalToUTC(date time.Time, slot types.TimeString, departmentCode string) string {
	hour, minute, err := slot.Clock()
	if err != nil {
		return ""
	}

	loc, err := Location(departmentCode)
	if err != nil {
		loc = time.UTC
	}

	local := time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, loc)
	return local.UTC().Format(domain.UTCDatetimeFormat)
}
