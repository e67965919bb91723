package types

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidTimeFormat возвращается, когда строка не соответствует формату HH:MM
var ErrInvalidTimeFormat = errors.New("invalid time string format")

const timeLayout = "15:04"

// TimeString время суток в формате "HH:MM" (например, "18:30")
type TimeString string

// String возвращает строковое представление
func (t TimeString) String() string {
	return string(t)
}

// IsZero возвращает true, если время не указано (пустая строка или пробелы)
func (t TimeString) IsZero() bool {
	return strings.TrimSpace(string(t)) == ""
}

// Validate проверяет формат HH:MM
func (t TimeString) Validate() error {
	if len(t) != len(timeLayout) {
		return fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(t))
	}
	if _, err := time.Parse(timeLayout, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(t))
	}
	return nil
}

// Clock возвращает часы и минуты
func (t TimeString) Clock() (hour, minute int, err error) {
	if err := t.Validate(); err != nil {
		return 0, 0, err
	}
	parsed, _ := time.Parse(timeLayout, string(t))
	return parsed.Hour(), parsed.Minute(), nil
}
