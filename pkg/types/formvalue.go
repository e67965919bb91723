package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// FormValue значение поля формы, которое фронтенд присылает то строкой, то числом.
// null и "" превращаются в пустую строку.
type FormValue string

// UnmarshalJSON принимает JSON-строку, число или null
func (v *FormValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if bytes.Equal(data, []byte("null")) {
		*v = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = FormValue(strings.TrimSpace(s))
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("form value must be a string or a number: %w", err)
	}
	*v = FormValue(n.String())
	return nil
}

// String возвращает строковое представление
func (v FormValue) String() string {
	return string(v)
}

// IsEmpty возвращает true для "" и null
func (v FormValue) IsEmpty() bool {
	return strings.TrimSpace(string(v)) == ""
}
