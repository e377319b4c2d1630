// Package cleaner normalizes, filters and deduplicates raw patient
// records loaded from a JSON export.
package cleaner

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Age decodes from either a JSON string ("32") or a JSON number (32).
// Strings must parse as base-10 integers; numbers truncate toward zero.
// Anything else is a decode error, which aborts the whole load.
type Age int

func (a *Age) UnmarshalJSON(data []byte) error {
	text := strings.TrimSpace(string(data))

	if strings.HasPrefix(text, `"`) {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("invalid age value %s: %w", text, err)
		}
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return fmt.Errorf("invalid age value %q: %w", raw, err)
		}
		*a = Age(n)
		return nil
	}

	if text == "null" {
		return fmt.Errorf("invalid age value: null")
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("invalid age value %s: %w", text, err)
	}
	*a = Age(int(f))
	return nil
}

// Patient is one record of the raw patient export. Gender and
// Diagnosis pass through the cleaning pipeline unchanged.
type Patient struct {
	Name      string `json:"name"`
	Age       Age    `json:"age"`
	Gender    string `json:"gender"`
	Diagnosis string `json:"diagnosis"`
}
