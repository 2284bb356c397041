package models

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/HSouheill/salesapp_backend/utils"
)

// Number is a float64 that accepts JSON numbers, numeric JSON strings and
// url-encoded form values.
type Number float64

// UnmarshalJSON implements json.Unmarshaler
func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*n = 0
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		return n.UnmarshalParam(s)
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("invalid number %s: %w", data, err)
	}
	*n = Number(f)
	return nil
}

// UnmarshalParam implements echo.BindUnmarshaler for form and query values
func (n *Number) UnmarshalParam(param string) error {
	f, err := utils.ParseFloat(param)
	if err != nil {
		return fmt.Errorf("invalid number %q: %w", param, err)
	}
	*n = Number(f)
	return nil
}

// Float64 returns the value as a float64
func (n Number) Float64() float64 {
	return float64(n)
}
