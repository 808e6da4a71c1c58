package response

import (
	"encoding/json"
	"time"

	"mcal/pkg/datemath"
)

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// Date is a naive calendar date that marshals as YYYY-MM-DD.
type Date time.Time

// MarshalJSON implements json.Marshaler for Date.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(datemath.FormatDate(time.Time(d)))
}

// DateTime is a naive local date-time that marshals without a zone offset.
type DateTime time.Time

// MarshalJSON implements json.Marshaler for DateTime.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(datemath.FormatNaive(time.Time(d)))
}
