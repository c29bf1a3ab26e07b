package dto

import (
	"fmt"
	"strings"
	"time"
)

// timeLayout is second-precision ISO-8601, matching the wire format of the
// envelope timestamps.
const timeLayout = "2006-01-02T15:04:05"

// dateLayout is used for date-only fields such as the user creation date.
const dateLayout = "2006-01-02"

// Timestamp marshals as ISO-8601 with second precision.
type Timestamp time.Time

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", time.Time(t).Format(timeLayout))), nil
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	parsed, err := time.Parse(timeLayout, strings.Trim(string(data), `"`))
	if err != nil {
		return err
	}
	*t = Timestamp(parsed)
	return nil
}

// Date marshals as a date without a time component.
type Date time.Time

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", time.Time(d).Format(dateLayout))), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	parsed, err := time.Parse(dateLayout, strings.Trim(string(data), `"`))
	if err != nil {
		return err
	}
	*d = Date(parsed)
	return nil
}

// SuccessResponse is the uniform success envelope. Data always serializes,
// so an empty listing goes out as "data": [].
type SuccessResponse[T any] struct {
	Timestamp Timestamp `json:"timestamp"`
	Status    int       `json:"status"`
	Message   string    `json:"message"`
	Data      T         `json:"data"`
}

// NewSuccess wraps a payload in the success envelope.
func NewSuccess[T any](status int, message string, data T) SuccessResponse[T] {
	return SuccessResponse[T]{
		Timestamp: Timestamp(time.Now()),
		Status:    status,
		Message:   message,
		Data:      data,
	}
}

// MessageResponse is the success envelope for operations with no payload,
// such as soft deletes.
type MessageResponse struct {
	Timestamp Timestamp `json:"timestamp"`
	Status    int       `json:"status"`
	Message   string    `json:"message"`
}

// NewMessage builds a success envelope without a payload.
func NewMessage(status int, message string) MessageResponse {
	return MessageResponse{
		Timestamp: Timestamp(time.Now()),
		Status:    status,
		Message:   message,
	}
}

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Timestamp Timestamp `json:"timestamp"`
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Path      string    `json:"path"`
	Details   []string  `json:"details,omitempty"`
}

// NewError builds an error envelope.
func NewError(status int, category, message, path string, details []string) ErrorResponse {
	return ErrorResponse{
		Timestamp: Timestamp(time.Now()),
		Status:    status,
		Error:     category,
		Message:   message,
		Path:      path,
		Details:   details,
	}
}
