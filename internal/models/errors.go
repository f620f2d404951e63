package models

import "fmt"

// DataUnavailableError means the station dataset is neither cached nor fetchable.
type DataUnavailableError struct {
	Message string
	Err     error
}

func (e *DataUnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("station data unavailable: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("station data unavailable: %s", e.Message)
}

func (e *DataUnavailableError) Unwrap() error {
	return e.Err
}

func NewDataUnavailableError(message string, err error) *DataUnavailableError {
	return &DataUnavailableError{
		Message: message,
		Err:     err,
	}
}

// MalformedInputError is returned for input rejected before any lookup
type MalformedInputError struct {
	Message string
}

func (e *MalformedInputError) Error() string {
	return e.Message
}

func NewMalformedInputError(message string) *MalformedInputError {
	return &MalformedInputError{
		Message: message,
	}
}
