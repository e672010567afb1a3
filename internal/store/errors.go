package store

import (
	"context"
	"errors"
	"fmt"
)

// ErrorObject is the single failure shape surfaced to slices. Its fields are
// copied from the failed request and never interpreted by reducers.
type ErrorObject struct {
	Status           int    `json:"status"`
	Code             int    `json:"code"`
	Name             string `json:"name"`
	Message          string `json:"message"`
	DeveloperMessage string `json:"developerMessage"`
	UserMessage      string `json:"userMessage"`
	Err              string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

func (e ErrorObject) Error() string {
	switch {
	case e.Status != 0 && e.Message != "":
		return fmt.Sprintf("%d %s", e.Status, e.Message)
	case e.Message != "":
		return e.Message
	case e.ErrorDescription != "":
		return e.ErrorDescription
	default:
		return fmt.Sprintf("request failed with status %d", e.Status)
	}
}

// AsErrorObject converts any failure into an ErrorObject.
func AsErrorObject(err error) ErrorObject {
	if err == nil {
		return ErrorObject{}
	}
	var obj ErrorObject
	if errors.As(err, &obj) {
		return obj
	}
	var ptr *ErrorObject
	if errors.As(err, &ptr) && ptr != nil {
		return *ptr
	}
	name := "Error"
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		name = "AbortError"
	}
	return ErrorObject{
		Name:             name,
		Message:          err.Error(),
		DeveloperMessage: err.Error(),
		UserMessage:      "Request failed, please try again",
		Err:              name,
		ErrorDescription: err.Error(),
	}
}
