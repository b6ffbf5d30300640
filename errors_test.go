package redaxios

import (
	"errors"
	"strings"
	"testing"
)

func TestRequestErrorMessage(t *testing.T) {
	err := &RequestError{
		Type:    ErrorTypeStatus,
		Message: "request failed status validation",
		Status:  404,
	}

	msg := err.Error()
	if !strings.Contains(msg, "Status") {
		t.Errorf("Expected type in message, got %q", msg)
	}
	if !strings.Contains(msg, "404") {
		t.Errorf("Expected status in message, got %q", msg)
	}
}

func TestRequestErrorUnwrap(t *testing.T) {
	cause := errors.New("connection timeout")
	err := &RequestError{
		Type:    ErrorTypeNetwork,
		Message: "network request failed",
		Cause:   cause,
	}

	if !errors.Is(err, cause) {
		t.Error("Expected Unwrap to expose the cause")
	}
	if !strings.Contains(err.Error(), "connection timeout") {
		t.Errorf("Expected cause in message, got %q", err.Error())
	}
}

func TestRequestErrorIsComparesTypes(t *testing.T) {
	err := &RequestError{Type: ErrorTypeEncode, Message: "boom"}

	if !errors.Is(err, &RequestError{Type: ErrorTypeEncode}) {
		t.Error("Expected errors.Is to match on type")
	}
	if errors.Is(err, &RequestError{Type: ErrorTypeNetwork}) {
		t.Error("Expected errors.Is to reject different types")
	}
}

func TestNilRequestError(t *testing.T) {
	var err *RequestError

	if err.Error() != "<nil>" {
		t.Errorf("Expected <nil>, got %q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Error("Expected nil Unwrap")
	}
	if err.Is(&RequestError{Type: ErrorTypeStatus}) {
		t.Error("Expected nil receiver to match nothing")
	}
}

func TestIsStatusError(t *testing.T) {
	resp := &Response{Status: 503}
	err := &RequestError{Type: ErrorTypeStatus, Status: 503, Response: resp}

	got, ok := IsStatusError(err)
	if !ok {
		t.Fatal("Expected status error to be recognized")
	}
	if got != resp {
		t.Error("Expected the carried Response")
	}

	if _, ok := IsStatusError(errors.New("plain")); ok {
		t.Error("Expected plain errors to be rejected")
	}
	if _, ok := IsStatusError(&RequestError{Type: ErrorTypeNetwork}); ok {
		t.Error("Expected network errors to be rejected")
	}
}
