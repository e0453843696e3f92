package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/matzehuels/orgchart/pkg/orgchart"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidInput, "test message: %s", "value")

	if err.Code != ErrCodeInvalidInput {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidInput)
	}

	if err.Message != "test message: value" {
		t.Errorf("Message = %v, want %v", err.Message, "test message: value")
	}

	expected := "INVALID_INPUT: test message: value"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInternal, cause, "failed to fetch")

	if err.Code != ErrCodeInternal {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInternal)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	// Test Unwrap
	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	// Test errors.Is with wrapped error
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeInvalidInput, "test"),
			code:     ErrCodeInvalidInput,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeInvalidInput, "test"),
			code:     ErrCodeInternal,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeInternal, New(ErrCodeInvalidInput, "inner"), "outer"),
			code:     ErrCodeInternal,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidInput,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInvalidInput,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeInvalidChart, "test"),
			expected: ErrCodeInvalidChart,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			expected: "",
		},
		{
			name:     "nil",
			err:      nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeInvalidInput, "friendly message"),
			expected: "friendly message",
		},
		{
			name:     "plain error",
			err:      errors.New("plain error"),
			expected: "plain error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestErrorOmitsDuplicateCause(t *testing.T) {
	cause := errors.New("boom")
	err := &Error{Code: ErrCodeInternal, Message: "boom", Cause: cause}
	if err.Error() != "INTERNAL_ERROR: boom" {
		t.Errorf("Error() = %v, want %v", err.Error(), "INTERNAL_ERROR: boom")
	}
}

func TestFromChart(t *testing.T) {
	root := &orgchart.Employee{ID: 1, Subordinates: []*orgchart.Employee{
		{ID: 2, Subordinates: []*orgchart.Employee{{ID: 3}}},
	}}
	c, err := orgchart.New(root)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name       string
		err        error
		code       Code
		httpStatus int
	}{
		{"self", c.Move(2, 2), ErrCodeSelfSupervision, http.StatusConflict},
		{"cycle", c.Move(2, 3), ErrCodeCycle, http.StatusConflict},
		{"root", c.Move(1, 3), ErrCodeRootImmovable, http.StatusConflict},
		{"not found", c.Move(7, 3), ErrCodeEmployeeNotFound, http.StatusNotFound},
		{"duplicate", &orgchart.DuplicateIDError{ID: 4}, ErrCodeInvalidChart, http.StatusBadRequest},
		{"unknown", errors.New("disk on fire"), ErrCodeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromChart(tt.err)
			if GetCode(got) != tt.code {
				t.Errorf("GetCode(FromChart()) = %v, want %v", GetCode(got), tt.code)
			}
			if !errors.Is(got, tt.err) {
				t.Error("FromChart should keep the original error in the chain")
			}
			if s := HTTPStatus(GetCode(got)); s != tt.httpStatus {
				t.Errorf("HTTPStatus() = %d, want %d", s, tt.httpStatus)
			}
		})
	}

	if FromChart(nil) != nil {
		t.Error("FromChart(nil) should be nil")
	}
	coded := New(ErrCodeInvalidScript, "bad step")
	if FromChart(coded) != coded {
		t.Error("FromChart should return coded errors unchanged")
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, 0},
		{New(ErrCodeInvalidScript, "bad step"), 2},
		{New(ErrCodeCycle, "cycle"), 3},
		{Wrap(ErrCodeRootImmovable, nil, "root"), 3},
		{New(ErrCodeFileNotFound, "missing"), 4},
		{New(ErrCodeInternal, "boom"), 1},
		{errors.New("plain"), 1},
	}
	for _, tt := range tests {
		if got := ExitCode(tt.err); got != tt.want {
			t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
