package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "without cause",
			err:  NewSelectionError("fewer than two distinct index points"),
			want: "[SELECTION] fewer than two distinct index points",
		},
		{
			name: "with cause",
			err:  NewParseError("bad timestamp", fmt.Errorf("cannot parse %q", "nope")),
			want: `[PARSE] bad timestamp: cannot parse "nope"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := NewStorageError("read failed", cause)

	assert.Equal(t, cause, err.Unwrap())
}

func TestAppError_WithContext(t *testing.T) {
	err := NewSelectionError("out of domain").WithContext("label", "2021-13-01T00:00")

	assert.Equal(t, "2021-13-01T00:00", err.Context["label"])
}

func TestIsType(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		errType ErrorType
		want    bool
	}{
		{
			name:    "matching type",
			err:     NewEmptyProjectionError("no numeric columns"),
			errType: ErrTypeProjection,
			want:    true,
		},
		{
			name:    "different type",
			err:     NewEmptySourceError("zero rows"),
			errType: ErrTypeSelection,
			want:    false,
		},
		{
			name:    "wrapped app error",
			err:     fmt.Errorf("executing view: %w", NewSelectionError("bad label")),
			errType: ErrTypeSelection,
			want:    true,
		},
		{
			name:    "foreign error",
			err:     fmt.Errorf("plain"),
			errType: ErrTypeSelection,
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsType(tt.err, tt.errType))
		})
	}
}

func TestGetType(t *testing.T) {
	assert.Equal(t, ErrTypeEmptySource, GetType(NewEmptySourceError("empty")))
	assert.Equal(t, ErrorType(""), GetType(fmt.Errorf("plain")))
}
