package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapStatus_KnownCodes(t *testing.T) {
	tests := []struct {
		code      string
		wantState int
		wantLabel string
	}{
		{"0", StatusCurrent, "Available"},
		{"1", StatusAgreed, "Under Offer"},
		{"2", StatusConcluded, "Sold"},
		{"3", StatusAgreed, "Sold Subject to Contract"},
		{"4", StatusConcluded, "Completed"},
		{"100", StatusCurrent, "To Let"},
		{"101", StatusAgreed, "Let Agreed"},
		{"102", StatusConcluded, "Let"},
		{"103", StatusCurrent, "Withdrawn"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got := MapStatus(tt.code, "")
			assert.Equal(t, tt.wantState, got.State)
			assert.Equal(t, tt.wantLabel, got.Label)
		})
	}
}

func TestMapStatus_CompletedLetting(t *testing.T) {
	got := MapStatus("104", "")
	assert.Equal(t, StatusConcluded, got.State)
	assert.Contains(t, got.Label, "Completed")
}

func TestMapStatus_TextFallbackWhenCodeMissing(t *testing.T) {
	got := MapStatus("", "102")
	assert.Equal(t, StatusConcluded, got.State)
	assert.Equal(t, "Let", got.Label)
}

func TestMapStatus_UnknownDefaultsToCurrent(t *testing.T) {
	for _, code := range []string{"", "57", "abc", "-1"} {
		got := MapStatus(code, "")
		assert.Equal(t, StatusCurrent, got.State, "code %q", code)
		assert.Equal(t, "Current", got.Label)
	}
}
