package util

import (
	"testing"

	"github.com/coolcut/siphon/internal/models"
)

func TestFormatAmount(t *testing.T) {
	testCases := []struct {
		cents int64
		want  string
	}{
		{1499, "14.99"},
		{0, "0.00"},
		{100000, "1000.00"},
		{5, "0.05"},
		{-5, "-0.05"},
		{-1499, "-14.99"},
		{100, "1.00"},
		{99, "0.99"},
	}

	for _, tc := range testCases {
		got := FormatAmount(tc.cents)
		if got != tc.want {
			t.Errorf("FormatAmount(%d) = %q, want %q", tc.cents, got, tc.want)
		}
	}
}

func TestDisplayName_ServiceWins(t *testing.T) {
	name := "Netflix"
	view := models.SubscriptionView{
		CustomName:  "My Netflix",
		ServiceName: &name,
	}

	if got := DisplayName(view); got != "Netflix" {
		t.Errorf("DisplayName() = %q, want %q", got, "Netflix")
	}
}

func TestDisplayName_FallsBackToCustomName(t *testing.T) {
	view := models.SubscriptionView{
		CustomName: "Gym membership",
	}

	if got := DisplayName(view); got != "Gym membership" {
		t.Errorf("DisplayName() = %q, want %q", got, "Gym membership")
	}
}
