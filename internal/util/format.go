package util

import (
	"fmt"

	"github.com/coolcut/siphon/internal/models"
)

// DisplayName prefers the joined service name over the user's custom label.
// Only a null service name falls back to custom_name.
func DisplayName(view models.SubscriptionView) string {
	if view.ServiceName != nil {
		return *view.ServiceName
	}
	return view.CustomName
}

// FormatAmount converts integer minor units to a two-decimal string, e.g.
// 1499 -> "14.99", -5 -> "-0.05". Pure integer arithmetic: amounts are always
// integral, so no rounding can occur.
func FormatAmount(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
