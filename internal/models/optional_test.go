package models

import (
	"encoding/json"
	"testing"
)

func TestOptionalDistinguishesAbsentNullAndValue(t *testing.T) {
	var patch UpdateSubscriptionPayload
	body := `{"note": null, "payment_method": "card"}`
	if err := json.Unmarshal([]byte(body), &patch); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	// absent
	if patch.CustomName.Set {
		t.Error("custom_name marked present, want absent")
	}

	// explicit null
	if !patch.Note.Set || patch.Note.Valid {
		t.Errorf("note = %+v, want present and null", patch.Note)
	}
	if ptr := patch.Note.Ptr(); ptr != nil {
		t.Errorf("Ptr() on null = %v, want nil", ptr)
	}

	// value
	if !patch.PaymentMethod.Set || !patch.PaymentMethod.Valid {
		t.Errorf("payment_method = %+v, want present with value", patch.PaymentMethod)
	}
	if got := patch.PaymentMethod.Value; got != "card" {
		t.Errorf("payment_method = %q, want %q", got, "card")
	}
}

func TestOptionalEmptyDocument(t *testing.T) {
	var patch UpdateSubscriptionPayload
	if err := json.Unmarshal([]byte(`{}`), &patch); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	for name, set := range map[string]bool{
		"custom_name":  patch.CustomName.Set,
		"service_id":   patch.ServiceID.Set,
		"amount_cents": patch.AmountCents.Set,
		"is_active":    patch.IsActive.Set,
	} {
		if set {
			t.Errorf("%s marked present in empty patch", name)
		}
	}
}

func TestOptionalMarshalRoundTrip(t *testing.T) {
	testCases := []struct {
		in   Optional[int64]
		want string
	}{
		{Some[int64](42), "42"},
		{Null[int64](), "null"},
	}

	for _, tc := range testCases {
		b, err := json.Marshal(tc.in)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if string(b) != tc.want {
			t.Errorf("marshal = %s, want %s", b, tc.want)
		}
	}
}
