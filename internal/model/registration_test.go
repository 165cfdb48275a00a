package model

import (
	"errors"
	"testing"
)

func TestParsePaymentMethod(t *testing.T) {
	p, err := ParsePaymentMethod(" PayPal ")
	if err != nil || p != PaymentPayPal {
		t.Fatalf("parse paypal = %q, %v", p, err)
	}
	if _, err := ParsePaymentMethod("cash"); !errors.Is(err, ErrInvalidPaymentMethod) {
		t.Fatalf("expected ErrInvalidPaymentMethod, got %v", err)
	}
	for _, m := range PaymentMethods {
		if !m.IsValid() {
			t.Fatalf("expected %q valid", m)
		}
	}
}

func TestColorsForDesign(t *testing.T) {
	colors := []ShirtColor{
		{Value: "cornflowerblue", Theme: "js puns"},
		{Value: "tomato", Theme: "heart js"},
		{Value: "gold", Theme: "js puns"},
	}
	got := ColorsForDesign(colors, "js puns")
	if len(got) != 2 || got[0].Value != "cornflowerblue" || got[1].Value != "gold" {
		t.Fatalf("unexpected colors: %+v", got)
	}
	if len(ColorsForDesign(colors, "unknown")) != 0 {
		t.Fatal("expected no colors for unknown design")
	}
}
