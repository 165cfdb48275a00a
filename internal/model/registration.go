package model

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidPaymentMethod = errors.New("model: invalid payment method")

type PaymentMethod string

const (
	PaymentCreditCard PaymentMethod = "credit-card"
	PaymentPayPal     PaymentMethod = "paypal"
	PaymentBitcoin    PaymentMethod = "bitcoin"
)

// PaymentMethods lists the methods in the order they are offered.
var PaymentMethods = []PaymentMethod{PaymentCreditCard, PaymentPayPal, PaymentBitcoin}

func (p PaymentMethod) IsValid() bool {
	switch p {
	case PaymentCreditCard, PaymentPayPal, PaymentBitcoin:
		return true
	default:
		return false
	}
}

func ParsePaymentMethod(raw string) (PaymentMethod, error) {
	p := PaymentMethod(strings.ToLower(strings.TrimSpace(raw)))
	if !p.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPaymentMethod, raw)
	}
	return p, nil
}

// JobRoleOther reveals the free-text job role input.
const JobRoleOther = "other"

var JobRoles = []string{"full-stack js developer", "front-end developer", "back-end developer", "designer", "student", JobRoleOther}

type ShirtDesign struct {
	Value string
	Label string
}

type ShirtColor struct {
	Value string
	Label string
	Theme string
}

// ColorsForDesign returns the colors whose theme matches the design.
func ColorsForDesign(colors []ShirtColor, design string) []ShirtColor {
	out := make([]ShirtColor, 0, len(colors))
	for _, c := range colors {
		if c.Theme == design {
			out = append(out, c)
		}
	}
	return out
}

// FieldState is the last validation outcome of a field.
type FieldState struct {
	Valid bool
	Hint  string
}
