package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrInvalidCoupon      = errors.New("invalid coupon code")
	ErrInvalidStatus      = errors.New("invalid order status")
	ErrValidation         = errors.New("validation failed")
)

// FieldErrors maps a form field to its validation message. It is a
// value, surfaced inline by the presentation layer, but it also
// satisfies error so services can refuse a transition with it.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fmt.Sprintf("%v: %s", ErrValidation, strings.Join(fields, ", "))
}

func (fe FieldErrors) Unwrap() error {
	return ErrValidation
}
