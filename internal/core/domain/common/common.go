package common

import (
	"fmt"
	"strings"
)

type Optional[T any] struct {
	Value     T
	IsPresent bool
}

func (p *Optional[T]) String() string {
	if !p.IsPresent {
		return "[-]"
	}
	return fmt.Sprintf("[%v]", p.Value)
}

func NewOptional[T any](value T, isPresent bool) Optional[T] {
	return Optional[T]{Value: value, IsPresent: isPresent}
}

// ValueOr returns the wrapped value or fallback when the value is absent.
func (p Optional[T]) ValueOr(fallback T) T {
	if !p.IsPresent {
		return fallback
	}
	return p.Value
}

type Email string

func NewEmail(rawEmail string) Email {
	return Email(strings.ToLower(rawEmail))
}

type PhoneNumber string

func NewPhoneNumber(raw string) PhoneNumber {
	return PhoneNumber(strings.ReplaceAll(strings.TrimSpace(raw), " ", ""))
}
