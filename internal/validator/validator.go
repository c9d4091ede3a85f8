package validator

import (
	"regexp"
	"unicode/utf8"
)

var (
	EmailRX = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

	// DateRX only checks the YYYY-MM-DD shape, not calendar validity.
	DateRX = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

type Validator struct {
	Errors map[string]string
}

func New() *Validator {
	return &Validator{Errors: make(map[string]string)}
}

func (v *Validator) IsValid() bool {
	return len(v.Errors) == 0
}

func (v *Validator) AddError(key, message string) {
	if _, exists := v.Errors[key]; !exists {
		v.Errors[key] = message
	}
}

func (v *Validator) Check(ok bool, key, message string) {
	if !ok {
		v.AddError(key, message)
	}
}

func (v *Validator) CheckNotBlank(value, key, message string) {
	v.Check(value != "", key, message)
}

// CheckLength checks that value has between min and max characters (runes).
func (v *Validator) CheckLength(value string, min, max int, key, message string) {
	length := utf8.RuneCountInString(value)
	v.Check(length >= min && length <= max, key, message)
}

func (v *Validator) CheckEmail(value, key, message string) {
	v.Check(Matches(value, EmailRX), key, message)
}

func (v *Validator) CheckDate(value, key, message string) {
	v.Check(Matches(value, DateRX), key, message)
}

// Matches reports whether value matches the regular expression.
func Matches(value string, rx *regexp.Regexp) bool {
	return rx.MatchString(value)
}
