package roster

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ID identifies a record. It is unique within a Roster for the Roster's lifetime.
type ID int

// Gender is the canonical gender value stored on a record.
type Gender string

// Canonical gender values.
const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// Genders lists the canonical gender values in display order.
func Genders() []Gender {
	return []Gender{GenderMale, GenderFemale}
}

// Valid reports whether g is one of the canonical values (case-sensitive).
func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

// Next returns the other canonical gender. Invalid values map to Male.
func (g Gender) Next() Gender {
	if g == GenderMale {
		return GenderFemale
	}
	return GenderMale
}

// Record is a single employee entry.
type Record struct {
	ID        ID      `json:"id"         yaml:"id"`
	FirstName string  `json:"first_name" yaml:"first_name"`
	LastName  string  `json:"last_name"  yaml:"last_name"`
	Email     string  `json:"email"      yaml:"email"`
	Gender    Gender  `json:"gender"     yaml:"gender"`
	Salary    float64 `json:"salary"     yaml:"salary"`
}

// FullName returns "First Last" with surrounding whitespace removed.
func (r Record) FullName() string {
	return strings.TrimSpace(r.FirstName + " " + r.LastName)
}

// Validate checks the fields that carry a closed domain: gender and salary.
// Names and email are free text and are never rejected.
func (r Record) Validate() error {
	if !r.Gender.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidGender, r.Gender)
	}
	return validateSalary(r.Salary)
}

// Common roster errors.
var (
	ErrRecordNotFound = errors.New("record not found")
	ErrInvalidGender  = errors.New("gender must be \"Male\" or \"Female\"")
	ErrInvalidSalary  = errors.New("salary must be a non-negative number")
)

// ParseSalary coerces text input into a salary. Surrounding whitespace, a leading
// "$" and thousands separators are accepted; anything that does not parse to a
// finite, non-negative number is rejected with ErrInvalidSalary.
func ParseSalary(text string) (float64, error) {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimPrefix(cleaned, "$")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return 0, fmt.Errorf("%w: empty input", ErrInvalidSalary)
	}

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidSalary, text)
	}
	if err = validateSalary(value); err != nil {
		return 0, err
	}
	return value, nil
}

func validateSalary(value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidSalary, value)
	}
	if value < 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidSalary, value)
	}
	return nil
}
