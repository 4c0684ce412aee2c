package roster

import "fmt"

// Update is a single typed field edit. The set of implementations is closed:
// only the Update* types in this package satisfy it.
type Update interface {
	// Field returns the record field name the update targets (e.g. "salary").
	Field() string
	apply(r *Record) error
}

// UpdateFirstName replaces the first name verbatim.
type UpdateFirstName struct{ Value string }

// UpdateLastName replaces the last name verbatim.
type UpdateLastName struct{ Value string }

// UpdateEmail replaces the email verbatim.
type UpdateEmail struct{ Value string }

// UpdateGender replaces the gender. Only the canonical values are accepted.
type UpdateGender struct{ Value Gender }

// UpdateSalary replaces the salary. The value must be finite and non-negative.
type UpdateSalary struct{ Value float64 }

// Field implements Update.
func (UpdateFirstName) Field() string { return "first_name" }

// Field implements Update.
func (UpdateLastName) Field() string { return "last_name" }

// Field implements Update.
func (UpdateEmail) Field() string { return "email" }

// Field implements Update.
func (UpdateGender) Field() string { return "gender" }

// Field implements Update.
func (UpdateSalary) Field() string { return "salary" }

func (u UpdateFirstName) apply(r *Record) error {
	r.FirstName = u.Value
	return nil
}

func (u UpdateLastName) apply(r *Record) error {
	r.LastName = u.Value
	return nil
}

func (u UpdateEmail) apply(r *Record) error {
	r.Email = u.Value
	return nil
}

func (u UpdateGender) apply(r *Record) error {
	if !u.Value.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidGender, u.Value)
	}
	r.Gender = u.Value
	return nil
}

func (u UpdateSalary) apply(r *Record) error {
	if err := validateSalary(u.Value); err != nil {
		return err
	}
	r.Salary = u.Value
	return nil
}

// UpdateSalaryText builds an UpdateSalary from text-field input.
func UpdateSalaryText(text string) (UpdateSalary, error) {
	value, err := ParseSalary(text)
	if err != nil {
		return UpdateSalary{}, err
	}
	return UpdateSalary{Value: value}, nil
}
