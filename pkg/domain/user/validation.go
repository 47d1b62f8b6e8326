package user

import (
	"fmt"
	"time"
)

// Violation is a single eligibility rule failure, attributed to a field.
type Violation struct {
	Field   string
	Message string
}

// ValidateEligibility evaluates the cross-field eligibility rules for a user
// against the configured cut-off age. It is a pure function: rules are
// evaluated independently and all violations are collected, at most one per
// field, with later rules for a field skipped once it has failed.
//
// Rules:
//  1. Date of birth is required and must be strictly in the past.
//  2. Gender is required and must be MALE or FEMALE.
//  3. Military status is required and must be a known status.
//  4. Male users older than cutOffAge must not have status NONE.
//  5. Female users must always have status NONE.
func ValidateEligibility(u *User, cutOffAge int) []Violation {
	return validateEligibilityAt(u, cutOffAge, time.Now())
}

func validateEligibilityAt(u *User, cutOffAge int, now time.Time) []Violation {
	var violations []Violation

	dobValid := true
	if u.DateOfBirth.IsZero() || !u.DateOfBirth.Before(now) {
		violations = append(violations, Violation{
			Field:   "dateOfBirth",
			Message: "The date of birth is required and must be in the past",
		})
		dobValid = false
	}

	if !u.Gender.Valid() {
		violations = append(violations, Violation{
			Field:   "gender",
			Message: "The user's gender is required and must not be empty",
		})
	}

	if !u.MilitaryStatus.Valid() {
		violations = append(violations, Violation{
			Field:   "militaryStatus",
			Message: "The military status is required and must not be empty",
		})
		return violations
	}

	// The age-dependent rule needs a usable date of birth.
	if u.Gender == GenderMale && dobValid {
		age := AgeAt(u.DateOfBirth, now)
		if age > cutOffAge && u.MilitaryStatus == MilitaryNone {
			violations = append(violations, Violation{
				Field: "militaryStatus",
				Message: fmt.Sprintf(
					"Male users above the age of %d must not have military status of 'NONE'",
					cutOffAge,
				),
			})
		}
	}

	if u.Gender == GenderFemale && u.MilitaryStatus != MilitaryNone {
		violations = append(violations, Violation{
			Field:   "militaryStatus",
			Message: "The military status for female users must be 'NONE'",
		})
	}

	return violations
}

// ViolationsToFields converts a violation list into a field-to-message map.
// With at most one violation per field the mapping is lossless.
func ViolationsToFields(violations []Violation) map[string]string {
	if len(violations) == 0 {
		return nil
	}
	fields := make(map[string]string, len(violations))
	for _, v := range violations {
		if _, ok := fields[v.Field]; !ok {
			fields[v.Field] = v.Message
		}
	}
	return fields
}
