package authors

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var authorIDRe = regexp.MustCompile(`^[^/\\\s]+$`)

// ValidateID checks that id names a single file inside the authors
// collection: non-empty, no path separators, no whitespace, and not a
// relative directory reference.
func ValidateID(id string) error {
	return validation.Validate(id,
		validation.Required.Error("author id is required"),
		validation.Match(authorIDRe).Error("author id must not contain slashes or whitespace"),
		validation.NotIn(".", "..").Error("author id must not be a directory reference"),
	)
}
