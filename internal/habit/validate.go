package habit

import (
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ValidateName rejects names that are empty after trimming.
func ValidateName(name string) error {
	err := validation.Validate(strings.TrimSpace(name),
		validation.Required.Error("name required"),
	)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrValidation, err.Error())
	}
	return nil
}
