package mocks

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	storageAccountPattern = regexp.MustCompile(`^[a-z0-9]{3,24}$`)
	queueNamePattern      = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{1,61}[a-z0-9]$`)

	names = newNameValidator()
)

func newNameValidator() *validator.Validate {
	v := validator.New()
	mustRegister(v, "storage_account", storageAccountPattern)
	mustRegister(v, "queue_name", queueNamePattern)
	return v
}

// mustRegister adds tag as a validation matching pattern. It panics if the
// tag cannot be registered.
func mustRegister(v *validator.Validate, tag string, pattern *regexp.Regexp) {
	err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return pattern.MatchString(fl.Field().String())
	})
	if err != nil {
		panic(fmt.Sprintf("mocks: register %s validation: %v", tag, err))
	}
}

// ValidateStorageAccountName checks Azure's storage account rules: 3 to 24
// lower-case letters or digits.
func ValidateStorageAccountName(name string) error {
	if err := names.Var(name, "storage_account"); err != nil {
		return fmt.Errorf("%w: storage account %q must be 3-24 lower-case letters or digits", ErrInvalidResourceName, name)
	}
	return nil
}

// ValidateQueueName checks Azure's queue naming rules: 3 to 63 lower-case
// letters, digits or hyphens, starting and ending with a letter or digit.
func ValidateQueueName(name string) error {
	if err := names.Var(name, "queue_name"); err != nil {
		return fmt.Errorf("%w: queue %q must be 3-63 lower-case letters, digits or inner hyphens", ErrInvalidResourceName, name)
	}
	return nil
}
