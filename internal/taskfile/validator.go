package taskfile

import (
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	taskNamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
)

// validatorInstance lazily builds the shared validator used to check a
// parsed Document, registering the custom "task_name" rule once.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("task_name", func(fl validator.FieldLevel) bool {
			return taskNamePattern.MatchString(fl.Field().String())
		})
		validateInst = v
	})
	return validateInst
}
