package validation

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// Custom binding tags
const (
	// TagNotBlank rejects strings made only of whitespace
	TagNotBlank = "notblank"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterCustomValidators adds the custom tags to gin's validator engine.
// Safe to call more than once.
func RegisterCustomValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
			return
		}
		registerErr = v.RegisterValidation(TagNotBlank, validators.NotBlank)
	})
	return registerErr
}
