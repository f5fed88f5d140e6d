package handlers

import (
	"github.com/finbooks/finbooks_backend/internal/utils/validation"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidators attaches domain format checks to gin's binding
// validator so DTO tags can use them declaratively.
func RegisterCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	// docnumber accepts any of the per-type document number patterns. The
	// exact type/prefix pairing is enforced again at the service level.
	_ = v.RegisterValidation("docnumber", func(fl validator.FieldLevel) bool {
		number := fl.Field().String()
		return validation.IsValidDocumentNumber("INVOICE", number) ||
			validation.IsValidDocumentNumber("BILL", number) ||
			validation.IsValidDocumentNumber("JOURNAL", number)
	})
}
