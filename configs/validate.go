package configs

import (
	"github.com/go-playground/validator/v10"
	"github.com/mdayat/qaza-tracker-service/internal/tracker"
)

func NewValidate() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterValidation("prayer_item", func(fl validator.FieldLevel) bool {
		_, err := tracker.ParseItem(fl.Field().String())
		return err == nil
	})

	return validate
}
