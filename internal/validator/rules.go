package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"tenderlink_backend/internal/models"
)

// Custom rules must also exist on gin's binding engine, otherwise a DTO tag
// like "biddertype" would make ShouldBindJSON panic.
func init() {
	if engine, ok := binding.Validator.Engine().(*validator.Validate); ok {
		registerCustomRules(engine)
	}
}

// registerCustomRules adds domain validations to the underlying validator.
func registerCustomRules(v *validator.Validate) {
	// biddertype: member of the bidder specialty enum.
	_ = v.RegisterValidation("biddertype", func(fl validator.FieldLevel) bool {
		return models.ValidBidderType(models.BidderType(fl.Field().String()))
	})

	// usertype: tender or bidder.
	_ = v.RegisterValidation("usertype", func(fl validator.FieldLevel) bool {
		ut := models.UserType(fl.Field().String())
		return ut == models.UserTypeTender || ut == models.UserTypeBidder
	})
}
