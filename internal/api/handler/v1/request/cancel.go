package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// ManualCancellationRequest is bound from query params on the manual
// cancellation route, for parents who lost their email link.
type ManualCancellationRequest struct {
	Email      string `form:"email"`
	PlayerName string `form:"playerName"`
}

func (req *ManualCancellationRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.PlayerName, validation.Required, validation.Length(2, 100)),
	)
}
