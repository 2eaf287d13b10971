package request

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// Names allow letters, spaces, hyphens and apostrophes only.
var namePattern = regexp.MustCompile(`^[A-Za-z]+(?:[ '\-][A-Za-z]+)*$`)

var errInvalidPhone = errors.New("phone number must contain 10 digits")

type RegisterRequest struct {
	PlayerName      string `json:"player_name"`
	PlayerAge       int    `json:"player_age"`
	ExperienceLevel string `json:"experience_level"`

	ParentName  string `json:"parent_name"`
	ParentEmail string `json:"parent_email"`
	ParentPhone string `json:"parent_phone"`

	EmergencyContact string `json:"emergency_contact"`
	EmergencyPhone   string `json:"emergency_phone"`
	MedicalNotes     string `json:"medical_notes"`
}

func (req *RegisterRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.PlayerName, validation.Required, validation.Length(2, 100), validation.Match(namePattern)),
		validation.Field(&req.PlayerAge, validation.Required, validation.Min(5), validation.Max(18)),
		validation.Field(&req.ExperienceLevel, validation.In("beginner", "intermediate", "advanced")),
		validation.Field(&req.ParentName, validation.Required, validation.Length(2, 100), validation.Match(namePattern)),
		validation.Field(&req.ParentEmail, validation.Required, is.Email),
		validation.Field(&req.ParentPhone, validation.Required),
		validation.Field(&req.EmergencyContact, validation.Length(0, 100)),
		validation.Field(&req.MedicalNotes, validation.Length(0, 500)),
	)
	if err != nil {
		return err
	}

	normalized, err := NormalizePhone(req.ParentPhone)
	if err != nil {
		return err
	}
	req.ParentPhone = normalized

	if req.EmergencyPhone != "" {
		normalized, err = NormalizePhone(req.EmergencyPhone)
		if err != nil {
			return err
		}
		req.EmergencyPhone = normalized
	}

	return nil
}

// NormalizePhone reduces any common US phone spelling to XXX-XXX-XXXX.
// A leading country code 1 is dropped.
func NormalizePhone(s string) (string, error) {
	var digits strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	d := digits.String()
	if len(d) == 11 && d[0] == '1' {
		d = d[1:]
	}
	if len(d) != 10 {
		return "", errInvalidPhone
	}

	return fmt.Sprintf("%s-%s-%s", d[:3], d[3:6], d[6:]), nil
}
