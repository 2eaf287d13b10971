package request

import (
	"errors"
	"time"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/courtside/trainings-api/internal/domain"
	"github.com/courtside/trainings-api/internal/pkg/schedule"
)

// At least 8 characters with a letter and a digit. Lookaheads need
// regexp2; the stdlib engine rejects them.
const passwordRegexPattern = `^(?=.*[A-Za-z])(?=.*\d).{8,}$`

var (
	errWeakPassword = errors.New("the password must be at least 8 characters and contain a letter and a number")
	errInvalidDate  = errors.New("date must be YYYY-MM-DD")
)

type LoginRequest struct {
	Password string `json:"password"`
}

func (req *LoginRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Password, validation.Required),
	)
}

type SessionRequest struct {
	Sport           string  `json:"sport"`
	AgeGroup        string  `json:"age_group"`
	Date            string  `json:"date"` // YYYY-MM-DD
	TimeRange       string  `json:"time_range"`
	Location        string  `json:"location"`
	Address         string  `json:"address"`
	MaxParticipants int     `json:"max_participants"`
	Price           float64 `json:"price"`
	Focus           string  `json:"focus"`
	IsVisible       *bool   `json:"is_visible"`
}

func (req *SessionRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Sport, validation.Required, validation.In("volleyball", "basketball")),
		validation.Field(&req.AgeGroup, validation.Required, validation.Length(2, 50)),
		validation.Field(&req.Date, validation.Required, validation.By(validDate)),
		validation.Field(&req.TimeRange, validation.Required, validation.By(validTimeRange)),
		validation.Field(&req.Location, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Address, validation.Required, validation.Length(5, 200)),
		validation.Field(&req.MaxParticipants, validation.Required, validation.Min(1), validation.Max(100)),
		validation.Field(&req.Price, validation.Min(0.0)),
		validation.Field(&req.Focus, validation.Length(0, 200)),
	)
}

// ToDomain builds the session with the date anchored to UTC midnight.
func (req *SessionRequest) ToDomain() (domain.Session, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return domain.Session{}, errInvalidDate
	}

	visible := true
	if req.IsVisible != nil {
		visible = *req.IsVisible
	}

	return domain.Session{
		Sport:           req.Sport,
		AgeGroup:        req.AgeGroup,
		Date:            date,
		TimeRange:       req.TimeRange,
		Location:        req.Location,
		Address:         req.Address,
		MaxParticipants: req.MaxParticipants,
		Price:           req.Price,
		Focus:           req.Focus,
		IsVisible:       visible,
	}, nil
}

type VisibilityRequest struct {
	IsVisible *bool `json:"is_visible"`
}

func (req *VisibilityRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.IsVisible, validation.NotNil),
	)
}

type ProfileRequest struct {
	DisplayName  string `json:"display_name"`
	Bio          string `json:"bio"`
	ContactPhone string `json:"contact_phone"`
}

func (req *ProfileRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.DisplayName, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Bio, validation.Length(0, 1000)),
	)
	if err != nil {
		return err
	}

	if req.ContactPhone != "" {
		normalized, err := NormalizePhone(req.ContactPhone)
		if err != nil {
			return err
		}
		req.ContactPhone = normalized
	}

	return nil
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func (req *ChangePasswordRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.CurrentPassword, validation.Required),
		validation.Field(&req.NewPassword, validation.Required),
	)
	if err != nil {
		return err
	}

	passwordExp := regexp2.MustCompile(passwordRegexPattern, regexp2.None)
	ok, err := passwordExp.MatchString(req.NewPassword)
	if err != nil || !ok {
		return errWeakPassword
	}

	return nil
}

func validDate(value interface{}) error {
	s, _ := value.(string)
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return errInvalidDate
	}

	return nil
}

func validTimeRange(value interface{}) error {
	s, _ := value.(string)
	if _, err := schedule.ParseTimeRange(s); err != nil {
		return err
	}

	return nil
}
