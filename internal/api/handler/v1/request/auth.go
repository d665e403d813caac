package request

import (
	"errors"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"
)

const (
	emailRegexPattern = `^[^\s@]+@[^\s@]+\.[^\s@]+$`

	minPasswordLength = 6
	// bcrypt only hashes the first 72 bytes and rejects longer inputs.
	maxPasswordLength = 72
)

var (
	errInvalidEmail    = errors.New("the email address is invalid")
	errPasswordTooWeak = errors.New("the password must be at least 6 characters")
	errPasswordTooLong = errors.New("the password must be at most 72 characters")

	emailExp = regexp2.MustCompile(emailRegexPattern, regexp2.None)
)

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (req *RegisterRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Username, validation.Required),
		validation.Field(&req.Email, validation.Required),
		validation.Field(&req.Password, validation.Required),
	)
	if err != nil {
		return err
	}

	if ok, _ := emailExp.MatchString(req.Email); !ok {
		return errInvalidEmail
	}

	if len(req.Password) < minPasswordLength {
		return errPasswordTooWeak
	}

	if len(req.Password) > maxPasswordLength {
		return errPasswordTooLong
	}

	return nil
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (req *LoginRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Username, validation.Required),
		validation.Field(&req.Password, validation.Required),
	)
}
