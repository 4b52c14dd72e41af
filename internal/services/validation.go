package services

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	MsgNameTooShort       = "Enter at least 5 characters for your name."
	MsgAliasTooShort      = "Enter at least 5 characters for your alias."
	MsgAliasCharacters    = "Your alias may only contain letters, numbers, hyphens and underscores."
	MsgInvalidEmail       = "Enter a valid email address."
	MsgAliasTaken         = "This alias is already in use, please choose another."
	MsgEmailTaken         = "This email address is already in use."
	MsgPasswordTooShort   = "Passwords must contain at least 8 characters."
	MsgPasswordTooLong    = "Passwords must not be longer than 72 bytes."
	MsgPasswordWeak       = "Password must have at least one lower case, one uppercase, one number, and one special character."
	MsgPasswordMismatch   = "The password and password confirmation entered do not match."
	MsgSuggestionLength   = "Please enter a suggestion between 1 and 1000 characters"
	MsgRegistered         = "Thank you, your registration is complete. Please go to login to login."
	MsgLoginFailed        = "Your email address and password are incorrect."
	MsgRegistrationFailed = "This alias or email address is already in use."
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9.+_-]+@[a-zA-Z0-9._-]+\.[a-zA-Z]+$`)

	// Aliases become /userprofile/{alias} path segments.
	aliasPattern = regexp.MustCompile(`^[\p{L}\p{N}_-]*$`)

	// weakPasswordPattern matches any password lacking a digit, an upper case
	// letter, a lower case letter or one of the accepted special characters.
	weakPasswordPattern = regexp.MustCompile(`^([^0-9]*|[^A-Z]*|[^a-z]*|[^!@#$%^&*()_+=]*)$`)
)

// maxPasswordBytes is the longest input bcrypt accepts.
const maxPasswordBytes = 72

// RegisterRequest is the decoded registration form.
type RegisterRequest struct {
	Name            string
	Alias           string
	Email           string
	Password        string
	ConfirmPassword string
}

// LoginRequest is the decoded login form.
type LoginRequest struct {
	Email    string
	Password string
}

// SuggestionRequest is the decoded new/edit suggestion form.
// SuggestionID is zero for new suggestions.
type SuggestionRequest struct {
	SuggestionID int
	Text         string
}

// rule is a single field check. A failed check contributes its message.
type rule struct {
	value   string
	other   *string
	tag     string
	message string
}

// formValidator runs rules through go-playground/validator and collects the
// messages of every failing rule, in order.
type formValidator struct {
	validate *validator.Validate
}

func newFormValidator() *formValidator {
	v := validator.New()
	tags := map[string]validator.Func{
		"board_email": func(fl validator.FieldLevel) bool {
			return emailPattern.MatchString(fl.Field().String())
		},
		"board_alias": func(fl validator.FieldLevel) bool {
			return aliasPattern.MatchString(fl.Field().String())
		},
		"strong_password": func(fl validator.FieldLevel) bool {
			return !weakPasswordPattern.MatchString(fl.Field().String())
		},
		"bcrypt_length": func(fl validator.FieldLevel) bool {
			return len(fl.Field().String()) <= maxPasswordBytes
		},
	}
	for tag, fn := range tags {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("register validation %q: %v", tag, err))
		}
	}
	return &formValidator{validate: v}
}

// normalizeEmail trims an email before any lookup or insert.
func normalizeEmail(email string) string {
	return strings.TrimSpace(email)
}

func (f *formValidator) check(rules ...rule) []string {
	var messages []string
	for _, r := range rules {
		var err error
		if r.other != nil {
			err = f.validate.VarWithValue(r.value, *r.other, r.tag)
		} else {
			err = f.validate.Var(r.value, r.tag)
		}
		if err != nil {
			messages = append(messages, r.message)
		}
	}
	return messages
}

func (f *formValidator) identityRules(req RegisterRequest) []rule {
	return []rule{
		{value: req.Name, tag: "min=5", message: MsgNameTooShort},
		{value: req.Alias, tag: "min=5", message: MsgAliasTooShort},
		{value: req.Alias, tag: "board_alias", message: MsgAliasCharacters},
		{value: req.Email, tag: "board_email", message: MsgInvalidEmail},
	}
}

func (f *formValidator) passwordRules(req RegisterRequest) []rule {
	return []rule{
		{value: req.Password, tag: "min=8", message: MsgPasswordTooShort},
		{value: req.Password, tag: "bcrypt_length", message: MsgPasswordTooLong},
		{value: req.Password, tag: "strong_password", message: MsgPasswordWeak},
		{value: req.ConfirmPassword, other: &req.Password, tag: "eqcsfield", message: MsgPasswordMismatch},
	}
}

// ValidateSuggestion checks the suggestion text length, counted in
// characters, against the inclusive [1,1000] range.
func ValidateSuggestion(req SuggestionRequest) []string {
	return defaultValidator.check(rule{value: req.Text, tag: "min=1,max=1000", message: MsgSuggestionLength})
}

var defaultValidator = newFormValidator()
