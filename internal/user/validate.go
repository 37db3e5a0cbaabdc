package user

import (
	"net/mail"
	"strings"
	"unicode/utf8"
)

const (
	usernameMinLen = 6
	usernameMaxLen = 12
)

// ValidateRegisterInput checks a registration payload and accumulates every
// failure into a field->message map. An empty map means the input is valid.
func ValidateRegisterInput(username, password, confirmPassword, email string) map[string]string {
	errs := map[string]string{}
	if username == "" {
		errs["username"] = "username is required"
	} else if n := utf8.RuneCountInString(username); n < usernameMinLen || n > usernameMaxLen {
		// characters, not bytes, so multibyte usernames measure correctly
		errs["username"] = "username must be between 6 and 12 characters"
	}
	email = strings.TrimSpace(email)
	if email == "" {
		errs["email"] = "email is required"
	} else if !isEmail(email) {
		errs["email"] = "email address is not valid"
	}
	if password == "" {
		errs["password"] = "password is required"
	}
	if confirmPassword == "" {
		errs["confirmPassword"] = "confirm password is required"
	} else if password != confirmPassword {
		errs["confirmPassword"] = "password and confirm password do not match"
	}
	return errs
}

// isEmail expects its input already trimmed.
func isEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	// reject addresses with display names so "Bob <b@x.com>" does not pass
	if err != nil || addr.Address != s {
		return false
	}
	// require a dotted domain, so bare hosts like "a@b" do not pass
	at := strings.LastIndex(s, "@")
	return strings.Contains(s[at+1:], ".")
}
