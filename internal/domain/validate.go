package domain

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// Field validators return a human-readable message, or "" when the value is
// acceptable. The messages are surfaced verbatim by the HTTP layer.

func ValidateUsername(username string) string {
	if len(username) < 3 {
		return "Username must be at least 3 characters"
	}
	return ""
}

func ValidatePassword(password string) string {
	if len(password) < 3 {
		return "Password must be at least 3 characters"
	}
	return ""
}

func ValidateFullName(name string) string {
	if len(name) < 4 {
		return "Full name must be at least 4 characters"
	}
	return ""
}

func ValidateEmail(email string) string {
	if err := validate.Var(email, "required,email"); err != nil {
		return "Invalid email address"
	}
	return ""
}

func ValidatePhoneNumber(phoneNumber string) string {
	if err := validate.Var(phoneNumber, "required,e164"); err != nil {
		return "Invalid mobile phone"
	}
	return ""
}

func ValidatePostTitle(title string) string {
	if len(title) < 3 {
		return "Title must be at least 3 characters"
	}
	return ""
}

func ValidatePostBody(body string) string {
	if len(body) < 3 {
		return "Body must be at least 3 characters"
	}
	return ""
}
