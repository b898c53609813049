package client

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"volunteermatch-backend/models"
	"volunteermatch-backend/services"
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^0\d{1,2}-?\d{7}$`)
)

// ValidateVolunteerSignup mirrors the server-side signup checks so forms
// can reject bad input without a round trip. Returns a validation-kind
// APIError naming the first failing field.
func ValidateVolunteerSignup(req models.VolunteerSignupRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return validationError("name is required")
	}
	if !emailRe.MatchString(req.Email) {
		return validationError("invalid email address")
	}
	if len(req.Password) < 6 {
		return validationError("password must be at least 6 characters")
	}
	if req.Phone != "" && !phoneRe.MatchString(req.Phone) {
		return validationError("invalid phone number")
	}
	if req.AmountVolunteers <= 0 {
		return validationError("amount of volunteers must be positive")
	}
	return validateBirth(req.Birth)
}

func ValidateOrganizationSignup(req models.OrganizationSignupRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return validationError("name is required")
	}
	if !emailRe.MatchString(req.Email) {
		return validationError("invalid email address")
	}
	if len(req.Password) < 6 {
		return validationError("password must be at least 6 characters")
	}
	if req.Phone != "" && !phoneRe.MatchString(req.Phone) {
		return validationError("invalid phone number")
	}
	return nil
}

func validateBirth(birth models.Date) error {
	now := time.Now()
	if birth.Time.After(now) {
		return validationError("birth date cannot be in the future")
	}
	age := services.AgeAt(birth, now)
	if age < 10 || age > 80 {
		return validationError(fmt.Sprintf("age %d is outside the allowed range (10-80)", age))
	}
	return nil
}

// ValidateRequestDate accepts only dates from today through one week
// ahead, the window the request form offers.
func ValidateRequestDate(d models.Date, now time.Time) error {
	today := models.NewDate(now.Year(), now.Month(), now.Day())
	if d.Before(today) {
		return validationError("date cannot be in the past")
	}
	limit := models.NewDate(now.Year(), now.Month(), now.Day()+7)
	if limit.Before(d) {
		return validationError("date must be within the upcoming week")
	}
	return nil
}

// ValidateImage gates uploads on MIME type before bytes hit the wire.
func ValidateImage(contentType string) error {
	if !strings.HasPrefix(contentType, "image/") {
		return validationError("only image files may be uploaded")
	}
	return nil
}

func ValidateReview(req models.CreateReviewRequest) error {
	if req.Likes < 0 || req.Likes > 5 {
		return validationError("likes must be between 0 and 5")
	}
	return nil
}
