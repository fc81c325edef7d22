package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/blog-platform-api/internal/models"
)

var (
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_.-]{3,30}$`)
)

// MaxTitleLength is the maximum allowed length of a post title
const MaxTitleLength = 256

// ValidatePost validates a post payload and returns the parsed
// publication time. An invalid payload produces field errors and a zero
// time; nothing is written on that path.
func ValidatePost(req *models.PostRequest) ([]models.FieldError, time.Time) {
	var errors []models.FieldError
	var pubDate time.Time

	// Validate title
	if strings.TrimSpace(req.Title) == "" {
		errors = append(errors, models.FieldError{Field: "title", Message: "title is required"})
	} else if len(req.Title) > MaxTitleLength {
		errors = append(errors, models.FieldError{
			Field:   "title",
			Message: fmt.Sprintf("title exceeds maximum of %d characters", MaxTitleLength),
		})
	}

	// Validate body
	if strings.TrimSpace(req.Body) == "" {
		errors = append(errors, models.FieldError{Field: "body", Message: "body is required"})
	}

	// Validate pub_date
	if req.PubDate == "" {
		errors = append(errors, models.FieldError{Field: "pub_date", Message: "pub_date is required"})
	} else {
		parsed, err := time.Parse(time.RFC3339, req.PubDate)
		if err != nil {
			errors = append(errors, models.FieldError{Field: "pub_date", Message: "invalid ISO 8601 date format", Value: req.PubDate})
		} else {
			pubDate = parsed
		}
	}

	return errors, pubDate
}

// ValidateComment validates a comment payload
func ValidateComment(req *models.CommentRequest) []models.FieldError {
	var errors []models.FieldError

	if strings.TrimSpace(req.Text) == "" {
		errors = append(errors, models.FieldError{Field: "text", Message: "text is required"})
	} else if len(req.Text) > models.MaxCommentLength {
		errors = append(errors, models.FieldError{
			Field:   "text",
			Message: fmt.Sprintf("text exceeds maximum of %d characters (has %d)", models.MaxCommentLength, len(req.Text)),
		})
	}

	return errors
}

// ValidateProfile validates a profile-edit payload
func ValidateProfile(req *models.ProfileRequest) []models.FieldError {
	var errors []models.FieldError

	errors = append(errors, validateUsername(req.Username)...)
	errors = append(errors, validateEmail(req.Email)...)

	return errors
}

// ValidateRegister validates a registration payload
func ValidateRegister(req *models.RegisterRequest) []models.FieldError {
	var errors []models.FieldError

	errors = append(errors, validateUsername(req.Username)...)
	errors = append(errors, validateEmail(req.Email)...)

	if len(req.Password) < 8 {
		errors = append(errors, models.FieldError{Field: "password", Message: "password must be at least 8 characters"})
	}

	return errors
}

func validateUsername(username string) []models.FieldError {
	if username == "" {
		return []models.FieldError{{Field: "username", Message: "username is required"}}
	}
	if !usernameRegex.MatchString(username) {
		return []models.FieldError{{
			Field:   "username",
			Message: "username must be 3-30 characters of letters, digits, underscore, dot or hyphen",
			Value:   username,
		}}
	}
	return nil
}

func validateEmail(email string) []models.FieldError {
	if email == "" {
		return []models.FieldError{{Field: "email", Message: "email is required"}}
	}
	if !emailRegex.MatchString(email) {
		return []models.FieldError{{Field: "email", Message: "invalid email format", Value: email}}
	}
	return nil
}
