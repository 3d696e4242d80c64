package contact

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrTransport marks failures of the mail transport
var ErrTransport = errors.New("mail transport failed")

// Validation messages shown to the submitter
const (
	MsgMissingFields = "Missing required fields: name, email, and message are required"
	MsgInvalidEmail  = "Invalid email format"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Submission is a contact form post
type Submission struct {
	Name         string `json:"name"`
	Organization string `json:"organization,omitempty"`
	Email        string `json:"email"`
	Message      string `json:"message"`
}

// ValidationError is a submission the user has to correct
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// Validate checks the required fields and the email format
func (s Submission) Validate() error {
	var missing []string
	if strings.TrimSpace(s.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(s.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(s.Message) == "" {
		missing = append(missing, "message")
	}
	if len(missing) > 0 {
		return &ValidationError{Field: strings.Join(missing, ","), Message: MsgMissingFields}
	}
	if !emailPattern.MatchString(s.Email) {
		return &ValidationError{Field: "email", Message: MsgInvalidEmail}
	}
	return nil
}
