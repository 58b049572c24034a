package dto

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"alora/internal/domains/contact/model"
	"alora/shared/timezone"

	"github.com/google/uuid"
)

const (
	MessageSent              = "Thanks! Your message has been sent."
	MessageMissingFields     = "Please fill in all fields."
	MessageMailNotConfigured = "Email is not configured: set CONTACT_RECIPIENTS or MAIL_USERNAME/MAIL_DEFAULT_FROM in settings."
	MessageInvalidHeader     = "Invalid header found."
	MessageDeliveryFailed    = "Sorry, we couldn't send your message. Please try again later."
	MessageDeliveryDebug     = "Email failed: %T: %v"
)

type SubmitContactRequest struct {
	Name    string `json:"name"    validate:"notblank"`
	Email   string `json:"email"   validate:"notblank"`
	Subject string `json:"subject" validate:"notblank"`
	Message string `json:"message" validate:"notblank"`
}

// Normalize trims every field in place.
func (r *SubmitContactRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Subject = strings.TrimSpace(r.Subject)
	r.Message = strings.TrimSpace(r.Message)
}

func (r *SubmitContactRequest) ToModel() model.ContactSubmission {
	return model.ContactSubmission{
		ID:             uuid.NewString(),
		Name:           r.Name,
		Email:          r.Email,
		Subject:        r.Subject,
		Message:        r.Message,
		SubmissionDate: timezone.Now().Truncate(time.Microsecond),
	}
}

// MailBody renders the relayed message text.
func (r *SubmitContactRequest) MailBody() string {
	return fmt.Sprintf("From: %s <%s>\n\n%s", r.Name, r.Email, r.Message)
}

// DeliveryDebugMessage names the innermost error and its type, e.g.
// "Email failed: *net.OpError: dial tcp: i/o timeout".
func DeliveryDebugMessage(err error) string {
	cause := err
	for next := errors.Unwrap(cause); next != nil; next = errors.Unwrap(cause) {
		cause = next
	}

	return fmt.Sprintf(MessageDeliveryDebug, cause, cause)
}
