package model

import "time"

const (
	TableName  = "contact_submissions"
	EntityName = "contact_submission"

	FieldID             = "id"
	FieldSubmissionDate = "submission_date"
)

type ContactSubmission struct {
	ID             string    `db:"id"`
	Name           string    `db:"name"`
	Email          string    `db:"email"`
	Subject        string    `db:"subject"`
	Message        string    `db:"message"`
	SubmissionDate time.Time `db:"submission_date"`
}
