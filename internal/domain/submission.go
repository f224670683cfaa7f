package domain

import "time"

// SubmissionStatus represents the processing state of a contact submission
type SubmissionStatus string

const (
	SubmissionNew      SubmissionStatus = "new"
	SubmissionRead     SubmissionStatus = "read"
	SubmissionArchived SubmissionStatus = "archived"
)

// IsValid reports whether s belongs to the closed status set
func (s SubmissionStatus) IsValid() bool {
	switch s {
	case SubmissionNew, SubmissionRead, SubmissionArchived:
		return true
	}
	return false
}

// ContactSubmission is a message left through the contact form
type ContactSubmission struct {
	ID        int64
	Name      string
	Email     string
	Phone     *string
	Subject   *string
	Message   string
	Status    SubmissionStatus
	CreatedAt time.Time
}
