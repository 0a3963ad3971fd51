// internal/domain/models/homework.go
package models

import "time"

// Homework is one assignment given to a whole class (grade + section).
// The school API names the entity "Homework" and keys it by "_id"; the ID is
// server-assigned and immutable once created.
//
// AssignDate and DueDate are calendar dates; DueDate must be strictly after
// AssignDate. Date is the creation date and feeds the "created today"
// dashboard counter.
type Homework struct {
	ID          string   `json:"_id"`
	Grade       int      `json:"grade"`
	Section     string   `json:"section"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	AssignDate  DateOnly `json:"assignDate"`
	DueDate     DateOnly `json:"dueDate"`
	Date        DateOnly `json:"date"`

	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// HomeworkDraft is the staging shape for creating or editing Homework: the
// same fields minus the server-owned ID and timestamps. Validation rules are
// applied by the homeworkdraft package before any submission.
type HomeworkDraft struct {
	Grade       int      `json:"grade" validate:"required,gt=0"`
	Section     string   `json:"section" validate:"required"`
	Title       string   `json:"title" validate:"notblank"`
	Description string   `json:"description" validate:"notblank"`
	AssignDate  DateOnly `json:"assignDate" validate:"required"`
	DueDate     DateOnly `json:"dueDate" validate:"required,gtfield=AssignDate"`
	Date        DateOnly `json:"date"`
}

// EmptyDraft returns the defaults for a fresh form: grade unset, assign and
// creation dates today, due date unset.
func EmptyDraft() HomeworkDraft {
	today := Today()
	return HomeworkDraft{
		AssignDate: today,
		Date:       today,
	}
}

// DraftOf pre-populates a draft from an existing assignment for editing.
func DraftOf(h Homework) HomeworkDraft {
	return HomeworkDraft{
		Grade:       h.Grade,
		Section:     h.Section,
		Title:       h.Title,
		Description: h.Description,
		AssignDate:  h.AssignDate,
		DueDate:     h.DueDate,
		Date:        h.Date,
	}
}
