// internal/domain/homeworkdraft/homeworkdraft.go

// Package homeworkdraft stages and validates assignment drafts for the
// create and edit flows, independent of any rendering.
//
// Validation produces a field-keyed map of messages; an empty map means the
// draft may be submitted. A draft that fails validation never reaches the
// network.
package homeworkdraft

import (
	"reflect"
	"sync"

	"github.com/dalemusser/classboard/internal/domain/models"
	"github.com/go-playground/validator/v10"
	nonstd "github.com/go-playground/validator/v10/non-standard/validators"
)

// Field-keyed validation messages, matching what the portal screen shows
// next to each input.
const (
	msgGrade       = "Grade is required"
	msgSection     = "Section is required"
	msgTitle       = "Title is required"
	msgDescription = "Description is required"
	msgAssignDate  = "Assign date is required"
	msgDueDate     = "Due date is required"
	msgDueOrder    = "Due date must be after assign date"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// newValidate builds the shared validator: notblank for trimmed-non-empty
// text fields, and a custom type func so DateOnly fields participate in
// required/gtfield checks as plain times. gtfield is strict, so equal
// assign and due dates are rejected.
func newValidate() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("notblank", nonstd.NotBlank)
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(models.DateOnly); ok {
			return d.Time
		}
		return nil
	}, models.DateOnly{})
	return v
}

// ValidationError reports client-side rule violations, keyed by the JSON
// field name. It is returned before any network call is attempted.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "homework draft failed validation"
}

// Validate checks d against the form rules and returns field-keyed
// messages. An empty map means the draft is valid.
func Validate(d models.HomeworkDraft) map[string]string {
	validateOnce.Do(func() { validate = newValidate() })

	errs := make(map[string]string)
	err := validate.Struct(d)
	if err == nil {
		return errs
	}

	for _, fe := range err.(validator.ValidationErrors) {
		switch fe.StructField() {
		case "Grade":
			errs["grade"] = msgGrade
		case "Section":
			errs["section"] = msgSection
		case "Title":
			errs["title"] = msgTitle
		case "Description":
			errs["description"] = msgDescription
		case "AssignDate":
			errs["assignDate"] = msgAssignDate
		case "DueDate":
			if fe.Tag() == "gtfield" {
				errs["dueDate"] = msgDueOrder
			} else {
				errs["dueDate"] = msgDueDate
			}
		}
	}
	return errs
}

// Controller stages a draft through the create/edit lifecycle: begin (empty
// defaults or pre-populated from an existing assignment), mutate, validate,
// then either finish (successful submission) or keep the entered values for
// another attempt.
type Controller struct {
	draft     models.HomeworkDraft
	editingID string
	editing   bool
}

// NewController returns a Controller holding an empty draft.
func NewController() *Controller {
	c := &Controller{}
	c.Begin()
	return c
}

// Begin resets the controller for a fresh create: grade unset, assign and
// creation dates today, due date unset.
func (c *Controller) Begin() {
	c.draft = models.EmptyDraft()
	c.editingID = ""
	c.editing = false
}

// BeginEdit pre-populates the draft from an existing assignment and records
// its identity so submission becomes an update.
func (c *Controller) BeginEdit(h models.Homework) {
	c.draft = models.DraftOf(h)
	c.editingID = h.ID
	c.editing = true
}

// Draft returns the staged draft.
func (c *Controller) Draft() models.HomeworkDraft {
	return c.draft
}

// SetDraft replaces the staged draft with the view's current field values.
func (c *Controller) SetDraft(d models.HomeworkDraft) {
	c.draft = d
}

// Validate checks the staged draft. Submission must not proceed while the
// returned map is non-empty.
func (c *Controller) Validate() map[string]string {
	return Validate(c.draft)
}

// Editing reports whether submission should be an update, and of which
// assignment.
func (c *Controller) Editing() (string, bool) {
	return c.editingID, c.editing
}

// Finish resets to empty defaults. Call it only after a successful
// submission: a failed one keeps every entered value so nothing needs
// retyping.
func (c *Controller) Finish() {
	c.Begin()
}
