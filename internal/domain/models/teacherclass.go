// internal/domain/models/teacherclass.go
package models

import "fmt"

// TeacherClass is one class a teacher is permitted to assign work to,
// identified by the (grade, section) pair. The collection a teacher holds has
// no inherent order; display code sorts grades ascending and sections
// lexicographically.
type TeacherClass struct {
	Grade   int    `json:"grade"`
	Section string `json:"section"`
}

// Label renders the display name used throughout the portal,
// e.g. "Grade 10 - Section A".
func (c TeacherClass) Label() string {
	return fmt.Sprintf("Grade %d - Section %s", c.Grade, c.Section)
}

// Student is a pupil record from the school API. Only the grade/section
// placement is read here; it backs the fallback derivation of a teacher's
// class scope when the profile omits an explicit classes list.
type Student struct {
	ID      string `json:"_id"`
	Name    string `json:"name"`
	Grade   int    `json:"grade"`
	Section string `json:"section"`
}
