// internal/app/upstream/teacher.go
package upstream

import (
	"context"
	"net/http"

	"github.com/dalemusser/classboard/internal/domain/models"
)

// Profile is the teacher profile payload from the school API.
type Profile struct {
	Teacher TeacherInfo `json:"teacher"`
}

// TeacherInfo carries the profile fields the assignment screen reads. A nil
// Classes slice means the deployment does not expose an explicit class list;
// an empty non-nil slice is an explicit "no classes".
type TeacherInfo struct {
	Name    string                `json:"name"`
	Classes []models.TeacherClass `json:"classes"`
}

// FetchProfile fetches the signed-in teacher's profile.
func (c *Client) FetchProfile(ctx context.Context) (Profile, error) {
	var out Profile
	if err := c.do(ctx, http.MethodGet, "/api/teachers/profile", nil, &out, "Failed to fetch teacher profile"); err != nil {
		return Profile{}, err
	}
	return out, nil
}

// ListStudents fetches all students assigned to the teacher.
func (c *Client) ListStudents(ctx context.Context) ([]models.Student, error) {
	var out []models.Student
	if err := c.do(ctx, http.MethodGet, "/api/teachers/students", nil, &out, "Failed to fetch students"); err != nil {
		return nil, err
	}
	return out, nil
}
