// internal/app/upstream/homework.go
package upstream

import (
	"context"
	"net/http"

	"github.com/dalemusser/classboard/internal/domain/models"
)

const homeworkPath = "/api/teachers/Homework"

// ListHomework fetches the entire homework set visible to the teacher.
func (c *Client) ListHomework(ctx context.Context) ([]models.Homework, error) {
	var out []models.Homework
	if err := c.do(ctx, http.MethodGet, homeworkPath, nil, &out, "Failed to fetch homework"); err != nil {
		return nil, err
	}
	return out, nil
}

// ListHomeworkRange fetches the homework whose date falls within [from, to]
// inclusive. The school API decides which date field the range applies to;
// this is a delegated query, not a client-side filter, because the full
// candidate set may not be loaded.
func (c *Client) ListHomeworkRange(ctx context.Context, from, to models.DateOnly) ([]models.Homework, error) {
	body := struct {
		FromDate string `json:"fromDate"`
		ToDate   string `json:"toDate"`
	}{
		FromDate: from.String(),
		ToDate:   to.String(),
	}
	var out []models.Homework
	if err := c.do(ctx, http.MethodPost, homeworkPath+"/range", body, &out, "Failed to fetch homework by range"); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateHomework submits a new assignment and returns the created entity
// with its server-assigned ID.
func (c *Client) CreateHomework(ctx context.Context, draft models.HomeworkDraft) (models.Homework, error) {
	var out models.Homework
	if err := c.do(ctx, http.MethodPost, homeworkPath, draft, &out, "Failed to create homework"); err != nil {
		return models.Homework{}, err
	}
	return out, nil
}

// UpdateHomework submits an update keyed by id. The full draft is sent; the
// school API applies the fields it accepts.
func (c *Client) UpdateHomework(ctx context.Context, id string, draft models.HomeworkDraft) (models.Homework, error) {
	body := struct {
		HomeworkID string `json:"homeworkID"`
		models.HomeworkDraft
	}{
		HomeworkID:    id,
		HomeworkDraft: draft,
	}
	var out models.Homework
	if err := c.do(ctx, http.MethodPatch, homeworkPath, body, &out, "Failed to update homework"); err != nil {
		return models.Homework{}, err
	}
	return out, nil
}

// DeleteHomework deletes an assignment by id. Deletion is not idempotent: a
// second delete of the same id surfaces the school API's rejection.
func (c *Client) DeleteHomework(ctx context.Context, id string) error {
	body := struct {
		HomeworkID string `json:"homeworkID"`
	}{HomeworkID: id}
	return c.do(ctx, http.MethodDelete, homeworkPath, body, nil, "Failed to delete homework")
}
