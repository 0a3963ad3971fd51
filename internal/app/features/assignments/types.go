// internal/app/features/assignments/types.go
package assignments

import "github.com/dalemusser/classboard/internal/domain/models"

// listResponse is the JSON body for GET /api/assignments.
type listResponse struct {
	Assignments []models.Homework `json:"assignments"`
	Total       int               `json:"total"`
}

// Generic messages shown when the school API fails without a usable
// message of its own.
const (
	fetchFailedMsg  = "Failed to fetch homework"
	rangeFailedMsg  = "Failed to fetch homework by range"
	createFailedMsg = "Failed to create homework"
	updateFailedMsg = "Failed to update homework"
	deleteFailedMsg = "Failed to delete homework"

	notAssignedMsg = "You are not assigned to this class"
)
