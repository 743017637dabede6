package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusToDo       = "To Do"
	StatusInProgress = "In Progress"
	StatusDone       = "Done"
)

// TaskProject is the project summary attached to a task by the list join.
type TaskProject struct {
	ID   primitive.ObjectID `bson:"_id" json:"id"`
	Name string             `bson:"name" json:"name"`
}

type Task struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Title       string              `bson:"title" json:"title"`
	Description string              `bson:"description" json:"description"`
	Status      string              `bson:"status" json:"status"`
	DueDate     *time.Time          `bson:"dueDate" json:"dueDate"`
	ProjectID   *primitive.ObjectID `bson:"projectId,omitempty" json:"projectId,omitempty"`
	Project     *TaskProject        `bson:"project,omitempty" json:"project"`
	OwnerID     primitive.ObjectID  `bson:"ownerId" json:"ownerId"`
	CreatedAt   time.Time           `bson:"createdAt" json:"createdAt"`
}

type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate"`
	ProjectID   string `json:"projectId"`
}

// UpdateTaskRequest carries a partial update: absent fields stay untouched.
// DueDate and ProjectID distinguish "absent" from "explicitly cleared"
// via the double pointer-ish raw string: empty string clears the value.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	DueDate     *string `json:"dueDate"`
	ProjectID   *string `json:"projectId"`
}
