package domain

import "time"

// ProjectStatus - lifecycle state of a project
type ProjectStatus string

const (
	ProjectActive   ProjectStatus = "active"
	ProjectSomeday  ProjectStatus = "someday"
	ProjectArchived ProjectStatus = "archived"
)

// Project - a multi-step outcome tasks can point at.
// Projects do not own tasks; Task.ProjectID is a back-reference.
type Project struct {
	ID        string        `db:"id" json:"id"`
	UserID    int64         `db:"user_id" json:"user_id"`
	Title     string        `db:"title" json:"title"`
	Status    ProjectStatus `db:"status" json:"status"`
	CreatedAt time.Time     `db:"created_at" json:"created_at"`
}
