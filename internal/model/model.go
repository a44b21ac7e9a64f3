package model

import (
	"encoding/json"
	"time"
)

type Role string

const (
	RoleInstructor Role = "INSTRUCTOR"
	RoleStudent    Role = "STUDENT"
)

type User struct {
	UUIDUser  string     `json:"uuid_user"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Password  string     `json:"password,omitempty"`
	Role      Role       `json:"role"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type Instructor struct {
	Name string `json:"name"`
}

type Course struct {
	UUIDCourse  string      `json:"uuid_course"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Instructor  *Instructor `json:"instructor"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   *time.Time  `json:"updated_at,omitempty"`
}

// The list endpoints disagree on the course identifier key: one returns
// id_course, the other uuid_course. Both decode into UUIDCourse, with
// uuid_course winning when both are present.
func (c *Course) UnmarshalJSON(data []byte) error {
	type alias Course
	aux := struct {
		*alias
		LegacyID string `json:"id_course"`
	}{alias: (*alias)(c)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if c.UUIDCourse == "" {
		c.UUIDCourse = aux.LegacyID
	}
	return nil
}

type Page[T any] struct {
	Data       []T `json:"data"`
	TotalPages int `json:"totalPages"`
	Page       int `json:"page"`
}
