package models

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Todo is a task record. Every todo belongs to exactly one user and is only
// ever visible to that user.
type Todo struct {
	ID          int    `json:"id" bson:"id"`
	Title       string `json:"title" bson:"title"`
	Description string `json:"description" bson:"description"`
	Completed   bool   `json:"completed" bson:"completed"`
	OwnerID     int    `json:"owner_id" bson:"owner_id"`
}

// TodoCreate is the request body for creating a todo. The owner comes from
// the authenticated principal, never from the body.
type TodoCreate struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// Validate rejects blank titles and descriptions. Values are checked after
// trimming but stored as given.
func (c *TodoCreate) Validate() error {
	if strings.TrimSpace(c.Title) == "" {
		return errFieldRequired("title")
	}
	if strings.TrimSpace(c.Description) == "" {
		return errFieldRequired("description")
	}
	return nil
}

// TodoUpdate is a partial update. Decoding keeps three states apart for each
// field: absent (leave it alone), explicit null, and a concrete value. The
// Set flags record presence; a nil pointer with the flag set means the client
// sent null.
type TodoUpdate struct {
	Title          *string
	Description    *string
	Completed      *bool
	TitleSet       bool
	DescriptionSet bool
	CompletedSet   bool
}

var nullLiteral = []byte("null")

// UnmarshalJSON decodes the patch body, recording which keys were present.
// Unknown keys are ignored.
func (u *TodoUpdate) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	if raw, ok := fields["title"]; ok {
		u.TitleSet = true
		if !bytes.Equal(raw, nullLiteral) {
			var v string
			if err := json.Unmarshal(raw, &v); err != nil {
				return err
			}
			u.Title = &v
		}
	}
	if raw, ok := fields["description"]; ok {
		u.DescriptionSet = true
		if !bytes.Equal(raw, nullLiteral) {
			var v string
			if err := json.Unmarshal(raw, &v); err != nil {
				return err
			}
			u.Description = &v
		}
	}
	if raw, ok := fields["completed"]; ok {
		u.CompletedSet = true
		if !bytes.Equal(raw, nullLiteral) {
			var v bool
			if err := json.Unmarshal(raw, &v); err != nil {
				return err
			}
			u.Completed = &v
		}
	}
	return nil
}

// Validate enforces the patch rules: an explicit null on a required field is
// "cannot be null", a present-but-blank string is "is required". An absent
// field passes untouched.
func (u *TodoUpdate) Validate() error {
	if u.TitleSet {
		if u.Title == nil {
			return errFieldNull("title")
		}
		if strings.TrimSpace(*u.Title) == "" {
			return errFieldRequired("title")
		}
	}
	if u.DescriptionSet {
		if u.Description == nil {
			return errFieldNull("description")
		}
		if strings.TrimSpace(*u.Description) == "" {
			return errFieldRequired("description")
		}
	}
	if u.CompletedSet && u.Completed == nil {
		return errFieldNull("completed")
	}
	return nil
}

// Apply copies the set fields onto an existing record.
func (u *TodoUpdate) Apply(todo *Todo) {
	if u.TitleSet && u.Title != nil {
		todo.Title = *u.Title
	}
	if u.DescriptionSet && u.Description != nil {
		todo.Description = *u.Description
	}
	if u.CompletedSet && u.Completed != nil {
		todo.Completed = *u.Completed
	}
}
