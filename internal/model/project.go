package model

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Project is a portfolio item. Category is free-form at this layer.
type Project struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Image       string `json:"image"`
	Link        string `json:"link,omitempty"`
	Description string `json:"description,omitempty"`
}

func (p Project) Identity() string { return p.ID }

func (p Project) WithIdentity(id string) Project {
	p.ID = id
	return p
}

// CreateProjectRequest is the body accepted by POST /projects
type CreateProjectRequest struct {
	Title       string `json:"title"`
	Category    string `json:"category"`
	Image       string `json:"image"`
	Link        string `json:"link"`
	Description string `json:"description"`
}

func (r *CreateProjectRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Category = strings.TrimSpace(r.Category)
	r.Image = strings.TrimSpace(r.Image)
	r.Link = strings.TrimSpace(r.Link)
	r.Description = strings.TrimSpace(r.Description)
}

func (r CreateProjectRequest) Validate() error {
	return newValidationError(validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.RuneLength(1, 200),
		),
		validation.Field(&r.Category,
			validation.Required.Error("category is required"),
			validation.RuneLength(1, 100),
		),
		validation.Field(&r.Image,
			validation.Required.Error("image is required"),
			is.URL.Error("image must be a valid URL"),
		),
		validation.Field(&r.Link, is.URL.Error("link must be a valid URL")),
		validation.Field(&r.Description, validation.RuneLength(0, 2000)),
	))
}

func (r CreateProjectRequest) ToProject() *Project {
	return &Project{
		Title:       r.Title,
		Category:    r.Category,
		Image:       r.Image,
		Link:        r.Link,
		Description: r.Description,
	}
}
