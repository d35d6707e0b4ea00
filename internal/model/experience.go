package model

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	ExperienceTypeEducation = "education"
	ExperienceTypeWork      = "work"
)

// ExperienceEntry is an education or work history item. Date is a display
// string and is never parsed.
type ExperienceEntry struct {
	ID          string `json:"id,omitempty"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Role        string `json:"role"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

func (e ExperienceEntry) Identity() string { return e.ID }

func (e ExperienceEntry) WithIdentity(id string) ExperienceEntry {
	e.ID = id
	return e
}

// CreateExperienceRequest is the body accepted by POST /experience
type CreateExperienceRequest struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Role        string `json:"role"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

func (r *CreateExperienceRequest) Normalize() {
	r.Type = strings.ToLower(strings.TrimSpace(r.Type))
	r.Title = strings.TrimSpace(r.Title)
	r.Role = strings.TrimSpace(r.Role)
	r.Date = strings.TrimSpace(r.Date)
	r.Description = strings.TrimSpace(r.Description)
}

func (r CreateExperienceRequest) Validate() error {
	return newValidationError(validation.ValidateStruct(&r,
		validation.Field(&r.Type,
			validation.Required.Error("type is required"),
			validation.In(ExperienceTypeEducation, ExperienceTypeWork).Error("type must be education or work"),
		),
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.RuneLength(1, 200),
		),
		validation.Field(&r.Role, validation.RuneLength(0, 200)),
		validation.Field(&r.Date, validation.RuneLength(0, 100)),
		validation.Field(&r.Description, validation.RuneLength(0, 5000)),
	))
}

func (r CreateExperienceRequest) ToEntry() *ExperienceEntry {
	return &ExperienceEntry{
		Type:        r.Type,
		Title:       r.Title,
		Role:        r.Role,
		Date:        r.Date,
		Description: r.Description,
	}
}
