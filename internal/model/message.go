package model

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Message is an inbound contact form submission. CreatedAt is assigned on
// insert and never changes.
type Message struct {
	ID        string    `json:"id,omitempty"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

func (m Message) Identity() string { return m.ID }

func (m Message) WithIdentity(id string) Message {
	m.ID = id
	return m
}

// CreateMessageRequest is the body accepted by POST /contact
type CreateMessageRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Subject  string `json:"subject"`
	Message  string `json:"message"`
}

// Normalize trims every field and lower-cases the email address.
func (r *CreateMessageRequest) Normalize() {
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Subject = strings.TrimSpace(r.Subject)
	r.Message = strings.TrimSpace(r.Message)
}

// Validate checks the normalized request and reports every violated field.
func (r CreateMessageRequest) Validate() error {
	return newValidationError(validation.ValidateStruct(&r,
		validation.Field(&r.Email,
			validation.Required.Error("Valid email required"),
			is.EmailFormat.Error("Valid email required"),
		),
		validation.Field(&r.FullName,
			validation.Required.Error("Name must be 2-100 characters"),
			validation.RuneLength(2, 100).Error("Name must be 2-100 characters"),
		),
		// empty subject skips the length rule
		validation.Field(&r.Subject,
			validation.RuneLength(3, 200).Error("Subject must be 3-200 characters"),
		),
		validation.Field(&r.Message,
			validation.Required.Error("Message must be 10-5000 characters"),
			validation.RuneLength(10, 5000).Error("Message must be 10-5000 characters"),
		),
	))
}

func (r CreateMessageRequest) ToMessage() *Message {
	return &Message{
		FullName: r.FullName,
		Email:    r.Email,
		Subject:  r.Subject,
		Message:  r.Message,
	}
}

// Request converts a message back into the contact form body.
func (m Message) Request() CreateMessageRequest {
	return CreateMessageRequest{
		FullName: m.FullName,
		Email:    m.Email,
		Subject:  m.Subject,
		Message:  m.Message,
	}
}
