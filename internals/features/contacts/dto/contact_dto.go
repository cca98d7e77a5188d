// internals/features/contacts/dto/contact_dto.go
package dto

import (
	"strings"
	"time"

	cModel "emailcontacts_backend/internals/features/contacts/model"

	"github.com/google/uuid"
)

/* ===================== REQUESTS ===================== */

type CreateContactRequest struct {
	ContactName         string     `json:"contact_name" validate:"required,min=1,max=150"`
	ContactEmail        string     `json:"contact_email" validate:"required,email,max=255"`
	ContactPhone        *string    `json:"contact_phone" validate:"omitempty,max=50"`
	ContactArticleTitle *string    `json:"contact_article_title" validate:"omitempty,max=255"`
	ContactYear         *int       `json:"contact_year" validate:"omitempty,min=1900,max=2100"`
	ContactJournalID    uuid.UUID  `json:"contact_journal_id" validate:"required"`
}

func (r *CreateContactRequest) ToModel() *cModel.ContactModel {
	return &cModel.ContactModel{
		ContactName:         strings.TrimSpace(r.ContactName),
		ContactEmail:        strings.ToLower(strings.TrimSpace(r.ContactEmail)),
		ContactPhone:        trimPtr(r.ContactPhone),
		ContactArticleTitle: trimPtr(r.ContactArticleTitle),
		ContactYear:         r.ContactYear,
		ContactJournalID:    r.ContactJournalID,
	}
}

type UpdateContactRequest struct {
	ContactName         *string `json:"contact_name" validate:"omitempty,min=1,max=150"`
	ContactEmail        *string `json:"contact_email" validate:"omitempty,email,max=255"`
	ContactPhone        *string `json:"contact_phone" validate:"omitempty,max=50"`
	ContactArticleTitle *string `json:"contact_article_title" validate:"omitempty,max=255"`
	ContactYear         *int    `json:"contact_year" validate:"omitempty,min=1900,max=2100"`
}

func (r *UpdateContactRequest) ApplyToModel(m *cModel.ContactModel) {
	if r.ContactName != nil {
		m.ContactName = strings.TrimSpace(*r.ContactName)
	}
	if r.ContactEmail != nil {
		m.ContactEmail = strings.ToLower(strings.TrimSpace(*r.ContactEmail))
	}
	if r.ContactPhone != nil {
		m.ContactPhone = trimPtr(r.ContactPhone)
	}
	if r.ContactArticleTitle != nil {
		m.ContactArticleTitle = trimPtr(r.ContactArticleTitle)
	}
	if r.ContactYear != nil {
		m.ContactYear = r.ContactYear
	}
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

/* ===================== RESPONSES ===================== */

type ContactResponse struct {
	ContactID uuid.UUID `json:"contact_id"`

	ContactName         string  `json:"contact_name"`
	ContactEmail        string  `json:"contact_email"`
	ContactPhone        *string `json:"contact_phone,omitempty"`
	ContactArticleTitle *string `json:"contact_article_title,omitempty"`
	ContactYear         *int    `json:"contact_year,omitempty"`

	ContactJournalID uuid.UUID `json:"contact_journal_id"`
	JournalName      string    `json:"journal_name,omitempty"`
	BrandName        string    `json:"brand_name,omitempty"`

	ContactCreatedAt time.Time `json:"contact_created_at"`
}

func NewContactResponse(m *cModel.ContactModel) *ContactResponse {
	if m == nil {
		return nil
	}
	resp := &ContactResponse{
		ContactID: m.ContactID,

		ContactName:         m.ContactName,
		ContactEmail:        m.ContactEmail,
		ContactPhone:        m.ContactPhone,
		ContactArticleTitle: m.ContactArticleTitle,
		ContactYear:         m.ContactYear,

		ContactJournalID: m.ContactJournalID,

		ContactCreatedAt: m.ContactCreatedAt,
	}
	if m.Journal != nil {
		resp.JournalName = m.Journal.JournalName
		if m.Journal.Brand != nil {
			resp.BrandName = m.Journal.Brand.BrandName
		}
	}
	return resp
}

func NewContactResponses(ms []cModel.ContactModel) []ContactResponse {
	out := make([]ContactResponse, 0, len(ms))
	for i := range ms {
		out = append(out, *NewContactResponse(&ms[i]))
	}
	return out
}
