// internals/features/journals/dto/journal_dto.go
package dto

import (
	"strings"
	"time"

	jModel "emailcontacts_backend/internals/features/journals/model"

	"github.com/google/uuid"
)

/* ===================== REQUESTS ===================== */

type CreateJournalRequest struct {
	JournalName      string                `json:"journal_name" validate:"required,min=2,max=200"`
	JournalISSN      *string               `json:"journal_issn" validate:"omitempty,max=20"`
	JournalSubject   *string               `json:"journal_subject" validate:"omitempty,max=150"`
	JournalFrequency *string               `json:"journal_frequency" validate:"omitempty,max=50"`
	JournalStatus    *jModel.JournalStatus `json:"journal_status,omitempty" validate:"omitempty,oneof=active inactive"`
	JournalBrandID   uuid.UUID             `json:"journal_brand_id" validate:"required"`
}

func (r *CreateJournalRequest) ToModel() *jModel.JournalModel {
	m := &jModel.JournalModel{
		JournalName:      strings.TrimSpace(r.JournalName),
		JournalISSN:      trimPtr(r.JournalISSN),
		JournalSubject:   trimPtr(r.JournalSubject),
		JournalFrequency: trimPtr(r.JournalFrequency),
		JournalBrandID:   r.JournalBrandID,
	}
	if r.JournalStatus != nil {
		m.JournalStatus = *r.JournalStatus
	} else {
		m.JournalStatus = jModel.JournalStatusActive
	}
	return m
}

type UpdateJournalRequest struct {
	JournalName      *string               `json:"journal_name" validate:"omitempty,min=2,max=200"`
	JournalISSN      *string               `json:"journal_issn" validate:"omitempty,max=20"`
	JournalSubject   *string               `json:"journal_subject" validate:"omitempty,max=150"`
	JournalFrequency *string               `json:"journal_frequency" validate:"omitempty,max=50"`
	JournalStatus    *jModel.JournalStatus `json:"journal_status,omitempty" validate:"omitempty,oneof=active inactive"`
	JournalBrandID   *uuid.UUID            `json:"journal_brand_id" validate:"omitempty"`
}

func (r *UpdateJournalRequest) ApplyToModel(m *jModel.JournalModel) {
	if r.JournalName != nil {
		m.JournalName = strings.TrimSpace(*r.JournalName)
	}
	if r.JournalISSN != nil {
		m.JournalISSN = trimPtr(r.JournalISSN)
	}
	if r.JournalSubject != nil {
		m.JournalSubject = trimPtr(r.JournalSubject)
	}
	if r.JournalFrequency != nil {
		m.JournalFrequency = trimPtr(r.JournalFrequency)
	}
	if r.JournalStatus != nil {
		m.JournalStatus = *r.JournalStatus
	}
	if r.JournalBrandID != nil {
		m.JournalBrandID = *r.JournalBrandID
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

type JournalResponse struct {
	JournalID uuid.UUID `json:"journal_id"`

	JournalName      string  `json:"journal_name"`
	JournalISSN      *string `json:"journal_issn,omitempty"`
	JournalSubject   *string `json:"journal_subject,omitempty"`
	JournalFrequency *string `json:"journal_frequency,omitempty"`

	JournalStatus  jModel.JournalStatus `json:"journal_status"`
	JournalBrandID uuid.UUID            `json:"journal_brand_id"`
	BrandName      string               `json:"brand_name,omitempty"`

	JournalCreatedAt time.Time `json:"journal_created_at"`
}

func NewJournalResponse(m *jModel.JournalModel) *JournalResponse {
	if m == nil {
		return nil
	}
	resp := &JournalResponse{
		JournalID: m.JournalID,

		JournalName:      m.JournalName,
		JournalISSN:      m.JournalISSN,
		JournalSubject:   m.JournalSubject,
		JournalFrequency: m.JournalFrequency,

		JournalStatus:  m.JournalStatus,
		JournalBrandID: m.JournalBrandID,

		JournalCreatedAt: m.JournalCreatedAt,
	}
	if m.Brand != nil {
		resp.BrandName = m.Brand.BrandName
	}
	return resp
}

func NewJournalResponses(ms []jModel.JournalModel) []JournalResponse {
	out := make([]JournalResponse, 0, len(ms))
	for i := range ms {
		out = append(out, *NewJournalResponse(&ms[i]))
	}
	return out
}
