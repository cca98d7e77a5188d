// internals/features/brands/dto/brand_dto.go
package dto

import (
	"strings"
	"time"

	bModel "emailcontacts_backend/internals/features/brands/model"

	"github.com/google/uuid"
)

/* ===================== REQUESTS ===================== */

type CreateBrandRequest struct {
	BrandName   string              `json:"brand_name" validate:"required,min=2,max=150"`
	BrandCode   string              `json:"brand_code" validate:"required,min=1,max=20"`
	BrandStatus *bModel.BrandStatus `json:"brand_status,omitempty" validate:"omitempty,oneof=active inactive"`
}

func (r *CreateBrandRequest) ToModel() *bModel.BrandModel {
	m := &bModel.BrandModel{
		BrandName: strings.TrimSpace(r.BrandName),
		BrandCode: strings.ToUpper(strings.TrimSpace(r.BrandCode)),
	}
	if r.BrandStatus != nil {
		m.BrandStatus = *r.BrandStatus
	} else {
		m.BrandStatus = bModel.BrandStatusActive
	}
	return m
}

type UpdateBrandRequest struct {
	BrandName   *string             `json:"brand_name" validate:"omitempty,min=2,max=150"`
	BrandCode   *string             `json:"brand_code" validate:"omitempty,min=1,max=20"`
	BrandStatus *bModel.BrandStatus `json:"brand_status,omitempty" validate:"omitempty,oneof=active inactive"`
}

func (r *UpdateBrandRequest) ApplyToModel(m *bModel.BrandModel) {
	if r.BrandName != nil {
		m.BrandName = strings.TrimSpace(*r.BrandName)
	}
	if r.BrandCode != nil {
		m.BrandCode = strings.ToUpper(strings.TrimSpace(*r.BrandCode))
	}
	if r.BrandStatus != nil {
		m.BrandStatus = *r.BrandStatus
	}

	now := time.Now()
	m.BrandUpdatedAt = &now
}

/* ===================== RESPONSES ===================== */

type BrandResponse struct {
	BrandID uuid.UUID `json:"brand_id"`

	BrandName   string             `json:"brand_name"`
	BrandCode   string             `json:"brand_code"`
	BrandStatus bModel.BrandStatus `json:"brand_status"`

	BrandCreatedAt time.Time  `json:"brand_created_at"`
	BrandUpdatedAt *time.Time `json:"brand_updated_at,omitempty"`
}

func NewBrandResponse(m *bModel.BrandModel) *BrandResponse {
	if m == nil {
		return nil
	}
	return &BrandResponse{
		BrandID: m.BrandID,

		BrandName:   m.BrandName,
		BrandCode:   m.BrandCode,
		BrandStatus: m.BrandStatus,

		BrandCreatedAt: m.BrandCreatedAt,
		BrandUpdatedAt: m.BrandUpdatedAt,
	}
}

func NewBrandResponses(ms []bModel.BrandModel) []BrandResponse {
	out := make([]BrandResponse, 0, len(ms))
	for i := range ms {
		out = append(out, *NewBrandResponse(&ms[i]))
	}
	return out
}
