// internals/features/contacts/model/contact_model.go
package model

import (
	"time"

	jModel "emailcontacts_backend/internals/features/journals/model"

	"github.com/google/uuid"
)

type ContactModel struct {
	// PK
	ContactID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:contact_id" json:"contact_id"`

	// Identitas (email selalu lower-case)
	ContactName  string `gorm:"type:varchar(150);not null;column:contact_name" json:"contact_name"`
	ContactEmail string `gorm:"type:varchar(255);not null;uniqueIndex:ux_contacts_email_journal;column:contact_email" json:"contact_email"`

	// Opsional
	ContactPhone        *string `gorm:"type:varchar(50);column:contact_phone" json:"contact_phone,omitempty"`
	ContactArticleTitle *string `gorm:"type:varchar(255);column:contact_article_title" json:"contact_article_title,omitempty"`
	ContactYear         *int    `gorm:"column:contact_year" json:"contact_year,omitempty"`

	// Relasi journal (wajib). Email boleh sama di journal berbeda,
	// tapi tidak dua kali di journal yang sama (unique composite).
	ContactJournalID uuid.UUID            `gorm:"type:uuid;not null;uniqueIndex:ux_contacts_email_journal;index;column:contact_journal_id" json:"contact_journal_id"`
	Journal          *jModel.JournalModel `gorm:"foreignKey:ContactJournalID;references:JournalID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"journal,omitempty"`

	// Audit (hard delete)
	ContactCreatedAt time.Time `gorm:"column:contact_created_at;autoCreateTime" json:"contact_created_at"`
}

func (ContactModel) TableName() string { return "contacts" }
