package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/lwandile-dev/mzansimarket-backend/pkg/enums"
)

// CipcRegistration is a company-registration intake request handled on behalf
// of applicants who are not yet CIPC registered.
type CipcRegistration struct {
	ID                 uuid.UUID               `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ApplicantName      string                  `gorm:"column:applicant_name;not null"`
	ApplicantEmail     string                  `gorm:"column:applicant_email;not null"`
	ApplicantPhone     string                  `gorm:"column:applicant_phone;not null"`
	BusinessStructure  enums.BusinessStructure `gorm:"column:business_structure;type:text;not null"`
	NameOptionOne      string                  `gorm:"column:name_option_one;not null"`
	NameOptionTwo      *string                 `gorm:"column:name_option_two"`
	Directors          pq.StringArray          `gorm:"column:directors;type:text[]"`
	Address            string                  `gorm:"column:address;not null"`
	AdditionalNotes    *string                 `gorm:"column:additional_notes"`
	IDDocumentPath     *string                 `gorm:"column:id_document_path"`
	ProofOfAddressPath *string                 `gorm:"column:proof_of_address_path"`
	Status             string                  `gorm:"column:status;not null;default:'received'"`
	CreatedAt          time.Time               `gorm:"column:created_at;autoCreateTime"`
}

func (CipcRegistration) TableName() string { return "cipc_registration_requests" }
