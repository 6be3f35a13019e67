package registrations

import "github.com/google/uuid"

// VendorApplicationInput is the vendor onboarding form. Document fields carry
// object names already uploaded by the storage collaborator.
type VendorApplicationInput struct {
	BusinessName        string   `json:"business_name" validate:"required,min=2,max=200"`
	FullName            string   `json:"full_name" validate:"required,min=2,max=200"`
	Email               string   `json:"email" validate:"required,email"`
	Phone               string   `json:"phone" validate:"required,min=6,max=30"`
	Whatsapp            string   `json:"whatsapp" validate:"required,min=6,max=30"`
	SocialHandle        *string  `json:"social_handle" validate:"omitempty,max=120"`
	Location            string   `json:"location" validate:"required,min=2,max=200"`
	BusinessAddress     string   `json:"business_address" validate:"required,min=5"`
	BusinessDescription string   `json:"business_description" validate:"required,min=10"`
	StoreDescription    string   `json:"store_description" validate:"required,min=10"`
	OperatingHours      string   `json:"operating_hours" validate:"required"`
	DeliveryRules       string   `json:"delivery_rules" validate:"required"`
	DeliveryFee         string   `json:"delivery_fee" validate:"required"`
	ShoppingMethods     []string `json:"shopping_methods" validate:"required,min=1,dive,required"`
	PayoutMethod        string   `json:"payout_method" validate:"required"`
	CIPCRegistered      string   `json:"cipc_registered" validate:"omitempty,oneof=registered unregistered"`
	CompanyRegNumber    *string  `json:"company_reg_number" validate:"omitempty,max=50"`
	TaxNumber           *string  `json:"tax_number" validate:"omitempty,max=50"`
	IDNumber            string   `json:"id_number" validate:"required,min=6,max=30"`
	LogoFileName        *string  `json:"logo_file_name"`
	StoreBannerFileName *string  `json:"store_banner_file_name"`
	IDDocumentFileName  *string  `json:"id_document_file_name"`
}

// CipcRegistrationInput is the company-registration intake form. Directors is
// free text split on newlines or semicolons.
type CipcRegistrationInput struct {
	ApplicantName      string  `json:"applicant_name" validate:"required,min=2,max=200"`
	ApplicantEmail     string  `json:"applicant_email" validate:"required,email"`
	ApplicantPhone     string  `json:"applicant_phone" validate:"required,min=6,max=30"`
	BusinessStructure  string  `json:"business_structure" validate:"required,oneof=pty ngo sole partnership"`
	NameOptionOne      string  `json:"name_option_one" validate:"required,min=2,max=200"`
	NameOptionTwo      *string `json:"name_option_two" validate:"omitempty,max=200"`
	Directors          string  `json:"directors" validate:"required,min=5"`
	Address            string  `json:"address" validate:"required,min=5"`
	AdditionalNotes    *string `json:"additional_notes"`
	IDDocumentPath     *string `json:"id_document_path"`
	ProofOfAddressPath *string `json:"proof_of_address_path"`
}

// Receipt acknowledges a stored intake submission.
type Receipt struct {
	ID uuid.UUID `json:"id"`
}
