package registrations

import (
	"context"
	"fmt"
	"strings"

	"github.com/lwandile-dev/mzansimarket-backend/pkg/db/models"
	"github.com/lwandile-dev/mzansimarket-backend/pkg/enums"
	pkgerrors "github.com/lwandile-dev/mzansimarket-backend/pkg/errors"
	"github.com/lwandile-dev/mzansimarket-backend/pkg/logger"
)

// StatusReceived is the initial state of every CIPC registration request.
const StatusReceived = "received"

// Service stores intake submissions from prospective vendors.
type Service interface {
	SubmitVendorApplication(ctx context.Context, input VendorApplicationInput) (*Receipt, error)
	SubmitCipcRegistration(ctx context.Context, input CipcRegistrationInput) (*Receipt, error)
}

type service struct {
	repo Repository
	logg *logger.Logger
}

// NewService builds a registrations service with the required dependencies.
func NewService(repo Repository, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("registrations repository required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{repo: repo, logg: logg}, nil
}

func (s *service) SubmitVendorApplication(ctx context.Context, input VendorApplicationInput) (*Receipt, error) {
	application := &models.VendorApplication{
		BusinessName:        strings.TrimSpace(input.BusinessName),
		FullName:            strings.TrimSpace(input.FullName),
		Email:               strings.TrimSpace(input.Email),
		Phone:               strings.TrimSpace(input.Phone),
		Whatsapp:            strings.TrimSpace(input.Whatsapp),
		SocialHandle:        input.SocialHandle,
		Location:            strings.TrimSpace(input.Location),
		BusinessAddress:     strings.TrimSpace(input.BusinessAddress),
		BusinessDescription: strings.TrimSpace(input.BusinessDescription),
		StoreDescription:    strings.TrimSpace(input.StoreDescription),
		OperatingHours:      input.OperatingHours,
		DeliveryRules:       input.DeliveryRules,
		DeliveryFee:         input.DeliveryFee,
		ShoppingMethods:     input.ShoppingMethods,
		PayoutMethod:        input.PayoutMethod,
		CIPCRegistered:      input.CIPCRegistered == "registered",
		CompanyRegNumber:    input.CompanyRegNumber,
		TaxNumber:           input.TaxNumber,
		IDNumber:            strings.TrimSpace(input.IDNumber),
		LogoFileName:        input.LogoFileName,
		StoreBannerFileName: input.StoreBannerFileName,
		IDDocumentFileName:  input.IDDocumentFileName,
	}

	stored, err := s.repo.CreateVendorApplication(ctx, application)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "Failed to save vendor application")
	}

	s.logg.Info(s.logg.WithFields(ctx, map[string]any{
		"application_id": stored.ID,
		"business_name":  stored.BusinessName,
	}), "vendor application received")

	return &Receipt{ID: stored.ID}, nil
}

func (s *service) SubmitCipcRegistration(ctx context.Context, input CipcRegistrationInput) (*Receipt, error) {
	structure, err := enums.ParseBusinessStructure(input.BusinessStructure)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid business structure")
	}

	directors := SplitDirectors(input.Directors)
	if len(directors) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "at least one director is required")
	}

	registration := &models.CipcRegistration{
		ApplicantName:      strings.TrimSpace(input.ApplicantName),
		ApplicantEmail:     strings.TrimSpace(input.ApplicantEmail),
		ApplicantPhone:     strings.TrimSpace(input.ApplicantPhone),
		BusinessStructure:  structure,
		NameOptionOne:      strings.TrimSpace(input.NameOptionOne),
		NameOptionTwo:      input.NameOptionTwo,
		Directors:          directors,
		Address:            strings.TrimSpace(input.Address),
		AdditionalNotes:    input.AdditionalNotes,
		IDDocumentPath:     input.IDDocumentPath,
		ProofOfAddressPath: input.ProofOfAddressPath,
		Status:             StatusReceived,
	}

	stored, err := s.repo.CreateCipcRegistration(ctx, registration)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "Failed to save registration request")
	}

	s.logg.Info(s.logg.WithFields(ctx, map[string]any{
		"registration_id":    stored.ID,
		"business_structure": stored.BusinessStructure,
		"directors":          len(directors),
	}), "CIPC registration request received")

	return &Receipt{ID: stored.ID}, nil
}

// SplitDirectors parses the free-text directors field. Entries separate on
// newlines or semicolons; blanks are dropped.
func SplitDirectors(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == '\n' || r == ';'
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		out = append(out, f)
	}
	return out
}
