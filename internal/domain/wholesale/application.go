package wholesale

import (
	"fmt"
	"strings"
	"time"

	sharedvo "github.com/phonefix-inc/phonefix/internal/domain/shared/valueobjects"
	vo "github.com/phonefix-inc/phonefix/internal/domain/wholesale/valueobjects"
	"github.com/phonefix-inc/phonefix/internal/shared/biztime"
	"github.com/phonefix-inc/phonefix/internal/shared/errors"
)

const maxDocuments = 10

type Application struct {
	id              uint
	userID          string
	businessName    string
	businessType    string
	taxID           string
	website         *string
	businessPhone   string
	businessEmail   string
	businessAddress sharedvo.PostalAddress
	documents       []string
	status          vo.ApplicationStatus
	requestedTier   vo.Tier
	approvedTier    *vo.Tier
	reviewedBy      *string
	reviewedAt      *time.Time
	rejectionReason *string
	adminNotes      string
	createdAt       time.Time
	updatedAt       time.Time
}

type BusinessInfo struct {
	BusinessName  string
	BusinessType  string
	TaxID         string
	Website       *string
	BusinessPhone string
	BusinessEmail string
}

func NewApplication(userID string, info BusinessInfo, address sharedvo.PostalAddress, documents []string, tier vo.Tier) (*Application, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, errors.NewUnauthorizedError("sign in to apply for a wholesale account")
	}
	if !tier.IsValid() {
		return nil, errors.NewFieldValidationError("requested_tier", "requested_tier must be one of TIER1, TIER2, TIER3")
	}

	info.BusinessName = strings.TrimSpace(info.BusinessName)
	info.BusinessType = strings.TrimSpace(info.BusinessType)
	info.TaxID = strings.TrimSpace(info.TaxID)
	info.BusinessPhone = strings.TrimSpace(info.BusinessPhone)
	info.BusinessEmail = strings.ToLower(strings.TrimSpace(info.BusinessEmail))

	var fields []errors.FieldError
	for _, r := range []struct{ name, value string }{
		{"business_name", info.BusinessName},
		{"business_type", info.BusinessType},
		{"tax_id", info.TaxID},
		{"business_phone", info.BusinessPhone},
		{"business_email", info.BusinessEmail},
	} {
		if r.value == "" {
			fields = append(fields, errors.FieldError{Field: r.name, Message: r.name + " is required"})
		}
	}
	if err := address.Validate("business_address"); err != nil {
		fields = append(fields, errors.GetAppError(err).Fields...)
	}
	docs := cleanDocuments(documents)
	if len(docs) > maxDocuments {
		fields = append(fields, errors.FieldError{
			Field:   "documents",
			Message: fmt.Sprintf("at most %d documents may be attached", maxDocuments),
		})
	}
	if len(fields) > 0 {
		return nil, errors.NewValidationError("invalid wholesale application").WithFields(fields...)
	}

	now := biztime.NowUTC()
	return &Application{
		userID:          userID,
		businessName:    info.BusinessName,
		businessType:    info.BusinessType,
		taxID:           info.TaxID,
		website:         info.Website,
		businessPhone:   info.BusinessPhone,
		businessEmail:   info.BusinessEmail,
		businessAddress: address,
		documents:       docs,
		status:          vo.StatusPending,
		requestedTier:   tier,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

func cleanDocuments(docs []string) []string {
	out := make([]string, 0, len(docs))
	for _, d := range docs {
		if d = strings.TrimSpace(d); d != "" {
			out = append(out, d)
		}
	}
	return out
}

type ReconstructParams struct {
	ID              uint
	UserID          string
	BusinessName    string
	BusinessType    string
	TaxID           string
	Website         *string
	BusinessPhone   string
	BusinessEmail   string
	BusinessAddress sharedvo.PostalAddress
	Documents       []string
	Status          vo.ApplicationStatus
	RequestedTier   vo.Tier
	ApprovedTier    *vo.Tier
	ReviewedBy      *string
	ReviewedAt      *time.Time
	RejectionReason *string
	AdminNotes      string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func ReconstructApplication(p ReconstructParams) (*Application, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("application ID cannot be zero")
	}
	if !p.Status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", p.Status)
	}
	if !p.RequestedTier.IsValid() {
		return nil, fmt.Errorf("invalid requested tier: %s", p.RequestedTier)
	}

	return &Application{
		id:              p.ID,
		userID:          p.UserID,
		businessName:    p.BusinessName,
		businessType:    p.BusinessType,
		taxID:           p.TaxID,
		website:         p.Website,
		businessPhone:   p.BusinessPhone,
		businessEmail:   p.BusinessEmail,
		businessAddress: p.BusinessAddress,
		documents:       p.Documents,
		status:          p.Status,
		requestedTier:   p.RequestedTier,
		approvedTier:    p.ApprovedTier,
		reviewedBy:      p.ReviewedBy,
		reviewedAt:      p.ReviewedAt,
		rejectionReason: p.RejectionReason,
		adminNotes:      p.AdminNotes,
		createdAt:       p.CreatedAt,
		updatedAt:       p.UpdatedAt,
	}, nil
}

func (a *Application) ID() uint {
	return a.id
}

func (a *Application) UserID() string {
	return a.userID
}

func (a *Application) BusinessName() string {
	return a.businessName
}

func (a *Application) BusinessType() string {
	return a.businessType
}

func (a *Application) TaxID() string {
	return a.taxID
}

func (a *Application) Website() *string {
	return a.website
}

func (a *Application) BusinessPhone() string {
	return a.businessPhone
}

func (a *Application) BusinessEmail() string {
	return a.businessEmail
}

func (a *Application) BusinessAddress() sharedvo.PostalAddress {
	return a.businessAddress
}

func (a *Application) Documents() []string {
	out := make([]string, len(a.documents))
	copy(out, a.documents)
	return out
}

func (a *Application) Status() vo.ApplicationStatus {
	return a.status
}

func (a *Application) RequestedTier() vo.Tier {
	return a.requestedTier
}

func (a *Application) ApprovedTier() *vo.Tier {
	return a.approvedTier
}

func (a *Application) ReviewedBy() *string {
	return a.reviewedBy
}

func (a *Application) ReviewedAt() *time.Time {
	return a.reviewedAt
}

func (a *Application) RejectionReason() *string {
	return a.rejectionReason
}

func (a *Application) AdminNotes() string {
	return a.adminNotes
}

func (a *Application) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Application) UpdatedAt() time.Time {
	return a.updatedAt
}

func (a *Application) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("application ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("application ID cannot be zero")
	}
	a.id = id
	return nil
}

// Review is the reviewer's input. ApprovedTier overrides the requested tier
// on approval and is ignored on rejection.
type Review struct {
	Decision        vo.ApplicationStatus
	ReviewerID      string
	ApprovedTier    *vo.Tier
	RejectionReason *string
	AdminNotes      *string
}

// ApplyReview moves a PENDING application to its terminal state. Nothing is
// mutated when an error is returned.
func (a *Application) ApplyReview(r Review) error {
	if a.status != vo.StatusPending {
		return errors.NewConflictError(
			fmt.Sprintf("application has already been %s", strings.ToLower(a.status.String())),
		)
	}

	var (
		tier   *vo.Tier
		reason *string
	)
	switch r.Decision {
	case vo.StatusApproved:
		t := a.requestedTier
		if r.ApprovedTier != nil {
			if !r.ApprovedTier.IsValid() {
				return errors.NewFieldValidationError("approved_tier", "approved_tier must be one of TIER1, TIER2, TIER3")
			}
			t = *r.ApprovedTier
		}
		tier = &t
	case vo.StatusRejected:
		if r.RejectionReason == nil || strings.TrimSpace(*r.RejectionReason) == "" {
			return errors.NewFieldValidationError("rejection_reason", "rejection_reason is required when rejecting")
		}
		s := strings.TrimSpace(*r.RejectionReason)
		reason = &s
	default:
		return errors.NewFieldValidationError("status", "status must be APPROVED or REJECTED")
	}

	now := biztime.NowUTC()
	reviewer := r.ReviewerID
	a.status = r.Decision
	a.approvedTier = tier
	a.rejectionReason = reason
	a.reviewedBy = &reviewer
	a.reviewedAt = &now
	if r.AdminNotes != nil {
		a.adminNotes = *r.AdminNotes
	}
	a.updatedAt = now
	return nil
}

// EffectiveTier is the tier pricing should use, nil unless approved.
func (a *Application) EffectiveTier() *vo.Tier {
	if a.status != vo.StatusApproved {
		return nil
	}
	return a.approvedTier
}
