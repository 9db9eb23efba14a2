package repair

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	vo "github.com/phonefix-inc/phonefix/internal/domain/repair/valueobjects"
	"github.com/phonefix-inc/phonefix/internal/shared/actor"
	"github.com/phonefix-inc/phonefix/internal/shared/biztime"
	"github.com/phonefix-inc/phonefix/internal/shared/errors"
	"github.com/phonefix-inc/phonefix/internal/shared/money"
)

const (
	maxDescriptionLength = 5000
	maxNotesLength       = 5000
)

var brandCaser = cases.Title(language.Und, cases.NoLower)

type RepairTicket struct {
	id                 uint
	ticketNumber       string
	userID             *string
	customerName       string
	customerEmail      string
	customerPhone      *string
	deviceBrand        string
	deviceModel        string
	imeiSerial         *string
	issueDescription   string
	issueCategory      *string
	assignedStoreID    *uint
	assignedTechnician *string
	appointmentDate    *time.Time
	status             vo.TicketStatus
	priority           vo.Priority
	estimatedCost      *decimal.Decimal
	partsCost          *decimal.Decimal
	laborCost          *decimal.Decimal
	technicianNotes    string
	customerNotes      string
	version            int
	createdAt          time.Time
	updatedAt          time.Time
	confirmedAt        *time.Time
	startedAt          *time.Time
	completedAt        *time.Time
	cancelledAt        *time.Time
}

// Intake is the public submission. Contact fields are required for guests
// and signed-in customers alike.
type Intake struct {
	UserID           *string
	CustomerName     string
	CustomerEmail    string
	CustomerPhone    *string
	DeviceBrand      string
	DeviceModel      string
	IMEISerial       *string
	IssueDescription string
	IssueCategory    *string
	CustomerNotes    string
	AssignedStoreID  *uint
	AppointmentDate  *time.Time
}

// NewRepairTicket always starts at SUBMITTED with NORMAL priority; callers
// cannot choose the initial state.
func NewRepairTicket(ticketNumber string, in Intake) (*RepairTicket, error) {
	if ticketNumber == "" {
		return nil, fmt.Errorf("ticket number is required")
	}

	in.CustomerName = strings.TrimSpace(in.CustomerName)
	in.CustomerEmail = strings.ToLower(strings.TrimSpace(in.CustomerEmail))
	in.DeviceBrand = NormalizeBrand(in.DeviceBrand)
	in.DeviceModel = strings.TrimSpace(in.DeviceModel)
	in.IssueDescription = strings.TrimSpace(in.IssueDescription)

	var fields []errors.FieldError
	for _, r := range []struct{ name, value string }{
		{"customer_name", in.CustomerName},
		{"customer_email", in.CustomerEmail},
		{"device_brand", in.DeviceBrand},
		{"device_model", in.DeviceModel},
		{"issue_description", in.IssueDescription},
	} {
		if r.value == "" {
			fields = append(fields, errors.FieldError{Field: r.name, Message: r.name + " is required"})
		}
	}
	if len(in.IssueDescription) > maxDescriptionLength {
		fields = append(fields, errors.FieldError{
			Field:   "issue_description",
			Message: fmt.Sprintf("issue_description exceeds maximum length of %d characters", maxDescriptionLength),
		})
	}
	if len(fields) > 0 {
		return nil, errors.NewValidationError("invalid repair request").WithFields(fields...)
	}

	now := biztime.NowUTC()
	return &RepairTicket{
		ticketNumber:     ticketNumber,
		userID:           in.UserID,
		customerName:     in.CustomerName,
		customerEmail:    in.CustomerEmail,
		customerPhone:    in.CustomerPhone,
		deviceBrand:      in.DeviceBrand,
		deviceModel:      in.DeviceModel,
		imeiSerial:       in.IMEISerial,
		issueDescription: in.IssueDescription,
		issueCategory:    in.IssueCategory,
		assignedStoreID:  in.AssignedStoreID,
		appointmentDate:  in.AppointmentDate,
		status:           vo.StatusSubmitted,
		priority:         vo.PriorityNormal,
		customerNotes:    in.CustomerNotes,
		version:          1,
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

// NormalizeBrand title-cases each word and leaves existing capitals alone,
// so "apple" becomes "Apple" and "LG" stays "LG".
func NormalizeBrand(brand string) string {
	return brandCaser.String(strings.Join(strings.Fields(brand), " "))
}

// ReconstructParams mirrors every persisted column.
type ReconstructParams struct {
	ID                 uint
	TicketNumber       string
	UserID             *string
	CustomerName       string
	CustomerEmail      string
	CustomerPhone      *string
	DeviceBrand        string
	DeviceModel        string
	IMEISerial         *string
	IssueDescription   string
	IssueCategory      *string
	AssignedStoreID    *uint
	AssignedTechnician *string
	AppointmentDate    *time.Time
	Status             vo.TicketStatus
	Priority           vo.Priority
	EstimatedCost      *decimal.Decimal
	PartsCost          *decimal.Decimal
	LaborCost          *decimal.Decimal
	TechnicianNotes    string
	CustomerNotes      string
	Version            int
	CreatedAt          time.Time
	UpdatedAt          time.Time
	ConfirmedAt        *time.Time
	StartedAt          *time.Time
	CompletedAt        *time.Time
	CancelledAt        *time.Time
}

func ReconstructRepairTicket(p ReconstructParams) (*RepairTicket, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if p.TicketNumber == "" {
		return nil, fmt.Errorf("ticket number is required")
	}
	if !p.Status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", p.Status)
	}
	if !p.Priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", p.Priority)
	}

	return &RepairTicket{
		id:                 p.ID,
		ticketNumber:       p.TicketNumber,
		userID:             p.UserID,
		customerName:       p.CustomerName,
		customerEmail:      p.CustomerEmail,
		customerPhone:      p.CustomerPhone,
		deviceBrand:        p.DeviceBrand,
		deviceModel:        p.DeviceModel,
		imeiSerial:         p.IMEISerial,
		issueDescription:   p.IssueDescription,
		issueCategory:      p.IssueCategory,
		assignedStoreID:    p.AssignedStoreID,
		assignedTechnician: p.AssignedTechnician,
		appointmentDate:    p.AppointmentDate,
		status:             p.Status,
		priority:           p.Priority,
		estimatedCost:      p.EstimatedCost,
		partsCost:          p.PartsCost,
		laborCost:          p.LaborCost,
		technicianNotes:    p.TechnicianNotes,
		customerNotes:      p.CustomerNotes,
		version:            p.Version,
		createdAt:          p.CreatedAt,
		updatedAt:          p.UpdatedAt,
		confirmedAt:        p.ConfirmedAt,
		startedAt:          p.StartedAt,
		completedAt:        p.CompletedAt,
		cancelledAt:        p.CancelledAt,
	}, nil
}

func (t *RepairTicket) ID() uint {
	return t.id
}

func (t *RepairTicket) TicketNumber() string {
	return t.ticketNumber
}

func (t *RepairTicket) UserID() *string {
	return t.userID
}

func (t *RepairTicket) CustomerName() string {
	return t.customerName
}

func (t *RepairTicket) CustomerEmail() string {
	return t.customerEmail
}

func (t *RepairTicket) CustomerPhone() *string {
	return t.customerPhone
}

func (t *RepairTicket) DeviceBrand() string {
	return t.deviceBrand
}

func (t *RepairTicket) DeviceModel() string {
	return t.deviceModel
}

func (t *RepairTicket) IMEISerial() *string {
	return t.imeiSerial
}

func (t *RepairTicket) IssueDescription() string {
	return t.issueDescription
}

func (t *RepairTicket) IssueCategory() *string {
	return t.issueCategory
}

func (t *RepairTicket) AssignedStoreID() *uint {
	return t.assignedStoreID
}

func (t *RepairTicket) AssignedTechnician() *string {
	return t.assignedTechnician
}

func (t *RepairTicket) AppointmentDate() *time.Time {
	return t.appointmentDate
}

func (t *RepairTicket) Status() vo.TicketStatus {
	return t.status
}

func (t *RepairTicket) Priority() vo.Priority {
	return t.priority
}

func (t *RepairTicket) EstimatedCost() *decimal.Decimal {
	return t.estimatedCost
}

func (t *RepairTicket) PartsCost() *decimal.Decimal {
	return t.partsCost
}

func (t *RepairTicket) LaborCost() *decimal.Decimal {
	return t.laborCost
}

func (t *RepairTicket) TechnicianNotes() string {
	return t.technicianNotes
}

func (t *RepairTicket) CustomerNotes() string {
	return t.customerNotes
}

func (t *RepairTicket) Version() int {
	return t.version
}

func (t *RepairTicket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *RepairTicket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *RepairTicket) ConfirmedAt() *time.Time {
	return t.confirmedAt
}

func (t *RepairTicket) StartedAt() *time.Time {
	return t.startedAt
}

func (t *RepairTicket) CompletedAt() *time.Time {
	return t.completedAt
}

func (t *RepairTicket) CancelledAt() *time.Time {
	return t.cancelledAt
}

func (t *RepairTicket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// AdvanceVersion records a successful optimistic write.
func (t *RepairTicket) AdvanceVersion() {
	t.version++
}

// SetTicketNumber replaces the number before the first insert, used when a
// generated number collides.
func (t *RepairTicket) SetTicketNumber(number string) error {
	if t.id != 0 {
		return fmt.Errorf("ticket number cannot change after creation")
	}
	if number == "" {
		return fmt.Errorf("ticket number cannot be empty")
	}
	t.ticketNumber = number
	return nil
}

// BilledCost is parts plus labor. Nil when neither is recorded.
func (t *RepairTicket) BilledCost() *decimal.Decimal {
	if t.partsCost == nil && t.laborCost == nil {
		return nil
	}
	total := decimal.Zero
	if t.partsCost != nil {
		total = total.Add(*t.partsCost)
	}
	if t.laborCost != nil {
		total = total.Add(*t.laborCost)
	}
	return &total
}

// CanBeViewedBy allows staff and the signed-in customer who filed it.
func (t *RepairTicket) CanBeViewedBy(a actor.Actor) bool {
	return a.CanAccess(t.userID)
}

// Patch is a partial staff update; nil fields are left unchanged.
type Patch struct {
	Status             *vo.TicketStatus
	Priority           *vo.Priority
	TechnicianNotes    *string
	EstimatedCost      *decimal.Decimal
	PartsCost          *decimal.Decimal
	LaborCost          *decimal.Decimal
	AssignedTechnician *string
	AssignedStoreID    *uint
	AppointmentDate    *time.Time
}

// IsEmpty reports whether the patch carries no field.
func (p Patch) IsEmpty() bool {
	return p.Status == nil && p.Priority == nil && p.TechnicianNotes == nil &&
		p.EstimatedCost == nil && p.PartsCost == nil && p.LaborCost == nil &&
		p.AssignedTechnician == nil && p.AssignedStoreID == nil && p.AppointmentDate == nil
}

// Apply validates the whole patch before touching state, then applies it.
// Any status may follow any other. The first time a milestone status is
// reached its timestamp is stamped and never reset afterwards.
func (t *RepairTicket) Apply(p Patch) (statusChanged bool, err error) {
	if err := p.validate(); err != nil {
		return false, err
	}

	now := biztime.NowUTC()
	if p.Priority != nil {
		t.priority = *p.Priority
	}
	if p.TechnicianNotes != nil {
		t.technicianNotes = *p.TechnicianNotes
	}
	if p.EstimatedCost != nil {
		v := *p.EstimatedCost
		t.estimatedCost = &v
	}
	if p.PartsCost != nil {
		v := *p.PartsCost
		t.partsCost = &v
	}
	if p.LaborCost != nil {
		v := *p.LaborCost
		t.laborCost = &v
	}
	if p.AssignedTechnician != nil {
		tech := strings.TrimSpace(*p.AssignedTechnician)
		if tech == "" {
			t.assignedTechnician = nil
		} else {
			t.assignedTechnician = &tech
		}
	}
	if p.AssignedStoreID != nil {
		id := *p.AssignedStoreID
		t.assignedStoreID = &id
	}
	if p.AppointmentDate != nil {
		d := p.AppointmentDate.UTC()
		t.appointmentDate = &d
	}

	if p.Status != nil {
		statusChanged = *p.Status != t.status
		t.status = *p.Status
		t.stampMilestone(now)
	}

	t.updatedAt = now
	return statusChanged, nil
}

func (t *RepairTicket) stampMilestone(now time.Time) {
	var slot **time.Time
	switch t.status {
	case vo.StatusConfirmed:
		slot = &t.confirmedAt
	case vo.StatusInProgress:
		slot = &t.startedAt
	case vo.StatusCompleted:
		slot = &t.completedAt
	case vo.StatusCancelled:
		slot = &t.cancelledAt
	default:
		return
	}
	if *slot == nil {
		ts := now
		*slot = &ts
	}
}

func (p Patch) validate() error {
	var fields []errors.FieldError
	if p.Status != nil && !p.Status.IsValid() {
		fields = append(fields, errors.FieldError{Field: "status", Message: "invalid status"})
	}
	if p.Priority != nil && !p.Priority.IsValid() {
		fields = append(fields, errors.FieldError{Field: "priority", Message: "invalid priority"})
	}
	for _, c := range []struct {
		name  string
		value *decimal.Decimal
	}{
		{"estimated_cost", p.EstimatedCost},
		{"parts_cost", p.PartsCost},
		{"labor_cost", p.LaborCost},
	} {
		switch {
		case money.IsNegative(c.value):
			fields = append(fields, errors.FieldError{Field: c.name, Message: c.name + " cannot be negative"})
		case money.HasFractionalCents(c.value):
			fields = append(fields, errors.FieldError{Field: c.name, Message: c.name + " cannot have more than 2 decimal places"})
		}
	}
	if p.TechnicianNotes != nil && len(*p.TechnicianNotes) > maxNotesLength {
		fields = append(fields, errors.FieldError{
			Field:   "technician_notes",
			Message: fmt.Sprintf("technician_notes exceeds maximum length of %d characters", maxNotesLength),
		})
	}
	if len(fields) > 0 {
		return errors.NewValidationError("invalid ticket update").WithFields(fields...)
	}
	return nil
}
