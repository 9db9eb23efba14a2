// Package notification delivers customer emails rendered from markdown
// templates.
package notification

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"text/template"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	appnotification "github.com/phonefix-inc/phonefix/internal/application/notification"
	"github.com/phonefix-inc/phonefix/internal/infrastructure/email"
	"github.com/phonefix-inc/phonefix/internal/shared/biztime"
	"github.com/phonefix-inc/phonefix/internal/shared/logger"
	"github.com/phonefix-inc/phonefix/internal/shared/markdown"
	"github.com/phonefix-inc/phonefix/internal/shared/utils"
)

const (
	appointmentLayout = "Mon, Jan 2 2006 at 3:04 PM MST"
	placedOnLayout    = "January 2, 2006"
)

// EmailNotifier implements notification.Notifier over an email.Sender.
type EmailNotifier struct {
	sender    email.Sender
	renderer  markdown.Renderer
	storeName string
	printer   *message.Printer
	templates map[string]emailTemplate
	logger    logger.Interface
}

func NewEmailNotifier(sender email.Sender, renderer markdown.Renderer, storeName string, log logger.Interface) *EmailNotifier {
	if storeName == "" {
		storeName = "PhoneFix"
	}
	return &EmailNotifier{
		sender:    sender,
		renderer:  renderer,
		storeName: storeName,
		printer:   message.NewPrinter(language.AmericanEnglish),
		templates: defaultTemplates,
		logger:    log.With("component", "notification.email"),
	}
}

type templateData struct {
	StoreName       string
	CustomerName    string
	TicketNumber    string
	DeviceBrand     string
	DeviceModel     string
	Status          string
	Appointment     string
	OrderNumber     string
	PlacedOn        string
	ItemCount       int
	Amount          string
	TrackingNumber  string
	Carrier         string
	BusinessName    string
	ApprovedTier    string
	RejectionReason string
}

func (n *EmailNotifier) TicketSubmitted(ctx context.Context, msg appnotification.TicketMessage) error {
	return n.send(ctx, msg.To, kindTicketSubmitted, n.ticketData(msg))
}

func (n *EmailNotifier) TicketStatusChanged(ctx context.Context, msg appnotification.TicketMessage) error {
	return n.send(ctx, msg.To, kindTicketStatusChanged, n.ticketData(msg))
}

func (n *EmailNotifier) OrderConfirmed(ctx context.Context, msg appnotification.OrderMessage) error {
	return n.send(ctx, msg.To, kindOrderConfirmed, n.orderData(msg))
}

func (n *EmailNotifier) OrderShipped(ctx context.Context, msg appnotification.OrderMessage) error {
	return n.send(ctx, msg.To, kindOrderShipped, n.orderData(msg))
}

func (n *EmailNotifier) WholesaleReviewed(ctx context.Context, msg appnotification.WholesaleMessage) error {
	kind := kindWholesaleRejected
	if strings.EqualFold(msg.Decision, "APPROVED") {
		kind = kindWholesaleApproved
	}
	return n.send(ctx, msg.To, kind, templateData{
		StoreName:       n.storeName,
		BusinessName:    msg.BusinessName,
		ApprovedTier:    msg.ApprovedTier,
		RejectionReason: msg.RejectionReason,
	})
}

func (n *EmailNotifier) ticketData(msg appnotification.TicketMessage) templateData {
	d := templateData{
		StoreName:    n.storeName,
		CustomerName: msg.CustomerName,
		TicketNumber: msg.TicketNumber,
		DeviceBrand:  msg.DeviceBrand,
		DeviceModel:  msg.DeviceModel,
		Status:       humanize(msg.Status),
	}
	if msg.Estimated != nil {
		d.Amount = n.formatMoney(*msg.Estimated, msg.Currency)
	}
	if msg.Appointment != nil {
		d.Appointment = biztime.FormatInBizTimezone(*msg.Appointment, appointmentLayout)
	}
	return d
}

func (n *EmailNotifier) orderData(msg appnotification.OrderMessage) templateData {
	d := templateData{
		StoreName:      n.storeName,
		OrderNumber:    msg.OrderNumber,
		ItemCount:      msg.ItemCount,
		Amount:         n.formatMoney(msg.Total, msg.Currency),
		TrackingNumber: msg.TrackingNumber,
		Carrier:        msg.Carrier,
	}
	if !msg.PlacedAt.IsZero() {
		d.PlacedOn = biztime.FormatInBizTimezone(msg.PlacedAt, placedOnLayout)
	}
	return d
}

func (n *EmailNotifier) send(ctx context.Context, to, kind string, data templateData) error {
	if to == "" {
		return fmt.Errorf("no recipient for %s email", kind)
	}

	subject, body, err := n.render(kind, data)
	if err != nil {
		return err
	}
	html, err := n.renderer.ToHTMLSanitized(body)
	if err != nil {
		return fmt.Errorf("failed to render %s email: %w", kind, err)
	}

	if err := n.sender.Send(ctx, email.Message{To: to, Subject: subject, HTMLBody: html, PlainBody: body}); err != nil {
		return err
	}
	n.logger.Debugw("email sent", "kind", kind, "to", utils.MaskEmail(to), "subject", subject)
	return nil
}

func (n *EmailNotifier) render(kind string, data templateData) (string, string, error) {
	tmpl, ok := n.templates[kind]
	if !ok {
		return "", "", fmt.Errorf("unknown email template: %s", kind)
	}

	title, err := execute(kind+".title", tmpl.Title, data)
	if err != nil {
		return "", "", err
	}
	content, err := execute(kind+".content", tmpl.Content, data)
	if err != nil {
		return "", "", err
	}
	return title, strings.TrimSpace(content), nil
}

func execute(name, src string, data any) (string, error) {
	t, err := template.New(name).Parse(src)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s template: %w", name, err)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute %s template: %w", name, err)
	}
	return buf.String(), nil
}

// formatMoney renders an amount with the currency symbol, falling back to
// the ISO code for currencies x/text does not know.
func (n *EmailNotifier) formatMoney(amount decimal.Decimal, code string) string {
	unit, err := currency.ParseISO(strings.ToUpper(code))
	if err != nil {
		return fmt.Sprintf("%s %s", amount.StringFixed(2), strings.ToUpper(code))
	}
	f, _ := amount.Round(2).Float64()
	return n.printer.Sprint(currency.Symbol(unit)) + n.printer.Sprint(number.Decimal(f, number.Scale(2)))
}

// humanize turns IN_PROGRESS into "In Progress".
func humanize(status string) string {
	words := strings.Fields(strings.ReplaceAll(strings.ToLower(status), "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
