package notification

// emailTemplate pairs a subject line with a markdown body. Both are
// text/template sources.
type emailTemplate struct {
	Title   string
	Content string
}

const (
	kindTicketSubmitted     = "ticket_submitted"
	kindTicketStatusChanged = "ticket_status_changed"
	kindOrderConfirmed      = "order_confirmed"
	kindOrderShipped        = "order_shipped"
	kindWholesaleApproved   = "wholesale_approved"
	kindWholesaleRejected   = "wholesale_rejected"
)

var defaultTemplates = map[string]emailTemplate{
	kindTicketSubmitted: {
		Title: "We received your repair request {{.TicketNumber}}",
		Content: `Hi {{.CustomerName}},

Thanks for choosing **{{.StoreName}}**. Your repair request for a **{{.DeviceBrand}} {{.DeviceModel}}** has been received.

Ticket number: **{{.TicketNumber}}**
{{if .Appointment}}
Appointment: **{{.Appointment}}**
{{end}}
Keep this number handy; you can track progress with it and your email address.`,
	},
	kindTicketStatusChanged: {
		Title: "Repair {{.TicketNumber}} is now {{.Status}}",
		Content: `Hi {{.CustomerName}},

The status of your **{{.DeviceBrand}} {{.DeviceModel}}** repair (ticket **{{.TicketNumber}}**) changed to **{{.Status}}**.
{{if .Amount}}
Estimated cost: **{{.Amount}}**
{{end}}`,
	},
	kindOrderConfirmed: {
		Title: "Order {{.OrderNumber}} confirmed",
		Content: `Thank you for your order!

Order **{{.OrderNumber}}** with {{.ItemCount}} item(s) totalling **{{.Amount}}** has been placed{{if .PlacedOn}} on {{.PlacedOn}}{{end}}.

We will email you again when it ships.`,
	},
	kindOrderShipped: {
		Title: "Order {{.OrderNumber}} has shipped",
		Content: `Good news! Order **{{.OrderNumber}}** is on its way.
{{if .TrackingNumber}}
Tracking number: **{{.TrackingNumber}}**{{if .Carrier}} ({{.Carrier}}){{end}}
{{end}}`,
	},
	kindWholesaleApproved: {
		Title: "Your wholesale application was approved",
		Content: `Hello {{.BusinessName}},

Your wholesale account at **{{.StoreName}}** is approved at tier **{{.ApprovedTier}}**. Tier pricing applies to your next order.`,
	},
	kindWholesaleRejected: {
		Title: "Update on your wholesale application",
		Content: `Hello {{.BusinessName}},

We could not approve your wholesale application at this time.

Reason: {{.RejectionReason}}

You are welcome to apply again.`,
	},
}
