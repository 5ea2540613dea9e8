package email

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"
)

// ApprovalData carries everything the approval notification needs
type ApprovalData struct {
	CustomerName   string
	CustomerEmail  string
	VenueName      string
	EventDate      string // ISO-8601 calendar date
	GuestCount     int
	Price          string
	VenueOwnerName string
	VenueContact   string // optional
}

// RejectionData carries everything the rejection notification needs
type RejectionData struct {
	CustomerName    string
	CustomerEmail   string
	VenueName       string
	EventDate       string // ISO-8601 calendar date
	RejectionReason string
	VenueOwnerName  string
}

// Rendered is a fully rendered notification ready for dispatch
type Rendered struct {
	To      string
	ToName  string
	Subject string
	HTML    string
	Text    string
}

// Renderer produces booking notifications from templates. Rendering is a
// pure function of its input: no I/O, identical data yields identical output.
type Renderer struct {
	baseURL   string
	base      *template.Template
	approval  *template.Template
	rejection *template.Template
}

// NewRenderer creates a renderer building links against publicBaseURL
func NewRenderer(publicBaseURL string) (*Renderer, error) {
	base, err := template.New("base").Parse(BaseTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse base template: %w", err)
	}
	approval, err := template.New("booking_approved").Parse(ApprovalTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse approval template: %w", err)
	}
	rejection, err := template.New("booking_rejected").Parse(RejectionTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse rejection template: %w", err)
	}

	return &Renderer{
		baseURL:   strings.TrimRight(publicBaseURL, "/"),
		base:      base,
		approval:  approval,
		rejection: rejection,
	}, nil
}

// RenderApproval renders the approval notification
func (r *Renderer) RenderApproval(d *ApprovalData) (*Rendered, error) {
	eventDate := FormatEventDate(d.EventDate)

	html, err := r.renderHTML(r.approval, map[string]interface{}{
		"CustomerName":   d.CustomerName,
		"VenueName":      d.VenueName,
		"EventDate":      eventDate,
		"GuestCount":     d.GuestCount,
		"Price":          d.Price,
		"VenueOwnerName": d.VenueOwnerName,
		"VenueContact":   d.VenueContact,
		"BookingsURL":    r.baseURL + "/venues",
	})
	if err != nil {
		return nil, err
	}

	var text strings.Builder
	fmt.Fprintf(&text, "Congratulations, %s!\n\n", d.CustomerName)
	fmt.Fprintf(&text, "Your wedding booking at %s has been approved.\n\n", d.VenueName)
	fmt.Fprintf(&text, "Venue: %s\n", d.VenueName)
	fmt.Fprintf(&text, "Event date: %s\n", eventDate)
	fmt.Fprintf(&text, "Guests: %d\n", d.GuestCount)
	fmt.Fprintf(&text, "Price: %s\n", d.Price)
	if d.VenueContact != "" {
		fmt.Fprintf(&text, "Venue contact: %s\n", d.VenueContact)
	}
	fmt.Fprintf(&text, "\n%s will reach out shortly to finalize the arrangements.\n", d.VenueOwnerName)
	fmt.Fprintf(&text, "View your booking: %s/venues\n", r.baseURL)

	return &Rendered{
		To:      d.CustomerEmail,
		ToName:  d.CustomerName,
		Subject: "🎉 Booking Confirmed - " + d.VenueName,
		HTML:    html,
		Text:    text.String(),
	}, nil
}

// RenderRejection renders the rejection notification
func (r *Renderer) RenderRejection(d *RejectionData) (*Rendered, error) {
	eventDate := FormatEventDate(d.EventDate)

	html, err := r.renderHTML(r.rejection, map[string]interface{}{
		"CustomerName":    d.CustomerName,
		"VenueName":       d.VenueName,
		"EventDate":       eventDate,
		"RejectionReason": d.RejectionReason,
		"VenueOwnerName":  d.VenueOwnerName,
		"VenuesURL":       r.baseURL + "/venues",
	})
	if err != nil {
		return nil, err
	}

	var text strings.Builder
	fmt.Fprintf(&text, "Dear %s,\n\n", d.CustomerName)
	fmt.Fprintf(&text, "Unfortunately, your booking request for %s on %s could not be accepted.\n\n", d.VenueName, eventDate)
	fmt.Fprintf(&text, "Reason: %s\n\n", d.RejectionReason)
	fmt.Fprintf(&text, "Browse other venues: %s/venues\n\n", r.baseURL)
	fmt.Fprintf(&text, "Warm regards,\n%s\n", d.VenueOwnerName)

	return &Rendered{
		To:      d.CustomerEmail,
		ToName:  d.CustomerName,
		Subject: "Booking Update - " + d.VenueName,
		HTML:    html,
		Text:    text.String(),
	}, nil
}

// renderHTML executes a content template and wraps it in the base layout
func (r *Renderer) renderHTML(tmpl *template.Template, data map[string]interface{}) (string, error) {
	var contentBuf bytes.Buffer
	if err := tmpl.Execute(&contentBuf, data); err != nil {
		return "", fmt.Errorf("render content: %w", err)
	}

	var htmlBuf bytes.Buffer
	if err := r.base.Execute(&htmlBuf, map[string]interface{}{
		"Content": template.HTML(contentBuf.String()),
	}); err != nil {
		return "", fmt.Errorf("render layout: %w", err)
	}

	return htmlBuf.String(), nil
}

// FormatEventDate renders an ISO-8601 date as a long human-readable date,
// e.g. "Monday, August 15, 2024". Unparsable input is returned as-is.
func FormatEventDate(isoDate string) string {
	t, err := time.Parse("2006-01-02", isoDate)
	if err != nil {
		return isoDate
	}
	return t.Format("Monday, January 2, 2006")
}
