package mailer

import (
	"fmt"
	"strings"

	"github.com/inkline/studio/internal/domain"
)

func bookingStudioMessage(studioEmail string, b BookingNotice) Message {
	var body strings.Builder
	fmt.Fprintf(&body, "New booking request #%d\n\n", b.ID)
	fmt.Fprintf(&body, "Customer: %s\n", b.CustomerName)
	fmt.Fprintf(&body, "Email: %s\n", b.CustomerEmail)
	fmt.Fprintf(&body, "Phone: %s\n", b.CustomerPhone)
	fmt.Fprintf(&body, "Service: %s\n", b.ServiceType)
	fmt.Fprintf(&body, "When: %s %s (%d min)\n", b.Date.Format(domain.DateFormat), b.StartTime, b.DurationMinutes)
	if b.Description != "" {
		fmt.Fprintf(&body, "\n%s\n", b.Description)
	}

	return Message{
		To:      studioEmail,
		Subject: fmt.Sprintf("New booking: %s on %s at %s", b.CustomerName, b.Date.Format(domain.DateFormat), b.StartTime),
		Body:    body.String(),
	}
}

func bookingCustomerMessage(b BookingNotice) Message {
	body := fmt.Sprintf(
		"Hi %s,\n\nWe received your booking request for %s at %s (%d min).\n"+
			"Your appointment is pending until the studio confirms it.\n\nSee you soon!\n",
		b.CustomerName, b.Date.Format(domain.DateFormat), b.StartTime, b.DurationMinutes,
	)
	return Message{
		To:      b.CustomerEmail,
		Subject: "We received your booking request",
		Body:    body,
	}
}

func contactStudioMessage(studioEmail string, n ContactNotice) Message {
	subject := n.Subject
	if subject == "" {
		subject = "New message from " + n.Name
	}

	var body strings.Builder
	fmt.Fprintf(&body, "From: %s <%s>\n", n.Name, n.Email)
	if n.Phone != "" {
		fmt.Fprintf(&body, "Phone: %s\n", n.Phone)
	}
	fmt.Fprintf(&body, "\n%s\n", n.Message)

	return Message{
		To:      studioEmail,
		Subject: "Contact form: " + subject,
		Body:    body.String(),
	}
}
