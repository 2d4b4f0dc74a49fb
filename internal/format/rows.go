package format

import (
	"fmt"
	"time"

	"github.com/fieldopshq/fieldops/internal/domain"
)

const dateLayout = "2006-01-02"

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func formatDatePtr(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return formatDate(*t)
}

func derefOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}

// formatCents renders a cent amount as a dollar figure.
func formatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}

// RequestHeaders returns the request table header.
func RequestHeaders() []string {
	return []string{"ID", "CLIENT", "TITLE", "STATUS", "PREFERRED", "CREATED"}
}

// RequestRow renders one request as table cells.
func RequestRow(r domain.Request) []string {
	return []string{
		fmt.Sprintf("%d", r.ID),
		r.ClientName,
		r.Title,
		r.Status.String(),
		formatDatePtr(r.PreferredAt),
		formatDate(r.CreatedAt),
	}
}

// BookingHeaders returns the booking table header.
func BookingHeaders() []string {
	return []string{"ID", "CLIENT", "SERVICE", "STATUS", "SCHEDULED", "CREATED"}
}

// BookingRow renders one booking as table cells.
func BookingRow(b domain.Booking) []string {
	return []string{
		fmt.Sprintf("%d", b.ID),
		b.ClientName,
		b.ServiceType,
		b.Status.String(),
		formatDatePtr(b.ScheduledAt),
		formatDate(b.CreatedAt),
	}
}

// ClientHeaders returns the client table header.
func ClientHeaders() []string {
	return []string{"ID", "NAME", "EMAIL", "PHONE", "STATUS", "CREATED"}
}

// ClientRow renders one client as table cells.
func ClientRow(c domain.Client) []string {
	return []string{
		fmt.Sprintf("%d", c.ID),
		c.Name,
		derefOr(c.Email, "-"),
		derefOr(c.Phone, "-"),
		c.Status.String(),
		formatDate(c.CreatedAt),
	}
}

// PropertyHeaders returns the property table header.
func PropertyHeaders() []string {
	return []string{"ID", "ADDRESS", "CITY", "NICKNAME", "STATUS", "CREATED"}
}

// PropertyRow renders one property as table cells.
func PropertyRow(p domain.Property) []string {
	return []string{
		fmt.Sprintf("%d", p.ID),
		p.Address,
		p.City,
		derefOr(p.Nickname, "-"),
		p.Status.String(),
		formatDate(p.CreatedAt),
	}
}

// ProjectHeaders returns the project table header.
func ProjectHeaders() []string {
	return []string{"ID", "NAME", "STATUS", "STARTS", "CREATED"}
}

// ProjectRow renders one project as table cells.
func ProjectRow(p domain.Project) []string {
	return []string{
		fmt.Sprintf("%d", p.ID),
		p.Name,
		p.Status.String(),
		formatDatePtr(p.StartsAt),
		formatDate(p.CreatedAt),
	}
}

// TaskHeaders returns the task table header.
func TaskHeaders() []string {
	return []string{"ID", "TITLE", "STATUS", "PRIORITY", "DUE", "CREATED"}
}

// TaskRow renders one task as table cells.
func TaskRow(t domain.Task) []string {
	return []string{
		fmt.Sprintf("%d", t.ID),
		t.Title,
		t.Status.String(),
		t.Priority.String(),
		formatDatePtr(t.DueAt),
		formatDate(t.CreatedAt),
	}
}

// InvoiceHeaders returns the invoice table header.
func InvoiceHeaders() []string {
	return []string{"ID", "NUMBER", "CLIENT", "STATUS", "TOTAL", "DUE", "ISSUED"}
}

// InvoiceRow renders one invoice as table cells.
func InvoiceRow(i domain.Invoice) []string {
	return []string{
		fmt.Sprintf("%d", i.ID),
		i.Number,
		i.ClientName,
		i.Status.String(),
		formatCents(i.TotalCents),
		formatDatePtr(i.DueAt),
		formatDate(i.IssuedAt),
	}
}

// NoticeHeaders returns the notice table header.
func NoticeHeaders() []string {
	return []string{"ID", "TITLE", "KIND", "READ", "CREATED"}
}

// NoticeRow renders one notice as table cells.
func NoticeRow(n domain.Notice) []string {
	read := "no"
	if n.IsRead() {
		read = "yes"
	}
	return []string{
		fmt.Sprintf("%d", n.ID),
		n.Title,
		n.Kind.String(),
		read,
		formatDate(n.CreatedAt),
	}
}
