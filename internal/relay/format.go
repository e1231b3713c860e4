package relay

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/amirko228/couple-shop/internal/domain"
)

// FormatOrderMessage renders a checkout notification in Bot API HTML.
func FormatOrderMessage(items []domain.OrderLine, totalPrice int, info domain.CustomerInfo) string {
	var lines []string
	for _, it := range items {
		var variant string
		if it.Size != "" {
			variant += fmt.Sprintf(" (Size: %s)", it.Size)
		}
		if it.Color != "" {
			variant += fmt.Sprintf(" (Color: %s)", it.Color)
		}
		lines = append(lines, fmt.Sprintf("- %s%s - %d x %s = %s",
			it.Name, variant, it.Quantity, FormatPrice(it.Price), FormatPrice(it.Price*it.Quantity)))
	}

	return fmt.Sprintf(`
<b>🛍 New order</b>

<b>Ordered items:</b>
%s

<b>Total:</b> %s

<b>Customer details:</b>
<b>Name:</b> %s
<b>Contact (Telegram/WhatsApp):</b> %s
<b>Phone:</b> %s

<i>⚠️ Remember to contact the customer to confirm the order.</i>
`, strings.Join(lines, "\n"), FormatPrice(totalPrice), info.Name, info.Contact, info.Phone)
}

// FormatCustomPrintMessage renders a custom-print enquiry notification.
func FormatCustomPrintMessage(name, contact, phone, message string, hasImage bool) string {
	attachment := ""
	if hasImage {
		attachment = "\n<b>✅ An image is attached to this request</b>"
	}
	return fmt.Sprintf(`
<b>🎨 New custom print request</b>

<b>Name:</b> %s
<b>Contact (Telegram/WhatsApp):</b> %s
<b>Phone:</b> %s
<b>Message:</b>
%s%s

<i>⚠️ Remember to contact the customer to clarify the details.</i>
`, name, contact, phone, message, attachment)
}

// FormatStatusUpdate renders the customer-facing status transition notice.
func FormatStatusUpdate(o domain.Order, comment string) string {
	extra := ""
	if comment != "" {
		extra = fmt.Sprintf("\n<b>Comment:</b> %s\n", comment)
	}
	return fmt.Sprintf(`
<b>Order status update</b>

Dear %s,

The status of your order #%s has been changed to "%s".
%s
Best regards,
The Couple Shop team
`, o.CustomerInfo.Name, o.ID, o.Status, extra)
}

// FormatPrice renders a whole-unit price with thousands separators, e.g.
// "2 490 KGS".
func FormatPrice(v int) string {
	s := strconv.Itoa(v)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, " ")
	if neg {
		out = "-" + out
	}
	return out + " KGS"
}
