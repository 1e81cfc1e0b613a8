package alert

import (
	"fmt"
	"strings"
	"time"

	"chequetrack/models"

	"github.com/shopspring/decimal"
)

// FormatChequeMessage renders the alert body for a newly created cheque.
func FormatChequeMessage(cheque models.Cheque) string {
	return fmt.Sprintf(`🏦 *New Cheque Added*

📋 *Details:*
• Cheque Number: %d
• Payee: %s
• Amount: %s
• Issue Date: %s
• Due Date: %s
• Status: %s

💡 This is an automated alert from your Cheque Management System.`,
		cheque.ChequeNumber,
		cheque.ToPayee,
		formatAmount(cheque.Amount),
		formatLongDate(cheque.IssuedDate),
		formatLongDate(cheque.DueDate),
		strings.ToUpper(cheque.Status))
}

// formatAmount renders a currency value with thousands separators and two
// decimal places, e.g. "$1,234.56".
func formatAmount(d decimal.Decimal) string {
	fixed := d.StringFixed(2)
	neg := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	intPart := fixed[:len(fixed)-3]
	fracPart := fixed[len(fixed)-3:]
	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	out := "$" + strings.Join(groups, ",") + fracPart
	if neg {
		out = "-" + out
	}
	return out
}

// formatLongDate turns an ISO date into a human-readable long form,
// e.g. "21 November 2025". Unparseable input is returned as-is.
func formatLongDate(iso string) string {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return t.Format("2 January 2006")
}
