package assistant

import (
	"fmt"
	"strings"

	"chequetrack/models"
)

const systemInstruction = `You are an intelligent assistant for a cheque management system.
Help users query and analyze their cheques using natural language.

Guidelines:
- Be concise, friendly, and professional
- Format dates clearly (e.g., "November 21st, 2025" or "21 Nov 2025")
- Format currency with commas and 2 decimal places (e.g., "$1,234.56")
- When listing cheques, use bullet points or numbered lists
- Parse natural language dates (e.g., "by 21st November", "before December", "this month")
- Provide summaries and totals when relevant
- If no cheques match, suggest alternatives politely`

// noChequesSummary is the sentinel handed to the model for an empty store.
const noChequesSummary = "No cheques available in the system."

// SummarizeCheques renders the full cheque set as a compact prompt section:
// a count header followed by one 1-indexed line per cheque in store order.
func SummarizeCheques(cheques []models.Cheque) string {
	if len(cheques) == 0 {
		return noChequesSummary
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Total cheques: %d\n\nCheque details:\n", len(cheques))
	for i, ch := range cheques {
		fmt.Fprintf(&b, "%d. Cheque #%d - Payee: %s, Amount: $%s, Issue Date: %s, Due Date: %s, Status: %s\n",
			i+1, ch.ChequeNumber, ch.ToPayee, ch.Amount.StringFixed(2), ch.IssuedDate, ch.DueDate, ch.Status)
	}
	return strings.TrimRight(b.String(), "\n")
}
