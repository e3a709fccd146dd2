// Package receipt renders a finalized history record as printable text or
// as a PDF. Pure formatting; no state.
package receipt

import (
	"fmt"
	"strings"

	"tablepos/internal/models"
)

// Options carry the configurable header/footer lines and the currency
// suffix printed after amounts.
type Options struct {
	Header         string
	Footer         string
	CurrencySuffix string
}

// TransactionNumber is the short reference printed on receipts: the last
// four digits of the order id.
func TransactionNumber(id int64) string {
	digits := fmt.Sprintf("%d", id)
	if len(digits) > 4 {
		digits = digits[len(digits)-4:]
	}
	return digits
}

func methodLabel(method models.PaymentMethod) string {
	if method == models.PaymentCash {
		return "Hotovost"
	}
	return "Karta"
}

// Text renders the monospace till receipt for one paid order.
func Text(record models.HistoryRecord, opts Options) string {
	var b strings.Builder

	rule := "=================="
	header := fmt.Sprintf("=== %s ===", opts.Header)

	b.WriteString("\n")
	b.WriteString(rule + "\n")
	b.WriteString(header + "\n")
	b.WriteString(rule + "\n\n")
	fmt.Fprintf(&b, "Transakce #%s\n", TransactionNumber(record.ID))
	fmt.Fprintf(&b, "Datum: %s\n\n", record.PaymentTimestamp.Format("2.1.2006 15:04:05"))
	fmt.Fprintf(&b, "Stůl: %s\n", record.TableName)
	fmt.Fprintf(&b, "Číslo objednávky: %d\n\n", record.ID)
	b.WriteString("------------------\n\n")
	b.WriteString("Položky:\n\n")
	for _, item := range record.Items {
		fmt.Fprintf(&b, "%s %g %s\n", item.Name, item.Price, opts.CurrencySuffix)
	}
	b.WriteString("\n------------------\n\n")
	fmt.Fprintf(&b, "Celkem: %g %s\n", record.Total, opts.CurrencySuffix)
	fmt.Fprintf(&b, "Platba: %s\n\n", methodLabel(record.PaymentMethod))
	b.WriteString(rule + "\n\n")
	b.WriteString("Děkujeme za návštěvu!\n")
	b.WriteString("Vítejte znovu\n\n")
	fmt.Fprintf(&b, "=== %s ===\n", opts.Footer)

	return b.String()
}
