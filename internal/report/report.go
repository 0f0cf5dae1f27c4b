package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"toolrental-checkout/internal/config"
	"toolrental-checkout/internal/domain"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter renders rental agreements as the plain-text report handed to the customer.
type Formatter struct {
	dateLayout string
	printer    *message.Printer
}

func NewFormatter(dateLayout string) *Formatter {
	if dateLayout == "" {
		dateLayout = config.DefaultDateLayout
	}
	return &Formatter{
		dateLayout: dateLayout,
		printer:    message.NewPrinter(language.AmericanEnglish),
	}
}

// Write renders a to w, one field per line.
func (f *Formatter) Write(w io.Writer, a *domain.RentalAgreement) error {
	lines := []string{
		fmt.Sprintf("Tool code: %s", a.ToolCode),
		fmt.Sprintf("Tool type: %s", a.ToolType),
		fmt.Sprintf("Tool brand: %s", a.ToolBrand),
		fmt.Sprintf("Rental days: %d", a.RentalDays),
		fmt.Sprintf("Checkout date: %s", f.date(a.CheckoutDate)),
		fmt.Sprintf("Due date: %s", f.date(a.DueDate)),
		fmt.Sprintf("Daily rental charge: %s", f.Currency(a.DailyCharge)),
		fmt.Sprintf("Charge days: %d", a.DaysCharged),
		fmt.Sprintf("Pre-discount charge: %s", f.Currency(a.PreDiscountCharge)),
		fmt.Sprintf("Discount percent: %d%%", a.DiscountPercent),
		fmt.Sprintf("Discount amount: %s", f.Currency(a.DiscountAmount)),
		fmt.Sprintf("Final charge: %s", f.Currency(a.FinalCharge)),
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}
	return nil
}

// Format returns the report as a string.
func (f *Formatter) Format(a *domain.RentalAgreement) string {
	var sb strings.Builder
	// strings.Builder never fails to write
	_ = f.Write(&sb, a)
	return sb.String()
}

// Currency formats an amount as US dollars with grouped thousands and two decimals.
// The digits come from the decimal itself, so no float rounding is involved.
func (f *Formatter) Currency(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}
	fixed := amount.StringFixed(2)
	whole, cents, _ := strings.Cut(fixed, ".")
	units := decimal.RequireFromString(whole).IntPart()
	return sign + f.printer.Sprintf("$%d.%s", units, cents)
}

func (f *Formatter) date(d civil.Date) string {
	return d.In(time.UTC).Format(f.dateLayout)
}
