package checkout

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tcgperu/storefront-backend/internal/cart"
	pkgerrors "github.com/tcgperu/storefront-backend/pkg/errors"
)

const greeting = "Hola! Me interesa comprar:"

// ErrEmptyCart is returned when a checkout message is requested for a
// cart with no lines. The caller surfaces it and skips the hand-off.
var ErrEmptyCart = pkgerrors.New(pkgerrors.CodeStateConflict, "cart is empty")

// BuildMessage composes the plain-text order summary: a greeting, a
// bullet line per cart entry, and the grand total. Amounts are rounded
// to two decimals for display. No transport encoding happens here.
func BuildMessage(lines []cart.LineItem, currencySymbol string) (string, error) {
	if len(lines) == 0 {
		return "", ErrEmptyCart
	}

	var b strings.Builder
	b.WriteString(greeting)
	b.WriteString("\n\n")

	total := decimal.Zero
	for _, line := range lines {
		lineTotal := line.LineTotal()
		total = total.Add(lineTotal)
		fmt.Fprintf(&b, "• %s x%d - %s %s\n", line.Name, line.Quantity, currencySymbol, lineTotal.StringFixed(2))
	}

	fmt.Fprintf(&b, "\nTotal: %s %s", currencySymbol, total.Round(2).StringFixed(2))
	return b.String(), nil
}

// HandoffURL attaches the percent-encoded message to the messaging
// channel URL as its text parameter.
func HandoffURL(channelURL, message string) (string, error) {
	u, err := url.Parse(channelURL)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid channel url")
	}
	q := u.Query()
	q.Set("text", message)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
