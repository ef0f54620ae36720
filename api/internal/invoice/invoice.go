// Package invoice shapes extracted line items into the request the external
// invoice renderer expects, and holds the renderer client.
package invoice

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"billbot/api/internal/extract"
)

// ErrNoItems guards against submitting a zero-line invoice.
var ErrNoItems = errors.New("invoice: no line items")

const (
	sender  = "Saqib Zeen House (Textile)"
	logoURL = "https://example.com/logo.png"

	notes = `● Thank you for your business! We appreciate your trust and look forward to serving you again.
● Great choice! Quality products, fair pricing, and timely service—what more could you ask for?
● If this invoice were a novel, the ending would be "Paid in Full." Let's make it a bestseller!
● Questions? Concerns? Compliments? We're just a message away.`

	terms = `● Payment is due by the due date to keep our accountants happy (and to avoid late fees).
● Late payments may result in a [X]% charge per month—or worse, a strongly worded email.
● If you notice any discrepancies, please inform us within [X] days. We promise we didn't do it on purpose.
● We accept payments via [Bank Transfer, PayPal, Credit Card, etc.]. Choose wisely, but choose soon.`
)

// Request is a fully derived render request; build once per generation
// action, never mutated afterwards.
type Request struct {
	From     string
	To       string
	Contact  string
	Logo     string
	Number   string
	Date     string
	DueDate  string
	Currency string
	Notes    string
	Terms    string
	Items    []extract.LineItem
}

// Build derives the invoice request at the given instant. The invoice number
// comes from the wall clock, not a counter: numbers are not guaranteed unique
// across concurrent sessions.
func Build(customerName, customerNumber string, items []extract.LineItem, currency string, now time.Time) (Request, error) {
	if len(items) == 0 {
		return Request{}, ErrNoItems
	}
	return Request{
		From:     sender,
		To:       customerName,
		Contact:  customerNumber,
		Logo:     logoURL,
		Number:   "INV-" + now.Format("20060102150405"),
		Date:     now.Format("Jan 02, 2006"),
		DueDate:  now.AddDate(0, 0, 7).Format("Jan 02, 2006"),
		Currency: currency,
		Notes:    notes,
		Terms:    terms,
		Items:    items,
	}, nil
}

// FormValues encodes the request the way the renderer wants it: flat form
// fields with indexed item rows.
func (r Request) FormValues() url.Values {
	v := url.Values{}
	v.Set("from", r.From)
	v.Set("to", r.To)
	v.Set("logo", r.Logo)
	v.Set("number", r.Number)
	v.Set("date", r.Date)
	v.Set("due_date", r.DueDate)
	v.Set("currency", r.Currency)
	v.Set("notes", r.Notes)
	v.Set("terms", r.Terms)
	for i, it := range r.Items {
		v.Set(fmt.Sprintf("items[%d][name]", i), it.ItemName)
		v.Set(fmt.Sprintf("items[%d][quantity]", i), formatNumber(it.Quantity))
		v.Set(fmt.Sprintf("items[%d][unit_cost]", i), formatNumber(it.UnitPrice))
	}
	return v
}

// formatNumber renders 2.0 as "2" but keeps fractional values intact.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
