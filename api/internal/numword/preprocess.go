package numword

// Field identifies which captured session field a recognized transcript is
// headed for.
type Field int

const (
	FieldName Field = iota
	FieldNumber
	FieldBill
)

// NormalizeField runs Normalize for the fields where spoken numbers matter:
// the customer number and the bill content. The customer name is left alone
// ("One Stop Traders" must not become "1 Stop Traders").
//
// Callers apply this on the speech path only; typed input is assumed to be
// already well-formed and bypasses normalization entirely.
func NormalizeField(field Field, text string, lang Language) string {
	switch field {
	case FieldNumber, FieldBill:
		return Normalize(text, lang)
	default:
		return text
	}
}
