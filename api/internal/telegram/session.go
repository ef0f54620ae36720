package telegram

import (
	"sync"

	"billbot/api/internal/numword"
)

// Session holds the transient per-chat billing fields. Values are immutable
// per turn: handlers read a copy, derive a new value and store the
// replacement, so no two actions ever share a half-edited state.
type Session struct {
	CustomerName   string
	CustomerNumber string
	BillContent    string
	Currency       string // "USD" | "PKR"
	Language       numword.Language
}

func newSession() Session {
	return Session{Currency: "USD", Language: numword.English}
}

var chatSessions sync.Map // chatID -> Session

func getSession(chatID int64) Session {
	if v, ok := chatSessions.Load(chatID); ok {
		return v.(Session)
	}
	return newSession()
}

func putSession(chatID int64, s Session) { chatSessions.Store(chatID, s) }

// Await modes: which field the next free-text or voice message fills.
const (
	awaitName   = "await_name"
	awaitNumber = "await_number"
	awaitBill   = "await_bill"
)

var chatMode sync.Map // chatID -> string

func setMode(chatID int64, mode string) { chatMode.Store(chatID, mode) }
func getMode(chatID int64) string {
	if v, ok := chatMode.Load(chatID); ok {
		if s, _ := v.(string); s != "" {
			return s
		}
	}
	return ""
}
func clearMode(chatID int64) { chatMode.Delete(chatID) }

func fieldForMode(mode string) (numword.Field, bool) {
	switch mode {
	case awaitName:
		return numword.FieldName, true
	case awaitNumber:
		return numword.FieldNumber, true
	case awaitBill:
		return numword.FieldBill, true
	}
	return 0, false
}

func (s Session) withField(f numword.Field, text string) Session {
	switch f {
	case numword.FieldName:
		s.CustomerName = text
	case numword.FieldNumber:
		s.CustomerNumber = text
	case numword.FieldBill:
		s.BillContent = text
	}
	return s
}
