package telegram

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"billbot/api/internal/numword"
	"billbot/api/internal/speech"
)

type Router struct {
	Bot *tgbotapi.BotAPI
	STT speech.Recognizer
	Gen *Generator
}

func (r *Router) HandleUpdate(upd tgbotapi.Update) {
	if upd.CallbackQuery != nil {
		r.handleCallback(*upd.CallbackQuery)
		return
	}
	if upd.Message == nil {
		return
	}
	cid := upd.Message.Chat.ID

	if upd.Message.IsCommand() {
		r.handleCommand(upd)
		return
	}
	if upd.Message.Voice != nil {
		r.handleVoice(cid, upd.Message.Voice.FileID)
		return
	}
	if txt := strings.TrimSpace(upd.Message.Text); txt != "" {
		r.handleText(cid, txt)
		return
	}
}

func (r *Router) handleCommand(upd tgbotapi.Update) {
	cid := upd.Message.Chat.ID
	args := strings.TrimSpace(upd.Message.CommandArguments())

	switch upd.Message.Command() {
	case "start", "help":
		r.send(cid, helpText)
	case "health":
		r.send(cid, "✅ OK")

	case "name":
		r.captureOrAwait(cid, awaitName, args, "Send the customer name as text or a voice message.")
	case "number":
		r.captureOrAwait(cid, awaitNumber, args, "Send the customer WhatsApp number as text or a voice message.")
	case "bill":
		r.captureOrAwait(cid, awaitBill, args, "Send the bill content as text or a voice message.")

	case "language":
		msg := tgbotapi.NewMessage(cid, "Speech recognition language:")
		msg.ReplyMarkup = makeLanguageKeyboard()
		_, _ = r.Bot.Send(msg)
	case "currency":
		msg := tgbotapi.NewMessage(cid, "Invoice currency:")
		msg.ReplyMarkup = makeCurrencyKeyboard()
		_, _ = r.Bot.Send(msg)

	case "show":
		r.send(cid, r.summary(getSession(cid)))
	case "generate":
		r.handleGenerate(cid)

	default:
		r.send(cid, "Unknown command. /help lists what I understand.")
	}
}

// captureOrAwait stores typed input directly; with no argument it arms the
// chat so the next text or voice message fills the field. Typed text is never
// normalized — only the speech path is.
func (r *Router) captureOrAwait(cid int64, mode, args, prompt string) {
	if args == "" {
		setMode(cid, mode)
		r.send(cid, prompt)
		return
	}
	f, _ := fieldForMode(mode)
	putSession(cid, getSession(cid).withField(f, args))
	clearMode(cid)
	r.send(cid, "Saved.")
}

func (r *Router) handleText(cid int64, text string) {
	mode := getMode(cid)
	f, ok := fieldForMode(mode)
	if !ok {
		r.send(cid, "Pick a field first: /name, /number or /bill. Or /generate when everything is set.")
		return
	}
	putSession(cid, getSession(cid).withField(f, text))
	clearMode(cid)
	r.send(cid, "Saved.")
}

func (r *Router) handleVoice(cid int64, fileID string) {
	mode := getMode(cid)
	f, ok := fieldForMode(mode)
	if !ok {
		r.send(cid, "Pick a field first: /name, /number or /bill — then send the voice note.")
		return
	}
	if r.STT == nil {
		r.send(cid, "Speech recognition is not configured here. Please type the value instead.")
		return
	}

	file, err := r.Bot.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		r.sendError(cid, err)
		return
	}
	audio, err := download(fmt.Sprintf("https://api.telegram.org/file/bot%s/%s", r.Bot.Token, file.FilePath))
	if err != nil {
		r.sendError(cid, err)
		return
	}

	s := getSession(cid)
	text, err := r.STT.Transcribe(context.Background(), audio, s.Language)
	if err != nil {
		r.sendError(cid, err)
		return
	}
	if text == "" {
		// captured but not understood; leave the field as it was
		r.send(cid, "Sorry, I couldn't understand the audio.")
		return
	}

	text = numword.NormalizeField(f, text, s.Language)
	putSession(cid, s.withField(f, text))
	clearMode(cid)
	r.send(cid, "You said: "+text)
}

func (r *Router) handleGenerate(cid int64) {
	s := getSession(cid)
	if s.CustomerName == "" || s.CustomerNumber == "" || s.BillContent == "" {
		r.send(cid, "Please fill in all required fields first: /name, /number and /bill.")
		return
	}

	r.send(cid, "Generating and sending the bill…")
	res, warnings, err := r.Gen.Run(context.Background(), s)
	for _, w := range warnings {
		r.send(cid, "⚠️ "+w)
	}
	if err != nil {
		r.sendError(cid, err)
		return
	}
	r.send(cid, fmt.Sprintf("✅ Bill successfully sent to %s\n%s", res.Destination, res.MediaURL))
}

func (r *Router) handleCallback(cb tgbotapi.CallbackQuery) {
	cid := cb.Message.Chat.ID
	s := getSession(cid)

	switch cb.Data {
	case "lang_english":
		s.Language = numword.English
	case "lang_urdu":
		s.Language = numword.Urdu
	case "cur_usd":
		s.Currency = "USD"
	case "cur_pkr":
		s.Currency = "PKR"
	default:
		_, _ = r.Bot.Request(tgbotapi.NewCallback(cb.ID, ""))
		return
	}
	putSession(cid, s)
	_, _ = r.Bot.Request(tgbotapi.NewCallback(cb.ID, "Done"))
	r.send(cid, r.summary(s))
}

func (r *Router) summary(s Session) string {
	val := func(v string) string {
		if v == "" {
			return "(empty)"
		}
		return v
	}
	return fmt.Sprintf("Customer name: %s\nCustomer number: %s\nBill content: %s\nCurrency: %s\nLanguage: %s",
		val(s.CustomerName), val(s.CustomerNumber), val(s.BillContent), s.Currency, s.Language)
}

func (r *Router) send(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	_, _ = r.Bot.Send(msg)
}

func (r *Router) sendError(chatID int64, err error) {
	r.send(chatID, fmt.Sprintf("Error: %v", err))
}
