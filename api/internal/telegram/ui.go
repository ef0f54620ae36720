package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func makeLanguageKeyboard() tgbotapi.InlineKeyboardMarkup {
	en := tgbotapi.NewInlineKeyboardButtonData("English", "lang_english")
	ur := tgbotapi.NewInlineKeyboardButtonData("اردو", "lang_urdu")
	return tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(en, ur))
}

func makeCurrencyKeyboard() tgbotapi.InlineKeyboardMarkup {
	usd := tgbotapi.NewInlineKeyboardButtonData("USD", "cur_usd")
	pkr := tgbotapi.NewInlineKeyboardButtonData("PKR", "cur_pkr")
	return tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(usd, pkr))
}

const helpText = `I turn a dictated bill into a PDF invoice and WhatsApp it to your customer.

/name — customer name (type it after the command, or send it as the next text/voice message)
/number — customer WhatsApp number
/bill — what was bought, free text
/language — speech recognition language
/currency — invoice currency
/show — current fields
/generate — build the invoice and send it`
