package deliver

import (
	"context"
	"fmt"

	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// messageBody travels with every invoice. Fixed on purpose.
const messageBody = "Boss, this bill is honored to be in your inbox. Now, do it a favor and make it disappear."

// WhatsApp sends the invoice link as a media message via Twilio.
type WhatsApp struct {
	client *twilio.RestClient
	from   string
}

func NewWhatsApp(sid, authToken, fromNumber string) *WhatsApp {
	return &WhatsApp{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: sid,
			Password: authToken,
		}),
		from: fromNumber,
	}
}

func (w *WhatsApp) Send(ctx context.Context, to, mediaURL string) error {
	params := &twilioapi.CreateMessageParams{}
	params.SetFrom("whatsapp:" + w.from)
	params.SetTo("whatsapp:" + to)
	params.SetBody(messageBody)
	params.SetMediaUrl([]string{mediaURL})

	if _, err := w.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}
	return nil
}
