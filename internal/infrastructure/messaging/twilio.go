package messaging

import (
	"fmt"

	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// WhatsAppSender relays messages to WhatsApp numbers via Twilio
type WhatsAppSender struct {
	client *twilio.RestClient
	from   string
}

// NewWhatsAppSender creates a Twilio WhatsApp adapter. The from number is the
// Twilio sandbox/sender number, already carrying the whatsapp: prefix.
func NewWhatsAppSender(accountSID, authToken, from string) *WhatsAppSender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &WhatsAppSender{client: client, from: from}
}

// Send delivers a message to the given phone number and returns the Twilio
// message SID.
func (s *WhatsAppSender) Send(toNumber, body string) (string, error) {
	params := &twilioapi.CreateMessageParams{}
	params.SetBody(body)
	params.SetFrom(s.from)
	params.SetTo(fmt.Sprintf("whatsapp:%s", toNumber))

	msg, err := s.client.Api.CreateMessage(params)
	if err != nil {
		return "", err
	}

	sid := ""
	if msg.Sid != nil {
		sid = *msg.Sid
	}
	return sid, nil
}
