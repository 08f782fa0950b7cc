// Package whatsapp defines the Meta WhatsApp Business webhook wire format.
// The same payload shape arrives whether Meta delivers directly or a relay
// forwards it, so these types are shared by the verifier-agnostic pipeline.
package whatsapp

import (
	"strconv"
	"time"
)

// Payload is the top-level webhook delivery.
type Payload struct {
	Object string  `json:"object"`
	Entry  []Entry `json:"entry"`
}

// Entry represents one business-account entry.
type Entry struct {
	ID      string   `json:"id"`
	Changes []Change `json:"changes"`
}

// Change wraps a single change notification.
type Change struct {
	Field string      `json:"field"`
	Value ChangeValue `json:"value"`
}

// ChangeValue holds the message or status data of a change.
type ChangeValue struct {
	MessagingProduct  string    `json:"messaging_product"`
	Metadata          Metadata  `json:"metadata"`
	Contacts          []Contact `json:"contacts,omitempty"`
	Messages          []Message `json:"messages,omitempty"`
	Statuses          []Status  `json:"statuses,omitempty"`
	MessageTemplateID string    `json:"message_template_id,omitempty"`
}

// Metadata describes the receiving business phone number.
type Metadata struct {
	DisplayPhoneNumber string `json:"display_phone_number"`
	PhoneNumberID      string `json:"phone_number_id"`
}

// Contact carries the sender's profile metadata.
type Contact struct {
	Profile ContactProfile `json:"profile"`
	WaID    string         `json:"wa_id"`
}

// ContactProfile has the sender's display name.
type ContactProfile struct {
	Name string `json:"name"`
}

// Message types the pipeline branches on.
const (
	TypeText        = "text"
	TypeLocation    = "location"
	TypeInteractive = "interactive"
)

// Message is one inbound message. From is the sender MSISDN in platform-native
// format: digits with country code, no "+".
type Message struct {
	From        string       `json:"from"`
	ID          string       `json:"id"`
	Timestamp   string       `json:"timestamp"`
	Type        string       `json:"type"`
	Text        *Text        `json:"text,omitempty"`
	Location    *Location    `json:"location,omitempty"`
	Interactive *Interactive `json:"interactive,omitempty"`
}

// SentAt converts the platform's epoch-seconds string timestamp. A missing or
// malformed timestamp yields the zero time; callers treat that as "unknown".
func (m Message) SentAt() time.Time {
	secs, err := strconv.ParseInt(m.Timestamp, 10, 64)
	if err != nil {
		return time.Time{}
	}

	return time.Unix(secs, 0).UTC()
}

// Text holds a text message body.
type Text struct {
	Body string `json:"body"`
}

// Location is a native location attachment.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Name      string  `json:"name,omitempty"`
	Address   string  `json:"address,omitempty"`
}

// Interactive wraps an interactive message reply.
type Interactive struct {
	Type        string       `json:"type"`
	ButtonReply *ButtonReply `json:"button_reply,omitempty"`
}

// ButtonReply is the vendor's tap on a button we sent earlier.
type ButtonReply struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Status is a delivery/read status update for an outbound message.
type Status struct {
	ID          string `json:"id"`
	Status      string `json:"status"`
	Timestamp   string `json:"timestamp"`
	RecipientID string `json:"recipient_id"`
}

// ProfileName returns the sender display name for the given wa_id, or "" when
// the contacts block does not carry it.
func (v ChangeValue) ProfileName(waID string) string {
	for _, contact := range v.Contacts {
		if contact.WaID == waID {
			return contact.Profile.Name
		}
	}

	return ""
}

// StatusID returns the identifier a status-update change should be
// deduplicated on: statuses[0].id when present, else the template id.
func (v ChangeValue) StatusID() string {
	if len(v.Statuses) > 0 && v.Statuses[0].ID != "" {
		return v.Statuses[0].ID
	}

	return v.MessageTemplateID
}
