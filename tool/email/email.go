package email

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/resend/resend-go/v2"
	"github.com/russross/blackfriday/v2"

	"github.com/wayfarer-ai/wayfarer/tool"
	"github.com/wayfarer-ai/wayfarer/utils/json"
)

// Message is an email handed to the transport collaborator. Body is the
// raw markdown; HTML is its rendered form.
type Message struct {
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Body    string   `json:"body"`
	HTML    string   `json:"html"`
}

// Sender is the email transport collaborator. Send returns the
// transport's message ID.
type Sender interface {
	Send(ctx context.Context, msg *Message) (string, error)
}

// ResendSender delivers mail through the Resend API.
type ResendSender struct {
	client *resend.Client
	from   string
}

// NewResendSender creates a Resend transport sending from the given
// address.
func NewResendSender(apiKey, from string) *ResendSender {
	return &ResendSender{
		client: resend.NewClient(apiKey),
		from:   from,
	}
}

func (s *ResendSender) Send(_ context.Context, msg *Message) (string, error) {
	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      msg.To,
		Subject: msg.Subject,
		Html:    msg.HTML,
		Text:    msg.Body,
	}
	sent, err := s.client.Emails.Send(params)
	if err != nil {
		return "", errors.Wrap(err, "resend send failed")
	}
	return sent.Id, nil
}

// MemorySender captures messages instead of delivering them.
type MemorySender struct {
	mu       sync.Mutex
	messages []Message
}

// NewMemorySender creates an empty capturing sender.
func NewMemorySender() *MemorySender {
	return &MemorySender{}
}

func (s *MemorySender) Send(_ context.Context, msg *Message) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, *msg)
	return fmt.Sprintf("mem-%d", len(s.messages)), nil
}

// Messages returns the captured messages in send order.
func (s *MemorySender) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	messages := make([]Message, len(s.messages))
	copy(messages, s.messages)
	return messages
}

type emailRequest struct {
	To      []string `mapstructure:"to"`
	Subject string   `mapstructure:"subject"`
	Body    string   `mapstructure:"body"`
}

// Tool sends an email through the configured transport. Register it
// confirmation-required: sending mail acts on the outside world.
type Tool struct {
	sender Sender
}

var _ tool.Tool = &Tool{}

// Options represents the configuration options for the email tool.
type Options struct {
	// Sender overrides the transport collaborator.
	Sender Sender
	// From is the sender address for the default Resend transport.
	From string
	// APIKey is the Resend API key for the default transport.
	APIKey string
}

// Option is a function that configures Options.
type Option func(*Options)

// WithSender sets the transport collaborator.
func WithSender(sender Sender) Option {
	return func(o *Options) {
		o.Sender = sender
	}
}

// WithResend selects the Resend transport with explicit credentials.
func WithResend(apiKey, from string) Option {
	return func(o *Options) {
		o.APIKey = apiKey
		o.From = from
	}
}

// New creates an email tool. Without an explicit sender it builds a
// Resend transport from the options or the RESEND_API_KEY and
// EMAIL_FROM environment variables.
func New(opts ...Option) (*Tool, error) {
	options := &Options{}
	for _, opt := range opts {
		opt(options)
	}

	sender := options.Sender
	if sender == nil {
		apiKey := options.APIKey
		if apiKey == "" {
			apiKey = os.Getenv("RESEND_API_KEY")
		}
		from := options.From
		if from == "" {
			from = os.Getenv("EMAIL_FROM")
		}
		if apiKey == "" || from == "" {
			return nil, errors.New("email transport not configured: need a sender or Resend credentials")
		}
		sender = NewResendSender(apiKey, from)
	}
	return &Tool{sender: sender}, nil
}

// Name returns the name of the tool.
func (t *Tool) Name() string {
	return "SendEmail"
}

// Description returns the description of the tool.
func (t *Tool) Description() string {
	bytes, _ := json.Marshal(t.Schema())
	return `Send an email. The body is markdown and is also delivered as rendered HTML.
Input must be json schema: ` + string(bytes) + `
Example Input: {"to": ["ada@example.com"], "subject": "Your itinerary", "body": "**Day 1 — Tokyo**"}`
}

func (t *Tool) Schema() *tool.PropertiesSchema {
	return &tool.PropertiesSchema{
		Type: tool.TypeJson,
		Properties: map[string]tool.PropertySchema{
			"to": {
				Type:        tool.TypeArr,
				Description: "Recipient email addresses",
				Items:       &tool.PropertySchema{Type: tool.TypeString},
			},
			"subject": {
				Type:        tool.TypeString,
				Description: "Email subject line",
			},
			"body": {
				Type:        tool.TypeString,
				Description: "Email body in markdown",
			},
		},
		Required: []string{"to", "subject", "body"},
	}
}

func (t *Tool) Strict() bool {
	return true
}

// Call renders the markdown body and hands the message to the
// transport.
func (t *Tool) Call(ctx context.Context, input string) (string, error) {
	var params map[string]interface{}
	if err := json.Unmarshal([]byte(json.TrimJsonString(input)), &params); err != nil {
		return "json unmarshal error, please try again", nil
	}

	var req emailRequest
	if err := mapstructure.Decode(params, &req); err != nil {
		return "invalid input, please check the schema and try again", nil
	}
	if len(req.To) == 0 {
		return "to parameter is required", nil
	}
	if req.Subject == "" {
		return "subject parameter is required", nil
	}

	msg := &Message{
		To:      req.To,
		Subject: req.Subject,
		Body:    req.Body,
		HTML:    string(blackfriday.Run([]byte(req.Body))),
	}
	id, err := t.sender.Send(ctx, msg)
	if err != nil {
		return "email service unavailable, please try again later", nil
	}
	return fmt.Sprintf("email sent to %s, message id %s", strings.Join(req.To, ", "), id), nil
}
