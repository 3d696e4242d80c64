package contact

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/stickball/presskit/internal/parser/html"
)

// Subject of every outbound contact message
const Subject = "[Stickball Contact] New Contact Form Submission"

//go:embed templates/message.html
var templates embed.FS

var messageTemplate = template.Must(template.ParseFS(templates, "templates/message.html"))

// Message is a composed mail ready for a Sender
type Message struct {
	ID      string
	From    string
	To      string
	ReplyTo string
	Subject string
	Date    time.Time
	HTML    string
	Text    string
}

type messageData struct {
	Product      string
	Name         string
	Email        string
	Organization string
	Lines        []string
	Sent         string
}

// Compose renders the submission as an HTML message with a plain-text
// alternative. The submission is escaped; message newlines become <br>.
func Compose(s Submission, from, to string, sent time.Time) (*Message, error) {
	data := messageData{
		Product:      "Stickball",
		Name:         s.Name,
		Email:        s.Email,
		Organization: s.Organization,
		Lines:        strings.Split(strings.ReplaceAll(s.Message, "\r\n", "\n"), "\n"),
		Sent:         sent.Format("Jan 2, 2006, 3:04:05 PM MST"),
	}

	var buf bytes.Buffer
	if err := messageTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render message: %w", err)
	}

	doc, err := html.NewParser().Parse(bytes.NewReader(buf.Bytes()))
	if err != nil {
		return nil, fmt.Errorf("failed to parse rendered message: %w", err)
	}

	return &Message{
		ID:      messageID(from),
		From:    from,
		To:      to,
		ReplyTo: s.Email,
		Subject: Subject,
		Date:    sent,
		HTML:    buf.String(),
		Text:    doc.Text(),
	}, nil
}

// messageID builds a Message-ID local part at the sender's domain
func messageID(from string) string {
	domain := "stickball.local"
	if _, d, ok := strings.Cut(from, "@"); ok && d != "" {
		domain = strings.Trim(d, "<> ")
	}
	return uuid.NewString() + "@" + domain
}
