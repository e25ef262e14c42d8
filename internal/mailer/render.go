package mailer

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"net/url"
	"strings"
	texttemplate "text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Message is a rendered mail ready for delivery.
type Message struct {
	From    string
	To      string
	Subject string
	Text    string
	HTML    string
}

type templateData struct {
	Link     string
	OldAlias string
	NewAlias string
}

type templatePair struct {
	text *texttemplate.Template
	html *htmltemplate.Template
}

// Renderer renders jobs into messages. Links point into the web app.
type Renderer struct {
	from          string
	webAppAddress string
	templates     map[Template]templatePair
}

// NewRenderer parses the embedded templates.
func NewRenderer(from, webAppAddress string) (*Renderer, error) {
	r := &Renderer{
		from:          from,
		webAppAddress: strings.TrimRight(webAppAddress, "/"),
		templates:     make(map[Template]templatePair),
	}

	for _, t := range []Template{TemplateSignUp, TemplatePasswordReset, TemplateEmailChange, TemplateUsernameChanged} {
		file := "templates/" + string(t) + ".tmpl"

		text, err := texttemplate.ParseFS(templateFS, file)
		if err != nil {
			return nil, fmt.Errorf("parse text template %s: %w", t, err)
		}
		html, err := htmltemplate.ParseFS(templateFS, file)
		if err != nil {
			return nil, fmt.Errorf("parse html template %s: %w", t, err)
		}
		r.templates[t] = templatePair{text: text, html: html}
	}

	return r, nil
}

// Render builds the message for job.
func (r *Renderer) Render(job Job) (Message, error) {
	pair, ok := r.templates[job.Template]
	if !ok {
		return Message{}, fmt.Errorf("unknown template %q", job.Template)
	}

	data := templateData{Link: r.link(job), NewAlias: job.NewAlias}
	if job.OldAlias != nil {
		data.OldAlias = *job.OldAlias
	}

	subject, err := execText(pair.text, "subject", data)
	if err != nil {
		return Message{}, err
	}
	text, err := execText(pair.text, "text", data)
	if err != nil {
		return Message{}, err
	}

	var html bytes.Buffer
	if err := pair.html.ExecuteTemplate(&html, "html", data); err != nil {
		return Message{}, fmt.Errorf("render html: %w", err)
	}

	return Message{
		From:    r.from,
		To:      job.Recipient,
		Subject: strings.TrimSpace(subject),
		Text:    text,
		HTML:    html.String(),
	}, nil
}

func (r *Renderer) link(job Job) string {
	switch job.Template {
	case TemplateSignUp:
		return r.webAppAddress + "/confirm/sign-up/" + url.PathEscape(job.Token)
	case TemplatePasswordReset:
		return r.webAppAddress + "/confirm/password-reset/" + url.PathEscape(job.Token)
	case TemplateEmailChange:
		return r.webAppAddress + "/confirm/change-email/" + url.PathEscape(job.Token)
	default:
		return r.webAppAddress + "/me"
	}
}

func execText(t *texttemplate.Template, name string, data templateData) (string, error) {
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}
