// Package templates renders the transactional emails this service sends.
package templates

import (
	"bytes"
	"fmt"
	htmpl "html/template"
	texttpl "text/template"
)

type tpl struct {
	subject string
	text    string
	html    string
}

var registry = map[string]tpl{
	"welcome": {
		subject: "Welcome to {{.AppName}}",
		text: "Hi {{.Username}},\n\n" +
			"Your account is ready. Add a wish, share it with friends and let them chip in.\n",
		html: `<p>Hi <b>{{.Username}}</b>,</p>` +
			`<p>Your account is ready. Add a wish, share it with friends and let them chip in.</p>`,
	},
	"wish_funded": {
		subject: "Your wish “{{.WishName}}” is fully funded",
		text: "Hi {{.Username}},\n\n" +
			"Great news: your wish “{{.WishName}}” has reached its price of {{.Price}}.\n",
		html: `<p>Hi <b>{{.Username}}</b>,</p>` +
			`<p>Great news: your wish &laquo;{{.WishName}}&raquo; has reached its price of {{.Price}}.</p>`,
	},
}

// Render produces subject, text and HTML bodies for the named template.
func Render(name string, data map[string]any) (subject, text, html string, err error) {
	t, ok := registry[name]
	if !ok {
		return "", "", "", fmt.Errorf("templates: unknown template %q", name)
	}
	subject, err = renderText(name+":subject", t.subject, data)
	if err != nil {
		return "", "", "", err
	}
	text, err = renderText(name+":text", t.text, data)
	if err != nil {
		return "", "", "", err
	}
	html, err = renderHTML(name+":html", t.html, data)
	if err != nil {
		return "", "", "", err
	}
	return subject, text, html, nil
}

func renderText(name, body string, data map[string]any) (string, error) {
	t, err := texttpl.New(name).Parse(body)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func renderHTML(name, body string, data map[string]any) (string, error) {
	t, err := htmpl.New(name).Parse(body)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
