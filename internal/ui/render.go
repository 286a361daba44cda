package ui

import (
	"html/template"
	"strings"
)

const defaultLinkText = "Login with LinkedIn"

var (
	loginLinkTmpl = template.Must(template.New("login_link").Parse(
		`<a rel="nofollow" href="{{.URL}}" title="Sign-in Using LinkedIn">{{.Text}}</a>`,
	))

	loginErrorTmpl = template.Must(template.New("login_error").Parse(
		`<div id="login_error"><strong>ERROR</strong>: {{.Message}}<br /></div>`,
	))
)

// LoginLink renders the login anchor for the given authorization URL.
// text overrides the default link label when non-empty. All values are
// HTML-escaped by the template.
func LoginLink(authURL, text string) (string, error) {
	if text == "" {
		text = defaultLinkText
	}

	var b strings.Builder
	err := loginLinkTmpl.Execute(&b, struct {
		URL  string
		Text string
	}{URL: authURL, Text: text})
	if err != nil {
		return "", err
	}

	return b.String(), nil
}

// LoginError renders the inline error block shown for unusable emails.
func LoginError(message string) (string, error) {
	var b strings.Builder
	err := loginErrorTmpl.Execute(&b, struct {
		Message string
	}{Message: message})
	if err != nil {
		return "", err
	}

	return b.String(), nil
}
