package ui

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoginLinkDefaultText(t *testing.T) {
	html, err := LoginLink("https://provider.example/authorize?state=abc", "")
	require.NoError(t, err)
	require.Contains(t, html, `href="https://provider.example/authorize?state=abc"`)
	require.Contains(t, html, ">Login with LinkedIn</a>")
	require.Contains(t, html, `rel="nofollow"`)
}

func TestLoginLinkTextOverride(t *testing.T) {
	html, err := LoginLink("https://provider.example/authorize", "Join now")
	require.NoError(t, err)
	require.Contains(t, html, ">Join now</a>")
	require.NotContains(t, html, "Login with LinkedIn")
}

func TestLoginLinkEscapesText(t *testing.T) {
	html, err := LoginLink("https://provider.example/authorize", `<script>alert(1)</script>`)
	require.NoError(t, err)
	require.NotContains(t, html, "<script>")
}

func TestLoginErrorBlock(t *testing.T) {
	html, err := LoginError("Please register manually.")
	require.NoError(t, err)
	require.Contains(t, html, `id="login_error"`)
	require.Contains(t, html, "Please register manually.")
}

func TestLoginErrorEscapesMessage(t *testing.T) {
	html, err := LoginError(`<img src=x onerror=alert(1)>`)
	require.NoError(t, err)
	require.NotContains(t, html, "<img")
}
