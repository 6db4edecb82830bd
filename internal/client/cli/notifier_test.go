package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avolkov/chargecli/internal/client/session"
)

func TestNotifier_Notify(t *testing.T) {
	var out bytes.Buffer
	n := NewNotifier(bufio.NewReader(strings.NewReader("")), &out)

	n.Notify("Welcome back, Alice!", session.NotifySuccess)

	assert.Equal(t, "[success] Welcome back, Alice!\n", out.String())
}

func TestNotifier_AlertWaitsForEnter(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("\n"))
	var out bytes.Buffer
	n := NewNotifier(in, &out)

	n.Alert("Your account is blocked. Contact admin.")

	s := out.String()
	assert.Contains(t, s, "*** Your account is blocked. Contact admin. ***")
	assert.Contains(t, s, "Press Enter to continue...")
}

func TestNavigator_RedirectTracksRouteOnce(t *testing.T) {
	var out bytes.Buffer
	nav := NewNavigator(&out)

	nav.Redirect("/login")
	nav.Redirect("/login")
	nav.Redirect("/user/dashboard")

	assert.Equal(t, "/user/dashboard", nav.Route())
	assert.Equal(t, 1, strings.Count(out.String(), "/login"), "repeat redirects to the same route print nothing")
}
