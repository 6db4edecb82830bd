package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/avolkov/chargecli/internal/client/oauth"
	"github.com/avolkov/chargecli/internal/client/session"
)

const (
	// errorGrace keeps the failure on screen before bouncing back to login.
	errorGrace = 3 * time.Second
	// successDelay lets the success notification land before the dashboard.
	successDelay = 400 * time.Millisecond
)

// Google signs in with Google. With a configured client id the embedded
// flow is used: the user pastes the provider credential and it is verified
// directly. Without one the redirect flow runs: a loopback listener catches
// the provider redirect carrying the token and profile.
func (a *App) Google(ctx context.Context) error {
	if a.config.GoogleClientID != "" {
		return a.googleEmbedded(ctx)
	}
	return a.googleRedirect(ctx)
}

func (a *App) googleEmbedded(ctx context.Context) error {
	credential, err := getSimpleText(a.reader, "Paste the Google credential", a.out)
	if err != nil {
		return err
	}

	res, err := a.session.GoogleLoginPopup(ctx, credential)
	if err != nil {
		return err
	}
	if res.Success {
		a.sleep(successDelay)
		a.nav.Redirect(a.session.DashboardRoute())
	}
	return nil
}

func (a *App) googleRedirect(ctx context.Context) error {
	srv, err := oauth.Listen(a.config.CallbackAddr)
	if err != nil {
		return fmt.Errorf("starting callback listener: %w", err)
	}
	defer srv.Close()

	fmt.Fprintln(a.out, "Open this URL in your browser to sign in with Google:")
	fmt.Fprintln(a.out, a.session.GoogleRedirectURL(srv.RedirectURL()))

	params, err := srv.Wait(ctx)
	if err != nil {
		return fmt.Errorf("waiting for callback: %w", err)
	}

	res, err := a.session.HandleGoogleCallback(ctx, params)
	if err != nil {
		return err
	}

	if !res.Success {
		a.sleep(errorGrace)
		a.nav.Redirect(session.RouteLogin)
		return nil
	}

	a.sleep(successDelay)
	a.nav.Redirect(a.session.DashboardRoute())
	return nil
}
