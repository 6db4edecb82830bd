package cli

import (
	"context"

	"github.com/avolkov/chargecli/internal/client/session"
	"github.com/avolkov/chargecli/internal/common"
)

// Forgot drives the two-phase password reset: email first, then OTP plus
// the new password. Typing "back" during phase two returns to the email
// prompt with the address kept; an empty email cancels.
func (a *App) Forgot(ctx context.Context) error {
	flow := a.session.NewResetFlow()

	for flow.Phase() != session.PhaseCompleted {
		switch flow.Phase() {

		case session.PhaseAwaitingEmail:
			prompt := "Enter your email (empty to cancel)"
			if flow.Email() != "" {
				prompt = "Enter your email (empty to keep " + flow.Email() + ")"
			}
			email, err := getSimpleText(a.reader, prompt, a.out)
			if err != nil {
				return err
			}
			if email == "" {
				if flow.Email() == "" {
					return nil
				}
				email = flow.Email()
			}
			if _, err := flow.RequestOTP(ctx, email); err != nil {
				return err
			}

		case session.PhaseAwaitingOTPAndPassword:
			otp, err := getSimpleText(a.reader, "Enter the 6-digit OTP (or 'back')", a.out)
			if err != nil {
				return err
			}
			if otp == "back" {
				flow.Back()
				continue
			}

			password, err := getPassword(a.out, "New password")
			if err != nil {
				return err
			}
			confirm, err := getPassword(a.out, "Confirm new password")
			if err != nil {
				common.WipeByteArray(password)
				return err
			}

			_, err = flow.Submit(ctx, otp, string(password), string(confirm))
			common.WipeByteArray(password)
			common.WipeByteArray(confirm)
			if err != nil {
				return err
			}
		}
	}

	a.nav.Redirect(session.RouteLogin)
	return nil
}
