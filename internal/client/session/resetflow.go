package session

import (
	"context"
	"errors"
	"regexp"
	"strings"
)

var errNotAwaitingOTP = errors.New("reset flow: no OTP requested yet")

// ResetPhase is the password-reset machine's state.
type ResetPhase int

const (
	PhaseAwaitingEmail ResetPhase = iota
	PhaseAwaitingOTPAndPassword
	PhaseCompleted
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var otpDigits = regexp.MustCompile(`^\d{6}$`)

// weakPasswords is a small deny list of passwords rejected regardless of
// what the backend would accept. Matched case-insensitively.
var weakPasswords = map[string]struct{}{
	"123456":    {},
	"password":  {},
	"123456789": {},
	"qwerty":    {},
	"abc123":    {},
}

// ResetFlow is an ephemeral, UI-local password-reset state machine:
// AwaitingEmail → AwaitingOTPAndPassword → Completed. It validates
// everything client-side before any network call and delegates the calls
// to the controller. Create one per reset attempt; it is not safe for
// concurrent use.
type ResetFlow struct {
	ctrl  *Controller
	phase ResetPhase
	email string
}

func (c *Controller) NewResetFlow() *ResetFlow {
	return &ResetFlow{ctrl: c}
}

func (f *ResetFlow) Phase() ResetPhase { return f.phase }

func (f *ResetFlow) Email() string { return f.email }

// RequestOTP validates the email shape and asks the backend to send an
// OTP. On success the flow advances to the OTP+password phase.
func (f *ResetFlow) RequestOTP(ctx context.Context, email string) (Result, error) {
	if msg := validateEmail(email); msg != "" {
		f.ctrl.notifier.Notify(msg, NotifyError)
		return Result{Message: msg}, nil
	}

	res, err := f.ctrl.ForgotPassword(ctx, email)
	if err != nil {
		return res, err
	}
	if res.Success {
		f.email = email
		f.phase = PhaseAwaitingOTPAndPassword
	}
	return res, nil
}

// Submit runs the ordered validation chain and, only if every check
// passes, confirms the reset with the backend. The first failing check
// short-circuits with its specific message and nothing is sent.
func (f *ResetFlow) Submit(ctx context.Context, otp, newPassword, confirmPassword string) (Result, error) {
	if f.phase != PhaseAwaitingOTPAndPassword {
		return Result{}, errNotAwaitingOTP
	}

	if msg := validateOTP(otp); msg != "" {
		f.ctrl.notifier.Notify(msg, NotifyError)
		return Result{Message: msg}, nil
	}
	if msg := validateNewPassword(newPassword, confirmPassword); msg != "" {
		f.ctrl.notifier.Notify(msg, NotifyError)
		return Result{Message: msg}, nil
	}

	res, err := f.ctrl.ResetPassword(ctx, f.email, otp, newPassword)
	if err != nil {
		return res, err
	}
	if res.Success {
		f.phase = PhaseCompleted
	}
	return res, nil
}

// Back returns to the email phase, keeping the email but discarding
// everything typed in phase two (the flow never stored it).
func (f *ResetFlow) Back() {
	f.phase = PhaseAwaitingEmail
}

func validateEmail(email string) string {
	if email == "" {
		return "Please enter your email address"
	}
	if !emailPattern.MatchString(email) {
		return "Please enter a valid email address"
	}
	return ""
}

// validateOTP checks presence, then length, then digit content.
func validateOTP(otp string) string {
	if otp == "" {
		return "Please enter the OTP sent to your email"
	}
	if len(otp) != 6 {
		return "OTP must be exactly 6 digits"
	}
	if !otpDigits.MatchString(otp) {
		return "OTP must contain only numbers"
	}
	return ""
}

func validateNewPassword(newPassword, confirmPassword string) string {
	if newPassword == "" {
		return "Please enter a new password"
	}
	if len(newPassword) < 6 {
		return "Password must be at least 6 characters long"
	}
	if len(newPassword) > 128 {
		return "Password must be less than 128 characters"
	}
	if confirmPassword == "" {
		return "Please confirm your new password"
	}
	if newPassword != confirmPassword {
		return "Passwords do not match"
	}
	if _, weak := weakPasswords[strings.ToLower(newPassword)]; weak {
		return "Please choose a stronger password"
	}
	return ""
}
