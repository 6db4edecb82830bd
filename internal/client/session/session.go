// Package session owns the client's sign-in state. The Controller is the
// single writer of that state: it orchestrates the API gateway and the token
// store, decides success/failure messaging, and leaves navigation to its
// caller except where the contract demands a hard redirect (logout and the
// forced logout on a rejected credential).
package session

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/avolkov/chargecli/internal/client/api"
	"github.com/avolkov/chargecli/internal/client/models"
	"github.com/avolkov/chargecli/internal/client/oauth"
	"github.com/avolkov/chargecli/internal/client/repositories/tokens"
	"github.com/avolkov/chargecli/internal/common"
	"github.com/avolkov/chargecli/internal/logging"
)

// NotifyKind distinguishes transient success and error notifications.
type NotifyKind string

const (
	NotifySuccess NotifyKind = "success"
	NotifyError   NotifyKind = "error"
)

// Notifier is the outbound notification port. Notify is a transient toast;
// Alert is the blocking tier reserved for messages like a blocked account
// or rejected credentials.
type Notifier interface {
	Notify(message string, kind NotifyKind)
	Alert(message string)
}

// Navigator performs the "browser navigation" side effects of the session
// contract.
type Navigator interface {
	Redirect(route string)
}

// Application routes used as navigation targets.
const (
	RouteRoot           = "/"
	RouteLogin          = "/login"
	RouteUserDashboard  = "/user/dashboard"
	RouteAdminDashboard = "/admin/dashboard"
)

// Gateway is the slice of the API surface the controller needs.
type Gateway interface {
	Login(ctx context.Context, email, password string, asAdmin bool) (*api.AuthResponse, error)
	Register(ctx context.Context, reg models.Registration, asAdmin bool) (*api.RegisterResult, error)
	VerifyGoogleCredential(ctx context.Context, token string) (*api.AuthResponse, error)
	RequestPasswordReset(ctx context.Context, email string) (string, error)
	ConfirmPasswordReset(ctx context.Context, email, otp, newPassword string) (string, error)
	GoogleEntryURL() string
}

// Result is what session operations hand back to the caller for form-level
// handling. A failed operation has already been reported through the
// Notifier; the caller only decides what to do next (retry, navigate, ...).
type Result struct {
	Success           bool
	Message           string
	User              *models.User
	NeedsVerification bool
}

const blockedAlertMessage = "Your account is blocked. Contact admin."

// Controller is the process-wide session singleton. All mutations go
// through its mutex; concurrent readers see credential and user change
// together or not at all.
type Controller struct {
	mu             sync.Mutex
	user           *models.User
	credential     string
	loadingInitial bool

	gw       Gateway
	store    tokens.Store
	notifier Notifier
	nav      Navigator
	log      logging.Logger
	now      func() time.Time

	// Re-submission guards: a second call while one is outstanding is a
	// no-op, mirroring a disabled submit button.
	loginBusy    atomic.Bool
	googleBusy   atomic.Bool
	registerBusy atomic.Bool
	resetBusy    atomic.Bool
}

func New(gw Gateway, store tokens.Store, notifier Notifier, nav Navigator, log logging.Logger) *Controller {
	return &Controller{
		gw:             gw,
		store:          store,
		notifier:       notifier,
		nav:            nav,
		log:            log,
		now:            time.Now,
		loadingInitial: true,
	}
}

// Rehydrate restores the persisted session at startup. A missing, expired,
// or corrupted record leaves the session anonymous; only infrastructure
// failures are returned. LoadingInitial reports false once this completes.
func (c *Controller) Rehydrate(ctx context.Context) error {
	defer func() {
		c.mu.Lock()
		c.loadingInitial = false
		c.mu.Unlock()
	}()

	credential, user, err := c.store.Load(ctx)
	if err != nil {
		if errors.Is(err, common.ErrSessionCorrupted) {
			c.log.Warn(ctx, "persisted session unreadable, discarding")
			return c.store.Clear(ctx)
		}
		return fmt.Errorf("load session: %w", err)
	}
	if credential == "" || user == nil {
		return nil
	}

	if credentialExpired(credential, c.now()) {
		c.log.Info(ctx, "stored credential expired, starting anonymous", "email", user.Email)
		return c.store.Clear(ctx)
	}

	c.mu.Lock()
	c.user = user
	c.credential = credential
	c.mu.Unlock()

	c.log.Info(ctx, "session restored", "email", user.Email, "role", user.Role)
	return nil
}

// Login authenticates with email/password. On success the session becomes
// Authenticated and is persisted; on failure it stays Anonymous and the
// classified message is both reported and returned. Navigation is the
// caller's job.
func (c *Controller) Login(ctx context.Context, email, password string, asAdmin bool) (Result, error) {
	if !c.loginBusy.CompareAndSwap(false, true) {
		return Result{}, common.ErrOperationInFlight
	}
	defer c.loginBusy.Store(false)

	resp, err := c.gw.Login(ctx, email, password, asAdmin)
	if err != nil {
		msg := failureMessage(err)
		c.log.Warn(ctx, "login failed", "email", email, "asAdmin", asAdmin, "error", err)
		c.report(msg)
		return Result{Message: msg}, nil
	}

	if err := c.hydrate(ctx, resp.Token, &resp.User); err != nil {
		return Result{}, err
	}

	c.notifier.Notify(fmt.Sprintf("Welcome back, %s!", resp.User.Name), NotifySuccess)
	return Result{Success: true, User: c.CurrentUser()}, nil
}

// GoogleLoginPopup completes the embedded sign-in flow: the third-party
// widget already produced a provider credential, which is exchanged for a
// backend session. Same transition contract as Login.
func (c *Controller) GoogleLoginPopup(ctx context.Context, providerCredential string) (Result, error) {
	if !c.googleBusy.CompareAndSwap(false, true) {
		return Result{}, common.ErrOperationInFlight
	}
	defer c.googleBusy.Store(false)

	resp, err := c.gw.VerifyGoogleCredential(ctx, providerCredential)
	if err != nil {
		msg := failureMessage(err)
		if msg == api.MsgUnknown {
			msg = "Google authentication failed"
		}
		c.log.Warn(ctx, "google sign-in failed", "error", err)
		c.report(msg)
		return Result{Message: msg}, nil
	}

	if err := c.hydrate(ctx, resp.Token, &resp.User); err != nil {
		return Result{}, err
	}

	c.notifier.Notify(fmt.Sprintf("Welcome back, %s!", resp.User.Name), NotifySuccess)
	return Result{Success: true, User: c.CurrentUser()}, nil
}

// GoogleRedirectURL builds the backend's OAuth entry URL for the redirect
// flow. Directing the user agent there is a side effect owned by the
// caller; no session transition happens until HandleGoogleCallback.
func (c *Controller) GoogleRedirectURL(redirectURI string) string {
	entry := c.gw.GoogleEntryURL()
	if redirectURI == "" {
		return entry
	}
	return entry + "?redirect_uri=" + url.QueryEscape(redirectURI)
}

// HandleGoogleCallback consumes the provider redirect's query parameters
// exactly once. A provider error fails the flow (with the blocking alert
// for blocked accounts); a well-formed token+user pair authenticates the
// session exactly like Login.
func (c *Controller) HandleGoogleCallback(ctx context.Context, params url.Values) (Result, error) {
	if !c.googleBusy.CompareAndSwap(false, true) {
		return Result{}, common.ErrOperationInFlight
	}
	defer c.googleBusy.Store(false)

	res, err := oauth.ParseCallback(params)
	if err != nil {
		msg := "Google authentication callback failed"
		c.log.Warn(ctx, "google callback rejected", "error", err)
		c.notifier.Notify(msg, NotifyError)
		return Result{Message: msg}, nil
	}

	if res.Failed() {
		c.log.Warn(ctx, "google callback carried provider error", "code", res.Err)
		if res.Blocked() {
			c.notifier.Alert(blockedAlertMessage)
		} else {
			c.notifier.Notify(res.ErrDescription, NotifyError)
		}
		return Result{Message: res.ErrDescription}, nil
	}

	if err := c.hydrate(ctx, res.Token, res.User); err != nil {
		return Result{}, err
	}

	c.notifier.Notify(fmt.Sprintf("Welcome back, %s!", res.User.Name), NotifySuccess)
	return Result{Success: true, User: c.CurrentUser()}, nil
}

// Register creates an account. Registration never authenticates the
// session; duplicate-key rejections are rewritten into friendlier text.
func (c *Controller) Register(ctx context.Context, reg models.Registration, asAdmin bool) (Result, error) {
	if !c.registerBusy.CompareAndSwap(false, true) {
		return Result{}, common.ErrOperationInFlight
	}
	defer c.registerBusy.Store(false)

	resp, err := c.gw.Register(ctx, reg, asAdmin)
	if err != nil {
		msg := classifyRegisterError(err)
		c.log.Warn(ctx, "registration failed", "email", reg.Email, "error", err)
		c.notifier.Notify(msg, NotifyError)
		return Result{Message: msg}, nil
	}

	if asAdmin {
		c.notifier.Notify("Admin registration successful! Please login to continue.", NotifySuccess)
	} else {
		c.notifier.Notify("Registration successful! Please check your email to verify your account before logging in.", NotifySuccess)
	}

	user := resp.User
	return Result{
		Success:           true,
		Message:           resp.Message,
		User:              &user,
		NeedsVerification: resp.NeedsVerification,
	}, nil
}

// Logout drops the session unconditionally and hard-redirects to the
// application root so no in-memory state survives. Calling it while
// already Anonymous is a safe no-op that still redirects.
func (c *Controller) Logout(ctx context.Context) error {
	c.mu.Lock()
	c.user = nil
	c.credential = ""
	c.mu.Unlock()

	err := c.store.Clear(ctx)
	if err != nil {
		c.log.Error(ctx, "clearing token store failed", "error", err)
	}

	c.notifier.Notify("Logged out successfully!", NotifySuccess)
	c.nav.Redirect(RouteRoot)
	return err
}

// ForceLogout is the out-of-band transition fired when any authenticated
// request comes back 401. A stale credential is never retried silently:
// the session and the store are destroyed and the user lands on the login
// page.
func (c *Controller) ForceLogout(ctx context.Context) {
	c.mu.Lock()
	c.user = nil
	c.credential = ""
	c.mu.Unlock()

	if err := c.store.Clear(ctx); err != nil {
		c.log.Error(ctx, "clearing token store failed", "error", err)
	}

	c.log.Warn(ctx, "credential rejected by backend, session destroyed")
	c.nav.Redirect(RouteLogin)
}

// UpdateUserProfile shallow-merges the patch into the current user and
// re-persists the pair. Returns common.ErrNotAuthenticated while Anonymous.
func (c *Controller) UpdateUserProfile(ctx context.Context, patch models.UserPatch) error {
	c.mu.Lock()
	if c.user == nil {
		c.mu.Unlock()
		return common.ErrNotAuthenticated
	}
	updated := patch.Apply(*c.user)
	credential := c.credential
	c.mu.Unlock()

	if err := c.store.Save(ctx, credential, &updated); err != nil {
		return fmt.Errorf("persist profile update: %w", err)
	}

	c.mu.Lock()
	c.user = &updated
	c.mu.Unlock()
	return nil
}

// ForgotPassword requests a reset OTP. Does not affect session state.
func (c *Controller) ForgotPassword(ctx context.Context, email string) (Result, error) {
	if !c.resetBusy.CompareAndSwap(false, true) {
		return Result{}, common.ErrOperationInFlight
	}
	defer c.resetBusy.Store(false)

	msg, err := c.gw.RequestPasswordReset(ctx, email)
	if err != nil {
		m := failureMessage(err)
		c.log.Warn(ctx, "password reset request failed", "email", email, "error", err)
		c.notifier.Notify(m, NotifyError)
		return Result{Message: m}, nil
	}

	c.notifier.Notify("OTP sent to your email. It is valid for 10 minutes.", NotifySuccess)
	return Result{Success: true, Message: msg}, nil
}

// ResetPassword submits the OTP and new password. Does not affect session
// state.
func (c *Controller) ResetPassword(ctx context.Context, email, otp, newPassword string) (Result, error) {
	if !c.resetBusy.CompareAndSwap(false, true) {
		return Result{}, common.ErrOperationInFlight
	}
	defer c.resetBusy.Store(false)

	msg, err := c.gw.ConfirmPasswordReset(ctx, email, otp, newPassword)
	if err != nil {
		m := failureMessage(err)
		c.log.Warn(ctx, "password reset failed", "email", email, "error", err)
		c.notifier.Notify(m, NotifyError)
		return Result{Message: m}, nil
	}

	c.notifier.Notify("Password reset successfully! You can now login with your new password.", NotifySuccess)
	return Result{Success: true, Message: msg}, nil
}

// hydrate persists the pair first, then publishes both fields under the
// lock so readers never observe one without the other.
func (c *Controller) hydrate(ctx context.Context, credential string, user *models.User) error {
	if err := c.store.Save(ctx, credential, user); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	c.mu.Lock()
	u := *user
	c.user = &u
	c.credential = credential
	c.mu.Unlock()

	c.log.Info(ctx, "session established", "email", user.Email, "role", user.Role)
	return nil
}

// report routes a failure message to the right notification tier.
func (c *Controller) report(msg string) {
	if isBlockingMessage(msg) {
		c.notifier.Alert(msg)
		return
	}
	c.notifier.Notify(msg, NotifyError)
}

// CurrentUser returns a copy of the signed-in user, or nil.
func (c *Controller) CurrentUser() *models.User {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.user == nil {
		return nil
	}
	u := *c.user
	return &u
}

// Credential returns the current bearer token, or "".
func (c *Controller) Credential() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.credential
}

func (c *Controller) IsAuthenticated() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.user != nil
}

func (c *Controller) IsAdmin() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.user != nil && c.user.HasAdminAccess()
}

// LoadingInitial reports whether startup rehydration is still in progress.
func (c *Controller) LoadingInitial() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loadingInitial
}

// DashboardRoute is the role-appropriate landing route for the current
// user, or the login route while Anonymous.
func (c *Controller) DashboardRoute() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch {
	case c.user == nil:
		return RouteLogin
	case c.user.HasAdminAccess():
		return RouteAdminDashboard
	default:
		return RouteUserDashboard
	}
}

// failureMessage maps a gateway failure to user-facing text. The gateway
// already substitutes fixed fallbacks per error class, so classified
// failures pass their message through.
func failureMessage(err error) string {
	if apiErr, ok := api.AsError(err); ok {
		return apiErr.Message
	}
	return api.MsgUnknown
}

// isBlockingMessage detects the phrases escalated to the blocking alert
// tier instead of a transient notification.
func isBlockingMessage(msg string) bool {
	m := strings.ToLower(msg)
	return strings.Contains(m, "blocked") ||
		strings.Contains(m, "contact admin") ||
		strings.Contains(m, "invalid credentials")
}

// classifyRegisterError rewrites backend duplicate-key rejections into
// friendlier text. The backend ships no structured codes, so this matches
// substrings; it is deliberately the only place that does.
func classifyRegisterError(err error) string {
	apiErr, ok := api.AsError(err)
	if !ok {
		return "Registration failed. Please try again."
	}

	m := strings.ToLower(apiErr.Message)
	switch {
	case strings.Contains(m, "already exists"):
		return "This email is already registered. Please login instead."
	case strings.Contains(m, "duplicate entry") && strings.Contains(m, "vehicle_number"):
		return "This vehicle number is already registered. Please use a different vehicle number."
	case strings.Contains(m, "duplicate entry"):
		return "This information is already registered. Please check your details."
	case apiErr.Kind == api.KindBadRequest, apiErr.Kind == api.KindNetwork:
		return apiErr.Message
	default:
		return "Registration failed. Please try again."
	}
}
