// Package oauth handles the Google sign-in redirect flow: parsing the
// provider's callback query parameters and catching the redirect on a
// loopback listener, which plays the role the browser callback route plays
// in a web deployment.
package oauth

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/avolkov/chargecli/internal/client/models"
	"github.com/avolkov/chargecli/internal/common"
)

// ErrorAccountBlocked is the provider error code the backend emits for a
// blocked account; callers escalate it to a blocking alert.
const ErrorAccountBlocked = "account_blocked"

// CallbackResult is the value parsed from a provider redirect. It is
// consumed exactly once to hydrate the session and never persisted.
type CallbackResult struct {
	Token          string
	User           *models.User
	Err            string
	ErrDescription string
}

// Failed reports whether the provider returned an error instead of a
// session.
func (r *CallbackResult) Failed() bool { return r.Err != "" }

// Blocked reports whether the failure indicates a blocked account.
func (r *CallbackResult) Blocked() bool {
	return r.Err == ErrorAccountBlocked || strings.Contains(r.ErrDescription, "blocked")
}

// ParseCallback extracts a CallbackResult from the callback query
// parameters.
//
// When an error parameter is present the result carries the provider error
// and no token. Otherwise both token and user must be present and the user
// payload must be URL-decodable JSON; anything else is reported as
// common.ErrCallbackMalformed.
func ParseCallback(params url.Values) (*CallbackResult, error) {
	if errParam := params.Get("error"); errParam != "" {
		desc := params.Get("error_description")
		if desc == "" {
			desc = "Authentication failed"
		}
		return &CallbackResult{Err: errParam, ErrDescription: desc}, nil
	}

	token := params.Get("token")
	userStr := params.Get("user")
	if token == "" || userStr == "" {
		return nil, fmt.Errorf("%w: missing token or user", common.ErrCallbackMalformed)
	}

	decoded, err := url.QueryUnescape(userStr)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", common.ErrCallbackMalformed, err)
	}

	var user models.User
	if err := json.Unmarshal([]byte(decoded), &user); err != nil {
		return nil, fmt.Errorf("%w: %s", common.ErrCallbackMalformed, err)
	}

	return &CallbackResult{Token: token, User: &user}, nil
}
