package cli

import (
	"context"
	"fmt"

	"github.com/avolkov/chargecli/internal/client/models"
	"github.com/avolkov/chargecli/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates as a regular user.
// On success the user lands on their dashboard.
func (a *App) Login(ctx context.Context) error {
	return a.login(ctx, false)
}

// AdminLogin authenticates against the admin endpoint.
func (a *App) AdminLogin(ctx context.Context) error {
	return a.login(ctx, true)
}

func (a *App) login(ctx context.Context, asAdmin bool) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	res, err := a.session.Login(ctx, email, string(password), asAdmin)
	if err != nil {
		return err
	}
	if res.Success {
		a.nav.Redirect(a.session.DashboardRoute())
	}
	return nil
}

// Register prompts for the registration form and creates an account. A
// successful registration never signs the user in; regular users are told
// to verify their email first.
func (a *App) Register(ctx context.Context) error {
	admin, err := getSimpleText(a.reader, "Register as admin? (y/N)", a.out)
	if err != nil {
		return err
	}
	asAdmin := admin == "y" || admin == "Y"

	var reg models.Registration
	if reg.Name, err = getSimpleText(a.reader, "Enter name", a.out); err != nil {
		return err
	}
	if reg.Email, err = getSimpleText(a.reader, "Enter email", a.out); err != nil {
		return err
	}

	password, err := getPassword(a.out, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	reg.Password = string(password)

	if !asAdmin {
		if reg.Phone, err = getSimpleText(a.reader, "Enter phone", a.out); err != nil {
			return err
		}
		if reg.VehicleNumber, err = getSimpleText(a.reader, "Enter vehicle number", a.out); err != nil {
			return err
		}
	}

	_, err = a.session.Register(ctx, reg, asAdmin)
	return err
}

func (a *App) Logout(ctx context.Context) error {
	return a.session.Logout(ctx)
}

func (a *App) Whoami(ctx context.Context) error {
	u := a.session.CurrentUser()
	if u == nil {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	fmt.Fprintf(a.out, "%s <%s> role=%s\n", u.Name, u.Email, u.Role)
	return nil
}
