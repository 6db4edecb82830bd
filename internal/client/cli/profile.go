package cli

import (
	"context"
	"fmt"

	"github.com/avolkov/chargecli/internal/client/models"
)

func (a *App) Profile(ctx context.Context) error {
	u, err := a.users.Profile(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}
	fmt.Fprintf(a.out, "Name:     %s\n", u.Name)
	fmt.Fprintf(a.out, "Email:    %s\n", u.Email)
	fmt.Fprintf(a.out, "Role:     %s\n", u.Role)
	fmt.Fprintf(a.out, "Phone:    %s\n", u.Phone)
	fmt.Fprintf(a.out, "Vehicle:  %s\n", u.VehicleNumber)
	return nil
}

// UpdateProfile prompts for the editable fields; an empty answer keeps the
// current value.
func (a *App) UpdateProfile(ctx context.Context) error {
	var patch models.UserPatch

	name, err := getSimpleText(a.reader, "New name (empty to keep)", a.out)
	if err != nil {
		return err
	}
	if name != "" {
		patch.Name = &name
	}

	phone, err := getSimpleText(a.reader, "New phone (empty to keep)", a.out)
	if err != nil {
		return err
	}
	if phone != "" {
		patch.Phone = &phone
	}

	vehicle, err := getSimpleText(a.reader, "New vehicle number (empty to keep)", a.out)
	if err != nil {
		return err
	}
	if vehicle != "" {
		patch.VehicleNumber = &vehicle
	}

	if patch.Name == nil && patch.Phone == nil && patch.VehicleNumber == nil {
		fmt.Fprintln(a.out, "Nothing to update")
		return nil
	}

	updated, err := a.users.UpdateProfile(ctx, patch)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}
	fmt.Fprintf(a.out, "Profile updated for %s\n", updated.Email)
	return nil
}

// Verify redeems the email verification token sent after registration.
func (a *App) Verify(ctx context.Context, token string) error {
	msg, err := a.users.VerifyEmail(ctx, token)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}
	fmt.Fprintln(a.out, msg)
	return nil
}

func (a *App) Users(ctx context.Context) error {
	users, err := a.users.List(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}
	for _, u := range users {
		blocked := ""
		if u.IsBlocked {
			blocked = "  [blocked]"
		}
		fmt.Fprintf(a.out, "%s  %s <%s>  role=%s%s\n", u.ID, u.Name, u.Email, u.Role, blocked)
	}
	return nil
}

func (a *App) Block(ctx context.Context, id string) error {
	if err := a.users.Block(ctx, id); err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}
	fmt.Fprintf(a.out, "User %s blocked\n", id)
	return nil
}

func (a *App) Unblock(ctx context.Context, id string) error {
	if err := a.users.Unblock(ctx, id); err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}
	fmt.Fprintf(a.out, "User %s unblocked\n", id)
	return nil
}
