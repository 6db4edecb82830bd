// Package models defines the client-side records mirroring the booking
// backend's JSON payloads. The authoritative copies live server-side; the
// client only hydrates, displays, and patches them.
package models

// Role enumerates the account roles known to the backend.
type Role string

const (
	RoleUser           Role = "user"
	RoleStationManager Role = "station manager"
	RoleSuperAdmin     Role = "super admin"
)

// User is the signed-in account as observed by the client.
type User struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Role          Role   `json:"role"`
	IsAdmin       bool   `json:"isAdmin"`
	IsBlocked     bool   `json:"isBlocked"`
	IsVerified    bool   `json:"isVerified"`
	Phone         string `json:"phone,omitempty"`
	VehicleNumber string `json:"vehicleNumber,omitempty"`
}

// HasAdminAccess reports whether the user should land on the admin
// dashboard. The isAdmin flag may be redundant with the role; either grants
// access.
func (u *User) HasAdminAccess() bool {
	return u.IsAdmin || u.Role == RoleSuperAdmin || u.Role == RoleStationManager
}

// UserPatch is a partial profile update. Nil fields are left untouched
// by Apply.
type UserPatch struct {
	Name          *string `json:"name,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	VehicleNumber *string `json:"vehicleNumber,omitempty"`
}

// Apply shallow-merges the patch into a copy of u and returns it.
func (p UserPatch) Apply(u User) User {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.VehicleNumber != nil {
		u.VehicleNumber = *p.VehicleNumber
	}
	return u
}

// Registration is the payload for creating a new account.
type Registration struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	Phone         string `json:"phone,omitempty"`
	VehicleNumber string `json:"vehicleNumber,omitempty"`
}
