// Package cli provides the interactive EV charging-station command-line client.
//
// It wires configuration, the encrypted local session store, the backend
// REST gateway, and an interactive REPL. On startup the persisted session
// is rehydrated so a previous login survives restarts.
//
// Key features:
//   - Login / admin login / registration / logout
//   - Google sign-in (embedded credential or loopback redirect flow)
//   - Two-phase password reset via email OTP
//   - Browse stations and slots, create and manage bookings
//   - Admin booking moderation and user management
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
