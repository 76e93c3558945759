package interfaces

import "errors"

// Business-rule errors surfaced by repositories and services. Handlers check
// these with errors.Is and render them as non-fatal error embeds; anything
// else is treated as an internal failure.
var (
	// ErrAlreadySubscribed indicates the (role, user) pair already exists
	ErrAlreadySubscribed = errors.New("user already subscribed to role")

	// ErrNotSubscribed indicates the (role, user) pair does not exist
	ErrNotSubscribed = errors.New("user not subscribed to role")

	// ErrRoleNotFound indicates a role ID no longer resolves to a live
	// Discord role (store and platform state may have drifted)
	ErrRoleNotFound = errors.New("role not found")
)
