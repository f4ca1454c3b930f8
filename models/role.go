package models

import "strings"

// Role is the acting capacity of an identity within the marketplace.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleProvider Role = "provider"
	RoleAdmin    Role = "admin"
)

// DefaultRole is used when no source yields a usable role.
const DefaultRole = RoleCustomer

// ParseRole normalizes a display or backend role token. The display
// vocabulary calls customers "client"; the backend only knows "customer".
func ParseRole(raw string) (Role, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "customer", "client":
		return RoleCustomer, true
	case "provider":
		return RoleProvider, true
	case "admin":
		return RoleAdmin, true
	}
	return "", false
}

func (r Role) String() string {
	return string(r)
}
