// Package accounts manages registered user identities and their credentials.
package accounts

import (
	"strings"
	"time"
)

// Role is the closed set of roles an identity can hold.
type Role string

const (
	RoleOwner  Role = "OWNER"
	RoleAdmin  Role = "ADMIN"
	RoleMember Role = "MEMBER"
	RoleViewer Role = "VIEWER"
)

// Roles lists every valid role in declaration order.
func Roles() []Role {
	return []Role{RoleOwner, RoleAdmin, RoleMember, RoleViewer}
}

// ParseRole maps free text onto the role enum, case-insensitively.
// The second return is false for anything outside the four valid roles.
func ParseRole(text string) (Role, bool) {
	switch Role(strings.ToUpper(strings.TrimSpace(text))) {
	case RoleOwner:
		return RoleOwner, true
	case RoleAdmin:
		return RoleAdmin, true
	case RoleMember:
		return RoleMember, true
	case RoleViewer:
		return RoleViewer, true
	default:
		return "", false
	}
}

// Identity represents a registered user account.
type Identity struct {
	ID           int64
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
