// Package actor carries the caller identity that every workflow operation
// receives explicitly. Credentials are verified upstream; this package only
// models who is calling and what they may see.
package actor

import (
	"net/http"
	"strings"
)

type Role string

const (
	RoleCustomer   Role = "customer"
	RoleTechnician Role = "technician"
	RoleAdmin      Role = "admin"
)

var validRoles = map[Role]bool{
	RoleCustomer:   true,
	RoleTechnician: true,
	RoleAdmin:      true,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return validRoles[r]
}

// ParseRole is case-insensitive. Unknown or empty values map to customer so a
// malformed header can never grant staff rights.
func ParseRole(s string) Role {
	role := Role(strings.ToLower(strings.TrimSpace(s)))
	if role.IsValid() {
		return role
	}
	return RoleCustomer
}

// Actor is the identity attached to a request. The zero value is an anonymous guest.
type Actor struct {
	UserID string
	Role   Role
}

func Anonymous() Actor {
	return Actor{Role: RoleCustomer}
}

func New(userID string, role Role) Actor {
	if !role.IsValid() {
		role = RoleCustomer
	}
	return Actor{UserID: strings.TrimSpace(userID), Role: role}
}

func (a Actor) IsAuthenticated() bool {
	return a.UserID != ""
}

func (a Actor) IsAdmin() bool {
	return a.IsAuthenticated() && a.Role == RoleAdmin
}

// IsStaff is true for admins and technicians.
func (a Actor) IsStaff() bool {
	return a.IsAuthenticated() && (a.Role == RoleAdmin || a.Role == RoleTechnician)
}

// Owns reports whether ownerID identifies this actor. Nil or empty owners
// (guest records) are never owned by anyone.
func (a Actor) Owns(ownerID *string) bool {
	return a.IsAuthenticated() && ownerID != nil && *ownerID == a.UserID
}

// CanAccess is true for staff or the owner.
func (a Actor) CanAccess(ownerID *string) bool {
	return a.IsStaff() || a.Owns(ownerID)
}

// UserIDPtr returns nil for guests.
func (a Actor) UserIDPtr() *string {
	if !a.IsAuthenticated() {
		return nil
	}
	id := a.UserID
	return &id
}

// Authenticator establishes the actor for an incoming request. A request
// without credentials yields Anonymous and no error; only malformed or
// invalid credentials return an error.
type Authenticator interface {
	Authenticate(r *http.Request) (Actor, error)
}
