// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleCustomer indicates a shopper browsing and reviewing products.
	RoleCustomer Role = "customer"
	// RoleStoreOwner indicates a user that runs a store.
	RoleStoreOwner Role = "store_owner"
	// RoleUnknown is assigned to any role identifier outside the known set.
	RoleUnknown Role = "unknown"
)

// Stored role identifiers.
const (
	RoleIDCustomer   = 1
	RoleIDStoreOwner = 2
)

// RoleFromID classifies a stored role identifier.
func RoleFromID(id int) Role {
	switch id {
	case RoleIDCustomer:
		return RoleCustomer
	case RoleIDStoreOwner:
		return RoleStoreOwner
	default:
		return RoleUnknown
	}
}

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is one of the known values.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleStoreOwner:
		return true
	default:
		return false
	}
}

// Label returns the name shown to app users.
func (r Role) Label() string {
	switch r {
	case RoleCustomer:
		return "Cliente"
	case RoleStoreOwner:
		return "Tienda"
	default:
		return "Desconocido"
	}
}
