package domain

import "errors"

var ErrForbidden = errors.New("access forbidden")

// Operation identifies a protected API operation for access-control purposes.
type Operation string

const (
	OpListClients     Operation = "clients:list"
	OpBirthdayClients Operation = "clients:birthday"
	OpGetClient       Operation = "clients:get"
	OpCreateClient    Operation = "clients:create"
	OpUpdateClient    Operation = "clients:update"
	OpDeleteClient    Operation = "clients:delete"
)

// accessPolicy maps each operation to its allowed role set. The table is
// fixed at configuration time; per-request checks only consult it.
var accessPolicy = map[Operation][]Role{
	OpListClients:     {RoleAdmin, RoleModerator, RoleUser},
	OpBirthdayClients: {RoleAdmin, RoleModerator, RoleUser},
	OpGetClient:       {RoleAdmin, RoleModerator, RoleUser},
	OpCreateClient:    {RoleAdmin, RoleModerator, RoleUser},
	OpUpdateClient:    {RoleAdmin, RoleModerator},
	OpDeleteClient:    {RoleAdmin},
}

// Allowed reports whether a caller holding role may invoke op. Unknown
// operations are denied. Pure decision function, no side effects.
func Allowed(role Role, op Operation) bool {
	for _, r := range accessPolicy[op] {
		if r == role {
			return true
		}
	}
	return false
}
