package domain

// Role is a coarse permission class.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Permission names a single guarded operation.
type Permission string

const (
	PermSweetRead     Permission = "sweet:read"
	PermSweetWrite    Permission = "sweet:write"
	PermSweetDelete   Permission = "sweet:delete"
	PermSweetPurchase Permission = "sweet:purchase"
	PermSweetRestock  Permission = "sweet:restock"
	PermMovementRead  Permission = "movement:read"
)

var userPermissions = []Permission{
	PermSweetRead,
	PermSweetWrite,
	PermSweetPurchase,
}

// rolePermissions is the static allowed-operations table. Anything not listed is denied.
var rolePermissions = map[Role]map[Permission]struct{}{
	RoleUser:  permissionSet(userPermissions...),
	RoleAdmin: permissionSet(append(userPermissions, PermSweetDelete, PermSweetRestock, PermMovementRead)...),
}

func permissionSet(perms ...Permission) map[Permission]struct{} {
	set := make(map[Permission]struct{}, len(perms))
	for _, p := range perms {
		set[p] = struct{}{}
	}
	return set
}

// ParseRole resolves a role name. An empty name maps to RoleUser.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case "", RoleUser:
		return RoleUser, true
	case RoleAdmin:
		return RoleAdmin, true
	}
	return "", false
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	_, ok := rolePermissions[r]
	return ok
}

// Can reports whether the role holds the permission.
func (r Role) Can(p Permission) bool {
	_, ok := rolePermissions[r][p]
	return ok
}
