package user

type Role string

const (
	RoleCustomer Role = "customer"
	RoleOwner    Role = "owner"
)

const DefaultRole = RoleCustomer

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleOwner:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
