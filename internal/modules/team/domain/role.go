package domain

import "fmt"

type Role string

const (
	RoleAdmin     Role = "admin"
	RoleCrewChief Role = "crew_chief"
	RoleDriver    Role = "driver"
	RoleMember    Role = "member"
)

var Roles = []Role{RoleAdmin, RoleCrewChief, RoleDriver, RoleMember}

func ParseRole(raw string) (Role, error) {
	role := Role(raw)
	if err := role.Validate(); err != nil {
		return "", err
	}
	return role, nil
}

func (r Role) Validate() error {
	switch r {
	case RoleAdmin, RoleCrewChief, RoleDriver, RoleMember:
		return nil
	default:
		return fmt.Errorf("unsupported role %q", string(r))
	}
}

func (r Role) Label() string {
	switch r {
	case RoleAdmin:
		return "Admin"
	case RoleCrewChief:
		return "Crew Chief"
	case RoleDriver:
		return "Driver"
	case RoleMember:
		return "Member"
	default:
		return string(r)
	}
}

type Capabilities struct {
	ManageMembers   bool
	EditMemberRoles bool
	ManageSessions  bool
	GrantAdmin      bool
}

// Permissions is the single source of what each role may do. Unknown roles
// get nothing.
func Permissions(role Role) Capabilities {
	switch role {
	case RoleAdmin:
		return Capabilities{ManageMembers: true, EditMemberRoles: true, ManageSessions: true, GrantAdmin: true}
	case RoleCrewChief:
		return Capabilities{EditMemberRoles: true, ManageSessions: true}
	default:
		return Capabilities{}
	}
}

func CanManageMembers(team Team, userID string) bool {
	return team.capabilitiesOf(userID).ManageMembers
}

func CanEditMemberRoles(team Team, userID string) bool {
	return team.capabilitiesOf(userID).EditMemberRoles
}

func CanManageSessions(team Team, userID string) bool {
	return team.capabilitiesOf(userID).ManageSessions
}

func (t Team) capabilitiesOf(userID string) Capabilities {
	member, ok := t.Member(userID)
	if !ok {
		return Capabilities{}
	}
	return Permissions(member.Role)
}
