package dto

import "pitwall/internal/modules/team/domain"

type (
	Team         = domain.Team
	TeamMember   = domain.TeamMember
	TeamSession  = domain.TeamSession
	Role         = domain.Role
	Capabilities = domain.Capabilities
)

const DemoTeamID = domain.DemoTeamID

type CreateTeamInput struct {
	Name        string
	Description string
}

type InviteInput struct {
	Email string
	Role  string
}

type TeamSessionInput struct {
	Name        string
	Description string
	Emoji       string
	TrackID     string
}

// Access describes what the current user may do in one team.
type Access struct {
	Member       bool
	Role         Role
	Capabilities Capabilities
}
