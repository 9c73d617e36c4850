package out

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"pitwall/internal/modules/team/domain"
	teamout "pitwall/internal/modules/team/port/out"
	"pitwall/internal/platform/clock"
	"pitwall/internal/platform/id"
)

// MockInviteClient stands in for the invitation service. Every invite is
// accepted after the configured latency.
type MockInviteClient struct {
	clock   clock.Clock
	idGen   id.Generator
	latency time.Duration
}

func NewMockInviteClient(clock clock.Clock, idGen id.Generator, latency time.Duration) teamout.InviteClient {
	return &MockInviteClient{clock: clock, idGen: idGen, latency: latency}
}

func (c *MockInviteClient) Invite(ctx context.Context, _ string, email string, role domain.Role) (domain.TeamMember, error) {
	if c.latency > 0 {
		timer := time.NewTimer(c.latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return domain.TeamMember{}, fmt.Errorf("invitation cancelled: %w", ctx.Err())
		case <-timer.C:
		}
	}
	return domain.TeamMember{
		ID:       c.idGen.New(),
		Name:     nameFromEmail(email),
		Email:    strings.ToLower(email),
		Role:     role,
		JoinedAt: c.clock.Now(),
	}, nil
}

// nameFromEmail turns "jane.doe@team.com" into "Jane Doe".
func nameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	parts := strings.FieldsFunc(local, func(r rune) bool {
		return r == '.' || r == '_' || r == '-' || r == '+'
	})
	for i, p := range parts {
		runes := []rune(strings.ToLower(p))
		runes[0] = unicode.ToUpper(runes[0])
		parts[i] = string(runes)
	}
	if len(parts) == 0 {
		return email
	}
	return strings.Join(parts, " ")
}
