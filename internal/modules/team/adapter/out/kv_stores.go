package out

import (
	"context"

	hclog "github.com/hashicorp/go-hclog"

	sessiondto "pitwall/internal/modules/session/dto"
	"pitwall/internal/modules/team/domain"
	teamout "pitwall/internal/modules/team/port/out"
	"pitwall/internal/platform/keys"
	"pitwall/internal/platform/kv"
	"pitwall/internal/platform/logging"
)

type KVTeamStore struct {
	store kv.Store
	log   hclog.Logger
}

func NewKVTeamStore(store kv.Store, log hclog.Logger) teamout.TeamStore {
	return &KVTeamStore{store: store, log: logging.OrDiscard(log).Named("teams")}
}

func (s *KVTeamStore) Load(ctx context.Context) []domain.Team {
	teams, _ := kv.ReadJSON[[]domain.Team](ctx, s.store, s.log, keys.Teams)
	return teams
}

func (s *KVTeamStore) Save(ctx context.Context, teams []domain.Team) error {
	if teams == nil {
		teams = []domain.Team{}
	}
	return kv.WriteJSON(ctx, s.store, keys.Teams, teams)
}

type KVTeamVault struct {
	store kv.Store
	log   hclog.Logger
}

func NewKVTeamVault(store kv.Store, log hclog.Logger) teamout.TeamVault {
	return &KVTeamVault{store: store, log: logging.OrDiscard(log).Named("team-vault")}
}

func slotKey(teamID, sessionID string) string {
	return keys.TeamSessionData + keys.TeamSlotID(teamID, sessionID)
}

func (v *KVTeamVault) Get(ctx context.Context, teamID, sessionID string) (sessiondto.AppData, bool) {
	return kv.ReadJSON[sessiondto.AppData](ctx, v.store, v.log, slotKey(teamID, sessionID))
}

func (v *KVTeamVault) Set(ctx context.Context, teamID, sessionID string, data sessiondto.AppData) error {
	return kv.WriteJSON(ctx, v.store, slotKey(teamID, sessionID), data)
}

func (v *KVTeamVault) Remove(ctx context.Context, teamID, sessionID string) error {
	return v.store.Remove(ctx, slotKey(teamID, sessionID))
}
