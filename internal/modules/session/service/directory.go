package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	recordsdto "pitwall/internal/modules/records/dto"
	"pitwall/internal/modules/session/domain"
	"pitwall/internal/modules/session/dto"
	sessionout "pitwall/internal/modules/session/port/out"
	"pitwall/internal/platform/clock"
	apperrors "pitwall/internal/platform/errors"
	"pitwall/internal/platform/id"
)

// DirectoryService owns the session list, the active pointer and the demo
// entry. It never touches the working buffer.
type DirectoryService struct {
	clock   clock.Clock
	idGen   id.Generator
	dir     sessionout.DirectoryStore
	pointer sessionout.ActivePointerStore
	vault   sessionout.VaultStore
	demo    sessionout.DemoVisibilityStore
}

func NewDirectoryService(
	clock clock.Clock,
	idGen id.Generator,
	dir sessionout.DirectoryStore,
	pointer sessionout.ActivePointerStore,
	vault sessionout.VaultStore,
	demo sessionout.DemoVisibilityStore,
) *DirectoryService {
	return &DirectoryService{clock: clock, idGen: idGen, dir: dir, pointer: pointer, vault: vault, demo: demo}
}

// List returns the directory, restoring the demo entry and re-seeding the
// demo vault slot when either is missing. A directory that cannot be read
// is an error and nothing is written.
func (s *DirectoryService) List(ctx context.Context) ([]domain.SessionMetadata, error) {
	list, _, err := s.dir.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load sessions: %w", err)
	}
	now := s.clock.Now()
	if domain.FindSession(list, domain.DemoSessionID) < 0 {
		list = append([]domain.SessionMetadata{domain.DemoMetadata(now)}, list...)
		if err := s.dir.Save(ctx, list); err != nil {
			return nil, fmt.Errorf("restore demo session: %w", err)
		}
	}
	seeded, err := s.vault.Has(ctx, domain.DemoSessionID)
	if err != nil {
		return nil, fmt.Errorf("check demo session: %w", err)
	}
	if !seeded {
		if err := s.vault.Set(ctx, domain.DemoSessionID, domain.DemoAppData(now)); err != nil {
			return nil, fmt.Errorf("seed demo session: %w", err)
		}
	}
	return list, nil
}

func (s *DirectoryService) Visible(ctx context.Context) ([]domain.SessionMetadata, error) {
	list, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	if !s.demo.Hidden(ctx) {
		return list, nil
	}
	return slices.DeleteFunc(slices.Clone(list), func(m domain.SessionMetadata) bool { return m.IsDemo }), nil
}

func (s *DirectoryService) Get(ctx context.Context, id string) (domain.SessionMetadata, bool, error) {
	list, err := s.List(ctx)
	if err != nil {
		return domain.SessionMetadata{}, false, err
	}
	idx := domain.FindSession(list, id)
	if idx < 0 {
		return domain.SessionMetadata{}, false, nil
	}
	return list[idx], true, nil
}

// Create registers a session and seeds its vault slot with an empty snapshot.
func (s *DirectoryService) Create(ctx context.Context, input dto.CreateInput) (domain.SessionMetadata, error) {
	meta, err := s.Register(ctx, input)
	if err != nil {
		return domain.SessionMetadata{}, err
	}
	data := domain.NewAppData(meta.ID, recordsdto.EmptySnapshot(), meta.CreatedAt)
	if err := s.vault.Set(ctx, meta.ID, data); err != nil {
		return domain.SessionMetadata{}, fmt.Errorf("seed session %s: %w", meta.ID, err)
	}
	return meta, nil
}

// Register appends a directory entry without writing a vault slot.
func (s *DirectoryService) Register(ctx context.Context, input dto.CreateInput) (domain.SessionMetadata, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return domain.SessionMetadata{}, fmt.Errorf("%w: session name is required", apperrors.ErrInvalidInput)
	}
	list, err := s.List(ctx)
	if err != nil {
		return domain.SessionMetadata{}, err
	}
	now := s.clock.Now()
	meta := domain.SessionMetadata{
		ID:             s.idGen.New(),
		Name:           name,
		Description:    strings.TrimSpace(input.Description),
		Emoji:          strings.TrimSpace(input.Emoji),
		CreatedAt:      now,
		LastAccessedAt: now,
	}
	list = append(list, meta)
	if err := s.dir.Save(ctx, list); err != nil {
		return domain.SessionMetadata{}, fmt.Errorf("save sessions: %w", err)
	}
	return meta, nil
}

func (s *DirectoryService) Update(ctx context.Context, id string, patch dto.MetadataPatch) (domain.SessionMetadata, bool, error) {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return domain.SessionMetadata{}, false, fmt.Errorf("%w: session name is required", apperrors.ErrInvalidInput)
	}
	list, err := s.List(ctx)
	if err != nil {
		return domain.SessionMetadata{}, false, err
	}
	idx := domain.FindSession(list, id)
	if idx < 0 {
		return domain.SessionMetadata{}, false, nil
	}
	meta := &list[idx]
	if patch.Name != nil {
		meta.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Description != nil {
		meta.Description = strings.TrimSpace(*patch.Description)
	}
	if patch.Emoji != nil {
		meta.Emoji = strings.TrimSpace(*patch.Emoji)
	}
	meta.LastAccessedAt = s.clock.Now()
	if err := s.dir.Save(ctx, list); err != nil {
		return domain.SessionMetadata{}, false, fmt.Errorf("save sessions: %w", err)
	}
	return *meta, true, nil
}

// Touch stamps lastAccessedAt. Ids outside the directory, such as team
// markers, are ignored.
func (s *DirectoryService) Touch(ctx context.Context, id string) error {
	list, err := s.List(ctx)
	if err != nil {
		return err
	}
	idx := domain.FindSession(list, id)
	if idx < 0 {
		return nil
	}
	list[idx].LastAccessedAt = s.clock.Now()
	if err := s.dir.Save(ctx, list); err != nil {
		return fmt.Errorf("save sessions: %w", err)
	}
	return nil
}

func (s *DirectoryService) Delete(ctx context.Context, id string) (bool, error) {
	if domain.IsDemo(id) {
		return false, apperrors.ErrDemoProtected
	}
	list, err := s.List(ctx)
	if err != nil {
		return false, err
	}
	idx := domain.FindSession(list, id)
	if idx < 0 {
		return false, nil
	}
	list = slices.Delete(list, idx, idx+1)
	if err := s.dir.Save(ctx, list); err != nil {
		return false, fmt.Errorf("save sessions: %w", err)
	}
	if err := s.vault.Remove(ctx, id); err != nil {
		return false, fmt.Errorf("remove session data %s: %w", id, err)
	}
	if active, ok := s.pointer.Get(ctx); ok && active == id {
		if err := s.pointer.Clear(ctx); err != nil {
			return false, fmt.Errorf("clear active session: %w", err)
		}
	}
	return true, nil
}

func (s *DirectoryService) Active(ctx context.Context) (string, bool) {
	return s.pointer.Get(ctx)
}

func (s *DirectoryService) SetActive(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: session id is required", apperrors.ErrInvalidInput)
	}
	if err := s.pointer.Set(ctx, id); err != nil {
		return fmt.Errorf("set active session: %w", err)
	}
	return nil
}

func (s *DirectoryService) ClearActive(ctx context.Context) error {
	if err := s.pointer.Clear(ctx); err != nil {
		return fmt.Errorf("clear active session: %w", err)
	}
	return nil
}

// Initialized reports whether the directory has ever been persisted.
func (s *DirectoryService) Initialized(ctx context.Context) (bool, error) {
	_, ok, err := s.dir.Load(ctx)
	if err != nil {
		return false, fmt.Errorf("load sessions: %w", err)
	}
	return ok, nil
}

// Reset empties the directory and clears the active pointer. Vault slots are
// left to the caller.
func (s *DirectoryService) Reset(ctx context.Context) error {
	if err := s.dir.Save(ctx, []domain.SessionMetadata{}); err != nil {
		return fmt.Errorf("clear sessions: %w", err)
	}
	if err := s.pointer.Clear(ctx); err != nil {
		return fmt.Errorf("clear active session: %w", err)
	}
	return nil
}

func (s *DirectoryService) SetDemoHidden(ctx context.Context, hidden bool) error {
	if err := s.demo.SetHidden(ctx, hidden); err != nil {
		return fmt.Errorf("update demo visibility: %w", err)
	}
	return nil
}

func (s *DirectoryService) DemoHidden(ctx context.Context) bool {
	return s.demo.Hidden(ctx)
}
