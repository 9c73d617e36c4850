package service

import (
	"context"
	"strings"

	"pitwall/internal/modules/records/domain"
	"pitwall/internal/modules/records/dto"
	recordsout "pitwall/internal/modules/records/port/out"
	"pitwall/internal/platform/clock"
	"pitwall/internal/platform/id"
)

type SetupService struct {
	clock clock.Clock
	idGen id.Generator
	store recordsout.BufferStore
}

func NewSetupService(clock clock.Clock, idGen id.Generator, store recordsout.BufferStore) *SetupService {
	return &SetupService{clock: clock, idGen: idGen, store: store}
}

func (s *SetupService) List(ctx context.Context, buf domain.Buffer) ([]domain.TrackSetup, error) {
	if err := checkBuffer(buf); err != nil {
		return nil, err
	}
	return s.store.LoadSetups(ctx, buf), nil
}

func (s *SetupService) Add(ctx context.Context, buf domain.Buffer, input dto.SetupInput) (domain.TrackSetup, error) {
	setups, err := s.List(ctx, buf)
	if err != nil {
		return domain.TrackSetup{}, err
	}
	now := s.clock.Now()
	setup := domain.TrackSetup{
		ID:            s.idGen.New(),
		TrackID:       strings.TrimSpace(input.TrackID),
		Name:          strings.TrimSpace(input.Name),
		CarModel:      strings.TrimSpace(input.CarModel),
		Conditions:    strings.TrimSpace(input.Conditions),
		TirePressures: input.TirePressures,
		Wing:          input.Wing,
		Suspension:    input.Suspension,
		Notes:         input.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := setup.Validate(); err != nil {
		return domain.TrackSetup{}, invalid(err)
	}
	if err := s.store.SaveSetups(ctx, buf, append([]domain.TrackSetup{setup}, setups...)); err != nil {
		return domain.TrackSetup{}, err
	}
	return setup, nil
}

func (s *SetupService) Update(ctx context.Context, buf domain.Buffer, setupID string, patch dto.SetupPatch) (domain.TrackSetup, bool, error) {
	setups, err := s.List(ctx, buf)
	if err != nil {
		return domain.TrackSetup{}, false, err
	}
	for i := range setups {
		if setups[i].ID != setupID {
			continue
		}
		setup := setups[i]
		applyString(&setup.Name, patch.Name, true)
		applyString(&setup.CarModel, patch.CarModel, true)
		applyString(&setup.Conditions, patch.Conditions, true)
		applyString(&setup.Suspension, patch.Suspension, false)
		applyString(&setup.Notes, patch.Notes, false)
		if patch.TirePressures != nil {
			setup.TirePressures = patch.TirePressures
		}
		if patch.Wing != nil {
			setup.Wing = patch.Wing
		}
		if err := setup.Validate(); err != nil {
			return domain.TrackSetup{}, false, invalid(err)
		}
		setup.UpdatedAt = s.clock.Now()
		setups[i] = setup
		if err := s.store.SaveSetups(ctx, buf, setups); err != nil {
			return domain.TrackSetup{}, false, err
		}
		return setup, true, nil
	}
	return domain.TrackSetup{}, false, nil
}

func (s *SetupService) Delete(ctx context.Context, buf domain.Buffer, setupID string) (bool, error) {
	setups, err := s.List(ctx, buf)
	if err != nil {
		return false, err
	}
	kept := make([]domain.TrackSetup, 0, len(setups))
	for _, setup := range setups {
		if setup.ID != setupID {
			kept = append(kept, setup)
		}
	}
	if len(kept) == len(setups) {
		return false, nil
	}
	if err := s.store.SaveSetups(ctx, buf, kept); err != nil {
		return false, err
	}
	return true, nil
}

func applyString(dst *string, patch *string, trim bool) {
	if patch == nil {
		return
	}
	if trim {
		*dst = strings.TrimSpace(*patch)
		return
	}
	*dst = *patch
}
