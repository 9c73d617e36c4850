package service

import (
	"context"
	"fmt"
	"strings"

	"pitwall/internal/modules/records/domain"
	"pitwall/internal/modules/records/dto"
	recordsout "pitwall/internal/modules/records/port/out"
	"pitwall/internal/platform/clock"
	apperrors "pitwall/internal/platform/errors"
	"pitwall/internal/platform/id"
)

type NoteService struct {
	clock clock.Clock
	idGen id.Generator
	store recordsout.BufferStore
}

func NewNoteService(clock clock.Clock, idGen id.Generator, store recordsout.BufferStore) *NoteService {
	return &NoteService{clock: clock, idGen: idGen, store: store}
}

func (s *NoteService) List(ctx context.Context, buf domain.Buffer) ([]domain.TrackNote, error) {
	if err := checkBuffer(buf); err != nil {
		return nil, err
	}
	return s.store.LoadNotes(ctx, buf), nil
}

func (s *NoteService) ForTrack(ctx context.Context, buf domain.Buffer, trackID string) ([]domain.TrackNote, error) {
	notes, err := s.List(ctx, buf)
	if err != nil {
		return nil, err
	}
	out := []domain.TrackNote{}
	for _, note := range notes {
		if note.TrackID == trackID {
			out = append(out, note)
		}
	}
	return out, nil
}

// Add stores the note ahead of existing ones, so listings read newest first.
func (s *NoteService) Add(ctx context.Context, buf domain.Buffer, input dto.NoteInput) (domain.TrackNote, error) {
	notes, err := s.List(ctx, buf)
	if err != nil {
		return domain.TrackNote{}, err
	}
	noteType := domain.NoteType(strings.TrimSpace(input.Type))
	if noteType == "" {
		noteType = domain.NoteTypeGeneral
	}
	now := s.clock.Now()
	note := domain.TrackNote{
		ID:        s.idGen.New(),
		TrackID:   strings.TrimSpace(input.TrackID),
		Title:     strings.TrimSpace(input.Title),
		Content:   input.Content,
		Type:      noteType,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := note.Validate(); err != nil {
		return domain.TrackNote{}, invalid(err)
	}
	if err := s.store.SaveNotes(ctx, buf, append([]domain.TrackNote{note}, notes...)); err != nil {
		return domain.TrackNote{}, err
	}
	return note, nil
}

func (s *NoteService) Update(ctx context.Context, buf domain.Buffer, noteID string, patch dto.NotePatch) (domain.TrackNote, bool, error) {
	notes, err := s.List(ctx, buf)
	if err != nil {
		return domain.TrackNote{}, false, err
	}
	for i := range notes {
		if notes[i].ID != noteID {
			continue
		}
		note := notes[i]
		if patch.TrackID != nil {
			note.TrackID = strings.TrimSpace(*patch.TrackID)
		}
		if patch.Title != nil {
			note.Title = strings.TrimSpace(*patch.Title)
		}
		if patch.Content != nil {
			note.Content = *patch.Content
		}
		if patch.Type != nil {
			note.Type = domain.NoteType(strings.TrimSpace(*patch.Type))
		}
		if err := note.Validate(); err != nil {
			return domain.TrackNote{}, false, invalid(err)
		}
		note.UpdatedAt = s.clock.Now()
		notes[i] = note
		if err := s.store.SaveNotes(ctx, buf, notes); err != nil {
			return domain.TrackNote{}, false, err
		}
		return note, true, nil
	}
	return domain.TrackNote{}, false, nil
}

func (s *NoteService) Delete(ctx context.Context, buf domain.Buffer, noteID string) (bool, error) {
	notes, err := s.List(ctx, buf)
	if err != nil {
		return false, err
	}
	kept := make([]domain.TrackNote, 0, len(notes))
	for _, note := range notes {
		if note.ID != noteID {
			kept = append(kept, note)
		}
	}
	if len(kept) == len(notes) {
		return false, nil
	}
	if err := s.store.SaveNotes(ctx, buf, kept); err != nil {
		return false, err
	}
	return true, nil
}

func checkBuffer(buf domain.Buffer) error {
	if !buf.Valid() {
		return fmt.Errorf("%w: buffer handle has no key prefix", apperrors.ErrInvalidInput)
	}
	return nil
}

func invalid(err error) error {
	return fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
}
