package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/webstats/matchstats/internal/domain/event"
	"github.com/webstats/matchstats/internal/domain/matchday"
	"github.com/webstats/matchstats/internal/domain/pitch"
	"github.com/webstats/matchstats/internal/platform/id"
)

// RegisterActionInput is one live captured action as the touch sheet
// submits it.
type RegisterActionInput struct {
	MatchID     string `json:"match_id" validate:"required"`
	PlayerID    string `json:"player_id" validate:"required"`
	PlayerName  string `json:"player_name" validate:"required"`
	Minute      *int   `json:"minute,omitempty"`
	Type        string `json:"type" validate:"required"`
	Result      string `json:"result,omitempty"`
	Zone        string `json:"zone,omitempty"`
	Third       string `json:"third,omitempty"`
	Observation string `json:"observation,omitempty"`
}

// RegisteredAction echoes the stored event back to the capture sheet.
type RegisteredAction struct {
	EventID string `json:"event_id"`
	MatchID string `json:"match_id"`
	Minute  *int   `json:"minute,omitempty"`
	Type    string `json:"type"`
	Result  string `json:"result,omitempty"`
	Zone    string `json:"zone,omitempty"`
	Third   string `json:"third,omitempty"`
	Clamped bool   `json:"clamped,omitempty"`
}

// FinalizeResult reports a finalize run.
type FinalizeResult struct {
	MatchID   string `json:"match_id"`
	Finalized int    `json:"finalized"`
}

// CaptureService receives live actions and promotes them when the match
// sheet is saved. The aggregation engine itself never writes; this is
// the upstream collaborator feeding it.
type CaptureService struct {
	eventRepo event.Repository
	matchRepo matchday.Repository
	ids       id.Generator
	validate  *validator.Validate
}

func NewCaptureService(eventRepo event.Repository, matchRepo matchday.Repository, ids id.Generator) *CaptureService {
	return &CaptureService{
		eventRepo: eventRepo,
		matchRepo: matchRepo,
		ids:       ids,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
	}
}

// RegisterAction validates, clamps and stores one live action. A missing
// explicit third is derived from the zone text.
func (s *CaptureService) RegisterAction(ctx context.Context, input RegisterActionInput) (RegisteredAction, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CaptureService.RegisterAction")
	defer span.End()

	if err := s.validate.Struct(input); err != nil {
		return RegisteredAction{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	_, exists, err := s.matchRepo.Get(ctx, input.MatchID)
	if err != nil {
		return RegisteredAction{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return RegisteredAction{}, fmt.Errorf("%w: match=%s", ErrNotFound, input.MatchID)
	}

	clamped := false
	minute := input.Minute
	if minute != nil {
		value, wasClamped := event.ClampMinute(*minute)
		clamped = wasClamped
		minute = &value
	}

	third := strings.TrimSpace(input.Third)
	if third == "" {
		if derived, ok := pitch.ThirdFromZone(input.Zone); ok {
			third = string(derived)
		}
	}

	eventID, err := s.ids.NewEventID()
	if err != nil {
		return RegisteredAction{}, fmt.Errorf("generate event id: %w", err)
	}

	e := event.Event{
		ID:          eventID,
		MatchID:     input.MatchID,
		PlayerID:    input.PlayerID,
		PlayerName:  strings.TrimSpace(input.PlayerName),
		Minute:      minute,
		Type:        strings.TrimSpace(input.Type),
		Result:      strings.TrimSpace(input.Result),
		Zone:        strings.TrimSpace(input.Zone),
		Third:       third,
		Observation: strings.TrimSpace(input.Observation),
		Provenance:  event.ProvenanceLive,
	}
	if err := e.Validate(); err != nil {
		return RegisteredAction{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.eventRepo.Append(ctx, e); err != nil {
		return RegisteredAction{}, fmt.Errorf("append event: %w", err)
	}

	return RegisteredAction{
		EventID: e.ID,
		MatchID: e.MatchID,
		Minute:  e.Minute,
		Type:    e.Type,
		Result:  e.Result,
		Zone:    e.Zone,
		Third:   e.Third,
		Clamped: clamped,
	}, nil
}

// Finalize promotes the match's live events to finalized provenance so
// they start counting toward statistics.
func (s *CaptureService) Finalize(ctx context.Context, matchID string) (FinalizeResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CaptureService.Finalize")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return FinalizeResult{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	_, exists, err := s.matchRepo.Get(ctx, matchID)
	if err != nil {
		return FinalizeResult{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return FinalizeResult{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	promoted, err := s.eventRepo.FinalizeMatch(ctx, matchID)
	if err != nil {
		return FinalizeResult{}, fmt.Errorf("finalize match events: %w", err)
	}

	return FinalizeResult{MatchID: matchID, Finalized: promoted}, nil
}
