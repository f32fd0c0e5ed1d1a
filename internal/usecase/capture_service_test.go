package usecase

import (
	"errors"
	"testing"

	"github.com/webstats/matchstats/internal/domain/event"
	"github.com/webstats/matchstats/internal/infrastructure/repository/memory"
	"github.com/webstats/matchstats/internal/platform/id"
)

func newCaptureFixture() (*CaptureService, *memory.EventRepository) {
	eventRepo := memory.NewEventRepository(nil)
	matchRepo := memory.NewMatchRepository(memory.SeedMatches())
	return NewCaptureService(eventRepo, matchRepo, id.NewRandomGenerator()), eventRepo
}

func TestRegisterAction(t *testing.T) {
	svc, eventRepo := newCaptureFixture()

	action, err := svc.RegisterAction(t.Context(), RegisterActionInput{
		MatchID:    memory.MatchIDJornada1,
		PlayerID:   memory.PlayerIDGamez,
		PlayerName: "Antonio Gámez Paniagua",
		Minute:     minutePtr(34),
		Type:       "Disparo",
		Result:     "OK",
		Zone:       "Ataque Centro",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if action.EventID == "" {
		t.Fatal("expected a generated event id")
	}
	if action.Third != "Ataque" {
		t.Fatalf("third = %q, want derived Ataque", action.Third)
	}
	if action.Clamped {
		t.Fatal("in-range minute must not clamp")
	}

	stored, err := eventRepo.ListByMatch(t.Context(), memory.MatchIDJornada1)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(stored) != 1 {
		t.Fatalf("stored %d events, want 1", len(stored))
	}
	if stored[0].Provenance != event.ProvenanceLive {
		t.Fatalf("provenance = %s, want live", stored[0].Provenance)
	}
}

func TestRegisterActionClampsMinute(t *testing.T) {
	svc, _ := newCaptureFixture()

	action, err := svc.RegisterAction(t.Context(), RegisterActionInput{
		MatchID:    memory.MatchIDJornada1,
		PlayerID:   memory.PlayerIDGamez,
		PlayerName: "Antonio Gámez Paniagua",
		Minute:     minutePtr(240),
		Type:       "Pase",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if !action.Clamped {
		t.Fatal("out-of-range minute must report the clamp")
	}
	if action.Minute == nil || *action.Minute != event.MaxMinute {
		t.Fatalf("minute = %v, want %d", action.Minute, event.MaxMinute)
	}
}

func TestRegisterActionKeepsExplicitThird(t *testing.T) {
	svc, _ := newCaptureFixture()

	action, err := svc.RegisterAction(t.Context(), RegisterActionInput{
		MatchID:    memory.MatchIDJornada1,
		PlayerID:   memory.PlayerIDGamez,
		PlayerName: "Antonio Gámez Paniagua",
		Type:       "Pase",
		Zone:       "Defensa Central",
		Third:      "Construcción",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if action.Third != "Construcción" {
		t.Fatalf("third = %q, explicit value must win over derivation", action.Third)
	}
}

func TestRegisterActionValidation(t *testing.T) {
	svc, _ := newCaptureFixture()

	_, err := svc.RegisterAction(t.Context(), RegisterActionInput{
		MatchID:  memory.MatchIDJornada1,
		PlayerID: memory.PlayerIDGamez,
		// PlayerName and Type missing.
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}

	_, err = svc.RegisterAction(t.Context(), RegisterActionInput{
		MatchID:    "match-desconocido",
		PlayerID:   memory.PlayerIDGamez,
		PlayerName: "Antonio",
		Type:       "Pase",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestFinalizePromotesLiveEvents(t *testing.T) {
	eventRepo := memory.NewEventRepository(memory.SeedEvents())
	matchRepo := memory.NewMatchRepository(memory.SeedMatches())
	svc := NewCaptureService(eventRepo, matchRepo, id.NewRandomGenerator())

	result, err := svc.Finalize(t.Context(), memory.MatchIDJornada3)
	if err != nil {
		t.Fatalf("finalize failed: %v", err)
	}
	if result.Finalized != 2 {
		t.Fatalf("finalized %d events, want 2", result.Finalized)
	}

	stored, err := eventRepo.ListByMatch(t.Context(), memory.MatchIDJornada3)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	for _, e := range stored {
		if e.Provenance != event.ProvenanceFinalized {
			t.Fatalf("event %s provenance = %s, want finalized", e.ID, e.Provenance)
		}
	}

	// Re-running finds nothing left to promote.
	again, err := svc.Finalize(t.Context(), memory.MatchIDJornada3)
	if err != nil {
		t.Fatalf("second finalize failed: %v", err)
	}
	if again.Finalized != 0 {
		t.Fatalf("second finalize promoted %d events, want 0", again.Finalized)
	}
}
