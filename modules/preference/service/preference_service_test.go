package service

import (
	"context"
	"testing"

	"surfplan-api/core/errors"
	"surfplan-api/modules/preference/dto"
	"surfplan-api/modules/preference/entity"

	"github.com/google/uuid"
)

type fakePrefRepo struct {
	saved *entity.SpotPreference
}

func (r *fakePrefRepo) Upsert(_ context.Context, pref *entity.SpotPreference) (*entity.SpotPreference, error) {
	r.saved = pref
	return pref, nil
}

func (r *fakePrefRepo) GetByUserAndSpot(context.Context, uuid.UUID, uuid.UUID) (*entity.SpotPreference, error) {
	return nil, nil
}

func (r *fakePrefRepo) DeleteByUserAndSpot(context.Context, uuid.UUID, uuid.UUID) error {
	return nil
}

func (r *fakePrefRepo) ListByUser(context.Context, uuid.UUID, string) ([]entity.SpotPreferenceView, error) {
	return nil, nil
}

func (r *fakePrefRepo) ListBySpot(context.Context, uuid.UUID) ([]entity.SpotPreferenceView, error) {
	return nil, nil
}

type fakeAvailRepo struct {
	replaced []entity.AvailabilitySlot
}

func (r *fakeAvailRepo) ListByUser(context.Context, uuid.UUID) ([]entity.AvailabilitySlot, error) {
	return r.replaced, nil
}

func (r *fakeAvailRepo) ReplaceForUser(_ context.Context, _ uuid.UUID, slots []entity.AvailabilitySlot) ([]entity.AvailabilitySlot, error) {
	r.replaced = slots
	return slots, nil
}

func f(v float64) *float64 { return &v }

func TestUpsertValidatesBounds(t *testing.T) {
	svc := NewPreferenceService(&fakePrefRepo{}, &fakeAvailRepo{})
	userID, spotID := uuid.New(), uuid.New()

	tests := []struct {
		name string
		req  dto.UpsertPreferenceRequest
	}{
		{"wave min above max", dto.UpsertPreferenceRequest{MinWaveHeightM: f(2), MaxWaveHeightM: f(1)}},
		{"period min above max", dto.UpsertPreferenceRequest{MinSwellPeriodS: f(14), MaxSwellPeriodS: f(10)}},
		{"tide min above max", dto.UpsertPreferenceRequest{MinTideM: f(2), MaxTideM: f(0.5)}},
		{"unknown swell octant", dto.UpsertPreferenceRequest{SwellDirections: []string{"NNW"}}},
		{"unknown wind octant", dto.UpsertPreferenceRequest{WindDirections: []string{"UP"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, appErr := svc.Upsert(context.Background(), userID, spotID, &tt.req)
			if appErr == nil {
				t.Fatal("expected a validation error")
			}
			if appErr.Code != errors.ErrInvalidInput {
				t.Errorf("code = %s, want %s", appErr.Code, errors.ErrInvalidInput)
			}
		})
	}
}

func TestUpsertNormalizesOctants(t *testing.T) {
	repo := &fakePrefRepo{}
	svc := NewPreferenceService(repo, &fakeAvailRepo{})

	req := dto.UpsertPreferenceRequest{
		SwellDirections: []string{"nw", "W", "NW"},
		WindDirections:  []string{"e"},
	}
	saved, appErr := svc.Upsert(context.Background(), uuid.New(), uuid.New(), &req)
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}

	wantSwell := []string{"NW", "W"}
	if len(saved.SwellDirections) != len(wantSwell) {
		t.Fatalf("swell directions = %v, want %v", saved.SwellDirections, wantSwell)
	}
	for i, d := range wantSwell {
		if saved.SwellDirections[i] != d {
			t.Errorf("swell directions = %v, want %v", saved.SwellDirections, wantSwell)
			break
		}
	}
	if len(saved.WindDirections) != 1 || saved.WindDirections[0] != "E" {
		t.Errorf("wind directions = %v, want [E]", saved.WindDirections)
	}
}

func TestUpsertEqualBoundsAllowed(t *testing.T) {
	svc := NewPreferenceService(&fakePrefRepo{}, &fakeAvailRepo{})
	req := dto.UpsertPreferenceRequest{MinWaveHeightM: f(1.5), MaxWaveHeightM: f(1.5)}

	if _, appErr := svc.Upsert(context.Background(), uuid.New(), uuid.New(), &req); appErr != nil {
		t.Errorf("equal bounds should be accepted, got %v", appErr)
	}
}

func TestSetAvailabilityDeduplicates(t *testing.T) {
	repo := &fakeAvailRepo{}
	svc := NewPreferenceService(&fakePrefRepo{}, repo)

	req := dto.SetAvailabilityRequest{Slots: []dto.AvailabilitySlotRequest{
		{DayOfWeek: 6, HourLocal: 7},
		{DayOfWeek: 6, HourLocal: 7},
		{DayOfWeek: 0, HourLocal: 7},
	}}

	saved, appErr := svc.SetAvailability(context.Background(), uuid.New(), &req)
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if len(saved) != 2 {
		t.Errorf("saved %d slots, want 2 after dedupe", len(saved))
	}
}

func TestSetAvailabilityEmptyGridAllowed(t *testing.T) {
	repo := &fakeAvailRepo{}
	svc := NewPreferenceService(&fakePrefRepo{}, repo)

	saved, appErr := svc.SetAvailability(context.Background(), uuid.New(), &dto.SetAvailabilityRequest{})
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if len(saved) != 0 {
		t.Errorf("saved %d slots, want 0", len(saved))
	}
}
