package service

import (
	"context"
	"strings"
	"testing"

	"surfplan-api/core/errors"
	"surfplan-api/modules/spot/dto"
	"surfplan-api/modules/spot/entity"

	"github.com/google/uuid"
)

type fakeSpotRepo struct {
	bySlug map[string]*entity.Spot
	byID   map[uuid.UUID]*entity.Spot
}

func newFakeSpotRepo() *fakeSpotRepo {
	return &fakeSpotRepo{
		bySlug: map[string]*entity.Spot{},
		byID:   map[uuid.UUID]*entity.Spot{},
	}
}

func (r *fakeSpotRepo) Create(_ context.Context, spot *entity.Spot) (*entity.Spot, error) {
	created := *spot
	created.ID = uuid.New()
	r.bySlug[created.Slug] = &created
	r.byID[created.ID] = &created
	return &created, nil
}

func (r *fakeSpotRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Spot, error) {
	return r.byID[id], nil
}

func (r *fakeSpotRepo) GetBySlug(_ context.Context, slug string) (*entity.Spot, error) {
	return r.bySlug[slug], nil
}

func (r *fakeSpotRepo) List(context.Context, string) ([]entity.Spot, error) {
	return nil, nil
}

func (r *fakeSpotRepo) ListActive(context.Context) ([]entity.Spot, error) {
	return nil, nil
}

func f(v float64) *float64 { return &v }

func TestCreateSpotValidation(t *testing.T) {
	svc := NewSpotService(newFakeSpotRepo())

	tests := []struct {
		name string
		req  dto.CreateSpotRequest
	}{
		{"unknown timezone", dto.CreateSpotRequest{Name: "Pipeline", Region: "Oahu", Timezone: "Pacific/Atlantis"}},
		{"latitude without longitude", dto.CreateSpotRequest{Name: "Pipeline", Region: "Oahu", Timezone: "Pacific/Honolulu", Latitude: f(21.66)}},
		{"longitude without latitude", dto.CreateSpotRequest{Name: "Pipeline", Region: "Oahu", Timezone: "Pacific/Honolulu", Longitude: f(-158.05)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, appErr := svc.Create(context.Background(), &tt.req)
			if appErr == nil {
				t.Fatal("expected a validation error")
			}
			if appErr.Code != errors.ErrInvalidInput {
				t.Errorf("code = %s, want %s", appErr.Code, errors.ErrInvalidInput)
			}
		})
	}
}

func TestCreateSpotSlugAndDefaults(t *testing.T) {
	repo := newFakeSpotRepo()
	svc := NewSpotService(repo)

	created, appErr := svc.Create(context.Background(), &dto.CreateSpotRequest{
		Name:      "Steamer Lane",
		Region:    "Santa Cruz",
		Timezone:  "America/Los_Angeles",
		Latitude:  f(36.95),
		Longitude: f(-122.02),
	})
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if created.Slug != "steamer-lane" {
		t.Errorf("slug = %q, want steamer-lane", created.Slug)
	}
	if !created.Active {
		t.Error("new spot should be active")
	}
	if !created.HasCoordinates() {
		t.Error("coordinates dropped on create")
	}
}

func TestCreateSpotSlugCollision(t *testing.T) {
	repo := newFakeSpotRepo()
	svc := NewSpotService(repo)

	req := dto.CreateSpotRequest{
		Name:     "Steamer Lane",
		Region:   "Santa Cruz",
		Timezone: "America/Los_Angeles",
	}
	first, appErr := svc.Create(context.Background(), &req)
	if appErr != nil {
		t.Fatal(appErr)
	}
	second, appErr := svc.Create(context.Background(), &req)
	if appErr != nil {
		t.Fatal(appErr)
	}

	if second.Slug == first.Slug {
		t.Errorf("duplicate slug %q", second.Slug)
	}
	if !strings.HasPrefix(second.Slug, "steamer-lane-") {
		t.Errorf("collision slug = %q, want steamer-lane- prefix", second.Slug)
	}
}

func TestGetSpotNotFound(t *testing.T) {
	svc := NewSpotService(newFakeSpotRepo())

	_, appErr := svc.Get(context.Background(), uuid.New())
	if appErr == nil || appErr.Code != errors.ErrNotFound {
		t.Errorf("expected %s, got %v", errors.ErrNotFound, appErr)
	}
}
