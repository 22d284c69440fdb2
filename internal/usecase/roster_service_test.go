package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/galo-project/clube-api/internal/domain/player"
)

func TestRosterService_Roster_GroupsAndNormalizes(t *testing.T) {
	provider := &stubProvider{
		squad: []ExternalPlayerRecord{
			{ID: 1, Name: "Everson", Age: 33, Photo: "https://cdn/everson.png", Stats: []ExternalPlayerStat{{Position: player.PositionGoalkeeper}}},
			{ID: 2, Name: "Hulk", Age: 37, Photo: "https://cdn/hulk.png", Stats: []ExternalPlayerStat{{Position: player.PositionAttacker}}},
			{ID: 3, Name: "Base Kid", Stats: nil},
		},
	}
	service := NewRosterService(provider, 1062)

	roster, err := service.Roster(context.Background(), 2023)
	if err != nil {
		t.Fatalf("roster failed: %v", err)
	}

	goalkeepers := roster[player.BucketGoalkeepers]
	if len(goalkeepers) != 1 || goalkeepers[0].Name != "Everson" {
		t.Fatalf("unexpected goalkeepers bucket: %+v", goalkeepers)
	}
	if goalkeepers[0].Age != "33" {
		t.Fatalf("expected formatted age 33, got %q", goalkeepers[0].Age)
	}

	others := roster[player.BucketOthers]
	if len(others) != 1 || others[0].ID != 3 {
		t.Fatalf("expected stat-less player in others bucket, got %+v", others)
	}
	if others[0].Age != player.AgeUnknown {
		t.Fatalf("expected age sentinel %q, got %q", player.AgeUnknown, others[0].Age)
	}
	if others[0].Photo != player.DefaultPhoto {
		t.Fatalf("expected default photo, got %q", others[0].Photo)
	}
	if others[0].Position != player.PositionUnknown {
		t.Fatalf("expected unknown position, got %q", others[0].Position)
	}
}

func TestRosterService_Roster_EmptyUpstreamYieldsEmptyBucketsAndNoDataError(t *testing.T) {
	provider := &stubProvider{
		squadErr: fmt.Errorf("fetch players page 1: %w", ErrNoData),
	}
	service := NewRosterService(provider, 1062)

	roster, err := service.Roster(context.Background(), 2023)
	if !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
	if len(roster) != len(player.BucketOrder) {
		t.Fatalf("expected all buckets present, got %d", len(roster))
	}
	for _, bucket := range player.BucketOrder {
		if len(roster[bucket]) != 0 {
			t.Fatalf("expected empty bucket %q, got %+v", bucket, roster[bucket])
		}
	}
}

func TestRosterService_Roster_RejectsInvalidSeason(t *testing.T) {
	service := NewRosterService(&stubProvider{}, 1062)

	if _, err := service.Roster(context.Background(), 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
