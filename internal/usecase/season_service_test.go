package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
)

func TestSeasonService_PastSeasons_FiltersCurrentAndSortsDescending(t *testing.T) {
	provider := &stubProvider{
		seasons: []ExternalSeason{
			{Year: 2024, Current: true},
			{Year: 2023},
			{Year: 2022},
		},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewSeasonService(provider, 71, logger)

	years := service.PastSeasons(context.Background())
	if len(years) != 2 || years[0] != 2023 || years[1] != 2022 {
		t.Fatalf("expected [2023 2022], got %v", years)
	}
}

func TestSeasonService_PastSeasons_SortsUnorderedInput(t *testing.T) {
	provider := &stubProvider{
		seasons: []ExternalSeason{
			{Year: 2019},
			{Year: 2022},
			{Year: 2025, Current: true},
			{Year: 2021},
		},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewSeasonService(provider, 71, logger)

	years := service.PastSeasons(context.Background())
	want := []int{2022, 2021, 2019}
	if len(years) != len(want) {
		t.Fatalf("expected %v, got %v", want, years)
	}
	for i := range want {
		if years[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, years)
		}
	}
}

func TestSeasonService_PastSeasons_SwallowsUpstreamFailure(t *testing.T) {
	provider := &stubProvider{
		seasonsErr: errors.New("provider status=500"),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewSeasonService(provider, 71, logger)

	years := service.PastSeasons(context.Background())
	if years == nil || len(years) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", years)
	}
}
