package service

import (
	"testing"
	"time"
)

func TestNewCalendarMapperRejectsBadZones(t *testing.T) {
	if _, err := NewCalendarMapper(""); err == nil {
		t.Error("expected error for empty timezone")
	}
	if _, err := NewCalendarMapper("Atlantis/Lost_City"); err == nil {
		t.Error("expected error for unknown timezone")
	}
	if _, err := NewCalendarMapper("America/Los_Angeles"); err != nil {
		t.Errorf("unexpected error for valid timezone: %v", err)
	}
}

func TestLocalSlot(t *testing.T) {
	tests := []struct {
		name    string
		zone    string
		utc     time.Time
		wantDow int
		wantHr  int
	}{
		{
			"utc passthrough",
			"UTC",
			time.Date(2026, 8, 30, 14, 0, 0, 0, time.UTC), // a Sunday
			0, 14,
		},
		{
			"sunday is zero",
			"UTC",
			time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
			0, 0,
		},
		{
			"negative offset crosses midnight backwards",
			"America/Los_Angeles",
			time.Date(2026, 8, 31, 2, 0, 0, 0, time.UTC), // Monday 02:00 UTC
			0, 19, // Sunday 19:00 PDT
		},
		{
			"positive offset crosses midnight forwards",
			"Pacific/Auckland",
			time.Date(2026, 8, 29, 23, 0, 0, 0, time.UTC), // Saturday 23:00 UTC
			0, 11, // Sunday 11:00 NZST
		},
		{
			"before spring forward",
			"America/Los_Angeles",
			time.Date(2026, 3, 8, 9, 59, 0, 0, time.UTC), // Sunday, PST
			0, 1,
		},
		{
			"after spring forward skips an hour",
			"America/Los_Angeles",
			time.Date(2026, 3, 8, 10, 0, 0, 0, time.UTC), // 02:00 PST does not exist
			0, 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapper, err := NewCalendarMapper(tt.zone)
			if err != nil {
				t.Fatalf("NewCalendarMapper(%q): %v", tt.zone, err)
			}
			dow, hr := mapper.LocalSlot(tt.utc)
			if dow != tt.wantDow || hr != tt.wantHr {
				t.Errorf("LocalSlot(%v) = (%d, %d), want (%d, %d)", tt.utc, dow, hr, tt.wantDow, tt.wantHr)
			}
		})
	}
}
