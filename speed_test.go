package fandial

import "testing"

func TestSpeedCycleLength(t *testing.T) {
	for _, s := range Speeds() {
		if got := s.Next().Next().Next().Next(); got != s {
			t.Errorf("cycle from %v returned to %v, want %v", s, got, s)
		}
	}
}

func TestSpeedNextOrder(t *testing.T) {
	tests := []struct {
		from, to Speed
	}{
		{SpeedOff, SpeedLow},
		{SpeedLow, SpeedMedium},
		{SpeedMedium, SpeedHigh},
		{SpeedHigh, SpeedOff},
	}
	for _, tt := range tests {
		if got := tt.from.Next(); got != tt.to {
			t.Errorf("%v.Next() = %v, want %v", tt.from, got, tt.to)
		}
	}
}

func TestSpeedsOrdinalOrder(t *testing.T) {
	want := [4]Speed{SpeedOff, SpeedLow, SpeedMedium, SpeedHigh}
	if got := Speeds(); got != want {
		t.Fatalf("Speeds() = %v, want %v", got, want)
	}
	for i, s := range Speeds() {
		if int(s) != i {
			t.Errorf("speed %v has ordinal %d, want %d", s, int(s), i)
		}
	}
}

func TestSpeedValid(t *testing.T) {
	for _, s := range Speeds() {
		if !s.Valid() {
			t.Errorf("%v.Valid() = false", s)
		}
	}
	if Speed(-1).Valid() || Speed(4).Valid() {
		t.Error("out-of-range speeds reported valid")
	}
}

func TestSpeedStrings(t *testing.T) {
	tests := []struct {
		speed Speed
		str   string
		key   string
	}{
		{SpeedOff, "off", "fan_off"},
		{SpeedLow, "low", "fan_low"},
		{SpeedMedium, "medium", "fan_medium"},
		{SpeedHigh, "high", "fan_high"},
	}
	for _, tt := range tests {
		if got := tt.speed.String(); got != tt.str {
			t.Errorf("%d.String() = %q, want %q", int(tt.speed), got, tt.str)
		}
		if got := tt.speed.LabelKey(); got != tt.key {
			t.Errorf("%v.LabelKey() = %q, want %q", tt.speed, got, tt.key)
		}
	}
}

func TestParseSpeed(t *testing.T) {
	for _, s := range Speeds() {
		got, err := ParseSpeed(s.String())
		if err != nil {
			t.Fatalf("ParseSpeed(%q) error: %v", s.String(), err)
		}
		if got != s {
			t.Errorf("ParseSpeed(%q) = %v, want %v", s.String(), got, s)
		}
	}
	if _, err := ParseSpeed("turbo"); err == nil {
		t.Error("expected error for unknown speed")
	}
}
