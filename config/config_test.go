package config

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	LoadConfig()

	if AppConfig.AppPort != "8080" {
		t.Errorf("expected default port 8080, got %q", AppConfig.AppPort)
	}
	if AppConfig.SlotDurationMinutes != 30 {
		t.Errorf("expected default slot duration 30, got %d", AppConfig.SlotDurationMinutes)
	}
	if AppConfig.MaxRangeDays != 10 {
		t.Errorf("expected default range cap 10, got %d", AppConfig.MaxRangeDays)
	}
	if IsProduction() {
		t.Errorf("default env should not be production, got %q", AppConfig.Env)
	}
}
