package model

import "testing"

func TestFilterModel_PlaceholderLifecycle(t *testing.T) {
	m := NewFilterModel("hue=s=0")
	if m.Enabled() {
		t.Fatal("new model enabled")
	}
	if m.Text() != "hue=s=0" {
		t.Fatalf("initial text = %q", m.Text())
	}
	if m.EffectiveText() != "" {
		t.Fatalf("bare placeholder leaked: %q", m.EffectiveText())
	}

	m.SetEnabled(true)
	m.SetText("eq=contrast=2:brightness=0.8")
	if m.EffectiveText() != "eq=contrast=2:brightness=0.8" {
		t.Fatalf("effective = %q", m.EffectiveText())
	}

	// Clearing the field restores the placeholder and disables the filter.
	m.SetText("   ")
	if m.Enabled() || m.Text() != "hue=s=0" {
		t.Fatalf("after clear: enabled=%v text=%q", m.Enabled(), m.Text())
	}
}

func TestFilterModel_AddPreset(t *testing.T) {
	m := NewFilterModel("hue=s=0")
	m.AddPreset("eq=contrast=2:brightness=0.8")
	if !m.Enabled() {
		t.Fatal("preset did not enable the filter")
	}
	if m.Text() != "eq=contrast=2:brightness=0.8" {
		t.Fatalf("text = %q, placeholder should be replaced", m.Text())
	}
	m.AddPreset("hue=s=0")
	if m.Text() != "eq=contrast=2:brightness=0.8, hue=s=0" {
		t.Fatalf("text = %q, want comma-joined presets", m.Text())
	}
	// Idempotent: an expression already present is not appended again.
	m.AddPreset("hue=s=0")
	if m.Text() != "eq=contrast=2:brightness=0.8, hue=s=0" {
		t.Fatalf("duplicate preset appended: %q", m.Text())
	}
}

func TestFilterModel_Toggle(t *testing.T) {
	m := NewFilterModel("hue=s=0")
	m.Toggle()
	if !m.Enabled() {
		t.Fatal("toggle on failed")
	}
	m.Toggle()
	if m.Enabled() {
		t.Fatal("toggle off failed")
	}
}
