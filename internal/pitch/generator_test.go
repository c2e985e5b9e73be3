package pitch

import (
	"strings"
	"testing"
)

func TestGenerate_CashExit(t *testing.T) {
	pitch := Generate("", "cash")
	if !strings.Contains(pitch, "cash offer provides immediate relief") {
		t.Fatalf("expected cash offer paragraph, got %q", pitch)
	}
}

func TestGenerate_RBPExit(t *testing.T) {
	pitch := Generate("", "RBP")
	if !strings.Contains(pitch, "retail partner program") {
		t.Fatalf("expected retail partner paragraph, got %q", pitch)
	}
}

func TestGenerate_CombinedExit(t *testing.T) {
	pitch := Generate("", "cash or rbp")
	if !strings.Contains(pitch, "flexible paths") {
		t.Fatalf("expected combined paragraph, got %q", pitch)
	}
}

func TestGenerate_UnknownExitUsesDefault(t *testing.T) {
	pitch := Generate("", "takedown")
	if !strings.Contains(pitch, "tailor our approach") {
		t.Fatalf("expected default offer paragraph, got %q", pitch)
	}
}

func TestGenerate_UrgencyTone(t *testing.T) {
	pitch := Generate("house is VACANT, seller moving out of state", "cash")
	if !strings.Contains(pitch, "close in under 7 days") {
		t.Fatalf("expected urgency paragraph, got %q", pitch)
	}
}

func TestGenerate_RepairTone(t *testing.T) {
	pitch := Generate("roof is shot, needs new HVAC", "rbp")
	if !strings.Contains(pitch, "absorb that burden") {
		t.Fatalf("expected repair paragraph, got %q", pitch)
	}
}

func TestGenerate_UrgencyBeatsRepair(t *testing.T) {
	pitch := Generate("vacant and the roof leaks", "cash")
	if !strings.Contains(pitch, "close in under 7 days") {
		t.Fatalf("urgency signal must win, got %q", pitch)
	}
	if strings.Contains(pitch, "absorb that burden") {
		t.Fatal("repair paragraph must not appear alongside urgency")
	}
}

func TestGenerate_AlwaysFramed(t *testing.T) {
	pitch := Generate("", "")
	if !strings.Contains(pitch, "I understand the challenge") {
		t.Fatalf("missing intro: %q", pitch)
	}
	if !strings.Contains(pitch, "Would you be open") {
		t.Fatalf("missing close: %q", pitch)
	}
}
