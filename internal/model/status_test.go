package model

import "testing"

func TestScrapeState_IsActive(t *testing.T) {
	tests := []struct {
		state    ScrapeState
		expected bool
	}{
		{ScrapeIdle, false},
		{ScrapeConnecting, true},
		{ScrapeRunning, true},
		{ScrapeCompleted, false},
		{ScrapeFailed, false},
	}

	for _, test := range tests {
		result := test.state.IsActive()
		if result != test.expected {
			t.Errorf("ScrapeState(%s).IsActive() = %v, expected %v", test.state, result, test.expected)
		}
	}
}

func TestScrapeState_IsFinished(t *testing.T) {
	tests := []struct {
		state    ScrapeState
		expected bool
	}{
		{ScrapeIdle, false},
		{ScrapeConnecting, false},
		{ScrapeRunning, false},
		{ScrapeCompleted, true},
		{ScrapeFailed, true},
	}

	for _, test := range tests {
		result := test.state.IsFinished()
		if result != test.expected {
			t.Errorf("ScrapeState(%s).IsFinished() = %v, expected %v", test.state, result, test.expected)
		}
	}
}

func TestScrapeState_CanTrigger(t *testing.T) {
	tests := []struct {
		state    ScrapeState
		expected bool
	}{
		{ScrapeIdle, true},
		{ScrapeConnecting, false},
		{ScrapeRunning, false},
		{ScrapeCompleted, false},
		{ScrapeFailed, true},
	}

	for _, test := range tests {
		if got := test.state.CanTrigger(); got != test.expected {
			t.Errorf("ScrapeState(%s).CanTrigger() = %v, expected %v", test.state, got, test.expected)
		}
	}
}

func TestScrapeJob_ProgressLabel(t *testing.T) {
	tests := []struct {
		progress float64
		expected string
	}{
		{0, "0%"},
		{42, "42%"},
		{12.5, "12.5%"},
		{130, "130%"},
		{-5, "-5%"},
	}

	for _, test := range tests {
		job := ScrapeJob{Progress: test.progress}
		if got := job.ProgressLabel(); got != test.expected {
			t.Errorf("ProgressLabel(%v) = %s, expected %s", test.progress, got, test.expected)
		}
	}
}

func TestScrapeJob_PanelVisible(t *testing.T) {
	if (ScrapeJob{State: ScrapeIdle}).PanelVisible() {
		t.Error("panel should be hidden when idle")
	}
	if !(ScrapeJob{State: ScrapeRunning}).PanelVisible() {
		t.Error("panel should be visible while running")
	}
	if !(ScrapeJob{State: ScrapeCompleted}).PanelVisible() {
		t.Error("panel should stay visible until the reset")
	}
}
