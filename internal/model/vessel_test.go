package model

import "testing"

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		allowed bool
	}{
		{"主链: planned→confirmed", StatusPlanned, StatusConfirmed, true},
		{"主链: confirmed→at_berth", StatusConfirmed, StatusAtBerth, true},
		{"主链: at_berth→completed", StatusAtBerth, StatusCompleted, true},
		{"跳级: planned→at_berth", StatusPlanned, StatusAtBerth, false},
		{"跳级: planned→completed", StatusPlanned, StatusCompleted, false},
		{"回退: confirmed→planned", StatusConfirmed, StatusPlanned, false},
		{"延误: at_berth→delayed", StatusAtBerth, StatusDelayed, true},
		{"延误恢复: delayed→confirmed", StatusDelayed, StatusConfirmed, true},
		{"延误恢复: delayed→completed", StatusDelayed, StatusCompleted, true},
		{"取消: planned→cancelled", StatusPlanned, StatusCancelled, true},
		{"终态不可变: completed→delayed", StatusCompleted, StatusDelayed, false},
		{"终态不可变: cancelled→planned", StatusCancelled, StatusPlanned, false},
		{"原地不动: planned→planned", StatusPlanned, StatusPlanned, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanTransition(tt.from, tt.to); got != tt.allowed {
				t.Errorf("CanTransition(%s, %s)=%v，期望=%v", tt.from, tt.to, got, tt.allowed)
			}
		})
	}
}

func TestIsTerminalStatus(t *testing.T) {
	if !IsTerminalStatus(StatusCompleted) || !IsTerminalStatus(StatusCancelled) {
		t.Errorf("completed/cancelled 应为终态")
	}
	if IsTerminalStatus(StatusDelayed) {
		t.Errorf("delayed 不是终态")
	}
}
