package naming

import "testing"

func TestNamingFunctions(t *testing.T) {
	du := "du1"

	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{
			name:     "GNB",
			got:      GNB("ran", du),
			expected: "ran-du1-du",
		},
		{
			name:     "Workload",
			got:      Workload(du),
			expected: "du1-du",
		},
		{
			name:     "Service",
			got:      Service(du),
			expected: "du1-du",
		},
		{
			name:     "ConfigMap",
			got:      ConfigMap(du),
			expected: "du1-du-config",
		},
		{
			name:     "F1RequirerConfigMap",
			got:      F1RequirerConfigMap(du),
			expected: "du1-f1-requirer",
		},
		{
			name:     "RFConfigConfigMap",
			got:      RFConfigConfigMap(du),
			expected: "du1-rf-config",
		},
		{
			name:     "PromtailConfigMap",
			got:      PromtailConfigMap(du),
			expected: "du1-promtail",
		},
		{
			name:     "NetworkAttachment",
			got:      NetworkAttachment(du, "f1"),
			expected: "du1-f1-net",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, tt.got)
			}
		})
	}
}
