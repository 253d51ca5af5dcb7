package common

import "testing"

// TestResolveEndpoint tests the ":port" shorthand expansion
func TestResolveEndpoint(t *testing.T) {
	tests := []struct {
		name     string
		endpoint string
		expected string
		wantErr  bool
	}{
		{
			name:     "Port shorthand expands to loopback",
			endpoint: ":9000",
			expected: "127.0.0.1:9000",
		},
		{
			name:     "Full host port pair unchanged",
			endpoint: "192.168.1.10:8080",
			expected: "192.168.1.10:8080",
		},
		{
			name:     "Hostname unchanged",
			endpoint: "localhost:9000",
			expected: "localhost:9000",
		},
		{
			name:     "Missing port",
			endpoint: "localhost",
			wantErr:  true,
		},
		{
			name:     "Empty endpoint",
			endpoint: "",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved, err := ResolveEndpoint(tt.endpoint)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ResolveEndpoint(%q) = %q, want error", tt.endpoint, resolved)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveEndpoint(%q) failed: %v", tt.endpoint, err)
			}
			if resolved != tt.expected {
				t.Errorf("ResolveEndpoint(%q) = %q, want %q", tt.endpoint, resolved, tt.expected)
			}
		})
	}
}
