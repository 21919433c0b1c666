package validation

import "testing"

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name      string
		format    string
		expectErr bool
	}{
		{"Pretty format", "pretty", false},
		{"CSV format", "csv", false},
		{"Unknown format", "xml", true},
		{"Empty format", "", true},
		{"Uppercase not accepted", "PRETTY", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format)

			if tt.expectErr && err == nil {
				t.Errorf("ValidateOutputFormat(%q) expected error, got nil", tt.format)
			}
			if !tt.expectErr && err != nil {
				t.Errorf("ValidateOutputFormat(%q) unexpected error: %v", tt.format, err)
			}
		})
	}
}
