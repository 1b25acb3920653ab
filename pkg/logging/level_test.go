package logging

import "testing"

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"", LevelInfo, false},
		{"debug", LevelDebug, false},
		{"DEBUG", LevelDebug, false},
		{"Info", LevelInfo, false},
		{"warn", LevelWarn, false},
		{"error", LevelError, false},
		{"verbose", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLevelValidate(t *testing.T) {
	for _, l := range []Level{"", LevelDebug, LevelInfo, LevelWarn, LevelError, "info"} {
		if err := l.Validate(); err != nil {
			t.Errorf("Validate(%q) = %v, want nil", l, err)
		}
	}

	if err := Level("trace").Validate(); err == nil {
		t.Error("Validate(trace) = nil, want error")
	}
}
