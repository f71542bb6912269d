package display

import "testing"

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name string
		in   int64
		want string
	}{
		{"zero", 0, "0 B"},
		{"bytes", 512, "512 B"},
		{"one kib", 1024, "1.0 KiB"},
		{"fractional kib", 1536, "1.5 KiB"},
		{"mib", 5 * 1024 * 1024, "5.0 MiB"},
		{"gib", 3 * 1024 * 1024 * 1024, "3.0 GiB"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatBytes(tt.in); got != tt.want {
				t.Errorf("FormatBytes(%d) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatBytesWithSign(t *testing.T) {
	tests := []struct {
		name string
		in   int64
		want string
	}{
		{"positive", 2048, "+ 2.0 KiB"},
		{"negative", -2048, "- 2.0 KiB"},
		{"zero", 0, "0 B"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatBytesWithSign(tt.in); got != tt.want {
				t.Errorf("FormatBytesWithSign(%d) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestPercentOf(t *testing.T) {
	tests := []struct {
		name        string
		part, whole int64
		want        int64
	}{
		{"half", 50, 100, 50},
		{"larger than whole", 150, 100, 150},
		{"zero whole", 10, 0, 100},
		{"zero part", 0, 100, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PercentOf(tt.part, tt.whole); got != tt.want {
				t.Errorf("PercentOf(%d, %d) = %d, want %d", tt.part, tt.whole, got, tt.want)
			}
		})
	}
}
