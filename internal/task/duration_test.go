package task

import "testing"

// TestFormatMillis tests the FormatMillis function
func TestFormatMillis(t *testing.T) {
	tests := []struct {
		ms   int64
		want string
	}{
		{-5, "0ms"},
		{0, "0ms"},
		{350, "350ms"},
		{999, "999ms"},
		{1000, "1.0s"},
		{2400, "2.4s"},
		{59999, "60.0s"},
		{60000, "1m00s"},
		{72000, "1m12s"},
		{3725000, "62m05s"},
	}

	for _, test := range tests {
		if got := FormatMillis(test.ms); got != test.want {
			t.Errorf("FormatMillis(%d) = %q, want %q", test.ms, got, test.want)
		}
	}
}
