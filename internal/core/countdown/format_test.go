package countdown

import "testing"

func TestFormatSeconds(t *testing.T) {
	cases := map[int]string{
		0:     "00:00",
		9:     "00:09",
		150:   "02:30",
		3599:  "59:59",
		3600:  "01:00:00",
		3661:  "01:01:01",
		45296: "12:34:56",
	}
	for total, want := range cases {
		if got := FormatSeconds(total); got != want {
			t.Fatalf("FormatSeconds(%d) = %s, want %s", total, got, want)
		}
	}

	if got := FormatSeconds(-5); got != "00:00" {
		t.Fatalf("expected negative input clamped to 00:00, got %s", got)
	}
}

func TestParseClockRoundTrip(t *testing.T) {
	for _, total := range []int{0, 1, 59, 60, 150, 3599, 3600, 3661, 45296} {
		parsed, err := ParseClock(FormatSeconds(total))
		if err != nil {
			t.Fatalf("parse %d: %v", total, err)
		}
		if parsed != total {
			t.Fatalf("round trip of %d yielded %d", total, parsed)
		}
	}
}

func TestParseClockRejectsMalformedInput(t *testing.T) {
	for _, value := range []string{"", "12", "1:2:3:4", "aa:bb", "-1:00"} {
		if _, err := ParseClock(value); err == nil {
			t.Fatalf("expected error parsing %q", value)
		}
	}
}
