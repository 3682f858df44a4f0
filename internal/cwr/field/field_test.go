package field

import "testing"

func TestParseAlphaTrimsTrailingSpace(t *testing.T) {
	v, warnings := ParseAlpha([]byte("ACME PUBLISHING CO   "), "sender_name", "Sender Name", 21)
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if v.Trimmed != "ACME PUBLISHING CO" {
		t.Fatalf("got %q", v.Trimmed)
	}
}

func TestFormatAlphaRoundTrips(t *testing.T) {
	v, _ := ParseAlpha([]byte("ACME  "), "x", "X", 6)
	out, err := FormatAlpha(v, 6)
	if err != nil {
		t.Fatal(err)
	}
	if out != "ACME  " {
		t.Fatalf("got %q", out)
	}
}

func TestFormatAlphaOverflow(t *testing.T) {
	v := Alpha{Trimmed: "TOO LONG VALUE", Raw: "TOO LONG VALUE"}
	if _, err := FormatAlpha(v, 5); err == nil {
		t.Fatal("expected overflow error")
	}
}

func TestParseNumericTrimsLeadingZeros(t *testing.T) {
	v, warnings := ParseNumeric([]byte("00012345"), "x", "X", 8)
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if v != 12345 {
		t.Fatalf("got %d", v)
	}
}

func TestParseNumericMalformed(t *testing.T) {
	v, warnings := ParseNumeric([]byte("12A45"), "x", "X", 5)
	if v != 0 {
		t.Fatalf("expected default zero, got %d", v)
	}
	if len(warnings) != 1 || warnings[0].Severity != Warning {
		t.Fatalf("expected one Warning, got %v", warnings)
	}
}

func TestFormatNumericZeroPads(t *testing.T) {
	out, err := FormatNumeric(42, 5)
	if err != nil || out != "00042" {
		t.Fatalf("got %q, %v", out, err)
	}
}

func TestFormatNumericOverflow(t *testing.T) {
	if _, err := FormatNumeric(123456, 5); err == nil {
		t.Fatal("expected overflow")
	}
}

func TestParseDateZeroSentinel(t *testing.T) {
	v, warnings := ParseDate([]byte("00000000"), "x", "X")
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if !v.Zero {
		t.Fatal("expected zero sentinel")
	}
}

func TestParseDateMalformed(t *testing.T) {
	v, warnings := ParseDate([]byte("2023XX01"), "agreement_start_date", "Agreement Start Date")
	if !v.Zero {
		t.Fatalf("expected zero-date default, got %v", v)
	}
	if len(warnings) != 1 {
		t.Fatalf("expected one warning, got %v", warnings)
	}
	if warnings[0].Field != "agreement_start_date" || warnings[0].Severity != Warning {
		t.Fatalf("unexpected warning: %v", warnings[0])
	}
	if warnings[0].Source != "2023XX01" {
		t.Fatalf("expected raw source preserved, got %q", warnings[0].Source)
	}
}

func TestParseDateRoundTrip(t *testing.T) {
	v, warnings := ParseDate([]byte("20240101"), "x", "X")
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	out, _ := FormatDate(v)
	if out != "20240101" {
		t.Fatalf("got %q", out)
	}
}

func TestParseTimeValidatesRanges(t *testing.T) {
	if _, warnings := ParseTime([]byte("120030"), "x", "X"); len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if _, warnings := ParseTime([]byte("250030"), "x", "X"); len(warnings) != 1 {
		t.Fatalf("expected one warning for HH=25, got %v", warnings)
	}
}

func TestParseBoolean(t *testing.T) {
	if v, w := ParseBoolean([]byte("Y"), "x", "X"); !v || len(w) != 0 {
		t.Fatalf("got %v %v", v, w)
	}
	if v, w := ParseBoolean([]byte("Q"), "x", "X"); v || len(w) != 1 {
		t.Fatalf("got %v %v", v, w)
	}
}

func TestParseFlagAcceptsU(t *testing.T) {
	v, w := ParseFlag([]byte("U"), "x", "X")
	if v != FlagUnknown || len(w) != 0 {
		t.Fatalf("got %v %v", v, w)
	}
}

func TestShareRoundTrip(t *testing.T) {
	v, warnings := ParseShare([]byte("05000"), "ownership_share", "Ownership Share")
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if v.Percent() != 50 {
		t.Fatalf("got %v", v.Percent())
	}
	out, err := FormatShare(v)
	if err != nil || out != "05000" {
		t.Fatalf("got %q %v", out, err)
	}
}

func TestShareOutOfRangeWarns(t *testing.T) {
	v, warnings := ParseShare([]byte("99999"), "ownership_share", "Ownership Share")
	if v != 0 {
		t.Fatalf("expected default, got %v", v)
	}
	if len(warnings) == 0 {
		t.Fatal("expected a warning")
	}
}

func TestParseAlphaShortSliceDefaults(t *testing.T) {
	v, warnings := ParseAlpha([]byte("AB"), "x", "X", 5)
	if v != (Alpha{}) {
		t.Fatalf("expected zero Alpha, got %+v", v)
	}
	if len(warnings) != 1 || warnings[0].Severity != Warning {
		t.Fatalf("expected one ShortField warning, got %v", warnings)
	}
}

func TestParseNumericShortSliceDefaults(t *testing.T) {
	v, warnings := ParseNumeric([]byte("12"), "x", "X", 5)
	if v != 0 {
		t.Fatalf("expected default zero, got %d", v)
	}
	if len(warnings) != 1 || warnings[0].Severity != Warning {
		t.Fatalf("expected one ShortField warning, got %v", warnings)
	}
}

func TestCodecsToleratesShortSlice(t *testing.T) {
	codecs := []Codec{AlphaCodec{Len: 10}, NumericCodec{Len: 10}, DateCodec{}, TimeCodec{}, BooleanCodec{}, FlagCodec{}, ShareCodec{}}
	for _, c := range codecs {
		_, warnings := c.Parse([]byte(""), "x", "X")
		if len(warnings) == 0 {
			t.Errorf("%T: expected a warning for empty slice", c)
		}
	}
}
