package lookup

import "testing"

func TestSenderTypeRoundTrip(t *testing.T) {
	v, warnings := SenderTypeCodec.Parse([]byte("PB"), "sender_type", "Sender Type")
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if v.(SenderType) != SenderPublisher {
		t.Fatalf("got %v", v)
	}
	out, err := SenderTypeCodec.Format(v)
	if err != nil || out != "PB" {
		t.Fatalf("got %q %v", out, err)
	}
}

func TestUnknownCodeDefaultsAndWarns(t *testing.T) {
	v, warnings := AgreementTypeCodec.Parse([]byte("ZZ"), "agreement_type", "Agreement Type")
	if len(warnings) != 1 {
		t.Fatalf("expected one warning, got %v", warnings)
	}
	if v.(AgreementType) != AgreementUnknown {
		t.Fatalf("expected default, got %v", v)
	}
}

func TestLookupIsCaseSensitive(t *testing.T) {
	_, warnings := SenderTypeCodec.Parse([]byte("pb"), "sender_type", "Sender Type")
	if len(warnings) != 1 {
		t.Fatalf("expected lowercase to miss the table, got %v", warnings)
	}
}

func TestFormatPadsShorterCode(t *testing.T) {
	out, err := CharacterSetCodec.Format(CharsetASCII)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 15 {
		t.Fatalf("expected 15-byte padded field, got %q (%d)", out, len(out))
	}
}

func TestTISCodeRange(t *testing.T) {
	v, warnings := ParseTISCode([]byte("2136"), "tis_numeric_code", "TIS Numeric Code")
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if v != TISWorld {
		t.Fatalf("got %v", v)
	}
}

func TestWorksCountRange(t *testing.T) {
	if _, warnings := ParseWorksCount([]byte("00001"), "x", "X"); len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if _, err := FormatWorksCount(100000); err == nil {
		t.Fatal("expected overflow for 100000")
	}
}
