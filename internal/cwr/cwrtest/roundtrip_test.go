// Package cwrtest holds integration-style tests that exercise a full
// parse -> format round trip across the whole session, mirroring the
// teacher's internal/integration_test package-level test files
// (SPEC_FULL.md §10.5) rather than unit-testing one component in
// isolation.
package cwrtest

import (
	"strings"
	"testing"

	"github.com/leengari/cwrkit/internal/cwr/cwrversion"
	"github.com/leengari/cwrkit/internal/cwr/dispatch"
	"github.com/leengari/cwrkit/internal/cwr/field"
	"github.com/leengari/cwrkit/internal/cwr/session"
)

// TestMinimalHDRRoundTrip is spec.md §8 scenario 1, built from
// HDRDescriptor's actual v2.0 column layout (record_type(3) + sender_type(2)
// + sender_id(9) + sender_name(45) + edi_std_version(5) + creation_date(8) +
// creation_time(6) + transmission_date(8) = 86 bytes) rather than pasted
// verbatim from the distilled spec's illustrative line, which this
// descriptor's byte totals intentionally diverge from (see
// schema_framing.go's doc comment).
func TestMinimalHDRRoundTrip(t *testing.T) {
	line := "HDR" + "PB" + pad("000000001", 9) + pad("ACME PUBLISHING CO", 45) +
		"01.10" + "20240101" + "120030" + "20240101"
	s := session.New()
	results, err := s.ParseAll(strings.NewReader(line + "\r\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results", len(results))
	}
	rec := results[0].Record
	if len(results[0].Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", results[0].Warnings)
	}
	if rec.Tag != "HDR" {
		t.Fatalf("got tag %q", rec.Tag)
	}
	if rec.Alpha("sender_id") != "000000001" {
		t.Fatalf("got sender_id %q", rec.Alpha("sender_id"))
	}
	if rec.Alpha("sender_name") != "ACME PUBLISHING CO" {
		t.Fatalf("got sender_name %q", rec.Alpha("sender_name"))
	}
	if rec.Alpha("edi_std_version") != "01.10" {
		t.Fatalf("got edi %q", rec.Alpha("edi_std_version"))
	}

	out, err := dispatch.Write(rec, cwrversion.V20)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != line {
		t.Fatalf("round trip mismatch:\n got: %q\nwant: %q", out, line)
	}
}

// TestMalformedDateInAGR is spec.md §8 scenario 3.
func TestMalformedDateInAGR(t *testing.T) {
	// AGR prefix (19) + submitter_agreement_number(14) + ISAC(14) +
	// agreement_type(2) lands agreement_start_date at column 49.
	prefix := "AGR" + "00000001" + "00000001" // 19 bytes
	submitterAgreementNum := pad("AG00000000001", 14)
	isac := pad("", 14)
	agreementType := "OG"
	badDate := "2023XX01"
	rest := pad("", 107-49-8) // pad out to the 2.0 AGR line length (107) after the bad date
	lineStr := prefix + submitterAgreementNum + isac + agreementType + badDate + rest

	s := session.New(session.WithVersionOverride(cwrversion.V20))
	results, err := s.ParseAll(strings.NewReader(lineStr + "\r\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results", len(results))
	}
	rec := results[0].Record
	if !rec.Date("agreement_start_date").Zero {
		t.Fatalf("expected zero-date sentinel, got %v", rec.Date("agreement_start_date"))
	}
	found := false
	for _, w := range results[0].Warnings {
		if w.Field == "agreement_start_date" && w.Severity == field.Warning && w.Source == badDate {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a Warning for agreement_start_date with source %q, got %v", badDate, results[0].Warnings)
	}
}

// TestUnknownRecordTag is spec.md §8 scenario 4.
func TestUnknownRecordTag(t *testing.T) {
	line := "ZZZ0000000100000001garbage"
	s := session.New()
	results, err := s.ParseAll(strings.NewReader(line + "\r\n"))
	if err != nil {
		t.Fatal(err)
	}
	if results[0].Record.Tag != "ZZZ" {
		t.Fatalf("got %q", results[0].Record.Tag)
	}
	if len(results[0].Warnings) != 1 || results[0].Warnings[0].Severity != field.Critical {
		t.Fatalf("expected one Critical warning, got %v", results[0].Warnings)
	}
}

// TestOverflowOnWrite is spec.md §8 scenario 6.
func TestOverflowOnWrite(t *testing.T) {
	s := session.New(session.WithVersionOverride(cwrversion.V20))
	prefix := "AGR" + "00000001" + "00000001"
	submitterAgreementNum := pad("AG00000000001", 14)
	isac := pad("", 14)
	agreementType := "OG"
	startDate := "20240101"
	rest := pad("", 107-49-8)
	lineStr := prefix + submitterAgreementNum + isac + agreementType + startDate + rest

	results, err := s.ParseAll(strings.NewReader(lineStr + "\r\n"))
	if err != nil {
		t.Fatal(err)
	}
	rec := results[0].Record
	overflowed := rec
	overflowed.Values = cloneValues(rec.Values)
	overflowed.Values["submitter_agreement_number"] = field.Alpha{Trimmed: "TOOLONGVALUE15X", Raw: "TOOLONGVALUE15X"}

	if _, err := dispatch.Write(overflowed, cwrversion.V20); err == nil {
		t.Fatal("expected an overflow error when formatting a 15-char value into a 14-column field")
	}
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	return s + strings.Repeat(" ", width-len(s))
}

func cloneValues(v map[string]any) map[string]any {
	out := make(map[string]any, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}
