package dispatch

import (
	"bytes"
	"strings"
	"testing"

	"github.com/leengari/cwrkit/internal/cwr/cwrversion"
	"github.com/leengari/cwrkit/internal/cwr/field"
	"github.com/leengari/cwrkit/internal/cwr/record"
)

func TestDispatchUnknownTag(t *testing.T) {
	resolver := cwrversion.NewResolver(nil)
	res := Dispatch(resolver, []byte("ZZZ0000000100000001"))
	if res.Record.Tag != "ZZZ" {
		t.Fatalf("got tag %q", res.Record.Tag)
	}
	if len(res.Warnings) != 1 || res.Warnings[0].Severity != field.Critical {
		t.Fatalf("expected one Critical warning, got %v", res.Warnings)
	}
}

func TestDispatchTruncatedLine(t *testing.T) {
	resolver := cwrversion.NewResolver(nil)
	res := Dispatch(resolver, []byte("HD"))
	if len(res.Warnings) != 1 || res.Warnings[0].Severity != field.Critical {
		t.Fatalf("expected one Critical warning, got %v", res.Warnings)
	}
}

func TestDispatchHDRUpdatesResolverVersion(t *testing.T) {
	resolver := cwrversion.NewResolver(nil)
	line := make([]byte, cwrversion.HDRLength(cwrversion.V22))
	for i := range line {
		line[i] = ' '
	}
	copy(line[0:3], []byte("HDR"))
	copy(line[101:104], []byte("2.2"))

	res := Dispatch(resolver, line)
	if res.Record.Tag != "HDR" {
		t.Fatalf("got %q", res.Record.Tag)
	}
	if resolver.Active() != cwrversion.V22 {
		t.Fatalf("expected resolver to adopt 2.2, got %v", resolver.Active())
	}
}

func TestWriteAndDispatchRoundTripTRL(t *testing.T) {
	rec := record.Record{
		Tag: "TRL",
		Values: record.Values{
			"record_type":       field.Alpha{Trimmed: "TRL", Raw: "TRL"},
			"group_count":       int64(1),
			"transaction_count": int64(2),
			"record_count":      int64(10),
		},
	}
	line, err := Write(rec, cwrversion.V22)
	if err != nil {
		t.Fatal(err)
	}
	resolver := cwrversion.NewResolver(nil)
	res := Dispatch(resolver, line)
	if len(res.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", res.Warnings)
	}
	if res.Record.Int("transaction_count") != 2 {
		t.Fatalf("got %v", res.Record.Values)
	}
}

func TestWriterWriteAllFramesCRLF(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, cwrversion.V22)
	rec := record.Record{
		Tag: "TRL",
		Values: record.Values{
			"record_type":       field.Alpha{Trimmed: "TRL", Raw: "TRL"},
			"group_count":       int64(1),
			"transaction_count": int64(1),
			"record_count":      int64(1),
		},
	}
	if err := w.WriteAll([]record.Record{rec}); err != nil {
		t.Fatal(err)
	}
	if err := w.Flush(); err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(buf.String(), "\r\n") {
		t.Fatalf("expected CRLF terminator, got %q", buf.String())
	}
}

func TestCountFrameCountsTransactionsAndGroups(t *testing.T) {
	records := []record.Record{
		{Tag: "HDR"}, {Tag: "GRH"}, {Tag: "NWR"}, {Tag: "SPU"}, {Tag: "GRT"}, {Tag: "TRL"},
	}
	fc := CountFrame(records)
	if fc.GroupCount != 1 || fc.TransactionCount != 1 || fc.RecordCount != 6 {
		t.Fatalf("got %+v", fc)
	}
}
