package cwrversion

import "testing"

func TestDefaultVersionBeforeHDR(t *testing.T) {
	r := NewResolver(nil)
	if r.Active() != V22 {
		t.Fatalf("expected default 2.2, got %v", r.Active())
	}
}

func TestOverrideWinsOverHDR(t *testing.T) {
	v20 := V20
	r := NewResolver(&v20)
	line := make([]byte, HDRLength(V22))
	copy(line[101:104], []byte("2.2"))
	r.ObserveHDR(line)
	if r.Active() != V20 {
		t.Fatalf("override should win, got %v", r.Active())
	}
}

func TestHDRInfersFromLength(t *testing.T) {
	r := NewResolver(nil)
	line := make([]byte, HDRLength(V20))
	for i := range line {
		line[i] = ' '
	}
	r.ObserveHDR(line)
	if r.Active() != V20 {
		t.Fatalf("expected 2.0 inferred from short HDR, got %v", r.Active())
	}
}

func TestResolverIsIdempotentAndWarnsOnMismatch(t *testing.T) {
	r := NewResolver(nil)
	first := make([]byte, HDRLength(V20))
	for i := range first {
		first[i] = ' '
	}
	r.ObserveHDR(first)

	second := make([]byte, HDRLength(V22))
	copy(second[101:104], []byte("2.2"))
	warnings := r.ObserveHDR(second)

	if r.Active() != V20 {
		t.Fatalf("expected first-resolved version retained, got %v", r.Active())
	}
	if len(warnings) != 1 {
		t.Fatalf("expected one version-mismatch warning, got %v", warnings)
	}
}
