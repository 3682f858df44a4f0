package record

// registry maps a record tag to its compile-time Descriptor, built once
// from every schema_*.go var. C8 (the dispatcher) uses this to resolve the
// 3-character tag it reads off a line to the right field list (spec.md
// §4.8 step 4), the same way the teacher's engine.Table set resolves a SQL
// statement's table name to a schema before validating a row against it.
var registry = buildRegistry()

func buildRegistry() map[string]*Descriptor {
	all := []*Descriptor{
		HDRDescriptor, GRHDescriptor, GRTDescriptor, TRLDescriptor,
		AGRDescriptor, NWRDescriptor, REVDescriptor, ISWDescriptor, EXCDescriptor, ACKDescriptor,
		TERDescriptor, IPADescriptor, NPADescriptor, SPUDescriptor, NPNDescriptor, SPTDescriptor,
		OPTDescriptor, SWRDescriptor, NWNDescriptor, SWTDescriptor, OWTDescriptor, PWRDescriptor,
		OWRDescriptor, ALTDescriptor, NATDescriptor, EWTDescriptor, NETDescriptor, VERDescriptor,
		NVTDescriptor, PERDescriptor, NPRDescriptor, RECDescriptor, ORNDescriptor, INSDescriptor,
		INDDescriptor, COMDescriptor, NCTDescriptor, NOWDescriptor, MSGDescriptor, ARIDescriptor,
		XRFDescriptor,
	}
	m := make(map[string]*Descriptor, len(all))
	for _, d := range all {
		m[d.Tag] = d
	}
	return m
}

// ByTag returns the Descriptor registered for tag, and whether it exists.
func ByTag(tag string) (*Descriptor, bool) {
	d, ok := registry[tag]
	return d, ok
}

// Tags returns every registered record tag, for hosts that want to list
// what this module understands (e.g. a CLI's --help or a GRH transaction
// type validator).
func Tags() []string {
	tags := make([]string, 0, len(registry))
	for tag := range registry {
		tags = append(tags, tag)
	}
	return tags
}
