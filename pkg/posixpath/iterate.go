package posixpath

// Component iteration. The segment iterator is forward-only; bidirectional
// traversal just materializes the component list once and walks the slice
// either way.

// Segments tokenizes the path and returns every emitted segment in order.
// The segment views alias the path string.
func (p Path) Segments() []Segment {
	if p.Empty() {
		return nil
	}
	var segs []Segment
	it := NewSegmentIterator(p.s)
	for seg := it.Begin(); !seg.IsEnd(); seg = it.Next() {
		segs = append(segs, seg)
	}
	return segs
}

// Components returns the path's components as Paths, in iteration order:
// root name, root directory, each filename-like component, and a trailing
// separator component when one is present after a filename. Matches the
// component list the accessors imply, including the rule that a root-only
// path has no trailing-separator component.
func (p Path) Components() []Path {
	segs := p.Segments()
	if len(segs) == 0 {
		return nil
	}
	comps := make([]Path, 0, len(segs))
	for _, seg := range segs {
		comps = append(comps, New(seg.Str))
	}
	return comps
}
