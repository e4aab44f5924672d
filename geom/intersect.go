package geom

// SegmentIntersectsCircle reports whether the segment a-b comes within
// radius of center. Either endpoint inside the circle counts; otherwise the
// perpendicular foot must fall within the segment and within the radius.
func SegmentIntersectsCircle(a, b, center Vector, radius float64) bool {
	rr := radius * radius
	if a.DistanceSq(center) <= rr || b.DistanceSq(center) <= rr {
		return true
	}
	d := b.Sub(a)
	dd := d.LengthSq()
	if dd == 0 {
		return false
	}
	t := center.Sub(a).Dot(d) / dd
	if t <= 0 || t >= 1 {
		return false
	}
	return a.Add(d.Scale(t)).DistanceSq(center) <= rr
}
