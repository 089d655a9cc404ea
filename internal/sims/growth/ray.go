package growth

import "raytree/internal/geom"

// initialNudge offsets a new tip from its start so the first segment has a
// direction before the ray has moved.
const initialNudge = 1.0 / 100

// Ray is one growing branch. Start stays fixed for the ray's life; End is the
// tip and moves by Vel each micro-step.
type Ray struct {
	ID    int
	Alive bool
	Age   int
	Start geom.Vector
	End   geom.Vector
	Vel   geom.Vector
}

func newRay(id int, start geom.Vector, degs float64) *Ray {
	vel := geom.Polar(1, degs)
	return &Ray{
		ID:    id,
		Alive: true,
		Start: start,
		End:   geom.Add(start, vel.Scale(initialNudge)),
		Vel:   vel,
	}
}

// Heading returns the direction of travel in degrees.
func (r *Ray) Heading() float64 { return r.Vel.Degs() }

// Segment returns the path travelled so far.
func (r *Ray) Segment() geom.Segment { return geom.NewSegment(r.Start, r.End) }
