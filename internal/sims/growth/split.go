package growth

const (
	// minSplitAge is the age a ray must exceed before it may split.
	minSplitAge = 2
	// splitDivisor turns Density into a per micro-step probability.
	splitDivisor = 40
)

type sampler interface {
	Float64() float64
}

// splitChance reports the per micro-step split probability.
func (p Params) splitChance() float64 { return p.Density / splitDivisor }

// childHeadings returns the headings in degrees of the two rays replacing a
// parent travelling at heading. Samples are drawn from rng in a fixed order
// so seeded runs repeat exactly.
func childHeadings(p Params, heading float64, rng sampler) (float64, float64) {
	chance := p.DeviationProbability / 100
	if p.SplitMode == SplitPrimarySecondary {
		deg := p.Angle
		switch p.DeviationMode {
		case DeviationBinary:
			if rng.Float64() < chance {
				if rng.Float64() < 0.5 {
					deg += p.Deviance
				} else {
					deg -= p.Deviance
				}
			}
		case DeviationContinuous:
			deg += rng.Float64()*p.Deviance*2 - p.Deviance
		}
		return heading + deg, heading + deg + 180
	}

	deg := p.Angle
	switch p.DeviationMode {
	case DeviationBinary:
		if rng.Float64() <= chance {
			deg -= p.Deviance
		}
	case DeviationContinuous:
		deg -= rng.Float64() * p.Deviance
	}
	return heading + deg, heading - deg
}
