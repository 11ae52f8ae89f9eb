package board

import "github.com/sirupsen/logrus"

// Randomize marks every cell a hazard independently with probability num/den.
// It runs once per board: a second call returns ErrAlreadyPlaced and changes
// nothing. There is no guarantee against zero hazards, an all-hazard board,
// or a hazard under the starting cursor.
func (b *Board) Randomize(num, den int) error {
	if b.placed {
		return ErrAlreadyPlaced
	}
	if err := validateDensity(num, den); err != nil {
		return err
	}
	for i := range b.hazards {
		b.hazards[i] = b.rng.Intn(den) < num
	}
	b.placed = true
	b.log.WithFields(logrus.Fields{
		"numerator":   num,
		"denominator": den,
	}).Debug("randomized hazard layout")
	b.logPlacement()

	return nil
}
