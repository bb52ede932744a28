/*
Package stats provides the pure numeric kernel shared by the histogram
split evaluator and the tree grower: the variance-reduction gain
contribution of a partial sum, and the two leaf-value update rules
(regression and classification) that turn accumulated residuals (and,
for classification, denominators) into an additive-model increment.
*/
package stats

// GainContrib returns the variance-reduction contribution of a side of
// a candidate split: (sumResidual^2) / count. The split gain for a
// leaf is the parent's own contribution minus the sum of GainContrib
// over classes and over both sides of the candidate cut.
//
// count is expected to be >= 1 whenever this is invoked; count == 0 is
// guarded here defensively and contributes 0 rather than dividing by
// zero.
func GainContrib(sumResidual float64, count float64) float64 {
	if count == 0 {
		return 0
	}
	return (sumResidual * sumResidual) / count
}

// RegressionLeafValue returns the leaf increment for a regression
// target: the mean residual over the leaf.
func RegressionLeafValue(sumResidual, count float64) float64 {
	if count == 0 {
		return 0
	}
	return sumResidual / count
}

// ClassificationLeafValue returns the Newton step for a multinomial
// log-odds update: sumResidual / sumDenominator. It is defined as 0
// when sumDenominator is 0, matching the source's zero-guard rather
// than propagating a NaN into the model.
func ClassificationLeafValue(sumResidual, sumDenominator float64) float64 {
	if sumDenominator == 0 {
		return 0
	}
	return sumResidual / sumDenominator
}
