package sampledset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSliceInstancesReturnsUnderlyingRows(t *testing.T) {
	s := Slice{{Bin: 1, Residuals: []float64{1}}, {Bin: 2, Residuals: []float64{2}}}
	instances, err := s.Instances()
	require.NoError(t, err)
	require.Len(t, instances, 2)
}

func TestValidateRejectsNegativeBin(t *testing.T) {
	err := Validate([]Instance{{Bin: -1, Residuals: []float64{1}}}, 1)
	require.Error(t, err)
}

func TestValidateRejectsResidualLengthMismatch(t *testing.T) {
	err := Validate([]Instance{{Bin: 0, Residuals: []float64{1, 2}}}, 1)
	require.Error(t, err)
}

func TestValidateAllowsNilDenominatorsForRegression(t *testing.T) {
	err := Validate([]Instance{{Bin: 0, Residuals: []float64{1}}}, 1)
	require.NoError(t, err)
}

func TestValidateRejectsDenominatorLengthMismatch(t *testing.T) {
	err := Validate([]Instance{{Bin: 0, Residuals: []float64{1, 2}, Denominators: []float64{1}}}, 2)
	require.Error(t, err)
}

func TestValidateRejectsNegativeDenominator(t *testing.T) {
	err := Validate([]Instance{{Bin: 0, Residuals: []float64{1}, Denominators: []float64{-0.5}}}, 1)
	require.Error(t, err)
}
