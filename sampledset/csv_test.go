package sampledset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadCSVRegressionNoDenominators(t *testing.T) {
	data := "0,1.5\n1,-2.25\n"
	instances, err := ReadCSV(strings.NewReader(data), 1)
	require.NoError(t, err)
	require.Equal(t, Slice{
		{Bin: 0, Residuals: []float64{1.5}},
		{Bin: 1, Residuals: []float64{-2.25}},
	}, instances)
}

func TestReadCSVClassificationWithDenominators(t *testing.T) {
	data := "0,1,-1,0.5,0.5\n"
	instances, err := ReadCSV(strings.NewReader(data), 2)
	require.NoError(t, err)
	require.Len(t, instances, 1)
	require.Equal(t, []float64{1, -1}, instances[0].Residuals)
	require.Equal(t, []float64{0.5, 0.5}, instances[0].Denominators)
}

func TestReadCSVRejectsWrongColumnCount(t *testing.T) {
	data := "0,1,2,3\n"
	_, err := ReadCSV(strings.NewReader(data), 1)
	require.Error(t, err)
}

func TestReadCSVRejectsNonNumericBin(t *testing.T) {
	data := "abc,1.0\n"
	_, err := ReadCSV(strings.NewReader(data), 1)
	require.Error(t, err)
}
