package ranking

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultWeights(t *testing.T) {
	w := DefaultWeights()
	assert.Equal(t, 0.25, w[CriterionPrice])
	assert.Equal(t, 0.35, w[CriterionCategory])
	assert.Equal(t, 0.15, w[CriterionLanguage])
	assert.Equal(t, 0.10, w[CriterionGender])
	assert.Equal(t, 0.15, w[CriterionFormat])

	var sum float64
	for _, v := range w {
		sum += v
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
	assert.NoError(t, w.Validate())
}

func TestWeightsValidate(t *testing.T) {
	assert.NoError(t, Weights{}.Validate())
	assert.NoError(t, Weights{3, 3, 3, 3, 3}.Validate())
	assert.ErrorIs(t, Weights{-0.1}.Validate(), ErrInvalidWeights)
	assert.ErrorIs(t, Weights{math.NaN()}.Validate(), ErrInvalidWeights)
	assert.ErrorIs(t, Weights{0, math.Inf(1)}.Validate(), ErrInvalidWeights)
}

func TestWeightsWith(t *testing.T) {
	base := DefaultWeights()

	got, err := base.With(map[string]float64{"Price": 0.5, "gender": 0})
	require.NoError(t, err)
	assert.Equal(t, 0.5, got[CriterionPrice])
	assert.Equal(t, 0.0, got[CriterionGender])
	assert.Equal(t, 0.35, got[CriterionCategory])
	assert.Equal(t, DefaultWeights(), base, "base must not change")

	_, err = base.With(map[string]float64{"distance": 1})
	assert.ErrorIs(t, err, ErrInvalidWeights)

	_, err = base.With(map[string]float64{"format": -2})
	assert.ErrorIs(t, err, ErrInvalidWeights)

	same, err := base.With(nil)
	require.NoError(t, err)
	assert.Equal(t, base, same)
}

func TestCriterionNamesAndParse(t *testing.T) {
	assert.Equal(t, []string{"price", "category", "language", "gender", "format"}, CriterionNames())
	c, ok := ParseCriterion(" Format ")
	assert.True(t, ok)
	assert.Equal(t, CriterionFormat, c)
	_, ok = ParseCriterion("rating")
	assert.False(t, ok)
	assert.Equal(t, "criterion(9)", Criterion(9).String())
}

func writeCalibration(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ranking.calibration.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadCalibration(t *testing.T) {
	t.Run("ruta vacia usa defaults", func(t *testing.T) {
		w, err := LoadCalibration("")
		require.NoError(t, err)
		assert.Equal(t, DefaultWeights(), w)
	})

	t.Run("override parcial", func(t *testing.T) {
		path := writeCalibration(t, "weights:\n  price: 0.4\n  gender: 0\n")
		w, err := LoadCalibration(path)
		require.NoError(t, err)
		assert.Equal(t, 0.4, w[CriterionPrice])
		assert.Equal(t, 0.0, w[CriterionGender])
		assert.Equal(t, 0.35, w[CriterionCategory])
	})

	t.Run("archivo inexistente", func(t *testing.T) {
		w, err := LoadCalibration(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
		assert.Equal(t, DefaultWeights(), w)
	})

	t.Run("criterio desconocido", func(t *testing.T) {
		path := writeCalibration(t, "weights:\n  rating: 0.4\n")
		w, err := LoadCalibration(path)
		assert.ErrorIs(t, err, ErrInvalidWeights)
		assert.Equal(t, DefaultWeights(), w)
	})

	t.Run("peso negativo", func(t *testing.T) {
		path := writeCalibration(t, "weights:\n  category: -1\n")
		_, err := LoadCalibration(path)
		assert.ErrorIs(t, err, ErrInvalidWeights)
	})
}
