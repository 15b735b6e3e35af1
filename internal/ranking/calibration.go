package ranking

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// LoadCalibration lee overrides de pesos desde un archivo YAML:
//
//	weights:
//	  price: 0.3
//	  category: 0.3
//
// Los criterios ausentes conservan su peso por defecto. Ante cualquier error se
// devuelven los pesos por defecto junto con el error.
func LoadCalibration(path string) (Weights, error) {
	if path == "" {
		return DefaultWeights(), nil
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return DefaultWeights(), fmt.Errorf("load calibration %s: %w", path, err)
	}

	w, err := DefaultWeights().With(k.Float64Map("weights"))
	if err != nil {
		return DefaultWeights(), fmt.Errorf("calibration %s: %w", path, err)
	}
	return w, nil
}
