package persistence

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
	"room-summary/internal/domain/model"
)

var ErrMissingArea = errors.New("card config has no area")

// YAMLCardConfigRepository reads a Lovelace-style card configuration.
type YAMLCardConfigRepository struct {
	filepath string
}

func NewYAMLCardConfigRepository(filepath string) *YAMLCardConfigRepository {
	return &YAMLCardConfigRepository{filepath: filepath}
}

// Get returns nil without error when the file does not exist.
func (r *YAMLCardConfigRepository) Get(ctx context.Context) (*model.Config, error) {
	data, err := os.ReadFile(r.filepath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read card config %s: %w", r.filepath, err)
	}

	var cfg model.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("decode card config %s: %w", r.filepath, err)
	}
	if cfg.Area == "" {
		return nil, fmt.Errorf("%s: %w", r.filepath, ErrMissingArea)
	}
	return &cfg, nil
}
