package threshold

type Factory struct {
	strategies map[StrategyKind]Strategy
}

func NewFactory() *Factory {
	return &Factory{
		strategies: map[StrategyKind]Strategy{
			ConfigOverrideThreshold:   &ConfigOverrideStrategy{},
			AttributeCarriedThreshold: &AttributeCarriedStrategy{},
		},
	}
}

// GetStrategy falls back to the config override strategy for unknown kinds.
func (f *Factory) GetStrategy(kind StrategyKind) Strategy {
	if s, ok := f.strategies[kind]; ok {
		return s
	}
	return f.strategies[ConfigOverrideThreshold]
}
