package algebra

// FinitelyGeneratedModule is a named module over a Noetherian ring.
type FinitelyGeneratedModule struct {
	name       string
	Rank       int
	projective bool
}

// NewFinitelyGeneratedModule creates a module that is not yet marked projective.
func NewFinitelyGeneratedModule(name string, rank int) *FinitelyGeneratedModule {
	return &FinitelyGeneratedModule{name: name, Rank: rank}
}

// Name returns the module's label.
func (m *FinitelyGeneratedModule) Name() string {
	return m.name
}

// SetProjective marks the module projective or not.
func (m *FinitelyGeneratedModule) SetProjective(projective bool) {
	m.projective = projective
}

// IsProjective reports the projective flag.
func (m *FinitelyGeneratedModule) IsProjective() bool {
	return m.projective
}

// VerifyProperties reports whether the module has non-zero rank.
func (m *FinitelyGeneratedModule) VerifyProperties() bool {
	return m.Rank > 0
}

// IsFreeAtLocalization reports whether the module is free after localizing at
// ideal. Simplified: any module of positive rank is free everywhere, so the
// ideal is not consulted.
func (m *FinitelyGeneratedModule) IsFreeAtLocalization(ideal Ideal) bool {
	return m.Rank > 0
}
