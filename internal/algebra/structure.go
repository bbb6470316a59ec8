package algebra

// Structure is implemented by every algebraic object that can report a name
// and check its own defining properties.
type Structure interface {
	Name() string
	VerifyProperties() bool
}

var (
	_ Structure = (*NoetherianRing)(nil)
	_ Structure = (*FinitelyGeneratedModule)(nil)
)
