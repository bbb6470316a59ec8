package algebra

// Ideal is a labelled ideal of a ring. Primality and maximality are given,
// not derived.
type Ideal struct {
	Name    string
	Prime   bool
	Maximal bool
}

// NewIdeal creates an ideal record.
func NewIdeal(name string, prime, maximal bool) Ideal {
	return Ideal{Name: name, Prime: prime, Maximal: maximal}
}

// Kind returns a short label for the ideal's flags.
func (i Ideal) Kind() string {
	switch {
	case i.Maximal:
		return "maximal"
	case i.Prime:
		return "prime"
	default:
		return "ideal"
	}
}
