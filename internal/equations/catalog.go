package equations

// Catalog returns the curated list of well-known equations shown by the
// list command. Any free-form equation works; these are starting points.
func Catalog() []string {
	return []string{
		"Newton's Second Law",
		"Einstein's Mass-Energy Equivalence",
		"Schrödinger's Equation",
		"Wave Equation",
		"Heat Conduction Equation",
		"Maxwell's Equations",
		"Ohm's Law",
		"Ideal Gas Law",
		"Universal Law of Gravitation",
		"Coulomb's Law",
	}
}
