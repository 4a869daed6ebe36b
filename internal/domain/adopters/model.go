package adopters

// Adopter es la persona que adopta.
type Adopter struct {
	ID        int64
	FirstName string
	LastName  string
	Phone     string
}

// FullName es el formato que usan los listados de adopciones ("First Last").
func (a Adopter) FullName() string {
	return a.FirstName + " " + a.LastName
}

// ListFilter: el orden es siempre por ID ascendente.
type ListFilter struct {
	// AvailableOnly excluye adoptantes con alguna adopción Completed.
	AvailableOnly bool
}
