package pets

// Pet representa una mascota registrada en el refugio.
type Pet struct {
	ID      int64
	Name    string
	Species string
	Age     int
}

// ListFilter: el orden es siempre por ID ascendente.
type ListFilter struct {
	// AvailableOnly excluye mascotas con alguna adopción Completed.
	AvailableOnly bool
	// Species filtra por especie exacta (case-insensitive). Vacío = todas.
	Species string
}
