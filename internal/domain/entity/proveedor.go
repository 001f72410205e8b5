package entity

import "time"

// Proveedor surte tarimas completas (embotelladoras, cerveceras).
type Proveedor struct {
	ID        string
	Nombre    string
	RFC       string
	Telefono  string
	CreatedAt time.Time
}
