package entity

import "time"

// Bodega es uno de los dos centros de distribución.
type Bodega struct {
	ID        string
	Nombre    string
	Direccion string
	CreatedAt time.Time
	UpdatedAt time.Time
}
