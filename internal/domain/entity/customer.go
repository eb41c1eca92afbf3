package entity

import "time"

// Customer representa un cliente. Inmutable después del registro;
// nunca participa en la lógica de estoque.
type Customer struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
}
