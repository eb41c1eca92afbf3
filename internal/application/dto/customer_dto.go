package dto

import "time"

// CreateCustomerRequest entrada para registrar un cliente.
// El registro de clientes no se expone por HTTP: es un colaborador in-process
// (el frontend legado los mantenía solo en el navegador).
type CreateCustomerRequest struct {
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Telefone string `json:"telefone,omitempty"`
	Endereco string `json:"endereco,omitempty"`
}

// CustomerResponse cliente en respuestas.
type CustomerResponse struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	Email     string    `json:"email"`
	Telefone  string    `json:"telefone,omitempty"`
	Endereco  string    `json:"endereco,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
