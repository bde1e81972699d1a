package handler

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderRequest is the order form body. Field names keep the Italian wire
// vocabulary the frontend already speaks. The contact fields are only used
// for unauthenticated submissions.
type OrderRequest struct {
	Quantita  decimal.Decimal `json:"quantita"`
	Tipologia string          `json:"tipologia"`
	Indirizzo string          `json:"indirizzo"`
	Data      string          `json:"data"`
	Orario    string          `json:"orario"`
	Nome      string          `json:"nome,omitempty"`
	Cognome   string          `json:"cognome,omitempty"`
	Telefono  string          `json:"telefono,omitempty"`
}

// OrderListRequest carries the list view filter and sort query parameters
type OrderListRequest struct {
	Sort             string `form:"sort" binding:"omitempty,oneof=request quantity ice_type address status delivery"`
	Order            string `form:"order" binding:"omitempty,oneof=asc desc"`
	Stato            string `form:"stato"`
	Tipologia        string `form:"tipologia" binding:"omitempty,oneof=consumazione raffreddare"`
	IncludeCancelled bool   `form:"include_cancelled"`
}

// OrderResponse is the order shape returned to the client
type OrderResponse struct {
	ID              uuid.UUID       `json:"id"`
	UserID          uuid.UUID       `json:"user_id"`
	Quantita        decimal.Decimal `json:"quantita"`
	Tipologia       string          `json:"tipologia"`
	Indirizzo       string          `json:"indirizzo"`
	Data            string          `json:"data"`
	Orario          string          `json:"orario"`
	DataRichiesta   string          `json:"data_richiesta"`
	OrarioRichiesta string          `json:"orario_richiesta"`
	Stato           string          `json:"stato"`
}
