package dto

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit" validate:"min=1,max=100"`
	Offset int `query:"offset" validate:"min=0"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total,omitempty"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// QuotaErrorResponse cuerpo de error por cuota agotada: nombra el kind y el
// plan actual para que el frontend pueda ofrecer el upgrade.
type QuotaErrorResponse struct {
	Code    string `json:"code"` // siempre "QUOTA_EXCEEDED"
	Message string `json:"message"`
	Kind    string `json:"kind"`
	Plan    string `json:"plan"`
}

// ReorderRequest ids en el orden deseado (drag-and-drop del admin).
type ReorderRequest struct {
	OrderedIDs []string `json:"ordered_ids"`
}
