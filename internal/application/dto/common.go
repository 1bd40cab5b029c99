package dto

// Envelope cuerpo estándar de toda respuesta del API:
// {success, data?, message?, error?}.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// OK construye una respuesta exitosa con data.
func OK(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

// OKMensaje construye una respuesta exitosa con data y mensaje.
func OKMensaje(data any, mensaje string) Envelope {
	return Envelope{Success: true, Data: data, Message: mensaje}
}

// Fallo construye una respuesta de error con mensaje legible y detalle opcional.
func Fallo(mensaje, detalle string) Envelope {
	return Envelope{Success: false, Message: mensaje, Error: detalle}
}

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// DefaultPage aplica valores por defecto y topes si Limit/Offset son inválidos.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}
