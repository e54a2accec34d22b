package models

// Sede is a physical venue containing one or more fields.
type Sede struct {
	ID        int64   `json:"id_sede"`
	Nombre    string  `json:"nombre"`
	Direccion string  `json:"direccion"`
	Distrito  *string `json:"distrito,omitempty"`
	URLFoto   *string `json:"url_foto_sede,omitempty"`
}

// Cancha is a bookable sports field belonging to a venue.
type Cancha struct {
	ID             int64   `json:"id_cancha"`
	Nombre         string  `json:"nombre"`
	Descripcion    *string `json:"descripcion,omitempty"`
	TipoSuperficie *string `json:"tipo_superficie,omitempty"`
	PrecioHora     float64 `json:"precio_hora"`
	URLFoto        *string `json:"url_foto,omitempty"`
	Sede           *Sede   `json:"sede,omitempty"`
}
