package dto

// The search payload keeps the keys the buscador page renders.

type ProductoEncontrado struct {
	Tipo        string `json:"tipo"`
	ID          uint   `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
	Categoria   string `json:"categoria"`
	Precio      string `json:"precio"`
	Disponible  string `json:"disponible"`
}

type PostreEncontrado struct {
	Tipo           string `json:"tipo"`
	ID             uint   `json:"id"`
	Nombre         string `json:"nombre"`
	Descripcion    string `json:"descripcion"`
	Categoria      string `json:"categoria"`
	PrecioRebanada string `json:"precio_rebanada"`
	PrecioTotal    string `json:"precio_total"`
	Rebanadas      int    `json:"rebanadas"`
	Disponible     string `json:"disponible"`
}

type BusquedaResponse struct {
	Termino         string               `json:"termino_busqueda"`
	Productos       []ProductoEncontrado `json:"productos"`
	Postres         []PostreEncontrado   `json:"postres"`
	TotalResultados int                  `json:"total_resultados"`
}
