package service

import "errors"

// Sentinel kinds. Handlers map them to HTTP status codes with errors.Is;
// the message of the wrapping Error is safe to show to clients.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)

// Error carries a client-facing message together with its kind.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Msg }
func (e *Error) Unwrap() error { return e.Kind }

func notFound(msg string) error { return &Error{Kind: ErrNotFound, Msg: msg} }
func conflict(msg string) error { return &Error{Kind: ErrConflict, Msg: msg} }

var (
	errCategoriaNoEncontrada = notFound("Categoría no encontrada")
	errProductoNoEncontrado  = notFound("Producto no encontrado")
	errPostreNoEncontrado    = notFound("Postre no encontrado")
	errCategoriaDuplicada    = conflict("Ya existe una categoría con ese nombre")
	errCategoriaEnUso        = conflict("La categoría tiene productos o postres asociados")
)
