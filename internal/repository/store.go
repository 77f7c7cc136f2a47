package repository

import "sync/atomic"

// Dataset agrupa los dos artefactos ya validados entre sí.
type Dataset struct {
	Catalog *Catalog
	Matrix  *Matrix
}

// Store guarda el dataset activo. Arranca vacío (modo degradado) y
// /admin/reload lo puede reemplazar entero: el swap es atómico, cada
// request trabaja sobre el puntero que leyó y nunca ve una mezcla.
type Store struct {
	ds atomic.Pointer[Dataset]
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Set(ds *Dataset) {
	s.ds.Store(ds)
}

// Dataset devuelve el dataset activo, o ok=false si todavía no se pudo
// cargar nada (los handlers responden "Model not loaded").
func (s *Store) Dataset() (*Dataset, bool) {
	ds := s.ds.Load()
	return ds, ds != nil
}
