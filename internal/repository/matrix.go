package repository

import "fmt"

// Matrix es la matriz cuadrada de similitudes precalculada.
// matrix[i][j] = similitud entre la película de la fila i y la de la fila j.
type Matrix struct {
	rows [][]float64
}

// NewMatrix valida que la matriz sea cuadrada. La validación contra el
// tamaño del catálogo la hace el loader, que conoce a los dos.
func NewMatrix(rows [][]float64) (*Matrix, error) {
	n := len(rows)
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("matriz no cuadrada: fila %d tiene %d columnas, esperaba %d", i, len(row), n)
		}
	}
	return &Matrix{rows: rows}, nil
}

func (m *Matrix) Size() int {
	return len(m.rows)
}

// Row devuelve la fila i con bounds check explícito. El slice es el
// interno: los callers NO deben mutarlo.
func (m *Matrix) Row(i int) ([]float64, error) {
	if i < 0 || i >= len(m.rows) {
		return nil, fmt.Errorf("índice de fila fuera de rango: %d (matriz de %d)", i, len(m.rows))
	}
	return m.rows[i], nil
}
