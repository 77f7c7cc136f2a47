package service

import (
	"sort"
	"strings"

	"github.com/pranjul332/movie-recommender/internal/repository"
)

// Cortes del matcher difuso. Son parte del contrato del servicio (los
// mismos 0.6 / 0.3 del recomendador original), no parámetros tunables.
const (
	FuzzyCutoff      = 0.6
	SuggestionCutoff = 0.3
	MaxSuggestions   = 5
)

type MatchStrategy string

const (
	MatchExact    MatchStrategy = "exact"
	MatchContains MatchStrategy = "contains"
	MatchFuzzy    MatchStrategy = "fuzzy"
)

type TitleMatch struct {
	Index    int
	Title    string
	Strategy MatchStrategy
}

// MatchTitle resuelve un título libre contra el catálogo en tres niveles,
// parando en el primero que encuentra algo:
//
//  1. igualdad exacta (case-insensitive, query sin espacios en los bordes)
//  2. el título del catálogo contiene al query
//  3. match difuso: mejor sequenceRatio contra el query crudo, si >= 0.6
//
// En los tres niveles los empates se resuelven por orden de catálogo
// (gana la fila más baja), así la resolución es determinista.
func MatchTitle(query string, cat *repository.Catalog) (TitleMatch, bool) {
	q := strings.ToLower(strings.TrimSpace(query))

	for i := 0; i < cat.Size(); i++ {
		if strings.ToLower(cat.At(i).Title) == q {
			return TitleMatch{Index: i, Title: cat.At(i).Title, Strategy: MatchExact}, true
		}
	}

	for i := 0; i < cat.Size(); i++ {
		if strings.Contains(strings.ToLower(cat.At(i).Title), q) {
			return TitleMatch{Index: i, Title: cat.At(i).Title, Strategy: MatchContains}, true
		}
	}

	// nivel difuso: sobre el query crudo, igual que el original
	best, bestRatio := -1, 0.0
	for i := 0; i < cat.Size(); i++ {
		if r := sequenceRatio(query, cat.At(i).Title); r > bestRatio {
			best, bestRatio = i, r
		}
	}
	if best >= 0 && bestRatio >= FuzzyCutoff {
		return TitleMatch{Index: best, Title: cat.At(best).Title, Strategy: MatchFuzzy}, true
	}

	return TitleMatch{}, false
}

// Suggest devuelve hasta MaxSuggestions títulos con ratio >= 0.3 contra el
// query, ordenados por ratio descendente (empates por orden de catálogo).
// Que no haya ninguno no es un error: la lista vacía es una respuesta válida.
func Suggest(query string, cat *repository.Catalog) []string {
	type scored struct {
		idx   int
		ratio float64
	}

	var cands []scored
	for i := 0; i < cat.Size(); i++ {
		if r := sequenceRatio(query, cat.At(i).Title); r >= SuggestionCutoff {
			cands = append(cands, scored{idx: i, ratio: r})
		}
	}

	// estable + comparación estricta => los empates quedan en orden de catálogo
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].ratio > cands[j].ratio })

	if len(cands) > MaxSuggestions {
		cands = cands[:MaxSuggestions]
	}

	out := make([]string, 0, len(cands))
	for _, c := range cands {
		out = append(out, cat.At(c.idx).Title)
	}
	return out
}

// sequenceRatio es el ratio de Ratcliff/Obershelp tal como lo calcula el
// SequenceMatcher clásico de diff: 2*M/T, con M = caracteres cubiertos por
// los bloques comunes más largos (buscados recursivamente) y T = suma de
// longitudes. 1.0 para cadenas iguales, 0.0 sin ningún caracter en común.
// La implementación replica el algoritmo exacto porque los cortes 0.6/0.3
// están calibrados contra él; una distancia de edición normalizada puntúa
// distinto alrededor de los cortes.
func sequenceRatio(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	total := len(ra) + len(rb)
	if total == 0 {
		return 1.0
	}

	// posiciones de cada caracter en b, en orden ascendente
	b2j := make(map[rune][]int, len(rb))
	for j, ch := range rb {
		b2j[ch] = append(b2j[ch], j)
	}

	type span struct{ alo, ahi, blo, bhi int }
	stack := []span{{0, len(ra), 0, len(rb)}}

	matches := 0
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// bloque común más largo dentro de a[alo:ahi] x b[blo:bhi]
		besti, bestj, bestsize := s.alo, s.blo, 0
		j2len := map[int]int{}
		for i := s.alo; i < s.ahi; i++ {
			newj2len := map[int]int{}
			for _, j := range b2j[ra[i]] {
				if j < s.blo {
					continue
				}
				if j >= s.bhi {
					break
				}
				k := j2len[j-1] + 1
				newj2len[j] = k
				if k > bestsize {
					besti, bestj, bestsize = i-k+1, j-k+1, k
				}
			}
			j2len = newj2len
		}

		if bestsize == 0 {
			continue
		}
		matches += bestsize

		// recursión sobre lo que queda a cada lado del bloque
		if s.alo < besti && s.blo < bestj {
			stack = append(stack, span{s.alo, besti, s.blo, bestj})
		}
		if besti+bestsize < s.ahi && bestj+bestsize < s.bhi {
			stack = append(stack, span{besti + bestsize, s.ahi, bestj + bestsize, s.bhi})
		}
	}

	return 2.0 * float64(matches) / float64(total)
}
