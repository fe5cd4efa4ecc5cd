package ranking

import (
	"sort"

	"github.com/m04kA/SMC-IntakeService/internal/domain"
)

// Rank упорядочивает кандидатов по уровням рейтинга
//
// 1. rating >= 4 по расстоянию, не больше topLimit штук
// 2. 3 <= rating < 4 по расстоянию
// 3. остальные (и без рейтинга) по убыванию рейтинга, при равенстве или nil - по расстоянию
//
// topLimit <= 0 означает значение по умолчанию. Входной срез не изменяется.
func Rank(candidates []domain.Candidate, topLimit int) []domain.Candidate {
	if topLimit <= 0 {
		topLimit = domain.DefaultTopTierLimit
	}

	top, mid, rest := partition(candidates)

	byDistance := func(list []domain.Candidate) {
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].DistanceKm < list[j].DistanceKm
		})
	}
	byDistance(top)
	byDistance(mid)

	insertionSort(rest, lowTierLess)

	if len(top) > topLimit {
		top = top[:topLimit]
	}

	result := make([]domain.Candidate, 0, len(top)+len(mid)+len(rest))
	result = append(result, top...)
	result = append(result, mid...)
	result = append(result, rest...)

	return result
}

// lowTierLess не транзитивен, если в уровне есть и nil, и разные рейтинги:
// {r2,d5} < {r1,d1} < {nil,d3} < {r2,d5}. Поэтому порядок задает insertionSort,
// а не sort: результат зависит только от входного порядка.
func lowTierLess(a, b domain.Candidate) bool {
	if a.Rating != nil && b.Rating != nil && *a.Rating != *b.Rating {
		return *a.Rating > *b.Rating
	}
	return a.DistanceKm < b.DistanceKm
}

// insertionSort стабильная сортировка вставками; элемент сдвигается назад,
// пока он строго меньше предыдущего
func insertionSort(list []domain.Candidate, less func(a, b domain.Candidate) bool) {
	for i := 1; i < len(list); i++ {
		for j := i; j > 0 && less(list[j], list[j-1]); j-- {
			list[j], list[j-1] = list[j-1], list[j]
		}
	}
}

func partition(candidates []domain.Candidate) (top, mid, rest []domain.Candidate) {
	for _, c := range candidates {
		switch {
		case c.Rating != nil && *c.Rating >= domain.TopTierMinRating:
			top = append(top, c)
		case c.Rating != nil && *c.Rating >= domain.MidTierMinRating:
			mid = append(mid, c)
		default:
			rest = append(rest, c)
		}
	}
	return top, mid, rest
}
