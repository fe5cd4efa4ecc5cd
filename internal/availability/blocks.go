package availability

import "sort"

// Block максимальная серия подряд идущих свободных часов, End не включается
type Block struct {
	Start  int
	End    int
	Length int
}

// Blocks группирует часы в непрерывные блоки
// Порядок входных часов и дубликаты не важны
func Blocks(hours []int) []Block {
	if len(hours) == 0 {
		return nil
	}

	sorted := make([]int, len(hours))
	copy(sorted, hours)
	sort.Ints(sorted)

	blocks := make([]Block, 0, 4)
	start := sorted[0]
	prev := sorted[0]

	for _, h := range sorted[1:] {
		if h == prev {
			continue
		}
		if h != prev+1 {
			blocks = append(blocks, newBlock(start, prev+1))
			start = h
		}
		prev = h
	}
	blocks = append(blocks, newBlock(start, prev+1))

	return blocks
}

func newBlock(start, end int) Block {
	return Block{Start: start, End: end, Length: end - start}
}

// overlap возвращает количество часов пересечения блока с [start, end)
func (b Block) overlap(start, end int) int {
	lo := max(b.Start, start)
	hi := min(b.End, end)
	if hi <= lo {
		return 0
	}
	return hi - lo
}

// touches проверяет, что блок пересекается с [start, end) хотя бы на час
func (b Block) touches(start, end int) bool {
	return max(b.Start, start) < min(b.End, end)
}
