package availability

import "github.com/m04kA/SMC-IntakeService/internal/domain"

// Match превращает почасовые слоты исполнителя в карту "<daycode>-<daypart>" → bool
//
// В результат попадают только дни, где есть хотя бы один валидный свободный час.
// Записи с неизвестным днём, некорректным часом, часом вне сетки 7-22
// или статусом, отличным от "beschikbaar", пропускаются.
func Match(slots []domain.AvailabilitySlot, requiredHours float64) map[string]bool {
	result := make(map[string]bool)
	byDay := groupByDay(slots)

	for _, day := range domain.Week {
		hours, ok := byDay[day]
		if !ok {
			continue
		}
		blocks := Blocks(hours)
		for i, dp := range domain.Dayparts {
			result[domain.DaypartKey(day, dp.Name)] = satisfies(blocks, i, requiredHours)
		}
	}

	return result
}

// MatchDay то же, что Match, но для одного дня; ключи - имена дневных частей
func MatchDay(slots []domain.AvailabilitySlot, day domain.DayName, requiredHours float64) map[string]bool {
	result := make(map[string]bool, len(domain.Dayparts))

	hours, ok := groupByDay(slots)[day]
	if !ok {
		return result
	}
	blocks := Blocks(hours)
	for i, dp := range domain.Dayparts {
		result[dp.Name] = satisfies(blocks, i, requiredHours)
	}

	return result
}

func groupByDay(slots []domain.AvailabilitySlot) map[domain.DayName][]int {
	byDay := make(map[domain.DayName][]int)

	for _, slot := range slots {
		if !slot.IsAvailable() || !slot.Day.IsValid() {
			continue
		}
		hour, err := ParseHour(slot.Hour)
		if err != nil {
			continue
		}
		byDay[slot.Day] = append(byDay[slot.Day], hour)
	}

	return byDay
}

// satisfies проверяет правила для дневной части в порядке приоритета
func satisfies(blocks []Block, daypartIndex int, requiredHours float64) bool {
	dp := domain.Dayparts[daypartIndex]

	// Без требуемой длительности достаточно любого пересечения
	if requiredHours <= 0 {
		for _, b := range blocks {
			if b.touches(dp.Start, dp.End) {
				return true
			}
		}
		return false
	}

	// A: пересечение блока с дневной частью покрывает длительность
	for _, b := range blocks {
		if float64(b.overlap(dp.Start, dp.End)) >= requiredHours {
			return true
		}
	}

	// B: блок касается дневной части и сам по себе достаточно длинный
	for _, b := range blocks {
		if b.touches(dp.Start, dp.End) && float64(b.Length) >= requiredHours {
			return true
		}
	}

	// C: блок переходит в следующую дневную часть (только вперёд)
	if daypartIndex+1 >= len(domain.Dayparts) {
		return false
	}
	next := domain.Dayparts[daypartIndex+1]
	for _, b := range blocks {
		if b.Start < dp.End && b.End > next.Start &&
			float64(b.overlap(dp.Start, next.End)) >= requiredHours {
			return true
		}
	}

	return false
}
