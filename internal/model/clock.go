package model

import "time"

// Now текущее время в UTC с точностью до миллисекунд.
// Одинаковая точность у всех хранилищ, поэтому createdAt == updatedAt сохраняется после чтения.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
