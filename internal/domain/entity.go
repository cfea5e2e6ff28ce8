package domain

import "fmt"

// EntityID - упакованный идентификатор (Generation + Index).
// Индекс переиспользуется после смерти сущности, поколение при этом растет,
// поэтому "протухшая" ссылка на старого жильца слота никогда не совпадет с новым.
type EntityID uint64

// Конфигурация битов
const (
	bitsIndex = 32

	// Сдвиг
	shiftGeneration = bitsIndex

	// Маски (для извлечения значений)
	maskIndex      = (1 << bitsIndex) - 1 // 0xFFFFFFFF
	maskGeneration = (1 << 32) - 1
)

// PackEntityID создает ID из компонентов
func PackEntityID(index uint32, generation uint32) EntityID {
	id := uint64(index) & maskIndex
	id |= (uint64(generation) & maskGeneration) << shiftGeneration
	return EntityID(id)
}

// --- МЕТОДЫ ДОСТУПА ---

func (id EntityID) Index() uint32 {
	return uint32(id & maskIndex)
}

func (id EntityID) Generation() uint32 {
	return uint32((id >> shiftGeneration) & maskGeneration)
}

// String для логов: выводим красиво [Gen:Idx]
func (id EntityID) String() string {
	return fmt.Sprintf("[%d:%d]", id.Generation(), id.Index())
}
