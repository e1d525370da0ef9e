package gearscore

import (
	"strconv"
	"testing"

	"github.com/osse101/RaidBot_Go/internal/catalog"
	"github.com/osse101/RaidBot_Go/internal/domain"
)

func BenchmarkCalculate(b *testing.B) {
	items := make([]catalog.Item, 0, len(armorySlots))
	equipment := make([]domain.EquippedItem, 0, len(armorySlots))
	for i, slot := range armorySlots {
		items = append(items, catalog.Item{ID: i + 1, Level: 251 + i, Slot: slot, Quality: catalog.QualityEpic})
		equipment = append(equipment, domain.EquippedItem{Item: domain.ItemRef(strconv.Itoa(i + 1))})
	}
	e := NewEngine(catalog.New(items))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = e.Calculate(equipment, "Hunter")
	}
}
