package engine

import (
	"testing"

	"go-estate/const_data"
	"go-estate/entities"
)

func TestDrawNeverOverdraws(t *testing.T) {
	d := NewDeck(NewRNG(1), const_data.ArchitectList[:3])
	drawn := d.Draw(5)
	if len(drawn) != 3 {
		t.Fatalf("牌不够时应少发，实际发了 %d 张", len(drawn))
	}
	if d.Size() != 0 {
		t.Fatalf("抽完后牌堆应为空")
	}
}

func TestRefillSkipsCardsInPlay(t *testing.T) {
	d := NewDeck(NewRNG(1), const_data.ArchitectList)
	d.Remove("A01")
	d.Remove("A02")

	// A01 还在某个玩家项目上，补牌时不能补出第二张
	existing := map[string]bool{"A01": true}
	for _, a := range d.Items() {
		existing[a.ID] = true
	}
	d.Refill(func() []entities.Architect { return const_data.ArchitectList }, existing)

	count := 0
	for _, a := range d.Items() {
		if a.ID == "A01" {
			count++
		}
	}
	if count != 0 {
		t.Fatalf("在场的 A01 不应被补回，出现 %d 张", count)
	}
	if _, found := d.Find("A02"); !found {
		t.Fatalf("不在场的 A02 应被补回")
	}
}

func TestWeightedRiskDeckComposition(t *testing.T) {
	d := BuildWeighted(NewRNG(1), const_data.RiskTemplates, const_data.RiskWeight)

	counts := make(map[string]int)
	for _, r := range d.Items() {
		counts[r.ID]++
	}
	// 中立 ×6、利好 ×3、毁灭 ×1、高危 ×1、普通有害 ×2
	if counts["R09"] != 6 || counts["R10"] != 6 {
		t.Fatalf("中立卡应各 6 份: R09=%d R10=%d", counts["R09"], counts["R10"])
	}
	if counts["R07"] != 3 || counts["R08"] != 3 {
		t.Fatalf("利好卡应各 3 份")
	}
	if counts["R06"] != 1 {
		t.Fatalf("毁灭卡应只有 1 份，实际 %d", counts["R06"])
	}
	if counts["R05"] != 1 {
		t.Fatalf("高危卡应只有 1 份")
	}
	if counts["R03"] != 2 || counts["R01"] != 2 {
		t.Fatalf("普通有害卡应各 2 份")
	}
}

func TestPushReturnsCardToPool(t *testing.T) {
	d := NewDeck(NewRNG(1), const_data.ConstructorList)
	c, _ := d.Remove("C03")
	if _, found := d.Find("C03"); found {
		t.Fatalf("取走后不应再能找到")
	}
	d.Push(c)
	if _, found := d.Find("C03"); !found {
		t.Fatalf("放回后应重新可选")
	}
}
