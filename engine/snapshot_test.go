package engine

import (
	"encoding/json"
	"testing"

	"go-estate/const_data"
	"go-estate/dto"
	"go-estate/entities"
)

func TestSnapshotRoundTrip(t *testing.T) {
	g := newTestGame(t, 9, "a", "b")
	forceTurn(g, 0, PhaseLandPurchase)
	if _, out := g.BuyLand("a", "L01", entities.TierMarket); !out.OK {
		t.Fatalf("购地失败: %s", out.Message)
	}
	g.Claims["A01"] = "a"
	g.PendingFail["L03|b"] = true

	// 走一遍 JSON，和宿主层存 redis 的路径一致
	data, err := json.Marshal(g.Snapshot())
	if err != nil {
		t.Fatalf("快照序列化失败: %v", err)
	}
	var snap dto.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		t.Fatalf("快照反序列化失败: %v", err)
	}

	g2 := Restore(snap, 1)
	if g2.RoomID != g.RoomID || g2.Round != g.Round || g2.Phase != g.Phase {
		t.Fatalf("对局元信息应完整恢复")
	}
	if len(g2.Players) != 2 {
		t.Fatalf("玩家应完整恢复")
	}
	p := g2.FindPlayer("a")
	if p == nil || p.Cash != g.Players[0].Cash {
		t.Fatalf("玩家资金应完整恢复")
	}
	if p.Project == nil || p.Project.Land == nil || p.Project.Land.ID != "L01" {
		t.Fatalf("在建项目应完整恢复")
	}
	if g2.LandDeck.Size() != g.LandDeck.Size() {
		t.Fatalf("牌池应按快照恢复，不应重建")
	}
	if _, found := g2.LandDeck.Find("L01"); found {
		t.Fatalf("已售土地不应回到牌池")
	}
	if g2.Claims["A01"] != "a" {
		t.Fatalf("占用表应恢复")
	}
	if !g2.PendingFail["L03|b"] {
		t.Fatalf("购地失败记录应恢复")
	}

	// 网格归属也要跟着回来
	ownedCells := 0
	for r := 0; r < GridSize; r++ {
		for c := 0; c < GridSize; c++ {
			if g2.Grid.Cells[r][c].Owner == "a" {
				ownedCells++
			}
		}
	}
	if ownedCells != 1 {
		t.Fatalf("网格占格应恢复，实际 %d 格", ownedCells)
	}
}

func TestRestoreKeepsExhaustedDeckEmpty(t *testing.T) {
	g := newTestGame(t, 9, "a")
	forceTurn(g, 0, PhaseLandPurchase)
	if _, out := g.BuyLand("a", "L01", entities.TierMarket); !out.OK {
		t.Fatalf("购地失败: %s", out.Message)
	}
	// 土地全部售罄：抽空的牌池序列化后必须还是空，不能当成缺字段重建
	g.LandDeck.Draw(g.LandDeck.Size())
	data, err := json.Marshal(g.Snapshot())
	if err != nil {
		t.Fatalf("快照序列化失败: %v", err)
	}
	var snap dto.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		t.Fatalf("快照反序列化失败: %v", err)
	}
	g2 := Restore(snap, 1)
	if g2.LandDeck.Size() != 0 {
		t.Fatalf("售罄的牌池恢复后应仍为空，实际 %d 张", g2.LandDeck.Size())
	}
	if _, found := g2.LandDeck.Find("L01"); found {
		t.Fatalf("已售土地不应复活回牌池")
	}
}

func TestRestoreToleratesEmptySnapshot(t *testing.T) {
	// 老版本快照可能缺字段：全空也要能起一局可用的状态
	g := Restore(dto.Snapshot{RoomID: "r"}, 1)
	if g.Round != 1 || g.MaxRounds != DefaultMaxRounds {
		t.Fatalf("缺字段应回退默认值")
	}
	if g.Phase != PhaseSetup {
		t.Fatalf("缺阶段应回退到开局前")
	}
	if g.LandDeck.Size() != len(const_data.LandList) {
		t.Fatalf("缺牌池应按目录重建")
	}
	if g.RiskDeck.Size() == 0 {
		t.Fatalf("风险牌堆应按权重重建")
	}
	if g.Claims == nil || g.PendingFail == nil {
		t.Fatalf("映射字段不应为 nil")
	}
}
