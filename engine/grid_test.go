package engine

import (
	"math"
	"testing"
)

func TestPlacePrefersRegionRow(t *testing.T) {
	g := NewCityGrid()
	cell := g.Place("a", "p1", 3)
	if cell == nil || cell.Row != 2 {
		t.Fatalf("3 号城区的项目应落在第 3 行")
	}
	if cell.Owner != "a" || cell.ProjectID != "p1" {
		t.Fatalf("格子应记录项目归属")
	}
}

func TestPlaceFallsBackWhenRowFull(t *testing.T) {
	g := NewCityGrid()
	for i := 0; i < GridSize; i++ {
		if g.Place("a", "p", 1) == nil {
			t.Fatalf("第 1 行还有空格")
		}
	}
	cell := g.Place("b", "q", 1)
	if cell == nil {
		t.Fatalf("行满后应全图找空格")
	}
	if cell.Row == 0 {
		t.Fatalf("第 1 行已满，不应再落在第 1 行")
	}
}

func TestPlaceClusterNextToOwnCells(t *testing.T) {
	g := NewCityGrid()
	first := g.Place("a", "p1", 2)
	second := g.Place("a", "p2", 2)
	// 启发式应把第二个项目贴在第一个旁边
	dist := math.Abs(float64(first.Row-second.Row)) + math.Abs(float64(first.Col-second.Col))
	if dist != 1 {
		t.Fatalf("同主项目应相邻放置，距离 %v", dist)
	}
}

func TestAdjacencyBonusCounts(t *testing.T) {
	g := NewCityGrid()
	g.Cells[1][0].Owner = "a"
	g.Cells[1][1].Owner = "a"
	// 两格互为同主邻居：各 +0.10
	if got := g.AdjacencyBonus("a"); math.Abs(got-0.20) > 1e-9 {
		t.Fatalf("同主邻接加成应为 0.20，实际 %v", got)
	}
	// 其中一格有建筑：另一格再 +0.05（有建筑格自身邻居不变）
	g.Cells[1][0].HasBuilding = true
	if got := g.AdjacencyBonus("a"); math.Abs(got-0.25) > 1e-9 {
		t.Fatalf("建筑邻接加成应累计到 0.25，实际 %v", got)
	}
	// 别人的格子不沾光
	if g.AdjacencyBonus("b") != 0 {
		t.Fatalf("无占格玩家不应有加成")
	}
}

func TestVacateKeepsBuiltCell(t *testing.T) {
	g := NewCityGrid()
	g.Place("a", "p1", 1)
	g.MarkBuilt("a", "p1", "公寓")
	// 已建成的格子不随项目弃置腾出
	g.Vacate("a", "p1")
	if g.Cells[0][0].Owner != "a" || !g.Cells[0][0].HasBuilding {
		t.Fatalf("建成格不应被腾出")
	}

	cell := g.Place("a", "p2", 1)
	g.Vacate("a", "p2")
	if g.Cells[cell.Row][cell.Col].Owner != "" {
		t.Fatalf("未建成的项目格应腾出")
	}
}

func TestMarkBuiltClearsProjectID(t *testing.T) {
	g := NewCityGrid()
	cell := g.Place("a", "p1", 4)
	g.MarkBuilt("a", "p1", "别墅")
	got := g.Cells[cell.Row][cell.Col]
	if got.ProjectID != "" || !got.HasBuilding || got.Building != "别墅" {
		t.Fatalf("完工后格子应转建筑态: %+v", got)
	}
}
