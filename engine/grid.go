package engine

import "go-estate/entities"

// GridSize 城市网格 5×5，行号即城区等级
const GridSize = 5

// CityGrid 城市网格与邻接加成
type CityGrid struct {
	Cells [GridSize][GridSize]entities.CityCell `json:"cells"`
}

func NewCityGrid() *CityGrid {
	g := &CityGrid{}
	for r := 0; r < GridSize; r++ {
		for c := 0; c < GridSize; c++ {
			g.Cells[r][c] = entities.CityCell{Row: r, Col: c, Region: r + 1}
		}
	}
	return g
}

// neighbors 四邻域
func (g *CityGrid) neighbors(row, col int) []*entities.CityCell {
	var ns []*entities.CityCell
	dirs := [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	for _, d := range dirs {
		r, c := row+d[0], col+d[1]
		if r < 0 || r >= GridSize || c < 0 || c >= GridSize {
			continue
		}
		ns = append(ns, &g.Cells[r][c])
	}
	return ns
}

// placeScore 放置启发式：同主邻居 +0.1，任意有建筑的邻居 +0.05
func (g *CityGrid) placeScore(row, col int, owner string) float64 {
	score := 0.0
	for _, n := range g.neighbors(row, col) {
		if n.Owner == owner && n.Owner != "" {
			score += 0.1
		}
		if n.HasBuilding {
			score += 0.05
		}
	}
	return score
}

// Place 把项目放进网格：优先土地所属城区的行，行满则全图找空格；
// 行优先扫描取启发式得分最高的格子，同分取先扫到的。
func (g *CityGrid) Place(playerID, projectID string, region int) *entities.CityCell {
	best := g.bestCellInRow(region-1, playerID)
	if best == nil {
		best = g.bestCellAnywhere(playerID)
	}
	if best == nil {
		return nil
	}
	best.Owner = playerID
	best.ProjectID = projectID
	return best
}

func (g *CityGrid) bestCellInRow(row int, owner string) *entities.CityCell {
	if row < 0 || row >= GridSize {
		return nil
	}
	var best *entities.CityCell
	bestScore := -1.0
	for c := 0; c < GridSize; c++ {
		cell := &g.Cells[row][c]
		if !cell.Empty() {
			continue
		}
		if s := g.placeScore(row, c, owner); s > bestScore {
			best, bestScore = cell, s
		}
	}
	return best
}

func (g *CityGrid) bestCellAnywhere(owner string) *entities.CityCell {
	var best *entities.CityCell
	bestScore := -1.0
	for r := 0; r < GridSize; r++ {
		for c := 0; c < GridSize; c++ {
			cell := &g.Cells[r][c]
			if !cell.Empty() {
				continue
			}
			if s := g.placeScore(r, c, owner); s > bestScore {
				best, bestScore = cell, s
			}
		}
	}
	return best
}

// Vacate 清掉某玩家还没盖起建筑的项目格（流拍/弃置/卖裸地时用）
func (g *CityGrid) Vacate(playerID, projectID string) {
	for r := 0; r < GridSize; r++ {
		for c := 0; c < GridSize; c++ {
			cell := &g.Cells[r][c]
			if cell.Owner == playerID && cell.ProjectID == projectID && !cell.HasBuilding {
				cell.Owner = ""
				cell.ProjectID = ""
				return
			}
		}
	}
}

// MarkBuilt 项目完工：格子原地由项目态转建筑态，所有权不变
func (g *CityGrid) MarkBuilt(playerID, projectID, building string) {
	for r := 0; r < GridSize; r++ {
		for c := 0; c < GridSize; c++ {
			cell := &g.Cells[r][c]
			if cell.Owner == playerID && cell.ProjectID == projectID {
				cell.ProjectID = ""
				cell.HasBuilding = true
				cell.Building = building
				return
			}
		}
	}
}

// AdjacencyBonus 邻接加成：玩家每个占用格，同主邻居每个 +10%，
// 任意有建筑的邻居每个 +5%，全部求和
func (g *CityGrid) AdjacencyBonus(playerID string) float64 {
	bonus := 0.0
	for r := 0; r < GridSize; r++ {
		for c := 0; c < GridSize; c++ {
			cell := &g.Cells[r][c]
			if cell.Owner != playerID {
				continue
			}
			for _, n := range g.neighbors(r, c) {
				if n.Owner == playerID {
					bonus += 0.10
				}
				if n.HasBuilding {
					bonus += 0.05
				}
			}
		}
	}
	return bonus
}
