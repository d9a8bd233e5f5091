package engine

import "golang.org/x/exp/rand"

// RNG 引擎内唯一的随机源。洗牌、掷骰、万能卡抽取全部经由它，
// 测试时传入固定种子即可复现整局。
type RNG struct {
	r *rand.Rand
}

func NewRNG(seed uint64) *RNG {
	return &RNG{r: rand.New(rand.NewSource(seed))}
}

// Dice 掷一枚骰子，1~6 均匀
func (g *RNG) Dice() int {
	return g.r.Intn(6) + 1
}

func (g *RNG) Intn(n int) int {
	return g.r.Intn(n)
}

func (g *RNG) Shuffle(n int, swap func(i, j int)) {
	g.r.Shuffle(n, swap)
}
