package engine

// Carded 牌堆元素的最小约束
type Carded interface {
	CardID() string
}

// Deck 牌堆：尾部弹出式抽牌，容量不足时少发不报错，
// 调用方需要固定张数时应先 Refill。
type Deck[T Carded] struct {
	items []T
	rng   *RNG
}

func NewDeck[T Carded](rng *RNG, items []T) *Deck[T] {
	d := &Deck[T]{rng: rng, items: append([]T(nil), items...)}
	return d
}

func (d *Deck[T]) Size() int {
	return len(d.items)
}

// Shuffle 均匀洗牌
func (d *Deck[T]) Shuffle() {
	d.rng.Shuffle(len(d.items), func(i, j int) {
		d.items[i], d.items[j] = d.items[j], d.items[i]
	})
}

// Draw 从尾部抽最多 n 张，不足时返回剩余全部
func (d *Deck[T]) Draw(n int) []T {
	if n > len(d.items) {
		n = len(d.items)
	}
	drawn := make([]T, n)
	copy(drawn, d.items[len(d.items)-n:])
	d.items = d.items[:len(d.items)-n]
	return drawn
}

// Items 只读视图（快照/前端展示用）。抽空的牌堆返回空切片而不是 nil，
// 序列化成 [] 而不是 null，恢复时才能和「字段缺失」区分开。
func (d *Deck[T]) Items() []T {
	items := make([]T, 0, len(d.items))
	return append(items, d.items...)
}

// Find 按 id 查牌，不移除
func (d *Deck[T]) Find(id string) (T, bool) {
	var zero T
	for _, it := range d.items {
		if it.CardID() == id {
			return it, true
		}
	}
	return zero, false
}

// Remove 按 id 取走一张牌（购地/占用设计师时从牌池移除）
func (d *Deck[T]) Remove(id string) (T, bool) {
	var zero T
	for i, it := range d.items {
		if it.CardID() == id {
			d.items = append(d.items[:i], d.items[i+1:]...)
			return it, true
		}
	}
	return zero, false
}

// Push 把一张牌放回牌堆（弃置项目时归还设计师/施工方）
func (d *Deck[T]) Push(item T) {
	d.items = append(d.items, item)
}

// Refill 从模板生成器补牌，跳过 existing 里已有的 id（防止补出重复卡）
func (d *Deck[T]) Refill(gen func() []T, existing map[string]bool) {
	for _, it := range gen() {
		if existing[it.CardID()] {
			continue
		}
		d.items = append(d.items, it)
	}
	d.Shuffle()
}

// BuildWeighted 按份数把模板目录展开成多重集牌堆
func BuildWeighted[T Carded](rng *RNG, templates []T, weight func(T) int) *Deck[T] {
	var items []T
	for _, tpl := range templates {
		for i := 0; i < weight(tpl); i++ {
			items = append(items, tpl)
		}
	}
	d := &Deck[T]{rng: rng, items: items}
	d.Shuffle()
	return d
}
