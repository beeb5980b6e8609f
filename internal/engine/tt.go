package engine

import "fairychess/internal/fairy"

// Bound 表示 TT 里分数的性质。
type Bound uint8

const (
	BoundExact Bound = iota
	BoundLower       // 真实分 >= Score（发生了 beta 截断）
	BoundUpper       // 真实分 <= Score（所有走法都没超过 alpha）
)

// TTEntry 置换表条目。Key 存完整哈希，槽位冲突时靠它区分。
type TTEntry struct {
	Key     uint64
	Move    fairy.Move
	HasMove bool
	Score   int
	Depth   int
	Bound   Bound
	Gen     uint8

	used bool
}

// DefaultTTSize 默认槽位数。
const DefaultTTSize = 1 << 18

// TranspositionTable 固定大小的置换表，按 key 低位定槽。
// 不加锁，每个 Engine 独占一张。
type TranspositionTable struct {
	entries []TTEntry
	mask    uint64
	gen     uint8

	probes int64
	hits   int64
}

// NewTranspositionTable 槽位数向下取 2 的幂；size <= 0 时用默认大小。
func NewTranspositionTable(size int) *TranspositionTable {
	if size <= 0 {
		size = DefaultTTSize
	}
	n := 1
	for n*2 <= size {
		n *= 2
	}
	return &TranspositionTable{
		entries: make([]TTEntry, n),
		mask:    uint64(n - 1),
	}
}

func (t *TranspositionTable) Len() int { return len(t.entries) }

// Probe 查表，只有完整 key 相同才算命中。
func (t *TranspositionTable) Probe(key uint64) (TTEntry, bool) {
	t.probes++
	e := t.entries[key&t.mask]
	if !e.used || e.Key != key {
		return TTEntry{}, false
	}
	t.hits++
	return e, true
}

// Store 替换策略：空槽、旧一代的条目、或深度不低于现有条目时覆盖。
func (t *TranspositionTable) Store(key uint64, depth, score int, bound Bound, mv fairy.Move, hasMove bool) {
	slot := &t.entries[key&t.mask]
	if slot.used && slot.Gen == t.gen && depth < slot.Depth {
		return
	}
	*slot = TTEntry{
		Key:     key,
		Move:    mv,
		HasMove: hasMove,
		Score:   score,
		Depth:   depth,
		Bound:   bound,
		Gen:     t.gen,
		used:    true,
	}
}

// NewSearch 每次搜索开始时调用，老条目变得可以被替换。
func (t *TranspositionTable) NewSearch() { t.gen++ }

func (t *TranspositionTable) Clear() {
	for i := range t.entries {
		t.entries[i] = TTEntry{}
	}
	t.gen = 0
	t.probes, t.hits = 0, 0
}

// Stats 返回累计探测次数与命中次数。
func (t *TranspositionTable) Stats() (probes, hits int64) { return t.probes, t.hits }
