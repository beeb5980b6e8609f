package engine

// Engine 持有一张置换表和本次搜索的计数。
// 同一个 Engine 不能并发搜索；并发对局各自 NewEngine。
type Engine struct {
	tt    *TranspositionTable
	nodes int64
	hits  int64 // 置换表截断次数
}

func NewEngine() *Engine {
	return NewEngineWithTable(NewTranspositionTable(DefaultTTSize))
}

// NewEngineWithTable 用调用方给的置换表，便于控制大小或在测试里检查。
func NewEngineWithTable(tt *TranspositionTable) *Engine {
	if tt == nil {
		tt = NewTranspositionTable(DefaultTTSize)
	}
	return &Engine{tt: tt}
}

func (e *Engine) Table() *TranspositionTable { return e.tt }

// ClearTT 清空置换表，之后的搜索与新建的 Engine 结果一致。
func (e *Engine) ClearTT() { e.tt.Clear() }
