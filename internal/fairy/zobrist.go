package fairy

import "sync"

const maxSquares = 10 * 10

var (
	zobristOnce sync.Once

	zobristPieces   [2][numKinds][maxSquares]uint64
	zobristSide     uint64
	zobristEPFile   [10]uint64
	zobristCastling [4]uint64
)

func initZobrist() {
	zobristOnce.Do(func() {
		seed := uint64(0x9E3779B97F4A7C15)
		next := func() uint64 {
			seed += 0x9E3779B97F4A7C15
			z := seed
			z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
			z = (z ^ (z >> 27)) * 0x94D049BB133111EB
			return z ^ (z >> 31)
		}

		for c := 0; c < 2; c++ {
			for k := 1; k < int(numKinds); k++ {
				for sq := 0; sq < maxSquares; sq++ {
					zobristPieces[c][k][sq] = next()
				}
			}
		}
		zobristSide = next()
		for i := range zobristEPFile {
			zobristEPFile[i] = next()
		}
		for i := range zobristCastling {
			zobristCastling[i] = next()
		}
	})
}

// Hash 全量计算局面哈希：棋子、走子方、过路兵列、易位权。
func (b *Board) Hash(toMove Color) uint64 {
	initZobrist()

	var h uint64
	for i, pc := range b.squares {
		if pc.IsEmpty() || i >= maxSquares {
			continue
		}
		h ^= zobristPieces[pc.Color][pc.Kind][i]
	}
	if toMove == Black {
		h ^= zobristSide
	}
	if b.EnPassant.Valid() && b.EnPassant.Col < len(zobristEPFile) {
		h ^= zobristEPFile[b.EnPassant.Col]
	}
	for i, ok := range b.castlingRights() {
		if ok {
			h ^= zobristCastling[i]
		}
	}
	return h
}
