package report

import (
	"encoding/binary"
	"hash/fnv"

	"fintrack/internal/core"
)

// Memo caches the most recent Summarize result keyed by a fingerprint of
// its inputs. Views recompute the summary whenever their data changes;
// re-renders with unchanged data hit the cache instead of re-aggregating.
//
// Memo is not safe for concurrent use; each view owns its own.
type Memo struct {
	key    uint64
	valid  bool
	result core.Summary
}

// Summarize returns the cached result when the inputs fingerprint the same
// as the previous call, and recomputes otherwise.
func (m *Memo) Summarize(transactions []core.Transaction, budget *core.Budget) core.Summary {
	key := fingerprint(transactions, budget)
	if m.valid && key == m.key {
		return m.result
	}
	m.result = Summarize(transactions, budget)
	m.key = key
	m.valid = true
	return m.result
}

// Invalidate drops the cached result.
func (m *Memo) Invalidate() {
	m.valid = false
}

func fingerprint(transactions []core.Transaction, budget *core.Budget) uint64 {
	h := fnv.New64a()
	var buf [8]byte

	writeInt := func(v int64) {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		h.Write(buf[:])
	}

	writeInt(int64(len(transactions)))
	for _, tx := range transactions {
		writeInt(tx.ID)
		writeInt(tx.Amount.Cents)
		h.Write([]byte(tx.Type))
		h.Write([]byte(tx.CategoryName))
		h.Write([]byte{0})
	}
	if budget == nil {
		h.Write([]byte{0xff})
	} else {
		writeInt(budget.ID)
		writeInt(budget.Amount.Cents)
	}
	return h.Sum64()
}
