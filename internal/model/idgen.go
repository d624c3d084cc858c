package model

import "sync/atomic"

// OfficerIDGenerator выдаёт уникальные object ID для офицеров.
// ID стабилен на всё время жизни объекта; клон получает свежий ID.
type OfficerIDGenerator struct {
	next atomic.Uint32
}

// NewOfficerIDGenerator creates a generator starting at the officer ID range.
func NewOfficerIDGenerator() *OfficerIDGenerator {
	gen := &OfficerIDGenerator{}
	gen.next.Store(0x10000000) // 0 reserved for invalid/mock objects
	return gen
}

// NextOfficerID generates the next unique officer ID.
// Thread-safe via atomic increment.
func (g *OfficerIDGenerator) NextOfficerID() uint32 {
	return g.next.Add(1)
}
