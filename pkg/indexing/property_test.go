package indexing

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// opKind drives a sequence of allocate/free operations against an Indexer
// so the properties below can be checked against arbitrary interleavings
// rather than a handful of hand-picked cases.
type opKind int

const (
	opAllocPublic opKind = iota
	opAllocPrivate
	opFree
)

func genOpKind() gopter.Gen {
	return gen.OneConstOf(opAllocPublic, opAllocPrivate, opFree)
}

func TestIndexerInvariants(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("number of indexed elements equals issued minus freed", prop.ForAll(
		func(ops []opKind) bool {
			idx := NewIndexerWithCapacity(4)
			var live []Index

			for _, op := range ops {
				switch op {
				case opAllocPublic:
					a := idx.NewPublicIndex()
					live = append(live, a.Index)
				case opAllocPrivate:
					a := idx.NewPrivateIndex()
					live = append(live, a.Index)
				case opFree:
					if len(live) == 0 {
						continue
					}
					victim := live[0]
					if err := idx.FreePublicIndex(victim); err != nil {
						_ = idx.FreePrivateIndex(victim)
					}
					live = live[1:]
				}
			}

			return idx.NumberOfIndexedElements() == len(live)
		},
		gen.SliceOf(genOpKind()),
	))

	properties.Property("a freed index is reissued before any new index", prop.ForAll(
		func(n int) bool {
			if n < 1 {
				n = 1
			}
			idx := NewIndexerWithCapacity(4)
			first := idx.NewPublicIndex()
			if err := idx.FreePublicIndex(first.Index); err != nil {
				return false
			}
			reissued := idx.NewPublicIndex()
			return reissued.Index == first.Index
		},
		gen.IntRange(1, 8),
	))

	properties.Property("capacity never shrinks across allocation", prop.ForAll(
		func(count int) bool {
			idx := NewIndexerWithCapacity(1)
			prevCapacity := idx.Capacity()
			for i := 0; i < count; i++ {
				idx.NewPublicIndex()
				if idx.Capacity() < prevCapacity {
					return false
				}
				prevCapacity = idx.Capacity()
			}
			return true
		},
		gen.IntRange(0, 64),
	))

	properties.Property("every allocated index is reported by exactly one of the public/private masks", prop.ForAll(
		func(publicCount, privateCount int) bool {
			idx := NewIndexerWithCapacity(4)
			for i := 0; i < publicCount; i++ {
				a := idx.NewPublicIndex()
				if !idx.IsValidPublicIndex(a.Index) || idx.IsValidPrivateIndex(a.Index) {
					return false
				}
			}
			for i := 0; i < privateCount; i++ {
				a := idx.NewPrivateIndex()
				if !idx.IsValidPrivateIndex(a.Index) || idx.IsValidPublicIndex(a.Index) {
					return false
				}
			}
			return idx.NumberOfIndexedElements() == publicCount+privateCount
		},
		gen.IntRange(0, 16), gen.IntRange(0, 16),
	))

	properties.TestingRun(t)
}
