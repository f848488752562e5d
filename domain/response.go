package domain

import (
	"math/rand/v2"
	"sync"

	"github.com/samber/lo"
)

const FallbackResponse = "I'm not sure how to respond to that. Can you try rephrasing?"

// Rand is the random source used to pick a response.
// Implementations must be safe for concurrent use.
type Rand interface {
	IntN(n int) int
}

// ResponseTable maps a tag to its candidate replies. It is read-only once built.
type ResponseTable struct {
	responses map[string][]string
}

func NewResponseTable(intents []Intent) ResponseTable {
	return ResponseTable{
		responses: lo.SliceToMap(intents, func(intent Intent) (string, []string) {
			return intent.Tag, append([]string(nil), intent.Responses...)
		}),
	}
}

// Responses returns a copy of the replies registered for tag.
func (t ResponseTable) Responses(tag string) ([]string, bool) {
	responses, ok := t.responses[tag]
	if !ok {
		return nil, false
	}
	return append([]string(nil), responses...), true
}

func (t ResponseTable) Has(tag string) bool {
	_, ok := t.responses[tag]
	return ok
}

func (t ResponseTable) Tags() []string {
	return lo.Keys(t.responses)
}

// Selector picks a canned response for a predicted tag.
type Selector struct {
	table ResponseTable
	rand  Rand
}

func NewSelector(table ResponseTable, rand Rand) Selector {
	return Selector{table: table, rand: rand}
}

// Select returns a uniformly random reply for tag, or FallbackResponse
// when the tag is unknown or has no reply.
func (s Selector) Select(tag string) string {
	responses := s.table.responses[tag]
	if len(responses) == 0 {
		return FallbackResponse
	}
	return responses[s.rand.IntN(len(responses))]
}

// LockedRand guards a math/rand/v2 generator so it can be shared
// between concurrent callers.
type LockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func NewLockedRand(src rand.Source) *LockedRand {
	return &LockedRand{r: rand.New(src)}
}

func (l *LockedRand) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.IntN(n)
}
