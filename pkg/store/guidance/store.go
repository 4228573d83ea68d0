package guidance

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/bev-tools/guidance/pkg/models/domain"
	svc "github.com/bev-tools/guidance/pkg/services/guidance"
)

var (
	ErrNotFound = fmt.Errorf("guidance definition not found")
	ErrBuiltIn  = fmt.Errorf("built-in guidance definitions cannot be deleted")
)

// Store holds the guidance definitions for the three contexts. Contexts are
// fully isolated: no definition is shared or visible across contexts. Each
// context is seeded with the built-in trend definition.
type Store struct {
	mu   sync.RWMutex
	defs map[domain.GuidanceContext][]domain.GuidanceDefinition
}

func NewStore() *Store {
	defs := make(map[domain.GuidanceContext][]domain.GuidanceDefinition)
	for _, ctx := range domain.GuidanceContexts() {
		defs[ctx] = []domain.GuidanceDefinition{svc.BuiltInTrendDefinition()}
	}
	return &Store{defs: defs}
}

// List returns a copy of the context's definitions in insertion order.
func (s *Store) List(ctx domain.GuidanceContext) ([]domain.GuidanceDefinition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	defs, ok := s.defs[ctx]
	if !ok {
		return nil, fmt.Errorf("unknown guidance context: %s", ctx)
	}
	out := make([]domain.GuidanceDefinition, len(defs))
	copy(out, defs)
	return out, nil
}

// Add stores a user-authored definition in one context, minting an id when
// the caller supplied none. Shapes outside the known calculation variants
// are rejected here, at the boundary, so the evaluator only ever sees the
// closed algebra.
func (s *Store) Add(
	ctx domain.GuidanceContext,
	def domain.GuidanceDefinition,
) (domain.GuidanceDefinition, error) {
	switch def.Calculation.Type {
	case domain.CalcDirect, domain.CalcDifference, domain.CalcPercentage, domain.CalcMultiCalc:
	default:
		return domain.GuidanceDefinition{},
			fmt.Errorf("unknown calculation type: %s", def.Calculation.Type)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.defs[ctx]; !ok {
		return domain.GuidanceDefinition{}, fmt.Errorf("unknown guidance context: %s", ctx)
	}
	if def.ID == "" {
		def.ID = uuid.NewString()
	}
	def.BuiltIn = false
	s.defs[ctx] = append(s.defs[ctx], def)
	return def, nil
}

// Delete removes a user-authored definition. Built-in definitions are
// always present and refuse deletion.
func (s *Store) Delete(ctx domain.GuidanceContext, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	defs, ok := s.defs[ctx]
	if !ok {
		return fmt.Errorf("unknown guidance context: %s", ctx)
	}
	for i, def := range defs {
		if def.ID != id {
			continue
		}
		if def.BuiltIn {
			return ErrBuiltIn
		}
		s.defs[ctx] = append(defs[:i:i], defs[i+1:]...)
		return nil
	}
	return ErrNotFound
}
