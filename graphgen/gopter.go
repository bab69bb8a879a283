package graphgen

import (
	"reflect"
	"sync"

	"github.com/leanovate/gopter"
	"go.uber.org/zap"

	"github.com/katalvlaran/graphgen/core"
	"github.com/katalvlaran/graphgen/draw"
)

var graphType = reflect.TypeOf((*core.Graph)(nil))

// Gen adapts the Generator to gopter. Each generated *core.Graph is drawn
// from a draw.Source over gopter's RNG, so a property run is reproducible
// from its seed.
//
// The attached shrinker replays simpler choice sequences (draw.Shrinks) of
// the failing draw: fewer nodes first, then fewer components, then more
// balanced partitions, then simpler subgraphs. Candidates that fail to draw
// are skipped. A draw error during generation yields an empty result, which
// gopter counts as a discarded case.
func (g *Generator) Gen() gopter.Gen {
	return func(params *gopter.GenParameters) *gopter.GenResult {
		src := draw.NewSource(params.Rng)
		out, err := g.Draw(src)
		if err != nil {
			g.logger.Debug("gopter draw discarded", zap.Error(err))
			return gopter.NewEmptyResult(graphType)
		}

		return gopter.NewGenResult(out, g.shrinker(out, src.Choices()))
	}
}

// shrinker remembers the choices behind every graph it hands out, since
// gopter calls it again with each accepted candidate.
func (g *Generator) shrinker(root *core.Graph, choices []int) gopter.Shrinker {
	var mu sync.Mutex
	recorded := map[*core.Graph][]int{root: choices}

	return func(value interface{}) gopter.Shrink {
		cur, ok := value.(*core.Graph)
		if !ok {
			return gopter.NoShrink
		}
		mu.Lock()
		base, ok := recorded[cur]
		mu.Unlock()
		if !ok {
			return gopter.NoShrink
		}

		candidates := draw.Shrinks(base)
		return func() (interface{}, bool) {
			for len(candidates) > 0 {
				next := candidates[0]
				candidates = candidates[1:]

				src := draw.Replay(next, nil)
				out, err := g.Draw(src)
				if err != nil {
					continue
				}
				used := src.Choices()
				if draw.Equivalent(used, base) {
					continue
				}
				mu.Lock()
				recorded[out] = used
				mu.Unlock()

				return out, true
			}

			return nil, false
		}
	}
}

// Sample draws one graph from a fresh seeded Source and returns it with the
// recorded choices, for callers that persist failing cases and replay them
// later with draw.Replay.
func (g *Generator) Sample(seed int64) (*core.Graph, []int, error) {
	src := draw.NewSeeded(seed)
	out, err := g.Draw(src)
	if err != nil {
		return nil, nil, err
	}

	return out, src.Choices(), nil
}
