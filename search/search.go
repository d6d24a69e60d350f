package search

import "container/heap"

// link records how a node was first reached on its cheapest known path.
type link[N comparable, E any] struct {
	from N
	via  E
}

// FindPath runs best-first search from p.Start until a goal node is
// dequeued, which is the point its cost is final. It reports false when
// the goal is unreachable; an unreachable goal is a normal outcome, not
// an error. A start node that already satisfies Goal yields a single-node
// path with no steps.
func FindPath[N comparable, E any](p Problem[N, E]) (Result[N, E], bool) {
	h := p.Heuristic
	if h == nil {
		h = func(N) float64 { return 0 }
	}

	cost := map[N]float64{p.Start: 0}
	cameFrom := make(map[N]link[N, E])
	closed := make(map[N]bool)

	f := &frontier[N]{}
	f.push(p.Start, h(p.Start))

	for f.Len() > 0 {
		cur := f.pop()
		if closed[cur] {
			continue
		}
		closed[cur] = true

		if p.Goal(cur) {
			return reconstruct(p.Start, cur, cost[cur], cameFrom), true
		}

		for _, st := range p.Expand(cur) {
			if closed[st.To] {
				continue
			}
			tentative := cost[cur] + st.Cost
			if old, seen := cost[st.To]; seen && tentative >= old {
				continue
			}
			cost[st.To] = tentative
			cameFrom[st.To] = link[N, E]{from: cur, via: st.Via}
			f.push(st.To, tentative+h(st.To))
		}
	}

	return Result[N, E]{}, false
}

// Distances runs a full uniform-cost sweep from start and returns the
// final cost of every reachable node plus predecessor links toward start.
// It is the multi-target form of FindPath for consumers that rank several
// destinations against one source.
func Distances[N comparable, E any](start N, expand func(N) []Step[N, E]) (map[N]float64, map[N]N) {
	cost := map[N]float64{start: 0}
	prev := make(map[N]N)
	closed := make(map[N]bool)

	f := &frontier[N]{}
	f.push(start, 0)

	for f.Len() > 0 {
		cur := f.pop()
		if closed[cur] {
			continue
		}
		closed[cur] = true

		for _, st := range expand(cur) {
			tentative := cost[cur] + st.Cost
			if old, seen := cost[st.To]; seen && tentative >= old {
				continue
			}
			cost[st.To] = tentative
			prev[st.To] = cur
			f.push(st.To, tentative)
		}
	}

	return cost, prev
}

// reconstruct walks the links from goal back to start and returns the
// path in traversal order.
func reconstruct[N comparable, E any](start, goal N, total float64, cameFrom map[N]link[N, E]) Result[N, E] {
	nodes := []N{goal}
	via := make([]E, 0)
	for cur := goal; cur != start; {
		l := cameFrom[cur]
		via = append(via, l.via)
		nodes = append(nodes, l.from)
		cur = l.from
	}
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
	for i, j := 0, len(via)-1; i < j; i, j = i+1, j-1 {
		via[i], via[j] = via[j], via[i]
	}
	return Result[N, E]{Nodes: nodes, Via: via, Cost: total}
}

// frontierItem pairs a node with its priority and an insertion sequence
// number; the sequence breaks priority ties FIFO.
type frontierItem[N comparable] struct {
	node     N
	priority float64
	seq      int
}

// frontier is the min-heap of pending expansions.
type frontier[N comparable] struct {
	items []*frontierItem[N]
	seq   int
}

func (f *frontier[N]) push(node N, priority float64) {
	f.seq++
	heap.Push(f, &frontierItem[N]{node: node, priority: priority, seq: f.seq})
}

func (f *frontier[N]) pop() N {
	return heap.Pop(f).(*frontierItem[N]).node
}

func (f *frontier[N]) Len() int { return len(f.items) }

func (f *frontier[N]) Less(i, j int) bool {
	if f.items[i].priority != f.items[j].priority {
		return f.items[i].priority < f.items[j].priority
	}
	return f.items[i].seq < f.items[j].seq
}

func (f *frontier[N]) Swap(i, j int) { f.items[i], f.items[j] = f.items[j], f.items[i] }

func (f *frontier[N]) Push(x any) { f.items = append(f.items, x.(*frontierItem[N])) }

func (f *frontier[N]) Pop() any {
	old := f.items
	n := len(old)
	item := old[n-1]
	f.items = old[:n-1]
	return item
}
