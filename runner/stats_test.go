package runner

import (
	"math"
	"math/rand"
	"testing"

	gp "github.com/darwins-challenge/moonlander-gp"
)

func TestGenStatsDescribe(t *testing.T) {
	s := &GenStats{}
	s.Record(10, 5)
	s.Record(20, 7)
	s.Record(30, 9)

	if s.Generations() != 3 {
		t.Fatalf("Generations = %d, want 3", s.Generations())
	}

	sum := s.Describe()
	if sum.BestMean != 20 {
		t.Errorf("BestMean = %v, want 20", sum.BestMean)
	}
	if sum.BestMin != 10 || sum.BestMax != 30 {
		t.Errorf("Best range = [%v, %v], want [10, 30]", sum.BestMin, sum.BestMax)
	}
	if sum.AvgMean != 7 {
		t.Errorf("AvgMean = %v, want 7", sum.AvgMean)
	}
	if math.Abs(sum.BestStd-10) > 1e-9 {
		t.Errorf("BestStd = %v, want 10", sum.BestStd)
	}
}

func TestGenStatsDropsNaN(t *testing.T) {
	nan := gp.Number(math.NaN())

	s := &GenStats{}
	s.Record(nan, nan)
	s.Record(4, 2)

	if s.Generations() != 1 {
		t.Fatalf("NaN generation was recorded")
	}
	sum := s.Describe()
	if sum.BestMean != 4 || sum.AvgMean != 2 {
		t.Fatalf("summary polluted by NaN: %+v", sum)
	}
}

func TestGenStatsEmpty(t *testing.T) {
	s := &GenStats{}
	sum := s.Describe()
	if sum.BestMean != 0 || sum.BestStd != 0 || sum.AvgMean != 0 {
		t.Fatalf("empty summary should be zero: %+v", sum)
	}
}

type depthNode struct {
	kids []gp.Node
}

func (n *depthNode) Type() gp.NodeType   { return 0 }
func (n *depthNode) Children() []gp.Node { return n.kids }
func (n *depthNode) Copy() gp.Node       { return n }
func (n *depthNode) ReplaceChild(i int, c gp.Node) gp.Node {
	panic("not used")
}
func (n *depthNode) Mutate(w gp.NodeWeights, rng *rand.Rand) gp.Node { panic("not used") }

func TestMeanDepth(t *testing.T) {
	leafN := &depthNode{}
	tall := &depthNode{kids: []gp.Node{&depthNode{kids: []gp.Node{leafN}}}}

	got := MeanDepth([]gp.Node{leafN, tall})
	if got != 2 {
		t.Fatalf("MeanDepth = %v, want 2", got)
	}

	if MeanDepth([]gp.Node{}) != 0 {
		t.Fatalf("MeanDepth of nothing should be 0")
	}
}
