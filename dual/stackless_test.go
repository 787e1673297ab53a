package dual_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/microblossom/blossom"
	"github.com/katalvlaran/microblossom/dual"
)

// mockDualDriver records every SetBlossom call as a string, in order,
// satisfying dual.Driver with no-op behavior for everything else.
type mockDualDriver struct {
	calls []string
}

func (m *mockDualDriver) Reset() {}
func (m *mockDualDriver) SetSpeed(bool, blossom.NodeIndex, blossom.GrowState) {}
func (m *mockDualDriver) SetBlossom(child, blossomIndex blossom.NodeIndex) {
	m.calls = append(m.calls, fmt.Sprintf("set_blossom(%d, %d)", child, blossomIndex))
}
func (m *mockDualDriver) AddDefect(blossom.VertexIndex, blossom.NodeIndex) {}
func (m *mockDualDriver) FindObstacle() (blossom.Obstacle, blossom.Weight) {
	return blossom.NoneObstacle(), 0
}
func (m *mockDualDriver) Grow(blossom.Weight) {}

func (m *mockDualDriver) check(t *testing.T, want []string) {
	t.Helper()
	require.Equal(t, want, m.calls)
	m.calls = nil
}

// mockPrimal is a minimal PrimalView backed by an explicit children map,
// reproducing the Rust test's MockPrimal fixture.
type mockPrimal struct {
	children map[blossom.NodeIndex][]blossom.NodeIndex
}

func newMockPrimal() *mockPrimal {
	return &mockPrimal{children: make(map[blossom.NodeIndex][]blossom.NodeIndex)}
}

func (p *mockPrimal) addBlossom(index blossom.NodeIndex, children []blossom.NodeIndex) {
	p.children[index] = children
}

func (p *mockPrimal) IsBlossom(nodeIndex blossom.NodeIndex) bool {
	_, ok := p.children[nodeIndex]
	return ok
}

func (p *mockPrimal) IterateChildren(blossomIndex blossom.NodeIndex, f func(child blossom.NodeIndex)) {
	for _, c := range p.children[blossomIndex] {
		f(c)
	}
}

// TestStacklessAdapter_BasicScenario reproduces dual_module_stackless_basic_1
// from the original embedded decoder's dual_module_stackless.rs.
func TestStacklessAdapter_BasicScenario(t *testing.T) {
	primal := newMockPrimal()
	primal.addBlossom(100, []blossom.NodeIndex{0, 1, 3})
	primal.addBlossom(101, []blossom.NodeIndex{2, 100, 4})

	driver := &mockDualDriver{}
	adapter := dual.NewStacklessAdapter(driver)

	adapter.CreateBlossom(primal, 100)
	driver.check(t, []string{"set_blossom(0, 100)", "set_blossom(1, 100)", "set_blossom(3, 100)"})

	adapter.CreateBlossom(primal, 101)
	driver.check(t, []string{"set_blossom(2, 101)", "set_blossom(100, 101)", "set_blossom(4, 101)"})

	adapter.ExpandBlossom(primal, 100)
	driver.check(t, []string{"set_blossom(0, 0)", "set_blossom(1, 1)", "set_blossom(3, 3)"})

	adapter.ExpandBlossom(primal, 101)
	driver.check(t, []string{
		"set_blossom(2, 2)",
		"set_blossom(0, 100)",
		"set_blossom(1, 100)",
		"set_blossom(3, 100)",
		"set_blossom(4, 4)",
	})
}
