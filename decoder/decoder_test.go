package decoder_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/microblossom/blossom"
	"github.com/katalvlaran/microblossom/decoder"
	"github.com/katalvlaran/microblossom/nonmax"
)

// scriptedDriver is a fake dual.Driver whose FindObstacle replays a fixed
// script of (obstacle, grown) pairs, one per call, and records every
// command issued to it — mirroring the recordingDriver fake in
// primal/module_test.go but adapted for a whole Decoder.Run pass rather
// than a single Resolve call.
type scriptedDriver struct {
	script []scriptedStep
	cursor int
	calls  []string
}

type scriptedStep struct {
	obstacle blossom.Obstacle
	grown    blossom.Weight
}

func (d *scriptedDriver) Reset() { d.calls = append(d.calls, "reset") }

func (d *scriptedDriver) SetSpeed(isBlossom bool, nodeIndex blossom.NodeIndex, state blossom.GrowState) {
	d.calls = append(d.calls, "set_speed")
}

func (d *scriptedDriver) SetBlossom(child, blossomIndex blossom.NodeIndex) {
	d.calls = append(d.calls, "set_blossom")
}

func (d *scriptedDriver) AddDefect(vertex blossom.VertexIndex, node blossom.NodeIndex) {
	d.calls = append(d.calls, "add_defect")
}

func (d *scriptedDriver) Grow(length blossom.Weight) {
	d.calls = append(d.calls, "grow")
}

func (d *scriptedDriver) FindObstacle() (blossom.Obstacle, blossom.Weight) {
	step := d.script[d.cursor]
	d.cursor++
	return step.obstacle, step.grown
}

func opt(v blossom.NodeIndex) nonmax.Option[blossom.NodeIndex] {
	return nonmax.MustNew(v).Option()
}

// DecoderSuite exercises Decoder.Run end to end against scripted dual
// responses, the same "drive the whole algorithm against worked cases"
// role flow/dinic_test.go's DinicSuite plays for max-flow.
type DecoderSuite struct {
	suite.Suite
}

func (s *DecoderSuite) TestRunStopsOnNone() {
	driver := &scriptedDriver{script: []scriptedStep{
		{obstacle: blossom.GrowLengthObstacle(5)},
		{obstacle: blossom.NoneObstacle()},
	}}
	d := decoder.New(4, driver)

	var events []decoder.EventKind
	decoder.WithOnEvent(func(e decoder.Event) { events = append(events, e.Kind) })(d)

	d.Run()

	require.Equal(s.T(), []string{"grow"}, driver.calls)
	require.Equal(s.T(), blossom.Weight(0), d.TotalGrown())
	require.Equal(s.T(), []decoder.EventKind{
		decoder.EventGrew, decoder.EventGrew, decoder.EventDone,
	}, events)
}

func (s *DecoderSuite) TestRunResolvesVirtualBoundaryConflict() {
	driver := &scriptedDriver{script: []scriptedStep{
		{obstacle: blossom.Obstacle{
			Kind:    blossom.ObstacleConflict,
			Node1:   opt(0),
			Touch1:  opt(0),
			Node2:   nonmax.None[blossom.NodeIndex](),
			Touch2:  nonmax.None[blossom.NodeIndex](),
			Vertex2: 7,
		}},
		{obstacle: blossom.NoneObstacle()},
	}}
	d := decoder.New(4, driver)

	var resolved []decoder.EventKind
	decoder.WithOnEvent(func(e decoder.Event) {
		if e.Kind == decoder.EventResolvedConflict {
			resolved = append(resolved, e.Kind)
		}
	})(d)

	d.Run()

	require.Equal(s.T(), []decoder.EventKind{decoder.EventResolvedConflict}, resolved)
	require.Contains(s.T(), driver.calls, "set_speed")

	var matched []blossom.NodeIndex
	d.IteratePerfectMatching(func(node blossom.NodeIndex, kind blossom.MatchKind, target, touching blossom.NodeIndex) {
		matched = append(matched, node)
		require.Equal(s.T(), blossom.MatchVirtual, kind)
		require.Equal(s.T(), blossom.NodeIndex(7), target)
	})
	require.Equal(s.T(), []blossom.NodeIndex{0}, matched)
}

func (s *DecoderSuite) TestAddDefectForwardsToDriver() {
	driver := &scriptedDriver{script: []scriptedStep{{obstacle: blossom.NoneObstacle()}}}
	d := decoder.New(4, driver)

	d.AddDefect(3, 0)
	require.Equal(s.T(), []string{"add_defect"}, driver.calls)
}

func (s *DecoderSuite) TestResetForwardsAndClears() {
	driver := &scriptedDriver{script: []scriptedStep{
		{obstacle: blossom.Obstacle{
			Kind:    blossom.ObstacleConflict,
			Node1:   opt(0),
			Touch1:  opt(0),
			Node2:   nonmax.None[blossom.NodeIndex](),
			Touch2:  nonmax.None[blossom.NodeIndex](),
			Vertex2: 1,
		}},
		{obstacle: blossom.NoneObstacle()},
	}}
	d := decoder.New(4, driver)
	d.Run()
	require.NotZero(s.T(), len(driver.calls))

	d.Reset()
	require.Equal(s.T(), "reset", driver.calls[len(driver.calls)-1])
	require.Equal(s.T(), blossom.Weight(0), d.TotalGrown())

	var matched []blossom.NodeIndex
	d.IteratePerfectMatching(func(node blossom.NodeIndex, kind blossom.MatchKind, target, touching blossom.NodeIndex) {
		matched = append(matched, node)
	})
	require.Empty(s.T(), matched)
}

func TestDecoderSuite(t *testing.T) {
	suite.Run(t, new(DecoderSuite))
}
