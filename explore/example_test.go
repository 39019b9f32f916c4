package explore_test

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/paulmach/orb"

	"github.com/katalvlaran/frontier/explore"
	"github.com/katalvlaran/frontier/gridgraph"
	"github.com/katalvlaran/frontier/sensor"
)

type staticAgent struct{ at orb.Point }

func (a *staticAgent) Position() orb.Point        { return a.at }
func (a *staticAgent) SetDestination(p orb.Point) { a.at = p }

type fixedMarkers struct{}

func (fixedMarkers) Spawn(orb.Point) (uuid.UUID, error) {
	return uuid.MustParse("00000000-0000-0000-0000-000000000001"), nil
}
func (fixedMarkers) Despawn(uuid.UUID) error { return nil }

// ExampleExplorer_Dump starts a run in the corner of an open 3x3 room and
// prints the diagnostics after the first waypoint is committed.
func ExampleExplorer_Dump() {
	layout, _ := gridgraph.NewLayout(3, 2)
	open := sensor.Func(func(_, _ orb.Point, _ float64) sensor.Observation { return sensor.Miss })
	agent := &staticAgent{at: orb.Point{1, 1}}

	e, err := explore.New(layout, 2, agent, open, fixedMarkers{})
	if err != nil {
		fmt.Println(err)
		return
	}
	if err := e.Start(context.Background()); err != nil {
		fmt.Println(err)
		return
	}
	_ = e.Dump(os.Stdout)
	fmt.Println("agent heading to", agent.at.X(), agent.at.Y())
	// Output:
	// Map (done=false):
	//  O O ?
	//  O O ?
	//  ? ? ?
	// Target Locations: (0,1), (1,1), (1,0)
	// Target: 00000000-0000-0000-0000-000000000001 at vertex 3
	// Route:
	// agent heading to 3 1
}
