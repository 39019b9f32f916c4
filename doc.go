// Package frontier is a grid-based frontier exploration engine for a single
// agent in an unknown 2D world.
//
// What is it?
//
//	An agent with a short-range ray sensor repeatedly sweeps eight fixed
//	directions, records what it sees in an occupancy grid, grows a
//	connectivity graph over the cells it observed, and drives itself toward
//	the boundary between known free space and unknown space (the frontier)
//	along breadth-first routes, until no frontier is left.
//
// Under the hood:
//
//	gridgraph/: Cell, CellState, occupancy Grid, connectivity Graph, Layout
//	bfs/:       breadth-first search over integer vertex graphs
//	frontier/:  ordered frontier candidate set, LIFO selection
//	route/:     Idle/Following route state machine on top of bfs
//	sensor/:    ray probe contract and the eight sweep directions
//	explore/:   sweep rule, exploration State and the tick-driven Explorer
//	sim/:       R-tree obstacle world, drone and marker registry for runs
//	config/:    run parameters from the environment and .env files
//
// Cell states as printed by the diagnostics:
//
//	? Unknown   O Free   X Occupied   # Unreachable
//
// Quick start:
//
//	s, _ := sim.New(config.Default(), orb.Point{4, 4})
//	_ = s.World.AddCellObstacle(s.Layout, gridgraph.Cell{Row: 3, Col: 3})
//	_ = s.Run(ctx)
//	_ = s.Explorer.Dump(os.Stdout)
//
// See examples/explore_room for a complete program.
package frontier
