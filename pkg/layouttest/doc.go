// Package layouttest provides helpers for testing node trees without a
// real platform: a counting render surface, a recording drawing context,
// fixed-size leaf nodes, a frame Tester and JSON tree snapshots.
//
//	env := layouttest.NewEnv()
//	root := layout.NewContainer(env.Platform, layouttest.NewFixed(env.Platform, 10, 20))
//	tester := layouttest.NewTester(env, root)
//	if err := tester.Pump(geometry.Sz(100, 100)); err != nil {
//		t.Fatal(err)
//	}
//	tester.Snapshot().MatchesFile(t, "testdata/root.json")
//
// Set OMNIGUI_UPDATE_SNAPSHOTS=1 to rewrite golden files.
package layouttest
