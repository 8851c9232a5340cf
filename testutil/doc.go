// Package testutil holds helpers shared by the findpath test suites:
// stdout capture for the binaries, search fixtures on an afero
// filesystem, and PATH-style list building.
//
//	fsys := afero.NewMemMapFs()
//	testutil.WriteFiles(t, fsys, "/tools/notepad.EXE")
//	env := pathutil.StaticEnvironment{
//	    Vars: map[string]string{"PATH": testutil.JoinList("/tools")},
//	}
package testutil
