// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const campusLocations = `name,type,weight
Library,Academic,30
Cafeteria,Dining,15
Gym,Sports,45
Observatory,Academic,20
`

const campusPaths = `node,node.1,weight
Library,Cafeteria,5
Cafeteria,Gym,3
Library,Gym,10
`

// fixture writes the campus CSVs into a temp dir and returns the flags that
// point the CLI at them.
func fixture(t *testing.T, locations, paths string) []string {
	t.Helper()
	dir := t.TempDir()
	locPath := filepath.Join(dir, "nodes.csv")
	pathPath := filepath.Join(dir, "edges.csv")
	require.NoError(t, os.WriteFile(locPath, []byte(locations), 0o600))
	require.NoError(t, os.WriteFile(pathPath, []byte(paths), 0o600))

	return []string{
		"--config", filepath.Join(dir, "absent.yaml"),
		"--locations", locPath,
		"--paths", pathPath,
	}
}

// invoke runs one command line and returns exit code, stdout and stderr.
func invoke(t *testing.T, base []string, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := run(append(append([]string{}, base...), args...), strings.NewReader(stdin), &out, &errOut)

	return code, out.String(), errOut.String()
}

func TestRun_Queries(t *testing.T) {
	base := fixture(t, campusLocations, campusPaths)

	code, out, _ := invoke(t, base, "", "route", "Library", "Gym")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Library -> Cafeteria -> Gym")
	assert.Contains(t, out, "total weight: 8")

	code, out, _ = invoke(t, base, "", "has-path", "Library", "Observatory")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "not connected")

	code, out, _ = invoke(t, base, "", "find", "academic")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Library")
	assert.Contains(t, out, "Observatory")
	assert.NotContains(t, out, "Gym")

	code, out, _ = invoke(t, base, "", "neighbors", "Cafeteria")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Gym")
	assert.Contains(t, out, "Library")

	code, out, _ = invoke(t, base, "", "connectivity")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "(2 components)")
	assert.Contains(t, out, "Observatory")
	assert.Contains(t, out, "100")

	code, out, _ = invoke(t, base, "", "route", "--hops", "Library", "Gym")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Library -> Gym")
	assert.Contains(t, out, "paths: 1")

	code, out, _ = invoke(t, base, "", "nearby", "Gym", "--hops", "1")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Cafeteria")
	assert.Contains(t, out, "Library")
	assert.NotContains(t, out, "Observatory")

	code, out, _ = invoke(t, base, "", "nearby", "Observatory")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "nothing within 1 of Observatory")

	code, out, _ = invoke(t, base, "", "tour", "Sports")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Gym")
	assert.Contains(t, out, "total visit time: 45 min")
}

func TestRun_ErrorsExitNonZero(t *testing.T) {
	base := fixture(t, campusLocations, campusPaths)

	cases := []struct {
		name string
		args []string
		want string
	}{
		{"unknown location", []string{"route", "Library", "Nowhere"}, "not found"},
		{"no route", []string{"route", "Library", "Observatory"}, "no path"},
		{"mst on islands", []string{"mst"}, "disconnected"},
		{"mst from unknown root", []string{"mst", "--root", "Nowhere"}, "not found"},
		{"nearby with no hops", []string{"nearby", "Gym", "--hops", "0"}, "invalid input"},
		{"hop route across islands", []string{"route", "--hops", "Gym", "Observatory"}, "no path"},
		{"weight above max", []string{"add-path", "Library", "Gym", "2147483648"}, "invalid input"},
		{"tour across islands", []string{"tour", "Academic"}, "disconnected"},
		{"tour with no match", []string{"tour", "academic"}, "empty result"},
		{"zero weight", []string{"add-path", "Library", "Gym", "0"}, "invalid input"},
		{"missing args", []string{"route", "Library"}, "accepts 2 arg(s)"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, _, errOut := invoke(t, base, "", tc.args...)
			assert.Equal(t, 1, code)
			assert.Contains(t, errOut, tc.want)
		})
	}
}

func TestRun_LoadPolicy(t *testing.T) {
	bad := campusLocations + "Pool,Sports,-5\n"
	base := fixture(t, bad, campusPaths)

	code, out, _ := invoke(t, base, "", "locations")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Observatory")
	assert.NotContains(t, out, "Pool")

	code, _, errOut := invoke(t, base, "", "--strict", "locations")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "invalid input")
}

func TestRun_Config(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "campusnav.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("analysis:\n  mst_method: prim\n"), 0o600))

	code, out, _ := invoke(t, nil, "", "--config", cfgPath, "--log-level", "error", "config")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "mst_method: prim")
	assert.Contains(t, out, "bridge_weight: 100")
	assert.Contains(t, out, "level: error")

	code, _, errOut := invoke(t, nil, "", "--config", cfgPath, "--log-level", "loud", "config")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "Level")
}

func TestShell_KeepsEditsBetweenLines(t *testing.T) {
	base := fixture(t, campusLocations, campusPaths)
	script := strings.Join([]string{
		`add-location "Music Hall" Arts 20`,
		`add-path "Music Hall" Gym 2`,
		`route Library "Music Hall"`,
		``,
		`bogus`,
		`shell`,
		`delete-location Observatory`,
		`delete-location "Music Hall"`,
		`euler --trail`,
		`mst --root Gym`,
		`exit`,
		`locations`,
	}, "\n")

	code, out, _ := invoke(t, base, script, "shell")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "added location Music Hall")
	assert.Contains(t, out, "Library -> Cafeteria -> Gym -> Music Hall")
	assert.Contains(t, out, "total weight: 10")
	assert.Contains(t, out, `unknown command "bogus"`)
	assert.Contains(t, out, "already in a shell")
	assert.Contains(t, out, "ending where it started")
	assert.Contains(t, out, "trail: Cafeteria -> ")
	assert.Contains(t, out, "total weight: 8")
	assert.NotContains(t, out, "Visit (min)", "commands after exit must not run")
}

func TestSplitLine(t *testing.T) {
	args, err := splitLine(`  add-location  "Music Hall"   Arts 20 `)
	require.NoError(t, err)
	assert.Equal(t, []string{"add-location", "Music Hall", "Arts", "20"}, args)

	args, err = splitLine("   ")
	require.NoError(t, err)
	assert.Empty(t, args)

	args, err = splitLine(`modify-location X "" 5`)
	require.NoError(t, err)
	assert.Equal(t, []string{"modify-location", "X", "", "5"}, args)

	args, err = splitLine(`find Music" "Hall`)
	require.NoError(t, err)
	assert.Equal(t, []string{"find", "Music Hall"}, args)

	_, err = splitLine(`find "Music Hall`)
	assert.ErrorIs(t, err, errOpenQuote)
}

func TestShell_EmptyQuotedArgumentIsKept(t *testing.T) {
	base := fixture(t, campusLocations, campusPaths)
	script := strings.Join([]string{
		`modify-location Library "" 5`,
		`find Academic`,
	}, "\n")

	code, out, _ := invoke(t, base, script, "shell")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "invalid input")
	assert.NotContains(t, out, "accepts 3 arg(s)")
	assert.Contains(t, out, "Library", "the failed edit must leave Library in place")
}
