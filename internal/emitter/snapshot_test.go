package emitter

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// TestDumpSnapshots pins the emitter's debug-dump format for a handful of
// representative programs, the way the teacher repo uses go-snaps to pin
// its own fixture output.
func TestDumpSnapshots(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"arithmetic", `let x = 1 + 2 * 3;`},
		{"if_else", `if (1) { let a = 1; } else { let b = 2; }`},
		{"while_loop", `let i = 0; while (i < 3) { i = i + 1; }`},
		{"array_and_object", `let a = [1, 2]; let o = {x: 1};`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			chunk, _ := compile(t, c.src)
			snaps.MatchSnapshot(t, chunk.Dump())
		})
	}
}
