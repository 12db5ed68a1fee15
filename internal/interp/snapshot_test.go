package interp

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// TestProgramOutputSnapshots runs a handful of representative programs
// end to end and snapshots their full stdout, the same way go-snaps is used
// to pin down whole-program output elsewhere in the corpus this package is
// grounded on.
func TestProgramOutputSnapshots(t *testing.T) {
	programs := []struct {
		name   string
		source string
	}{
		{
			name: "fibonacci",
			source: `
fun fib(n) {
  if (n < 2) return n;
  return fib(n - 1) + fib(n - 2);
}
for (var i = 0; i < 8; i = i + 1) print fib(i);
`,
		},
		{
			name: "closures",
			source: `
fun makeCounter() {
  var count = 0;
  fun increment() {
    count = count + 1;
    print count;
  }
  return increment;
}
var counter = makeCounter();
counter();
counter();
counter();
`,
		},
		{
			name: "class_inheritance",
			source: `
class Animal {
  init(name) { this.name = name; }
  speak() { print this.name + " makes a sound"; }
}
class Dog < Animal {
  speak() {
    super.speak();
    print this.name + " barks";
  }
}
Dog("Rex").speak();
`,
		},
	}

	for _, p := range programs {
		t.Run(p.name, func(t *testing.T) {
			out, _ := runProgram(t, p.source)
			snaps.MatchSnapshot(t, p.name+"_output", out)
		})
	}
}
