package dbg

import (
	"fmt"
	"reflect"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// Readable names for otherwise anonymous values. Pointer strings are hard to
// tell apart when tracing hull construction; a memoized pet name per value
// is much easier on the eyes. The memo flagrantly leaks memory, but names
// are generated lazily, so it costs nothing unless you're actually
// debugging.

var memo map[interface{}]string

func init() {
	memo = make(map[interface{}]string)
	// Names are handed out in demand order, so make them nondeterministic as
	// a reminder that the same name doesn't refer to the same thing between
	// runs.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if reflect.ValueOf(obj).IsNil() {
		return "Ø"
	}

	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[obj] = r
	return r
}

// Fresh returns a new two-word name on every call. Handy for labeling
// generated files without clobbering earlier runs.
func Fresh() string {
	return petname.Generate(2, "-")
}
