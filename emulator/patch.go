package emulator

import (
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/intcode/intcode"
)

// Patch is a single memory cell replaced before a run.
type Patch struct {
	Address int
	Value   int
}

// Apply stores the patch into memory.
func (p Patch) Apply(mem intcode.Memory) error {
	return mem.Store(p.Address, p.Value)
}

// ParsePatch parses an 'address=value' patch. Both sides are integer
// expressions, and may refer to any of the defines.
func ParsePatch(text string, defines map[string]int) (patch Patch, err error) {
	defer func() {
		if err != nil {
			err = &ErrPatch{Patch: text, Err: err}
		}
	}()

	addr, value, ok := strings.Cut(text, "=")
	if !ok {
		err = ErrPatchSyntax
		return
	}

	patch.Address, err = Eval(addr, defines)
	if err != nil {
		return
	}

	patch.Value, err = Eval(value, defines)
	return
}

// Eval evaluates an integer expression.
func Eval(expr string, defines map[string]int) (value int, err error) {
	thread := starlark.Thread{Name: "patch"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, define := range defines {
		pred[key] = starlark.MakeInt(define)
	}

	prog := "rc=" + strings.TrimSpace(expr) + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}

	value = int(st_int64)
	return
}
