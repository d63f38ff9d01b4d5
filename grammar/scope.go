package grammar

import (
	"strings"

	"github.com/emirpasic/gods/stacks/linkedliststack"
	"github.com/npillmayer/edat/table"
)

// scopeFrame is the table body currently being parsed.
type scopeFrame struct {
	name  string       // entry name of the subtable, "" for the top level
	table *table.Table // entries of this body are stored here
}

// scopeStack tracks nested table bodies during parsing. The path of frame
// names is used to locate diagnostics.
type scopeStack struct {
	frames *linkedliststack.Stack // stack of *scopeFrame
}

func newScopeStack() scopeStack {
	return scopeStack{frames: linkedliststack.New()}
}

// PushFrame pushes a frame for a new table body.
func (sst scopeStack) PushFrame(name string, tbl *table.Table) *scopeFrame {
	frame := &scopeFrame{name: name, table: tbl}
	sst.frames.Push(frame)
	tracer().P("scope", sst.Path()).Debugf("pushing table scope")
	return frame
}

// PopFrame pops the top-most frame.
func (sst scopeStack) PopFrame() *scopeFrame {
	tos, ok := sst.frames.Pop()
	if !ok {
		panic("attempt to pop scope from empty stack")
	}
	frame := tos.(*scopeFrame)
	tracer().P("scope", frame.name).Debugf("popping table scope")
	return frame
}

// Current gets the frame of the table body being parsed (TOS).
func (sst scopeStack) Current() *scopeFrame {
	tos, ok := sst.frames.Peek()
	if !ok {
		panic("attempt to access scope from empty stack")
	}
	return tos.(*scopeFrame)
}

// Depth is the number of open table bodies, 1 for the top level.
func (sst scopeStack) Depth() int {
	return sst.frames.Size()
}

// Path returns the dotted path of the current table body, e.g. "outer.inner".
// The top level has an empty path.
func (sst scopeStack) Path() string {
	frames := sst.frames.Values() // TOS first
	names := make([]string, 0, len(frames))
	for i := len(frames) - 1; i >= 0; i-- {
		if name := frames[i].(*scopeFrame).name; name != "" {
			names = append(names, name)
		}
	}
	return strings.Join(names, table.PathSeparator)
}

func (sst scopeStack) Clear() {
	sst.frames.Clear()
}
