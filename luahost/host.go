// This file is part of docjoy.
//
// docjoy is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// docjoy is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with docjoy.  If not, see <https://www.gnu.org/licenses/>.

package luahost

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/docjoy/docjoy/curated"
	"github.com/docjoy/docjoy/logger"
	lua "github.com/yuin/gopher-lua"
)

// the libraries a playback script may use. io is opened but io.open is
// replaced with a read-only version
var libraries = []struct {
	name string
	fn   lua.LGFunction
}{
	{lua.BaseLibName, lua.OpenBase},
	{lua.TabLibName, lua.OpenTable},
	{lua.StringLibName, lua.OpenString},
	{lua.MathLibName, lua.OpenMath},
	{lua.IoLibName, lua.OpenIo},
}

// host is the emulator side of the scripting API
type host struct {
	L   *lua.LState
	dir string

	// the function registered with emu.registerbefore(). nil if no function
	// is registered
	callback *lua.LFunction

	// keys asserted with joypad.set() during the current frame
	asserted map[string]bool

	rep *Report
}

func newHost(dir string, rep *Report) (*host, error) {
	h := &host{
		L: lua.NewState(lua.Options{
			SkipOpenLibs: true,
		}),
		dir:      dir,
		asserted: make(map[string]bool),
		rep:      rep,
	}

	for _, lib := range libraries {
		err := h.L.CallByParam(lua.P{
			Fn:      h.L.NewFunction(lib.fn),
			NRet:    0,
			Protect: true,
		}, lua.LString(lib.name))
		if err != nil {
			h.L.Close()
			return nil, fmt.Errorf("luahost: %s: %w", lib.name, err)
		}
	}

	err := h.install()
	if err != nil {
		h.L.Close()
		return nil, err
	}

	return h, nil
}

func (h *host) close() {
	h.L.Close()
}

// install the emulator API tables and the replacement print and io.open
// functions
func (h *host) install() error {
	L := h.L

	emu := L.NewTable()
	L.SetField(emu, "registerbefore", L.NewFunction(h.registerBefore))
	L.SetGlobal("emu", emu)

	joypad := L.NewTable()
	L.SetField(joypad, "set", L.NewFunction(h.joypadSet))
	L.SetGlobal("joypad", joypad)

	gui := L.NewTable()
	L.SetField(gui, "text", L.NewFunction(h.guiText))
	L.SetGlobal("gui", gui)

	L.SetGlobal("print", L.NewFunction(h.print))

	io, ok := L.GetGlobal("io").(*lua.LTable)
	if !ok {
		return fmt.Errorf("luahost: io library is missing")
	}
	open := L.GetField(io, "open")
	L.SetField(io, "open", L.NewFunction(func(L *lua.LState) int {
		return h.ioOpen(L, open)
	}))
	for _, n := range []string{"popen", "output", "write", "tmpfile"} {
		L.SetField(io, n, lua.LNil)
	}

	return nil
}

// emu.registerbefore(fn). calling with nil unregisters the current function
func (h *host) registerBefore(L *lua.LState) int {
	switch v := L.Get(1).(type) {
	case *lua.LFunction:
		h.callback = v
	case *lua.LNilType:
		h.callback = nil
	default:
		L.ArgError(1, "function or nil expected")
	}
	return 0
}

// joypad.set(buttons) or joypad.set(which, buttons)
func (h *host) joypadSet(L *lua.LState) int {
	idx := 1
	if L.GetTop() > 1 {
		L.CheckInt(1)
		idx = 2
	}
	tbl := L.CheckTable(idx)

	var bad string
	tbl.ForEach(func(k, v lua.LValue) {
		key := k.String()
		if _, ok := keyTokens[key]; !ok {
			bad = key
			return
		}
		h.asserted[key] = lua.LVAsBool(v)
	})
	if bad != "" {
		L.RaiseError("joypad.set: unknown button (%s)", bad)
	}

	return 0
}

// gui.text(x, y, message)
func (h *host) guiText(L *lua.LState) int {
	L.CheckInt(1)
	L.CheckInt(2)
	h.rep.Overlay = L.ToStringMeta(L.Get(3)).String()
	return 0
}

func (h *host) print(L *lua.LState) int {
	s := make([]string, L.GetTop())
	for i := range s {
		s[i] = L.ToStringMeta(L.Get(i + 1)).String()
	}
	ln := strings.Join(s, "\t")
	h.rep.Output = append(h.rep.Output, ln)
	logger.Log(logger.Allow, "lua", ln)
	return 0
}

// io.open with read-only access. relative paths are resolved against the
// directory of the script
func (h *host) ioOpen(L *lua.LState, open lua.LValue) int {
	fn := L.CheckString(1)
	mode := L.OptString(2, "r")

	if mode != "r" && mode != "rb" {
		L.Push(lua.LNil)
		L.Push(lua.LString(fmt.Sprintf("%s: read only", fn)))
		return 2
	}

	if !filepath.IsAbs(fn) {
		fn = filepath.Join(h.dir, fn)
	}

	err := L.CallByParam(lua.P{
		Fn:      open,
		NRet:    2,
		Protect: true,
	}, lua.LString(fn), lua.LString(mode))
	if err != nil {
		L.Push(lua.LNil)
		L.Push(lua.LString(err.Error()))
		return 2
	}

	// the two return values of the original io.open are on the stack
	return 2
}

// frame runs the registered callback for a single frame. the keys asserted
// during the frame are returned in sorted order
func (h *host) frame() ([]string, error) {
	clear(h.asserted)

	err := h.L.CallByParam(lua.P{
		Fn:      h.callback,
		NRet:    0,
		Protect: true,
	})
	if err != nil {
		return nil, scriptError(err)
	}

	var pressed []string
	for k, v := range h.asserted {
		if v {
			pressed = append(pressed, k)
		}
	}
	sort.Strings(pressed)

	return pressed, nil
}

// state returns the value of player.state or the empty string if the script
// has no player table
func (h *host) state() string {
	p, ok := h.L.GetGlobal("player").(*lua.LTable)
	if !ok {
		return ""
	}
	return lua.LVAsString(h.L.GetField(p, "state"))
}

// scriptError converts an error from the Lua state to a curated error without
// the Lua stack trace
func scriptError(err error) error {
	var aerr *lua.ApiError
	if errors.As(err, &aerr) {
		if aerr.Type == lua.ApiErrorFile {
			return curated.Errorf(curated.ScriptError, aerr.Cause)
		}
		return curated.Errorf(curated.ScriptError, aerr.Object.String())
	}
	return curated.Errorf(curated.ScriptError, err)
}
