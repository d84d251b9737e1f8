package export

import (
	"fmt"
	"strings"

	lua "github.com/Shopify/go-lua"

	"github.com/dukaforge/chronicler/pkg/types"
)

// VerifyScripts compiles every generated .lua file in a throwaway Lua
// state, catching malformed emissions before they reach an archive. The
// chunks are only compiled, never run: they reference runtime globals
// (LibStub, the addon vararg) that exist in the client, not here.
func VerifyScripts(files []File) error {
	state := lua.NewState()
	for _, f := range files {
		if !strings.HasSuffix(f.Path, ".lua") {
			continue
		}
		if err := lua.LoadBuffer(state, f.Content, f.Path, ""); err != nil {
			return fmt.Errorf("%w: script %s does not compile: %v", types.ErrExport, f.Path, err)
		}
		// Drop the compiled chunk; only the syntax check matters.
		state.Pop(1)
	}
	return nil
}
