// Package editor holds the state and input handling for an in-game level and
// sprite-sheet editor built on rowan.
//
// The package draws nothing. [LevelEditor] and [SheetEditor] expose geometry
// (preview position, collision warning, cell outlines) for the host game to
// render however it likes; [Camera] pans the view and [DefaultMapping] binds
// the editor [Action] set.
//
// A typical host calls, once per frame:
//
//	in.Poll()
//	cam.Pan(cursorX, cursorY, w, h, mapping, in)
//	cam.Update(dt)
//	ed.Update(mapping, in, cam.WorldPos(cursorX, cursorY))
package editor
