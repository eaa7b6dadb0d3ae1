package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/termtris/session"
	"github.com/plus3/termtris/tetris"
)

// SessionInspector shows the live state of a session.
type SessionInspector struct {
	Session *session.Session
}

// Summary describes a snapshot as short lines of text.
func Summary(snap tetris.Snapshot) []string {
	held := "none"
	if snap.HasHeld {
		held = snap.Held.String()
	}
	active := "none"
	if snap.HasActive {
		active = snap.Active.String()
	}
	next := make([]string, len(snap.Next))
	for i, k := range snap.Next {
		next[i] = k.String()
	}

	return []string{
		fmt.Sprintf("State: %s", snap.State),
		fmt.Sprintf("Tick: %d", snap.Ticks),
		fmt.Sprintf("Gravity in: %d", snap.Gravity),
		fmt.Sprintf("Lines: %d", snap.Lines),
		fmt.Sprintf("Active: %s", active),
		fmt.Sprintf("Held: %s (can hold: %t)", held, snap.CanHold),
		fmt.Sprintf("Next: %s", strings.Join(next, " ")),
	}
}

func (si *SessionInspector) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(440, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(320, 520), imgui.CondOnce)

	if !imgui.BeginV("Session", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	game := si.Session.Game()
	snap := game.Snapshot()

	imgui.Text(fmt.Sprintf("ID: %s", si.Session.ID))
	if si.Session.Done() {
		_, reason := si.Session.Scheduler().Stopped()
		imgui.Text(fmt.Sprintf("Stopped: %s", reason))
	}
	imgui.Separator()
	for _, line := range Summary(snap) {
		imgui.BulletText(line)
	}

	if imgui.BeginTabBar("SessionTabs") {
		if imgui.BeginTabItem("Board") {
			for y := range tetris.Height {
				imgui.Text(fmt.Sprintf("%2d |%s|", y, snap.Row(y)))
			}
			imgui.EndTabItem()
		}

		if imgui.BeginTabItem("Dealt") {
			stats := game.Stats()
			const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
			if imgui.BeginTableV("DealtTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
				imgui.TableSetupColumn("Kind")
				imgui.TableSetupColumn("Count")
				imgui.TableHeadersRow()
				for _, k := range tetris.Kinds {
					imgui.TableNextRow()
					imgui.TableNextColumn()
					imgui.Text(k.String())
					imgui.TableNextColumn()
					imgui.Text(fmt.Sprintf("%d", stats.Dealt(k)))
				}
				imgui.EndTable()
			}
			imgui.Text(fmt.Sprintf("Locks: %d  Holds: %d  Hard drops: %d", stats.Locks, stats.Holds, stats.HardDrops))
			imgui.EndTabItem()
		}

		if imgui.BeginTabItem("Resources") {
			for _, name := range si.Session.Scheduler().Resources().Types() {
				imgui.BulletText(name)
			}
			imgui.EndTabItem()
		}

		imgui.EndTabBar()
	}

	imgui.End()
}
