// Package debugui provides Dear ImGui debug panels for the graphical frontend:
// scheduler timings and a live view of the game session.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/termtris/loop"
)

// ImguiItem holds a Dear ImGui render function.
type ImguiItem struct {
	Name   string
	Render func()
}

// Panels is the resource listing every item drawn each frame.
type Panels struct {
	Items []ImguiItem
}

// Add registers a render function under name.
func (p *Panels) Add(name string, render func()) {
	p.Items = append(p.Items, ImguiItem{Name: name, Render: render})
}

// ImguiInputState tracks Dear ImGui's input capture state as a resource.
// Frontends check it before treating a key press as game input.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem updates ImguiInputState and defers every panel's render
// function to the end of the frame.
type ImguiSystem struct {
	Panels     loop.Singleton[Panels]
	InputState loop.Singleton[ImguiInputState]
}

func (i *ImguiSystem) Execute(frame *loop.UpdateFrame) {
	state := i.InputState.Get()
	state.WantCaptureMouse = imgui.CurrentIO().WantCaptureMouse()
	state.WantCaptureKeyboard = imgui.CurrentIO().WantCaptureKeyboard()

	for _, item := range i.Panels.Get().Items {
		frame.Commands.Defer(item.Render)
	}
}
