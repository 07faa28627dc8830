//go:build js && wasm

// ant-wasm exposes the ant engine to JavaScript.
//
// It registers a global newAnt(size) that returns an object with step(), rgba(), x(),
// y(), direction() and steps(). step() returns a fresh Uint8Array with the grid
// after the step, rgba() the current grid as RGBA pixels ready for ImageData.
// Invalid sizes throw an Error.
package main

import (
	"syscall/js"

	"mad-ant/internal/render"
	"mad-ant/internal/sims/ant"

	"k8s.io/klog/v2"
)

var (
	window     = js.Global()
	uint8Array = window.Get("Uint8Array")
	jsError    = window.Get("Error")
)

// throwing wraps a Go callback so that an Error value it returns is thrown in JavaScript.
// Panics inside a js.FuncOf callback abort the Go program instead.
var throwing = window.Get("Function").New("impl",
	"return function(...args) { const r = impl(...args); if (r instanceof Error) { throw r; } return r; };")

func main() {
	window.Set("newAnt", throwing.Invoke(js.FuncOf(newAnt)))
	klog.V(1).Info("ant-wasm: newAnt registered")
	select {}
}

func newAnt(_ js.Value, args []js.Value) any {
	if len(args) != 1 || args[0].Type() != js.TypeNumber {
		return jsError.New("newAnt expects a single numeric size")
	}
	size, err := sizeFromNumber(args[0].Float())
	if err != nil {
		return jsError.New(err.Error())
	}
	a, err := ant.New(size)
	if err != nil {
		return jsError.New(err.Error())
	}
	return wrap(a)
}

// wrap builds the JavaScript object backed by a.
func wrap(a *ant.Ant) js.Value {
	size := a.Size().W
	frame := render.NewFrame(size, size)
	obj := window.Get("Object").New()
	obj.Set("step", js.FuncOf(func(js.Value, []js.Value) any {
		return toUint8Array(a.Step())
	}))
	obj.Set("rgba", js.FuncOf(func(js.Value, []js.Value) any {
		frame.Fill(a.Cells(), render.CellOn, render.CellOff)
		frame.Mark(a.X(), a.Y(), render.AntMarker)
		return toUint8Array(frame.Pix())
	}))
	obj.Set("x", js.FuncOf(func(js.Value, []js.Value) any { return a.X() }))
	obj.Set("y", js.FuncOf(func(js.Value, []js.Value) any { return a.Y() }))
	obj.Set("direction", js.FuncOf(func(js.Value, []js.Value) any { return a.Direction() }))
	obj.Set("steps", js.FuncOf(func(js.Value, []js.Value) any { return float64(a.Steps()) }))
	obj.Set("size", size)
	return obj
}

func toUint8Array(buf []byte) js.Value {
	arr := uint8Array.New(len(buf))
	js.CopyBytesToJS(arr, buf)
	return arr
}
