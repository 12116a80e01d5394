//go:build js
// +build js

package main

import (
	"strings"
	"syscall/js"
)

func fuzzToTestcaseFunction(this js.Value, p []js.Value) interface{} {
	var sb strings.Builder
	e := &emitter{Harness: harnessName}
	if err := e.emit(&sb, []byte(p[0].String())); err != nil {
		return js.ValueOf(err.Error())
	}
	return js.ValueOf(sb.String())
}

func main() {
	c := make(chan struct{})

	js.Global().Set("fuzzToTestcase", js.FuncOf(fuzzToTestcaseFunction))

	<-c
}
