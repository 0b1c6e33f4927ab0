//go:build js && wasm

package main

import (
	"encoding/json"
	"syscall/js"

	decorated "github.com/danielgatis/go-decorated"
)

// Global string registry
var instances = make(map[int]*stringInstance)
var nextStringID = 1

// stringInstance wraps a decorated string with its JS handlers
type stringInstance struct {
	s        *decorated.String
	handlers *jsHandlers
}

func main() {
	// Register all exported functions
	js.Global().Set("Decorated", js.ValueOf(map[string]interface{}{
		// Lifecycle
		"parse":   js.FuncOf(parse),
		"destroy": js.FuncOf(destroy),

		// Content
		"text":    js.FuncOf(text),
		"len":     js.FuncOf(length),
		"extract": js.FuncOf(extract),
		"encode":  js.FuncOf(encode),

		// Editing
		"insert":  js.FuncOf(insert),
		"delete":  js.FuncOf(deleteRange),
		"replace": js.FuncOf(replace),
		"reverse": js.FuncOf(reverse),
		"shuffle": js.FuncOf(shuffle),

		// Serializers
		"render":       js.FuncOf(render),
		"decompose":    js.FuncOf(decompose),
		"compose":      js.FuncOf(compose),
		"snapshotJSON": js.FuncOf(snapshotJSON),

		// Stateless helpers
		"removeMarkup": js.FuncOf(removeMarkup),
		"highlight":    js.FuncOf(highlight),

		// Handler registration
		"onAnomaly": js.FuncOf(onAnomaly),
	}))

	// Keep the program running
	select {}
}

// ============================================================================
// Lifecycle
// ============================================================================

// parse(source, maxLen?) returns a string id.
func parse(_ js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return -1
	}
	handlers := newJSHandlers()

	opts := []decorated.Option{
		decorated.WithAnomalyProvider(handlers.anomaly),
	}
	if len(args) >= 2 && args[1].Type() == js.TypeNumber {
		opts = append(opts, decorated.WithMaxLen(args[1].Int()))
	}

	id := nextStringID
	nextStringID++
	instances[id] = &stringInstance{
		s:        decorated.Parse(args[0].String(), opts...),
		handlers: handlers,
	}
	return id
}

func destroy(_ js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	id := args[0].Int()
	if inst := instances[id]; inst != nil {
		inst.s.Release()
	}
	delete(instances, id)
	return nil
}

func getString(id int) *decorated.String {
	inst := instances[id]
	if inst == nil {
		return nil
	}
	return inst.s
}

// result converts a value and an error into {value, error}.
func result(value interface{}, err error) interface{} {
	out := map[string]interface{}{"value": value, "error": nil}
	if err != nil {
		out["error"] = err.Error()
	}
	return out
}

// ============================================================================
// Content
// ============================================================================

func text(_ js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return ""
	}
	s := getString(args[0].Int())
	if s == nil {
		return ""
	}
	return s.Text()
}

func length(_ js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return 0
	}
	s := getString(args[0].Int())
	if s == nil {
		return 0
	}
	return s.Len()
}

func extract(_ js.Value, args []js.Value) interface{} {
	if len(args) < 3 {
		return nil
	}
	s := getString(args[0].Int())
	if s == nil {
		return nil
	}
	return result(s.Extract(args[1].Int(), args[2].Int()))
}

func encode(_ js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	s := getString(args[0].Int())
	if s == nil {
		return nil
	}
	return result(s.Encode())
}

// ============================================================================
// Editing
// ============================================================================

// insert(id, at, otherID)
func insert(_ js.Value, args []js.Value) interface{} {
	if len(args) < 3 {
		return nil
	}
	s, other := getString(args[0].Int()), getString(args[2].Int())
	if s == nil || other == nil {
		return nil
	}
	return result(nil, s.Insert(args[1].Int(), other))
}

// delete(id, start, count)
func deleteRange(_ js.Value, args []js.Value) interface{} {
	if len(args) < 3 {
		return nil
	}
	s := getString(args[0].Int())
	if s == nil {
		return nil
	}
	return result(nil, s.Delete(args[1].Int(), args[2].Int()))
}

// replace(id, at, count, otherID)
func replace(_ js.Value, args []js.Value) interface{} {
	if len(args) < 4 {
		return nil
	}
	s, other := getString(args[0].Int()), getString(args[3].Int())
	if s == nil || other == nil {
		return nil
	}
	return result(nil, s.Replace(args[1].Int(), args[2].Int(), other))
}

func reverse(_ js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	if s := getString(args[0].Int()); s != nil {
		s.Reverse()
	}
	return nil
}

func shuffle(_ js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	if s := getString(args[0].Int()); s != nil {
		s.Shuffle()
	}
	return nil
}

// ============================================================================
// Serializers
// ============================================================================

// render(id, capability) where capability is "plain", "hilite", "16", "256", "tags" or "html".
func render(_ js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return nil
	}
	s := getString(args[0].Int())
	if s == nil {
		return nil
	}
	c, err := decorated.ParseCapability(args[1].String())
	if err != nil {
		return result(nil, err)
	}
	return result(s.Render(c))
}

func decompose(_ js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return ""
	}
	s := getString(args[0].Int())
	if s == nil {
		return ""
	}
	return s.Decompose()
}

func compose(_ js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	return result(decorated.Compose(args[0].String()))
}

// snapshotJSON(id, detail) where detail is "text", "styled" or "full".
func snapshotJSON(_ js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return ""
	}
	s := getString(args[0].Int())
	if s == nil {
		return ""
	}
	detail := decorated.SnapshotDetailStyled
	if len(args) >= 2 {
		detail = decorated.SnapshotDetail(args[1].String())
	}
	data, err := json.Marshal(s.Snapshot(detail))
	if err != nil {
		return ""
	}
	return string(data)
}

// ============================================================================
// Stateless helpers
// ============================================================================

func removeMarkup(_ js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return ""
	}
	return decorated.RemoveMarkup(args[0].String())
}

// highlight(code, lexer, style)
func highlight(_ js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	var lexer, style string
	if len(args) >= 2 {
		lexer = args[1].String()
	}
	if len(args) >= 3 {
		style = args[2].String()
	}
	return result(decorated.Highlight(args[0].String(), lexer, style))
}

// ============================================================================
// Handler registration
// ============================================================================

// onAnomaly(callback) sets the callback strings parsed afterwards report
// malformed markup to: callback(kind, offset, code).
func onAnomaly(_ js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	anomalyCallback = args[0]
	return nil
}
