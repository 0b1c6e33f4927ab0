//go:build js && wasm

package main

import (
	"syscall/js"

	decorated "github.com/danielgatis/go-decorated"
)

// anomalyCallback is handed to every string parsed after onAnomaly is called.
var anomalyCallback = js.Undefined()

// jsHandlers holds all JavaScript callback handlers for a string instance
type jsHandlers struct {
	anomaly *jsAnomalyProvider
}

func newJSHandlers() *jsHandlers {
	return &jsHandlers{
		anomaly: &jsAnomalyProvider{callback: anomalyCallback},
	}
}

// ============================================================================
// Anomaly Provider - calls onAnomaly(kind, offset, code)
// kind: "unterminated tag", "empty tag", "unmatched close", "forced standalone", "overflow"
// ============================================================================

type jsAnomalyProvider struct {
	callback js.Value
}

func (p *jsAnomalyProvider) Report(kind decorated.Anomaly, offset int, code string) {
	if p.callback.IsUndefined() || p.callback.IsNull() {
		return
	}
	p.callback.Invoke(kind.String(), offset, code)
}

var _ decorated.AnomalyProvider = (*jsAnomalyProvider)(nil)
