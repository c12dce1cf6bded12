// Package metrics defines the recorder paykit reports decode and derivation
// events to. The default is NoopRecorder.
package metrics

import "time"

type Recorder interface {
	IncCounter(name string, labels map[string]string)
	ObserveLatency(name string, duration time.Duration, labels map[string]string)
}
