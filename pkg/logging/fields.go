package logging

import "time"

// Field is a key/value pair attached to a log entry.
type Field struct {
	Key   string
	Value any
}

func String(key, value string) Field          { return Field{Key: key, Value: value} }
func Int(key string, value int) Field         { return Field{Key: key, Value: value} }
func Float64(key string, value float64) Field { return Field{Key: key, Value: value} }
func Bool(key string, value bool) Field       { return Field{Key: key, Value: value} }

func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value.String()}
}

func Error(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

// Domain field helpers.

func Component(name string) Field   { return String("component", name) }
func AssetID(id string) Field       { return String("asset_id", id) }
func Tag(tag string) Field          { return String("tag", tag) }
func LoopKey(key string) Field      { return String("loop_key", key) }
func PassName(name string) Field    { return String("pass", name) }
func TriggerID(id string) Field     { return String("trigger_id", id) }
func Area(area string) Field        { return String("process_area", area) }
func VLAN(vlan int) Field           { return Int("vlan", vlan) }
func Count(n int) Field             { return Int("count", n) }
func Latency(d time.Duration) Field { return Duration("latency", d) }
