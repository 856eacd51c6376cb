package log

import (
	"fmt"
	"sync"
	"time"

	"gopkg.in/Sirupsen/logrus.v0"
)

// EntryZ is an allocation-free log entry builder. Obtained from the module
// level functions (DebugZ, InfoZ, ...), filled with typed fields, and emitted
// with End(). A nil *EntryZ (disabled module/level) is valid: all methods are
// no-ops, so callsites pay almost nothing when logging is off.
type EntryZ struct {
	mod   Module
	lvl   Level
	msg   string
	zfbuf [16]ZField
	zfidx int
}

var zpool = sync.Pool{
	New: func() any { return new(EntryZ) },
}

func NewEntryZ() *EntryZ {
	e := zpool.Get().(*EntryZ)
	e.zfidx = 0
	return e
}

// Context adds fields to every log entry emitted while it is registered.
// Typically implemented by an emulation loop to tag entries with the current
// cycle count.
type Context interface {
	AddLogContext(e *EntryZ)
}

var contexts []Context

func AddContext(c Context) {
	contexts = append(contexts, c)
}

func (e *EntryZ) field(typ FieldType, key string) *ZField {
	if e.zfidx >= len(e.zfbuf) {
		panic("too many log fields")
	}
	f := &e.zfbuf[e.zfidx]
	e.zfidx++
	f.Type = typ
	f.Key = key
	return f
}

func (e *EntryZ) String(key, val string) *EntryZ {
	if e == nil {
		return nil
	}
	e.field(FieldTypeString, key).String = val
	return e
}

func (e *EntryZ) Bool(key string, val bool) *EntryZ {
	if e == nil {
		return nil
	}
	e.field(FieldTypeBool, key).Boolean = val
	return e
}

func (e *EntryZ) Int(key string, val int64) *EntryZ {
	if e == nil {
		return nil
	}
	e.field(FieldTypeInt, key).Integer = uint64(val)
	return e
}

func (e *EntryZ) Uint(key string, val uint64) *EntryZ {
	if e == nil {
		return nil
	}
	e.field(FieldTypeUint, key).Integer = val
	return e
}

func (e *EntryZ) Hex8(key string, val uint8) *EntryZ {
	if e == nil {
		return nil
	}
	e.field(FieldTypeHex8, key).Integer = uint64(val)
	return e
}

func (e *EntryZ) Hex16(key string, val uint16) *EntryZ {
	if e == nil {
		return nil
	}
	e.field(FieldTypeHex16, key).Integer = uint64(val)
	return e
}

func (e *EntryZ) Hex32(key string, val uint32) *EntryZ {
	if e == nil {
		return nil
	}
	e.field(FieldTypeHex32, key).Integer = uint64(val)
	return e
}

func (e *EntryZ) Hex64(key string, val uint64) *EntryZ {
	if e == nil {
		return nil
	}
	e.field(FieldTypeHex64, key).Integer = val
	return e
}

func (e *EntryZ) Error(key string, err error) *EntryZ {
	if e == nil {
		return nil
	}
	e.field(FieldTypeError, key).Error = err
	return e
}

func (e *EntryZ) Duration(key string, d time.Duration) *EntryZ {
	if e == nil {
		return nil
	}
	e.field(FieldTypeDuration, key).Duration = d
	return e
}

func (e *EntryZ) Stringer(key string, val fmt.Stringer) *EntryZ {
	if e == nil {
		return nil
	}
	e.field(FieldTypeStringer, key).Interface = val
	return e
}

func (e *EntryZ) Blob(key string, val []byte) *EntryZ {
	if e == nil {
		return nil
	}
	e.field(FieldTypeBlob, key).Blob = val
	return e
}

// End emits the entry and recycles it. The entry must not be used afterwards.
func (e *EntryZ) End() {
	if e == nil {
		return
	}

	for _, c := range contexts {
		c.AddLogContext(e)
	}

	fields := make(logrus.Fields, e.zfidx+1)
	fields["_mod"] = modNames[e.mod]
	for i := range e.zfbuf[:e.zfidx] {
		fields[e.zfbuf[i].Key] = e.zfbuf[i].Value()
	}

	entry := logrus.StandardLogger().WithFields(fields)
	switch e.lvl {
	case DebugLevel:
		entry.Debug(e.msg)
	case InfoLevel:
		entry.Info(e.msg)
	case WarnLevel:
		entry.Warn(e.msg)
	case ErrorLevel:
		entry.Error(e.msg)
	case FatalLevel:
		entry.Fatal(e.msg)
	case PanicLevel:
		entry.Panic(e.msg)
	}

	zpool.Put(e)
}
