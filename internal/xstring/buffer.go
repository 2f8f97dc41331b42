package xstring

import (
	"bytes"
	"sync"
)

type buffer struct {
	bytes.Buffer
}

var buffersPool = sync.Pool{New: func() interface{} {
	return &buffer{}
}}

func (b *buffer) Free() {
	b.Reset()
	buffersPool.Put(b)
}

// Buffer returns a reset buffer from the pool. Callers must Free it.
func Buffer() *buffer {
	b := buffersPool.Get().(*buffer) //nolint:forcetypeassert
	b.Reset()

	return b
}
