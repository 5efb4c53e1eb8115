package diagnostic

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestDiagnostic_String(t *testing.T) {
	d := Diagnostic{Name: "demo::Bar", Message: "the item is on the blocklist"}

	assert.Equal(t, "Ignored demo::Bar: the item is on the blocklist", d.String())
}

func TestWriterSink_AppendsLines(t *testing.T) {
	var buf bytes.Buffer

	sink := NewWriterSink(&buf)
	sink.Append(Diagnostic{Name: "a", Message: "first"})
	sink.Append(Diagnostic{Name: "b", Message: "second"})

	assert.Equal(t, "Ignored a: first\nIgnored b: second\n", buf.String())
}

func TestWriterSink_ConcurrentAppends(t *testing.T) {
	var buf bytes.Buffer

	sink := NewWriterSink(&buf)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()
			sink.Append(Diagnostic{Name: "x", Message: "y"})
		}()
	}
	wg.Wait()

	lines := bytes.Count(buf.Bytes(), []byte{'\n'})
	assert.Equal(t, 8, lines)
}

func TestZapSink_KeepsNameAndMessageInLine(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	sink := NewZapSink(zap.New(core))

	sink.Append(Diagnostic{Name: "demo::Bar", Message: "boom", Code: "ShapeMismatch"})

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "Ignored demo::Bar: boom", entries[0].Message)

	fields := entries[0].ContextMap()
	assert.Equal(t, "demo::Bar", fields["name"])
	assert.Equal(t, "ShapeMismatch", fields["code"])
}

func TestZapSink_OmitsEmptyCode(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	sink := NewZapSink(zap.New(core))

	sink.Append(Diagnostic{Name: "item", Message: "boom"})

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.NotContains(t, entries[0].ContextMap(), "code")
}

func TestRecorder(t *testing.T) {
	r := &Recorder{}
	r.Append(Diagnostic{Name: "a", Message: "first"})
	r.Append(Diagnostic{Name: "b", Message: "second"})

	diags := r.Diagnostics()
	require.Len(t, diags, 2)
	assert.Equal(t, []string{"Ignored a: first", "Ignored b: second"}, r.Lines())

	// The returned slice is a copy.
	diags[0].Name = "mutated"
	assert.Equal(t, "a", r.Diagnostics()[0].Name)
}
