package tblwriter

import (
	"bytes"
	"fmt"
	"iter"
)

// WriteTableIter writes one table whose rows arrive in chunks. The header is
// written with the first non-empty chunk and each chunk is flushed to Output
// as soon as it is rendered, so an error may leave earlier chunks written.
// Table.Rows is not used. Writers that cannot split a table return
// ErrSplitWriteUnsupported before writing anything.
func (t *Table) WriteTableIter(chunks iter.Seq[[][]any]) error {
	if !t.SupportSplitWrite() {
		return fmt.Errorf("%w: format %q", ErrSplitWriteUnsupported, t.Format())
	}
	first := true
	var streamErr error
	chunks(func(rows [][]any) bool {
		if isBlankRows(rows) {
			return true
		}
		streamErr = t.writeChunk(rows, first)
		first = false
		return streamErr == nil
	})
	if streamErr != nil {
		return streamErr
	}
	if first {
		// No rows arrived: emit the header alone, or fail if there is none.
		return t.writeChunk(nil, true)
	}
	return nil
}

// WriteTableChan writes one table whose rows arrive on ch.
// It is a thin wrapper around [Table.WriteTableIter].
func (t *Table) WriteTableChan(ch <-chan [][]any) error {
	return t.WriteTableIter(chanToIter(ch))
}

func (t *Table) writeChunk(rows [][]any, withHeader bool) error {
	var buf bytes.Buffer
	if err := t.render(&buf, t.Header, rows, withHeader); err != nil {
		return err
	}
	_, err := t.output().Write(buf.Bytes())
	return err
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
