// core/fasta/write.go
package fasta

import (
	"fmt"
	"io"
	"os"
)

// WriteRecord writes one FASTA record as ">id\nseq\n".
func WriteRecord(w io.Writer, id string, seq []byte) error {
	_, err := fmt.Fprintf(w, ">%s\n%s\n", id, seq)
	return err
}

// WriteRecordFile creates path and writes a single FASTA record to it.
func WriteRecordFile(path, id string, seq []byte) error {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteRecord(fh, id, seq); err != nil {
		_ = fh.Close()
		return err
	}
	return fh.Close()
}
