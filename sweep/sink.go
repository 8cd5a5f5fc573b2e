package sweep

import (
	"fmt"
	"io"
)

// Row is the outcome of one tiling.
type Row struct {
	XCh uint64
	YCh uint64
	XOO uint64
	YOO uint64
	XOI uint64
	YOI uint64
	KI  uint64
	KO  uint64

	NumTrans    uint64
	Cycles      uint64
	NumTransOpt uint64
	CyclesOpt   uint64
}

// A RowSink receives the rows of a sweep.
type RowSink interface {
	Write(row Row) error
}

// TableSink prints rows as a space separated table.
type TableSink struct {
	w             io.Writer
	headerWritten bool
}

// NewTableSink creates a TableSink that prints into w.
func NewTableSink(w io.Writer) *TableSink {
	return &TableSink{w: w}
}

func (s *TableSink) Write(row Row) error {
	if !s.headerWritten {
		_, err := fmt.Fprintln(s.w,
			"xch ych xoo yoo xoi yoi ki ko "+
				"num_trans cycles num_trans_opt cycles_opt")
		if err != nil {
			return err
		}

		s.headerWritten = true
	}

	_, err := fmt.Fprintf(s.w, "%d %d %d %d %d %d %d %d %d %d %d %d\n",
		row.XCh, row.YCh, row.XOO, row.YOO, row.XOI, row.YOI, row.KI, row.KO,
		row.NumTrans, row.Cycles, row.NumTransOpt, row.CyclesOpt)

	return err
}

// A Recorder stores entries in named tables.
type Recorder interface {
	CreateTable(table string, sampleEntry any)
	InsertData(table string, entry any)
}

// RecorderSink stores rows in a table of a Recorder.
type RecorderSink struct {
	recorder Recorder
	table    string
}

// NewRecorderSink creates the table and returns a sink that fills it.
func NewRecorderSink(recorder Recorder, table string) *RecorderSink {
	recorder.CreateTable(table, Row{})

	return &RecorderSink{recorder: recorder, table: table}
}

func (s *RecorderSink) Write(row Row) error {
	s.recorder.InsertData(s.table, row)
	return nil
}
