package datarecording

import (
	"os"
	"strings"
	"time"
)

type execInfo struct {
	Property string
	Value    string
}

// ExecRecorder records when and how the program ran.
type ExecRecorder struct {
	tableName string
	recorder  DataRecorder
	entries   []execInfo
}

// NewExecRecorder creates the exec_info table in the recorder.
func NewExecRecorder(recorder DataRecorder) *ExecRecorder {
	e := &ExecRecorder{
		tableName: "exec_info",
		recorder:  recorder,
	}

	recorder.CreateTable(e.tableName, execInfo{})

	return e
}

// Start remembers the start time, the command line and the working
// directory.
func (e *ExecRecorder) Start() {
	e.add("Start Time", timestamp())
	e.add("Command", strings.Join(os.Args, " "))

	if wd, err := os.Getwd(); err == nil {
		e.add("Working Directory", wd)
	}
}

// AddProperty records an extra property of the execution.
func (e *ExecRecorder) AddProperty(property, value string) {
	e.add(property, value)
}

// End writes the collected entries along with the end time.
func (e *ExecRecorder) End() {
	e.add("End Time", timestamp())

	for _, entry := range e.entries {
		e.recorder.InsertData(e.tableName, entry)
	}

	e.entries = nil

	e.recorder.Flush()
}

func (e *ExecRecorder) add(property, value string) {
	e.entries = append(e.entries, execInfo{property, value})
}

func timestamp() string {
	return time.Now().Format("2006-01-02 15:04:05.000000000")
}
