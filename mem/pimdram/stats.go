package pimdram

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// Stats counts what the model has done.
type Stats struct {
	NumCycle          uint64
	NumRead           uint64 // retired reads
	NumWrite          uint64 // retired writes
	NumActivate       uint64
	NumRowHit         uint64
	NumRowMiss        uint64
	NumRegisterAccess uint64
	NumPIMOp          uint64
}

// Report writes the statistics as "name.key = value" lines.
func (s Stats) Report(w io.Writer, name string) error {
	entries := []struct {
		key   string
		value uint64
	}{
		{"num_cycles", s.NumCycle},
		{"num_reads_done", s.NumRead},
		{"num_writes_done", s.NumWrite},
		{"num_act_cmds", s.NumActivate},
		{"num_row_hits", s.NumRowHit},
		{"num_row_misses", s.NumRowMiss},
		{"num_register_accesses", s.NumRegisterAccess},
		{"num_pim_ops", s.NumPIMOp},
	}

	for _, e := range entries {
		_, err := fmt.Fprintf(w, "%s.%s = %d\n", name, e.key, e.value)
		if err != nil {
			return err
		}
	}

	return nil
}

// PrintStats writes the statistics into <outputDir>/<name>.stats.txt, or to
// the standard output if the model has no output directory.
func (m *Model) PrintStats() {
	if m.outputDir == "" {
		m.writeStats(os.Stdout)
		return
	}

	path := filepath.Join(m.outputDir, m.name+".stats.txt")

	f, err := os.Create(path)
	if err != nil {
		log.Printf("pimdram: cannot create %s: %v", path, err)
		return
	}
	defer f.Close()

	m.writeStats(f)
}

func (m *Model) writeStats(w io.Writer) {
	if err := m.stats.Report(w, m.name); err != nil {
		log.Printf("pimdram: cannot write stats: %v", err)
	}
}
