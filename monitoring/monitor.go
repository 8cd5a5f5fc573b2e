// Package monitoring serves the progress of a sweep over HTTP.
package monitoring

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"

	// Enable profiling
	_ "net/http/pprof"
	"os"
	"runtime/pprof"
	"strconv"
	"sync"
	"time"

	"github.com/google/pprof/profile"
	"github.com/gorilla/mux"
	"github.com/pkg/browser"
	"github.com/rs/xid"
	"github.com/shirou/gopsutil/process"
	"github.com/syifan/goseth"

	"github.com/LeeHayun/PIM-Code-Test/monitoring/web"
	"github.com/LeeHayun/PIM-Code-Test/sweep"
	"github.com/LeeHayun/PIM-Code-Test/txgen"
)

var _ sweep.Observer = (*Monitor)(nil)

// Monitor turns a sweep into a server that reports its progress.
type Monitor struct {
	portNumber      int
	openBrowser     bool
	profileDuration time.Duration
	url             string

	runLock sync.RWMutex
	run     *txgen.GemvGenerator

	progressBarsLock sync.Mutex
	progressBars     []*ProgressBar
	sweepBar         *ProgressBar
}

// NewMonitor creates a new Monitor
func NewMonitor() *Monitor {
	return &Monitor{
		profileDuration: time.Second,
	}
}

// WithPortNumber sets the port number of the monitor.
func (m *Monitor) WithPortNumber(portNumber int) *Monitor {
	if portNumber < 1000 {
		fmt.Fprintf(os.Stderr,
			"Port number %d is assigned to the monitoring server, "+
				"which is not allowed. Using a random port instead.\n", portNumber)
		portNumber = 0
	}

	m.portNumber = portNumber

	return m
}

// WithBrowser makes StartServer open the monitoring page in a browser.
func (m *Monitor) WithBrowser(open bool) *Monitor {
	m.openBrowser = open
	return m
}

// SweepStarted creates the progress bar of the sweep.
func (m *Monitor) SweepStarted(numRun int) {
	m.sweepBar = m.CreateProgressBar("GEMV Sweep", uint64(numRun))
}

// RunStarted makes the generator the active run.
func (m *Monitor) RunStarted(g *txgen.GemvGenerator) {
	m.runLock.Lock()
	m.run = g
	m.runLock.Unlock()

	if m.sweepBar != nil {
		m.sweepBar.IncrementInProgress(1)
	}
}

// RunFinished counts the run as finished.
func (m *Monitor) RunFinished(_ *txgen.GemvGenerator) {
	if m.sweepBar == nil {
		return
	}

	m.sweepBar.MoveInProgressToFinished(1)

	if m.sweepBar.IsDone() {
		m.CompleteProgressBar(m.sweepBar)
		m.sweepBar = nil
	}
}

func (m *Monitor) activeRun() *txgen.GemvGenerator {
	m.runLock.RLock()
	defer m.runLock.RUnlock()

	return m.run
}

// CreateProgressBar creates a new progress bar.
func (m *Monitor) CreateProgressBar(name string, total uint64) *ProgressBar {
	bar := &ProgressBar{
		ID:        xid.New().String(),
		Name:      name,
		StartTime: time.Now(),
		Total:     total,
	}

	m.progressBarsLock.Lock()
	defer m.progressBarsLock.Unlock()

	m.progressBars = append(m.progressBars, bar)

	return bar
}

// CompleteProgressBar removes a bar to be shown on the webpage.
func (m *Monitor) CompleteProgressBar(pb *ProgressBar) {
	m.progressBarsLock.Lock()
	defer m.progressBarsLock.Unlock()

	newBars := make([]*ProgressBar, 0, len(m.progressBars))
	for _, b := range m.progressBars {
		if b != pb {
			newBars = append(newBars, b)
		}
	}

	m.progressBars = newBars
}

// URL returns the address of the server after StartServer.
func (m *Monitor) URL() string {
	return m.url
}

// StartServer starts the monitor as a web server with a custom port if wanted.
func (m *Monitor) StartServer() {
	actualPort := ":0"
	if m.portNumber > 1000 {
		actualPort = ":" + strconv.Itoa(m.portNumber)
	}

	listener, err := net.Listen("tcp", actualPort)
	dieOnErr(err)

	m.url = fmt.Sprintf("http://localhost:%d",
		listener.Addr().(*net.TCPAddr).Port)

	fmt.Fprintf(os.Stderr, "Monitoring simulation with %s\n", m.url)

	go func() {
		err := http.Serve(listener, m.router())
		dieOnErr(err)
	}()

	if m.openBrowser {
		if err := browser.OpenURL(m.url); err != nil {
			fmt.Fprintf(os.Stderr, "Cannot open browser: %v\n", err)
		}
	}
}

func (m *Monitor) router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/api/now", m.now)
	r.HandleFunc("/api/run", m.runDetails)
	r.HandleFunc("/api/progress", m.listProgressBars)
	r.HandleFunc("/api/resource", m.listResources)
	r.HandleFunc("/api/profile", m.collectProfile)
	r.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)
	r.PathPrefix("/").Handler(http.FileServer(web.GetAssets()))

	return r
}

type nowRsp struct {
	Now      uint64 `json:"now"`
	NumTrans uint64 `json:"num_trans"`
}

func (m *Monitor) now(w http.ResponseWriter, _ *http.Request) {
	rsp := nowRsp{}

	if g := m.activeRun(); g != nil {
		rsp.Now = g.GetCycleCount()
		rsp.NumTrans = g.GetTransactionCount()
	}

	bytes, err := json.Marshal(rsp)
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

func (m *Monitor) runDetails(w http.ResponseWriter, _ *http.Request) {
	g := m.activeRun()
	if g == nil {
		w.WriteHeader(http.StatusNotFound)
		_, err := w.Write([]byte("No active run"))
		dieOnErr(err)

		return
	}

	tiling := g.Tiling()

	serializer := goseth.NewSerializer()
	serializer.SetRoot(&tiling)
	serializer.SetMaxDepth(1)
	err := serializer.Serialize(w)

	dieOnErr(err)
}

func (m *Monitor) listProgressBars(w http.ResponseWriter, _ *http.Request) {
	m.progressBarsLock.Lock()
	snapshots := make([]progressBarSnapshot, 0, len(m.progressBars))
	for _, b := range m.progressBars {
		snapshots = append(snapshots, b.snapshot())
	}
	m.progressBarsLock.Unlock()

	bytes, err := json.Marshal(snapshots)
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

type resourceRsp struct {
	CPUPercent float64 `json:"cpu_percent"`
	MemorySize uint64  `json:"memory_size"`
}

func (m *Monitor) listResources(w http.ResponseWriter, _ *http.Request) {
	pid := os.Getpid()
	process, err := process.NewProcess(int32(pid))
	dieOnErr(err)

	cpuPercent, err := process.CPUPercent()
	dieOnErr(err)

	memorySize, err := process.MemoryInfo()
	dieOnErr(err)

	rsp := resourceRsp{
		CPUPercent: cpuPercent,
		MemorySize: memorySize.RSS,
	}

	bytes, err := json.Marshal(rsp)
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

func (m *Monitor) collectProfile(w http.ResponseWriter, _ *http.Request) {
	buf := bytes.NewBuffer(nil)

	err := pprof.StartCPUProfile(buf)
	if err != nil {
		w.WriteHeader(http.StatusConflict)
		fmt.Fprintf(w, "Error: %s", err)

		return
	}

	time.Sleep(m.profileDuration)

	pprof.StopCPUProfile()

	prof, err := profile.ParseData(buf.Bytes())
	dieOnErr(err)

	bytes, err := json.Marshal(prof)
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

func dieOnErr(err error) {
	if err != nil {
		log.Panic(err)
	}
}
