// Package monitoring turns a running engine into a web server, allowing
// external inspection and control of the tick loop.
package monitoring

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"runtime/pprof"
	"strconv"
	"strings"
	"time"

	// Enable profiling
	_ "net/http/pprof"

	"github.com/google/pprof/profile"
	"github.com/gorilla/mux"
	"github.com/pkg/browser"
	"github.com/shirou/gopsutil/process"
	"github.com/syifan/goseth"

	"github.com/robotick-labs/robotick/monitoring/web"
	"github.com/robotick-labs/robotick/tick"
)

// Monitor can turn a running engine into a server and allows external
// monitoring and controlling of the tick loop.
type Monitor struct {
	engine    tick.Engine
	workloads []tick.Workload

	portNumber  int
	openBrowser bool
}

// NewMonitor creates a new Monitor.
func NewMonitor() *Monitor {
	return &Monitor{}
}

// WithPortNumber sets the port number of the monitor.
func (m *Monitor) WithPortNumber(portNumber int) *Monitor {
	if portNumber < 1000 {
		fmt.Fprintf(os.Stderr,
			"Port number %d is assigned to the monitoring server, "+
				"which is not allowed. Using a random port instead.\n",
			portNumber)
		portNumber = 0
	}

	m.portNumber = portNumber

	return m
}

// WithBrowser makes the monitor open the dashboard in the default browser
// when the server starts.
func (m *Monitor) WithBrowser() *Monitor {
	m.openBrowser = true

	return m
}

// RegisterEngine registers the engine that drives the workloads.
func (m *Monitor) RegisterEngine(e tick.Engine) {
	m.engine = e
}

// RegisterWorkload registers a workload to be monitored.
func (m *Monitor) RegisterWorkload(w tick.Workload) {
	m.workloads = append(m.workloads, w)
}

// StartServer starts the monitor as a web server, on the configured port if
// one was set.
func (m *Monitor) StartServer() {
	r := mux.NewRouter()

	fs := web.GetAssets()
	fServer := http.FileServer(fs)
	r.HandleFunc("/api/pause", m.pauseEngine)
	r.HandleFunc("/api/continue", m.continueEngine)
	r.HandleFunc("/api/now", m.now)
	r.HandleFunc("/api/run", m.run)
	r.HandleFunc("/api/list_workloads", m.listWorkloads)
	r.HandleFunc("/api/workload/{name}", m.listWorkloadDetails)
	r.HandleFunc("/api/field/{json}", m.listFieldValue)
	r.HandleFunc("/api/resource", m.listResources)
	r.HandleFunc("/api/profile", m.collectProfile)
	r.PathPrefix("/").Handler(fServer)
	http.Handle("/", r)

	actualPort := ":0"
	if m.portNumber > 1000 {
		actualPort = ":" + strconv.Itoa(m.portNumber)
	}

	listener, err := net.Listen("tcp", actualPort)
	dieOnErr(err)

	url := fmt.Sprintf("http://localhost:%d",
		listener.Addr().(*net.TCPAddr).Port)
	fmt.Fprintf(os.Stderr, "Monitoring the run with %s\n", url)

	go func() {
		err = http.Serve(listener, nil)
		dieOnErr(err)
	}()

	if m.openBrowser {
		err = browser.OpenURL(url)
		dieOnErr(err)
	}
}

func (m *Monitor) pauseEngine(w http.ResponseWriter, _ *http.Request) {
	m.engine.Pause()
	_, err := w.Write(nil)
	dieOnErr(err)
}

func (m *Monitor) continueEngine(w http.ResponseWriter, _ *http.Request) {
	m.engine.Continue()
	_, err := w.Write(nil)
	dieOnErr(err)
}

func (m *Monitor) now(w http.ResponseWriter, _ *http.Request) {
	now := m.engine.CurrentTime()
	tickCount := m.engine.TickCount()
	fmt.Fprintf(w, "{\"now\":%.10f,\"tick_count\":%d}", now, tickCount)
}

func (m *Monitor) run(w http.ResponseWriter, r *http.Request) {
	ticksStr := r.URL.Query().Get("ticks")
	if ticksStr == "" {
		ticksStr = "1"
	}

	ticks, err := strconv.ParseUint(ticksStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprintf(w, "Error: %s", err)
		return
	}

	go func() {
		err := m.engine.RunTicks(ticks)
		if err != nil {
			panic(err)
		}
	}()
}

func (m *Monitor) listWorkloads(w http.ResponseWriter, _ *http.Request) {
	fmt.Fprint(w, "[")
	for i, wl := range m.workloads {
		if i > 0 {
			fmt.Fprint(w, ",")
		}

		fmt.Fprintf(w, "\"%s\"", wl.Name())
	}
	fmt.Fprint(w, "]")
}

func (m *Monitor) listWorkloadDetails(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	workload := m.findWorkloadOr404(w, name)
	if workload == nil {
		return
	}

	serializer := goseth.NewSerializer()
	serializer.SetRoot(workload)
	serializer.SetMaxDepth(2)
	err := serializer.Serialize(w)

	dieOnErr(err)
}

type fieldReq struct {
	WorkloadName string `json:"workload_name,omitempty"`
	FieldName    string `json:"field_name,omitempty"`
}

func (m *Monitor) listFieldValue(w http.ResponseWriter, r *http.Request) {
	jsonString := mux.Vars(r)["json"]
	req := fieldReq{}

	err := json.Unmarshal([]byte(jsonString), &req)
	if err != nil {
		dieOnErr(err)
	}

	fields := strings.Split(req.FieldName, ".")

	workload := m.findWorkloadOr404(w, req.WorkloadName)
	if workload == nil {
		return
	}

	serializer := goseth.NewSerializer()
	serializer.SetRoot(workload)
	serializer.SetMaxDepth(1)

	err = serializer.SetEntryPoint(fields)
	dieOnErr(err)

	err = serializer.Serialize(w)
	dieOnErr(err)
}

func (m *Monitor) findWorkloadOr404(
	w http.ResponseWriter,
	name string,
) tick.Workload {
	var workload tick.Workload
	for _, wl := range m.workloads {
		if wl.Name() == name {
			workload = wl
		}
	}

	if workload == nil {
		w.WriteHeader(http.StatusNotFound)
		_, err := w.Write([]byte("Workload not found"))
		dieOnErr(err)
	}

	return workload
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
	dieOnErr(err)

	time.Sleep(time.Second)

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
