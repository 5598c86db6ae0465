// Package monitoring turns a set of co-simulation drivers into an HTTP
// server that external tools can inspect and control.
package monitoring

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"

	// Enable profiling
	_ "net/http/pprof"

	"github.com/gorilla/mux"
	"github.com/shirou/gopsutil/process"
	"github.com/syifan/goseth"

	"github.com/flightworks/cosim/driver"
)

// Monitor can turn a set of drivers into a server and allows external
// monitoring and controlling of them.
type Monitor struct {
	portNumber int
	url        string
	drivers    []*driver.Comp
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
				"which is not allowed. Using a random port instead.\n", portNumber)
		portNumber = 0
	}

	m.portNumber = portNumber

	return m
}

// RegisterDriver registers a driver to be monitored.
func (m *Monitor) RegisterDriver(d *driver.Comp) {
	m.drivers = append(m.drivers, d)
}

// URL returns the address the monitor serves on, available after
// StartServer.
func (m *Monitor) URL() string {
	return m.url
}

// StartServer starts the monitor as a web server with a custom port if
// wanted.
func (m *Monitor) StartServer() {
	r := mux.NewRouter()

	r.HandleFunc("/api/list_drivers", m.listDrivers)
	r.HandleFunc("/api/driver/{name}", m.listDriverDetails)
	r.HandleFunc("/api/status/{name}", m.driverStatus)
	r.HandleFunc("/api/stop/{name}", m.stopDriver)
	r.HandleFunc("/api/resource", m.listResources)
	http.Handle("/", r)

	actualPort := ":0"
	if m.portNumber > 1000 {
		actualPort = ":" + strconv.Itoa(m.portNumber)
	}

	listener, err := net.Listen("tcp", actualPort)
	dieOnErr(err)

	m.url = fmt.Sprintf("http://localhost:%d",
		listener.Addr().(*net.TCPAddr).Port)
	fmt.Fprintf(os.Stderr, "Monitoring drivers with %s\n", m.url)

	go func() {
		err = http.Serve(listener, nil)
		dieOnErr(err)
	}()
}

func (m *Monitor) listDrivers(w http.ResponseWriter, _ *http.Request) {
	fmt.Fprint(w, "[")
	for i, d := range m.drivers {
		if i > 0 {
			fmt.Fprint(w, ",")
		}

		fmt.Fprintf(w, "%q", d.Name())
	}
	fmt.Fprint(w, "]")
}

func (m *Monitor) findDriverOr404(
	w http.ResponseWriter,
	name string,
) *driver.Comp {
	for _, d := range m.drivers {
		if d.Name() == name {
			return d
		}
	}

	w.WriteHeader(404)

	return nil
}

func (m *Monitor) listDriverDetails(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	d := m.findDriverOr404(w, name)
	if d == nil {
		return
	}

	serializer := goseth.NewSerializer()
	serializer.SetRoot(d)
	serializer.SetMaxDepth(1)
	err := serializer.Serialize(w)

	dieOnErr(err)
}

type statusRsp struct {
	Phase     string  `json:"phase"`
	StepState string  `json:"step_state"`
	Running   bool    `json:"running"`
	SimTime   float64 `json:"sim_time"`
}

func (m *Monitor) driverStatus(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	d := m.findDriverOr404(w, name)
	if d == nil {
		return
	}

	rsp := statusRsp{
		Phase:     d.Phase().String(),
		StepState: d.StepState().String(),
		Running:   d.Running(),
		SimTime:   d.SimTime(),
	}

	bytes, err := json.Marshal(rsp)
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

func (m *Monitor) stopDriver(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	d := m.findDriverOr404(w, name)
	if d == nil {
		return
	}

	d.Stop()
	w.WriteHeader(200)
}

type resourceRsp struct {
	CPUPercent float64 `json:"cpu_percent"`
	MemorySize uint64  `json:"memory_size"`
}

func (m *Monitor) listResources(w http.ResponseWriter, _ *http.Request) {
	pid := os.Getpid()
	proc, err := process.NewProcess(int32(pid))
	dieOnErr(err)

	cpuPercent, err := proc.CPUPercent()
	dieOnErr(err)

	memorySize, err := proc.MemoryInfo()
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

func dieOnErr(err error) {
	if err != nil {
		panic(err)
	}
}
