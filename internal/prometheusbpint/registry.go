// Package prometheusbpint holds the prometheus registry shared by the
// packages of this module.
package prometheusbpint

import (
	"net/http"
	"runtime/debug"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// GlobalRegistry is the registry package level metrics register with.
//
// Only the metrics of this module plus the process and go runtime
// collectors are on it, unlike prometheus.DefaultRegisterer.
var GlobalRegistry = prometheus.NewRegistry()

func init() {
	GlobalRegistry.MustRegister(
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler serves GlobalRegistry in the prometheus exposition format.
func Handler() http.Handler {
	return promhttp.HandlerFor(GlobalRegistry, promhttp.HandlerOpts{})
}

// One series per module linked into the binary, value always 1.
var goModules = promauto.With(GlobalRegistry).NewGaugeVec(prometheus.GaugeOpts{
	Name: "customprobe_go_modules",
	Help: "Go modules built into the binary, labeled by path, version, role (main or dependency) and whether they are replaced. Always 1",
}, []string{"go_module", "module_role", "replaced", "module_version"})

// RecordModuleVersions replaces the customprobe_go_modules series with the
// main module and dependencies listed in info.
//
// Binaries call it once at startup with the result of debug.ReadBuildInfo.
func RecordModuleVersions(info *debug.BuildInfo) {
	goModules.Reset()
	setModule(info.Main, "main")
	for _, dep := range info.Deps {
		setModule(*dep, "dependency")
	}
}

func setModule(mod debug.Module, role string) {
	goModules.With(prometheus.Labels{
		"go_module":      mod.Path,
		"module_role":    role,
		"replaced":       strconv.FormatBool(mod.Replace != nil),
		"module_version": mod.Version,
	}).Set(1)
}
