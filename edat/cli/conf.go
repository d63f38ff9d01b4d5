package cli

import (
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/npillmayer/edat"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/spf13/cobra"
)

// tracerKeys are the tracers of all edat packages.
var tracerKeys = []string{"edat.table", "edat.convert", "edat.grammar", "edat.cli"}

// loadConfig is a callback function used by cobra's initialization mechanism.
// Unfortunately we're not allowed a return value.
func loadConfig() {
	k := koanf.New(".") // '.' is hierarchy delimiter
	// We locate edat configuration with an application-key of 'EDAT' and
	// use NestedText-format (nt) for config-files
	konf := koanfadapter.New(k, "EDAT", []string{"nt"})
	konf.InitDefaults()
	if err := mergeFlags(konf, rootCmd); err != nil {
		tracing.Errorf(err.Error())
		edat.Exit(1)
	}
	if err := configureTracing(konf); err != nil {
		tracing.Errorf(err.Error())
		edat.Exit(1)
	}
	edat.Configuration = k // push the configuration to app-global scope
}

// mergeFlags merges the global command line flags of cmd into the
// configuration. Flags take precedence over configuration files.
// A trace level given on the command line applies to every edat tracer.
func mergeFlags(konf *koanfadapter.KConf, cmd *cobra.Command) error {
	flags := cmd.PersistentFlags()
	err := konf.Koanf().Load(posflag.Provider(flags, ".", konf.Koanf()), nil)
	if err != nil {
		return err
	}
	if logname := konf.GetString("logfile"); logname != "" && logname != "stderr" {
		if strings.Contains(logname, ":/") {
			konf.Set("tracing.destination", logname)
		} else {
			konf.Set("tracing.destination", "file://"+logname)
		}
	}
	if level := konf.GetString("tracelevel"); level != "" {
		konf.Set("trace.root", level)
		for _, key := range tracerKeys {
			konf.Set("trace."+key, level)
		}
	}
	return nil
}

func configureTracing(konf *koanfadapter.KConf) error {
	if a := konf.GetString("tracing.adapter"); a != "" && a != "go" {
		tracing.Errorf("tracing adapter type '%s' currently not supported", a)
	}
	konf.Set("tracing.adapter", "go") // use Go builtin logging facilities
	paths := locateLogFile()
	if dest := konf.GetString("tracing.destination"); dest != "" {
		if !strings.Contains(dest, ":") && paths.LogDir() != "" {
			konf.Set("tracing.destination", "file://"+paths.LogDir()+"/"+dest)
		}
	}
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(konf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	tracer().Debugf("tracing configured, destination = %q", konf.GetString("tracing.destination"))
	return nil
}

func locateLogFile() AppPaths {
	paths, err := DefaultAppPaths("EDAT")
	if err != nil {
		tracing.Errorf("cannot configure paths: %v", err)
	}
	return paths
}
