package difx

import (
	"log/slog"
	"os"

	"github.com/pkg/errors"
)

const (
	procInstall   = "DriverPackageInstallW"
	procUninstall = "DriverPackageUninstallW"
)

// DIFx installs and uninstalls driver packages through an extracted copy of
// DIFxAPI. It owns the temporary library file and the loaded library until Close.
//
// A DIFx is not safe for concurrent use, callers must serialize calls. Distinct
// DIFx values are independent.
type DIFx struct {
	log *slog.Logger

	lib   Library
	path  string
	procs map[string]Proc
}

// New extracts the DIFxAPI variant for the running process and loads it.
func New(opts ...Option) (*DIFx, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	dll := TargetDLL()
	path, err := extract(o.resources, ResourceName(dll), o.tempDir)
	if err != nil {
		return nil, err
	}
	o.logger.Debug("extract DIFxAPI", slog.String("dll", dll), slog.String("path", path))

	lib, err := o.loader.Load(path)
	if err == nil && lib == nil {
		err = errors.New("loader returned no library")
	}
	if err != nil {
		if e := os.Remove(path); e != nil {
			o.logger.Warn("remove extracted DIFxAPI", slog.String("path", path), slog.String("error", e.Error()))
		}
		return nil, &ErrLoad{Path: path, Err: err}
	}
	o.logger.Debug("load DIFxAPI", slog.String("path", path))

	return &DIFx{
		log:   o.logger,
		lib:   lib,
		path:  path,
		procs: map[string]Proc{},
	}, nil
}

// Path returns the extracted library file, empty after Close.
func (d *DIFx) Path() string {
	if d == nil {
		return ""
	}
	return d.path
}

// Install installs the driver package described by infPath, a fully qualified INF path.
//
//	returns true if installation is complete, false if a reboot is required to complete it.
func (d *DIFx) Install(infPath string, flags Flags) (bool, error) {
	return d.call(procInstall, "DriverPackageInstall", infPath, flags)
}

// Uninstall uninstalls the driver package described by infPath.
//
//	returns true if uninstallation is complete, false if a reboot is required to complete it.
func (d *DIFx) Uninstall(infPath string, flags Flags) (bool, error) {
	return d.call(procUninstall, "DriverPackageUninstall", infPath, flags)
}

func (d *DIFx) call(name, op, infPath string, flags Flags) (bool, error) {
	if d == nil || d.lib == nil {
		return false, ErrClosed{}
	}

	proc, err := d.findProc(name)
	if err != nil {
		return false, err
	}

	d.log.Debug(op, slog.String("inf", infPath), slog.String("flags", flags.String()))
	r, err := proc(infPath, uint32(flags))
	if err != nil {
		return false, err
	}

	// a non-zero code wins over the reboot flag
	if r.Code != 0 {
		return false, &DriverPackageError{Op: op, Code: r.Code}
	}
	d.log.Debug(op, slog.String("inf", infPath), slog.Bool("reboot", r.RebootRequired))
	return !r.RebootRequired, nil
}

func (d *DIFx) findProc(name string) (Proc, error) {
	if p, ok := d.procs[name]; ok {
		return p, nil
	}

	p, err := d.lib.FindProc(name)
	if err != nil {
		return nil, &ErrSymbolNotFound{Name: name, Err: err}
	} else if p == nil {
		return nil, &ErrSymbolNotFound{Name: name}
	}
	d.procs[name] = p
	return p, nil
}

// Close unloads DIFxAPI and removes the extracted file. Cleanup failures are
// logged and dropped, Close always returns nil and may be called repeatedly.
func (d *DIFx) Close() error {
	if d == nil {
		return nil
	}

	if d.lib != nil {
		if err := d.lib.Release(); err != nil {
			d.log.Warn("release DIFxAPI", slog.String("path", d.path), slog.String("error", err.Error()))
		}
		d.lib = nil
		d.procs = nil
	}

	if d.path != "" {
		if err := os.Remove(d.path); err != nil {
			d.log.Warn("remove extracted DIFxAPI", slog.String("path", d.path), slog.String("error", err.Error()))
		}
		d.path = ""
	}
	return nil
}
