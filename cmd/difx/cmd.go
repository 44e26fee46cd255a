package main

import (
	"fmt"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/lysShub/difx-go"
)

var errRebootRequired = errors.New("reboot required")

// NewDIFxCommand returns the root command, opts are applied to every difx.New.
func NewDIFxCommand(opts ...difx.Option) *cobra.Command {
	var cmd = &cobra.Command{
		Use:           "difx",
		Short:         "Install or uninstall driver packages with an embedded DIFxAPI",
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}
	cmd.AddCommand(
		CmdInstall(opts...),
		CmdUninstall(opts...),
		CmdTarget(),
	)
	return cmd
}

func CmdInstall(opts ...difx.Option) *cobra.Command {
	return packageCommand(
		"install", "Install the driver package described by an INF file",
		(*difx.DIFx).Install, opts...,
	)
}

func CmdUninstall(opts ...difx.Option) *cobra.Command {
	return packageCommand(
		"uninstall", "Uninstall the driver package described by an INF file",
		(*difx.DIFx).Uninstall, opts...,
	)
}

func CmdTarget() *cobra.Command {
	return &cobra.Command{
		Use:   "target",
		Short: "Print the DIFxAPI variant used by this process",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			dll := difx.TargetDLL()
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", dll, difx.ResourceName(dll))
		},
	}
}

type options struct {
	flags   string
	memory  bool
	verbose bool
}

func (o *options) addFlags(flags *pflag.FlagSet) {
	flags.StringVar(&o.flags, "flags", "", "driver package flags, e.g. FORCE|SILENT (REPAIR, SILENT, FORCE, ONLY_IF_DEVICE_PRESENT, LEGACY_MODE, DELETE_FILES)")
	flags.BoolVar(&o.memory, "memory", false, "map DIFxAPI from memory instead of LoadLibrary")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "print debug logs")
}

type packageFunc func(d *difx.DIFx, infPath string, flags difx.Flags) (bool, error)

func packageCommand(use, short string, fn packageFunc, extra ...difx.Option) *cobra.Command {
	o := &options{}
	cmd := &cobra.Command{
		Use:   use + " <inf>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags, err := difx.ParseFlags(o.flags)
			if err != nil {
				return err
			}
			// DIFxAPI requires a fully qualified path
			inf, err := filepath.Abs(args[0])
			if err != nil {
				return errors.WithStack(err)
			}

			opts := []difx.Option{difx.WithLogger(difx.NewLogger(cmd.ErrOrStderr(), o.verbose))}
			if o.memory {
				opts = append(opts, difx.WithMemoryModule())
			}
			opts = append(opts, extra...)
			d, err := difx.New(opts...)
			if err != nil {
				return err
			}
			defer d.Close()

			complete, err := fn(d, inf, flags)
			if err != nil {
				return err
			}
			if !complete {
				fmt.Fprintln(cmd.OutOrStdout(), "reboot required")
				return errRebootRequired
			}
			fmt.Fprintln(cmd.OutOrStdout(), "complete")
			return nil
		},
	}
	o.addFlags(cmd.Flags())
	return cmd
}
