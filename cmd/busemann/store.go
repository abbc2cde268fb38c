package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/san-kum/busemann/internal/config"
	"github.com/san-kum/busemann/internal/export"
	"github.com/san-kum/busemann/internal/integrators"
	"github.com/san-kum/busemann/internal/storage"
	"github.com/san-kum/busemann/internal/viz"
)

var (
	exportFormat string
	exportOut    string
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list stored designs",
		Args:  cobra.NoArgs,
		RunE:  listDesigns,
	}
}

func listDesigns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	designs, err := st.List()
	if err != nil {
		return err
	}

	if len(designs) == 0 {
		fmt.Println("no designs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMETHOD\tTIME\tM1\tM3\tRECOVERY\tSTEPS\tINTEG")

	for _, d := range designs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.3f\t%.3f\t%.4f\t%d\t%s\n",
			d.ID,
			d.Method,
			d.Timestamp.Format("2006-01-02 15:04:05"),
			d.Performance.FreestreamMach,
			d.Performance.ExitMach,
			d.Performance.TotalPressureRecovery,
			d.Steps,
			d.Integrator,
		)
	}

	return w.Flush()
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [design_id]",
		Short: "show the performance of a stored design",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := storage.New(dataDir).LoadInlet(args[0])
			if err != nil {
				return err
			}
			fmt.Println(viz.Report(in, theme))
			return nil
		},
	}
}

func newPlotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plot [design_id]",
		Short: "plot the contour and Mach distribution of a stored design",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := storage.New(dataDir).LoadInlet(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("design: %s\n\n", args[0])
			return printPlots(in)
		},
	}
}

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [design_id]",
		Short: "export a stored design as csv, svg, png or json",
		Args:  cobra.ExactArgs(1),
		RunE:  exportDesign,
	}
	cmd.Flags().StringVar(&exportFormat, "format", "svg", "output format (csv, svg, png, json)")
	cmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file, - for stdout (default <id>.<format>)")
	return cmd
}

func exportDesign(cmd *cobra.Command, args []string) error {
	id := args[0]
	format, err := export.ParseFormat(exportFormat)
	if err != nil {
		return err
	}

	in, err := storage.New(dataDir).LoadInlet(id)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	path := exportOut
	if path == "" {
		path = id + format.Extension()
	}
	if path != "-" {
		if path, err = homedir.Expand(path); err != nil {
			return err
		}
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	if err := export.Write(w, format, in); err != nil {
		return err
	}
	if path != "-" {
		logger.Info("exported", "id", id, "format", format, "path", path)
	}
	return nil
}

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets [method]",
		Short: "list presets, integrators and themes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			methods := config.Methods()
			if len(args) == 1 {
				methods = args
			}
			for _, m := range methods {
				names := config.ListPresets(m)
				if len(names) == 0 {
					fmt.Printf("no presets for method: %s\n", m)
					continue
				}
				fmt.Printf("presets for %s:\n", m)
				for _, name := range names {
					p := config.GetPreset(m, name)
					if m == "recovery" {
						fmt.Printf("  %-12s M3 %.2f  recovery %.2f\n", name, p.ExitMach, p.Recovery)
					} else {
						fmt.Printf("  %-12s M1 %.2f  M3 %.2f\n", name, p.FreestreamMach, p.ExitMach)
					}
				}
			}
			fmt.Printf("integrators: %v\n", integrators.List())
			fmt.Printf("themes: %v\n", viz.ThemeNames())
			return nil
		},
	}
}
