package main

import (
	"errors"
	"log/slog"
	"off"
	"off/debug"
	"off/windfarm"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

// newInitCmd 读取配置、初始化观测点链并输出
func newInitCmd(logger func() *slog.Logger) *cobra.Command {
	var (
		config string
		plot   string
		record string
	)
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Seed every turbine's observation point chain from its wind condition",
		RunE: func(cmd *cobra.Command, args []string) error {
			if config == "" {
				return errors.New("--config is required")
			}
			log := logger()
			wf, err := off.Load(config, windfarm.WithLogger(log))
			if err != nil {
				return err
			}
			if err := off.Export(cmd.OutOrStdout(), wf); err != nil {
				return err
			}
			if plot != "" {
				if err := writePlot(plot, wf); err != nil {
					return err
				}
				log.Info("chart written", "file", plot)
			}
			if record != "" {
				if err := writeRecord(record, wf); err != nil {
					return err
				}
				log.Info("record written", "file", record)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&config, "config", "c", "", "wind farm YAML file")
	cmd.Flags().StringVar(&plot, "plot", "", "write a chart of the chains (format from extension: png, svg, pdf)")
	cmd.Flags().StringVar(&record, "record", "", "write the chain world coordinates as JSON")
	return cmd
}

func writePlot(filename string, wf *windfarm.WindFarm) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	format := strings.TrimPrefix(filepath.Ext(filename), ".")
	if format == "" {
		format = "png"
	}
	c := &debug.Charts{Title: filepath.Base(filename)}
	return c.Render(file, wf, format)
}

func writeRecord(filename string, wf *windfarm.WindFarm) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	var rec debug.Record
	rec.Init(wf)
	rec.Update(wf)
	return rec.Render(file)
}
