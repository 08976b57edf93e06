/*
Copyright (C) 2026 the wkt authors.
This file is part of wkt.

wkt is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

wkt is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with wkt.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package wktutil holds the commands and configuration plumbing for
// the wkt command-line tool.
package wktutil

import (
	"fmt"

	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	wkt "github.com/georust/wkt-sub000"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	// Options are the configuration options available to the wkt
	// tool.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "LogLevel",
			usage: `
              LogLevel sets the amount of logging: debug, info, warning,
              or error.`,
			defaultVal: "info",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "input",
			usage: `
              input specifies the WKT geometry text to operate on.`,
			shorthand:  "i",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{typeCmd.Flags(), fmtCmd.Flags(), convertCmd.Flags()},
		},
		{
			name: "file",
			usage: `
              file specifies a file to read the WKT geometry from
              instead of passing it with --input.`,
			shorthand:  "f",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{typeCmd.Flags(), fmtCmd.Flags(), convertCmd.Flags()},
		},
		{
			name: "output",
			usage: `
              output specifies the file to write the conversion result
              to. If empty, the result is written to standard output;
              the shp format requires a file.`,
			shorthand:  "o",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{convertCmd.Flags()},
		},
		{
			name: "format",
			usage: `
              format specifies the conversion output format: wkt,
              geojson, or shp.`,
			defaultVal: "geojson",
			flagsets:   []*pflag.FlagSet{convertCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("WKT")

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case bool:
				if option.shorthand == "" {
					set.Bool(option.name, option.defaultVal.(bool), option.usage)
				} else {
					set.BoolP(option.name, option.shorthand, option.defaultVal.(bool), option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(typeCmd)
	Root.AddCommand(fmtCmd)
	Root.AddCommand(convertCmd)
	Root.AddCommand(batchCmd)
}

// setConfig finds and reads in the configuration file, if there is
// one, and applies the configured log level.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("wkt: problem reading configuration file: %v", err)
		}
	}
	level, err := logrus.ParseLevel(Cfg.GetString("LogLevel"))
	if err != nil {
		return fmt.Errorf("wkt: problem setting log level: %v", err)
	}
	logrus.SetLevel(level)
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "wkt",
	Short: "A Well-Known Text geometry tool.",
	Long: `wkt parses, formats, and converts geometries in the Well-Known Text
format. Use the subcommands specified below to access the functionality.

Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'WKT_var' where 'var' is the
name of the variable to be set.
Refer to https://github.com/spf13/viper for additional configuration information.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of wkt.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("wkt v%s\n", wkt.Version)
	},
	DisableAutoGenTag: true,
}

// typeCmd classifies a geometry from its prefix without parsing the
// whole input.
var typeCmd = &cobra.Command{
	Use:   "type",
	Short: "Report the geometry kind and dimension",
	Long: `type reads the start of a WKT geometry and reports its kind and,
for non-empty geometries, its dimension, without parsing the coordinates.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := geometryInput(Cfg)
		if err != nil {
			return err
		}
		typ, dim, err := wkt.InferType(input)
		if err != nil {
			return err
		}
		if dim == nil {
			cmd.Printf("%s EMPTY\n", typ)
			return nil
		}
		cmd.Printf("%s %s\n", typ, dim)
		return nil
	},
	DisableAutoGenTag: true,
}

// fmtCmd parses a geometry and prints it back in canonical form.
var fmtCmd = &cobra.Command{
	Use:   "fmt",
	Short: "Rewrite a geometry in canonical form",
	Long: `fmt parses a WKT geometry and prints it back as canonical
single-line WKT, normalizing case, whitespace, and number formatting.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := geometryInput(Cfg)
		if err != nil {
			return err
		}
		g, err := wkt.Parse[float64](input)
		if err != nil {
			return err
		}
		cmd.Println(g.String())
		return nil
	},
	DisableAutoGenTag: true,
}

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a geometry to another format",
	Long: `convert parses a WKT geometry and writes it out as GeoJSON, as a
shapefile, or as canonical WKT, depending on the --format option.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := geometryInput(Cfg)
		if err != nil {
			return err
		}
		return Convert(cmd.OutOrStdout(), input, Cfg.GetString("format"), Cfg.GetString("output"))
	},
	DisableAutoGenTag: true,
}

var batchCmd = &cobra.Command{
	Use:   "batch [job file]",
	Short: "Run a list of conversion jobs from a TOML file",
	Long: `batch reads a TOML job list and runs each conversion job in order.
Each [[job]] entry takes the same input, file, format, and output settings
as the convert command.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("wkt: batch requires a single job file argument")
		}
		return RunBatch(cmd.OutOrStdout(), args[0])
	},
	DisableAutoGenTag: true,
}
