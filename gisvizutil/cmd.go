/*
Copyright © 2024 the GISViz authors.
This file is part of GISViz.

GISViz is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

GISViz is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with GISViz.  If not, see <http://www.gnu.org/licenses/>.
*/

package gisvizutil

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Version is the GISViz version number.
const Version = "0.1.0"

// Cfg holds configuration information.
var Cfg *viper.Viper

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	// Options are the configuration options available to GISViz.
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
			name: "loglevel",
			usage: `
              loglevel sets the logging verbosity (debug, info, warn, error).`,
			defaultVal: "info",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "format",
			usage: `
              format selects the output target: png, pdf, svg, or leaflet.`,
			shorthand:  "f",
			defaultVal: "png",
			flagsets:   []*pflag.FlagSet{renderCmd.Flags()},
		},
		{
			name: "width",
			usage: `
              width is the output viewport width in device units.`,
			defaultVal: 600.0,
			flagsets:   []*pflag.FlagSet{renderCmd.Flags()},
		},
		{
			name: "height",
			usage: `
              height is the output viewport height in device units.`,
			defaultVal: 450.0,
			flagsets:   []*pflag.FlagSet{renderCmd.Flags()},
		},
		{
			name: "out",
			usage: `
              out is the output file path; "-" writes to standard output.`,
			shorthand:  "o",
			defaultVal: "-",
			flagsets:   []*pflag.FlagSet{renderCmd.Flags(), inspectCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("GISVIZ")

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
			case float64:
				if option.shorthand == "" {
					set.Float64(option.name, option.defaultVal.(float64), option.usage)
				} else {
					set.Float64P(option.name, option.shorthand, option.defaultVal.(float64), option.usage)
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
	Root.AddCommand(renderCmd)
	Root.AddCommand(inspectCmd)
}

// setConfig finds and reads in the configuration file, if there is
// one, and applies the configured log level.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("gisviz: problem reading configuration file: %v", err)
		}
	}
	level, err := logrus.ParseLevel(Cfg.GetString("loglevel"))
	if err != nil {
		return fmt.Errorf("gisviz: %v", err)
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "gisviz",
	Short: "A WKT geometry visualization tool.",
	Long: `GISViz parses Well-Known-Text spatial literals and renders them to
raster images, PDF pages, SVG documents, or declarative map layers.

Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'GISVIZ_var' where 'var' is
the name of the variable to be set.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of GISViz.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("GISViz v%s\n", Version)
	},
	DisableAutoGenTag: true,
}

var renderCmd = &cobra.Command{
	Use:   "render [input file]",
	Short: "Render geometry to an output target",
	Long: `render reads geometry rows — WKT literals, one per line, optionally
preceded by a label and a tab, or an ESRI shapefile — scales them onto one
shared canvas, and writes the result in the selected format.`,
	Args:              cobra.ExactArgs(1),
	DisableAutoGenTag: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		rows, err := readInput(args[0])
		if err != nil {
			return err
		}
		out, closeOut, err := openOutput(Cfg.GetString("out"))
		if err != nil {
			return err
		}
		defer closeOut()
		width, err := cast.ToFloat64E(Cfg.Get("width"))
		if err != nil {
			return err
		}
		height, err := cast.ToFloat64E(Cfg.Get("height"))
		if err != nil {
			return err
		}
		return RenderBatch(rows, Cfg.GetString("format"), width, height, out)
	},
}

var inspectCmd = &cobra.Command{
	Use:   "inspect [input file]",
	Short: "Report analytical properties of geometry rows",
	Long: `inspect reads geometry rows like render does and reports ring areas,
winding direction, and an estimated interior point for each.`,
	Args:              cobra.ExactArgs(1),
	DisableAutoGenTag: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		rows, err := readInput(args[0])
		if err != nil {
			return err
		}
		out, closeOut, err := openOutput(Cfg.GetString("out"))
		if err != nil {
			return err
		}
		defer closeOut()
		return Inspect(rows, out)
	},
}

func readInput(path string) ([]Row, error) {
	if strings.HasSuffix(path, ".shp") {
		return ReadShapefile(path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadRows(f)
}

func openOutput(path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
