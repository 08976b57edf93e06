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

package wktutil

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
)

// batchFile is the on-disk description of a batch run: a list of
// conversion jobs, optionally preceded by a table of variables that
// are substituted into the job fields with ${name} syntax. Variables
// not present in the table fall back to the process environment.
type batchFile struct {
	Vars map[string]interface{} `toml:"vars"`
	Job  []batchJob             `toml:"job"`
}

// batchJob mirrors the flags of the convert command. Exactly one of
// Input and File must be set; an empty Format means geojson.
type batchJob struct {
	Input  string `toml:"input"`
	File   string `toml:"file"`
	Output string `toml:"output"`
	Format string `toml:"format"`
}

// RunBatch reads a TOML batch description from path and runs each of
// its conversion jobs in order, stopping at the first failure. Jobs
// without an output path write to w.
func RunBatch(w io.Writer, path string) error {
	var bf batchFile
	if _, err := toml.DecodeFile(os.ExpandEnv(path), &bf); err != nil {
		return fmt.Errorf("wkt: problem reading batch file: %v", err)
	}
	if len(bf.Job) == 0 {
		return fmt.Errorf("wkt: batch file %s contains no jobs", path)
	}
	vars := cast.ToStringMapString(bf.Vars)
	expand := func(s string) string {
		return os.Expand(s, func(name string) string {
			if v, ok := vars[name]; ok {
				return v
			}
			return os.Getenv(name)
		})
	}
	for i, job := range bf.Job {
		format := expand(job.Format)
		if format == "" {
			format = "geojson"
		}
		output := expand(job.Output)
		logrus.WithFields(logrus.Fields{
			"job":    i + 1,
			"format": format,
			"output": output,
		}).Info("running batch job")
		input, err := batchInput(job, expand)
		if err != nil {
			return fmt.Errorf("wkt: batch job %d: %v", i+1, err)
		}
		if err := Convert(w, input, format, output); err != nil {
			return fmt.Errorf("wkt: batch job %d: %v", i+1, err)
		}
	}
	return nil
}

// batchInput resolves a job's geometry text the same way the
// command-line flags do: the file field wins over inline input.
func batchInput(job batchJob, expand func(string) string) (string, error) {
	if path := expand(job.File); path != "" {
		b, err := ioutil.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("problem reading input file: %v", err)
		}
		return strings.TrimSpace(string(b)), nil
	}
	if s := expand(job.Input); s != "" {
		return s, nil
	}
	return "", fmt.Errorf("no input geometry; set the input or file field")
}
