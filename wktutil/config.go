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
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/lnashier/viper"
)

// geometryInput returns the WKT text to operate on. The file option
// wins over the inline input option; environment variables in the
// file path are expanded.
func geometryInput(cfg *viper.Viper) (string, error) {
	if path := os.ExpandEnv(cfg.GetString("file")); path != "" {
		b, err := ioutil.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("wkt: problem reading input file: %v", err)
		}
		return strings.TrimSpace(string(b)), nil
	}
	if s := cfg.GetString("input"); s != "" {
		return s, nil
	}
	return "", fmt.Errorf("wkt: no input geometry; set the input or file option")
}

// checkOutputPath makes sure the output file's directory exists and
// expands any environment variables.
func checkOutputPath(f string) (string, error) {
	f = os.ExpandEnv(f)
	outdir := filepath.Dir(f)
	if _, err := os.Stat(outdir); err != nil {
		return f, fmt.Errorf("wkt: the output directory doesn't exist: %v", err)
	}
	return f, nil
}
