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

// Command wkt is a command-line interface for working with geometries
// in the Well-Known Text format.
package main

import (
	"fmt"
	"os"

	"github.com/georust/wkt-sub000/wktutil"
)

func main() {
	if err := wktutil.Root.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
