/*
Copyright © 2026 the MeshRefine authors.
This file is part of MeshRefine.

MeshRefine is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

MeshRefine is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with MeshRefine.  If not, see <http://www.gnu.org/licenses/>.
*/

// Command meshrefine is a command-line interface for the MeshRefine
// adaptive grid refinement tool.
package main

import (
	"fmt"
	"os"

	"github.com/spatialmodel/meshrefine/meshrefineutil"
)

func main() {
	if err := meshrefineutil.Root.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
