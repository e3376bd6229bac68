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

package meshrefine

import "fmt"

// A ValidationError reports invalid input to grid construction or
// refinement: mismatched coordinate slice lengths, a non-positive
// cell size, or a negative buffer or iteration count.
type ValidationError struct {
	msg string
}

func validationErrorf(format string, args ...interface{}) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string {
	return "meshrefine: " + e.msg
}

// An InvalidPolicyError reports an unrecognized refinement policy
// name.
type InvalidPolicyError struct {
	Policy Policy
}

func (e *InvalidPolicyError) Error() string {
	return fmt.Sprintf("meshrefine: invalid refinement policy %q; valid policies are %q and %q",
		string(e.Policy), string(PolicyNearestCell), string(PolicyNeighborhoodBox))
}

// A NotFoundError reports a subdivision request for a cell ID that
// does not exist in the grid being subdivided. It signals a
// consistency bug (selection and subdivision operating on different
// grid snapshots) rather than a user input problem.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("meshrefine: cell ID %d does not exist in the grid", e.ID)
}
