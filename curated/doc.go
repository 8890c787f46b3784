// This file is part of Famicore.
//
// Famicore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Famicore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Famicore.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with Errorf() in the same way as fmt.Errorf()
// except that the first argument is a pattern rather than a format string.
// The pattern is kept and can later be tested with the Is() and Has()
// functions.
//
// Patterns are usually declared as exported string constants by the package
// that generates the error. For example, the instructions package declares:
//
//	const InvalidDefinition = "instructions: invalid definition: %v"
//
// and a caller of instructions.GetDefinitions() can test for it with:
//
//	if curated.Has(err, instructions.InvalidDefinition) {
//		...
//	}
//
// The Error() function normalises the message by removing duplicate adjacent
// parts of the error chain, which happens naturally when several packages
// wrap an error with the same prefix.
package curated
