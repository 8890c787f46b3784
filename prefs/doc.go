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

// Package prefs facilitates the storage of preferential values in the
// application. Values are typed (Bool, String, Int) and safe to read from any
// goroutine.
//
// Values can be associated with a Disk instance, which saves and loads them
// to and from a simple text file. Each line of the file is of the form:
//
//	key :: value
//
// Values can also be overridden from the command line with a prefs string.
// The string is pushed with PushCommandLineStack() and is consulted whenever
// a Disk is loaded. For example:
//
//	prefs.PushCommandLineStack("cpu.illegalOpcodes::LOG; cpu.decimalMode::true")
package prefs
