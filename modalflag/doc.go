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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Unlike flag.FlagSet, the arguments are given with NewArgs() and Parse() is
// called with no arguments:
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "MONITOR", "TEST")
//	_, _ = md.Parse()
//
// After a successful Parse() the selected mode is returned by Mode(). The
// first sub-mode in the list is the default if none is given on the command
// line. The flags for the selected mode are added after a call to NewMode()
// and Parse() is called again:
//
//	md.NewMode()
//	origin := md.AddString("origin", "0x0000", "load address")
//	_, _ = md.Parse()
//
// Non-flag arguments are retrieved with RemainingArgs() or GetArg().
//
// Help is handled automatically. When the -help flag is seen Parse() prints
// the flags and sub-modes for the current mode to the Output writer and
// returns ParseHelp.
package modalflag
