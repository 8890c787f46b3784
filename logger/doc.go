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

// Package logger is the central log for the application. There is only one
// log and it is accessed through the package level functions.
//
// Entries are made with a tag and a detail string. The tag is usually the
// name of the component making the entry, for example "cpu". Identical
// consecutive entries are collapsed into one entry with a repeat count.
//
// Every log request must be accompanied by a Permission. The Allow value can
// be used when the entry should always be made.
package logger
