// This file is part of romdis.
//
// romdis is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// romdis is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with romdis.  If not, see <https://www.gnu.org/licenses/>.

// Package logger is the central log for romdis. Log entries are grouped by
// tag, which is normally the name of the package or the file type being
// processed, and a detail string.
//
// Adjacent entries with the same tag and detail are merged and a repeat count
// is kept instead. The number of entries kept is capped, the oldest entries
// being discarded first.
//
// Every call to Log() or Logf() takes a Permission. The Allow value can be
// used when a log entry should always be made.
//
// Entries can be echoed to an io.Writer as they are added with SetEcho().
package logger
