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

// Package paths contains functions to prepare paths to romdis resources.
//
// The ProjectFile() function returns the path of the default project file.
// If a file named "romdis.yaml" is present in the program's current directory
// then that is the project file that will be used. If it is not present then
// the project file in the user's config directory is used. The package uses
// os.UserConfigDir() from go standard library for this.
//
// On a modern Linux system, the path returned for the user's config directory
// will be:
//
//	/home/user/.config/romdis/romdis.yaml
//
// The ResourcePath() function follows the same policy for other resources,
// using ".romdis" in the current directory as the base path.
package paths
