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

package paths

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// ProjectFilename is the name of the project file looked for by ProjectFile().
const ProjectFilename = "romdis.yaml"

// the base path for all resources. note that we don't use this value directly
// except in the getBasePath() function. that function should be used instead.
const baseResourcePath = ".romdis"

// ProjectFile returns the path of the default project file. The project file
// in the current directory is preferred to the one in the user's config
// directory. If neither exists the path in the current directory is returned.
func ProjectFile(fs afero.Fs) string {
	if ok, _ := afero.Exists(fs, ProjectFilename); ok {
		return ProjectFilename
	}

	cnf, err := os.UserConfigDir()
	if err != nil {
		return ProjectFilename
	}

	pth := filepath.Join(cnf, baseResourcePath[1:], ProjectFilename)
	if ok, _ := afero.Exists(fs, pth); ok {
		return pth
	}

	return ProjectFilename
}

// ResourcePath returns the resource string (representing the resource to be
// loaded) prepended with operating system specific details.
func ResourcePath(fs afero.Fs, resource ...string) string {
	p := make([]string, 0, len(resource)+1)
	p = append(p, getBasePath(fs))
	p = append(p, resource...)

	return filepath.Join(p...)
}

// getBasePath() returns baseResourcePath with the user's config directory
// prepended if it the unadorned baseResourcePath cannot be found in the
// current directory.
//
// note that we're not checking for the existance of the resource requested by
// the caller, or even the existance of 'baseResourcePath' in the config
// directory.
func getBasePath(fs afero.Fs) string {
	if ok, _ := afero.DirExists(fs, baseResourcePath); ok {
		return baseResourcePath
	}

	cnf, err := os.UserConfigDir()
	if err != nil {
		return baseResourcePath
	}
	return filepath.Join(cnf, baseResourcePath[1:])
}
