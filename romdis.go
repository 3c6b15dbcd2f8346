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

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/jetsetilly/romdis/config"
	"github.com/jetsetilly/romdis/curated"
	"github.com/jetsetilly/romdis/logger"
	"github.com/jetsetilly/romdis/modalflag"
	"github.com/jetsetilly/romdis/paths"
	"github.com/jetsetilly/romdis/statsview"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"
)

type stateRequest struct {
	req  stateReq
	args any
}

func main() {
	state := make(chan stateRequest)

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(state, os.Args[1:], os.Stdout)

	done := false
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case s := <-state:
			switch s.req {
			case reqQuit:
				done = true
				if s.args != nil {
					if v, ok := s.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}
			}
		}
	}

	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses the state channel to quit.
func launch(state chan stateRequest, args []string, output io.Writer) {
	state <- stateRequest{req: reqQuit, args: run(args, afero.NewOsFs(), output)}
}

// run the program with the command line arguments. returns the exit value.
func run(args []string, fs afero.Fs, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("CHECK", "FORMAT", "LOOKUP", "DUMP")

	projectFile := md.AddString("config", "", fmt.Sprintf("project file (default %s)", paths.ProjectFilename))
	log := md.AddBool("log", false, "echo log to stdout")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	if *log {
		logger.SetEcho(output)
	} else {
		logger.SetEcho(nil)
	}

	if stats != nil && *stats {
		statsview.Launch(output)
	}

	if *projectFile == "" {
		*projectFile = paths.ProjectFile(fs)
	}

	prj, err := config.Load(fs, *projectFile)
	if err != nil {
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "CHECK":
		err = check(md, fs, prj, output)

	case "FORMAT":
		err = format(md, fs, prj, output)

	case "LOOKUP":
		err = lookup(md, fs, prj, output)

	case "DUMP":
		err = dump(md, fs, prj, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %v\n", md.String(), err)
		return 20
	}

	return 0
}

// loadBundles loads every module in the project or, if name is not empty, the
// named module only.
func loadBundles(fs afero.Fs, prj *config.Project, name string) ([]*config.Bundle, error) {
	if name == "" {
		return prj.LoadAll(fs)
	}

	m, ok := prj.Find(name)
	if !ok {
		return nil, curated.Errorf("no module named %s", name)
	}

	b, err := prj.LoadModule(fs, m)
	if err != nil {
		return nil, err
	}

	return []*config.Bundle{b}, nil
}

func check(md *modalflag.Modes, fs afero.Fs, prj *config.Project, output io.Writer) error {
	md.NewMode()

	module := md.AddString("module", "", "check named module only")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	bundles, err := loadBundles(fs, prj, *module)
	if err != nil {
		return err
	}

	problems := 0
	for _, b := range bundles {
		fmt.Fprintf(output, "%s: %d sections, %d symbols, %d relocations\n", b.Module,
			b.Sections.Len(), b.Symbols.Len(), b.Relocations.Len())

		for _, err := range b.Check() {
			fmt.Fprintf(output, "* %v\n", err)
			problems++
		}
	}

	if problems > 0 {
		return curated.Errorf("%d problems found", problems)
	}

	return nil
}

func format(md *modalflag.Modes, fs afero.Fs, prj *config.Project, output io.Writer) error {
	md.NewMode()

	outDir := md.AddString("out", "", "write files to directory rather than overwriting")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	bundles, err := prj.LoadAll(fs)
	if err != nil {
		return err
	}

	for _, b := range bundles {
		if err := b.Save(fs, prj, *outDir); err != nil {
			return err
		}
		fmt.Fprintf(output, "%s: written\n", b.Module.Name)
	}

	if *outDir != "" {
		return prj.Write(fs, filepath.Join(*outDir, paths.ProjectFilename))
	}

	return nil
}
