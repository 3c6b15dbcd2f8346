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

package relocations

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jetsetilly/romdis/attributes"
	"github.com/jetsetilly/romdis/module"
)

// ModuleType identifies the destination of a relocation.
type ModuleType int

// List of valid ModuleType values.
const (
	ModuleNone ModuleType = iota
	ModuleOverlay
	ModuleOverlays
	ModuleMain
	ModuleItcm
	ModuleDtcm
)

// Module is the destination of a relocation. The IDs field contains exactly
// one overlay ID for ModuleOverlay, two or more IDs for ModuleOverlays and is
// empty otherwise.
type Module struct {
	Type ModuleType
	IDs  []uint16
}

// NoModule returns the Module for a relocation with no destination.
func NoModule() Module {
	return Module{Type: ModuleNone}
}

// MainModule returns the Module for the main program image.
func MainModule() Module {
	return Module{Type: ModuleMain}
}

// ItcmModule returns the Module for the instruction TCM.
func ItcmModule() Module {
	return Module{Type: ModuleItcm}
}

// DtcmModule returns the Module for the data TCM.
func DtcmModule() Module {
	return Module{Type: ModuleDtcm}
}

// OverlayModule returns the Module for a single overlay.
func OverlayModule(id uint16) Module {
	return Module{Type: ModuleOverlay, IDs: []uint16{id}}
}

// OverlaysModule returns the Module for a set of overlays. At least two IDs
// must be given. The order and uniqueness of the IDs is not checked.
func OverlaysModule(ids ...uint16) (Module, error) {
	if len(ids) < 2 {
		return Module{}, &ExpectedMultipleOverlaysError{IDs: ids}
	}
	return Module{Type: ModuleOverlays, IDs: slices.Clone(ids)}, nil
}

// ModuleFromKind converts a module classification to the equivalent
// relocation destination. Autoload blocks other than the ITCM and DTCM cannot
// be represented.
func ModuleFromKind(kind module.Kind) (Module, error) {
	switch kind.Type {
	case module.Main:
		return MainModule(), nil
	case module.Overlay:
		return OverlayModule(kind.Overlay), nil
	}

	switch kind.Autoload {
	case module.AutoloadItcm:
		return ItcmModule(), nil
	case module.AutoloadDtcm:
		return DtcmModule(), nil
	}
	return Module{}, &UnsupportedAutoloadError{Kind: kind.Autoload}
}

// Equal returns true if both modules describe the same destination.
func (m Module) Equal(other Module) bool {
	return m.Type == other.Type && slices.Equal(m.IDs, other.IDs)
}

func (m Module) String() string {
	switch m.Type {
	case ModuleNone:
		return "none"
	case ModuleOverlay:
		return fmt.Sprintf("overlay(%d)", m.IDs[0])
	case ModuleOverlays:
		s := strings.Builder{}
		s.WriteString("overlays(")
		for i, id := range m.IDs {
			if i > 0 {
				s.WriteString(",")
			}
			s.WriteString(fmt.Sprintf("%d", id))
		}
		s.WriteString(")")
		return s.String()
	case ModuleMain:
		return "main"
	case ModuleItcm:
		return "itcm"
	case ModuleDtcm:
		return "dtcm"
	}
	return "unknown"
}

var moduleNames = []string{"overlays", "overlay", "main", "itcm", "dtcm", "none"}

func parseModule(ctx attributes.Context, text string) (Module, error) {
	value, options := attributes.SplitOptions(text)

	switch value {
	case "none":
		return NoModule(), attributes.NoOptions(ctx, value, options)
	case "main":
		return MainModule(), attributes.NoOptions(ctx, value, options)
	case "itcm":
		return ItcmModule(), attributes.NoOptions(ctx, value, options)
	case "dtcm":
		return DtcmModule(), attributes.NoOptions(ctx, value, options)
	case "overlay":
		id, err := attributes.U16(ctx, "overlay ID", options)
		if err != nil {
			return Module{}, err
		}
		return OverlayModule(id), nil
	case "overlays":
		var ids []uint16
		for _, o := range strings.Split(options, ",") {
			id, err := attributes.U16(ctx, "overlay ID", o)
			if err != nil {
				return Module{}, err
			}
			ids = append(ids, id)
		}
		m, err := OverlaysModule(ids...)
		if err != nil {
			if e, ok := err.(*ExpectedMultipleOverlaysError); ok {
				e.Context = ctx
			}
			return Module{}, err
		}
		return m, nil
	}

	return Module{}, &attributes.UnknownValueError{
		Context:   ctx,
		Attribute: "relocation module",
		Value:     value,
		Expected:  moduleNames,
	}
}
