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

// Package module describes the code modules extracted from a ROM: the main
// program image, the overlays and the autoload blocks. A Module pairs a
// classification with the raw bytes of the module and the address at which
// those bytes are loaded.
package module

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/romdis/attributes"
)

// AutoloadKind identifies the memory an autoload block is copied to.
type AutoloadKind int

// List of valid AutoloadKind values.
const (
	AutoloadUnknown AutoloadKind = iota
	AutoloadItcm
	AutoloadDtcm
)

// base addresses of the tightly coupled memories
const (
	ItcmBase = 0x01ff8000
	DtcmBase = 0x027e0000
)

// AutoloadKindFromBase classifies an autoload block by the address it is
// loaded to.
func AutoloadKindFromBase(base uint32) AutoloadKind {
	switch base {
	case ItcmBase:
		return AutoloadItcm
	case DtcmBase:
		return AutoloadDtcm
	}
	return AutoloadUnknown
}

func (k AutoloadKind) String() string {
	switch k {
	case AutoloadItcm:
		return "itcm"
	case AutoloadDtcm:
		return "dtcm"
	}
	return "unknown"
}

// Type is the broad classification of a module.
type Type int

// List of valid Type values.
const (
	Main Type = iota
	Overlay
	Autoload
)

// Kind classifies a module. The Overlay field is meaningful only when Type is
// Overlay and the Autoload field only when Type is Autoload.
type Kind struct {
	Type     Type
	Overlay  uint16
	Autoload AutoloadKind
}

// MainKind returns the Kind of the main program image.
func MainKind() Kind {
	return Kind{Type: Main}
}

// OverlayKind returns the Kind for the overlay with the specified ID.
func OverlayKind(id uint16) Kind {
	return Kind{Type: Overlay, Overlay: id}
}

// AutoloadKindOf returns the Kind for an autoload block.
func AutoloadKindOf(kind AutoloadKind) Kind {
	return Kind{Type: Autoload, Autoload: kind}
}

func (k Kind) String() string {
	switch k.Type {
	case Main:
		return "main"
	case Overlay:
		return fmt.Sprintf("overlay(%d)", k.Overlay)
	}
	return k.Autoload.String()
}

// ParseKind parses the textual form of a Kind. This is the same form as
// returned by the String() function: "main", "overlay(<id>)", "itcm" or
// "dtcm".
func ParseKind(text string) (Kind, error) {
	value, options := attributes.SplitOptions(strings.TrimSpace(text))
	switch value {
	case "main", "arm9":
		if options != "" {
			return Kind{}, fmt.Errorf("module kind '%s' has no options, but got '(%s)'", value, options)
		}
		return MainKind(), nil
	case "overlay":
		id, err := attributes.ParseU16(options)
		if err != nil {
			return Kind{}, fmt.Errorf("failed to parse overlay ID '%s': %w", options, err)
		}
		return OverlayKind(id), nil
	case "itcm", "dtcm":
		if options != "" {
			return Kind{}, fmt.Errorf("module kind '%s' has no options, but got '(%s)'", value, options)
		}
		if value == "itcm" {
			return AutoloadKindOf(AutoloadItcm), nil
		}
		return AutoloadKindOf(AutoloadDtcm), nil
	}
	return Kind{}, fmt.Errorf("unknown module kind '%s', must be one of: main, overlay, itcm, dtcm", value)
}

// Module is the raw content of a code module and the address at which it is
// loaded.
type Module struct {
	Name        string
	Kind        Kind
	BaseAddress uint32
	Code        []byte
}

// NewModule is the preferred method of initialisation for the Module type.
func NewModule(name string, kind Kind, baseAddress uint32, code []byte) *Module {
	return &Module{
		Name:        name,
		Kind:        kind,
		BaseAddress: baseAddress,
		Code:        code,
	}
}

// EndAddress returns the address immediately following the last byte of the
// module.
func (m *Module) EndAddress() uint32 {
	return m.BaseAddress + uint32(len(m.Code))
}

func (m *Module) String() string {
	return fmt.Sprintf("%s [%s] %#010x to %#010x", m.Name, m.Kind, m.BaseAddress, m.EndAddress())
}
