// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import "fmt"

// KeyCodes are physical key codes, named after the key in the US layout.
// Only the keys a driver needs to tell apart are listed; everything
// else is reported as [CodeUnknown].
type KeyCodes int32

const (
	CodeUnknown KeyCodes = iota

	CodeA
	CodeB
	CodeC
	CodeD
	CodeE
	CodeF
	CodeG
	CodeH
	CodeI
	CodeJ
	CodeK
	CodeL
	CodeM
	CodeN
	CodeO
	CodeP
	CodeQ
	CodeR
	CodeS
	CodeT
	CodeU
	CodeV
	CodeW
	CodeX
	CodeY
	CodeZ

	Code0
	Code1
	Code2
	Code3
	Code4
	Code5
	Code6
	Code7
	Code8
	Code9

	CodeEscape
	CodeReturnEnter
	CodeSpacebar
	CodeTab
	CodeBackspace
	CodeDelete

	CodeUpArrow
	CodeDownArrow
	CodeLeftArrow
	CodeRightArrow

	CodeF1
	CodeF2
	CodeF3
	CodeF4
	CodeF5
	CodeF6
	CodeF7
	CodeF8
	CodeF9
	CodeF10
	CodeF11
	CodeF12
)

var keyCodeNames = map[KeyCodes]string{
	CodeUnknown:     "Unknown",
	CodeEscape:      "Escape",
	CodeReturnEnter: "ReturnEnter",
	CodeSpacebar:    "Spacebar",
	CodeTab:         "Tab",
	CodeBackspace:   "Backspace",
	CodeDelete:      "Delete",
	CodeUpArrow:     "UpArrow",
	CodeDownArrow:   "DownArrow",
	CodeLeftArrow:   "LeftArrow",
	CodeRightArrow:  "RightArrow",
}

func (kc KeyCodes) String() string {
	switch {
	case kc >= CodeA && kc <= CodeZ:
		return string(rune('A' + kc - CodeA))
	case kc >= Code0 && kc <= Code9:
		return string(rune('0' + kc - Code0))
	case kc >= CodeF1 && kc <= CodeF12:
		return fmt.Sprintf("F%d", kc-CodeF1+1)
	}
	if nm, ok := keyCodeNames[kc]; ok {
		return nm
	}
	return fmt.Sprintf("KeyCodes(%d)", int32(kc))
}

// KeyStates is whether a key went down or up.
type KeyStates int32

const (
	// Pressed is a key going down, including platform key repeats.
	Pressed KeyStates = iota

	// Released is a key going up.
	Released
)

func (ks KeyStates) String() string {
	if ks == Released {
		return "Released"
	}
	return "Pressed"
}
