package superchat

import "image/color"

// Class is the colour tier of a paid message. Higher donations get warmer colours.
type Class string

const (
	ClassBlue      Class = "Blue"
	ClassLightBlue Class = "LightBlue"
	ClassGreen     Class = "Green"
	ClassYellow    Class = "Yellow"
	ClassOrange    Class = "Orange"
	ClassMagenta   Class = "Magenta"
	ClassRed       Class = "Red"

	// DefaultClass is used for messages that do not carry a tier
	DefaultClass = ClassBlue
)

var classColors = map[Class]color.NRGBA{
	ClassBlue:      {R: 0x1e, G: 0x88, B: 0xe5, A: 0xff},
	ClassLightBlue: {R: 0x00, G: 0xe5, B: 0xff, A: 0xff},
	ClassGreen:     {R: 0x1d, G: 0xe9, B: 0xb6, A: 0xff},
	ClassYellow:    {R: 0xff, G: 0xca, B: 0x28, A: 0xff},
	ClassOrange:    {R: 0xf5, G: 0x7c, B: 0x00, A: 0xff},
	ClassMagenta:   {R: 0xe9, G: 0x1e, B: 0x63, A: 0xff},
	ClassRed:       {R: 0xe6, G: 0x21, B: 0x17, A: 0xff},
}

// Classes returns every tier from lowest to highest
func Classes() []Class {
	return []Class{ClassBlue, ClassLightBlue, ClassGreen, ClassYellow, ClassOrange, ClassMagenta, ClassRed}
}

// Valid reports whether c is a known tier
func (c Class) Valid() bool {
	_, ok := classColors[c]
	return ok
}

// Color returns the tier colour. Unknown tiers get the default tier's colour.
func (c Class) Color() color.NRGBA {
	if col, ok := classColors[c]; ok {
		return col
	}
	return classColors[DefaultClass]
}
