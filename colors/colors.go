package colors

// package colors contains functions to quickly generate color.NRGBA instances by name (i.e. "White()", "Background()", etc).

import "image/color"

// Transparent generates a color.NRGBA instance of the provided name.
func Transparent() color.NRGBA {
	return color.NRGBA{0, 0, 0, 0}
}

// White generates a color.NRGBA instance of the provided name.
func White() color.NRGBA {
	return color.NRGBA{255, 255, 255, 255}
}

// Black generates a color.NRGBA instance of the provided name.
func Black() color.NRGBA {
	return color.NRGBA{0, 0, 0, 255}
}

// LightGray generates a color.NRGBA instance of the provided name.
func LightGray() color.NRGBA {
	return color.NRGBA{204, 204, 204, 255}
}

// Yellow generates a color.NRGBA instance of the provided name.
func Yellow() color.NRGBA {
	return color.NRGBA{255, 255, 0, 255}
}

// Background is the dark blue the viewer clears the screen to.
func Background() color.NRGBA {
	return color.NRGBA{0, 0, 102, 255}
}
