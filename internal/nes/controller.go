package nes

type Button uint8

// Bit order matches the order the controller shifts them out.
const (
	ButtonA Button = 1 << iota
	ButtonB
	ButtonSelect
	ButtonStart
	ButtonUp
	ButtonDown
	ButtonLeft
	ButtonRight
)

// Controller is a standard pad: a parallel-in serial-out shift register
// loaded while strobe is high.
type Controller struct {
	buttons uint8
	shift   uint8
	strobe  bool
}

func NewController() *Controller {
	return &Controller{}
}

func (c *Controller) SetButton(b Button, pressed bool) {
	if pressed {
		c.buttons |= uint8(b)
	} else {
		c.buttons &^= uint8(b)
	}
}

// SetButtons replaces the whole button state, one bit per Button.
func (c *Controller) SetButtons(buttons uint8) {
	c.buttons = buttons
}

func (c *Controller) Write(data uint8) {
	c.strobe = data&0x1 != 0
	if c.strobe {
		c.shift = c.buttons
	}
}

// Read returns the next button bit. After eight reads an official pad
// keeps returning 1.
func (c *Controller) Read() uint8 {
	if c.strobe {
		return c.buttons & 0x1
	}
	bit := c.shift & 0x1
	c.shift = c.shift>>1 | 0x80
	return bit
}
