package tile

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestXterm(t *testing.T) {
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, Xterm(0))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, Xterm(15))
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, Xterm(16))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, Xterm(231))
	assert.Equal(t, color.RGBA{95, 0, 0, 255}, Xterm(52))
	assert.Equal(t, color.RGBA{175, 95, 0, 255}, Xterm(130))
	assert.Equal(t, color.RGBA{8, 8, 8, 255}, Xterm(232))
	assert.Equal(t, color.RGBA{28, 28, 28, 255}, Xterm(234))
	assert.Equal(t, color.RGBA{238, 238, 238, 255}, Xterm(255))
}
