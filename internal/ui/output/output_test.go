package output_test

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/wsg/internal/ui/output"
	"go.trai.ch/wsg/internal/ui/style"
)

func TestColorProfile(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, termenv.Ascii, output.ColorProfile(), "NO_COLOR should force Ascii profile")

	t.Setenv("NO_COLOR", "")
	p := output.ColorProfile()
	assert.True(t, p >= termenv.TrueColor && p <= termenv.Ascii, "should return a valid profile")
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	out := output.New(&buf)
	assert.NotNil(t, out)

	_, _ = out.WriteString("test")
	assert.Equal(t, "test", buf.String())
}

func TestNew_Nil(t *testing.T) {
	assert.NotPanics(t, func() {
		_ = output.New(nil)
	})
}

func TestNewRenderer_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	r := output.NewRenderer(&bytes.Buffer{})
	assert.Equal(t, termenv.Ascii, r.ColorProfile())
	assert.Equal(t, "plain", r.NewStyle().Foreground(style.Red).Render("plain"))
}

func TestWidth_NonTerminal(t *testing.T) {
	assert.Equal(t, style.DefaultWidth, output.Width(&bytes.Buffer{}))
}
