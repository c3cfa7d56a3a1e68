package clipboard

import (
	"bytes"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSC52_WriteAll(t *testing.T) {
	var buf bytes.Buffer
	w := NewOSC52(&buf)

	require.NoError(t, w.WriteAll("3045...ab"))

	out := buf.String()
	assert.Contains(t, out, "\x1b]52;c;")
	assert.Contains(t, out, base64.StdEncoding.EncodeToString([]byte("3045...ab")))
}

func TestDefault(t *testing.T) {
	w := Default()
	if SystemAvailable() {
		assert.IsType(t, System{}, w)
	} else {
		assert.IsType(t, &OSC52{}, w)
	}
}

func TestWriterImplementations(t *testing.T) {
	var _ Writer = System{}
	var _ Writer = &OSC52{}
}
