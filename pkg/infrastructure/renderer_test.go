package infrastructure

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRenderer(t *testing.T) {
	r, err := NewRenderer("", "", 0)
	require.NoError(t, err)
	cr, ok := r.(*ChromedpRenderer)
	require.True(t, ok)
	assert.Equal(t, DefaultTimeout, cr.timeout)

	r, err = NewRenderer(" Slice ", "/usr/bin/chromium", time.Second)
	require.NoError(t, err)
	sr, ok := r.(*SliceRenderer)
	require.True(t, ok)
	capt, ok := sr.capturer.(*ChromedpCapturer)
	require.True(t, ok)
	assert.Equal(t, "/usr/bin/chromium", capt.chromePath)
	assert.Equal(t, time.Second, capt.timeout)

	_, err = NewRenderer("pdfkit", "", 0)
	assert.Error(t, err)
}
