package richtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLines_HTMLList(t *testing.T) {
	lines, err := Lines("<ul><li>Reviewed <strong>budget</strong></li><li>Approved hires</li></ul>")
	require.NoError(t, err)

	assert.Equal(t, []string{"Reviewed budget", "Approved hires"}, lines)
}

func TestLines_Paragraphs(t *testing.T) {
	lines, err := Lines("<p>Velocity 42</p><p></p><p>Churn 3%</p>")
	require.NoError(t, err)

	assert.Equal(t, []string{"Velocity 42", "Churn 3%"}, lines)
}

func TestLines_PlainText(t *testing.T) {
	lines, err := Lines("  first\r\n\r\n- second \n1. third")
	require.NoError(t, err)

	assert.Equal(t, []string{"first", "second", "third"}, lines)
}

func TestIsHTML(t *testing.T) {
	assert.True(t, IsHTML("<p>x</p>"))
	assert.False(t, IsHTML("a < b and c > d"))
}
