package style

import (
	"testing"

	"github.com/arthur-debert/sortie/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestStatusLabel_Plain(t *testing.T) {
	assert.Equal(t, "✓ moved", StatusLabel(types.StatusMoved, false))
	assert.Equal(t, "○ skipped", StatusLabel(types.StatusSkipped, false))
	assert.Equal(t, "✗ failed", StatusLabel(types.StatusFailed, false))
}

func TestStatusLabel_StyledKeepsText(t *testing.T) {
	for _, status := range []types.OutcomeStatus{types.StatusMoved, types.StatusSkipped, types.StatusFailed} {
		assert.Contains(t, StatusLabel(status, true), string(status))
	}
}

func TestForStatus(t *testing.T) {
	assert.Equal(t, MovedStyle.GetForeground(), ForStatus(types.StatusMoved).GetForeground())
	assert.Equal(t, FailedStyle.GetForeground(), ForStatus(types.StatusFailed).GetForeground())
	assert.Equal(t, MutedStyle.GetForeground(), ForStatus(types.OutcomeStatus("other")).GetForeground())
}
