//go:build !integration

package contract

import (
	"testing"

	"saasStackAnalyzer/business/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransition(t *testing.T) {
	tests := []struct {
		name   string
		stage  Stage
		event  Event
		count  int
		want   Stage
		wantOK bool
	}{
		{"analyze with two", StageCollecting, EventAnalyze, 2, StageReviewing, true},
		{"analyze with many", StageCollecting, EventAnalyze, 9, StageReviewing, true},
		{"analyze with one", StageCollecting, EventAnalyze, 1, StageCollecting, false},
		{"analyze with none", StageCollecting, EventAnalyze, 0, StageCollecting, false},
		{"restart while collecting", StageCollecting, EventRestart, 3, StageCollecting, false},
		{"restart from review", StageReviewing, EventRestart, 3, StageCollecting, true},
		{"analyze twice", StageReviewing, EventAnalyze, 3, StageReviewing, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, ok := Transition(tt.stage, tt.event, tt.count)
			assert.Equal(t, tt.want, next)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestWorkspace_RestartClearsContracts(t *testing.T) {
	w := NewWorkspace(NewSet(catalog.Default()))

	_, err := w.Set.Add(validInput())
	require.NoError(t, err)
	assert.False(t, w.Fire(EventAnalyze))
	assert.Equal(t, StageCollecting, w.Stage)

	_, err = w.Set.Add(validInput())
	require.NoError(t, err)
	assert.True(t, w.Fire(EventAnalyze))
	assert.Equal(t, StageReviewing, w.Stage)
	assert.Equal(t, 2, w.Set.Len())

	assert.True(t, w.Fire(EventRestart))
	assert.Equal(t, StageCollecting, w.Stage)
	assert.Equal(t, 0, w.Set.Len())
}
