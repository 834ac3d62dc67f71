package work

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aivend/judge/internal/catalog"
	"github.com/aivend/judge/internal/engine"
	"github.com/aivend/judge/internal/vision"
)

func newPool(t *testing.T, workers int) *Pool {
	t.Helper()
	cat, err := catalog.New(catalog.Builtin())
	require.NoError(t, err)
	return NewPool(engine.New(cat, zerolog.Nop()), workers, zerolog.Nop())
}

// takeOne is a single-product removal input for a builtin class.
func takeOne(classID int, unitWeight float64) engine.Input {
	return engine.Input{
		Detections: []vision.Detection{{
			X1: 0, Y1: 0, X2: 100, Y2: 100,
			Confidence: 0.9,
			ClassID:    classID,
			ClassName:  fmt.Sprintf("class_%d", classID),
		}},
		DeltaWeight: -unitWeight,
	}
}

func TestPool_JudgeAllPreservesOrder(t *testing.T) {
	pool := newPool(t, 4)

	// Interleave distinct products so a shuffled result would be caught.
	inputs := []engine.Input{
		takeOne(26, 365), // chickenmayo_rice
		takeOne(9, 130),  // vita500
		takeOne(4, 380),  // coca_cola_350
		takeOne(21, 52),  // snickers
		takeOne(26, 365),
	}

	decisions, err := pool.JudgeAll(context.Background(), inputs)
	require.NoError(t, err)
	require.Len(t, decisions, 5)

	wantIDs := []int{26, 9, 4, 21, 26}
	for i, d := range decisions {
		require.Len(t, d.Products, 1, "decision %d", i)
		assert.Equal(t, wantIDs[i], d.Products[0].ProductID, "decision %d", i)
		assert.Equal(t, engine.StatusComplete, d.Status)
	}
}

func TestPool_MoreWorkersThanInputs(t *testing.T) {
	pool := newPool(t, 16)

	decisions, err := pool.JudgeAll(context.Background(), []engine.Input{takeOne(26, 365)})
	require.NoError(t, err)
	assert.Len(t, decisions, 1)
}

func TestPool_EmptyBatch(t *testing.T) {
	pool := newPool(t, 4)

	decisions, err := pool.JudgeAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, decisions)
}

func TestPool_CancelledContext(t *testing.T) {
	pool := newPool(t, 2)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	inputs := make([]engine.Input, 50)
	for i := range inputs {
		inputs[i] = takeOne(26, 365)
	}

	_, err := pool.JudgeAll(ctx, inputs)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewPool_ClampsWorkerCount(t *testing.T) {
	pool := newPool(t, 0)

	decisions, err := pool.JudgeAll(context.Background(), []engine.Input{takeOne(9, 130)})
	require.NoError(t, err)
	assert.Len(t, decisions, 1)
}
