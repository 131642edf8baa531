package orchestration

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/agbru/polymul/internal/errors"
	"github.com/agbru/polymul/internal/transform"
	"github.com/agbru/polymul/internal/transform/mocks"
)

// identityTransformer configures the mock to return its input unchanged,
// which makes multiplication results fully predictable: with p = q = [1,1]
// padded to length 4, the pipeline yields [1, 1, 0].
func identityTransformer(ctrl *gomock.Controller, name string) *mocks.MockTransformer {
	m := mocks.NewMockTransformer(ctrl)
	m.EXPECT().Name().Return(name).AnyTimes()
	m.EXPECT().Transform(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, data []complex128, _ transform.Direction) ([]complex128, error) {
			out := make([]complex128, len(data))
			copy(out, data)
			return out, nil
		},
	).AnyTimes()
	return m
}

// failingTransformer configures the mock to always fail.
func failingTransformer(ctrl *gomock.Controller, name string, err error) *mocks.MockTransformer {
	m := mocks.NewMockTransformer(ctrl)
	m.EXPECT().Name().Return(name).AnyTimes()
	m.EXPECT().Transform(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, err).AnyTimes()
	return m
}

// recordingPresenter records analysis callbacks for assertions.
type recordingPresenter struct {
	tableResults []BackendResult
	resultCalls  int
	handledErr   error
	exitCode     int
}

func (r *recordingPresenter) PresentComparisonTable(results []BackendResult, _ io.Writer) {
	r.tableResults = results
}

func (r *recordingPresenter) PresentResult(_ BackendResult, _ PresentationOptions, _ io.Writer) {
	r.resultCalls++
}

func (r *recordingPresenter) HandleError(err error, _ io.Writer) int {
	r.handledErr = err
	return r.exitCode
}

func TestExecuteTransformations_CollectsAllResults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backends := []transform.Transformer{
		identityTransformer(ctrl, "mock-a"),
		identityTransformer(ctrl, "mock-b"),
	}
	req := Request{P: []int64{1, 1}, Q: []int64{1, 1}}

	results := ExecuteTransformations(context.Background(), backends, req, NullProgressReporter{}, io.Discard)

	require.Len(t, results, 2)
	assert.Equal(t, "mock-a", results[0].Name)
	assert.Equal(t, "mock-b", results[1].Name)
	for _, res := range results {
		require.NoError(t, res.Err)
		assert.Equal(t, []int64{1, 1, 0}, res.Coeffs)
	}
}

func TestExecuteTransformations_RecordsBackendFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backendErr := errors.New("device exploded")
	backends := []transform.Transformer{
		identityTransformer(ctrl, "good"),
		failingTransformer(ctrl, "bad", backendErr),
	}
	req := Request{P: []int64{1, 1}, Q: []int64{1, 1}}

	results := ExecuteTransformations(context.Background(), backends, req, NullProgressReporter{}, io.Discard)

	require.Len(t, results, 2)
	assert.NoError(t, results[0].Err)
	assert.ErrorIs(t, results[1].Err, backendErr)
	assert.Nil(t, results[1].Coeffs)
}

func TestExecuteTransformations_PowerRequest(t *testing.T) {
	backends := []transform.Transformer{transform.NewIterative()}
	req := Request{P: []int64{1, 1}, Power: 3}

	results := ExecuteTransformations(context.Background(), backends, req, NullProgressReporter{}, io.Discard)

	require.Len(t, results, 1)
	require.NoError(t, results[0].Err)
	assert.Equal(t, []int64{1, 3, 3, 1}, results[0].Coeffs)
}

func TestExecuteTransformations_ProgressUpdatesDelivered(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backends := []transform.Transformer{
		identityTransformer(ctrl, "mock-a"),
		identityTransformer(ctrl, "mock-b"),
	}
	req := Request{P: []int64{1}, Q: []int64{1}}

	var seen []Update
	reporter := ProgressReporterFunc(func(wg *sync.WaitGroup, updates <-chan Update, _ int, _ io.Writer) {
		defer wg.Done()
		for upd := range updates {
			seen = append(seen, upd)
		}
	})

	ExecuteTransformations(context.Background(), backends, req, reporter, io.Discard)

	require.Len(t, seen, 2)
	for _, upd := range seen {
		assert.True(t, upd.Done)
		assert.NoError(t, upd.Err)
	}
}

func TestExecuteTransformations_NoDeadlockWithSlowReporter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// More backends than the progress buffer per-backend multiplier covers,
	// with a reporter that drains slowly, must still terminate.
	var backends []transform.Transformer
	for _, name := range []string{"m1", "m2", "m3", "m4", "m5", "m6"} {
		backends = append(backends, identityTransformer(ctrl, name))
	}
	req := Request{P: []int64{1}, Q: []int64{1}}

	slow := ProgressReporterFunc(func(wg *sync.WaitGroup, updates <-chan Update, _ int, _ io.Writer) {
		defer wg.Done()
		for range updates {
			time.Sleep(time.Millisecond)
		}
	})

	done := make(chan struct{})
	go func() {
		ExecuteTransformations(context.Background(), backends, req, slow, io.Discard)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("ExecuteTransformations deadlocked")
	}
}

func TestAnalyzeComparisonResults_ConsistentResults(t *testing.T) {
	presenter := &recordingPresenter{}
	results := []BackendResult{
		{Name: "slow", Coeffs: []int64{1, 2, 1}, Duration: 20 * time.Millisecond},
		{Name: "fast", Coeffs: []int64{1, 2, 1}, Duration: 5 * time.Millisecond},
	}

	code := AnalyzeComparisonResults(results, PresentationOptions{}, presenter, io.Discard)

	assert.Equal(t, apperrors.ExitSuccess, code)
	assert.Equal(t, 1, presenter.resultCalls)
	// Sorted fastest-first.
	require.Len(t, presenter.tableResults, 2)
	assert.Equal(t, "fast", presenter.tableResults[0].Name)
}

func TestAnalyzeComparisonResults_Mismatch(t *testing.T) {
	presenter := &recordingPresenter{}
	results := []BackendResult{
		{Name: "a", Coeffs: []int64{1, 2, 1}},
		{Name: "b", Coeffs: []int64{1, 2, 2}},
	}

	var out bytes.Buffer
	code := AnalyzeComparisonResults(results, PresentationOptions{}, presenter, &out)

	assert.Equal(t, apperrors.ExitErrorMismatch, code)
	assert.Contains(t, out.String(), "inconsistency")
	assert.Zero(t, presenter.resultCalls)
}

func TestAnalyzeComparisonResults_AllFailed(t *testing.T) {
	bang := errors.New("bang")
	presenter := &recordingPresenter{exitCode: apperrors.ExitErrorGeneric}
	results := []BackendResult{
		{Name: "a", Err: bang},
		{Name: "b", Err: errors.New("boom")},
	}

	code := AnalyzeComparisonResults(results, PresentationOptions{}, presenter, io.Discard)

	assert.Equal(t, apperrors.ExitErrorGeneric, code)
	assert.ErrorIs(t, presenter.handledErr, bang)
}

func TestAnalyzeComparisonResults_FailuresSortAfterSuccesses(t *testing.T) {
	presenter := &recordingPresenter{}
	results := []BackendResult{
		{Name: "broken", Err: errors.New("bang"), Duration: time.Millisecond},
		{Name: "ok", Coeffs: []int64{5}, Duration: time.Second},
	}

	code := AnalyzeComparisonResults(results, PresentationOptions{}, presenter, io.Discard)

	assert.Equal(t, apperrors.ExitSuccess, code)
	require.Len(t, presenter.tableResults, 2)
	assert.Equal(t, "ok", presenter.tableResults[0].Name)
}
