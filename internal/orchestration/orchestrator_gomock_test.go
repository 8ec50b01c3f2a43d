package orchestration

import (
	"context"
	"errors"
	"io"
	"math/big"
	"testing"

	"github.com/golang/mock/gomock"

	apperrors "github.com/agbru/tricalc/internal/errors"
	"github.com/agbru/tricalc/internal/mocks"
	"github.com/agbru/tricalc/internal/triangle"
)

// TestExecuteSolves_GeneratedMocks drives the orchestrator with generated
// solver mocks, pinning the call contract: each solver is invoked exactly
// once with its slice index and the shared triangle, and Name is read for
// the result label.
func TestExecuteSolves_GeneratedMocks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tri := triangle.Triangle{{6}, {3, 5}, {9, 7, 1}, {4, 6, 8, 4}}

	first := mocks.NewMockSolver(ctrl)
	first.EXPECT().
		Solve(gomock.Any(), gomock.Any(), 0, gomock.Any(), gomock.Any()).
		Return(big.NewInt(26), nil)
	first.EXPECT().Name().Return("mock first")

	second := mocks.NewMockSolver(ctrl)
	second.EXPECT().
		Solve(gomock.Any(), gomock.Any(), 1, gomock.Any(), gomock.Any()).
		Return(big.NewInt(26), nil)
	second.EXPECT().Name().Return("mock second")

	results := ExecuteSolves(context.Background(),
		[]triangle.Solver{first, second}, tri, triangle.Options{},
		NullProgressReporter{}, io.Discard)

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	for _, res := range results {
		if res.Err != nil {
			t.Errorf("%s failed: %v", res.Name, res.Err)
		}
		if res.Result.Cmp(big.NewInt(26)) != 0 {
			t.Errorf("%s = %s, want 26", res.Name, res.Result)
		}
	}

	if _, err := AnalyzeComparisonResults(results); err != nil {
		t.Errorf("AnalyzeComparisonResults = %v, want nil", err)
	}
}

// TestAnalyzeComparisonResults_GeneratedMockMismatch checks that a solver
// disagreeing with the reference surfaces as a MismatchError.
func TestAnalyzeComparisonResults_GeneratedMockMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tri := triangle.Triangle{{1}, {2, 3}}

	agree := mocks.NewMockSolver(ctrl)
	agree.EXPECT().
		Solve(gomock.Any(), gomock.Any(), 0, gomock.Any(), gomock.Any()).
		Return(big.NewInt(4), nil)
	agree.EXPECT().Name().Return("agree")

	disagree := mocks.NewMockSolver(ctrl)
	disagree.EXPECT().
		Solve(gomock.Any(), gomock.Any(), 1, gomock.Any(), gomock.Any()).
		Return(big.NewInt(5), nil)
	disagree.EXPECT().Name().Return("disagree")

	results := ExecuteSolves(context.Background(),
		[]triangle.Solver{agree, disagree}, tri, triangle.Options{},
		NullProgressReporter{}, io.Discard)

	_, err := AnalyzeComparisonResults(results)
	var mErr apperrors.MismatchError
	if !errors.As(err, &mErr) {
		t.Fatalf("expected MismatchError, got %v", err)
	}
}
