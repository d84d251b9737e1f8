package mapper

import (
	"go.uber.org/zap"

	"github.com/dukaforge/chronicler/pkg/types"
)

// Failure records one row a batch resolution dropped, so callers can
// surface the loss instead of silently shortening the result.
type Failure struct {
	RowID int
	Err   error
}

// resolveAll resolves each row independently, preserving input order. A row
// that fails to resolve is logged, reported in the failure list, and
// excluded from the successes; the batch itself never aborts. This keeps a
// listing usable over a partially corrupt file.
func resolveAll[R types.Row, D any](rows []R, kind string, resolve func(R) (D, error), log *zap.SugaredLogger) ([]D, []Failure) {
	out := make([]D, 0, len(rows))
	var failed []Failure
	for _, row := range rows {
		d, err := resolve(row)
		if err != nil {
			log.Warnw("dropping unresolvable row", "table", kind, "id", row.RowID(), "error", err)
			failed = append(failed, Failure{RowID: row.RowID(), Err: err})
			continue
		}
		out = append(out, d)
	}
	return out, failed
}
