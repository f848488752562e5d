//go:generate go run go.uber.org/mock/mockgen -source=evaluation.go -destination=../mocks/mock_evaluation_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"intent-lab/domain"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
)

type IEvaluationRepository interface {
	Store(report domain.EvaluationReport) error
	Latest() (*domain.EvaluationReport, error)
	List(limit int) ([]domain.EvaluationReport, error)
}

type EvaluationRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewEvaluationRepository(db *badger.DB, log *slog.Logger) *EvaluationRepository {
	return &EvaluationRepository{db: db, log: log}
}

const evaluationPrefix = "eval:"

// Store persists a report under "eval:{timestamp_padded}:{uuid}" so that a
// prefix scan returns reports in chronological order.
func (r EvaluationRepository) Store(report domain.EvaluationReport) error {
	key := fmt.Sprintf("%s%019d:%s", evaluationPrefix, report.At.UnixNano(), report.ID)
	bytes, err := json.Marshal(report)
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
}

// Latest returns the most recent report, or nil when none was stored.
func (r EvaluationRepository) Latest() (*domain.EvaluationReport, error) {
	reports, err := r.List(1)
	if err != nil || len(reports) == 0 {
		return nil, err
	}
	return &reports[0], nil
}

// List returns up to limit reports, newest first.
func (r EvaluationRepository) List(limit int) ([]domain.EvaluationReport, error) {
	var reports []domain.EvaluationReport
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte(evaluationPrefix)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		// Reverse iteration starts at the greatest key lower than the seek key
		for it.Seek(append(prefix, []byte("9999999999999999999")...)); it.ValidForPrefix(prefix); it.Next() {
			if limit > 0 && len(reports) == limit {
				break
			}
			err := it.Item().Value(func(value []byte) error {
				var report domain.EvaluationReport
				if err := json.Unmarshal(value, &report); err != nil {
					return err
				}
				reports = append(reports, report)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("cannot read evaluation reports: %w", err)
	}
	r.log.Debug(fmt.Sprintf("%d evaluation report(s) fetched", len(reports)))
	return reports, nil
}
