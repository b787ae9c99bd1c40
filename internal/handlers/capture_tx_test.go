package handlers

import (
	"bytes"
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-territory-capture/internal/middlewares"
	"github.com/sbilibin2017/gw-territory-capture/internal/repositories"
	"github.com/sbilibin2017/gw-territory-capture/internal/services"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingKafkaWriter keeps every message written to it.
type recordingKafkaWriter struct {
	mu   sync.Mutex
	msgs []kafka.Message
}

func (w *recordingKafkaWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *recordingKafkaWriter) Close() error { return nil }

func (w *recordingKafkaWriter) count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.msgs)
}

func TestCaptureHandler_InTransaction(t *testing.T) {
	tests := []struct {
		name          string
		commitErr     error
		expectedCode  int
		expectedEvent int
	}{
		{name: "commit publishes event", expectedCode: http.StatusOK, expectedEvent: 1},
		{name: "failed commit publishes nothing", commitErr: sql.ErrConnDone, expectedCode: http.StatusInternalServerError, expectedEvent: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()
			sqlxDB := sqlx.NewDb(db, "sqlmock")

			mock.ExpectBegin()
			mock.ExpectExec("INSERT INTO territory_blocks").
				WithArgs("B1", int64(1), sqlmock.AnyArg()).
				WillReturnResult(sqlmock.NewResult(0, 1))
			if tt.commitErr != nil {
				mock.ExpectCommit().WillReturnError(tt.commitErr)
			} else {
				mock.ExpectCommit()
			}

			kafkaWriter := &recordingKafkaWriter{}
			svc := services.NewTerritoryService(
				repositories.NewTerritoryWriteRepository(sqlxDB, middlewares.GetTxFromContext),
				repositories.NewTerritoryReadRepository(sqlxDB),
				kafkaWriter,
			).WithAfterCommit(middlewares.AfterCommit)

			handler := middlewares.TxMiddleware(sqlxDB)(NewCaptureHandler(svc))

			req := httptest.NewRequest(http.MethodPost, "/capture", bytes.NewBufferString(`{"block_id":"B1","user_id":1}`))
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.expectedEvent, kafkaWriter.count())
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
