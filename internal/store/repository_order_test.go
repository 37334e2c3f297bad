package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"

	"github.com/vmelikhov/orderdesk/internal/logger"
)

func newTestOrderRepo(t *testing.T) (*orderRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &orderRepository{
		db:     &DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()},
		logger: l,
	}
	return repo, mock, db
}

func orderColumns() []string {
	return []string{"id", "user_id", "item", "quantity", "price_cents", "created_at"}
}

func TestListOrdersByUserID_ReturnsInInsertionOrder(t *testing.T) {
	repo, mock, db := newTestOrderRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.
		NewRows(orderColumns()).
		AddRow(1, 7, "coffee beans", 2, 2400, now).
		AddRow(2, 7, "grinder", 1, 8900, now)

	mock.ExpectQuery("SELECT id, user_id, item, quantity, price_cents, created_at FROM orders").
		WithArgs(int64(7)).
		WillReturnRows(rows)

	orders, err := repo.ListOrdersByUserID(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}
	if orders[0].ID != 1 || orders[1].ID != 2 {
		t.Errorf("expected orders in insertion order, got %+v", orders)
	}
	if orders[0].Item != "coffee beans" {
		t.Errorf("unexpected first order: %+v", orders[0])
	}
}

func TestListOrdersByUserID_NoOrders(t *testing.T) {
	repo, mock, db := newTestOrderRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, user_id, item, quantity, price_cents, created_at FROM orders").
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows(orderColumns()))

	orders, err := repo.ListOrdersByUserID(context.Background(), 9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if orders == nil {
		t.Fatal("expected empty non-nil slice")
	}
	if len(orders) != 0 {
		t.Errorf("expected no orders, got %d", len(orders))
	}
}

func TestListOrdersByUserID_QueryError(t *testing.T) {
	repo, mock, db := newTestOrderRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, user_id, item, quantity, price_cents, created_at FROM orders").
		WithArgs(int64(7)).
		WillReturnError(pgError(pgerrcode.ConnectionFailure))

	_, err := repo.ListOrdersByUserID(context.Background(), 7)
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestListOrdersByUserID_ScanError(t *testing.T) {
	repo, mock, db := newTestOrderRepo(t)
	defer db.Close()

	rows := sqlmock.
		NewRows(orderColumns()).
		AddRow("not-an-int", 7, "coffee beans", 2, 2400, time.Now())

	mock.ExpectQuery("SELECT id, user_id, item, quantity, price_cents, created_at FROM orders").
		WithArgs(int64(7)).
		WillReturnRows(rows)

	_, err := repo.ListOrdersByUserID(context.Background(), 7)
	if !errors.Is(err, ErrScanningRows) {
		t.Fatalf("expected ErrScanningRows, got %v", err)
	}
}
