package stock

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/m04kA/SMC-EventStockService/pkg/dbmetrics"
)

// fakeConn отвечает на запросы через заданные функции и запоминает их
type fakeConn struct {
	mu      sync.Mutex
	queries []fakeQuery

	onQuery func(query string, args []driver.NamedValue) (driver.Rows, error)
	onExec  func(query string, args []driver.NamedValue) (driver.Result, error)
}

type fakeQuery struct {
	sql  string
	args []driver.NamedValue
}

func (c *fakeConn) record(query string, args []driver.NamedValue) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.queries = append(c.queries, fakeQuery{sql: query, args: args})
}

func (c *fakeConn) recorded() []fakeQuery {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]fakeQuery(nil), c.queries...)
}

func (c *fakeConn) QueryContext(_ context.Context, query string, args []driver.NamedValue) (driver.Rows, error) {
	c.record(query, args)
	if c.onQuery == nil {
		return nil, errors.New("unexpected query")
	}
	return c.onQuery(query, args)
}

func (c *fakeConn) ExecContext(_ context.Context, query string, args []driver.NamedValue) (driver.Result, error) {
	c.record(query, args)
	if c.onExec == nil {
		return nil, errors.New("unexpected exec")
	}
	return c.onExec(query, args)
}

func (c *fakeConn) Prepare(string) (driver.Stmt, error) {
	return nil, errors.New("prepare not supported")
}

func (c *fakeConn) Close() error { return nil }

func (c *fakeConn) Begin() (driver.Tx, error) {
	return nil, errors.New("transactions not supported")
}

type fakeConnector struct {
	conn *fakeConn
}

func (c fakeConnector) Connect(context.Context) (driver.Conn, error) { return c.conn, nil }

func (c fakeConnector) Driver() driver.Driver { return fakeDriver{conn: c.conn} }

type fakeDriver struct {
	conn *fakeConn
}

func (d fakeDriver) Open(string) (driver.Conn, error) { return d.conn, nil }

// fakeRows набор строк результата
type fakeRows struct {
	columns []string
	values  [][]driver.Value
	pos     int
}

func (r *fakeRows) Columns() []string { return r.columns }

func (r *fakeRows) Close() error { return nil }

func (r *fakeRows) Next(dest []driver.Value) error {
	if r.pos >= len(r.values) {
		return io.EOF
	}
	copy(dest, r.values[r.pos])
	r.pos++
	return nil
}

// newFakeRepository возвращает репозиторий поверх fakeConn
func newFakeRepository(t *testing.T, conn *fakeConn) *Repository {
	t.Helper()

	db := sql.OpenDB(fakeConnector{conn: conn})
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	return NewRepository(dbmetrics.Wrap(db, nil))
}
