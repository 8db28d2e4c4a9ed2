package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/infra/storage/snapshot"
)

type execCall struct {
	query string
	args  []interface{}
}

type fakeDB struct {
	calls   []execCall
	execErr error
}

func (f *fakeDB) ExecContext(_ context.Context, query string, args ...interface{}) (sql.Result, error) {
	f.calls = append(f.calls, execCall{query: query, args: args})
	if f.execErr != nil {
		return nil, f.execErr
	}
	return driverResult{}, nil
}

func (f *fakeDB) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

type driverResult struct{}

func (driverResult) LastInsertId() (int64, error) { return 0, nil }
func (driverResult) RowsAffected() (int64, error) { return 1, nil }

func TestLoadQuery(t *testing.T) {
	query, args, err := loadQuery("Milana")
	require.NoError(t, err)

	assert.Equal(t, "SELECT document FROM salon_snapshots WHERE name = $1", query)
	assert.Equal(t, []interface{}{"Milana"}, args)
}

func TestSaveQuery(t *testing.T) {
	query, args, err := saveQuery("Milana", []byte(`{"name":"Milana"}`))
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO salon_snapshots")
	assert.Contains(t, query, "NOW()")
	assert.Contains(t, query, "ON CONFLICT (name) DO UPDATE SET document = EXCLUDED.document")
	assert.Equal(t, []interface{}{"Milana", `{"name":"Milana"}`}, args)
}

func TestRepository_Save(t *testing.T) {
	db := &fakeDB{}
	repo := NewRepository(db, "Milana")

	salon, err := domain.NewSalon("Milana")
	require.NoError(t, err)
	oleg, err := domain.NewMaster("Oleg", 31, domain.SpecHairCutting)
	require.NoError(t, err)
	require.NoError(t, salon.HireStaff(oleg))

	require.NoError(t, repo.Save(context.Background(), salon))
	require.Len(t, db.calls, 1)
	require.Len(t, db.calls[0].args, 2)

	raw, ok := db.calls[0].args[1].(string)
	require.True(t, ok)
	var doc snapshot.Document
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	assert.Equal(t, "Milana", doc.Name)
	assert.Equal(t, []snapshot.MasterRecord{{Name: "Oleg", Age: 31, Spec: "Hair cutting"}}, doc.Staff)
}

func TestRepository_SaveExecError(t *testing.T) {
	db := &fakeDB{execErr: errors.New("connection refused")}
	repo := NewRepository(db, "Milana")

	salon, err := domain.NewSalon("Milana")
	require.NoError(t, err)

	err = repo.Save(context.Background(), salon)
	assert.ErrorIs(t, err, ErrExecQuery)
}

func TestRepository_EnsureSchema(t *testing.T) {
	db := &fakeDB{}
	repo := NewRepository(db, "Milana")

	require.NoError(t, repo.EnsureSchema(context.Background()))
	require.Len(t, db.calls, 1)
	assert.Contains(t, db.calls[0].query, "CREATE TABLE IF NOT EXISTS salon_snapshots")

	db.execErr = errors.New("permission denied")
	assert.ErrorIs(t, repo.EnsureSchema(context.Background()), ErrExecQuery)
}
