package posts

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/gophposts/internal/common"
	"github.com/dmitrijs2005/gophposts/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	insertQuery    = `(?s)^\s*INSERT\s+INTO\s+posts\s*\(id,\s*title,\s*content,\s*owner,\s*created_at,\s*modified_at\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*\$5,\s*\$6\)\s*$`
	selectOneQuery = `(?s)^SELECT\s+id,\s*title,\s*content,\s*owner,\s*created_at,\s*modified_at\s+FROM\s+posts\s+WHERE\s+id\s*=\s*\$1$`
	selectForUpd   = `(?s)^SELECT\s+.*\s+FROM\s+posts\s+WHERE\s+id\s*=\s*\$1\s+FOR\s+UPDATE$`
	listQuery      = `(?s)^SELECT\s+.*\s+FROM\s+posts\s+ORDER\s+BY\s+created_at\s+DESC$`
	updateQuery    = `(?s)^\s*UPDATE\s+posts\s+SET\s+title\s*=\s*\$1,\s*content\s*=\s*\$2,\s*modified_at\s*=\s*\$3\s+WHERE\s+id\s*=\s*\$4\s*$`
	deleteQuery    = `(?s)^DELETE\s+FROM\s+posts\s+WHERE\s+id\s*=\s*\$1$`
)

var (
	columns = []string{"id", "title", "content", "owner", "created_at", "modified_at"}
	created = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

func samplePost() *models.Post {
	return &models.Post{
		ID: "p1", Title: "hello", Content: "world", Owner: "alice",
		CreatedAt: created, ModifiedAt: created,
	}
}

func TestCreate(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	p := samplePost()

	mock.ExpectExec(insertQuery).
		WithArgs(p.ID, p.Title, p.Content, p.Owner, p.CreatedAt, p.ModifiedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), p))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(insertQuery).WillReturnError(errors.New("db down"))

	err := repo.Create(context.Background(), samplePost())
	require.Error(t, err)
	assert.Regexp(t, regexp.MustCompile(`db error: .*db down`), err.Error())
}

func TestFindByID(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(selectOneQuery).
		WithArgs("p1").
		WillReturnRows(sqlmock.NewRows(columns).AddRow("p1", "hello", "world", "alice", created, created))

	got, err := repo.FindByID(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, samplePost(), got)
}

func TestFindByID_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(selectOneQuery).WithArgs("nope").WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByID(context.Background(), "nope")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestFindByID_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(selectOneQuery).WithArgs("p1").WillReturnError(errors.New("db err"))

	_, err := repo.FindByID(context.Background(), "p1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrorNotFound)
}

func TestFindByIDForUpdate_LocksRow(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(selectForUpd).
		WithArgs("p1").
		WillReturnRows(sqlmock.NewRows(columns).AddRow("p1", "hello", "world", "alice", created, created))

	got, err := repo.FindByIDForUpdate(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Owner)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestList(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	later := created.Add(time.Hour)
	mock.ExpectQuery(listQuery).WillReturnRows(sqlmock.NewRows(columns).
		AddRow("p2", "second", "b", "bob", later, later).
		AddRow("p1", "hello", "world", "alice", created, created))

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "p2", got[0].ID)
	assert.Equal(t, "p1", got[1].ID)
}

func TestList_QueryError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(listQuery).WillReturnError(errors.New("db err"))

	_, err := repo.List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to select posts")
}

func TestUpdate(t *testing.T) {
	p := samplePost()
	p.Title, p.Content = "new title", "new content"
	p.ModifiedAt = created.Add(time.Minute)

	tests := []struct {
		name    string
		result  sql.Result
		err     error
		wantErr error
		anyErr  bool
	}{
		{name: "updated", result: sqlmock.NewResult(0, 1)},
		{name: "no such row", result: sqlmock.NewResult(0, 0), wantErr: common.ErrorNotFound},
		{name: "too many rows", result: sqlmock.NewResult(0, 2), anyErr: true},
		{name: "rows affected error", result: sqlmock.NewErrorResult(errors.New("boom")), anyErr: true},
		{name: "db error", err: errors.New("db down"), anyErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRepoWithMock(t)
			exp := mock.ExpectExec(updateQuery).WithArgs(p.Title, p.Content, p.ModifiedAt, p.ID)
			if tt.err != nil {
				exp.WillReturnError(tt.err)
			} else {
				exp.WillReturnResult(tt.result)
			}

			err := repo.Update(context.Background(), p)
			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
			case tt.anyErr:
				require.Error(t, err)
			default:
				require.NoError(t, err)
			}
		})
	}
}

func TestDelete(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectExec(deleteQuery).WithArgs("p1").WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Delete(context.Background(), "p1"))

	mock.ExpectExec(deleteQuery).WithArgs("p1").WillReturnResult(sqlmock.NewResult(0, 0))
	require.ErrorIs(t, repo.Delete(context.Background(), "p1"), common.ErrorNotFound)

	mock.ExpectExec(deleteQuery).WithArgs("p1").WillReturnError(errors.New("db down"))
	require.Error(t, repo.Delete(context.Background(), "p1"))
}
