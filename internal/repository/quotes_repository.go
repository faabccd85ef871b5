package repository

import (
	"context"
	"errors"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limbo/momentum/internal/error_values"
	"github.com/limbo/momentum/pkg/cleanup"
	"github.com/limbo/momentum/pkg/entity"
)

type QuotesRepository struct {
	conn PgConnection
}

func NewQuotesRepo(cfg DBConfig) *QuotesRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for quotesRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for quotesRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing quotesRepo pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &QuotesRepository{
		conn: pool,
	}
}

func NewQuotesRepoWithConn(conn PgConnection) *QuotesRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for quotesRepo: " + err.Error())
	}
	return &QuotesRepository{
		conn: conn,
	}
}

func (qr *QuotesRepository) GetRandom(ctx context.Context) (*entity.Quote, error) {
	var quote entity.Quote
	var author *string
	row := qr.conn.QueryRow(ctx, `SELECT id, text, author, category FROM quotes ORDER BY RANDOM() LIMIT 1;`)
	if err := row.Scan(&quote.ID, &quote.Text, &author, &quote.Category); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrQuoteNotFound
		}
		return nil, errors.New("getting random quote error: " + err.Error())
	}
	if author != nil {
		quote.Author = *author
	}
	return &quote, nil
}
