package service

import (
	"context"
	"errors"
	"log"

	errorvalues "github.com/limbo/momentum/internal/error_values"
	"github.com/limbo/momentum/internal/repository"
	"github.com/limbo/momentum/pkg/entity"
)

type QuotesService struct {
	repo repository.QuotesRepositoryI
}

func NewQuotesService(quotesRepo repository.QuotesRepositoryI) *QuotesService {
	if quotesRepo == nil {
		log.Fatal("provided nil quotesRepo")
	}
	return &QuotesService{
		repo: quotesRepo,
	}
}

func (qs *QuotesService) GetRandomQuote(ctx context.Context) (*entity.Quote, error) {
	quote, err := qs.repo.GetRandom(ctx)
	if err != nil {
		if errors.Is(err, errorvalues.ErrQuoteNotFound) {
			return nil, err
		}
		return nil, errors.New("quotes repository error: " + err.Error())
	}
	return quote, nil
}
