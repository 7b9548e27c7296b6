package queries

import (
	"context"

	"tienda-api/internal/domain/ubigeo"
	"tienda-api/internal/pkg/errs"
)

type UbigeoQueries interface {
	Tree(ctx context.Context) ([]ubigeo.Department, error)
}

type UbigeoStore interface {
	ListAll(ctx context.Context) ([]ubigeo.Record, error)
}

type ubigeoQueriesImpl struct {
	store UbigeoStore
}

func NewUbigeoQueries(store UbigeoStore) UbigeoQueries {
	return &ubigeoQueriesImpl{store: store}
}

func (q *ubigeoQueriesImpl) Tree(ctx context.Context) ([]ubigeo.Department, error) {
	records, err := q.store.ListAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load ubigeo records")
	}
	return ubigeo.BuildTree(records), nil
}
