package mocks

import (
	"context"

	"lead-consolidator/core/record"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of store.Client
type Client struct {
	mock.Mock
}

func (m *Client) Load(ctx context.Context, path string) ([]*record.Record, error) {
	args := m.Called(ctx, path)
	if records, ok := args.Get(0).([]*record.Record); ok {
		return records, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) Save(ctx context.Context, path string, records []*record.Record) error {
	args := m.Called(ctx, path, records)
	return args.Error(0)
}
