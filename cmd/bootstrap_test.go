package cmd

import (
	"context"
	"errors"
	"testing"

	"param-host/core/storage"
	"param-host/core/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCheckBucket(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates When Allowed", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", ctx, "parameters").Return(false, nil)
		m.On("MakeBucket", ctx, "parameters", mock.Anything).Return(nil)

		err := checkBucket(ctx, m, storage.Config{Bucket: "parameters", CreateBucket: true})
		assert.NoError(t, err)
		m.AssertCalled(t, "MakeBucket", ctx, "parameters", mock.Anything)
	})

	t.Run("Missing Without Create", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", ctx, "parameters").Return(false, nil)

		err := checkBucket(ctx, m, storage.Config{Bucket: "parameters"})
		assert.ErrorContains(t, err, "does not exist")
		m.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Unreachable", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", ctx, "parameters").Return(false, errors.New("connection refused"))

		err := checkBucket(ctx, m, storage.Config{Bucket: "parameters"})
		assert.ErrorContains(t, err, "connection refused")
	})
}
