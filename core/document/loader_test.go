package document_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"param-host/core/document"
	"param-host/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestLoader_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("CachesWithinTTL", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("GetObject", ctx, "parameters", "rigs/main.yaml", minio.GetObjectOptions{}).
			Return(mocks.Body(yamlDoc), nil).Once()
		m.On("GetObject", ctx, "parameters", "rigs/main.yaml", minio.GetObjectOptions{}).
			Return(mocks.Body(jsonDoc), nil).Once()
		l := document.NewLoader(m, "parameters", time.Minute, nil)

		first, err := l.Load(ctx, "rigs/main.yaml")
		require.NoError(t, err)
		second, err := l.Load(ctx, "rigs/main.yaml")
		require.NoError(t, err)

		assert.Same(t, first, second)
		m.AssertNumberOfCalls(t, "GetObject", 1)

		l.Invalidate("rigs/main.yaml")
		third, err := l.Load(ctx, "rigs/main.yaml")
		require.NoError(t, err)
		assert.NotSame(t, first, third)
		m.AssertNumberOfCalls(t, "GetObject", 2)
	})

	t.Run("NoTTL", func(t *testing.T) {
		m := new(mocks.Client)
		for range 2 {
			m.On("GetObject", ctx, "parameters", "main.json", minio.GetObjectOptions{}).
				Return(mocks.Body(jsonDoc), nil).Once()
		}
		l := document.NewLoader(m, "parameters", 0, nil)

		_, err := l.Load(ctx, "main.json")
		require.NoError(t, err)
		_, err = l.Load(ctx, "main.json")
		require.NoError(t, err)
		m.AssertNumberOfCalls(t, "GetObject", 2)
	})

	t.Run("FetchError", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("GetObject", ctx, "parameters", "main.toml", minio.GetObjectOptions{}).
			Return(nil, errors.New("no such key"))
		l := document.NewLoader(m, "parameters", time.Minute, nil)

		_, err := l.Load(ctx, "main.toml")
		assert.ErrorContains(t, err, "no such key")
	})

	t.Run("UnknownExtension", func(t *testing.T) {
		m := new(mocks.Client)
		l := document.NewLoader(m, "parameters", time.Minute, nil)

		_, err := l.Load(ctx, "main.txt")
		assert.ErrorIs(t, err, document.ErrUnknownFormat)
		m.AssertNotCalled(t, "GetObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestLoader_List(t *testing.T) {
	ctx := context.Background()
	m := new(mocks.Client)
	m.On("ListObjects", ctx, "parameters", minio.ListObjectsOptions{Prefix: "rigs/", Recursive: true}).
		Return(mocks.Objects(
			minio.ObjectInfo{Key: "rigs/b.toml"},
			minio.ObjectInfo{Key: "rigs/readme.md"},
			minio.ObjectInfo{Key: "rigs/a.yaml"},
		))
	l := document.NewLoader(m, "parameters", 0, nil)

	keys, err := l.List(ctx, "rigs/")
	require.NoError(t, err)
	assert.Equal(t, []string{"rigs/a.yaml", "rigs/b.toml"}, keys)

	t.Run("ListError", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("ListObjects", ctx, "parameters", mock.Anything).
			Return(mocks.Objects(minio.ObjectInfo{Err: errors.New("denied")}))
		l := document.NewLoader(m, "parameters", 0, nil)

		_, err := l.List(ctx, "")
		assert.ErrorContains(t, err, "denied")
	})
}

func TestLoader_ConcurrentLoadsShareOneFetch(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx := context.Background()
	m := new(mocks.Client)
	m.On("GetObject", ctx, "parameters", "rigs/main.yaml", minio.GetObjectOptions{}).
		Return(mocks.Body(yamlDoc), nil).
		WaitUntil(time.After(50 * time.Millisecond)).
		Once()
	l := document.NewLoader(m, "parameters", time.Minute, nil)

	const callers = 8
	docs := make([]*document.Document, callers)
	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			doc, err := l.Load(ctx, "rigs/main.yaml")
			assert.NoError(t, err)
			docs[i] = doc
		}()
	}
	wg.Wait()

	m.AssertNumberOfCalls(t, "GetObject", 1)
	for _, doc := range docs[1:] {
		assert.Same(t, docs[0], doc)
	}
}
