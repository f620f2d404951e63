package cache

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Verify mockS3Client implements S3Client interface
var _ S3Client = (*mockS3Client)(nil)

type mockS3Client struct {
	getObjectFunc    func(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	putObjectFunc    func(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	deleteObjectFunc func(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

func (m *mockS3Client) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	if m.getObjectFunc != nil {
		return m.getObjectFunc(ctx, params, optFns...)
	}
	return nil, &types.NoSuchKey{}
}

func (m *mockS3Client) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if m.putObjectFunc != nil {
		return m.putObjectFunc(ctx, params, optFns...)
	}
	return &s3.PutObjectOutput{}, nil
}

func (m *mockS3Client) DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	if m.deleteObjectFunc != nil {
		return m.deleteObjectFunc(ctx, params, optFns...)
	}
	return &s3.DeleteObjectOutput{}, nil
}

// newBucketMock behaves like a single in-memory bucket
func newBucketMock() *mockS3Client {
	var mu sync.Mutex
	objects := make(map[string][]byte)

	return &mockS3Client{
		getObjectFunc: func(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
			mu.Lock()
			defer mu.Unlock()
			data, ok := objects[aws.ToString(params.Key)]
			if !ok {
				return nil, &types.NoSuchKey{}
			}
			return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data))}, nil
		},
		putObjectFunc: func(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
			data, err := io.ReadAll(params.Body)
			if err != nil {
				return nil, err
			}
			mu.Lock()
			defer mu.Unlock()
			objects[aws.ToString(params.Key)] = data
			return &s3.PutObjectOutput{}, nil
		},
		deleteObjectFunc: func(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
			mu.Lock()
			defer mu.Unlock()
			delete(objects, aws.ToString(params.Key))
			return &s3.DeleteObjectOutput{}, nil
		},
	}
}

func TestS3Store(t *testing.T) {
	store, err := NewS3Store(newBucketMock(), "test-bucket")
	require.NoError(t, err)

	exerciseStore(t, store)
}

func TestS3StoreBucketValidation(t *testing.T) {
	_, err := NewS3Store(&mockS3Client{}, "")
	assert.ErrorContains(t, err, "empty bucket name")
}

func TestS3StoreObjectKeyHandling(t *testing.T) {
	mockS3 := &mockS3Client{
		getObjectFunc: func(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
			assert.Equal(t, "test-bucket", aws.ToString(params.Bucket))
			assert.Equal(t, "cache/stations.json", aws.ToString(params.Key))
			return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader([]byte("{}")))}, nil
		},
		putObjectFunc: func(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
			assert.Equal(t, "cache/stations.json", aws.ToString(params.Key))
			assert.Equal(t, "application/json", aws.ToString(params.ContentType))
			return &s3.PutObjectOutput{}, nil
		},
	}

	store, err := NewS3Store(mockS3, "test-bucket")
	require.NoError(t, err)

	_, err = store.Get(context.Background(), "stations")
	require.NoError(t, err)
	require.NoError(t, store.Put(context.Background(), "stations", []byte("{}")))
}

func TestS3StoreErrors(t *testing.T) {
	boom := errors.New("access denied")
	mockS3 := &mockS3Client{
		getObjectFunc: func(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
			return nil, boom
		},
		putObjectFunc: func(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
			return nil, &types.NoSuchBucket{}
		},
	}

	store, err := NewS3Store(mockS3, "test-bucket")
	require.NoError(t, err)

	_, err = store.Get(context.Background(), "stations")
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrNotFound)

	err = store.Put(context.Background(), "stations", []byte("{}"))
	assert.ErrorContains(t, err, "saving to S3")
}

func TestStationCacheOverS3(t *testing.T) {
	store, err := NewS3Store(newBucketMock(), "test-bucket")
	require.NoError(t, err)

	c := NewStationCache(store, nil)
	ctx := context.Background()

	Write(ctx, c, "stations", createTestStations())
	got, ok := Read[[]stationFixture](ctx, c, "stations")
	require.True(t, ok)
	assert.Len(t, got, 2)
	assert.Equal(t, "Besiktas Sarj", got[0].Name)
}

type stationFixture struct {
	Name string `json:"name"`
}
