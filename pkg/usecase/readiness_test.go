package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/simplecounter/pkg/domain/model"
	"github.com/m-mizutani/simplecounter/pkg/usecase"
)

const testQueueURL = "http://localhost:4566/000000000000/counter-queue"

// mockQueueClient is a mock implementation of QueueClient
type mockQueueClient struct {
	getQueueAttributesFunc func(ctx context.Context, params *sqs.GetQueueAttributesInput) (*sqs.GetQueueAttributesOutput, error)

	mu    sync.Mutex
	calls []string
}

func (m *mockQueueClient) GetQueueAttributes(ctx context.Context, params *sqs.GetQueueAttributesInput, optFns ...func(*sqs.Options)) (*sqs.GetQueueAttributesOutput, error) {
	m.mu.Lock()
	m.calls = append(m.calls, aws.ToString(params.QueueUrl))
	m.mu.Unlock()

	if m.getQueueAttributesFunc != nil {
		return m.getQueueAttributesFunc(ctx, params)
	}
	return &sqs.GetQueueAttributesOutput{}, nil
}

// mockObjectStorageClient is a mock implementation of ObjectStorageClient
type mockObjectStorageClient struct {
	listBucketsFunc func(ctx context.Context) (*s3.ListBucketsOutput, error)
}

func (m *mockObjectStorageClient) ListBuckets(ctx context.Context, params *s3.ListBucketsInput, optFns ...func(*s3.Options)) (*s3.ListBucketsOutput, error) {
	if m.listBucketsFunc != nil {
		return m.listBucketsFunc(ctx)
	}
	return &s3.ListBucketsOutput{}, nil
}

func TestReadiness_Check(t *testing.T) {
	tests := []struct {
		name       string
		queueErr   error
		storage    *mockObjectStorageClient
		wantReady  bool
		wantChecks []string
		wantFailed string
	}{
		{
			name:       "queue only, reachable",
			wantReady:  true,
			wantChecks: []string{usecase.ProbeQueue},
		},
		{
			name:       "queue unreachable",
			queueErr:   errors.New("connection refused"),
			wantReady:  false,
			wantChecks: []string{usecase.ProbeQueue},
			wantFailed: usecase.ProbeQueue,
		},
		{
			name:       "queue and storage reachable",
			storage:    &mockObjectStorageClient{},
			wantReady:  true,
			wantChecks: []string{usecase.ProbeQueue, usecase.ProbeObjectStorage},
		},
		{
			name: "storage unreachable",
			storage: &mockObjectStorageClient{
				listBucketsFunc: func(ctx context.Context) (*s3.ListBucketsOutput, error) {
					return nil, errors.New("no such host")
				},
			},
			wantReady:  false,
			wantChecks: []string{usecase.ProbeQueue, usecase.ProbeObjectStorage},
			wantFailed: usecase.ProbeObjectStorage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			queue := &mockQueueClient{
				getQueueAttributesFunc: func(ctx context.Context, params *sqs.GetQueueAttributesInput) (*sqs.GetQueueAttributesOutput, error) {
					return &sqs.GetQueueAttributesOutput{}, tt.queueErr
				},
			}

			var opts []usecase.ReadinessOption
			if tt.storage != nil {
				opts = append(opts, usecase.WithObjectStorage(tt.storage, "http://localhost:4566"))
			}

			uc := usecase.NewReadiness(queue, testQueueURL, opts...)
			report := uc.Check(context.Background())

			gt.Equal(t, report.Ready(), tt.wantReady)
			gt.Equal(t, len(report.Checks), len(tt.wantChecks))
			for i, name := range tt.wantChecks {
				check := report.Checks[i]
				gt.Equal(t, check.Name, name)
				if name == tt.wantFailed {
					gt.False(t, check.OK)
					gt.True(t, check.Error != "")
				} else {
					gt.True(t, check.OK)
					gt.Equal(t, check.Error, "")
				}
			}

			gt.Equal(t, queue.calls, []string{testQueueURL})
			gt.Equal(t, report.Checks[0].Target, testQueueURL)
		})
	}
}

func TestReadiness_Check_Timeout(t *testing.T) {
	queue := &mockQueueClient{
		getQueueAttributesFunc: func(ctx context.Context, params *sqs.GetQueueAttributesInput) (*sqs.GetQueueAttributesOutput, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}

	uc := usecase.NewReadiness(queue, testQueueURL, usecase.WithProbeTimeout(10*time.Millisecond))

	start := time.Now()
	report := uc.Check(context.Background())

	gt.False(t, report.Ready())
	gt.Equal(t, report.Status, model.ReadinessStatusUnavailable)
	gt.String(t, report.Checks[0].Error).Contains("deadline exceeded")
	gt.True(t, time.Since(start) < time.Second)
}

func TestReadiness_Check_NilQueue(t *testing.T) {
	uc := usecase.NewReadiness(nil, testQueueURL)
	report := uc.Check(context.Background())
	gt.False(t, report.Ready())
}
