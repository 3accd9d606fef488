package usecase

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	sqstypes "github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/simplecounter/pkg/domain/interfaces"
	"github.com/m-mizutani/simplecounter/pkg/domain/model"
	"golang.org/x/sync/errgroup"
)

// Names reported in model.ProbeResult for each connectivity check
const (
	ProbeQueue         = "queue"
	ProbeObjectStorage = "object_storage"

	defaultProbeTimeout = 5 * time.Second
)

type readinessUseCase struct {
	queue    interfaces.QueueClient
	queueURL string

	storage         interfaces.ObjectStorageClient
	storageEndpoint string

	timeout time.Duration
}

// ReadinessOption configures the readiness use case
type ReadinessOption func(*readinessUseCase)

// WithObjectStorage adds an object storage probe. endpoint is only used as the
// reported target.
func WithObjectStorage(client interfaces.ObjectStorageClient, endpoint string) ReadinessOption {
	return func(uc *readinessUseCase) {
		uc.storage = client
		uc.storageEndpoint = endpoint
	}
}

// WithProbeTimeout bounds each probe
func WithProbeTimeout(d time.Duration) ReadinessOption {
	return func(uc *readinessUseCase) {
		uc.timeout = d
	}
}

// NewReadiness creates a new instance of ReadinessUseCase
func NewReadiness(queue interfaces.QueueClient, queueURL string, opts ...ReadinessOption) interfaces.ReadinessUseCase {
	uc := &readinessUseCase{
		queue:    queue,
		queueURL: queueURL,
		timeout:  defaultProbeTimeout,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

type probe struct {
	name   string
	target string
	run    func(ctx context.Context) error
}

// Check runs every configured probe concurrently. It does not touch queue messages.
func (uc *readinessUseCase) Check(ctx context.Context) *model.ReadinessReport {
	logger := ctxlog.From(ctx)

	probes := []probe{
		{name: ProbeQueue, target: uc.queueURL, run: uc.probeQueue},
	}
	if uc.storage != nil {
		probes = append(probes, probe{name: ProbeObjectStorage, target: uc.storageEndpoint, run: uc.probeObjectStorage})
	}

	// Indexed writes keep the report order stable regardless of completion order
	results := make([]model.ProbeResult, len(probes))
	var eg errgroup.Group
	for i, p := range probes {
		eg.Go(func() error {
			probeCtx, cancel := context.WithTimeout(ctx, uc.timeout)
			defer cancel()

			result := model.ProbeResult{Name: p.name, Target: p.target, OK: true}
			if err := p.run(probeCtx); err != nil {
				logger.Warn("Readiness probe failed",
					"probe", p.name,
					"target", p.target,
					"error", err,
				)
				result.OK = false
				result.Error = err.Error()
			}
			results[i] = result
			return nil
		})
	}
	_ = eg.Wait()

	return model.NewReadinessReport(results)
}

func (uc *readinessUseCase) probeQueue(ctx context.Context) error {
	if uc.queue == nil {
		return goerr.New("queue client is not configured")
	}

	_, err := uc.queue.GetQueueAttributes(ctx, &sqs.GetQueueAttributesInput{
		QueueUrl: aws.String(uc.queueURL),
		AttributeNames: []sqstypes.QueueAttributeName{
			sqstypes.QueueAttributeNameApproximateNumberOfMessages,
		},
	})
	if err != nil {
		return goerr.Wrap(err, "failed to get queue attributes", goerr.V("queue_url", uc.queueURL))
	}
	return nil
}

func (uc *readinessUseCase) probeObjectStorage(ctx context.Context) error {
	if _, err := uc.storage.ListBuckets(ctx, &s3.ListBucketsInput{}); err != nil {
		return goerr.Wrap(err, "failed to list buckets", goerr.V("endpoint", uc.storageEndpoint))
	}
	return nil
}
