package labels

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/douhashi/gh-labels/internal/github"
	"github.com/stretchr/testify/mock"
)

// MockLabelService is a mock implementation of LabelService
type MockLabelService struct {
	mock.Mock
}

func (m *MockLabelService) ListLabels(ctx context.Context, repo github.Repo) ([]github.Label, error) {
	args := m.Called(ctx, repo)
	labels, _ := args.Get(0).([]github.Label)
	return labels, args.Error(1)
}

func (m *MockLabelService) DeleteLabel(ctx context.Context, repo github.Repo, name string) error {
	args := m.Called(ctx, repo, name)
	return args.Error(0)
}

func (m *MockLabelService) CreateLabel(ctx context.Context, repo github.Repo, label github.Label) error {
	args := m.Called(ctx, repo, label)
	return args.Error(0)
}

var testRepo = github.Repo{Owner: "octocat", Name: "hello-world"}

func remoteErr(status int) error {
	return &github.RemoteError{Op: "test", StatusCode: status, Message: http.StatusText(status)}
}

func networkErr() error {
	return &github.NetworkError{Op: "test", Err: fmt.Errorf("dial tcp: connection refused")}
}

func labelNamed(name string) interface{} {
	return mock.MatchedBy(func(l github.Label) bool { return l.Name == name })
}

func makeLabels(n int) []github.Label {
	out := make([]github.Label, n)
	for i := range out {
		out[i] = github.Label{Name: fmt.Sprintf("label-%02d", i), Color: "ffffff"}
	}
	return out
}

// noDelayBatcher は待ち時間なしのBatcherを返す
func noDelayBatcher() *Batcher {
	return &Batcher{
		Size:  DefaultBatchSize,
		Delay: DefaultBatchDelay,
		sleep: func(ctx context.Context, d time.Duration) error { return ctx.Err() },
	}
}
