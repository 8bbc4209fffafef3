package runtime

import (
	"context"
	"media-lab/domain"
	"media-lab/mocks"
	"media-lab/repositories"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupOrchestrator(t *testing.T, ctrl *gomock.Controller, transport *mocks.MockITransport) *Orchestrator {
	source := repositories.NewMessageStore(nil, silentLogger())
	return NewOrchestrator(
		silentLogger(),
		mocks.NewMockISupervisor(ctrl),
		NewTransferRegistry(),
		transport,
		setupPartStore(t),
		source,
		source,
		source,
		4, 8, 0,
	)
}

func TestOrchestrator_RejectsInvalidDownloadRequest(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// The transport mock has no expectations; an invalid request must never
	// reach it.
	o := setupOrchestrator(t, ctrl, mocks.NewMockITransport(ctrl))

	_, err := o.Download(context.Background(), domain.DownloadRequest{
		ID: 42, Size: 0, PartSize: 512, DCID: 2,
	})
	req.Error(err)

	_, err = o.Download(context.Background(), domain.DownloadRequest{
		ID: 42, Size: 1000, PartSize: 0, DCID: 2,
	})
	req.Error(err)

	req.Empty(o.DownloadingFiles())
}

func TestOrchestrator_RejectsInvalidStreamRequest(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	o := setupOrchestrator(t, ctrl, mocks.NewMockITransport(ctrl))

	_, err := o.LoadStreamPart(context.Background(), domain.StreamRequest{
		ID: 42, Size: 1000, PartSize: 512, OffsetSize: -1,
	})
	req.Error(err)
	req.Empty(o.StreamingFiles())
}

func TestOrchestrator_StartSupervisesEveryLane(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	started := make(chan struct{})
	supervisor := mocks.NewMockISupervisor(ctrl)
	supervisor.EXPECT().Add(gomock.Any()).Times(4)
	supervisor.EXPECT().Run(gomock.Any()).Do(func(ctx context.Context) {
		close(started)
		<-ctx.Done()
	}).Times(1)
	supervisor.EXPECT().Stop().Times(1)

	source := repositories.NewMessageStore(nil, silentLogger())
	o := NewOrchestrator(
		silentLogger(), supervisor, NewTransferRegistry(),
		mocks.NewMockITransport(ctrl), setupPartStore(t),
		source, source, source, 4, 8, 0,
	)

	ctx, cancel := context.WithCancel(context.Background())
	o.Start(ctx)
	<-started
	o.Stop()
	cancel()
}
