package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-book-keeper/internal/mock"
	"go.uber.org/mock/gomock"
)

func TestClientSyncJob_TriggersBackgroundSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockSync := mock.NewMockSyncOrchestrator(ctrl)

	triggered := make(chan struct{}, 10)
	mockSync.EXPECT().TriggerBackgroundSync().Do(func() {
		select {
		case triggered <- struct{}{}:
		default:
		}
	}).MinTimes(2)

	job := NewClientSyncJob(mockSync, 10*time.Millisecond)
	job.Start(context.Background())

	for range 2 {
		select {
		case <-triggered:
		case <-time.After(time.Second):
			t.Fatal("background sync was not triggered")
		}
	}
	job.Stop()
}

func TestClientSyncJob_StopBeforeStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockSync := mock.NewMockSyncOrchestrator(ctrl)

	job := NewClientSyncJob(mockSync, time.Hour)
	job.Stop()
}
