package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/VinitO1/Food-Order-Catering/entity"
	"github.com/VinitO1/Food-Order-Catering/pkg/apperr"
)

func TestWatchStatusReflectsWorkerTransition(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService(db)
	order := placeTestOrder(t, svc, 1)
	worker := newWorker(svc)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	snapshots, err := svc.WatchStatus(ctx, 1, order.ID, 10*time.Millisecond, 200)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	first := <-snapshots
	if first.Status != entity.OrderStatusPending {
		t.Fatalf("first snapshot = %q, want pending", first.Status)
	}

	// advance pending->approved behind the watcher's back
	if err := worker.RunOnce(time.Now().Add(time.Minute)); err != nil {
		t.Fatalf("sweep: %v", err)
	}

	select {
	case snap, ok := <-snapshots:
		if !ok {
			t.Fatal("watch closed before reporting the transition")
		}
		if snap.Status != entity.OrderStatusApproved {
			t.Fatalf("snapshot = %q, want approved", snap.Status)
		}
	case <-ctx.Done():
		t.Fatal("timed out waiting for status change")
	}
}

func TestWatchStatusUnknownOrder(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService(db)

	_, err := svc.WatchStatus(context.Background(), 1, 424242, time.Millisecond, 1)
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestWatchStatusStopsAtTerminal(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService(db)
	order := placeTestOrder(t, svc, 1)

	if err := svc.Cancel(1, order.ID); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	snapshots, err := svc.WatchStatus(ctx, 1, order.ID, 5*time.Millisecond, 100)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	first := <-snapshots
	if first.Status != entity.OrderStatusCancelled {
		t.Fatalf("first snapshot = %q, want cancelled", first.Status)
	}
	if _, ok := <-snapshots; ok {
		t.Error("watch kept polling a terminal order")
	}
}
