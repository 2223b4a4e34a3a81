package activity

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/question-pipeline/internal/domain"
	"sync"
)

var _ itemRepo = &itemRepoMock{}

type itemRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (domain.Item, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *itemRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.Item, error) {
	if mock.GetByIDFunc == nil {
		panic("itemRepoMock.GetByIDFunc: method is nil but itemRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *itemRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

var _ activityRepo = &activityRepoMock{}

type activityRepoMock struct {
	ListByItemFunc func(ctx context.Context, itemID uuid.UUID) ([]domain.ActivityEntry, error)

	calls struct {
		ListByItem []struct {
			Ctx    context.Context
			ItemID uuid.UUID
		}
	}
	lockListByItem sync.RWMutex
}

func (mock *activityRepoMock) ListByItem(ctx context.Context, itemID uuid.UUID) ([]domain.ActivityEntry, error) {
	if mock.ListByItemFunc == nil {
		panic("activityRepoMock.ListByItemFunc: method is nil but activityRepo.ListByItem was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ItemID uuid.UUID
	}{Ctx: ctx, ItemID: itemID}
	mock.lockListByItem.Lock()
	mock.calls.ListByItem = append(mock.calls.ListByItem, callInfo)
	mock.lockListByItem.Unlock()
	return mock.ListByItemFunc(ctx, itemID)
}

func (mock *activityRepoMock) ListByItemCalls() []struct {
	Ctx    context.Context
	ItemID uuid.UUID
} {
	mock.lockListByItem.RLock()
	calls := mock.calls.ListByItem
	mock.lockListByItem.RUnlock()
	return calls
}
