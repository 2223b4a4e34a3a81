package workflow

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/question-pipeline/internal/domain"
	"sync"
	"time"
)

var _ itemRepo = &itemRepoMock{}

type itemRepoMock struct {
	CreateFunc          func(ctx context.Context, it domain.Item) (domain.Item, error)
	GetByIDFunc         func(ctx context.Context, id uuid.UUID) (domain.Item, error)
	ListFunc            func(ctx context.Context, f domain.ItemFilter) ([]domain.Item, error)
	GetForUpdateFunc    func(ctx context.Context, id uuid.UUID) (domain.Item, error)
	UpdateStateFunc     func(ctx context.Context, it domain.Item, expected domain.Status) (domain.Item, error)
	ListStaleClaimsFunc func(ctx context.Context, cutoff time.Time, limit uint64) ([]domain.Item, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			It  domain.Item
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx context.Context
			F   domain.ItemFilter
		}
		GetForUpdate []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		UpdateState []struct {
			Ctx      context.Context
			It       domain.Item
			Expected domain.Status
		}
		ListStaleClaims []struct {
			Ctx    context.Context
			Cutoff time.Time
			Limit  uint64
		}
	}
	lockCreate          sync.RWMutex
	lockGetByID         sync.RWMutex
	lockList            sync.RWMutex
	lockGetForUpdate    sync.RWMutex
	lockUpdateState     sync.RWMutex
	lockListStaleClaims sync.RWMutex
}

func (mock *itemRepoMock) Create(ctx context.Context, it domain.Item) (domain.Item, error) {
	if mock.CreateFunc == nil {
		panic("itemRepoMock.CreateFunc: method is nil but itemRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		It  domain.Item
	}{Ctx: ctx, It: it}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, it)
}

func (mock *itemRepoMock) CreateCalls() []struct {
	Ctx context.Context
	It  domain.Item
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
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

func (mock *itemRepoMock) List(ctx context.Context, f domain.ItemFilter) ([]domain.Item, error) {
	if mock.ListFunc == nil {
		panic("itemRepoMock.ListFunc: method is nil but itemRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.ItemFilter
	}{Ctx: ctx, F: f}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *itemRepoMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.ItemFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *itemRepoMock) GetForUpdate(ctx context.Context, id uuid.UUID) (domain.Item, error) {
	if mock.GetForUpdateFunc == nil {
		panic("itemRepoMock.GetForUpdateFunc: method is nil but itemRepo.GetForUpdate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetForUpdate.Lock()
	mock.calls.GetForUpdate = append(mock.calls.GetForUpdate, callInfo)
	mock.lockGetForUpdate.Unlock()
	return mock.GetForUpdateFunc(ctx, id)
}

func (mock *itemRepoMock) GetForUpdateCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetForUpdate.RLock()
	calls := mock.calls.GetForUpdate
	mock.lockGetForUpdate.RUnlock()
	return calls
}

func (mock *itemRepoMock) UpdateState(ctx context.Context, it domain.Item, expected domain.Status) (domain.Item, error) {
	if mock.UpdateStateFunc == nil {
		panic("itemRepoMock.UpdateStateFunc: method is nil but itemRepo.UpdateState was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		It       domain.Item
		Expected domain.Status
	}{Ctx: ctx, It: it, Expected: expected}
	mock.lockUpdateState.Lock()
	mock.calls.UpdateState = append(mock.calls.UpdateState, callInfo)
	mock.lockUpdateState.Unlock()
	return mock.UpdateStateFunc(ctx, it, expected)
}

func (mock *itemRepoMock) UpdateStateCalls() []struct {
	Ctx      context.Context
	It       domain.Item
	Expected domain.Status
} {
	mock.lockUpdateState.RLock()
	calls := mock.calls.UpdateState
	mock.lockUpdateState.RUnlock()
	return calls
}

func (mock *itemRepoMock) ListStaleClaims(ctx context.Context, cutoff time.Time, limit uint64) ([]domain.Item, error) {
	if mock.ListStaleClaimsFunc == nil {
		panic("itemRepoMock.ListStaleClaimsFunc: method is nil but itemRepo.ListStaleClaims was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Cutoff time.Time
		Limit  uint64
	}{Ctx: ctx, Cutoff: cutoff, Limit: limit}
	mock.lockListStaleClaims.Lock()
	mock.calls.ListStaleClaims = append(mock.calls.ListStaleClaims, callInfo)
	mock.lockListStaleClaims.Unlock()
	return mock.ListStaleClaimsFunc(ctx, cutoff, limit)
}

func (mock *itemRepoMock) ListStaleClaimsCalls() []struct {
	Ctx    context.Context
	Cutoff time.Time
	Limit  uint64
} {
	mock.lockListStaleClaims.RLock()
	calls := mock.calls.ListStaleClaims
	mock.lockListStaleClaims.RUnlock()
	return calls
}

var _ noteRepo = &noteRepoMock{}

type noteRepoMock struct {
	CreateFunc       func(ctx context.Context, n domain.RevisionNote) (domain.RevisionNote, error)
	CountByTrackFunc func(ctx context.Context, itemID uuid.UUID, track domain.Track) (int, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			N   domain.RevisionNote
		}
		CountByTrack []struct {
			Ctx    context.Context
			ItemID uuid.UUID
			Track  domain.Track
		}
	}
	lockCreate       sync.RWMutex
	lockCountByTrack sync.RWMutex
}

func (mock *noteRepoMock) Create(ctx context.Context, n domain.RevisionNote) (domain.RevisionNote, error) {
	if mock.CreateFunc == nil {
		panic("noteRepoMock.CreateFunc: method is nil but noteRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		N   domain.RevisionNote
	}{Ctx: ctx, N: n}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, n)
}

func (mock *noteRepoMock) CreateCalls() []struct {
	Ctx context.Context
	N   domain.RevisionNote
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *noteRepoMock) CountByTrack(ctx context.Context, itemID uuid.UUID, track domain.Track) (int, error) {
	if mock.CountByTrackFunc == nil {
		panic("noteRepoMock.CountByTrackFunc: method is nil but noteRepo.CountByTrack was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ItemID uuid.UUID
		Track  domain.Track
	}{Ctx: ctx, ItemID: itemID, Track: track}
	mock.lockCountByTrack.Lock()
	mock.calls.CountByTrack = append(mock.calls.CountByTrack, callInfo)
	mock.lockCountByTrack.Unlock()
	return mock.CountByTrackFunc(ctx, itemID, track)
}

func (mock *noteRepoMock) CountByTrackCalls() []struct {
	Ctx    context.Context
	ItemID uuid.UUID
	Track  domain.Track
} {
	mock.lockCountByTrack.RLock()
	calls := mock.calls.CountByTrack
	mock.lockCountByTrack.RUnlock()
	return calls
}

var _ artifactNoteClearer = &artifactNoteClearerMock{}

type artifactNoteClearerMock struct {
	ClearAllForArtifactChangeFunc func(ctx context.Context, itemID uuid.UUID, actorID uuid.UUID) (int64, error)

	calls struct {
		ClearAllForArtifactChange []struct {
			Ctx     context.Context
			ItemID  uuid.UUID
			ActorID uuid.UUID
		}
	}
	lockClearAllForArtifactChange sync.RWMutex
}

func (mock *artifactNoteClearerMock) ClearAllForArtifactChange(ctx context.Context, itemID uuid.UUID, actorID uuid.UUID) (int64, error) {
	if mock.ClearAllForArtifactChangeFunc == nil {
		panic("artifactNoteClearerMock.ClearAllForArtifactChangeFunc: method is nil but artifactNoteClearer.ClearAllForArtifactChange was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ItemID  uuid.UUID
		ActorID uuid.UUID
	}{Ctx: ctx, ItemID: itemID, ActorID: actorID}
	mock.lockClearAllForArtifactChange.Lock()
	mock.calls.ClearAllForArtifactChange = append(mock.calls.ClearAllForArtifactChange, callInfo)
	mock.lockClearAllForArtifactChange.Unlock()
	return mock.ClearAllForArtifactChangeFunc(ctx, itemID, actorID)
}

func (mock *artifactNoteClearerMock) ClearAllForArtifactChangeCalls() []struct {
	Ctx     context.Context
	ItemID  uuid.UUID
	ActorID uuid.UUID
} {
	mock.lockClearAllForArtifactChange.RLock()
	calls := mock.calls.ClearAllForArtifactChange
	mock.lockClearAllForArtifactChange.RUnlock()
	return calls
}

var _ activityLogger = &activityLoggerMock{}

type activityLoggerMock struct {
	LogFunc func(ctx context.Context, e domain.ActivityEntry) error

	calls struct {
		Log []struct {
			Ctx context.Context
			E   domain.ActivityEntry
		}
	}
	lockLog sync.RWMutex
}

func (mock *activityLoggerMock) Log(ctx context.Context, e domain.ActivityEntry) error {
	if mock.LogFunc == nil {
		panic("activityLoggerMock.LogFunc: method is nil but activityLogger.Log was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   domain.ActivityEntry
	}{Ctx: ctx, E: e}
	mock.lockLog.Lock()
	mock.calls.Log = append(mock.calls.Log, callInfo)
	mock.lockLog.Unlock()
	return mock.LogFunc(ctx, e)
}

func (mock *activityLoggerMock) LogCalls() []struct {
	Ctx context.Context
	E   domain.ActivityEntry
} {
	mock.lockLog.RLock()
	calls := mock.calls.Log
	mock.lockLog.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{Ctx: ctx, Fn: fn}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
