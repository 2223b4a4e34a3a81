package revision

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/question-pipeline/internal/domain"
	"sync"
)

var _ itemRepo = &itemRepoMock{}

type itemRepoMock struct {
	GetByIDFunc     func(ctx context.Context, id uuid.UUID) (domain.Item, error)
	GetForShareFunc func(ctx context.Context, id uuid.UUID) (domain.Item, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetForShare []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID     sync.RWMutex
	lockGetForShare sync.RWMutex
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

func (mock *itemRepoMock) GetForShare(ctx context.Context, id uuid.UUID) (domain.Item, error) {
	if mock.GetForShareFunc == nil {
		panic("itemRepoMock.GetForShareFunc: method is nil but itemRepo.GetForShare was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetForShare.Lock()
	mock.calls.GetForShare = append(mock.calls.GetForShare, callInfo)
	mock.lockGetForShare.Unlock()
	return mock.GetForShareFunc(ctx, id)
}

func (mock *itemRepoMock) GetForShareCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetForShare.RLock()
	calls := mock.calls.GetForShare
	mock.lockGetForShare.RUnlock()
	return calls
}

var _ noteRepo = &noteRepoMock{}

type noteRepoMock struct {
	CreateFunc           func(ctx context.Context, n domain.RevisionNote) (domain.RevisionNote, error)
	GetByIDFunc          func(ctx context.Context, itemID uuid.UUID, noteID uuid.UUID) (domain.RevisionNote, error)
	ListFunc             func(ctx context.Context, itemID uuid.UUID, f domain.NoteFilter) ([]domain.RevisionNote, error)
	DeleteFunc           func(ctx context.Context, itemID uuid.UUID, noteID uuid.UUID) error
	DeleteShapeNotesFunc func(ctx context.Context, itemID uuid.UUID) (int64, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			N   domain.RevisionNote
		}
		GetByID []struct {
			Ctx    context.Context
			ItemID uuid.UUID
			NoteID uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			ItemID uuid.UUID
			F      domain.NoteFilter
		}
		Delete []struct {
			Ctx    context.Context
			ItemID uuid.UUID
			NoteID uuid.UUID
		}
		DeleteShapeNotes []struct {
			Ctx    context.Context
			ItemID uuid.UUID
		}
	}
	lockCreate           sync.RWMutex
	lockGetByID          sync.RWMutex
	lockList             sync.RWMutex
	lockDelete           sync.RWMutex
	lockDeleteShapeNotes sync.RWMutex
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

func (mock *noteRepoMock) GetByID(ctx context.Context, itemID uuid.UUID, noteID uuid.UUID) (domain.RevisionNote, error) {
	if mock.GetByIDFunc == nil {
		panic("noteRepoMock.GetByIDFunc: method is nil but noteRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ItemID uuid.UUID
		NoteID uuid.UUID
	}{Ctx: ctx, ItemID: itemID, NoteID: noteID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, itemID, noteID)
}

func (mock *noteRepoMock) GetByIDCalls() []struct {
	Ctx    context.Context
	ItemID uuid.UUID
	NoteID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *noteRepoMock) List(ctx context.Context, itemID uuid.UUID, f domain.NoteFilter) ([]domain.RevisionNote, error) {
	if mock.ListFunc == nil {
		panic("noteRepoMock.ListFunc: method is nil but noteRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ItemID uuid.UUID
		F      domain.NoteFilter
	}{Ctx: ctx, ItemID: itemID, F: f}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, itemID, f)
}

func (mock *noteRepoMock) ListCalls() []struct {
	Ctx    context.Context
	ItemID uuid.UUID
	F      domain.NoteFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *noteRepoMock) Delete(ctx context.Context, itemID uuid.UUID, noteID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("noteRepoMock.DeleteFunc: method is nil but noteRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ItemID uuid.UUID
		NoteID uuid.UUID
	}{Ctx: ctx, ItemID: itemID, NoteID: noteID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, itemID, noteID)
}

func (mock *noteRepoMock) DeleteCalls() []struct {
	Ctx    context.Context
	ItemID uuid.UUID
	NoteID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *noteRepoMock) DeleteShapeNotes(ctx context.Context, itemID uuid.UUID) (int64, error) {
	if mock.DeleteShapeNotesFunc == nil {
		panic("noteRepoMock.DeleteShapeNotesFunc: method is nil but noteRepo.DeleteShapeNotes was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ItemID uuid.UUID
	}{Ctx: ctx, ItemID: itemID}
	mock.lockDeleteShapeNotes.Lock()
	mock.calls.DeleteShapeNotes = append(mock.calls.DeleteShapeNotes, callInfo)
	mock.lockDeleteShapeNotes.Unlock()
	return mock.DeleteShapeNotesFunc(ctx, itemID)
}

func (mock *noteRepoMock) DeleteShapeNotesCalls() []struct {
	Ctx    context.Context
	ItemID uuid.UUID
} {
	mock.lockDeleteShapeNotes.RLock()
	calls := mock.calls.DeleteShapeNotes
	mock.lockDeleteShapeNotes.RUnlock()
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
