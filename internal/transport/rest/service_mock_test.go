package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/question-pipeline/internal/domain"
	"github.com/heartmarshall/question-pipeline/internal/service/revision"
	"github.com/heartmarshall/question-pipeline/internal/service/workflow"
	"sync"
)

var _ workflowService = &workflowServiceMock{}

type workflowServiceMock struct {
	CreateItemFunc     func(ctx context.Context, input workflow.CreateItemInput) (domain.Item, error)
	GetItemFunc        func(ctx context.Context, itemID uuid.UUID) (domain.Item, error)
	ListItemsFunc      func(ctx context.Context, filter domain.ItemFilter) ([]domain.Item, error)
	TransitionFunc     func(ctx context.Context, input workflow.TransitionInput) (domain.Item, error)
	ClaimFunc          func(ctx context.Context, itemID uuid.UUID) (domain.ClaimToken, error)
	ReleaseFunc        func(ctx context.Context, itemID uuid.UUID) (domain.Item, error)
	CanCompleteFunc    func(ctx context.Context, itemID uuid.UUID) (bool, error)
	EditContentFunc    func(ctx context.Context, input workflow.EditInput) (domain.Item, error)
	AttachArtifactFunc func(ctx context.Context, input workflow.AttachArtifactInput) (domain.Item, error)

	calls struct {
		CreateItem []struct {
			Ctx   context.Context
			Input workflow.CreateItemInput
		}
		GetItem []struct {
			Ctx    context.Context
			ItemID uuid.UUID
		}
		ListItems []struct {
			Ctx    context.Context
			Filter domain.ItemFilter
		}
		Transition []struct {
			Ctx   context.Context
			Input workflow.TransitionInput
		}
		Claim []struct {
			Ctx    context.Context
			ItemID uuid.UUID
		}
		Release []struct {
			Ctx    context.Context
			ItemID uuid.UUID
		}
		CanComplete []struct {
			Ctx    context.Context
			ItemID uuid.UUID
		}
		EditContent []struct {
			Ctx   context.Context
			Input workflow.EditInput
		}
		AttachArtifact []struct {
			Ctx   context.Context
			Input workflow.AttachArtifactInput
		}
	}
	lockCreateItem     sync.RWMutex
	lockGetItem        sync.RWMutex
	lockListItems      sync.RWMutex
	lockTransition     sync.RWMutex
	lockClaim          sync.RWMutex
	lockRelease        sync.RWMutex
	lockCanComplete    sync.RWMutex
	lockEditContent    sync.RWMutex
	lockAttachArtifact sync.RWMutex
}

func (mock *workflowServiceMock) CreateItem(ctx context.Context, input workflow.CreateItemInput) (domain.Item, error) {
	if mock.CreateItemFunc == nil {
		panic("workflowServiceMock.CreateItemFunc: method is nil but workflowService.CreateItem was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input workflow.CreateItemInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateItem.Lock()
	mock.calls.CreateItem = append(mock.calls.CreateItem, callInfo)
	mock.lockCreateItem.Unlock()
	return mock.CreateItemFunc(ctx, input)
}

func (mock *workflowServiceMock) CreateItemCalls() []struct {
	Ctx   context.Context
	Input workflow.CreateItemInput
} {
	mock.lockCreateItem.RLock()
	calls := mock.calls.CreateItem
	mock.lockCreateItem.RUnlock()
	return calls
}

func (mock *workflowServiceMock) GetItem(ctx context.Context, itemID uuid.UUID) (domain.Item, error) {
	if mock.GetItemFunc == nil {
		panic("workflowServiceMock.GetItemFunc: method is nil but workflowService.GetItem was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ItemID uuid.UUID
	}{Ctx: ctx, ItemID: itemID}
	mock.lockGetItem.Lock()
	mock.calls.GetItem = append(mock.calls.GetItem, callInfo)
	mock.lockGetItem.Unlock()
	return mock.GetItemFunc(ctx, itemID)
}

func (mock *workflowServiceMock) GetItemCalls() []struct {
	Ctx    context.Context
	ItemID uuid.UUID
} {
	mock.lockGetItem.RLock()
	calls := mock.calls.GetItem
	mock.lockGetItem.RUnlock()
	return calls
}

func (mock *workflowServiceMock) ListItems(ctx context.Context, filter domain.ItemFilter) ([]domain.Item, error) {
	if mock.ListItemsFunc == nil {
		panic("workflowServiceMock.ListItemsFunc: method is nil but workflowService.ListItems was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.ItemFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockListItems.Lock()
	mock.calls.ListItems = append(mock.calls.ListItems, callInfo)
	mock.lockListItems.Unlock()
	return mock.ListItemsFunc(ctx, filter)
}

func (mock *workflowServiceMock) ListItemsCalls() []struct {
	Ctx    context.Context
	Filter domain.ItemFilter
} {
	mock.lockListItems.RLock()
	calls := mock.calls.ListItems
	mock.lockListItems.RUnlock()
	return calls
}

func (mock *workflowServiceMock) Transition(ctx context.Context, input workflow.TransitionInput) (domain.Item, error) {
	if mock.TransitionFunc == nil {
		panic("workflowServiceMock.TransitionFunc: method is nil but workflowService.Transition was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input workflow.TransitionInput
	}{Ctx: ctx, Input: input}
	mock.lockTransition.Lock()
	mock.calls.Transition = append(mock.calls.Transition, callInfo)
	mock.lockTransition.Unlock()
	return mock.TransitionFunc(ctx, input)
}

func (mock *workflowServiceMock) TransitionCalls() []struct {
	Ctx   context.Context
	Input workflow.TransitionInput
} {
	mock.lockTransition.RLock()
	calls := mock.calls.Transition
	mock.lockTransition.RUnlock()
	return calls
}

func (mock *workflowServiceMock) Claim(ctx context.Context, itemID uuid.UUID) (domain.ClaimToken, error) {
	if mock.ClaimFunc == nil {
		panic("workflowServiceMock.ClaimFunc: method is nil but workflowService.Claim was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ItemID uuid.UUID
	}{Ctx: ctx, ItemID: itemID}
	mock.lockClaim.Lock()
	mock.calls.Claim = append(mock.calls.Claim, callInfo)
	mock.lockClaim.Unlock()
	return mock.ClaimFunc(ctx, itemID)
}

func (mock *workflowServiceMock) ClaimCalls() []struct {
	Ctx    context.Context
	ItemID uuid.UUID
} {
	mock.lockClaim.RLock()
	calls := mock.calls.Claim
	mock.lockClaim.RUnlock()
	return calls
}

func (mock *workflowServiceMock) Release(ctx context.Context, itemID uuid.UUID) (domain.Item, error) {
	if mock.ReleaseFunc == nil {
		panic("workflowServiceMock.ReleaseFunc: method is nil but workflowService.Release was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ItemID uuid.UUID
	}{Ctx: ctx, ItemID: itemID}
	mock.lockRelease.Lock()
	mock.calls.Release = append(mock.calls.Release, callInfo)
	mock.lockRelease.Unlock()
	return mock.ReleaseFunc(ctx, itemID)
}

func (mock *workflowServiceMock) ReleaseCalls() []struct {
	Ctx    context.Context
	ItemID uuid.UUID
} {
	mock.lockRelease.RLock()
	calls := mock.calls.Release
	mock.lockRelease.RUnlock()
	return calls
}

func (mock *workflowServiceMock) CanComplete(ctx context.Context, itemID uuid.UUID) (bool, error) {
	if mock.CanCompleteFunc == nil {
		panic("workflowServiceMock.CanCompleteFunc: method is nil but workflowService.CanComplete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ItemID uuid.UUID
	}{Ctx: ctx, ItemID: itemID}
	mock.lockCanComplete.Lock()
	mock.calls.CanComplete = append(mock.calls.CanComplete, callInfo)
	mock.lockCanComplete.Unlock()
	return mock.CanCompleteFunc(ctx, itemID)
}

func (mock *workflowServiceMock) CanCompleteCalls() []struct {
	Ctx    context.Context
	ItemID uuid.UUID
} {
	mock.lockCanComplete.RLock()
	calls := mock.calls.CanComplete
	mock.lockCanComplete.RUnlock()
	return calls
}

func (mock *workflowServiceMock) EditContent(ctx context.Context, input workflow.EditInput) (domain.Item, error) {
	if mock.EditContentFunc == nil {
		panic("workflowServiceMock.EditContentFunc: method is nil but workflowService.EditContent was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input workflow.EditInput
	}{Ctx: ctx, Input: input}
	mock.lockEditContent.Lock()
	mock.calls.EditContent = append(mock.calls.EditContent, callInfo)
	mock.lockEditContent.Unlock()
	return mock.EditContentFunc(ctx, input)
}

func (mock *workflowServiceMock) EditContentCalls() []struct {
	Ctx   context.Context
	Input workflow.EditInput
} {
	mock.lockEditContent.RLock()
	calls := mock.calls.EditContent
	mock.lockEditContent.RUnlock()
	return calls
}

func (mock *workflowServiceMock) AttachArtifact(ctx context.Context, input workflow.AttachArtifactInput) (domain.Item, error) {
	if mock.AttachArtifactFunc == nil {
		panic("workflowServiceMock.AttachArtifactFunc: method is nil but workflowService.AttachArtifact was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input workflow.AttachArtifactInput
	}{Ctx: ctx, Input: input}
	mock.lockAttachArtifact.Lock()
	mock.calls.AttachArtifact = append(mock.calls.AttachArtifact, callInfo)
	mock.lockAttachArtifact.Unlock()
	return mock.AttachArtifactFunc(ctx, input)
}

func (mock *workflowServiceMock) AttachArtifactCalls() []struct {
	Ctx   context.Context
	Input workflow.AttachArtifactInput
} {
	mock.lockAttachArtifact.RLock()
	calls := mock.calls.AttachArtifact
	mock.lockAttachArtifact.RUnlock()
	return calls
}

var _ revisionService = &revisionServiceMock{}

type revisionServiceMock struct {
	AddNoteFunc    func(ctx context.Context, input revision.AddNoteInput) (domain.RevisionNote, error)
	ListNotesFunc  func(ctx context.Context, itemID uuid.UUID, filter domain.NoteFilter) ([]domain.RevisionNote, error)
	DeleteNoteFunc func(ctx context.Context, itemID uuid.UUID, noteID uuid.UUID) error

	calls struct {
		AddNote []struct {
			Ctx   context.Context
			Input revision.AddNoteInput
		}
		ListNotes []struct {
			Ctx    context.Context
			ItemID uuid.UUID
			Filter domain.NoteFilter
		}
		DeleteNote []struct {
			Ctx    context.Context
			ItemID uuid.UUID
			NoteID uuid.UUID
		}
	}
	lockAddNote    sync.RWMutex
	lockListNotes  sync.RWMutex
	lockDeleteNote sync.RWMutex
}

func (mock *revisionServiceMock) AddNote(ctx context.Context, input revision.AddNoteInput) (domain.RevisionNote, error) {
	if mock.AddNoteFunc == nil {
		panic("revisionServiceMock.AddNoteFunc: method is nil but revisionService.AddNote was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input revision.AddNoteInput
	}{Ctx: ctx, Input: input}
	mock.lockAddNote.Lock()
	mock.calls.AddNote = append(mock.calls.AddNote, callInfo)
	mock.lockAddNote.Unlock()
	return mock.AddNoteFunc(ctx, input)
}

func (mock *revisionServiceMock) AddNoteCalls() []struct {
	Ctx   context.Context
	Input revision.AddNoteInput
} {
	mock.lockAddNote.RLock()
	calls := mock.calls.AddNote
	mock.lockAddNote.RUnlock()
	return calls
}

func (mock *revisionServiceMock) ListNotes(ctx context.Context, itemID uuid.UUID, filter domain.NoteFilter) ([]domain.RevisionNote, error) {
	if mock.ListNotesFunc == nil {
		panic("revisionServiceMock.ListNotesFunc: method is nil but revisionService.ListNotes was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ItemID uuid.UUID
		Filter domain.NoteFilter
	}{Ctx: ctx, ItemID: itemID, Filter: filter}
	mock.lockListNotes.Lock()
	mock.calls.ListNotes = append(mock.calls.ListNotes, callInfo)
	mock.lockListNotes.Unlock()
	return mock.ListNotesFunc(ctx, itemID, filter)
}

func (mock *revisionServiceMock) ListNotesCalls() []struct {
	Ctx    context.Context
	ItemID uuid.UUID
	Filter domain.NoteFilter
} {
	mock.lockListNotes.RLock()
	calls := mock.calls.ListNotes
	mock.lockListNotes.RUnlock()
	return calls
}

func (mock *revisionServiceMock) DeleteNote(ctx context.Context, itemID uuid.UUID, noteID uuid.UUID) error {
	if mock.DeleteNoteFunc == nil {
		panic("revisionServiceMock.DeleteNoteFunc: method is nil but revisionService.DeleteNote was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ItemID uuid.UUID
		NoteID uuid.UUID
	}{Ctx: ctx, ItemID: itemID, NoteID: noteID}
	mock.lockDeleteNote.Lock()
	mock.calls.DeleteNote = append(mock.calls.DeleteNote, callInfo)
	mock.lockDeleteNote.Unlock()
	return mock.DeleteNoteFunc(ctx, itemID, noteID)
}

func (mock *revisionServiceMock) DeleteNoteCalls() []struct {
	Ctx    context.Context
	ItemID uuid.UUID
	NoteID uuid.UUID
} {
	mock.lockDeleteNote.RLock()
	calls := mock.calls.DeleteNote
	mock.lockDeleteNote.RUnlock()
	return calls
}

var _ activityService = &activityServiceMock{}

type activityServiceMock struct {
	GetActivityLogFunc func(ctx context.Context, itemID uuid.UUID) ([]domain.ActivityEntry, error)
	SummaryFunc        func(ctx context.Context, itemID uuid.UUID) (domain.ActivitySummary, error)

	calls struct {
		GetActivityLog []struct {
			Ctx    context.Context
			ItemID uuid.UUID
		}
		Summary []struct {
			Ctx    context.Context
			ItemID uuid.UUID
		}
	}
	lockGetActivityLog sync.RWMutex
	lockSummary        sync.RWMutex
}

func (mock *activityServiceMock) GetActivityLog(ctx context.Context, itemID uuid.UUID) ([]domain.ActivityEntry, error) {
	if mock.GetActivityLogFunc == nil {
		panic("activityServiceMock.GetActivityLogFunc: method is nil but activityService.GetActivityLog was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ItemID uuid.UUID
	}{Ctx: ctx, ItemID: itemID}
	mock.lockGetActivityLog.Lock()
	mock.calls.GetActivityLog = append(mock.calls.GetActivityLog, callInfo)
	mock.lockGetActivityLog.Unlock()
	return mock.GetActivityLogFunc(ctx, itemID)
}

func (mock *activityServiceMock) GetActivityLogCalls() []struct {
	Ctx    context.Context
	ItemID uuid.UUID
} {
	mock.lockGetActivityLog.RLock()
	calls := mock.calls.GetActivityLog
	mock.lockGetActivityLog.RUnlock()
	return calls
}

func (mock *activityServiceMock) Summary(ctx context.Context, itemID uuid.UUID) (domain.ActivitySummary, error) {
	if mock.SummaryFunc == nil {
		panic("activityServiceMock.SummaryFunc: method is nil but activityService.Summary was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ItemID uuid.UUID
	}{Ctx: ctx, ItemID: itemID}
	mock.lockSummary.Lock()
	mock.calls.Summary = append(mock.calls.Summary, callInfo)
	mock.lockSummary.Unlock()
	return mock.SummaryFunc(ctx, itemID)
}

func (mock *activityServiceMock) SummaryCalls() []struct {
	Ctx    context.Context
	ItemID uuid.UUID
} {
	mock.lockSummary.RLock()
	calls := mock.calls.Summary
	mock.lockSummary.RUnlock()
	return calls
}
