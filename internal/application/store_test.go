package application

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"worklog/internal/domain"
)

// fakeStorage is an in-memory ports.Storage for store tests.
type fakeStorage struct {
	values map[string]string
	sets   int
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{values: make(map[string]string)}
}

func (f *fakeStorage) Get(key string) (string, bool, error) {
	value, ok := f.values[key]
	return value, ok, nil
}

func (f *fakeStorage) Set(key, value string) error {
	f.values[key] = value
	f.sets++
	return nil
}

func (f *fakeStorage) Close() error { return nil }

// newTestStore opens a store on empty fake storage with deterministic
// ids and clock.
func newTestStore(t *testing.T) (*Store, *fakeStorage) {
	t.Helper()
	storage := newFakeStorage()
	store, err := OpenStore(storage)
	if err != nil {
		t.Fatalf("OpenStore failed: %v", err)
	}

	sequence := 0
	store.newID = func() string {
		sequence++
		return fmt.Sprintf("id-%d", sequence)
	}
	store.now = func() time.Time {
		return time.Date(2026, 8, 31, 12, 0, 0, 0, time.Local)
	}
	return store, storage
}

func mustAdd(t *testing.T, store *Store, in AddInput, autoClean bool) *AddResult {
	t.Helper()
	result, err := store.Add(in, autoClean)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	return result
}

func TestStoreAdd_SingleRecord(t *testing.T) {
	store, storage := newTestStore(t)

	result := mustAdd(t, store, AddInput{
		Date:    "2026-08-31",
		Time:    "09:00",
		Content: "完成需求评审",
	}, true)

	if result.Count != 1 {
		t.Fatalf("Count = %d, want 1", result.Count)
	}

	records := store.Records()
	if len(records) != 1 {
		t.Fatalf("len(records) = %d, want 1", len(records))
	}

	r := records[0]
	if r.Content != "完成需求评审" {
		t.Errorf("Content = %q", r.Content)
	}
	if r.Category != domain.DefaultCategory {
		t.Errorf("Category = %q, want default", r.Category)
	}
	if r.SequenceNumber != 1 {
		t.Errorf("SequenceNumber = %d, want 1", r.SequenceNumber)
	}
	if r.Created != store.now().UnixMilli() {
		t.Errorf("Created = %d, want clock value", r.Created)
	}
	if storage.sets == 0 {
		t.Error("Add did not persist")
	}
}

func TestStoreAdd_SplitsAndCleans(t *testing.T) {
	store, _ := newTestStore(t)

	result := mustAdd(t, store, AddInput{
		Date:    "2026-08-31",
		Time:    "09:00",
		Content: "1.写周报；2.代码评审。",
	}, true)

	if result.Count != 2 {
		t.Fatalf("Count = %d, want 2", result.Count)
	}

	day := domain.RecordsForDate(store.Records(), "2026-08-31")
	if day[0].Content != "写周报" || day[1].Content != "代码评审" {
		t.Errorf("contents = %q, %q, want cleaned parts in order", day[0].Content, day[1].Content)
	}
	if day[0].SequenceNumber != 1 || day[1].SequenceNumber != 2 {
		t.Errorf("sequences = %d, %d, want 1, 2", day[0].SequenceNumber, day[1].SequenceNumber)
	}
}

func TestStoreAdd_WithoutCleanKeepsPrefixes(t *testing.T) {
	store, _ := newTestStore(t)

	mustAdd(t, store, AddInput{
		Date:    "2026-08-31",
		Time:    "09:00",
		Content: "1.写周报",
	}, false)

	if got := store.Records()[0].Content; got != "1.写周报" {
		t.Errorf("Content = %q, want raw part", got)
	}
}

func TestStoreAdd_ContinuesAfterDateMaximum(t *testing.T) {
	store, _ := newTestStore(t)

	mustAdd(t, store, AddInput{Date: "2026-08-31", Time: "09:00", Content: "写周报"}, true)
	mustAdd(t, store, AddInput{Date: "2026-08-31", Time: "10:00", Content: "代码评审"}, true)
	mustAdd(t, store, AddInput{Date: "2026-08-30", Time: "10:00", Content: "部署上线"}, true)

	day := domain.RecordsForDate(store.Records(), "2026-08-31")
	if day[1].SequenceNumber != 2 {
		t.Errorf("second record of the day numbered %d, want 2", day[1].SequenceNumber)
	}

	other := domain.RecordsForDate(store.Records(), "2026-08-30")
	if other[0].SequenceNumber != 1 {
		t.Errorf("other date starts at %d, want 1", other[0].SequenceNumber)
	}
}

func TestStoreAdd_EmptyAfterCleaning(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Add(AddInput{Date: "2026-08-31", Time: "09:00", Content: "。"}, true)
	if !errors.Is(err, ErrEmptyContent) {
		t.Errorf("error = %v, want ErrEmptyContent", err)
	}
}

func TestStoreAdd_PrependsNewest(t *testing.T) {
	store, _ := newTestStore(t)

	first := mustAdd(t, store, AddInput{Date: "2026-08-31", Time: "09:00", Content: "写周报"}, true)
	second := mustAdd(t, store, AddInput{Date: "2026-08-31", Time: "10:00", Content: "代码评审"}, true)

	records := store.Records()
	if records[0].ID != second.IDs[0] || records[1].ID != first.IDs[0] {
		t.Error("newest record should come first in iteration order")
	}
}

func TestStoreEdit_SingleKeepsSequence(t *testing.T) {
	store, _ := newTestStore(t)

	mustAdd(t, store, AddInput{Date: "2026-08-31", Time: "09:00", Content: "写周报"}, true)
	result := mustAdd(t, store, AddInput{Date: "2026-08-31", Time: "10:00", Content: "代码评审"}, true)

	err := store.Edit(result.IDs[0], AddInput{
		Date: "2026-08-31", Time: "10:00", Content: "代码评审与合并", Category: "运维",
	})
	if err != nil {
		t.Fatalf("Edit failed: %v", err)
	}

	edited, ok := store.RecordByID(result.IDs[0])
	if !ok {
		t.Fatal("edited record vanished")
	}
	if edited.Content != "代码评审与合并" {
		t.Errorf("Content = %q", edited.Content)
	}
	if edited.Category != "运维" {
		t.Errorf("Category = %q", edited.Category)
	}
	if edited.SequenceNumber != 2 {
		t.Errorf("SequenceNumber = %d, want 2 after reconciliation", edited.SequenceNumber)
	}
}

func TestStoreEdit_SplitCreatesRecords(t *testing.T) {
	store, _ := newTestStore(t)

	result := mustAdd(t, store, AddInput{Date: "2026-08-31", Time: "09:00", Content: "写周报"}, true)

	err := store.Edit(result.IDs[0], AddInput{
		Date: "2026-08-31", Time: "09:00", Content: "写周报；代码评审；部署上线",
	})
	if err != nil {
		t.Fatalf("Edit failed: %v", err)
	}

	day := domain.RecordsForDate(store.Records(), "2026-08-31")
	if len(day) != 3 {
		t.Fatalf("len(day) = %d, want 3", len(day))
	}
	for i, r := range day {
		if r.SequenceNumber != i+1 {
			t.Errorf("day[%d] numbered %d, want %d", i, r.SequenceNumber, i+1)
		}
	}
}

func TestStoreEdit_DoesNotCleanParts(t *testing.T) {
	store, _ := newTestStore(t)

	result := mustAdd(t, store, AddInput{Date: "2026-08-31", Time: "09:00", Content: "写周报"}, true)

	if err := store.Edit(result.IDs[0], AddInput{
		Date: "2026-08-31", Time: "09:00", Content: "1.写周报。",
	}); err != nil {
		t.Fatalf("Edit failed: %v", err)
	}

	edited, _ := store.RecordByID(result.IDs[0])
	if edited.Content != "1.写周报。" {
		t.Errorf("Content = %q, edits must keep the raw part", edited.Content)
	}
}

func TestStoreEdit_SinglePartKeepsTrailingDelimiter(t *testing.T) {
	store, _ := newTestStore(t)

	result := mustAdd(t, store, AddInput{Date: "2026-08-31", Time: "09:00", Content: "写周报"}, true)

	if err := store.Edit(result.IDs[0], AddInput{
		Date: "2026-08-31", Time: "09:00", Content: " 完成任务; ",
	}); err != nil {
		t.Fatalf("Edit failed: %v", err)
	}

	edited, _ := store.RecordByID(result.IDs[0])
	if edited.Content != "完成任务;" {
		t.Errorf("Content = %q, want %q", edited.Content, "完成任务;")
	}
}

func TestStoreEdit_NotFound(t *testing.T) {
	store, _ := newTestStore(t)

	err := store.Edit("missing", AddInput{Date: "2026-08-31", Time: "09:00", Content: "x"})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestStoreDelete_Reconciles(t *testing.T) {
	store, _ := newTestStore(t)

	mustAdd(t, store, AddInput{Date: "2026-08-31", Time: "09:00", Content: "写周报"}, true)
	second := mustAdd(t, store, AddInput{Date: "2026-08-31", Time: "10:00", Content: "代码评审"}, true)
	mustAdd(t, store, AddInput{Date: "2026-08-31", Time: "11:00", Content: "部署上线"}, true)

	removed, err := store.Delete(second.IDs[0])
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if removed != 1 {
		t.Fatalf("removed = %d, want 1", removed)
	}

	day := domain.RecordsForDate(store.Records(), "2026-08-31")
	if len(day) != 2 {
		t.Fatalf("len(day) = %d, want 2", len(day))
	}
	if day[0].SequenceNumber != 1 || day[1].SequenceNumber != 2 {
		t.Errorf("sequences = %d, %d, want dense 1, 2", day[0].SequenceNumber, day[1].SequenceNumber)
	}
}

func TestStoreDelete_MissingIsNoOp(t *testing.T) {
	store, storage := newTestStore(t)

	mustAdd(t, store, AddInput{Date: "2026-08-31", Time: "09:00", Content: "写周报"}, true)
	setsBefore := storage.sets

	removed, err := store.Delete("missing")
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if removed != 0 {
		t.Errorf("removed = %d, want 0", removed)
	}
	if storage.sets != setsBefore {
		t.Error("no-op delete should not persist")
	}
}

func TestStoreDeleteDate(t *testing.T) {
	store, _ := newTestStore(t)

	mustAdd(t, store, AddInput{Date: "2026-08-31", Time: "09:00", Content: "写周报"}, true)
	mustAdd(t, store, AddInput{Date: "2026-08-31", Time: "10:00", Content: "代码评审"}, true)
	mustAdd(t, store, AddInput{Date: "2026-08-30", Time: "10:00", Content: "部署上线"}, true)

	removed, err := store.DeleteDate("2026-08-31")
	if err != nil {
		t.Fatalf("DeleteDate failed: %v", err)
	}
	if removed != 2 {
		t.Errorf("removed = %d, want 2", removed)
	}
	if len(store.Records()) != 1 {
		t.Errorf("len(records) = %d, want 1", len(store.Records()))
	}
}

func TestStoreClearRecords_KeepsTemplates(t *testing.T) {
	store, _ := newTestStore(t)

	mustAdd(t, store, AddInput{Date: "2026-08-31", Time: "09:00", Content: "写周报"}, true)
	if _, err := store.AddCommonLog("处理工单", "", nil); err != nil {
		t.Fatalf("AddCommonLog failed: %v", err)
	}

	if _, err := store.ClearRecords(); err != nil {
		t.Fatalf("ClearRecords failed: %v", err)
	}

	if len(store.Records()) != 0 {
		t.Error("records survived clear")
	}
	if len(store.CommonLogs()) != 1 {
		t.Error("templates should survive clear")
	}
}

func TestStoreMove_SwapsSequenceNumbers(t *testing.T) {
	store, _ := newTestStore(t)

	first := mustAdd(t, store, AddInput{Date: "2026-08-31", Time: "09:00", Content: "写周报"}, true)
	second := mustAdd(t, store, AddInput{Date: "2026-08-31", Time: "10:00", Content: "代码评审"}, true)

	moved, err := store.MoveUp(second.IDs[0])
	if err != nil {
		t.Fatalf("MoveUp failed: %v", err)
	}
	if !moved {
		t.Fatal("MoveUp reported no move")
	}

	a, _ := store.RecordByID(first.IDs[0])
	b, _ := store.RecordByID(second.IDs[0])
	if b.SequenceNumber != 1 || a.SequenceNumber != 2 {
		t.Errorf("sequences after move = %d, %d, want swapped", a.SequenceNumber, b.SequenceNumber)
	}
}

func TestStoreMove_BoundaryIsNoOp(t *testing.T) {
	store, _ := newTestStore(t)

	first := mustAdd(t, store, AddInput{Date: "2026-08-31", Time: "09:00", Content: "写周报"}, true)

	moved, err := store.MoveUp(first.IDs[0])
	if err != nil {
		t.Fatalf("MoveUp failed: %v", err)
	}
	if moved {
		t.Error("MoveUp at the top should report false")
	}

	moved, err = store.MoveDown(first.IDs[0])
	if err != nil {
		t.Fatalf("MoveDown failed: %v", err)
	}
	if moved {
		t.Error("MoveDown at the bottom should report false")
	}
}

func TestStoreMove_NotFound(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.MoveUp("missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestStoreImport_BatchOnlySequencing(t *testing.T) {
	store, _ := newTestStore(t)

	// Existing records of the same date are not consulted.
	mustAdd(t, store, AddInput{Date: "2026-08-31", Time: "09:00", Content: "写周报"}, true)

	count, err := store.Import([]ImportRow{
		{Date: "2026-08-31", Time: "14:00", Content: "部署上线"},
		{Date: "2026-08-31", Time: "10:00", Content: "代码评审"},
		{Date: "2026-08-30", Time: "10:00", Content: "处理工单"},
	})
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if count != 3 {
		t.Fatalf("count = %d, want 3", count)
	}

	byContent := make(map[string]domain.LogRecord)
	for _, r := range store.Records() {
		byContent[r.Content] = r
	}

	// Batch-internal (date, time) order: 代码评审 before 部署上线.
	if byContent["代码评审"].SequenceNumber != 1 {
		t.Errorf("代码评审 numbered %d, want 1", byContent["代码评审"].SequenceNumber)
	}
	if byContent["部署上线"].SequenceNumber != 2 {
		t.Errorf("部署上线 numbered %d, want 2", byContent["部署上线"].SequenceNumber)
	}
	if byContent["处理工单"].SequenceNumber != 1 {
		t.Errorf("处理工单 numbered %d, want 1", byContent["处理工单"].SequenceNumber)
	}

	// The pre-existing record keeps its number until the next reconciliation.
	if byContent["写周报"].SequenceNumber != 1 {
		t.Errorf("写周报 numbered %d, want 1", byContent["写周报"].SequenceNumber)
	}
}

func TestStoreImport_SortsBatchBeforePrepend(t *testing.T) {
	store, _ := newTestStore(t)

	// Rows arrive in file order; the stored batch is (date, time) order.
	if _, err := store.Import([]ImportRow{
		{Date: "2026-08-31", Time: "14:00", Content: "部署上线"},
		{Date: "2026-08-30", Time: "10:00", Content: "处理工单"},
		{Date: "2026-08-31", Time: "09:00", Content: "写周报"},
	}); err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	var got []string
	for _, r := range store.Records() {
		got = append(got, r.Content)
	}
	want := []string{"处理工单", "写周报", "部署上线"}
	if len(got) != len(want) {
		t.Fatalf("len(records) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("records[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestStoreImport_EmptyBatch(t *testing.T) {
	store, storage := newTestStore(t)
	setsBefore := storage.sets

	count, err := store.Import(nil)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if count != 0 {
		t.Errorf("count = %d, want 0", count)
	}
	if storage.sets != setsBefore {
		t.Error("empty import should not persist")
	}
}

func TestStorePersistence_RoundTrip(t *testing.T) {
	store, storage := newTestStore(t)

	mustAdd(t, store, AddInput{
		Date: "2026-08-31", Time: "09:00", Content: "写周报",
		Category: "汇报", Tags: []string{"周报"},
	}, true)
	if err := store.SetCompanyName("云回科技"); err != nil {
		t.Fatalf("SetCompanyName failed: %v", err)
	}
	if _, err := store.AddCommonLog("处理工单", "运维", nil); err != nil {
		t.Fatalf("AddCommonLog failed: %v", err)
	}

	reopened, err := OpenStore(storage)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}

	records := reopened.Records()
	if len(records) != 1 || records[0].Content != "写周报" || records[0].Tags[0] != "周报" {
		t.Errorf("records did not round-trip: %+v", records)
	}
	if reopened.CompanyName() != "云回科技" {
		t.Errorf("CompanyName = %q", reopened.CompanyName())
	}
	if commons := reopened.CommonLogs(); len(commons) != 1 || commons[0].Content != "处理工单" {
		t.Errorf("templates did not round-trip: %+v", commons)
	}
}

func TestStoreCompanyName_Default(t *testing.T) {
	store, _ := newTestStore(t)
	if store.CompanyName() != domain.DefaultCompanyName {
		t.Errorf("CompanyName = %q, want default", store.CompanyName())
	}
}

func TestStoreCommonLogs(t *testing.T) {
	store, _ := newTestStore(t)

	first, err := store.AddCommonLog("处理工单", "运维", []string{"工单"})
	if err != nil {
		t.Fatalf("AddCommonLog failed: %v", err)
	}
	second, err := store.AddCommonLog("写周报", "", nil)
	if err != nil {
		t.Fatalf("AddCommonLog failed: %v", err)
	}

	if second.Category != domain.DefaultCategory {
		t.Errorf("Category = %q, want default", second.Category)
	}

	t.Run("unique rejects duplicates", func(t *testing.T) {
		_, err := store.AddCommonLogUnique("处理工单")
		if !errors.Is(err, ErrDuplicateTemplate) {
			t.Errorf("error = %v, want ErrDuplicateTemplate", err)
		}
	})

	t.Run("update", func(t *testing.T) {
		if err := store.UpdateCommonLog(first.ID, "处理线上工单", "运维", nil); err != nil {
			t.Fatalf("UpdateCommonLog failed: %v", err)
		}
		updated, err := store.CommonLogByID(first.ID)
		if err != nil {
			t.Fatalf("CommonLogByID failed: %v", err)
		}
		if updated.Content != "处理线上工单" {
			t.Errorf("Content = %q", updated.Content)
		}
	})

	t.Run("move within catalogue", func(t *testing.T) {
		moved, err := store.MoveCommonLogUp(second.ID)
		if err != nil {
			t.Fatalf("MoveCommonLogUp failed: %v", err)
		}
		if !moved {
			t.Fatal("expected a move")
		}
		if store.CommonLogs()[0].ID != second.ID {
			t.Error("template order did not change")
		}

		moved, err = store.MoveCommonLogUp(second.ID)
		if err != nil {
			t.Fatalf("MoveCommonLogUp failed: %v", err)
		}
		if moved {
			t.Error("move at the top should report false")
		}
	})

	t.Run("delete missing is no-op", func(t *testing.T) {
		if err := store.DeleteCommonLog("missing"); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("delete", func(t *testing.T) {
		if err := store.DeleteCommonLog(first.ID); err != nil {
			t.Fatalf("DeleteCommonLog failed: %v", err)
		}
		if _, err := store.CommonLogByID(first.ID); !errors.Is(err, ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
	})
}
