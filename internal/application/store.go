package application

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"worklog/internal/domain"
	"worklog/internal/ports"
)

// Storage keys for the persisted collections.
const (
	KeyWorkLogs    = "workLogs"
	KeyCompanyName = "companyName"
	KeyCommonLogs  = "commonLogs"
)

// Store owns the record and template collections. It is the sole mutator
// of sequence numbers; all reads go through projection methods that
// return copies. Every mutation persists the affected collection
// wholesale before returning.
//
// The store is single-context: one user, one goroutine, no locking.
type Store struct {
	storage ports.Storage

	records []domain.LogRecord // newest-first iteration bias
	commons []domain.CommonLog
	company string

	now   func() time.Time
	newID func() string
}

// OpenStore loads the persisted collections through storage.
func OpenStore(storage ports.Storage) (*Store, error) {
	s := &Store{
		storage: storage,
		company: domain.DefaultCompanyName,
		now:     time.Now,
		newID:   uuid.NewString,
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	if blob, ok, err := s.storage.Get(KeyWorkLogs); err != nil {
		return fmt.Errorf("load %s: %w", KeyWorkLogs, err)
	} else if ok {
		if err := json.Unmarshal([]byte(blob), &s.records); err != nil {
			return fmt.Errorf("decode %s: %w", KeyWorkLogs, err)
		}
	}

	if name, ok, err := s.storage.Get(KeyCompanyName); err != nil {
		return fmt.Errorf("load %s: %w", KeyCompanyName, err)
	} else if ok && name != "" {
		s.company = name
	}

	if blob, ok, err := s.storage.Get(KeyCommonLogs); err != nil {
		return fmt.Errorf("load %s: %w", KeyCommonLogs, err)
	} else if ok {
		if err := json.Unmarshal([]byte(blob), &s.commons); err != nil {
			return fmt.Errorf("decode %s: %w", KeyCommonLogs, err)
		}
	}
	return nil
}

func (s *Store) persistRecords() error {
	blob, err := json.Marshal(s.records)
	if err != nil {
		return &StorageError{Key: KeyWorkLogs, Err: err}
	}
	if err := s.storage.Set(KeyWorkLogs, string(blob)); err != nil {
		return &StorageError{Key: KeyWorkLogs, Err: err}
	}
	return nil
}

func (s *Store) persistCommons() error {
	blob, err := json.Marshal(s.commons)
	if err != nil {
		return &StorageError{Key: KeyCommonLogs, Err: err}
	}
	if err := s.storage.Set(KeyCommonLogs, string(blob)); err != nil {
		return &StorageError{Key: KeyCommonLogs, Err: err}
	}
	return nil
}

// Records returns a copy of the record collection in iteration order.
func (s *Store) Records() []domain.LogRecord {
	records := make([]domain.LogRecord, len(s.records))
	copy(records, s.records)
	return records
}

// RecordByID returns a copy of the record with the given id.
func (s *Store) RecordByID(id string) (domain.LogRecord, bool) {
	index := s.indexOf(id)
	if index < 0 {
		return domain.LogRecord{}, false
	}
	return s.records[index], true
}

// CompanyName returns the persisted company name or its default.
func (s *Store) CompanyName() string {
	return s.company
}

// SetCompanyName stores and persists the company name.
func (s *Store) SetCompanyName(name string) error {
	s.company = name
	if err := s.storage.Set(KeyCompanyName, name); err != nil {
		return &StorageError{Key: KeyCompanyName, Err: err}
	}
	return nil
}

// AddInput carries the fields of a single add or edit action.
type AddInput struct {
	Date     string
	Time     string
	Content  string
	Category string
	Tags     []string
}

// AddResult reports the records created by Add.
type AddResult struct {
	IDs   []string
	Count int
}

// Add creates one record, or several when the content contains the
// split delimiters. New records take sequence numbers continuing after
// the date's current maximum and are inserted at the front of the
// iteration order. With autoClean, each part is cleaned before being
// kept; ErrEmptyContent is returned when nothing survives.
func (s *Store) Add(in AddInput, autoClean bool) (*AddResult, error) {
	parts := domain.SplitContent(in.Content)
	if autoClean {
		parts = domain.CleanParts(parts)
	}
	if len(parts) == 0 {
		return nil, ErrEmptyContent
	}

	category := domain.NormalizeCategory(in.Category)
	timestamp := domain.DeriveTimestamp(in.Date, in.Time)
	maxSeq := domain.MaxSequence(s.records, in.Date)

	result := &AddResult{Count: len(parts)}
	for i, part := range parts {
		record := domain.LogRecord{
			ID:             s.newID(),
			Date:           in.Date,
			Time:           in.Time,
			Content:        part,
			Category:       category,
			Tags:           in.Tags,
			Timestamp:      timestamp,
			SequenceNumber: maxSeq + i + 1,
			Created:        s.now().UnixMilli(),
		}
		s.records = append([]domain.LogRecord{record}, s.records...)
		result.IDs = append(result.IDs, record.ID)
	}

	if err := s.persistRecords(); err != nil {
		return nil, err
	}
	return result, nil
}

// Edit updates the record's mutable fields. Content is always re-split;
// when it splits into several parts the target keeps the first part with
// sequence number 1 and the rest become new front-inserted records
// numbered 2..N. A single part keeps the input as typed (trimmed), so a
// trailing delimiter survives. Either way a full reconciliation follows,
// so any manual move ordering for that date is recomputed from date/time
// order.
func (s *Store) Edit(id string, in AddInput) error {
	index := s.indexOf(id)
	if index < 0 {
		return fmt.Errorf("edit %s: %w", id, ErrNotFound)
	}

	parts := domain.SplitContent(in.Content)
	if len(parts) == 0 {
		return ErrEmptyContent
	}

	category := domain.NormalizeCategory(in.Category)
	timestamp := domain.DeriveTimestamp(in.Date, in.Time)

	target := &s.records[index]
	target.Date = in.Date
	target.Time = in.Time
	target.Content = strings.TrimSpace(in.Content)
	target.Category = category
	target.Tags = in.Tags
	target.Timestamp = timestamp

	if len(parts) > 1 {
		target.Content = parts[0]
		target.SequenceNumber = 1
		for i, part := range parts[1:] {
			record := domain.LogRecord{
				ID:             s.newID(),
				Date:           in.Date,
				Time:           in.Time,
				Content:        part,
				Category:       category,
				Tags:           in.Tags,
				Timestamp:      timestamp,
				SequenceNumber: i + 2,
				Created:        s.now().UnixMilli(),
			}
			s.records = append([]domain.LogRecord{record}, s.records...)
		}
	} else if target.SequenceNumber < 1 {
		target.SequenceNumber = 1
	}

	domain.Reconcile(s.records)
	return s.persistRecords()
}

// Delete removes the record with the given id. A missing id is a
// zero-count no-op, not an error.
func (s *Store) Delete(id string) (int, error) {
	return s.deleteWhere(func(r domain.LogRecord) bool { return r.ID == id })
}

// DeleteBatch removes every record whose id is in ids.
func (s *Store) DeleteBatch(ids []string) (int, error) {
	doomed := make(map[string]bool, len(ids))
	for _, id := range ids {
		doomed[id] = true
	}
	return s.deleteWhere(func(r domain.LogRecord) bool { return doomed[r.ID] })
}

// DeleteDate removes every record of one date.
func (s *Store) DeleteDate(date string) (int, error) {
	return s.deleteWhere(func(r domain.LogRecord) bool { return r.Date == date })
}

// ClearRecords removes all records. Templates and the company name survive.
func (s *Store) ClearRecords() (int, error) {
	return s.deleteWhere(func(domain.LogRecord) bool { return true })
}

func (s *Store) deleteWhere(doomed func(domain.LogRecord) bool) (int, error) {
	kept := s.records[:0:0]
	for _, r := range s.records {
		if !doomed(r) {
			kept = append(kept, r)
		}
	}
	removed := len(s.records) - len(kept)
	if removed == 0 {
		return 0, nil
	}

	s.records = kept
	domain.Reconcile(s.records)
	if err := s.persistRecords(); err != nil {
		return 0, err
	}
	return removed, nil
}

// MoveUp swaps the record's sequence number with its predecessor in the
// date partition. Returns false without mutation at the partition top.
func (s *Store) MoveUp(id string) (bool, error) {
	return s.move(id, -1)
}

// MoveDown swaps the record's sequence number with its successor in the
// date partition. Returns false without mutation at the partition bottom.
func (s *Store) MoveDown(id string) (bool, error) {
	return s.move(id, +1)
}

// move swaps two existing sequence numbers inside one date partition.
// It never renumbers other records, so no reconciliation is needed.
func (s *Store) move(id string, offset int) (bool, error) {
	index := s.indexOf(id)
	if index < 0 {
		return false, fmt.Errorf("move %s: %w", id, ErrNotFound)
	}

	partition := s.partitionOf(s.records[index].Date)
	position := 0
	for i, r := range partition {
		if r.ID == id {
			position = i
			break
		}
	}

	neighbor := position + offset
	if neighbor < 0 || neighbor >= len(partition) {
		return false, nil
	}

	a, b := partition[position], partition[neighbor]
	a.SequenceNumber, b.SequenceNumber = b.Seq(), a.Seq()

	if err := s.persistRecords(); err != nil {
		return false, err
	}
	return true, nil
}

// partitionOf returns pointers to the records of one date ordered by
// sequence number (unset numbers count as 1).
func (s *Store) partitionOf(date string) []*domain.LogRecord {
	var partition []*domain.LogRecord
	for i := range s.records {
		if s.records[i].Date == date {
			partition = append(partition, &s.records[i])
		}
	}
	sort.SliceStable(partition, func(i, j int) bool {
		return partition[i].Seq() < partition[j].Seq()
	})
	return partition
}

func (s *Store) indexOf(id string) int {
	for i := range s.records {
		if s.records[i].ID == id {
			return i
		}
	}
	return -1
}

// ImportRow is one parsed flat-file row accepted by Import.
type ImportRow struct {
	Date     string
	Time     string
	Content  string
	Category string
	Tags     []string
}

// Import materializes rows as records, sorts the batch by (date, time)
// and prepends it to the store. Sequence numbers are assigned densely
// per date within the batch only; pre-existing records of the same dates
// are not consulted and no reconciliation runs until the next structural
// mutation triggers one.
func (s *Store) Import(rows []ImportRow) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	batch := make([]domain.LogRecord, 0, len(rows))
	for _, row := range rows {
		batch = append(batch, domain.LogRecord{
			ID:        s.newID(),
			Date:      row.Date,
			Time:      row.Time,
			Content:   row.Content,
			Category:  row.Category,
			Tags:      row.Tags,
			Timestamp: domain.DeriveTimestamp(row.Date, row.Time),
			Created:   s.now().UnixMilli(),
		})
	}
	domain.SortChronological(batch)
	domain.Reconcile(batch)

	s.records = append(batch, s.records...)
	if err := s.persistRecords(); err != nil {
		return 0, err
	}
	return len(batch), nil
}

// CommonLogs returns a copy of the template catalogue in stored order.
func (s *Store) CommonLogs() []domain.CommonLog {
	commons := make([]domain.CommonLog, len(s.commons))
	copy(commons, s.commons)
	return commons
}

// CommonLogByID fetches one template, e.g. to prefill an add.
func (s *Store) CommonLogByID(id string) (*domain.CommonLog, error) {
	for i := range s.commons {
		if s.commons[i].ID == id {
			common := s.commons[i]
			return &common, nil
		}
	}
	return nil, fmt.Errorf("template %s: %w", id, ErrNotFound)
}

// AddCommonLog appends a template to the catalogue. The store itself
// enforces no content uniqueness; see AddCommonLogUnique.
func (s *Store) AddCommonLog(content, category string, tags []string) (*domain.CommonLog, error) {
	common := domain.CommonLog{
		ID:       s.newID(),
		Content:  content,
		Category: domain.NormalizeCategory(category),
		Tags:     tags,
	}
	s.commons = append(s.commons, common)
	if err := s.persistCommons(); err != nil {
		return nil, err
	}
	return &common, nil
}

// AddCommonLogUnique adds a template from the frequency ranking,
// rejecting content that exactly matches an existing template.
func (s *Store) AddCommonLogUnique(content string) (*domain.CommonLog, error) {
	for _, common := range s.commons {
		if common.Content == content {
			return nil, ErrDuplicateTemplate
		}
	}
	return s.AddCommonLog(content, domain.DefaultCategory, nil)
}

// UpdateCommonLog replaces a template's content, category, and tags.
func (s *Store) UpdateCommonLog(id, content, category string, tags []string) error {
	for i := range s.commons {
		if s.commons[i].ID == id {
			s.commons[i].Content = content
			s.commons[i].Category = domain.NormalizeCategory(category)
			s.commons[i].Tags = tags
			return s.persistCommons()
		}
	}
	return fmt.Errorf("template %s: %w", id, ErrNotFound)
}

// DeleteCommonLog removes a template; a missing id is a no-op.
func (s *Store) DeleteCommonLog(id string) error {
	for i := range s.commons {
		if s.commons[i].ID == id {
			s.commons = append(s.commons[:i], s.commons[i+1:]...)
			return s.persistCommons()
		}
	}
	return nil
}

// MoveCommonLogUp swaps the template with its predecessor in the catalogue.
func (s *Store) MoveCommonLogUp(id string) (bool, error) {
	for i := range s.commons {
		if s.commons[i].ID == id {
			if i == 0 {
				return false, nil
			}
			s.commons[i-1], s.commons[i] = s.commons[i], s.commons[i-1]
			if err := s.persistCommons(); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, fmt.Errorf("template %s: %w", id, ErrNotFound)
}

// MoveCommonLogDown swaps the template with its successor in the catalogue.
func (s *Store) MoveCommonLogDown(id string) (bool, error) {
	for i := range s.commons {
		if s.commons[i].ID == id {
			if i == len(s.commons)-1 {
				return false, nil
			}
			s.commons[i], s.commons[i+1] = s.commons[i+1], s.commons[i]
			if err := s.persistCommons(); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, fmt.Errorf("template %s: %w", id, ErrNotFound)
}
