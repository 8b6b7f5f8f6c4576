package classify

import "context"

// MemoryCacheRepository is an in-memory CacheRepository for tests.
type MemoryCacheRepository struct {
	records map[string]Record

	GetCalls    int
	PutCalls    int
	DeleteCalls int
}

func NewMemoryCacheRepository() *MemoryCacheRepository {
	return &MemoryCacheRepository{records: make(map[string]Record)}
}

func (m *MemoryCacheRepository) Get(ctx context.Context, key string) (*Record, error) {
	m.GetCalls++
	rec, ok := m.records[key]
	if !ok {
		return nil, nil
	}
	out := rec
	return &out, nil
}

func (m *MemoryCacheRepository) Put(ctx context.Context, key string, rec *Record) error {
	m.PutCalls++
	m.records[key] = *rec
	return nil
}

func (m *MemoryCacheRepository) Delete(ctx context.Context, key string) error {
	m.DeleteCalls++
	delete(m.records, key)
	return nil
}

func (m *MemoryCacheRepository) Len() int {
	return len(m.records)
}
