package conversions

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/wavebatch/converter-api/internal/models"
)

// mockConversionRepository is a map-backed ConversionRepository for testing
type mockConversionRepository struct {
	records   map[string]*models.Conversion
	nextID    uint
	shouldErr bool
}

func newMockConversionRepository() *mockConversionRepository {
	return &mockConversionRepository{
		records: make(map[string]*models.Conversion),
		nextID:  1,
	}
}

func (m *mockConversionRepository) Upsert(ctx context.Context, conversion *models.Conversion) error {
	if m.shouldErr {
		return errors.New("mock database error")
	}

	if existing, ok := m.records[conversion.SourcePath]; ok {
		conversion.ID = existing.ID
	} else {
		conversion.ID = m.nextID
		m.nextID++
	}
	m.records[conversion.SourcePath] = conversion
	return nil
}

func (m *mockConversionRepository) GetBySourcePath(ctx context.Context, sourcePath string) (*models.Conversion, error) {
	if m.shouldErr {
		return nil, errors.New("mock database error")
	}

	conversion, ok := m.records[sourcePath]
	if !ok {
		return nil, ErrConversionNotFound
	}
	return conversion, nil
}

func (m *mockConversionRepository) GetByID(ctx context.Context, id uint) (*models.Conversion, error) {
	if m.shouldErr {
		return nil, errors.New("mock database error")
	}

	for _, c := range m.records {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, ErrConversionNotFound
}

func (m *mockConversionRepository) List(ctx context.Context, limit, offset int) ([]models.Conversion, error) {
	if m.shouldErr {
		return nil, errors.New("mock database error")
	}

	var list []models.Conversion
	for _, c := range m.records {
		list = append(list, *c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })

	if offset >= len(list) {
		return nil, nil
	}
	list = list[offset:]
	if limit < len(list) {
		list = list[:limit]
	}
	return list, nil
}

func (m *mockConversionRepository) DeleteBySourcePath(ctx context.Context, sourcePath string) error {
	if m.shouldErr {
		return errors.New("mock database error")
	}

	if _, ok := m.records[sourcePath]; !ok {
		return ErrConversionNotFound
	}
	delete(m.records, sourcePath)
	return nil
}

func (m *mockConversionRepository) GetStats(ctx context.Context) (*ConversionStats, error) {
	if m.shouldErr {
		return nil, errors.New("mock database error")
	}

	stats := &ConversionStats{TotalConversions: int64(len(m.records))}
	for _, c := range m.records {
		stats.TotalOutputBytes += c.OutputSize
	}
	return stats, nil
}

func TestService_RecordConversion(t *testing.T) {
	tests := []struct {
		name        string
		conversion  *models.Conversion
		wantErr     bool
		expectedErr error
	}{
		{
			name: "valid record",
			conversion: &models.Conversion{
				SourcePath: "/music/track.m4a",
				OutputPath: "/converted/track.wav",
			},
		},
		{
			name: "missing source path",
			conversion: &models.Conversion{
				OutputPath: "/converted/track.wav",
			},
			wantErr:     true,
			expectedErr: ErrInvalidSourcePath,
		},
		{
			name: "missing output path",
			conversion: &models.Conversion{
				SourcePath: "/music/track.m4a",
			},
			wantErr:     true,
			expectedErr: ErrInvalidOutputPath,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMockConversionRepository()
			service := NewService(repo)

			err := service.RecordConversion(context.Background(), tt.conversion)

			if tt.wantErr {
				if !errors.Is(err, tt.expectedErr) {
					t.Errorf("RecordConversion() error = %v, want %v", err, tt.expectedErr)
				}
				return
			}

			if err != nil {
				t.Errorf("RecordConversion() unexpected error = %v", err)
				return
			}

			if _, ok := repo.records[tt.conversion.SourcePath]; !ok {
				t.Error("RecordConversion() record not found in repository")
			}
		})
	}
}

func TestService_RecordConversion_OverwritesSameSource(t *testing.T) {
	repo := newMockConversionRepository()
	service := NewService(repo)
	ctx := context.Background()

	first := &models.Conversion{SourcePath: "/music/x.m4a", OutputPath: "/old/x.wav"}
	if err := service.RecordConversion(ctx, first); err != nil {
		t.Fatalf("RecordConversion() first error = %v", err)
	}

	second := &models.Conversion{SourcePath: "/music/x.m4a", OutputPath: "/new/x.wav"}
	if err := service.RecordConversion(ctx, second); err != nil {
		t.Fatalf("RecordConversion() second error = %v", err)
	}

	retrieved, err := service.GetBySourcePath(ctx, "/music/x.m4a")
	if err != nil {
		t.Fatalf("GetBySourcePath() error = %v", err)
	}

	if retrieved.OutputPath != "/new/x.wav" {
		t.Errorf("OutputPath = %v, want /new/x.wav", retrieved.OutputPath)
	}
	if retrieved.ID != first.ID {
		t.Errorf("ID = %d, want %d (overwrite must keep the same row)", retrieved.ID, first.ID)
	}
}

func TestService_GetBySourcePath_Validation(t *testing.T) {
	service := NewService(newMockConversionRepository())

	if _, err := service.GetBySourcePath(context.Background(), ""); !errors.Is(err, ErrInvalidSourcePath) {
		t.Errorf("GetBySourcePath(\"\") error = %v, want %v", err, ErrInvalidSourcePath)
	}

	if _, err := service.GetBySourcePath(context.Background(), "/missing.m4a"); !errors.Is(err, ErrConversionNotFound) {
		t.Errorf("GetBySourcePath() error = %v, want %v", err, ErrConversionNotFound)
	}
}

func TestService_ListConversions_ClampsLimit(t *testing.T) {
	repo := newMockConversionRepository()
	service := NewService(repo)
	ctx := context.Background()

	for _, c := range []*models.Conversion{
		{SourcePath: "/a.m4a", OutputPath: "/a.wav"},
		{SourcePath: "/b.m4a", OutputPath: "/b.wav"},
		{SourcePath: "/c.m4a", OutputPath: "/c.wav"},
	} {
		if err := service.RecordConversion(ctx, c); err != nil {
			t.Fatalf("RecordConversion() error = %v", err)
		}
	}

	list, err := service.ListConversions(ctx, -1, -1)
	if err != nil {
		t.Fatalf("ListConversions() error = %v", err)
	}
	if len(list) != 3 {
		t.Errorf("ListConversions() returned %d records, want 3", len(list))
	}

	list, err = service.ListConversions(ctx, 2, 0)
	if err != nil {
		t.Fatalf("ListConversions() error = %v", err)
	}
	if len(list) != 2 {
		t.Errorf("ListConversions(2, 0) returned %d records, want 2", len(list))
	}
}

func TestService_RemoveBySourcePath(t *testing.T) {
	repo := newMockConversionRepository()
	service := NewService(repo)
	ctx := context.Background()

	if err := service.RemoveBySourcePath(ctx, ""); !errors.Is(err, ErrInvalidSourcePath) {
		t.Errorf("RemoveBySourcePath(\"\") error = %v, want %v", err, ErrInvalidSourcePath)
	}

	conversion := &models.Conversion{SourcePath: "/music/y.m4a", OutputPath: "/converted/y.wav"}
	if err := service.RecordConversion(ctx, conversion); err != nil {
		t.Fatalf("RecordConversion() error = %v", err)
	}

	if err := service.RemoveBySourcePath(ctx, "/music/y.m4a"); err != nil {
		t.Fatalf("RemoveBySourcePath() error = %v", err)
	}

	if _, err := service.GetBySourcePath(ctx, "/music/y.m4a"); !errors.Is(err, ErrConversionNotFound) {
		t.Errorf("GetBySourcePath() after remove error = %v, want %v", err, ErrConversionNotFound)
	}
}
