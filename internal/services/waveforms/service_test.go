package waveforms

import (
	"context"
	"errors"
	"testing"

	"github.com/wavebatch/converter-api/internal/models"
)

// mockWaveformRepository is a mock implementation of WaveformRepository for testing
type mockWaveformRepository struct {
	waveforms map[uint]*models.Waveform
	shouldErr bool
}

func newMockWaveformRepository() *mockWaveformRepository {
	return &mockWaveformRepository{
		waveforms: make(map[uint]*models.Waveform),
	}
}

func (m *mockWaveformRepository) GetByConversionID(ctx context.Context, conversionID uint) (*models.Waveform, error) {
	if m.shouldErr {
		return nil, errors.New("mock database error")
	}

	waveform, exists := m.waveforms[conversionID]
	if !exists {
		return nil, ErrWaveformNotFound
	}

	return waveform, nil
}

func (m *mockWaveformRepository) Create(ctx context.Context, waveform *models.Waveform) error {
	if m.shouldErr {
		return errors.New("mock database error")
	}

	m.waveforms[waveform.ConversionID] = waveform
	return nil
}

func (m *mockWaveformRepository) Update(ctx context.Context, waveform *models.Waveform) error {
	if m.shouldErr {
		return errors.New("mock database error")
	}

	m.waveforms[waveform.ConversionID] = waveform
	return nil
}

func (m *mockWaveformRepository) Delete(ctx context.Context, conversionID uint) error {
	if m.shouldErr {
		return errors.New("mock database error")
	}

	if _, exists := m.waveforms[conversionID]; !exists {
		return ErrWaveformNotFound
	}

	delete(m.waveforms, conversionID)
	return nil
}

func (m *mockWaveformRepository) Exists(ctx context.Context, conversionID uint) (bool, error) {
	if m.shouldErr {
		return false, errors.New("mock database error")
	}

	_, exists := m.waveforms[conversionID]
	return exists, nil
}

func TestNewService(t *testing.T) {
	repo := newMockWaveformRepository()
	service := NewService(repo)

	if service == nil {
		t.Error("NewService() returned nil")
	}
}

func TestService_GetWaveform(t *testing.T) {
	tests := []struct {
		name         string
		conversionID uint
		setupRepo    func(*mockWaveformRepository)
		wantErr      bool
		expectedErr  error
	}{
		{
			name:         "successful get",
			conversionID: 123,
			setupRepo: func(repo *mockWaveformRepository) {
				waveform := &models.Waveform{
					ConversionID: 123,
					Duration:     300.0,
					Resolution:   1000,
					SampleRate:   44100,
				}
				if err := waveform.SetPeaks([]float32{0.1, 0.5, 0.8}); err != nil {
					t.Fatalf("SetPeaks() error = %v", err)
				}
				repo.waveforms[123] = waveform
			},
		},
		{
			name:         "waveform not found",
			conversionID: 999,
			setupRepo:    func(repo *mockWaveformRepository) {},
			wantErr:      true,
			expectedErr:  ErrWaveformNotFound,
		},
		{
			name:         "invalid conversion ID",
			conversionID: 0,
			setupRepo:    func(repo *mockWaveformRepository) {},
			wantErr:      true,
			expectedErr:  ErrInvalidConversionID,
		},
		{
			name:         "repository error",
			conversionID: 123,
			setupRepo: func(repo *mockWaveformRepository) {
				repo.shouldErr = true
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMockWaveformRepository()
			tt.setupRepo(repo)

			service := NewService(repo)
			ctx := context.Background()

			waveform, err := service.GetWaveform(ctx, tt.conversionID)

			if tt.wantErr {
				if err == nil {
					t.Error("GetWaveform() expected error, got nil")
				}
				if tt.expectedErr != nil && !errors.Is(err, tt.expectedErr) {
					t.Errorf("GetWaveform() error = %v, want %v", err, tt.expectedErr)
				}
				return
			}

			if err != nil {
				t.Errorf("GetWaveform() unexpected error = %v", err)
				return
			}

			if waveform == nil {
				t.Error("GetWaveform() returned nil waveform")
				return
			}

			if waveform.ConversionID != tt.conversionID {
				t.Errorf("GetWaveform() ConversionID = %v, want %v", waveform.ConversionID, tt.conversionID)
			}
		})
	}
}

func TestService_SaveWaveform(t *testing.T) {
	tests := []struct {
		name        string
		waveform    *models.Waveform
		setupRepo   func(*mockWaveformRepository)
		wantErr     bool
		expectedErr error
	}{
		{
			name: "successful create",
			waveform: &models.Waveform{
				ConversionID: 123,
				Duration:     300.0,
				Resolution:   3,
				SampleRate:   44100,
			},
			setupRepo: func(repo *mockWaveformRepository) {},
		},
		{
			name: "successful update",
			waveform: &models.Waveform{
				ConversionID: 123,
				Duration:     400.0,
				Resolution:   3,
				SampleRate:   48000,
			},
			setupRepo: func(repo *mockWaveformRepository) {
				existing := &models.Waveform{ConversionID: 123, Duration: 300.0}
				if err := existing.SetPeaks([]float32{0.1, 0.2, 0.3}); err != nil {
					t.Fatalf("SetPeaks() error = %v", err)
				}
				repo.waveforms[123] = existing
			},
		},
		{
			name: "invalid conversion ID",
			waveform: &models.Waveform{
				ConversionID: 0,
			},
			setupRepo:   func(repo *mockWaveformRepository) {},
			wantErr:     true,
			expectedErr: ErrInvalidConversionID,
		},
		{
			name: "invalid peaks data",
			waveform: &models.Waveform{
				ConversionID: 123,
				PeaksData:    []byte{},
			},
			setupRepo:   func(repo *mockWaveformRepository) {},
			wantErr:     true,
			expectedErr: ErrInvalidPeaksData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMockWaveformRepository()
			tt.setupRepo(repo)

			if tt.name != "invalid peaks data" && len(tt.waveform.PeaksData) == 0 {
				if err := tt.waveform.SetPeaks([]float32{0.1, 0.5, 0.8}); err != nil {
					t.Fatalf("SetPeaks() error = %v", err)
				}
			}

			service := NewService(repo)
			ctx := context.Background()

			err := service.SaveWaveform(ctx, tt.waveform)

			if tt.wantErr {
				if err == nil {
					t.Error("SaveWaveform() expected error, got nil")
				}
				if tt.expectedErr != nil && !errors.Is(err, tt.expectedErr) {
					t.Errorf("SaveWaveform() error = %v, want %v", err, tt.expectedErr)
				}
				return
			}

			if err != nil {
				t.Errorf("SaveWaveform() unexpected error = %v", err)
				return
			}

			saved, exists := repo.waveforms[tt.waveform.ConversionID]
			if !exists {
				t.Error("SaveWaveform() waveform not found in repository")
				return
			}

			if saved.Duration != tt.waveform.Duration {
				t.Errorf("SaveWaveform() Duration = %v, want %v", saved.Duration, tt.waveform.Duration)
			}
		})
	}
}

func TestService_DeleteWaveform(t *testing.T) {
	tests := []struct {
		name         string
		conversionID uint
		setupRepo    func(*mockWaveformRepository)
		wantErr      bool
		expectedErr  error
	}{
		{
			name:         "successful delete",
			conversionID: 123,
			setupRepo: func(repo *mockWaveformRepository) {
				waveform := &models.Waveform{ConversionID: 123}
				if err := waveform.SetPeaks([]float32{0.1, 0.5, 0.8}); err != nil {
					t.Fatalf("SetPeaks() error = %v", err)
				}
				repo.waveforms[123] = waveform
			},
		},
		{
			name:         "waveform not found",
			conversionID: 999,
			setupRepo:    func(repo *mockWaveformRepository) {},
			wantErr:      true,
			expectedErr:  ErrWaveformNotFound,
		},
		{
			name:         "invalid conversion ID",
			conversionID: 0,
			setupRepo:    func(repo *mockWaveformRepository) {},
			wantErr:      true,
			expectedErr:  ErrInvalidConversionID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMockWaveformRepository()
			tt.setupRepo(repo)

			service := NewService(repo)
			ctx := context.Background()

			err := service.DeleteWaveform(ctx, tt.conversionID)

			if tt.wantErr {
				if err == nil {
					t.Error("DeleteWaveform() expected error, got nil")
				}
				if tt.expectedErr != nil && !errors.Is(err, tt.expectedErr) {
					t.Errorf("DeleteWaveform() error = %v, want %v", err, tt.expectedErr)
				}
				return
			}

			if err != nil {
				t.Errorf("DeleteWaveform() unexpected error = %v", err)
				return
			}

			if _, exists := repo.waveforms[tt.conversionID]; exists {
				t.Error("DeleteWaveform() waveform still exists in repository")
			}
		})
	}
}

func TestService_WaveformExists(t *testing.T) {
	repo := newMockWaveformRepository()
	waveform := &models.Waveform{ConversionID: 123}
	if err := waveform.SetPeaks([]float32{0.1, 0.5, 0.8}); err != nil {
		t.Fatalf("SetPeaks() error = %v", err)
	}
	repo.waveforms[123] = waveform

	service := NewService(repo)
	ctx := context.Background()

	exists, err := service.WaveformExists(ctx, 123)
	if err != nil {
		t.Errorf("WaveformExists() error = %v", err)
	}
	if !exists {
		t.Error("WaveformExists() = false for existing waveform, want true")
	}

	exists, err = service.WaveformExists(ctx, 999)
	if err != nil {
		t.Errorf("WaveformExists() error = %v", err)
	}
	if exists {
		t.Error("WaveformExists() = true for missing waveform, want false")
	}

	if _, err := service.WaveformExists(ctx, 0); !errors.Is(err, ErrInvalidConversionID) {
		t.Errorf("WaveformExists(0) error = %v, want %v", err, ErrInvalidConversionID)
	}
}
