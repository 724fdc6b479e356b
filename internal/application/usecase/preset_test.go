package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tierbank/depositcalc/internal/application/dto"
	"github.com/tierbank/depositcalc/internal/domain/model"
)

func TestSavePresetUseCase_Execute(t *testing.T) {
	t.Run("should store a valid preset", func(t *testing.T) {
		presets := newMockPresetRepo()
		uc := NewSavePresetUseCase(presets)

		resp, err := uc.Execute(context.Background(), dto.SavePresetRequest{
			Name:       "standard-savings",
			Parameters: validRequest(),
		})
		require.NoError(t, err)

		assert.Equal(t, "standard-savings", resp.Name)
		assert.Equal(t, "1000000", resp.Parameters.Principal)
		assert.Len(t, resp.Parameters.Tiers, 2)
		assert.Equal(t, "", resp.Parameters.Tiers[1].Max, "open-ended tier keeps an empty max")

		stored, ok := presets.presets["standard-savings"]
		require.True(t, ok)
		assert.Equal(t, "standard-savings", stored.Name())
	})

	t.Run("should reject empty name", func(t *testing.T) {
		uc := NewSavePresetUseCase(newMockPresetRepo())

		_, err := uc.Execute(context.Background(), dto.SavePresetRequest{
			Name:       "",
			Parameters: validRequest(),
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidRequest)
	})

	t.Run("should reject invalid parameters", func(t *testing.T) {
		presets := newMockPresetRepo()
		uc := NewSavePresetUseCase(presets)

		req := dto.SavePresetRequest{Name: "broken", Parameters: validRequest()}
		req.Parameters.Tiers[0].Rate = "-1"

		_, err := uc.Execute(context.Background(), req)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInvalidTier)
		assert.Empty(t, presets.presets)
	})
}

func TestListPresetsUseCase_Execute(t *testing.T) {
	t.Run("should return all presets", func(t *testing.T) {
		presets := newMockPresetRepo()
		saveUC := NewSavePresetUseCase(presets)
		for _, name := range []string{"alpha", "beta"} {
			_, err := saveUC.Execute(context.Background(), dto.SavePresetRequest{
				Name:       name,
				Parameters: validRequest(),
			})
			require.NoError(t, err)
		}

		uc := NewListPresetsUseCase(presets)
		all, err := uc.Execute(context.Background())
		require.NoError(t, err)

		require.Len(t, all, 2)
		assert.Equal(t, "alpha", all[0].Name)
		assert.Equal(t, "beta", all[1].Name)
	})

	t.Run("should return empty list when nothing stored", func(t *testing.T) {
		uc := NewListPresetsUseCase(newMockPresetRepo())

		all, err := uc.Execute(context.Background())
		require.NoError(t, err)
		assert.Empty(t, all)
	})
}
