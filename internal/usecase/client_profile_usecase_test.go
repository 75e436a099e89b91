package usecase

import (
	"context"
	"errors"
	"testing"

	"client_portal/internal/domain/entities"
	mock_interfaces "client_portal/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestClientProfileUseCase_Get(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientProfileRepository(ctrl)
		uc := NewClientProfileUseCase(repo)

		repo.EXPECT().GetByUID(gomock.Any(), "uid-1").Return(nil, false, nil)

		_, err := uc.Get(context.Background(), "uid-1")
		if !errors.Is(err, ErrProfileNotFound) {
			t.Fatalf("expected ErrProfileNotFound, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientProfileRepository(ctrl)
		uc := NewClientProfileUseCase(repo)

		repo.EXPECT().GetByUID(gomock.Any(), "uid-1").Return(nil, false, errors.New("db"))

		_, err := uc.Get(context.Background(), "uid-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientProfileRepository(ctrl)
		uc := NewClientProfileUseCase(repo)

		expected := &entities.ClientProfile{UID: "uid-1", Name: "Jane", Email: "jane@example.com"}
		repo.EXPECT().GetByUID(gomock.Any(), "uid-1").Return(expected, true, nil)

		p, err := uc.Get(context.Background(), "uid-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.UID != "uid-1" || p.Name != "Jane" {
			t.Fatalf("unexpected profile: %+v", p)
		}
	})
}

func TestClientProfileUseCase_Update(t *testing.T) {
	t.Run("empty name dropped from the patch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientProfileRepository(ctrl)
		uc := NewClientProfileUseCase(repo)

		empty := ""
		company := "Acme"
		updated := &entities.ClientProfile{UID: "uid-1", Name: "Jane", Company: company}
		repo.EXPECT().UpdateProfile(gomock.Any(), "uid-1", nil, &company, nil).Return(updated, true, nil)

		p, err := uc.Update(context.Background(), "uid-1", UpdateProfileInput{Name: &empty, Company: &company})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Company != "Acme" {
			t.Fatalf("unexpected profile: %+v", p)
		}
	})

	t.Run("no profile document", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientProfileRepository(ctrl)
		uc := NewClientProfileUseCase(repo)

		repo.EXPECT().UpdateProfile(gomock.Any(), "uid-1", nil, nil, nil).Return(nil, false, nil)

		_, err := uc.Update(context.Background(), "uid-1", UpdateProfileInput{})
		if !errors.Is(err, ErrProfileNotFound) {
			t.Fatalf("expected ErrProfileNotFound, got %v", err)
		}
	})
}
