package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"client_portal/internal/domain/entities"
	mock_interfaces "client_portal/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func seedProposal(t *testing.T, repo *fakeRepo[*entities.Proposal], clientID, pdfKey string) *entities.Proposal {
	t.Helper()
	p, err := repo.Create(context.Background(), &entities.Proposal{
		ClientID:    clientID,
		Title:       "Website redesign",
		Description: "Full redesign of the marketing site",
		Amount:      4500,
		Status:      entities.ProposalStatusDraft,
		PDFKey:      pdfKey,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	})
	if err != nil {
		t.Fatalf("seed proposal: %v", err)
	}
	return p
}

func TestProposalUseCase_Create(t *testing.T) {
	t.Run("missing fields", func(t *testing.T) {
		uc := NewProposalUseCase(newFakeRepo[*entities.Proposal](), nil)

		cases := []CreateProposalInput{
			{Description: "d", Amount: 10},
			{Title: "t", Amount: 10},
			{Title: "t", Description: "d"},
		}
		for _, in := range cases {
			if _, err := uc.Create(context.Background(), "client-1", in); !errors.Is(err, ErrMissingFields) {
				t.Fatalf("expected ErrMissingFields for %+v, got %v", in, err)
			}
		}
	})

	t.Run("defaults to draft", func(t *testing.T) {
		uc := NewProposalUseCase(newFakeRepo[*entities.Proposal](), nil)

		p, err := uc.Create(context.Background(), "client-1", CreateProposalInput{Title: "t", Description: "d", Amount: 100})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Status != entities.ProposalStatusDraft {
			t.Fatalf("expected draft, got %s", p.Status)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		uc := NewProposalUseCase(newFakeRepo[*entities.Proposal](), nil)

		_, err := uc.Create(context.Background(), "client-1", CreateProposalInput{Title: "t", Description: "d", Amount: 100, Status: "pending"})
		if !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})
}

func TestProposalUseCase_UpdateStatus(t *testing.T) {
	t.Run("invalid status checked before fetch", func(t *testing.T) {
		uc := NewProposalUseCase(newFakeRepo[*entities.Proposal](), nil)

		err := uc.UpdateStatus(context.Background(), "client-1", "missing", "approved")
		if !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("valid transition", func(t *testing.T) {
		repo := newFakeRepo[*entities.Proposal]()
		uc := NewProposalUseCase(repo, nil)
		p := seedProposal(t, repo, "client-1", "")

		if err := uc.UpdateStatus(context.Background(), "client-1", p.ID, "accepted"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.items[p.ID].Status != entities.ProposalStatusAccepted {
			t.Fatalf("expected accepted, got %s", repo.items[p.ID].Status)
		}
	})

	t.Run("foreign proposal", func(t *testing.T) {
		repo := newFakeRepo[*entities.Proposal]()
		uc := NewProposalUseCase(repo, nil)
		p := seedProposal(t, repo, "client-2", "")

		if err := uc.UpdateStatus(context.Background(), "client-1", p.ID, "sent"); !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})
}

func TestProposalUseCase_DownloadURL(t *testing.T) {
	t.Run("no attached file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := newFakeRepo[*entities.Proposal]()
		files := mock_interfaces.NewMockIFileStore(ctrl)
		uc := NewProposalUseCase(repo, files)
		p := seedProposal(t, repo, "client-1", "")

		_, err := uc.DownloadURL(context.Background(), "client-1", p.ID)
		if !errors.Is(err, ErrNoFile) {
			t.Fatalf("expected ErrNoFile, got %v", err)
		}
	})

	t.Run("signed link with fifteen minute expiry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := newFakeRepo[*entities.Proposal]()
		files := mock_interfaces.NewMockIFileStore(ctrl)
		uc := NewProposalUseCase(repo, files)
		p := seedProposal(t, repo, "client-1", "proposals/p-1.pdf")

		files.EXPECT().SignedDownloadURL(gomock.Any(), "proposals/p-1.pdf", 15*time.Minute).Return("https://files.example.com/signed", nil)

		link, err := uc.DownloadURL(context.Background(), "client-1", p.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if link.URL != "https://files.example.com/signed" {
			t.Fatalf("unexpected url: %s", link.URL)
		}
		if link.ExpiresIn != 900 {
			t.Fatalf("expected 900s expiry, got %d", link.ExpiresIn)
		}
	})

	t.Run("ownership enforced before signing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := newFakeRepo[*entities.Proposal]()
		files := mock_interfaces.NewMockIFileStore(ctrl)
		uc := NewProposalUseCase(repo, files)
		p := seedProposal(t, repo, "client-2", "proposals/p-1.pdf")

		_, err := uc.DownloadURL(context.Background(), "client-1", p.ID)
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("store error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := newFakeRepo[*entities.Proposal]()
		files := mock_interfaces.NewMockIFileStore(ctrl)
		uc := NewProposalUseCase(repo, files)
		p := seedProposal(t, repo, "client-1", "proposals/p-1.pdf")

		files.EXPECT().SignedDownloadURL(gomock.Any(), "proposals/p-1.pdf", 15*time.Minute).Return("", errors.New("s3"))

		_, err := uc.DownloadURL(context.Background(), "client-1", p.ID)
		if err == nil || err.Error() != "s3" {
			t.Fatalf("expected s3 error, got %v", err)
		}
	})
}

func TestProposalUseCase_Delete(t *testing.T) {
	t.Run("file cleanup is best effort", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := newFakeRepo[*entities.Proposal]()
		files := mock_interfaces.NewMockIFileStore(ctrl)
		uc := NewProposalUseCase(repo, files)
		p := seedProposal(t, repo, "client-1", "proposals/p-1.pdf")

		files.EXPECT().Delete(gomock.Any(), "proposals/p-1.pdf").Return(errors.New("s3 down"))

		if err := uc.Delete(context.Background(), "client-1", p.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := repo.items[p.ID]; ok {
			t.Fatalf("record still present")
		}
	})

	t.Run("no file means no store call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := newFakeRepo[*entities.Proposal]()
		files := mock_interfaces.NewMockIFileStore(ctrl)
		uc := NewProposalUseCase(repo, files)
		p := seedProposal(t, repo, "client-1", "")

		if err := uc.Delete(context.Background(), "client-1", p.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
