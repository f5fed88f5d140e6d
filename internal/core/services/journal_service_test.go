package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/finbooks/finbooks_backend/internal/apperrors"
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	portssvc "github.com/finbooks/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks/finbooks_backend/internal/core/services"
	"github.com/finbooks/finbooks_backend/internal/dto"
)

// MockJournalRepository is a mock type for the JournalRepositoryFacade interface
type MockJournalRepository struct {
	mock.Mock
}

func (m *MockJournalRepository) SaveJournal(ctx context.Context, journal domain.JournalEntryDraft) error {
	args := m.Called(ctx, journal)
	return args.Error(0)
}

func (m *MockJournalRepository) FindJournalByID(ctx context.Context, journalID string) (*domain.JournalEntryDraft, error) {
	args := m.Called(ctx, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntryDraft), args.Error(1)
}

func (m *MockJournalRepository) ListJournals(ctx context.Context, limit, offset int) ([]domain.JournalEntryDraft, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntryDraft), args.Error(1)
}

func (m *MockJournalRepository) DeleteJournal(ctx context.Context, journalID string) error {
	args := m.Called(ctx, journalID)
	return args.Error(0)
}

// --- Test Suite Setup ---

type JournalServiceTestSuite struct {
	suite.Suite
	mockRepo *MockJournalRepository
	service  portssvc.JournalSvcFacade
}

func (suite *JournalServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockJournalRepository)
	suite.service = services.NewJournalService(suite.mockRepo)
}

func balancedJournal() *domain.JournalEntryDraft {
	return &domain.JournalEntryDraft{
		JournalID:   "jrn-1",
		Date:        time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		Reference:   "JE-2026-000042",
		Description: "March rent",
		Status:      domain.JournalDraft,
		Lines: []domain.JournalLine{
			{AccountID: "acct-rent", Debit: decimal.NewFromInt(100)},
			{AccountID: "acct-cash", Credit: decimal.NewFromInt(100)},
		},
	}
}

// --- Test Cases ---

func (suite *JournalServiceTestSuite) TestCreateJournal_SeedsEmptyLines() {
	ctx := context.Background()

	suite.mockRepo.On("SaveJournal", ctx, mock.AnythingOfType("domain.JournalEntryDraft")).Return(nil).Once()

	journal, err := suite.service.CreateJournal(ctx, dto.CreateJournalRequest{})

	suite.Require().NoError(err)
	suite.NotEmpty(journal.JournalID)
	suite.Equal(domain.JournalDraft, journal.Status)
	// A fresh draft gets one empty row per side of the entry.
	suite.Len(journal.Lines, 2)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestCreateJournal_KeepsProvidedLines() {
	ctx := context.Background()

	suite.mockRepo.On("SaveJournal", ctx, mock.AnythingOfType("domain.JournalEntryDraft")).Return(nil).Once()

	journal, err := suite.service.CreateJournal(ctx, dto.CreateJournalRequest{
		Reference: "JE-2026-000001",
		Lines: []dto.JournalLineInput{
			{AccountID: "acct-a", Debit: "25.50"},
			{AccountID: "acct-b", Credit: "25.50"},
			{AccountID: "acct-c"},
		},
	})

	suite.Require().NoError(err)
	suite.Len(journal.Lines, 3)
	suite.True(journal.Lines[0].Debit.Equal(decimal.RequireFromString("25.50")))
}

func (suite *JournalServiceTestSuite) TestValidateJournal_DoesNotMutate() {
	ctx := context.Background()
	journal := balancedJournal()
	journal.Lines[1].Credit = decimal.NewFromInt(99)

	suite.mockRepo.On("FindJournalByID", ctx, "jrn-1").Return(journal, nil).Once()

	result, err := suite.service.ValidateJournal(ctx, "jrn-1")

	suite.Require().NoError(err)
	suite.False(result.IsValid)
	suite.NotEmpty(result.Violations)
	suite.Equal(domain.JournalDraft, journal.Status)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveJournal")
}

func (suite *JournalServiceTestSuite) TestPostJournal_Success() {
	ctx := context.Background()

	suite.mockRepo.On("FindJournalByID", ctx, "jrn-1").Return(balancedJournal(), nil).Once()
	suite.mockRepo.On("SaveJournal", ctx, mock.AnythingOfType("domain.JournalEntryDraft")).Return(nil).Once()

	journal, result, err := suite.service.PostJournal(ctx, "jrn-1")

	suite.Require().NoError(err)
	suite.True(result.IsValid)
	suite.Equal(domain.JournalPosted, journal.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestPostJournal_InvalidStaysDraft() {
	ctx := context.Background()
	journal := balancedJournal()
	journal.Lines[1].Credit = decimal.NewFromInt(90)

	suite.mockRepo.On("FindJournalByID", ctx, "jrn-1").Return(journal, nil).Once()

	posted, result, err := suite.service.PostJournal(ctx, "jrn-1")

	suite.Require().NoError(err)
	suite.False(result.IsValid)
	suite.Equal(domain.JournalDraft, posted.Status)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveJournal")
}

func (suite *JournalServiceTestSuite) TestPostJournal_AlreadyPosted() {
	ctx := context.Background()
	journal := balancedJournal()
	journal.Status = domain.JournalPosted

	suite.mockRepo.On("FindJournalByID", ctx, "jrn-1").Return(journal, nil).Once()

	_, _, err := suite.service.PostJournal(ctx, "jrn-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *JournalServiceTestSuite) TestVoidJournal_FromPosted() {
	ctx := context.Background()
	journal := balancedJournal()
	journal.Status = domain.JournalPosted

	suite.mockRepo.On("FindJournalByID", ctx, "jrn-1").Return(journal, nil).Once()
	suite.mockRepo.On("SaveJournal", ctx, mock.AnythingOfType("domain.JournalEntryDraft")).Return(nil).Once()

	voided, err := suite.service.VoidJournal(ctx, "jrn-1")

	suite.Require().NoError(err)
	suite.Equal(domain.JournalVoided, voided.Status)
}

func (suite *JournalServiceTestSuite) TestVoidJournal_TerminalState() {
	ctx := context.Background()
	journal := balancedJournal()
	journal.Status = domain.JournalVoided

	suite.mockRepo.On("FindJournalByID", ctx, "jrn-1").Return(journal, nil).Once()

	_, err := suite.service.VoidJournal(ctx, "jrn-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *JournalServiceTestSuite) TestUpdateJournal_PostedNotEditable() {
	ctx := context.Background()
	journal := balancedJournal()
	journal.Status = domain.JournalPosted

	suite.mockRepo.On("FindJournalByID", ctx, "jrn-1").Return(journal, nil).Once()

	ref := "JE-2026-000099"
	_, err := suite.service.UpdateJournal(ctx, "jrn-1", dto.UpdateJournalRequest{Reference: &ref})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveJournal")
}

func (suite *JournalServiceTestSuite) TestDeleteJournal_OnlyDrafts() {
	ctx := context.Background()
	posted := balancedJournal()
	posted.Status = domain.JournalPosted

	suite.mockRepo.On("FindJournalByID", ctx, "jrn-1").Return(posted, nil).Once()

	err := suite.service.DeleteJournal(ctx, "jrn-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteJournal")
}

func TestJournalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JournalServiceTestSuite))
}
