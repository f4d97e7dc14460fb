// internal/notify/notifier_test.go
package notify

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soundproofing-calculator/internal/common/logger"
	"soundproofing-calculator/internal/models"
)

// ==========================
// Mock Implementations
// ==========================

type MockSESService struct {
	SendEmailFunc func(ctx context.Context, input *ses.SendEmailInput) (*ses.SendEmailOutput, error)
}

func (m *MockSESService) SendEmail(ctx context.Context, input *ses.SendEmailInput) (*ses.SendEmailOutput, error) {
	return m.SendEmailFunc(ctx, input)
}

func sampleRecommendation() *models.Recommendation {
	return &models.Recommendation{
		RequestID: "req-123",
		Primary: map[models.SurfaceType][]models.RankedSolution{
			models.SurfaceWalls: {
				{Solution: &models.Solution{DisplayName: "M20 Solution (Standard)"}, Score: 78.5},
			},
		},
		Reasoning: []string{"music noise at intensity 7 implicates 1 surface(s)"},
		Costs: &models.CostSummary{
			Surfaces:  []models.CostBreakdown{{Surface: models.SurfaceWalls, TotalCost: 412.5}},
			TotalCost: 412.5,
		},
	}
}

func TestSendSummary(t *testing.T) {
	var sent *ses.SendEmailInput
	mockSES := &MockSESService{
		SendEmailFunc: func(_ context.Context, input *ses.SendEmailInput) (*ses.SendEmailOutput, error) {
			sent = input
			return &ses.SendEmailOutput{}, nil
		},
	}

	notifier := New(mockSES, "noreply@example.com", logger.NewTestLogger(t))
	err := notifier.SendSummary(context.Background(), "customer@example.com", sampleRecommendation())
	require.NoError(t, err)

	require.NotNil(t, sent)
	assert.Equal(t, "noreply@example.com", *sent.Source)
	assert.Equal(t, "customer@example.com", sent.Destination.ToAddresses[0])
	assert.Contains(t, *sent.Message.Subject.Data, "req-123")
	assert.Contains(t, *sent.Message.Body.Text.Data, "M20 Solution (Standard)")
}

func TestSendSummary_FailureIsReturnedNotFatal(t *testing.T) {
	mockSES := &MockSESService{
		SendEmailFunc: func(_ context.Context, _ *ses.SendEmailInput) (*ses.SendEmailOutput, error) {
			return nil, assert.AnError
		},
	}

	notifier := New(mockSES, "noreply@example.com", logger.NewTestLogger(t))
	err := notifier.SendSummary(context.Background(), "customer@example.com", sampleRecommendation())
	assert.Error(t, err)
}

func TestSendSummary_NoRecipientIsANoOp(t *testing.T) {
	mockSES := &MockSESService{
		SendEmailFunc: func(_ context.Context, _ *ses.SendEmailInput) (*ses.SendEmailOutput, error) {
			t.Fatal("should not send without a recipient")
			return nil, nil
		},
	}

	notifier := New(mockSES, "noreply@example.com", logger.NewTestLogger(t))
	assert.NoError(t, notifier.SendSummary(context.Background(), "", sampleRecommendation()))
}

func TestFormatSummary(t *testing.T) {
	body := FormatSummary(sampleRecommendation())

	assert.Contains(t, body, "req-123")
	assert.Contains(t, body, "walls:")
	assert.Contains(t, body, "score 78.5")
	assert.Contains(t, body, "412.50")
	assert.Contains(t, body, "Notes:")
}
