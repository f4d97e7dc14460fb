// internal/notify/notifier.go
package notify

import (
	"context"
	"fmt"
	"strings"

	"soundproofing-calculator/internal/common/logger"
	"soundproofing-calculator/internal/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// SESService is the slice of the SES API the notifier needs.
type SESService interface {
	SendEmail(ctx context.Context, input *ses.SendEmailInput) (*ses.SendEmailOutput, error)
}

// Notifier sends recommendation summary emails. Delivery is best effort: a
// failed send is logged and swallowed, never surfaced to the requester.
type Notifier struct {
	ses    SESService
	from   string
	logger logger.Logger
}

func New(sesClient SESService, from string, log logger.Logger) *Notifier {
	return &Notifier{
		ses:    sesClient,
		from:   from,
		logger: log.WithFields(map[string]interface{}{"component": "notifier"}),
	}
}

// SendSummary emails a plain-text digest of a recommendation.
func (n *Notifier) SendSummary(ctx context.Context, to string, rec *models.Recommendation) error {
	if n.ses == nil || to == "" {
		return nil
	}

	subject := fmt.Sprintf("Soundproofing recommendation %s", rec.RequestID)
	body := FormatSummary(rec)

	_, err := n.ses.SendEmail(ctx, &ses.SendEmailInput{
		Source: aws.String(n.from),
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(body)},
			},
		},
	})
	if err != nil {
		n.logger.Warn("summary email failed", map[string]interface{}{
			"requestId": rec.RequestID,
			"to":        to,
			"error":     err.Error(),
		})
		return err
	}

	n.logger.Info("summary email sent", map[string]interface{}{
		"requestId": rec.RequestID,
		"to":        to,
	})
	return nil
}

// FormatSummary renders the plain-text digest body.
func FormatSummary(rec *models.Recommendation) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Recommendation %s\n\n", rec.RequestID)

	for _, surface := range []models.SurfaceType{models.SurfaceWalls, models.SurfaceCeiling, models.SurfaceFloor} {
		ranked, ok := rec.Primary[surface]
		if !ok || len(ranked) == 0 {
			continue
		}
		fmt.Fprintf(&b, "%s:\n", surface)
		for _, rs := range ranked {
			fmt.Fprintf(&b, "  - %s (score %.1f)\n", rs.Solution.DisplayName, rs.Score)
		}
	}

	if rec.Costs != nil {
		fmt.Fprintf(&b, "\nEstimated cost: %.2f across %d surface(s)\n",
			rec.Costs.TotalCost, len(rec.Costs.Surfaces))
	}

	if len(rec.Reasoning) > 0 {
		b.WriteString("\nNotes:\n")
		for _, line := range rec.Reasoning {
			fmt.Fprintf(&b, "  - %s\n", line)
		}
	}

	return b.String()
}
