package email

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSES struct {
	input *sesv2.SendEmailInput
	err   error
}

func (f *fakeSES) SendEmail(_ context.Context, params *sesv2.SendEmailInput, _ ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error) {
	f.input = params
	return &sesv2.SendEmailOutput{}, f.err
}

func TestSESSender_Send(t *testing.T) {
	client := &fakeSES{}
	sender := newSESSender(client, "noreply@example.com")

	err := sender.Send(context.Background(), "jane@example.com", "Order accepted", "Your order <ORD-000001> was accepted")
	require.NoError(t, err)

	require.NotNil(t, client.input)
	assert.Equal(t, "noreply@example.com", *client.input.FromEmailAddress)
	assert.Equal(t, []string{"jane@example.com"}, client.input.Destination.ToAddresses)
	assert.Equal(t, "Order accepted", *client.input.Content.Simple.Subject.Data)
	assert.Contains(t, *client.input.Content.Simple.Body.Html.Data, "&lt;ORD-000001&gt;")
}

func TestSESSender_SendError(t *testing.T) {
	sesErr := errors.New("throttled")
	sender := newSESSender(&fakeSES{err: sesErr}, "noreply@example.com")

	err := sender.Send(context.Background(), "jane@example.com", "subject", "text")
	assert.ErrorIs(t, err, sesErr)
}
