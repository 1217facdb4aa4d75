package notify

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"github.com/samarpantrust/outreach/internal/config"
	"github.com/samarpantrust/outreach/internal/pkg/logger"
)

// Email is one outgoing message.
type Email struct {
	FromName  string
	FromEmail string
	To        []string
	ReplyTo   string
	Subject   string
	HTML      string
	Text      string
	Tags      map[string]string
}

// Mailer delivers an Email.
type Mailer interface {
	Send(ctx context.Context, msg Email) error
}

// sesAPI is the part of the SES v2 client SESMailer uses.
type sesAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// SESMailer sends mail through AWS SES v2.
type SESMailer struct {
	client sesAPI
	log    logger.Logger
}

// NewSESMailer builds an SES client for cfg. Static credentials are used when
// both keys are set; otherwise the default AWS credential chain applies.
func NewSESMailer(ctx context.Context, cfg config.NotifyConfig, log logger.Logger) (*SESMailer, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}
	return &SESMailer{client: sesv2.NewFromConfig(awsCfg), log: log}, nil
}

// Send implements Mailer.
func (m *SESMailer) Send(ctx context.Context, msg Email) error {
	if len(msg.To) == 0 {
		return errors.New("no recipients")
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(fmt.Sprintf("%s <%s>", msg.FromName, msg.FromEmail)),
		Destination:      &types.Destination{ToAddresses: msg.To},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(msg.Subject), Charset: aws.String("UTF-8")},
				Body: &types.Body{
					Html: &types.Content{Data: aws.String(msg.HTML), Charset: aws.String("UTF-8")},
				},
			},
		},
	}
	if msg.Text != "" {
		input.Content.Simple.Body.Text = &types.Content{Data: aws.String(msg.Text), Charset: aws.String("UTF-8")}
	}
	if msg.ReplyTo != "" {
		input.ReplyToAddresses = []string{msg.ReplyTo}
	}
	for name, value := range msg.Tags {
		input.EmailTags = append(input.EmailTags, types.MessageTag{Name: aws.String(name), Value: aws.String(value)})
	}

	out, err := m.client.SendEmail(ctx, input)
	if err != nil {
		return fmt.Errorf("ses send: %w", err)
	}

	messageID := ""
	if out.MessageId != nil {
		messageID = *out.MessageId
	}
	m.log.Debug().Str("message_id", messageID).Int("recipients", len(msg.To)).Msg("notification sent")
	return nil
}
