package slack

import (
	"context"
	"fmt"

	"github.com/ManuWo94/verwaltungssystem-scarlethorizon-sub000/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"
)

type service struct {
	client    *slack.Client
	channelID string
}

var _ Service = &service{}

// New creates a Slack notification service posting to the given channel
func New(botToken, channelID string) (Service, error) {
	if botToken == "" {
		return nil, goerr.New("slack bot token is required")
	}
	if channelID == "" {
		return nil, goerr.New("slack channel ID is required")
	}

	client := slack.New(botToken)
	if _, err := client.AuthTest(); err != nil {
		return nil, goerr.Wrap(err, "slack auth test failed")
	}

	return &service{client: client, channelID: channelID}, nil
}

func (s *service) NotifyCaseUpdate(ctx context.Context, c *model.Case, note model.Note) error {
	header := fmt.Sprintf("Case %s: %s", c.ID, c.Status)
	blocks := []slack.Block{
		slack.NewHeaderBlock(slack.NewTextBlockObject(slack.PlainTextType, header, false, false)),
		slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, note.Note, false, false),
			[]*slack.TextBlockObject{
				slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*Action:* %s", note.Action), false, false),
				slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*By:* %s", note.User), false, false),
			},
			nil,
		),
	}

	_, _, err := s.client.PostMessageContext(ctx, s.channelID,
		slack.MsgOptionText(header, false),
		slack.MsgOptionBlocks(blocks...),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to post case update",
			goerr.V("case_id", c.ID), goerr.V("channel_id", s.channelID))
	}

	return nil
}
