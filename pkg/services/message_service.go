package services

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/opencoord/hive/ent"
	"github.com/opencoord/hive/ent/message"
	"github.com/opencoord/hive/ent/messagerecipient"
	"github.com/opencoord/hive/ent/predicate"
	"github.com/opencoord/hive/pkg/logstore"
	"github.com/opencoord/hive/pkg/masking"
	"github.com/opencoord/hive/pkg/models"
)

// inboxLimit is the hard cap on inbox page size. Agents consume inbox
// contents into a bounded context window; larger pages get clamped, never
// honored.
const inboxLimit = 5

// broadcastThreshold is the recipient count at which a message counts as a
// broadcast in analytics.
const broadcastThreshold = 3

// Subject classifiers, checked in order. First match wins; anything else is
// classified general.
var (
	classProgressRe = regexp.MustCompile(`(?i)progress`)
	classBlockedRe  = regexp.MustCompile(`(?i)blocked`)
	classStatusRe   = regexp.MustCompile(`(?i)status`)
)

// MessageService handles durable inter-agent messaging.
type MessageService struct {
	client *ent.Client
	store  *logstore.Store
	masker *masking.Masker
	logger *slog.Logger
}

// NewMessageService creates a new message service.
func NewMessageService(client *ent.Client, store *logstore.Store, logger *slog.Logger) *MessageService {
	return &MessageService{
		client: client,
		store:  store,
		masker: masking.New(),
		logger: logger.With("service", "message"),
	}
}

// SendResult reports the outcome of a send.
type SendResult struct {
	MessageID string `json:"message_id"`
	ThreadID  string `json:"thread_id,omitempty"`
	NewThread bool   `json:"new_thread,omitempty"`
}

// MessageView is the full message returned by ReadMessage. This is the only
// surface that carries the body.
type MessageView struct {
	models.InboxItem
	Body           string `json:"body"`
	Classification string `json:"classification"`
	IsBroadcast    bool   `json:"is_broadcast"`
}

// Send delivers a message to one or more recipients. The first message of a
// thread_id also produces a thread_created event.
func (s *MessageService) Send(ctx context.Context, req models.SendMessageRequest) (*SendResult, error) {
	if req.ProjectKey == "" {
		return nil, NewValidationError("project_key", "project_key is required")
	}
	if req.FromAgent == "" {
		return nil, NewValidationError("from_agent", "from_agent is required")
	}
	if len(req.To) == 0 {
		return nil, NewValidationError("to", "at least one recipient is required")
	}
	if req.Subject == "" {
		return nil, NewValidationError("subject", "subject is required")
	}
	if req.Body == "" {
		return nil, NewValidationError("body", "body is required")
	}
	importance := req.Importance
	if importance == "" {
		importance = models.ImportanceNormal
	}
	switch importance {
	case models.ImportanceLow, models.ImportanceNormal, models.ImportanceHigh, models.ImportanceUrgent:
	default:
		return nil, NewValidationError("importance", fmt.Sprintf("unknown importance %q", importance))
	}

	newThread := false
	if req.ThreadID != "" {
		n, err := s.client.Message.Query().
			Where(message.ProjectKeyEQ(req.ProjectKey), message.ThreadIDEQ(req.ThreadID)).
			Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to check thread: %w", err)
		}
		newThread = n == 0
	}

	// Agents paste command output into bodies; scrub credentials before
	// the text becomes durable.
	messageID := uuid.New().String()
	_, err := s.store.Append(ctx, req.ProjectKey, models.EventMessageSent, map[string]interface{}{
		"message_id":   messageID,
		"from":         req.FromAgent,
		"to":           req.To,
		"subject":      s.masker.MaskString(req.Subject),
		"body":         s.masker.MaskString(req.Body),
		"thread_id":    req.ThreadID,
		"importance":   importance,
		"ack_required": req.AckRequired,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to send message: %w", err)
	}

	s.logger.Info("message sent",
		"project", req.ProjectKey,
		"from", req.FromAgent,
		"recipients", len(req.To),
		"importance", importance)

	return &SendResult{
		MessageID: messageID,
		ThreadID:  req.ThreadID,
		NewThread: newThread,
	}, nil
}

// EmitThreadActivity computes aggregate stats over a thread and records a
// thread_activity event. Any agent may call it; threads have no owner and
// no explicit close.
func (s *MessageService) EmitThreadActivity(ctx context.Context, projectKey, threadID string) error {
	if threadID == "" {
		return NewValidationError("thread_id", "thread_id is required")
	}

	msgs, err := s.client.Message.Query().
		Where(message.ProjectKeyEQ(projectKey), message.ThreadIDEQ(threadID)).
		Order(ent.Asc(message.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query thread: %w", err)
	}
	if len(msgs) == 0 {
		return fmt.Errorf("thread %s: %w", threadID, ErrNotFound)
	}

	participants := make(map[string]struct{})
	for _, m := range msgs {
		participants[m.FromAgent] = struct{}{}
	}

	_, err = s.store.Append(ctx, projectKey, models.EventThreadActivity, map[string]interface{}{
		"thread_id":          threadID,
		"message_count":      len(msgs),
		"participant_count":  len(participants),
		"last_message_agent": msgs[len(msgs)-1].FromAgent,
	})
	if err != nil {
		return fmt.Errorf("failed to record thread activity: %w", err)
	}
	return nil
}

// Inbox returns unread message headers for an agent, newest first. The
// limit is clamped to inboxLimit regardless of the requested value, and the
// body is never included.
func (s *MessageService) Inbox(ctx context.Context, req models.InboxRequest) ([]models.InboxItem, error) {
	if req.ProjectKey == "" {
		return nil, NewValidationError("project_key", "project_key is required")
	}
	if req.Agent == "" {
		return nil, NewValidationError("agent", "agent is required")
	}
	limit := req.Limit
	if limit <= 0 || limit > inboxLimit {
		limit = inboxLimit
	}

	preds := []predicate.Message{
		message.ProjectKeyEQ(req.ProjectKey),
		message.HasRecipientsWith(
			messagerecipient.AgentNameEQ(req.Agent),
			messagerecipient.ReadAtIsNil(),
		),
	}
	if req.UrgentOnly {
		preds = append(preds, message.ImportanceEQ(message.ImportanceUrgent))
	}

	msgs, err := s.client.Message.Query().
		Where(preds...).
		Order(ent.Desc(message.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query inbox: %w", err)
	}

	items := make([]models.InboxItem, 0, len(msgs))
	for _, m := range msgs {
		items = append(items, models.InboxItem{
			MessageID:   m.ID,
			FromAgent:   m.FromAgent,
			Subject:     m.Subject,
			ThreadID:    m.ThreadID,
			Importance:  string(m.Importance),
			AckRequired: m.AckRequired,
			CreatedAt:   m.CreatedAt,
			Read:        false,
		})
	}
	return items, nil
}

// ReadMessage returns one full message and marks it read for the calling
// agent. The read marker is write-once; reading twice keeps the first
// read_at. The emitted message_read event carries the subject
// classification for downstream analytics.
func (s *MessageService) ReadMessage(ctx context.Context, projectKey, agentName, messageID string) (*MessageView, error) {
	if messageID == "" {
		return nil, NewValidationError("message_id", "message_id is required")
	}
	if agentName == "" {
		return nil, NewValidationError("agent", "agent is required")
	}

	m, err := s.client.Message.Query().
		Where(message.IDEQ(messageID), message.ProjectKeyEQ(projectKey)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("message %s: %w", messageID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get message: %w", err)
	}

	recipients, err := s.client.MessageRecipient.Query().
		Where(messagerecipient.MessageIDEQ(messageID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get recipients: %w", err)
	}

	isRecipient := false
	alreadyRead := false
	for _, r := range recipients {
		if r.AgentName == agentName {
			isRecipient = true
			alreadyRead = r.ReadAt != nil
		}
	}
	if !isRecipient && m.FromAgent != agentName {
		return nil, fmt.Errorf("message %s: %w", messageID, ErrNotFound)
	}

	classification := ClassifySubject(m.Subject)
	isBroadcast := len(recipients) >= broadcastThreshold

	if isRecipient && !alreadyRead {
		_, err := s.store.Append(ctx, projectKey, models.EventMessageRead, map[string]interface{}{
			"message_id":     messageID,
			"agent":          agentName,
			"classification": classification,
			"is_broadcast":   isBroadcast,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to mark read: %w", err)
		}
	}

	return &MessageView{
		InboxItem: models.InboxItem{
			MessageID:   m.ID,
			FromAgent:   m.FromAgent,
			Subject:     m.Subject,
			ThreadID:    m.ThreadID,
			Importance:  string(m.Importance),
			AckRequired: m.AckRequired,
			CreatedAt:   m.CreatedAt,
			Read:        true,
		},
		Body:           m.Body,
		Classification: classification,
		IsBroadcast:    isBroadcast,
	}, nil
}

// Ack acknowledges a message that was sent with ack_required. Acking also
// marks the message read. Acking a message that did not request an ack is
// an input error.
func (s *MessageService) Ack(ctx context.Context, projectKey, agentName, messageID string) error {
	m, err := s.client.Message.Query().
		Where(message.IDEQ(messageID), message.ProjectKeyEQ(projectKey)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("message %s: %w", messageID, ErrNotFound)
		}
		return fmt.Errorf("failed to get message: %w", err)
	}
	if !m.AckRequired {
		return NewValidationError("message_id", "message did not request an ack")
	}

	n, err := s.client.MessageRecipient.Query().
		Where(messagerecipient.MessageIDEQ(messageID), messagerecipient.AgentNameEQ(agentName)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to check recipient: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("agent %s is not a recipient of %s: %w", agentName, messageID, ErrNotFound)
	}

	_, err = s.store.Append(ctx, projectKey, models.EventMessageAcked, map[string]interface{}{
		"message_id": messageID,
		"agent":      agentName,
	})
	if err != nil {
		return fmt.Errorf("failed to ack message: %w", err)
	}
	return nil
}

// ClassifySubject buckets a message subject for analytics. Checked in
// order: progress, blocked, question (trailing "?"), status; everything
// else is general.
func ClassifySubject(subject string) string {
	trimmed := strings.TrimSpace(subject)
	switch {
	case classProgressRe.MatchString(trimmed):
		return models.ClassProgress
	case classBlockedRe.MatchString(trimmed):
		return models.ClassBlocked
	case strings.HasSuffix(trimmed, "?"):
		return models.ClassQuestion
	case classStatusRe.MatchString(trimmed):
		return models.ClassStatus
	default:
		return models.ClassGeneral
	}
}
