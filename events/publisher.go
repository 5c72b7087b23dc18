package events

import "log/slog"

// LogPublisher writes sent-message events to the structured log.
type LogPublisher struct {
	log *slog.Logger
}

func NewLogPublisher(log *slog.Logger) *LogPublisher {
	return &LogPublisher{log: log}
}

func (p *LogPublisher) PublishMessageSent(event MessageSent) {
	p.log.Info("message sent",
		"message_id", event.MessageID,
		"chat_id", event.ChatID,
		"sender_id", event.SenderID,
		"lang", event.Lang,
		"at", event.At,
	)
}

// ChannelPublisher fans events out to a buffered channel for an
// external consumer (a websocket layer, typically). When the buffer is
// full the event is dropped rather than blocking the send path.
type ChannelPublisher struct {
	log    *slog.Logger
	events chan MessageSent
}

func NewChannelPublisher(log *slog.Logger, bufferSize int) *ChannelPublisher {
	return &ChannelPublisher{
		log:    log,
		events: make(chan MessageSent, bufferSize),
	}
}

func (p *ChannelPublisher) PublishMessageSent(event MessageSent) {
	select {
	case p.events <- event:
	default:
		p.log.Warn("event buffer full, dropping message sent event", "message_id", event.MessageID)
	}
}

func (p *ChannelPublisher) Events() <-chan MessageSent {
	return p.events
}
