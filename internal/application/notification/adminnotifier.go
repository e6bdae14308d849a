package notification

import (
	"context"
	"fmt"
	"sync"

	"aster/internal/domain/ticket"
	"aster/internal/shared/goroutine"
	"aster/internal/shared/logger"
)

// AdminDirectory resolves the email addresses of administrative users.
type AdminDirectory interface {
	AdminEmails(ctx context.Context) ([]string, error)
}

// Mailer delivers ticket notification emails to a single recipient.
type Mailer interface {
	SendTicketOpened(to string, ticketID uint, ticketTitle string) error
	SendTicketReplied(to string, ticketID uint, ticketTitle string) error
}

// Pusher delivers a short title/description pair to an external
// push-notification webhook.
type Pusher interface {
	Push(ctx context.Context, title, description string) error
}

// Config toggles the delivery channels.
type Config struct {
	AppName        string
	MailEnabled    bool
	WebhookEnabled bool
}

// AdminNotifier fans ticket events out to every admin by email and to the
// push webhook. Each recipient is handled on its own goroutine so one slow
// or failing delivery never blocks the others.
type AdminNotifier struct {
	admins AdminDirectory
	mailer Mailer
	pusher Pusher
	config Config
	logger logger.Interface
}

var _ Handler = (*AdminNotifier)(nil)

func NewAdminNotifier(
	admins AdminDirectory,
	mailer Mailer,
	pusher Pusher,
	config Config,
	log logger.Interface,
) *AdminNotifier {
	return &AdminNotifier{
		admins: admins,
		mailer: mailer,
		pusher: pusher,
		config: config,
		logger: log,
	}
}

func (n *AdminNotifier) TicketOpened(ctx context.Context, ev ticket.TicketOpenedEvent) {
	n.fanOutEmails(ctx, ev.TicketID, ev.Title, func(to string) error {
		return n.mailer.SendTicketOpened(to, ev.TicketID, ev.Title)
	})
	n.push(ctx, fmt.Sprintf("%s - new ticket opened", n.config.AppName), ev.Title)
}

func (n *AdminNotifier) TicketReplied(ctx context.Context, ev ticket.TicketRepliedEvent) {
	n.fanOutEmails(ctx, ev.TicketID, ev.Title, func(to string) error {
		return n.mailer.SendTicketReplied(to, ev.TicketID, ev.Title)
	})
	n.push(ctx, fmt.Sprintf("%s - ticket replied", n.config.AppName), ev.Title)
}

func (n *AdminNotifier) fanOutEmails(ctx context.Context, ticketID uint, title string, send func(to string) error) {
	if !n.config.MailEnabled || n.mailer == nil {
		return
	}

	emails, err := n.admins.AdminEmails(ctx)
	if err != nil {
		n.logger.Errorw("failed to resolve admin recipients", "ticket_id", ticketID, "error", err)
		return
	}

	var wg sync.WaitGroup
	for _, to := range emails {
		to := to
		wg.Add(1)
		goroutine.SafeGo(n.logger, "ticket-notify-email", func() {
			defer wg.Done()
			if err := send(to); err != nil {
				n.logger.Warnw("admin notification email failed",
					"ticket_id", ticketID,
					"recipient", to,
					"error", err,
				)
			}
		})
	}
	wg.Wait()
}

func (n *AdminNotifier) push(ctx context.Context, title, description string) {
	if !n.config.WebhookEnabled || n.pusher == nil {
		return
	}

	if err := n.pusher.Push(ctx, title, description); err != nil {
		n.logger.Warnw("push webhook delivery failed", "title", title, "error", err)
	}
}
